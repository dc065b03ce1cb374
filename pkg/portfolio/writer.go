package portfolio

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// Header returns the output header: input columns, score columns, then total_score.
func (t *Table) Header() (header []string) {
	header = make([]string, 0, len(t.Columns)+len(t.ScoreColumns)+1)
	header = append(header, t.Columns...)
	header = append(header, t.ScoreColumns...)
	header = append(header, ColumnTotalScore)
	return header
}

// Write emits the scored table as CSV.
func Write(w io.Writer, table *Table) (err error) {
	writer := csv.NewWriter(w)

	err = writer.Write(table.Header())
	if err != nil {
		err = errors.Wrap(err, "failed to write header")
		return err
	}

	for _, project := range table.Projects {
		record := make([]string, 0, len(table.Columns)+len(table.ScoreColumns)+1)
		for i, column := range table.Columns {
			if i < len(project.Cells) {
				record = append(record, project.Cells[i])
				continue
			}
			record = append(record, project.Value(column))
		}
		for _, column := range table.ScoreColumns {
			points, _ := project.Score(column)
			record = append(record, strconv.Itoa(points))
		}
		record = append(record, strconv.Itoa(project.TotalScore))

		err = writer.Write(record)
		if err != nil {
			err = errors.Wrapf(err, "failed to write row %d", project.Row+1)
			return err
		}
	}

	writer.Flush()
	err = writer.Error()
	if err != nil {
		err = errors.Wrap(err, "failed to flush CSV")
		return err
	}

	return err
}

// Save writes the scored table to path, creating parent directories.
func Save(path string, table *Table) (err error) {
	outputDir := filepath.Dir(path)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	var file *os.File
	file, err = os.Create(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output file: %s", path)
		return err
	}

	err = Write(file, table)
	if err != nil {
		_ = file.Close()
		err = errors.Wrapf(err, "failed to save portfolio: %s", path)
		return err
	}

	err = file.Close()
	if err != nil {
		err = errors.Wrapf(err, "failed to close output file: %s", path)
		return err
	}

	return err
}
