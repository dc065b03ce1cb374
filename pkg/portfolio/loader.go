package portfolio

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// SchemaError reports required columns absent from the input header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() (msg string) {
	msg = "file is missing required columns: " + strings.Join(e.Missing, ", ")
	return msg
}

// Load fetches and parses the dataset, failing before any row is built if the schema is incomplete.
func Load(ctx context.Context, source string) (table Table, err error) {
	var data []byte
	data, err = Fetch(ctx, source)
	if err != nil {
		return table, err
	}

	table, err = Parse(bytes.NewReader(data))
	if err != nil {
		err = errors.Wrapf(err, "failed to parse portfolio: %s", source)
		return table, err
	}

	return table, err
}

// Parse reads CSV from r into a Table.
func Parse(r io.Reader) (table Table, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var header []string
	header, err = reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("file has no header row")
			return table, err
		}
		err = errors.Wrap(err, "failed to read header")
		return table, err
	}

	header = normalizeHeader(header)

	err = Validate(header)
	if err != nil {
		return table, err
	}

	table.Columns = header

	for row := 0; ; row++ {
		var record []string
		record, err = reader.Read()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			err = errors.Wrapf(err, "failed to read row %d", row+1)
			return table, err
		}

		if isBlank(record) {
			row--
			continue
		}

		cells := make([]string, len(header))
		copy(cells, record)

		values := make(map[string]string, len(header))
		for i, column := range header {
			if _, seen := values[column]; !seen {
				values[column] = cells[i]
			}
		}

		table.Projects = append(table.Projects, Project{
			Row:    len(table.Projects),
			Values: values,
			Cells:  cells,
		})
	}

	return table, err
}

// Validate returns a *SchemaError naming every required column missing from header.
func Validate(header []string) (err error) {
	present := make(map[string]bool, len(header))
	for _, column := range header {
		present[column] = true
	}

	var missing []string
	for _, column := range RequiredColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		err = &SchemaError{Missing: missing}
		return err
	}

	return err
}

// normalizeHeader strips a UTF-8 byte order mark left by spreadsheet exports.
func normalizeHeader(header []string) (normalized []string) {
	normalized = make([]string, len(header))
	copy(normalized, header)
	if len(normalized) > 0 {
		normalized[0] = strings.TrimPrefix(normalized[0], "\ufeff")
	}
	return normalized
}

func isBlank(record []string) (blank bool) {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return blank
		}
	}
	blank = true
	return blank
}
