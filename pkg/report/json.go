package report

import (
	"encoding/json"
	"io"

	"github.com/nikogura/portfolio-prioritizer/pkg/staffing"
	"github.com/pkg/errors"
)

// Document is the machine-readable form of the priority report.
type Document struct {
	Title    string          `json:"title"`
	Projects []Entry         `json:"projects"`
	Staffing staffing.Vector `json:"staffing_total"`
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, title string, entries []Entry) (err error) {
	if entries == nil {
		entries = []Entry{}
	}

	doc := Document{
		Title:    title,
		Projects: entries,
		Staffing: Totals(entries),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err = encoder.Encode(doc)
	if err != nil {
		err = errors.Wrap(err, "failed to encode report")
		return err
	}

	return err
}
