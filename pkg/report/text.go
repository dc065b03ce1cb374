package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/nikogura/portfolio-prioritizer/pkg/staffing"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // Column layout
var textHeaders = []string{"#", "Project", "Manager", "Start", "End", "Score"}

// RenderText writes the priority list as a terminal table followed by staffing totals.
func RenderText(w io.Writer, title string, entries []Entry) (err error) {
	roles := staffing.AllRoles()

	headers := append([]string(nil), textHeaders...)
	for _, role := range roles {
		headers = append(headers, string(role))
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.Rank),
			e.Name,
			e.Manager,
			e.StartDate,
			e.EndDate,
			strconv.Itoa(e.TotalScore),
		}
		for _, role := range roles {
			row = append(row, strconv.Itoa(e.Staffing.Get(role)))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(MutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) (style lipgloss.Style) {
			switch {
			case row == table.HeaderRow:
				style = HeaderStyle
			case col == len(textHeaders)-1:
				style = ScoreStyle
			case col >= len(textHeaders) && row >= 0 && row < len(entries) && entries[row].Carried:
				style = CarriedStyle
			default:
				style = CellStyle
			}
			return style
		})

	total := Totals(entries)
	_, err = fmt.Fprintf(w, "%s\n%s\n%s\n",
		TitleStyle.Render(title),
		t.String(),
		MutedStyle.Render(fmt.Sprintf("Staffing required: %d web, %d mobile, %d ML developers", total.Web, total.Mobile, total.ML)),
	)
	if err != nil {
		err = errors.Wrap(err, "failed to write report")
		return err
	}

	return err
}
