package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RenderMarkdown renders the report as a pandoc-friendly markdown document.
func RenderMarkdown(title string, entries []Entry) (content string) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", cases.Title(language.English).String(title))

	b.WriteString("| # | Project | Manager | Start | End | Cost | Benefit | Score | Web | Mobile | ML |\n")
	b.WriteString("|---|---|---|---|---|---:|---:|---:|---:|---:|---:|\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %d | %d | %d | %d |\n",
			e.Rank,
			escapeCell(e.Name),
			escapeCell(e.Manager),
			escapeCell(e.StartDate),
			escapeCell(e.EndDate),
			escapeCell(e.Cost),
			escapeCell(e.Benefit),
			e.TotalScore,
			e.Staffing.Web,
			e.Staffing.Mobile,
			e.Staffing.ML,
		)
	}

	total := Totals(entries)
	fmt.Fprintf(&b, "\n**Staffing required:** %d web, %d mobile, %d ML developers.\n", total.Web, total.Mobile, total.ML)

	var carried []string
	for _, e := range entries {
		if e.Carried {
			carried = append(carried, fmt.Sprintf("%d", e.Rank))
		}
	}
	if len(carried) > 0 {
		fmt.Fprintf(&b, "\nRanks %s also carry the staff of the project ranked above them, which finishes earlier.\n",
			strings.Join(carried, ", "))
	}

	content = b.String()
	return content
}

func escapeCell(s string) (escaped string) {
	escaped = strings.ReplaceAll(s, "|", "\\|")
	return escaped
}
