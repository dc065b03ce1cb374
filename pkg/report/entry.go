package report

import (
	"strconv"
	"strings"

	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
	"github.com/nikogura/portfolio-prioritizer/pkg/staffing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Entry is one line of the priority report.
type Entry struct {
	Rank       int             `json:"rank"`
	Name       string          `json:"project_name"`
	Manager    string          `json:"project_manager"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Cost       string          `json:"project_cost"`
	Benefit    string          `json:"project_benefit"`
	TotalScore int             `json:"total_score"`
	Base       staffing.Vector `json:"base_staffing"`
	Staffing   staffing.Vector `json:"staffing"`
	Carried    bool            `json:"carried"`
}

// Entries flattens allocations into report lines, in rank order.
func Entries(allocations []staffing.Allocation) (entries []Entry) {
	printer := message.NewPrinter(language.English)

	entries = make([]Entry, 0, len(allocations))
	for _, a := range allocations {
		p := a.Project
		entries = append(entries, Entry{
			Rank:       a.Rank,
			Name:       p.Name(),
			Manager:    p.Value(portfolio.ColumnManager),
			StartDate:  p.Value(portfolio.ColumnStartDate),
			EndDate:    p.Value(portfolio.ColumnEndDate),
			Cost:       formatAmount(printer, p.Value(portfolio.ColumnCost)),
			Benefit:    formatAmount(printer, p.Value(portfolio.ColumnBenefit)),
			TotalScore: p.TotalScore,
			Base:       a.Base,
			Staffing:   a.Demand,
			Carried:    a.Carried,
		})
	}

	return entries
}

// formatAmount re-renders a currency cell with thousands separators.
// Cells that are not numbers are returned trimmed but otherwise untouched.
func formatAmount(printer *message.Printer, raw string) (formatted string) {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64)
	if err != nil {
		formatted = trimmed
		return formatted
	}

	if value == float64(int64(value)) {
		formatted = printer.Sprintf("%d", int64(value))
		return formatted
	}

	formatted = printer.Sprintf("%.2f", value)
	return formatted
}

// Totals sums post-cascade staffing across entries.
func Totals(entries []Entry) (total staffing.Vector) {
	for _, e := range entries {
		total = total.Add(e.Staffing)
	}
	return total
}
