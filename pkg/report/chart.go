package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
)

// DefaultChartWidth is the bar length of the largest complexity group.
const DefaultChartWidth = 40

const barGlyph = "█"

// RenderDistribution draws one stacked horizontal bar per complexity, split by
// project type, followed by a legend. Bars are scaled to width; any non-zero
// segment is at least one cell wide.
func RenderDistribution(dist portfolio.Distribution, width int) (chart string) {
	if width <= 0 {
		width = DefaultChartWidth
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Projects by complexity and type"))
	b.WriteString("\n")

	if len(dist.Complexities) == 0 {
		b.WriteString(MutedStyle.Render("no projects"))
		b.WriteString("\n")
		chart = b.String()
		return chart
	}

	maxTotal := 0
	labelWidth := 0
	for _, complexity := range dist.Complexities {
		if total := dist.Total(complexity); total > maxTotal {
			maxTotal = total
		}
		if w := lipgloss.Width(complexity); w > labelWidth {
			labelWidth = w
		}
	}

	for _, complexity := range dist.Complexities {
		fmt.Fprintf(&b, "%-*s ", labelWidth, complexity)
		for i, projectType := range dist.Types {
			segment := segmentWidth(dist.Count(complexity, projectType), maxTotal, width)
			if segment == 0 {
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(seriesColor(i)).Render(strings.Repeat(barGlyph, segment)))
		}
		fmt.Fprintf(&b, " %d\n", dist.Total(complexity))
	}

	b.WriteString("\n")
	legend := make([]string, 0, len(dist.Types))
	for i, projectType := range dist.Types {
		legend = append(legend, lipgloss.NewStyle().Foreground(seriesColor(i)).Render(barGlyph)+" "+projectType)
	}
	b.WriteString(strings.Join(legend, "  "))
	b.WriteString("\n")

	chart = b.String()
	return chart
}

func segmentWidth(count, maxTotal, width int) (cells int) {
	if count <= 0 || maxTotal <= 0 {
		return cells
	}
	cells = count * width / maxTotal
	if cells == 0 {
		cells = 1
	}
	return cells
}
