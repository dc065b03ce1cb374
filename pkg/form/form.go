package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikogura/portfolio-prioritizer/pkg/criteria"
	"github.com/nikogura/portfolio-prioritizer/pkg/report"
	"github.com/nikogura/portfolio-prioritizer/pkg/scoring"
	"github.com/pkg/errors"
)

// SchemeForm asks for one scoring preset per criterion.
type SchemeForm struct {
	defs   []criteria.Definition
	values map[criteria.ID]*string
	form   *huh.Form
}

// New builds the form, pre-selecting the schemes in initial.
func New(defs []criteria.Definition, initial scoring.Selection) (f *SchemeForm) {
	f = &SchemeForm{
		defs:   defs,
		values: make(map[criteria.ID]*string, len(defs)),
	}

	groups := make([]*huh.Group, 0, len(defs))
	for i, def := range defs {
		value := string(initial.For(def.ID))
		f.values[def.ID] = &value

		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title(def.Name).
				Description("Points awarded to each bucket, most favorable first").
				Options(schemeOptions()...).
				Value(f.values[def.ID]),
		).Title(stepTitle(i+1, len(defs), def.Name)).
			Description(bucketLegend(def)))
	}

	f.form = huh.NewForm(groups...).WithTheme(createTheme())

	return f
}

// Run shows the form until every criterion is answered or the user aborts.
func (f *SchemeForm) Run(ctx context.Context) (err error) {
	err = f.form.RunWithContext(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			err = errors.New("scheme selection cancelled")
			return err
		}
		err = errors.Wrap(err, "scheme selection failed")
		return err
	}
	return err
}

// Form exposes the underlying huh form, e.g. to switch on accessible mode.
func (f *SchemeForm) Form() (form *huh.Form) {
	form = f.form
	return form
}

// Selection validates the answers; any value outside the presets is rejected.
func (f *SchemeForm) Selection() (sel scoring.Selection, err error) {
	raw := make(map[string]string, len(f.values))
	for id, value := range f.values {
		raw[string(id)] = *value
	}

	sel, err = scoring.ParseSelection(raw)
	return sel, err
}

func schemeOptions() (options []huh.Option[string]) {
	for _, scheme := range scoring.AllSchemes() {
		options = append(options, huh.NewOption(scheme.Label(), string(scheme)))
	}
	return options
}

func stepTitle(step, total int, name string) (title string) {
	title = fmt.Sprintf("Criterion %d/%d: %s", step, total, name)
	return title
}

// bucketLegend lists the bucket wording in the order points are awarded.
func bucketLegend(def criteria.Definition) (legend string) {
	labels := make([]string, len(def.Buckets))
	for i, bucket := range def.Buckets {
		labels[i] = def.DisplayLabel(bucket)
	}
	legend = strings.Join(labels, "  ·  ")
	return legend
}

func createTheme() (t *huh.Theme) {
	t = huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(report.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(report.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(report.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(report.Info).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(report.Muted)
	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(report.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(report.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(report.Secondary).
		Bold(true)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(report.Muted)

	return t
}
