package cmd

import (
	"fmt"
	"strings"

	"github.com/nikogura/portfolio-prioritizer/pkg/criteria"
	"github.com/nikogura/portfolio-prioritizer/pkg/report"
	"github.com/nikogura/portfolio-prioritizer/pkg/scoring"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the criteria, their buckets and the points each preset awards",
	Args:  cobra.NoArgs,
	RunE:  runSchemes,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(schemesCmd)
}

func runSchemes(cmd *cobra.Command, args []string) (err error) {
	out := cmd.OutOrStdout()

	schemes := scoring.AllSchemes()
	engines := make([]*scoring.Engine, len(schemes))
	for i, scheme := range schemes {
		sel := make(scoring.Selection)
		for _, def := range criteria.All() {
			sel[def.ID] = scheme
		}
		engines[i], err = scoring.NewEngine(sel, criteria.Reference{})
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out, report.TitleStyle.Render("Scoring presets"))
	for _, scheme := range schemes {
		fmt.Fprintf(out, "  %-10s %s\n", scheme, scheme.Label())
	}
	fmt.Fprintln(out)

	names := make([]string, len(schemes))
	for i, scheme := range schemes {
		names[i] = string(scheme)
	}

	fmt.Fprintln(out, report.TitleStyle.Render("Criteria"))
	for _, def := range engines[0].Definitions() {
		fmt.Fprintf(out, "  %s  (column %q, scored into %s)\n", def.Name, def.Column, def.ScoreColumn())
		fmt.Fprintf(out, "    %-60s %s\n", "bucket", strings.Join(names, " / "))

		for _, bucket := range def.Buckets {
			points := make([]string, len(engines))
			for i, engine := range engines {
				points[i] = fmt.Sprintf("%d", engine.Score(def.ID, bucket))
			}
			fmt.Fprintf(out, "    %-60s %s\n", def.DisplayLabel(bucket), strings.Join(points, " / "))
		}
	}

	return err
}
