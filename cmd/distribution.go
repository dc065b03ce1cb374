package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
	"github.com/nikogura/portfolio-prioritizer/pkg/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var distributionWidth int

//nolint:gochecknoglobals // Cobra boilerplate
var distributionJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var distributionCmd = &cobra.Command{
	Use:   "distribution <csv-file-or-url>",
	Short: "Chart how many projects there are per complexity and type",
	Args:  cobra.ExactArgs(1),
	RunE:  runDistribution,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(distributionCmd)
	distributionCmd.Flags().IntVar(&distributionWidth, "width", report.DefaultChartWidth, "Length of the longest bar")
	distributionCmd.Flags().BoolVar(&distributionJSON, "json", false, "Print the counts as JSON")
}

func runDistribution(cmd *cobra.Command, args []string) (err error) {
	table, err := portfolio.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	dist := portfolio.CountByComplexityAndType(table.Projects)

	if distributionJSON {
		var data []byte
		data, err = json.MarshalIndent(dist, "", "  ")
		if err != nil {
			err = errors.Wrap(err, "failed to marshal distribution")
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), report.RenderDistribution(dist, distributionWidth))

	return err
}
