package cmd

import (
	"fmt"
	"log/slog"

	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var scoreOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var scoreCmd = &cobra.Command{
	Use:   "score <csv-file-or-url>",
	Short: "Score every project and write the table with score columns",
	Long: `Classifies every project against the seven criteria, scores it under the selected
schemes and writes the input table back out with one <criterion>_score column per
criterion plus total_score.

Schemes come from the config file, then --scheme flags, then the interactive form.

Examples:
  portfolio-prioritizer score projects.csv -o scored.csv
  portfolio-prioritizer score https://example.com/projects.csv --scheme cost=null
  portfolio-prioritizer score projects.csv --now 2025-01-01 > scored.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVarP(&scoreOutput, "output", "o", "", "Output CSV file (default stdout)")
	addScoringFlags(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) (err error) {
	cfg, result, err := scorePortfolio(cmd.Context(), args[0], 0)
	if err != nil {
		return err
	}

	if scoreOutput == "" {
		err = portfolio.Write(cmd.OutOrStdout(), result.Table)
		return err
	}

	path := getOutputPath(scoreOutput, cfg.Defaults.OutputDir)
	err = portfolio.Save(path, result.Table)
	if err != nil {
		return err
	}

	slog.Info("scored table written", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Scored %d projects: %s\n", len(result.Table.Projects), path)

	return err
}
