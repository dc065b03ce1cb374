package cmd

import (
	"fmt"
	"log/slog"

	"github.com/nikogura/portfolio-prioritizer/pkg/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var topK int

//nolint:gochecknoglobals // Cobra boilerplate
var topJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var topMarkdown string

//nolint:gochecknoglobals // Cobra boilerplate
var topPDF string

//nolint:gochecknoglobals // Cobra boilerplate
var topCmd = &cobra.Command{
	Use:   "top <csv-file-or-url>",
	Short: "Show the highest priority projects and the staff they need",
	Long: `Scores and ranks the portfolio, then lists the top K projects with the web, mobile
and ML developers each one needs.

A project that ends later than the project ranked directly above it also carries
that project's staff, since those developers cannot be released before it ends.

Examples:
  portfolio-prioritizer top projects.csv
  portfolio-prioritizer top projects.csv -k 5 --json
  portfolio-prioritizer top projects.csv --markdown top.md --pdf top.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runTop,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().IntVarP(&topK, "top", "k", 0, "Number of projects to list (default from config, 10)")
	topCmd.Flags().BoolVar(&topJSON, "json", false, "Print the report as JSON")
	topCmd.Flags().StringVar(&topMarkdown, "markdown", "", "Also write the report as markdown to this file")
	topCmd.Flags().StringVar(&topPDF, "pdf", "", "Also render the report to PDF with pandoc")
	addScoringFlags(topCmd)
}

func runTop(cmd *cobra.Command, args []string) (err error) {
	if topK < 0 {
		err = errors.Errorf("--top must be positive, got %d", topK)
		return err
	}

	cfg, result, err := scorePortfolio(cmd.Context(), args[0], topK)
	if err != nil {
		return err
	}

	entries := report.Entries(result.Allocations)
	title := fmt.Sprintf("top %d projects by priority", len(entries))

	if topJSON {
		err = report.RenderJSON(cmd.OutOrStdout(), title, entries)
	} else {
		err = report.RenderText(cmd.OutOrStdout(), title, entries)
	}
	if err != nil {
		return err
	}

	if topMarkdown == "" && topPDF == "" {
		return err
	}

	content := report.RenderMarkdown(title, entries)

	if topMarkdown != "" {
		path := getOutputPath(topMarkdown, cfg.Defaults.OutputDir)
		err = report.WriteMarkdown(content, path)
		if err != nil {
			return err
		}
		slog.Info("markdown report written", "path", path)
	}

	if topPDF != "" {
		path := getOutputPath(topPDF, cfg.Defaults.OutputDir)
		err = report.ExportPDF(cmd.Context(), content, path, report.PDFOptions{
			TemplatePath: cfg.Report.TemplatePath,
			ClassFile:    cfg.Report.ClassFile,
		})
		if err != nil {
			err = errors.Wrap(err, "failed to render PDF")
			return err
		}
		slog.Info("pdf report written", "path", path)
	}

	return err
}
