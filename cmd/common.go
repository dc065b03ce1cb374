package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikogura/portfolio-prioritizer/pkg/config"
	"github.com/nikogura/portfolio-prioritizer/pkg/criteria"
	"github.com/nikogura/portfolio-prioritizer/pkg/form"
	"github.com/nikogura/portfolio-prioritizer/pkg/pipeline"
	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
	"github.com/nikogura/portfolio-prioritizer/pkg/scoring"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Scoring flags shared by the score and top commands.
//
//nolint:gochecknoglobals // Cobra boilerplate
var (
	schemeFlags []string
	interactive bool
	accessible  bool
	nowFlag     string
)

func addScoringFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&schemeFlags, "scheme", nil,
		"Scoring scheme per criterion as criterion=preset, e.g. cost=null or end_date=\"4, 3, 2, 1\" (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the scheme for every criterion in an interactive form")
	cmd.Flags().BoolVar(&accessible, "accessible", false, "Run the interactive form in accessible mode (plain prompts, no TUI)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Evaluation date for days-to-end-date, RFC3339 or YYYY-MM-DD (default today)")
}

// parseSchemeFlags turns criterion=preset pairs into a selection, failing on the first bad entry.
func parseSchemeFlags(values []string) (sel scoring.Selection, err error) {
	raw := make(map[string]string, len(values))
	for _, value := range values {
		key, scheme, ok := strings.Cut(value, "=")
		if !ok || strings.TrimSpace(key) == "" {
			err = errors.Errorf("invalid --scheme %q: expected criterion=preset", value)
			return sel, err
		}
		raw[strings.TrimSpace(key)] = scheme
	}

	sel, err = scoring.ParseSelection(raw)
	return sel, err
}

// parseNow reads the evaluation instant. Empty means the current time.
func parseNow(value string) (now time.Time, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		now = time.Now()
		return now, err
	}

	now, err = time.Parse(time.RFC3339, value)
	if err == nil {
		return now, err
	}

	now, err = time.Parse("2006-01-02", value)
	if err != nil {
		err = errors.Errorf("invalid --now %q: expected RFC3339 or YYYY-MM-DD", value)
		return now, err
	}

	return now, err
}

// resolveSelection layers config, then --scheme flags, then the interactive form.
func resolveSelection(ctx context.Context, cfg config.Config) (sel scoring.Selection, err error) {
	sel, err = cfg.Selection()
	if err != nil {
		return sel, err
	}

	var flagSel scoring.Selection
	flagSel, err = parseSchemeFlags(schemeFlags)
	if err != nil {
		return sel, err
	}
	sel = sel.Merge(flagSel)

	if interactive {
		f := form.New(criteria.All(), sel)
		if accessible {
			f.Form().WithAccessible(true)
		}
		err = f.Run(ctx)
		if err != nil {
			return sel, err
		}

		sel, err = f.Selection()
		if err != nil {
			return sel, err
		}
	}

	return sel, err
}

// scorePortfolio loads configuration and the source, then runs the full pipeline.
// The source is loaded and validated before any scheme is asked for.
func scorePortfolio(ctx context.Context, source string, topK int) (cfg config.Config, result pipeline.Result, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, result, err
	}

	var now time.Time
	now, err = parseNow(nowFlag)
	if err != nil {
		return cfg, result, err
	}

	var table portfolio.Table
	table, err = portfolio.Load(ctx, source)
	if err != nil {
		return cfg, result, err
	}
	slog.Info("portfolio loaded", "source", source, "rows", len(table.Projects))

	var sel scoring.Selection
	sel, err = resolveSelection(ctx, cfg)
	if err != nil {
		return cfg, result, err
	}

	if topK <= 0 {
		topK = cfg.TopK
	}

	for _, def := range criteria.All() {
		slog.Debug("scheme in effect", "criterion", def.ID, "scheme", sel.For(def.ID))
	}

	result, err = pipeline.Run(ctx, &table, pipeline.Options{
		Selection: sel,
		Reference: cfg.Reference(criteria.Reference{Now: now}),
		TopK:      topK,
	})
	if err != nil {
		return cfg, result, err
	}

	return cfg, result, err
}

// getOutputPath places bare file names under the configured output directory.
func getOutputPath(name, outputDir string) (path string) {
	path = name
	if name == "" || filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) || outputDir == "" {
		return path
	}
	path = filepath.Join(outputDir, name)
	return path
}
