package pipeline

import (
	"context"
	"log/slog"

	"github.com/nikogura/portfolio-prioritizer/pkg/criteria"
	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
	"github.com/nikogura/portfolio-prioritizer/pkg/ranking"
	"github.com/nikogura/portfolio-prioritizer/pkg/scoring"
	"github.com/nikogura/portfolio-prioritizer/pkg/staffing"
	"github.com/pkg/errors"
)

// Options controls one run.
type Options struct {
	Selection scoring.Selection
	Reference criteria.Reference
	TopK      int             // <= 0 means ranking.DefaultK
	Staffing  *staffing.Table // nil means the standard table
	Workers   int             // <= 0 means GOMAXPROCS
}

// Result holds the scored table and everything derived from it.
type Result struct {
	Table       *portfolio.Table
	Ranked      []portfolio.Project
	Allocations []staffing.Allocation
}

// Run scores every row of table in place, ranks the rows and cascades staffing
// demand over the top K. A scheme selection outside the presets fails before
// any row is touched.
func Run(ctx context.Context, table *portfolio.Table, opts Options) (result Result, err error) {
	engine, err := scoring.NewEngine(opts.Selection, opts.Reference, scoring.WithWorkers(opts.Workers))
	if err != nil {
		err = errors.Wrap(err, "invalid scoring configuration")
		return result, err
	}

	k := opts.TopK
	if k <= 0 {
		k = ranking.DefaultK
	}

	demand := opts.Staffing
	if demand == nil {
		demand = staffing.DefaultTable()
	}

	err = engine.ScoreAll(ctx, table)
	if err != nil {
		return result, err
	}
	slog.Debug("scored projects", "rows", len(table.Projects))

	result.Table = table
	result.Ranked = ranking.TopK(table.Projects, k)
	result.Allocations = demand.Cascade(result.Ranked, opts.Reference)

	slog.Info("portfolio prioritized",
		"rows", len(table.Projects),
		"top_k", len(result.Ranked),
		"staffing", staffing.Total(result.Allocations).String(),
	)

	return result, err
}
