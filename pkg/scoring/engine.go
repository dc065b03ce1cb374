package scoring

import (
	"context"
	"runtime"

	"github.com/nikogura/portfolio-prioritizer/pkg/criteria"
	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Engine classifies and scores project rows under a fixed scheme selection.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	definitions []criteria.Definition
	tables      map[criteria.ID]map[string]int
	selection   Selection
	reference   criteria.Reference
	workers     int
}

// Option customises an Engine.
type Option func(e *Engine)

// WithDefinitions replaces the built-in criteria.
func WithDefinitions(defs ...criteria.Definition) (opt Option) {
	opt = func(e *Engine) {
		e.definitions = append([]criteria.Definition(nil), defs...)
	}
	return opt
}

// WithWorkers bounds how many rows are scored at once.
func WithWorkers(n int) (opt Option) {
	opt = func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
	return opt
}

// NewEngine validates the selection against every criterion before any row is scored.
func NewEngine(selection Selection, reference criteria.Reference, opts ...Option) (engine *Engine, err error) {
	engine = &Engine{
		definitions: criteria.All(),
		selection:   selection,
		reference:   reference,
		workers:     runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(engine)
	}

	err = selection.Validate()
	if err != nil {
		engine = nil
		return engine, err
	}

	known := make(map[criteria.ID]bool, len(engine.definitions))
	engine.tables = make(map[criteria.ID]map[string]int, len(engine.definitions))
	for _, def := range engine.definitions {
		known[def.ID] = true

		var table map[string]int
		table, err = Table(def, selection.For(def.ID))
		if err != nil {
			engine = nil
			return engine, err
		}
		engine.tables[def.ID] = table
	}

	for id := range selection {
		if !known[id] {
			err = errors.Errorf("scheme selected for unknown criterion %s", id)
			engine = nil
			return engine, err
		}
	}

	return engine, err
}

// Definitions returns the criteria the engine scores, in order.
func (e *Engine) Definitions() (defs []criteria.Definition) {
	defs = append([]criteria.Definition(nil), e.definitions...)
	return defs
}

// ScoreColumns returns the output column of every criterion, in order.
func (e *Engine) ScoreColumns() (columns []string) {
	columns = make([]string, 0, len(e.definitions))
	for _, def := range e.definitions {
		columns = append(columns, def.ScoreColumn())
	}
	return columns
}

// Score looks up the points for a bucket label of one criterion.
// Unknown criteria and labels outside the bucket set score zero.
func (e *Engine) Score(id criteria.ID, bucket string) (points int) {
	points = e.tables[id][bucket]
	return points
}

// Breakdown is the per-criterion detail behind a score.
type Breakdown struct {
	Criterion criteria.ID      `json:"criterion"`
	Raw       string           `json:"raw"`
	Outcome   criteria.Outcome `json:"outcome"`
	Scheme    Scheme           `json:"scheme"`
	Points    int              `json:"points"`
}

// Explain classifies and scores every criterion of p without mutating it.
func (e *Engine) Explain(p *portfolio.Project) (breakdown []Breakdown) {
	breakdown = make([]Breakdown, 0, len(e.definitions))
	for _, def := range e.definitions {
		raw := p.Value(def.Column)
		outcome := def.Classify(raw, e.reference)
		breakdown = append(breakdown, Breakdown{
			Criterion: def.ID,
			Raw:       raw,
			Outcome:   outcome,
			Scheme:    e.selection.For(def.ID),
			Points:    Points(e.tables[def.ID], outcome),
		})
	}
	return breakdown
}

// ScoreProject writes every per-criterion score onto p; the total follows.
func (e *Engine) ScoreProject(p *portfolio.Project) {
	for i, b := range e.Explain(p) {
		p.SetScore(e.definitions[i].ScoreColumn(), b.Points)
	}
}

// ScoreAll scores every row of table in parallel. Rows share no state, so each
// worker owns exactly one project at a time.
func (e *Engine) ScoreAll(ctx context.Context, table *portfolio.Table) (err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := range table.Projects {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (goErr error) {
			goErr = gctx.Err()
			if goErr != nil {
				return goErr
			}
			e.ScoreProject(&table.Projects[i])
			return goErr
		})
	}

	err = g.Wait()
	if err != nil {
		err = errors.Wrap(err, "scoring interrupted")
		return err
	}

	err = ctx.Err()
	if err != nil {
		err = errors.Wrap(err, "scoring interrupted")
		return err
	}

	table.ScoreColumns = e.ScoreColumns()

	return err
}
