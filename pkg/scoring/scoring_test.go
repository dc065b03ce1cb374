package scoring

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nikogura/portfolio-prioritizer/pkg/criteria"
	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals // Fixed evaluation instant
var ref = criteria.Reference{Now: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}

func project(values map[string]string) portfolio.Project {
	return portfolio.Project{Values: values}
}

func fullProject() portfolio.Project {
	return project(map[string]string{
		portfolio.ColumnName:        "Apollo",
		portfolio.ColumnCost:        "5,000,000",
		portfolio.ColumnBenefit:     "2,000,000",
		portfolio.ColumnComplexity:  "Medium",
		portfolio.ColumnCompletion:  "60%",
		portfolio.ColumnDuration:    "1",
		portfolio.ColumnEndDate:     "2025-02-01",
		portfolio.ColumnCriticality: criteria.CriticalityGlobal,
	})
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		input     string
		want      Scheme
		wantError bool
	}{
		{"descending", Descending, false},
		{" Descending ", Descending, false},
		{"4, 3, 2, 1", Descending, false},
		{"4,3,2,1", Descending, false},
		{"null", Null, false},
		{"0, 0, 0, 0", Null, false},
		{"", "", true},
		{"1, 2, 3, 4", "", true},
		{"ascending", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			scheme, err := ParseScheme(tt.input)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrSchemeMismatch))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, scheme)
		})
	}
}

func TestTableDomainMatchesBuckets(t *testing.T) {
	for _, def := range criteria.All() {
		for _, scheme := range AllSchemes() {
			table, err := Table(def, scheme)
			require.NoError(t, err)
			assert.Len(t, table, len(def.Buckets), "criterion %s scheme %s", def.ID, scheme)
			for _, bucket := range def.Buckets {
				_, ok := table[bucket]
				assert.True(t, ok, "bucket %s missing for %s", bucket, def.ID)
			}
		}
	}

	cost, _ := criteria.Lookup(criteria.Cost)
	_, err := Table(cost, Scheme("triangular"))
	assert.True(t, errors.Is(err, ErrSchemeMismatch))
}

func TestTableRejectsOversizedCriterion(t *testing.T) {
	rule := func(string, criteria.Reference) criteria.Outcome { return criteria.InBucket(0) }
	def, err := criteria.NewDefinition("wide", "Wide", "Wide", []string{"a", "b", "c", "d", "e"}, nil, rule)
	require.NoError(t, err)

	_, err = Table(def, Descending)
	assert.Error(t, err)
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection(map[string]string{
		"Project Cost": "0, 0, 0, 0",
		"complexity":   "descending",
	})
	require.NoError(t, err)
	assert.Equal(t, Null, sel.For(criteria.Cost))
	assert.Equal(t, Descending, sel.For(criteria.Complexity))
	assert.Equal(t, Descending, sel.For(criteria.EndDate), "unspecified criteria default to descending")
	assert.Len(t, sel, 2)

	_, err = ParseSelection(map[string]string{"cost": "5, 4, 3, 2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemeMismatch))

	_, err = ParseSelection(map[string]string{"velocity": "null"})
	assert.Error(t, err)
}

func TestSelectionMerge(t *testing.T) {
	base := Selection{criteria.Cost: Null, criteria.Benefit: Null}
	merged := base.Merge(Selection{criteria.Cost: Descending})

	assert.Equal(t, Descending, merged.For(criteria.Cost))
	assert.Equal(t, Null, merged.For(criteria.Benefit))
	assert.Equal(t, Null, base.For(criteria.Cost), "merge must not mutate the receiver")
}

func TestNewEngineRejectsMismatch(t *testing.T) {
	_, err := NewEngine(Selection{criteria.Cost: Scheme("custom")}, ref)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemeMismatch))

	_, err = NewEngine(Selection{criteria.ID("velocity"): Null}, ref)
	assert.Error(t, err)
}

func TestScoreProjectDescending(t *testing.T) {
	engine, err := NewEngine(DefaultSelection(), ref)
	require.NoError(t, err)

	p := fullProject()
	engine.ScoreProject(&p)

	want := map[string]int{
		"project_cost_score":         4, // >=5mln
		"project_benefit_score":      2, // [1mln,5mln)
		"complexity_score":           3, // Medium
		"completion%_score":          3, // [50,75)
		"project_duration_score":     1, // <2
		"end_date_score":             4, // 31 days out
		"business_criticality_score": 2, // Globaly required
	}
	for column, points := range want {
		got, ok := p.Score(column)
		assert.True(t, ok, "column %s not scored", column)
		assert.Equal(t, points, got, "column %s", column)
	}
	assert.Equal(t, 19, p.TotalScore)
}

func TestScoreProjectNullScheme(t *testing.T) {
	sel := DefaultSelection()
	sel[criteria.Cost] = Null
	engine, err := NewEngine(sel, ref)
	require.NoError(t, err)

	p := fullProject()
	engine.ScoreProject(&p)

	cost, _ := p.Score("project_cost_score")
	assert.Equal(t, 0, cost)
	assert.Equal(t, 15, p.TotalScore)
}

func TestUnparseableCostScoresLowestBucket(t *testing.T) {
	for _, tt := range []struct {
		scheme Scheme
		want   int
	}{
		// <1mln is the last bucket, so it earns the last preset value.
		{Descending, 1},
		{Null, 0},
	} {
		t.Run(string(tt.scheme), func(t *testing.T) {
			engine, err := NewEngine(Selection{criteria.Cost: tt.scheme}, ref)
			require.NoError(t, err)

			p := project(map[string]string{portfolio.ColumnCost: "N/A"})
			engine.ScoreProject(&p)

			cost, _ := p.Score("project_cost_score")
			assert.Equal(t, engine.Score(criteria.Cost, "<1mln"), cost)
			assert.Equal(t, tt.want, cost)
		})
	}
}

func TestUnmappedCategoriesScoreZero(t *testing.T) {
	engine, err := NewEngine(DefaultSelection(), ref)
	require.NoError(t, err)

	p := fullProject()
	p.Values[portfolio.ColumnComplexity] = "Extreme"
	p.Values[portfolio.ColumnCriticality] = "whenever"
	p.Values[portfolio.ColumnEndDate] = "someday"
	engine.ScoreProject(&p)

	for _, column := range []string{"complexity_score", "business_criticality_score", "end_date_score"} {
		got, _ := p.Score(column)
		assert.Equal(t, 0, got, "column %s", column)
	}

	for _, b := range engine.Explain(&p) {
		if b.Criterion == criteria.Complexity {
			assert.False(t, b.Outcome.Classified)
		}
	}
}

func TestScoresStayInPresetRange(t *testing.T) {
	inputs := []string{"", "N/A", "0", "-5", "1e9", "High", "Low", "75%", "2024-01-01", "2030-12-31", criteria.CriticalityLegal}

	for _, scheme := range AllSchemes() {
		engine, err := NewEngine(Selection{
			criteria.Cost: scheme, criteria.Benefit: scheme, criteria.Complexity: scheme,
			criteria.Completion: scheme, criteria.Duration: scheme, criteria.EndDate: scheme,
			criteria.Criticality: scheme,
		}, ref)
		require.NoError(t, err)

		allowed := map[int]bool{0: true}
		for _, points := range Presets[scheme].Points {
			allowed[points] = true
		}

		for _, raw := range inputs {
			values := map[string]string{}
			for _, def := range criteria.All() {
				values[def.Column] = raw
			}
			p := project(values)
			engine.ScoreProject(&p)

			sum := 0
			for _, column := range engine.ScoreColumns() {
				got, ok := p.Score(column)
				require.True(t, ok)
				assert.True(t, allowed[got], "scheme %s raw %q column %s scored %d", scheme, raw, column, got)
				sum += got
			}
			assert.Equal(t, sum, p.TotalScore)
		}
	}
}

func TestScoringIsIdempotent(t *testing.T) {
	engine, err := NewEngine(DefaultSelection(), ref)
	require.NoError(t, err)

	p := fullProject()
	engine.ScoreProject(&p)
	first := map[string]int{}
	for k, v := range p.Scores {
		first[k] = v
	}
	firstTotal := p.TotalScore

	engine.ScoreProject(&p)
	assert.Equal(t, first, p.Scores)
	assert.Equal(t, firstTotal, p.TotalScore)
}

func TestScoreAll(t *testing.T) {
	engine, err := NewEngine(DefaultSelection(), ref, WithWorkers(3))
	require.NoError(t, err)

	table := portfolio.Table{}
	for i := 0; i < 50; i++ {
		p := fullProject()
		p.Row = i
		p.Values[portfolio.ColumnName] = fmt.Sprintf("project-%d", i)
		table.Projects = append(table.Projects, p)
	}

	err = engine.ScoreAll(context.Background(), &table)
	require.NoError(t, err)

	assert.Equal(t, engine.ScoreColumns(), table.ScoreColumns)
	for _, p := range table.Projects {
		assert.Equal(t, 19, p.TotalScore, "row %d", p.Row)
		assert.Len(t, p.Scores, 7)
	}
}

func TestScoreAllCancelled(t *testing.T) {
	engine, err := NewEngine(DefaultSelection(), ref)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table := portfolio.Table{Projects: []portfolio.Project{fullProject()}}
	err = engine.ScoreAll(ctx, &table)
	assert.Error(t, err)
}

func TestEngineScoreLooksUpBucketPoints(t *testing.T) {
	engine, err := NewEngine(Selection{criteria.Cost: Null}, ref)
	require.NoError(t, err)

	tests := []struct {
		id     criteria.ID
		bucket string
		want   int
	}{
		{criteria.Benefit, ">=10mln", 4},
		{criteria.Benefit, "[5mln,10mln)", 3},
		{criteria.Benefit, "<1mln", 1},
		{criteria.Complexity, "High", 4},
		{criteria.Complexity, "Low", 2},
		{criteria.EndDate, "(60,90]", 3},
		{criteria.Criticality, criteria.CriticalityNiceToHave, 1},
		{criteria.Cost, ">=5mln", 0},
		{criteria.Cost, "<1mln", 0},
		{criteria.Complexity, "Extreme", 0},
		{criteria.ID("risk"), "High", 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.id)+"/"+tt.bucket, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Score(tt.id, tt.bucket))
		})
	}
}

func TestEngineDefinitionsFollowScoreColumns(t *testing.T) {
	engine, err := NewEngine(nil, ref)
	require.NoError(t, err)

	defs := engine.Definitions()
	columns := engine.ScoreColumns()
	require.Len(t, defs, 7)
	for i, def := range defs {
		assert.Equal(t, def.ScoreColumn(), columns[i])
	}

	defs[0].Name = "changed"
	assert.Equal(t, "Project Cost", engine.Definitions()[0].Name, "callers get a copy")
}
