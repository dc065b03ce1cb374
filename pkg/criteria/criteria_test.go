package criteria

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals // Fixed evaluation instant for deterministic date buckets
var refNow = Reference{Now: time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)}

func mustLookup(t *testing.T, id ID) Definition {
	t.Helper()
	def, ok := Lookup(id)
	require.True(t, ok, "criterion %s not registered", id)
	return def
}

func TestAllOrderAndShape(t *testing.T) {
	defs := All()
	require.Len(t, defs, 7)

	want := []ID{Cost, Benefit, Complexity, Completion, Duration, EndDate, Criticality}
	for i, def := range defs {
		assert.Equal(t, want[i], def.ID)
		assert.Len(t, def.Display, len(def.Buckets), "criterion %s", def.ID)
		assert.NotEmpty(t, def.Column)
	}

	// Mutating the returned slice must not leak into the registry.
	defs[0].Name = "changed"
	assert.Equal(t, "Project Cost", mustLookup(t, Cost).Name)
}

func TestScoreColumnNames(t *testing.T) {
	want := map[ID]string{
		Cost:        "project_cost_score",
		Benefit:     "project_benefit_score",
		Complexity:  "complexity_score",
		Completion:  "completion%_score",
		Duration:    "project_duration_score",
		EndDate:     "end_date_score",
		Criticality: "business_criticality_score",
	}
	for id, column := range want {
		assert.Equal(t, column, mustLookup(t, id).ScoreColumn())
	}
}

func TestCostBoundaries(t *testing.T) {
	def := mustLookup(t, Cost)
	tests := []struct {
		raw  string
		want string
	}{
		{"5,000,000", ">=5mln"},
		{"5000000", ">=5mln"},
		{"4,999,999", "[3mln,5mln)"},
		{"3,000,000", "[3mln,5mln)"},
		{"2,999,999.99", "[1mln,3mln)"},
		{"1,000,000", "[1mln,3mln)"},
		{"999,999", "<1mln"},
		{"N/A", "<1mln"},
		{"", "<1mln"},
		{" 12,500,000 ", ">=5mln"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			outcome := def.Classify(tt.raw, refNow)
			assert.True(t, outcome.Classified)
			assert.Equal(t, tt.want, outcome.Bucket)
		})
	}
}

func TestBenefitBoundaries(t *testing.T) {
	def := mustLookup(t, Benefit)
	assert.Equal(t, ">=10mln", def.Classify("10,000,000", refNow).Bucket)
	assert.Equal(t, "[5mln,10mln)", def.Classify("9,999,999", refNow).Bucket)
	assert.Equal(t, "[5mln,10mln)", def.Classify("5,000,000", refNow).Bucket)
	assert.Equal(t, "[1mln,5mln)", def.Classify("1,000,000", refNow).Bucket)
	assert.Equal(t, "<1mln", def.Classify("unknown", refNow).Bucket)
}

func TestCompletionBoundaries(t *testing.T) {
	def := mustLookup(t, Completion)
	tests := []struct {
		raw  string
		want string
	}{
		{"75", ">=75%"},
		{"75%", ">=75%"},
		{"100%", ">=75%"},
		{"74.999", "[50%,75%)"},
		{"50%", "[50%,75%)"},
		{"49.9%", "[25%,50%)"},
		{"25", "[25%,50%)"},
		{"24%", "<25%"},
		{"done", "<25%"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, def.Classify(tt.raw, refNow).Bucket)
		})
	}
}

func TestDurationBoundaries(t *testing.T) {
	def := mustLookup(t, Duration)
	assert.Equal(t, ">=9", def.Classify("9", refNow).Bucket)
	assert.Equal(t, "[6,9)", def.Classify("8.5", refNow).Bucket)
	assert.Equal(t, "[6,9)", def.Classify("6", refNow).Bucket)
	assert.Equal(t, "[2,6)", def.Classify("2", refNow).Bucket)
	assert.Equal(t, "<2", def.Classify("1", refNow).Bucket)
	assert.Equal(t, "<2", def.Classify("twelve", refNow).Bucket)
}

func TestCategoryRules(t *testing.T) {
	complexity := mustLookup(t, Complexity)
	assert.Equal(t, InBucket(0).Index, complexity.Classify("High", refNow).Index)
	assert.Equal(t, "Medium", complexity.Classify("Medium", refNow).Bucket)
	assert.Equal(t, "Low", complexity.Classify(" Low ", refNow).Bucket)

	unknown := complexity.Classify("Extreme", refNow)
	assert.False(t, unknown.Classified)
	assert.Empty(t, unknown.Bucket)

	criticality := mustLookup(t, Criticality)
	assert.Equal(t, 0, criticality.Classify(CriticalityLegal, refNow).Index)
	assert.Equal(t, 3, criticality.Classify(CriticalityNiceToHave, refNow).Index)
	assert.False(t, criticality.Classify("nice to have", refNow).Classified)
}

func TestEndDateBuckets(t *testing.T) {
	def := mustLookup(t, EndDate)
	tests := []struct {
		name       string
		raw        string
		want       string
		classified bool
	}{
		{"already past", "2024-06-01", "<=60", true},
		{"exactly sixty days", "2025-03-02T12:00:00Z", "<=60", true},
		{"sixty days and change", "2025-03-03", "<=60", true},
		{"sixty one days", "2025-03-04", "(60,90]", true},
		{"ninety days", "2025-04-01T12:00:00Z", "(60,90]", true},
		{"ninety one days", "2025-04-03", "(90,180]", true},
		{"one eighty", "2025-06-30T12:00:00Z", "(90,180]", true},
		{"far future", "2026-01-01", ">180", true},
		{"slash format", "12/31/2025", ">180", true},
		{"garbage", "next spring", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := def.Classify(tt.raw, refNow)
			assert.Equal(t, tt.classified, outcome.Classified)
			assert.Equal(t, tt.want, outcome.Bucket)
		})
	}
}

func TestEndDateDependsOnlyOnReference(t *testing.T) {
	def := mustLookup(t, EndDate)
	first := def.Classify("2025-02-15", refNow)
	second := def.Classify("2025-02-15", refNow)
	assert.Equal(t, first, second)

	later := Reference{Now: refNow.Now.AddDate(-1, 0, 0)}
	assert.Equal(t, ">180", def.Classify("2025-02-15", later).Bucket)
}

func TestCustomLayouts(t *testing.T) {
	ref := Reference{Now: refNow.Now, Layouts: []string{"02-Jan-2006"}}
	parsed, ok := ref.ParseDate("15-Mar-2025")
	require.True(t, ok)
	assert.Equal(t, time.March, parsed.Month())

	_, ok = refNow.ParseDate("15-Mar-2025")
	assert.False(t, ok)
}

func TestDaysBetweenTruncates(t *testing.T) {
	from := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysBetween(from, from.Add(23*time.Hour)))
	assert.Equal(t, 1, DaysBetween(from, from.Add(25*time.Hour)))
	assert.Equal(t, 0, DaysBetween(from, from.Add(-23*time.Hour)))
	assert.Equal(t, -1, DaysBetween(from, from.Add(-25*time.Hour)))
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input     string
		want      ID
		wantError bool
	}{
		{"Project Cost", Cost, false},
		{"project_cost", Cost, false},
		{"project_cost_score", Cost, false},
		{"cost", Cost, false},
		{"Completion%", Completion, false},
		{"completion", Completion, false},
		{"End Date", EndDate, false},
		{"business-criticality", Criticality, false},
		{"velocity", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestNewDefinition(t *testing.T) {
	rule := func(raw string, _ Reference) Outcome {
		if raw == "yes" {
			return InBucket(0)
		}
		return InBucket(1)
	}

	def, err := NewDefinition("risk", "Risk", "Risk", []string{"risky", "safe"}, nil, rule)
	require.NoError(t, err)
	assert.Equal(t, "risk_score", def.ScoreColumn())
	assert.Equal(t, "risky", def.Classify("yes", refNow).Bucket)
	assert.Equal(t, "safe", def.DisplayLabel("safe"))

	_, err = NewDefinition("risk", "Risk", "Risk", nil, nil, rule)
	assert.Error(t, err)

	_, err = NewDefinition("risk", "Risk", "Risk", []string{"a"}, nil, nil)
	assert.Error(t, err)

	_, err = NewDefinition("risk", "Risk", "Risk", []string{"a", "b"}, []string{"x"}, rule)
	assert.Error(t, err)
}

func TestDisplayLabel(t *testing.T) {
	def := mustLookup(t, Cost)
	assert.Equal(t, "from 4.9mln to 3mln", def.DisplayLabel("[3mln,5mln)"))
	assert.Equal(t, "unknown", def.DisplayLabel("unknown"))
}
