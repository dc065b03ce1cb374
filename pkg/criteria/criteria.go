package criteria

import (
	"strings"

	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
	"github.com/pkg/errors"
)

// ID identifies a criterion. Its string form is the score column stem.
type ID string

// The built-in criteria, in scoring order.
const (
	Cost        ID = "project_cost"
	Benefit     ID = "project_benefit"
	Complexity  ID = "complexity"
	Completion  ID = "completion%"
	Duration    ID = "project_duration"
	EndDate     ID = "end_date"
	Criticality ID = "business_criticality"
)

// Business criticality categories, most critical first.
const (
	CriticalityLegal      = "Legally required/Key market project"
	CriticalityBusiness   = "Function/Business priority (OMP)"
	CriticalityGlobal     = "Globaly required"
	CriticalityNiceToHave = "Acceptable workaround available – “nice to have” project"
)

// Rule maps a raw cell to an outcome. Rules are total: they never fail.
type Rule func(raw string, ref Reference) (outcome Outcome)

// Definition is the immutable configuration of one criterion.
type Definition struct {
	ID      ID
	Name    string   // display name, e.g. "Project Cost"
	Column  string   // source column read by the rule
	Buckets []string // canonical labels, most favorable first
	Display []string // human wording for each bucket
	rule    Rule
}

// NewDefinition builds a criterion from a caller-supplied rule.
func NewDefinition(id ID, name, column string, buckets, display []string, rule Rule) (def Definition, err error) {
	if id == "" {
		err = errors.New("criterion id is required")
		return def, err
	}

	if len(buckets) == 0 {
		err = errors.Errorf("criterion %s has no buckets", id)
		return def, err
	}

	if len(display) != 0 && len(display) != len(buckets) {
		err = errors.Errorf("criterion %s has %d buckets but %d display labels", id, len(buckets), len(display))
		return def, err
	}

	if rule == nil {
		err = errors.Errorf("criterion %s has no classification rule", id)
		return def, err
	}

	if len(display) == 0 {
		display = buckets
	}

	def = Definition{
		ID:      id,
		Name:    name,
		Column:  column,
		Buckets: append([]string(nil), buckets...),
		Display: append([]string(nil), display...),
		rule:    rule,
	}

	return def, err
}

// Classify runs the criterion's rule on a raw cell.
func (d Definition) Classify(raw string, ref Reference) (outcome Outcome) {
	outcome = d.rule(raw, ref)
	if outcome.Classified && outcome.Bucket == "" && outcome.Index < len(d.Buckets) {
		outcome.Bucket = d.Buckets[outcome.Index]
	}
	return outcome
}

// ScoreColumn is the output column carrying this criterion's points.
func (d Definition) ScoreColumn() (column string) {
	column = string(d.ID) + "_score"
	return column
}

// DisplayLabel returns the human wording for a canonical bucket label.
func (d Definition) DisplayLabel(bucket string) (label string) {
	for i, b := range d.Buckets {
		if b == bucket && i < len(d.Display) {
			label = d.Display[i]
			return label
		}
	}
	label = bucket
	return label
}

//nolint:gochecknoglobals // Built-in criteria table
var builtins = []Definition{
	{
		ID:      Cost,
		Name:    "Project Cost",
		Column:  portfolio.ColumnCost,
		Buckets: []string{">=5mln", "[3mln,5mln)", "[1mln,3mln)", "<1mln"},
		Display: []string{">=5mln", "from 4.9mln to 3mln", "from 2.9mln to 1mln", "<1mln"},
		rule:    thresholdRule(parseAmount, 5_000_000, 3_000_000, 1_000_000),
	},
	{
		ID:      Benefit,
		Name:    "Project Benefit",
		Column:  portfolio.ColumnBenefit,
		Buckets: []string{">=10mln", "[5mln,10mln)", "[1mln,5mln)", "<1mln"},
		Display: []string{">=10mln", "from 9.9mln to 5mln", "from 4.9mln to 1mln", "<1mln"},
		rule:    thresholdRule(parseAmount, 10_000_000, 5_000_000, 1_000_000),
	},
	{
		ID:      Complexity,
		Name:    "Complexity",
		Column:  portfolio.ColumnComplexity,
		Buckets: []string{"High", "Medium", "Low"},
		Display: []string{"High", "Medium", "Low"},
		rule:    categoryRule("High", "Medium", "Low"),
	},
	{
		ID:      Completion,
		Name:    "Completion%",
		Column:  portfolio.ColumnCompletion,
		Buckets: []string{">=75%", "[50%,75%)", "[25%,50%)", "<25%"},
		Display: []string{">=75%", "from 75 to 50%", "from 50 to 25%", "<25%"},
		rule:    thresholdRule(parsePercent, 75, 50, 25),
	},
	{
		ID:      Duration,
		Name:    "Project duration",
		Column:  portfolio.ColumnDuration,
		Buckets: []string{">=9", "[6,9)", "[2,6)", "<2"},
		Display: []string{">= 9 months", ">= 6 months", ">= 2 months", "< 2 months"},
		rule:    thresholdRule(parseNumber, 9, 6, 2),
	},
	{
		ID:      EndDate,
		Name:    "End Date",
		Column:  portfolio.ColumnEndDate,
		Buckets: []string{"<=60", "(60,90]", "(90,180]", ">180"},
		Display: []string{"today<=60", "today from 60 to 90", "today from 90 to 180", "today>180"},
		rule:    daysRemainingRule(60, 90, 180),
	},
	{
		ID:      Criticality,
		Name:    "Business criticality",
		Column:  portfolio.ColumnCriticality,
		Buckets: []string{CriticalityLegal, CriticalityBusiness, CriticalityGlobal, CriticalityNiceToHave},
		Display: []string{CriticalityLegal, CriticalityBusiness, CriticalityGlobal, CriticalityNiceToHave},
		rule:    categoryRule(CriticalityLegal, CriticalityBusiness, CriticalityGlobal, CriticalityNiceToHave),
	},
}

// All returns the seven built-in criteria in scoring order.
func All() (defs []Definition) {
	defs = make([]Definition, len(builtins))
	copy(defs, builtins)
	return defs
}

// Lookup finds a built-in criterion by ID.
func Lookup(id ID) (def Definition, ok bool) {
	for _, d := range builtins {
		if d.ID == id {
			def = d
			ok = true
			return def, ok
		}
	}
	return def, ok
}

//nolint:gochecknoglobals // Shorthand accepted on the command line and in config
var aliases = map[string]ID{
	"cost":        Cost,
	"benefit":     Benefit,
	"completion":  Completion,
	"duration":    Duration,
	"criticality": Criticality,
}

// ParseID accepts a criterion ID, its display name, its score column, or a short alias.
// "Project Cost", "project_cost", "project_cost_score" and "cost" all resolve to Cost.
func ParseID(s string) (id ID, err error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, "_score")
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	if alias, ok := aliases[key]; ok {
		id = alias
		return id, err
	}

	if _, ok := Lookup(ID(key)); ok {
		id = ID(key)
		return id, err
	}

	err = errors.Errorf("unknown criterion: %q", s)
	return id, err
}
