package staffing

import (
	"time"

	"github.com/nikogura/portfolio-prioritizer/pkg/criteria"
	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
)

// Allocation is the staffing demand of one ranked project.
type Allocation struct {
	Rank    int               `json:"rank"` // 1-based
	Project portfolio.Project `json:"project"`
	Base    Vector            `json:"base"`    // from the demand table alone
	Demand  Vector            `json:"demand"`  // after the cascade
	Carried bool              `json:"carried"` // true when the previous rank's demand was added
}

// Cascade derives demand for ranked projects and applies one left-to-right pass:
// when a project ends strictly later than the project ranked just above it, that
// project's (already cascaded) demand is added to its own. Order is rank order,
// never date order. Pairs where either end date cannot be parsed are left alone.
func (t *Table) Cascade(ranked []portfolio.Project, ref criteria.Reference) (allocations []Allocation) {
	allocations = make([]Allocation, len(ranked))
	ends := make([]time.Time, len(ranked))
	parsed := make([]bool, len(ranked))

	for i := range ranked {
		base := t.Demand(ranked[i].Value(portfolio.ColumnComplexity), ranked[i].Value(portfolio.ColumnType))
		allocations[i] = Allocation{
			Rank:    i + 1,
			Project: ranked[i],
			Base:    base,
			Demand:  base,
		}
		ends[i], parsed[i] = ref.ParseDate(ranked[i].Value(portfolio.ColumnEndDate))
	}

	for i := 1; i < len(allocations); i++ {
		if !parsed[i] || !parsed[i-1] {
			continue
		}
		if ends[i].After(ends[i-1]) {
			allocations[i].Demand = allocations[i].Demand.Add(allocations[i-1].Demand)
			allocations[i].Carried = true
		}
	}

	return allocations
}

// Cascade runs the pass with the standard demand table.
func Cascade(ranked []portfolio.Project, ref criteria.Reference) (allocations []Allocation) {
	allocations = defaultTable.Cascade(ranked, ref)
	return allocations
}

// Total sums the post-cascade demand of every allocation.
func Total(allocations []Allocation) (total Vector) {
	for _, a := range allocations {
		total = total.Add(a.Demand)
	}
	return total
}
