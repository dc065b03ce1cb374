package ranking

import (
	"sort"

	"github.com/nikogura/portfolio-prioritizer/pkg/portfolio"
)

// DefaultK is the size of the priority list shown to stakeholders.
const DefaultK = 10

// Rank orders projects by total score, highest first. Equal totals keep their
// input order, so the result is stable across runs on unchanged input.
// The input slice is not modified.
func Rank(projects []portfolio.Project) (ranked []portfolio.Project) {
	ranked = make([]portfolio.Project, len(projects))
	copy(ranked, projects)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	return ranked
}

// TopK returns at most k projects in rank order. k <= 0 yields an empty list.
func TopK(projects []portfolio.Project, k int) (top []portfolio.Project) {
	if k <= 0 {
		top = []portfolio.Project{}
		return top
	}

	top = Rank(projects)
	if len(top) > k {
		top = top[:k]
	}

	return top
}
