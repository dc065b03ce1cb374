package portfolio

// Distribution counts projects by (Complexity, Project Type).
// Both axes keep the order in which values were first seen.
type Distribution struct {
	Complexities []string                  `json:"complexities"`
	Types        []string                  `json:"types"`
	Counts       map[string]map[string]int `json:"counts"`
}

// CountByComplexityAndType groups projects on the two categorical columns.
// Rows with an empty value on either axis are left out, as a groupby would.
func CountByComplexityAndType(projects []Project) (dist Distribution) {
	dist.Counts = make(map[string]map[string]int)
	seenTypes := make(map[string]bool)

	for i := range projects {
		complexity := projects[i].Value(ColumnComplexity)
		projectType := projects[i].Value(ColumnType)
		if complexity == "" || projectType == "" {
			continue
		}

		byType, ok := dist.Counts[complexity]
		if !ok {
			byType = make(map[string]int)
			dist.Counts[complexity] = byType
			dist.Complexities = append(dist.Complexities, complexity)
		}
		if !seenTypes[projectType] {
			seenTypes[projectType] = true
			dist.Types = append(dist.Types, projectType)
		}
		byType[projectType]++
	}

	return dist
}

// Count returns the number of projects with the given complexity and type.
func (d Distribution) Count(complexity, projectType string) (count int) {
	count = d.Counts[complexity][projectType]
	return count
}

// Total returns the number of projects with the given complexity.
func (d Distribution) Total(complexity string) (total int) {
	for _, count := range d.Counts[complexity] {
		total += count
	}
	return total
}
