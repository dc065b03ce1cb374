package portfolio

// Source column names, verbatim as they appear in the input header.
const (
	ColumnDescription = "Project Description"
	ColumnType        = "Project Type"
	ColumnManager     = "Project Manager"
	ColumnRegion      = "Region"
	ColumnDepartment  = "Department"
	ColumnCost        = "Project Cost"
	ColumnBenefit     = "Project Benefit"
	ColumnComplexity  = "Complexity"
	ColumnStatus      = "Status"
	ColumnCompletion  = "Completion%"
	ColumnDuration    = "Project duration"
	ColumnStartDate   = "Start Date"
	ColumnEndDate     = "End Date"
	ColumnCriticality = "Business criticality"
	ColumnName        = "Project Name"
)

// ColumnTotalScore is the output column holding the summed score.
const ColumnTotalScore = "total_score"

// RequiredColumns lists every column the loader insists on, in reporting order.
//
//nolint:gochecknoglobals // Schema definition
var RequiredColumns = []string{
	ColumnDescription,
	ColumnType,
	ColumnManager,
	ColumnRegion,
	ColumnDepartment,
	ColumnCost,
	ColumnBenefit,
	ColumnComplexity,
	ColumnStatus,
	ColumnCompletion,
	ColumnDuration,
	ColumnStartDate,
	ColumnEndDate,
	ColumnCriticality,
	ColumnName,
}

// Project is one row of the portfolio table together with its scores.
type Project struct {
	Row        int               `json:"row"` // zero-based position in the input
	Values     map[string]string `json:"values"`          // first cell under each header name
	Cells      []string          `json:"cells,omitempty"` // every cell in input column order
	Scores     map[string]int    `json:"scores,omitempty"` // keyed by score column
	TotalScore int               `json:"total_score"`
}

// Table is the full portfolio as loaded from the source.
type Table struct {
	Columns      []string  `json:"columns"`       // input header order
	ScoreColumns []string  `json:"score_columns"` // populated once scoring has run
	Projects     []Project `json:"projects"`
}

// Value returns the raw cell for column, or "" when absent.
func (p *Project) Value(column string) (value string) {
	value = p.Values[column]
	return value
}

// Name returns the project name used in reports.
func (p *Project) Name() (name string) {
	name = p.Value(ColumnName)
	return name
}

// SetScore records the points for one score column and recomputes the total.
func (p *Project) SetScore(column string, points int) {
	if p.Scores == nil {
		p.Scores = make(map[string]int)
	}
	p.Scores[column] = points
	p.TotalScore = p.ComputeTotal()
}

// Score returns the points recorded for column.
func (p *Project) Score(column string) (points int, ok bool) {
	points, ok = p.Scores[column]
	return points, ok
}

// ComputeTotal sums every recorded per-criterion score.
func (p *Project) ComputeTotal() (total int) {
	for _, points := range p.Scores {
		total += points
	}
	return total
}
