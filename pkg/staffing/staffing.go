package staffing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Role is a developer discipline.
type Role string

// Roles that staffing demand is counted in.
const (
	RoleWeb    Role = "Web"
	RoleMobile Role = "Mobile"
	RoleML     Role = "ML"
)

// AllRoles returns the roles in display order.
func AllRoles() (roles []Role) {
	roles = []Role{RoleWeb, RoleMobile, RoleML}
	return roles
}

// Vector is a headcount per role.
type Vector struct {
	Web    int `json:"web_developers"`
	Mobile int `json:"mobile_developers"`
	ML     int `json:"ml_developers"`
}

// Add returns the component-wise sum.
func (v Vector) Add(o Vector) (sum Vector) {
	sum = Vector{
		Web:    v.Web + o.Web,
		Mobile: v.Mobile + o.Mobile,
		ML:     v.ML + o.ML,
	}
	return sum
}

// Get returns the headcount for role.
func (v Vector) Get(role Role) (count int) {
	switch role {
	case RoleWeb:
		count = v.Web
	case RoleMobile:
		count = v.Mobile
	case RoleML:
		count = v.ML
	}
	return count
}

// Total returns the headcount across all roles.
func (v Vector) Total() (total int) {
	total = v.Web + v.Mobile + v.ML
	return total
}

// IsZero reports whether no role is staffed.
func (v Vector) IsZero() (zero bool) {
	zero = v == Vector{}
	return zero
}

func (v Vector) String() (s string) {
	s = fmt.Sprintf("Web:%d Mobile:%d ML:%d", v.Web, v.Mobile, v.ML)
	return s
}

// Complexity levels that drive headcount.
const (
	ComplexityHigh   = "High"
	ComplexityMedium = "Medium"
	ComplexityLow    = "Low"
)

// Project types that drive the role mix.
const (
	TypeWebApp       = "Web App"
	TypeMobileApp    = "Mobile App"
	TypeMLApp        = "ML and AI App"
	TypeWebAndMobile = "Web and Mobile"
)

// Key is one (complexity, project type) combination.
type Key struct {
	Complexity string
	Type       string
}

// Keys returns all twelve combinations a demand table must cover.
func Keys() (keys []Key) {
	for _, complexity := range []string{ComplexityHigh, ComplexityMedium, ComplexityLow} {
		for _, projectType := range []string{TypeWebApp, TypeMobileApp, TypeMLApp, TypeWebAndMobile} {
			keys = append(keys, Key{Complexity: complexity, Type: projectType})
		}
	}
	return keys
}

// Table maps each combination to its staffing demand.
type Table struct {
	demand map[Key]Vector
}

// NewTable builds a demand table, refusing one with missing or unknown combinations.
func NewTable(entries map[Key]Vector) (table *Table, err error) {
	required := Keys()
	expected := make(map[Key]bool, len(required))

	var missing []string
	for _, key := range required {
		expected[key] = true
		if _, ok := entries[key]; !ok {
			missing = append(missing, key.Complexity+"/"+key.Type)
		}
	}

	if len(missing) > 0 {
		err = errors.Errorf("staffing table missing combinations: %s", strings.Join(missing, ", "))
		return table, err
	}

	var unknown []string
	for key := range entries {
		if !expected[key] {
			unknown = append(unknown, key.Complexity+"/"+key.Type)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		err = errors.Errorf("staffing table has unknown combinations: %s", strings.Join(unknown, ", "))
		return table, err
	}

	table = &Table{demand: make(map[Key]Vector, len(entries))}
	for key, vector := range entries {
		table.demand[key] = vector
	}

	return table, err
}

// Demand returns the base vector for a combination; anything outside the table is zero.
func (t *Table) Demand(complexity, projectType string) (vector Vector) {
	vector = t.demand[Key{Complexity: strings.TrimSpace(complexity), Type: strings.TrimSpace(projectType)}]
	return vector
}

//nolint:gochecknoglobals // Staffing configuration constants
var defaultEntries = map[Key]Vector{
	{ComplexityHigh, TypeWebApp}:         {Web: 4},
	{ComplexityHigh, TypeMobileApp}:      {Mobile: 4},
	{ComplexityHigh, TypeMLApp}:          {ML: 4},
	{ComplexityHigh, TypeWebAndMobile}:   {Web: 4, Mobile: 4},
	{ComplexityMedium, TypeWebApp}:       {Web: 2},
	{ComplexityMedium, TypeMobileApp}:    {Mobile: 2},
	{ComplexityMedium, TypeMLApp}:        {ML: 2},
	{ComplexityMedium, TypeWebAndMobile}: {Web: 2, Mobile: 2},
	{ComplexityLow, TypeWebApp}:          {Web: 1},
	{ComplexityLow, TypeMobileApp}:       {Mobile: 1},
	{ComplexityLow, TypeMLApp}:           {ML: 1},
	{ComplexityLow, TypeWebAndMobile}:    {Web: 1, Mobile: 1},
}

//nolint:gochecknoglobals // Built once from defaultEntries
var defaultTable = mustTable(defaultEntries)

func mustTable(entries map[Key]Vector) (table *Table) {
	table, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return table
}

// DefaultTable returns the standard demand table.
func DefaultTable() (table *Table) {
	table = defaultTable
	return table
}

// Demand looks up the standard table.
func Demand(complexity, projectType string) (vector Vector) {
	vector = defaultTable.Demand(complexity, projectType)
	return vector
}
