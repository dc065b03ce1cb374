package scoring

import (
	"sort"
	"strings"

	"github.com/nikogura/portfolio-prioritizer/pkg/criteria"
	"github.com/pkg/errors"
)

// ErrSchemeMismatch is returned for any scheme selection outside the presets.
var ErrSchemeMismatch = errors.New("scheme is not one of the scoring presets")

// Scheme is a closed choice of point presets.
type Scheme string

// The only legal scoring schemes.
const (
	Descending Scheme = "descending"
	Null       Scheme = "null"
)

// Preset describes the points a scheme awards, most favorable bucket first.
type Preset struct {
	Scheme Scheme
	Label  string
	Points []int
}

//nolint:gochecknoglobals // Scoring configuration constants
var Presets = map[Scheme]Preset{
	Descending: {
		Scheme: Descending,
		Label:  "4, 3, 2, 1",
		Points: []int{4, 3, 2, 1},
	},
	Null: {
		Scheme: Null,
		Label:  "0, 0, 0, 0",
		Points: []int{0, 0, 0, 0},
	},
}

// AllSchemes returns the presets in display order.
func AllSchemes() (schemes []Scheme) {
	schemes = []Scheme{Descending, Null}
	return schemes
}

// Label returns the preset's point listing, e.g. "4, 3, 2, 1".
func (s Scheme) Label() (label string) {
	label = Presets[s].Label
	return label
}

// ParseScheme accepts a scheme name or its point listing.
// Anything else is a configuration error; there is no fallback.
func ParseScheme(s string) (scheme Scheme, err error) {
	key := strings.ToLower(strings.TrimSpace(s))
	compact := strings.ReplaceAll(key, " ", "")

	switch {
	case key == string(Descending) || compact == "4,3,2,1":
		scheme = Descending
	case key == string(Null) || compact == "0,0,0,0":
		scheme = Null
	default:
		err = errors.Wrapf(ErrSchemeMismatch, "%q", s)
	}

	return scheme, err
}

// Table maps each bucket label of def to its points under scheme.
// The table's domain is exactly the criterion's bucket set.
func Table(def criteria.Definition, scheme Scheme) (table map[string]int, err error) {
	preset, ok := Presets[scheme]
	if !ok {
		err = errors.Wrapf(ErrSchemeMismatch, "criterion %s: %q", def.ID, scheme)
		return table, err
	}

	if len(def.Buckets) > len(preset.Points) {
		err = errors.Errorf("criterion %s has %d buckets but scheme %s scores only %d",
			def.ID, len(def.Buckets), scheme, len(preset.Points))
		return table, err
	}

	table = make(map[string]int, len(def.Buckets))
	for i, bucket := range def.Buckets {
		table[bucket] = preset.Points[i]
	}

	return table, err
}

// Points scores one outcome. Unclassified outcomes earn zero under every scheme.
func Points(table map[string]int, outcome criteria.Outcome) (points int) {
	if !outcome.Classified {
		return points
	}
	points = table[outcome.Bucket]
	return points
}

// Selection records the scheme chosen for each criterion.
// Criteria without an entry score under Descending.
type Selection map[criteria.ID]Scheme

// DefaultSelection selects Descending for every built-in criterion.
func DefaultSelection() (sel Selection) {
	sel = make(Selection)
	for _, def := range criteria.All() {
		sel[def.ID] = Descending
	}
	return sel
}

// For returns the scheme for id.
func (s Selection) For(id criteria.ID) (scheme Scheme) {
	scheme, ok := s[id]
	if !ok {
		scheme = Descending
	}
	return scheme
}

// ParseSelection validates raw criterion→scheme pairs, failing on the first
// unknown criterion or non-preset scheme. Only the given criteria are set.
func ParseSelection(raw map[string]string) (sel Selection, err error) {
	sel = make(Selection, len(raw))

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		var id criteria.ID
		id, err = criteria.ParseID(k)
		if err != nil {
			err = errors.Wrap(err, "invalid scheme selection")
			return sel, err
		}

		var scheme Scheme
		scheme, err = ParseScheme(raw[k])
		if err != nil {
			err = errors.Wrapf(err, "criterion %s", id)
			return sel, err
		}

		sel[id] = scheme
	}

	return sel, err
}

// Merge returns a copy of s with other's entries layered on top.
func (s Selection) Merge(other Selection) (merged Selection) {
	merged = make(Selection, len(s)+len(other))
	for id, scheme := range s {
		merged[id] = scheme
	}
	for id, scheme := range other {
		merged[id] = scheme
	}
	return merged
}

// Validate fails if any entry is not a preset.
func (s Selection) Validate() (err error) {
	for id, scheme := range s {
		if _, ok := Presets[scheme]; !ok {
			err = errors.Wrapf(ErrSchemeMismatch, "criterion %s: %q", id, scheme)
			return err
		}
	}
	return err
}
