package criteria

import (
	"strconv"
	"strings"
	"time"
)

//nolint:gochecknoglobals // Date layouts accepted for start/end dates
var defaultLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// parseAmount reads a currency-like value such as "5,000,000".
func parseAmount(raw string) (value float64) {
	value = parseNumber(strings.ReplaceAll(raw, ",", ""))
	return value
}

// parsePercent reads a percentage such as "75%" or "74.999".
func parsePercent(raw string) (value float64) {
	value = parseNumber(strings.ReplaceAll(raw, "%", ""))
	return value
}

// parseNumber reads a plain number, coercing anything unparseable to zero.
func parseNumber(raw string) (value float64) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		value = 0
	}
	return value
}

// ParseDate tries the configured layouts, then the built-in ones.
// Dates without a zone are read in the location of r.Now.
func (r Reference) ParseDate(raw string) (t time.Time, ok bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return t, ok
	}

	loc := r.Now.Location()

	for _, layouts := range [][]string{r.Layouts, defaultLayouts} {
		for _, layout := range layouts {
			parsed, err := time.ParseInLocation(layout, value, loc)
			if err == nil {
				t = parsed
				ok = true
				return t, ok
			}
		}
	}

	return t, ok
}
