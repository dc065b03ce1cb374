package criteria

import (
	"strings"
	"time"
)

// Outcome is the result of classifying one raw value.
// An unclassified outcome means the value matched no bucket at all, which is
// distinct from landing in the least favorable bucket.
type Outcome struct {
	Bucket     string `json:"bucket,omitempty"`
	Index      int    `json:"index"`
	Classified bool   `json:"classified"`
}

// InBucket returns a classified outcome for the bucket at index.
func InBucket(index int) (outcome Outcome) {
	outcome = Outcome{Index: index, Classified: true}
	return outcome
}

// Unclassified returns the outcome for values no bucket accepts.
func Unclassified() (outcome Outcome) {
	outcome = Outcome{Index: -1}
	return outcome
}

// Reference carries evaluation-time inputs for date-relative rules.
// Now is injected, never read from the wall clock inside a rule.
type Reference struct {
	Now     time.Time
	Layouts []string // extra date layouts tried before the built-in ones
}

// thresholdRule buckets a numeric value against descending cutpoints.
// Each bucket is right-open: value >= cuts[i] lands in bucket i.
// Unparseable input is coerced to zero by parse.
func thresholdRule(parse func(string) float64, cuts ...float64) (rule Rule) {
	rule = func(raw string, _ Reference) (outcome Outcome) {
		value := parse(raw)
		for i, cut := range cuts {
			if value >= cut {
				outcome = InBucket(i)
				return outcome
			}
		}
		outcome = InBucket(len(cuts))
		return outcome
	}
	return rule
}

// categoryRule maps a fixed set of labels to their own buckets.
func categoryRule(labels ...string) (rule Rule) {
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	rule = func(raw string, _ Reference) (outcome Outcome) {
		i, ok := index[strings.TrimSpace(raw)]
		if !ok {
			outcome = Unclassified()
			return outcome
		}
		outcome = InBucket(i)
		return outcome
	}
	return rule
}

// daysRemainingRule buckets the whole days between ref.Now and the parsed date
// against ascending, right-closed cutpoints: days <= limits[i] lands in bucket i.
func daysRemainingRule(limits ...int) (rule Rule) {
	rule = func(raw string, ref Reference) (outcome Outcome) {
		end, ok := ref.ParseDate(raw)
		if !ok {
			outcome = Unclassified()
			return outcome
		}

		days := DaysBetween(ref.Now, end)
		for i, limit := range limits {
			if days <= limit {
				outcome = InBucket(i)
				return outcome
			}
		}
		outcome = InBucket(len(limits))
		return outcome
	}
	return rule
}

// DaysBetween returns to minus from in whole days, truncated toward zero.
func DaysBetween(from, to time.Time) (days int) {
	days = int(to.Sub(from) / (24 * time.Hour))
	return days
}
