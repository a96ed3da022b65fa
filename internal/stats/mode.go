// Package stats computes descriptive statistics over bikeshare trips and
// renders them as a text report.
package stats

import (
	"cmp"
	"sort"
)

// Status describes whether a statistic could be computed.
type Status int

const (
	// StatusOK means the value was computed.
	StatusOK Status = iota
	// StatusNoData means no non-missing input remained.
	StatusNoData
	// StatusFilterSpecific means the caller already filtered on this dimension.
	StatusFilterSpecific
	// StatusNotAvailable means the city's dataset has no such column.
	StatusNotAvailable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoData:
		return "no data"
	case StatusFilterSpecific:
		return "filter was specific"
	case StatusNotAvailable:
		return "field not available"
	default:
		return "unknown"
	}
}

// Value is a statistic together with its status. Value is only meaningful
// when Status is StatusOK.
type Value[T any] struct {
	Value  T
	Status Status
}

// OK reports whether the value was computed.
func (v Value[T]) OK() bool {
	return v.Status == StatusOK
}

func okValue[T any](v T) Value[T] {
	return Value[T]{Value: v, Status: StatusOK}
}

func statusValue[T any](s Status) Value[T] {
	return Value[T]{Status: s}
}

// Count is one row of a frequency table.
type Count struct {
	Value string
	Count int
}

// Mode returns the most frequent value. Ties go to the smallest value, so
// repeated runs over the same data agree.
func Mode[T cmp.Ordered](values []T) (T, bool) {
	var best T
	if len(values) == 0 {
		return best, false
	}
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	bestCount := 0
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best = v
			bestCount = n
		}
	}
	return best, true
}

func modeValue[T cmp.Ordered](values []T) Value[T] {
	v, ok := Mode(values)
	if !ok {
		return statusValue[T](StatusNoData)
	}
	return okValue(v)
}

// Frequencies counts each distinct value, highest count first. Equal counts
// keep first-seen order.
func Frequencies(values []string) []Count {
	if len(values) == 0 {
		return nil
	}
	index := map[string]int{}
	var out []Count
	for _, v := range values {
		i, ok := index[v]
		if !ok {
			index[v] = len(out)
			out = append(out, Count{Value: v, Count: 1})
			continue
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
