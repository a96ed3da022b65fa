// Package trips loads bikeshare trip datasets and filters them by month and day.
package trips

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// All is the filter value that applies no restriction.
const All = "All"

// City maps a recognized city name to its dataset file.
type City struct {
	Name string
	File string
}

// Vocabulary holds the recognized cities, months and days. It is immutable
// once constructed; accessors return copies.
type Vocabulary struct {
	cities []City
	months []string
	days   []string
}

// DefaultVocabulary returns the three bikeshare cities, January through June,
// and a week starting on Saturday, each with the All sentinel where it applies.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(
		[]City{
			{Name: "chicago", File: "chicago.csv"},
			{Name: "new york city", File: "new_york_city.csv"},
			{Name: "washington", File: "washington.csv"},
		},
		[]string{"January", "February", "March", "April", "May", "June", All},
		[]string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", All},
	)
}

// NewVocabulary builds a vocabulary from the given values.
func NewVocabulary(cities []City, months, days []string) Vocabulary {
	return Vocabulary{
		cities: append([]City(nil), cities...),
		months: append([]string(nil), months...),
		days:   append([]string(nil), days...),
	}
}

// Cities returns the recognized cities in declaration order.
func (v Vocabulary) Cities() []City {
	return append([]City(nil), v.cities...)
}

// CityNames returns the recognized city names in declaration order.
func (v Vocabulary) CityNames() []string {
	names := make([]string, len(v.cities))
	for i, c := range v.cities {
		names[i] = c.Name
	}
	return names
}

// Months returns the recognized month values, including All.
func (v Vocabulary) Months() []string {
	return append([]string(nil), v.months...)
}

// Days returns the recognized day values, including All.
func (v Vocabulary) Days() []string {
	return append([]string(nil), v.days...)
}

// DatasetFile resolves a city to its dataset file name.
func (v Vocabulary) DatasetFile(city string) (string, bool) {
	for _, c := range v.cities {
		if c.Name == city {
			return c.File, true
		}
	}
	return "", false
}

// Validate checks every part of the filter against the vocabulary.
func (v Vocabulary) Validate(f model.Filter) error {
	if _, ok := v.DatasetFile(f.City); !ok {
		return fmt.Errorf("%w: unknown city %q (expected one of: %s)", ErrInvalidFilter, f.City, strings.Join(v.CityNames(), ", "))
	}
	if !contains(v.months, f.Month) {
		return fmt.Errorf("%w: unknown month %q (expected one of: %s)", ErrInvalidFilter, f.Month, strings.Join(v.months, ", "))
	}
	if !contains(v.days, f.Day) {
		return fmt.Errorf("%w: unknown day %q (expected one of: %s)", ErrInvalidFilter, f.Day, strings.Join(v.days, ", "))
	}
	return nil
}

// NormalizeCity lowercases and trims user input for a city name.
func NormalizeCity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeTitle title-cases user input for a month or day value.
func NormalizeTitle(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		if !unicode.IsLetter(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		startOfWord = false
	}
	return b.String()
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
