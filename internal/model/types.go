// Package model defines shared data structures.
package model

import "time"

// Field names an optional trip column that only some cities provide.
type Field string

// Optional fields.
const (
	FieldGender    Field = "Gender"
	FieldBirthYear Field = "Birth Year"
)

// Filter selects the city and the month/day restriction for a report.
type Filter struct {
	City  string
	Month string
	Day   string
}

// Trip is one bikeshare ride with its derived calendar fields.
type Trip struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     *float64
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    *float64

	StartMonth string
	StartDay   string
	StartHour  int
}

// TripSet is an ordered collection of trips together with the optional
// fields available in the source dataset.
type TripSet struct {
	Trips  []Trip
	Fields map[Field]struct{}
}

// Has reports whether the source dataset carries the optional field.
func (s TripSet) Has(f Field) bool {
	_, ok := s.Fields[f]
	return ok
}

// Len returns the number of trips in the set.
func (s TripSet) Len() int {
	return len(s.Trips)
}
