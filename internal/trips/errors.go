package trips

import "errors"

var (
	// ErrInvalidFilter is returned when a city, month or day is outside the vocabulary.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrDataSource is returned when a city's dataset is missing or malformed.
	ErrDataSource = errors.New("data source error")
)
