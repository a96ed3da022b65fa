package trips

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/bikeshare/internal/model"
)

const (
	colStartTime    = "Start Time"
	colEndTime      = "End Time"
	colTripDuration = "Trip Duration"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colUserType     = "User Type"
)

var requiredColumns = []string{
	colStartTime,
	colEndTime,
	colTripDuration,
	colStartStation,
	colEndStation,
	colUserType,
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Loader reads city datasets from a file system and filters them.
type Loader struct {
	fsys  fs.FS
	vocab Vocabulary
}

// NewLoader returns a Loader reading datasets from fsys.
func NewLoader(fsys fs.FS, vocab Vocabulary) *Loader {
	return &Loader{fsys: fsys, vocab: vocab}
}

// Vocabulary returns the vocabulary the loader validates against.
func (l *Loader) Vocabulary() Vocabulary {
	return l.vocab
}

// Load validates the filter, reads the city's dataset and applies the month
// and day restrictions.
func (l *Loader) Load(ctx context.Context, f model.Filter) (model.TripSet, error) {
	if err := l.vocab.Validate(f); err != nil {
		return model.TripSet{}, err
	}
	set, err := l.LoadCity(ctx, f.City)
	if err != nil {
		return model.TripSet{}, err
	}
	return Apply(set, f.Month, f.Day), nil
}

// LoadCity reads every trip of a city without filtering.
func (l *Loader) LoadCity(ctx context.Context, city string) (model.TripSet, error) {
	if err := ctx.Err(); err != nil {
		return model.TripSet{}, err
	}
	name, ok := l.vocab.DatasetFile(city)
	if !ok {
		return model.TripSet{}, fmt.Errorf("%w: no dataset for city %q", ErrDataSource, city)
	}
	file, err := l.fsys.Open(name)
	if err != nil {
		return model.TripSet{}, fmt.Errorf("%w: failed to open %s: %v", ErrDataSource, name, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dataset.
			_ = cerr
		}
	}()
	set, err := ParseTrips(file)
	if err != nil {
		return model.TripSet{}, fmt.Errorf("%s: %w", name, err)
	}
	return set, nil
}

// DatasetExists reports whether the city's dataset file is present.
func (l *Loader) DatasetExists(city string) bool {
	name, ok := l.vocab.DatasetFile(city)
	if !ok {
		return false
	}
	_, err := fs.Stat(l.fsys, name)
	return err == nil
}

// ParseTrips decodes a trip CSV. Every timestamp must parse; a single bad row
// fails the whole dataset.
func ParseTrips(r io.Reader) (model.TripSet, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return model.TripSet{}, fmt.Errorf("%w: dataset is empty", ErrDataSource)
		}
		return model.TripSet{}, fmt.Errorf("%w: failed to read header: %v", ErrDataSource, err)
	}
	cols := indexColumns(headers)
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return model.TripSet{}, fmt.Errorf("%w: missing column %q", ErrDataSource, name)
		}
	}

	fields := map[model.Field]struct{}{}
	genderIdx, hasGender := cols[string(model.FieldGender)]
	if hasGender {
		fields[model.FieldGender] = struct{}{}
	}
	birthIdx, hasBirth := cols[string(model.FieldBirthYear)]
	if hasBirth {
		fields[model.FieldBirthYear] = struct{}{}
	}

	var trips []model.Trip
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return model.TripSet{}, fmt.Errorf("%w: %v", ErrDataSource, err)
		}

		start, err := parseTimestamp(row[cols[colStartTime]])
		if err != nil {
			return model.TripSet{}, fmt.Errorf("%w: line %d: %s: %v", ErrDataSource, line, colStartTime, err)
		}
		end, err := parseTimestamp(row[cols[colEndTime]])
		if err != nil {
			return model.TripSet{}, fmt.Errorf("%w: line %d: %s: %v", ErrDataSource, line, colEndTime, err)
		}
		duration, err := parseOptionalFloat(row[cols[colTripDuration]])
		if err != nil {
			return model.TripSet{}, fmt.Errorf("%w: line %d: %s: %v", ErrDataSource, line, colTripDuration, err)
		}

		trip := model.Trip{
			StartTime:    start,
			EndTime:      end,
			Duration:     duration,
			StartStation: strings.TrimSpace(row[cols[colStartStation]]),
			EndStation:   strings.TrimSpace(row[cols[colEndStation]]),
			UserType:     strings.TrimSpace(row[cols[colUserType]]),
			StartMonth:   start.Month().String(),
			StartDay:     start.Weekday().String(),
			StartHour:    start.Hour(),
		}
		if hasGender {
			trip.Gender = strings.TrimSpace(row[genderIdx])
		}
		if hasBirth {
			trip.BirthYear, err = parseOptionalFloat(row[birthIdx])
			if err != nil {
				return model.TripSet{}, fmt.Errorf("%w: line %d: %s: %v", ErrDataSource, line, model.FieldBirthYear, err)
			}
		}
		trips = append(trips, trip)
	}
	return model.TripSet{Trips: trips, Fields: fields}, nil
}

func indexColumns(headers []string) map[string]int {
	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			continue
		}
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	return cols
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseOptionalFloat(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
