package stats

import (
	"time"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// Elapsed records how long each statistic group took to compute.
type Elapsed struct {
	Time      time.Duration
	Stations  time.Duration
	Durations time.Duration
	Users     time.Duration
}

// Report bundles the four statistic groups for one filtered trip set.
type Report struct {
	Filter    model.Filter
	Trips     int
	Time      TimeStats
	Stations  StationStats
	Durations DurationStats
	Users     UserStats
	Elapsed   Elapsed
}

// BuildReport computes every statistic group over the set.
func BuildReport(set model.TripSet, f model.Filter) Report {
	r := Report{Filter: f, Trips: set.Len()}

	start := time.Now()
	r.Time = ComputeTimeStats(set, f.Month, f.Day)
	r.Elapsed.Time = time.Since(start)

	start = time.Now()
	r.Stations = ComputeStationStats(set)
	r.Elapsed.Stations = time.Since(start)

	start = time.Now()
	r.Durations = ComputeDurationStats(set)
	r.Elapsed.Durations = time.Since(start)

	start = time.Now()
	r.Users = ComputeUserStats(set)
	r.Elapsed.Users = time.Since(start)

	return r
}
