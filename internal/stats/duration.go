package stats

import (
	"math"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// DurationStats holds total and mean trip duration. The Hours fields are the
// seconds floor-divided by 60, the figure the report prints as "hours".
type DurationStats struct {
	Status       Status
	TotalSeconds float64
	MeanSeconds  float64
	TotalHours   int64
	MeanHours    int64
}

// ComputeDurationStats sums and averages the non-missing trip durations.
func ComputeDurationStats(set model.TripSet) DurationStats {
	var sum float64
	n := 0
	for _, t := range set.Trips {
		if t.Duration == nil || math.IsNaN(*t.Duration) {
			continue
		}
		sum += *t.Duration
		n++
	}
	if n == 0 {
		return DurationStats{Status: StatusNoData}
	}
	mean := sum / float64(n)
	return DurationStats{
		Status:       StatusOK,
		TotalSeconds: sum,
		MeanSeconds:  mean,
		TotalHours:   floorDiv60(sum),
		MeanHours:    floorDiv60(mean),
	}
}

func floorDiv60(seconds float64) int64 {
	return int64(math.Floor(seconds / 60))
}
