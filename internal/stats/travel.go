package stats

import (
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/trips"
)

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Month Value[string]
	Day   Value[string]
	Hour  Value[int]
}

// ComputeTimeStats finds the most common start month, day and hour. Month and
// day are skipped when the set was already filtered on them.
func ComputeTimeStats(set model.TripSet, month, day string) TimeStats {
	var out TimeStats

	if month == trips.All {
		months := make([]string, 0, len(set.Trips))
		for _, t := range set.Trips {
			months = append(months, t.StartMonth)
		}
		out.Month = modeValue(nonEmpty(months))
	} else {
		out.Month = statusValue[string](StatusFilterSpecific)
	}

	if day == trips.All {
		days := make([]string, 0, len(set.Trips))
		for _, t := range set.Trips {
			days = append(days, t.StartDay)
		}
		out.Day = modeValue(nonEmpty(days))
	} else {
		out.Day = statusValue[string](StatusFilterSpecific)
	}

	hours := make([]int, 0, len(set.Trips))
	for _, t := range set.Trips {
		hours = append(hours, t.StartHour)
	}
	out.Hour = modeValue(hours)
	return out
}
