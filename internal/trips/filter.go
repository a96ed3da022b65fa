package trips

import "github.com/verte-zerg/bikeshare/internal/model"

// Apply restricts the set to trips matching month and day. Either value may be All.
func Apply(set model.TripSet, month, day string) model.TripSet {
	return FilterDay(FilterMonth(set, month), day)
}

// FilterMonth keeps trips that started in the named month.
func FilterMonth(set model.TripSet, month string) model.TripSet {
	if month == All {
		return set
	}
	return retain(set, func(t model.Trip) bool { return t.StartMonth == month })
}

// FilterDay keeps trips that started on the named weekday.
func FilterDay(set model.TripSet, day string) model.TripSet {
	if day == All {
		return set
	}
	return retain(set, func(t model.Trip) bool { return t.StartDay == day })
}

func retain(set model.TripSet, keep func(model.Trip) bool) model.TripSet {
	out := make([]model.Trip, 0, len(set.Trips))
	for _, t := range set.Trips {
		if keep(t) {
			out = append(out, t)
		}
	}
	return model.TripSet{Trips: out, Fields: set.Fields}
}
