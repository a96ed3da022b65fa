package stats

import "github.com/verte-zerg/bikeshare/internal/model"

// StationPair is a start/end combination and how many trips made it.
type StationPair struct {
	Start string
	End   string
	Count int
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	Start Value[string]
	End   Value[string]
	Pair  Value[StationPair]
}

// ComputeStationStats finds the most used start station, end station and
// start/end pair.
func ComputeStationStats(set model.TripSet) StationStats {
	starts := make([]string, 0, len(set.Trips))
	ends := make([]string, 0, len(set.Trips))
	for _, t := range set.Trips {
		starts = append(starts, t.StartStation)
		ends = append(ends, t.EndStation)
	}
	return StationStats{
		Start: modeValue(nonEmpty(starts)),
		End:   modeValue(nonEmpty(ends)),
		Pair:  topPair(set.Trips),
	}
}

// topPair picks the pair with the highest count; among equal counts the pair
// that sorts first by (start, end) wins.
func topPair(trips []model.Trip) Value[StationPair] {
	type key struct{ start, end string }
	counts := map[key]int{}
	for _, t := range trips {
		if t.StartStation == "" || t.EndStation == "" {
			continue
		}
		counts[key{t.StartStation, t.EndStation}]++
	}
	if len(counts) == 0 {
		return statusValue[StationPair](StatusNoData)
	}
	var best StationPair
	for k, n := range counts {
		switch {
		case n > best.Count:
		case n == best.Count && (k.start < best.Start || (k.start == best.Start && k.end < best.End)):
		default:
			continue
		}
		best = StationPair{Start: k.start, End: k.end, Count: n}
	}
	return okValue(best)
}
