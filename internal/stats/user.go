package stats

import (
	"math"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// BirthYears summarizes rider birth years. Earliest holds the maximum year
// and MostRecent the minimum, matching the labels of the published report.
type BirthYears struct {
	Earliest   int
	MostRecent int
	Common     int
}

// UserStats holds rider breakdowns.
type UserStats struct {
	UserTypes Value[[]Count]
	Gender    Value[[]Count]
	BirthYear Value[BirthYears]
}

// ComputeUserStats counts user types and, when the city provides them,
// genders and birth years.
func ComputeUserStats(set model.TripSet) UserStats {
	var out UserStats

	types := make([]string, 0, len(set.Trips))
	for _, t := range set.Trips {
		types = append(types, t.UserType)
	}
	out.UserTypes = frequencyValue(nonEmpty(types))

	if set.Has(model.FieldGender) {
		genders := make([]string, 0, len(set.Trips))
		for _, t := range set.Trips {
			genders = append(genders, t.Gender)
		}
		out.Gender = frequencyValue(nonEmpty(genders))
	} else {
		out.Gender = statusValue[[]Count](StatusNotAvailable)
	}

	if set.Has(model.FieldBirthYear) {
		out.BirthYear = birthYears(set.Trips)
	} else {
		out.BirthYear = statusValue[BirthYears](StatusNotAvailable)
	}
	return out
}

func frequencyValue(values []string) Value[[]Count] {
	if len(values) == 0 {
		return statusValue[[]Count](StatusNoData)
	}
	return okValue(Frequencies(values))
}

func birthYears(trips []model.Trip) Value[BirthYears] {
	years := make([]float64, 0, len(trips))
	for _, t := range trips {
		if t.BirthYear == nil || math.IsNaN(*t.BirthYear) {
			continue
		}
		years = append(years, *t.BirthYear)
	}
	common, ok := Mode(years)
	if !ok {
		return statusValue[BirthYears](StatusNoData)
	}
	maxYear, minYear := years[0], years[0]
	for _, y := range years[1:] {
		maxYear = math.Max(maxYear, y)
		minYear = math.Min(minYear, y)
	}
	return okValue(BirthYears{
		Earliest:   int(maxYear),
		MostRecent: int(minYear),
		Common:     int(common),
	})
}
