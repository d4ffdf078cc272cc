package dashboard

import (
	"github.com/bitmark-inc/covid-dashboard/schema"
)

// ChangeRate returns the change from old to new in percent
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return float64(0)
		}
		return float64(100)
	}

	return (new - old) / old * 100
}

// Trend compares the global totals with the totals as they stood before the
// latest reporting date
func Trend(observations []schema.Observation) schema.StatTrend {
	latest := LatestDate(observations)
	current := GlobalStatsOf(LatestByCountry(observations), "")
	previous := GlobalStatsOf(LatestByCountry(Before(observations, latest)), "")

	return schema.StatTrend{
		TotalCases:        ChangeRate(float64(current.TotalCases), float64(previous.TotalCases)),
		TotalDeaths:       ChangeRate(float64(current.TotalDeaths), float64(previous.TotalDeaths)),
		TotalVaccinations: ChangeRate(float64(current.TotalVaccinations), float64(previous.TotalVaccinations)),
	}
}
