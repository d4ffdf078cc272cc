package dashboard

import (
	"sort"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Duplicate is a country reported more than once for the same date
type Duplicate struct {
	Country string `json:"country" msgpack:"country"`
	Date    string `json:"date" msgpack:"date"`
	Count   int    `json:"count" msgpack:"count"`
}

// LatestByCountry reduces observations to the most recent one per country.
// When a country has two observations on its latest date the one seen last wins.
func LatestByCountry(observations []schema.Observation) schema.Snapshots {
	latest := make(schema.Snapshots)
	for _, o := range observations {
		if prev, ok := latest[o.Country]; !ok || o.Date >= prev.Date {
			latest[o.Country] = o
		}
	}
	return latest
}

// DuplicateDates returns every country and date pair observed more than once,
// ordered by country then date
func DuplicateDates(observations []schema.Observation) []Duplicate {
	type key struct{ country, date string }

	counts := make(map[key]int)
	for _, o := range observations {
		counts[key{o.Country, o.Date}]++
	}

	duplicates := []Duplicate{}
	for k, n := range counts {
		if n > 1 {
			duplicates = append(duplicates, Duplicate{Country: k.country, Date: k.date, Count: n})
		}
	}

	sort.Slice(duplicates, func(i, j int) bool {
		if duplicates[i].Country != duplicates[j].Country {
			return duplicates[i].Country < duplicates[j].Country
		}
		return duplicates[i].Date < duplicates[j].Date
	})

	return duplicates
}

// LatestDate returns the maximum date across all observations, blank if none
func LatestDate(observations []schema.Observation) string {
	var latest string
	for _, o := range observations {
		if o.Date > latest {
			latest = o.Date
		}
	}
	return latest
}

// Before returns the observations dated strictly before date, order preserved
func Before(observations []schema.Observation, date string) []schema.Observation {
	result := make([]schema.Observation, 0, len(observations))
	for _, o := range observations {
		if o.Date < date {
			result = append(result, o)
		}
	}
	return result
}
