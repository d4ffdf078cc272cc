// Package sample generates the synthetic weekly observations the dashboard
// runs on when no data file is configured.
package sample

import (
	"math"
	"time"

	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

const week = 7 * 24 * time.Hour

var (
	StartDate       = time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	EndDate         = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	VaccinationDate = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Generate returns one observation per catalogue country per week from
// StartDate to EndDate, grouped by date
func Generate() []schema.Observation {
	return GenerateRange(consts.Countries, StartDate, EndDate)
}

// GenerateRange builds weekly observations for countries between start and
// end inclusive. Each country follows its own saturating curve so series
// differ in shape.
func GenerateRange(countries []consts.Country, start, end time.Time) []schema.Observation {
	observations := []schema.Observation{}
	previous := make(map[string]schema.Observation, len(countries))

	for d := start; !d.After(end); d = d.Add(week) {
		days := math.Floor(d.Sub(start).Hours() / 24)

		for i, c := range countries {
			population := c.Population * 1000000
			index := float64(i)

			casesShare := math.Min(0.3, (0.05+index*0.01)*(1-math.Exp(-days/(100+index*20))))
			totalCases := int64(math.Floor(float64(population) * casesShare))

			deathRate := 0.01 + float64(i%5)*0.005
			totalDeaths := int64(math.Floor(float64(totalCases) * deathRate))

			o := schema.Observation{
				Country:     c.Name,
				CountryCode: c.Code,
				Date:        d.Format(schema.DateLayout),
				TotalCases:  totalCases,
				TotalDeaths: totalDeaths,
				Population:  population,
			}

			prev := previous[c.Name]
			o.NewCases = nonNegative(totalCases - prev.TotalCases)
			o.NewDeaths = nonNegative(totalDeaths - prev.TotalDeaths)

			if !d.Before(VaccinationDate) {
				vaccineDays := math.Floor(d.Sub(VaccinationDate).Hours() / 24)
				rate := math.Min(0.9, (0.2+index*0.05)*(1-math.Exp(-vaccineDays/(100+index*10))))
				// two doses for most people
				o.TotalVaccinations = schema.Count(int64(math.Floor(float64(population) * rate * 1.8)))
				o.PeopleVaccinated = schema.Count(int64(math.Floor(float64(population) * rate)))
			}

			previous[c.Name] = o
			observations = append(observations, o)
		}
	}

	return observations
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// Source reads the generated observations, it never fails
func Source() ([]schema.Observation, error) {
	return Generate(), nil
}
