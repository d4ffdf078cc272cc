package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

var (
	ErrNotLoaded                   = errors.New("records not loaded")
	ErrEmptyCountry                = errors.New("empty country")
	ErrReservedCountry             = errors.New("reserved country name")
	ErrAllRejected                 = errors.New("all records rejected")
	ErrInvalidDate                 = errors.New("invalid date")
	ErrInvalidPopulation           = errors.New("invalid population")
	ErrNegativeCount               = errors.New("negative count")
	ErrVaccinatedExceedsPopulation = errors.New("people vaccinated exceeds population")
)

const reservedCountry = "date"

// Validate checks one observation against the record contract
func Validate(o schema.Observation) error {
	if strings.TrimSpace(o.Country) == "" {
		return ErrEmptyCountry
	}

	// timeseries rows use "date" as the key of the row date
	if o.Country == reservedCountry {
		return fmt.Errorf("%w: %q", ErrReservedCountry, o.Country)
	}

	if _, err := time.Parse(schema.DateLayout, o.Date); nil != err {
		return fmt.Errorf("%w: %q", ErrInvalidDate, o.Date)
	}

	if o.Population <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPopulation, o.Population)
	}

	counts := []struct {
		name  string
		value *int64
	}{
		{"newCases", &o.NewCases},
		{"totalCases", &o.TotalCases},
		{"newDeaths", &o.NewDeaths},
		{"totalDeaths", &o.TotalDeaths},
		{"totalVaccinations", o.TotalVaccinations},
		{"peopleVaccinated", o.PeopleVaccinated},
	}
	for _, c := range counts {
		if nil != c.value && *c.value < 0 {
			return fmt.Errorf("%w: %s %d", ErrNegativeCount, c.name, *c.value)
		}
	}

	if nil != o.PeopleVaccinated && *o.PeopleVaccinated > o.Population {
		return fmt.Errorf("%w: %d > %d", ErrVaccinatedExceedsPopulation, *o.PeopleVaccinated, o.Population)
	}

	return nil
}
