package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMetric(t *testing.T) {
	for _, m := range Metrics {
		parsed, err := ParseMetric(string(m))
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseMetric("population")
	assert.True(t, errors.Is(err, ErrUnknownMetric), "population must not be selectable")

	_, err = ParseMetric("")
	assert.Error(t, err)
}

func TestMetricValue(t *testing.T) {
	o := Observation{
		Country:           "Kenya",
		NewCases:          1,
		TotalCases:        2,
		NewDeaths:         3,
		TotalDeaths:       4,
		TotalVaccinations: Count(5),
		Population:        100,
	}

	assert.Equal(t, int64(1), NewCases.Value(o))
	assert.Equal(t, int64(2), TotalCases.Value(o))
	assert.Equal(t, int64(3), NewDeaths.Value(o))
	assert.Equal(t, int64(4), TotalDeaths.Value(o))
	assert.Equal(t, int64(5), TotalVaccinations.Value(o))

	o.TotalVaccinations = nil
	assert.Equal(t, int64(0), TotalVaccinations.Value(o), "absent vaccinations read as zero")
}

func TestVaccinated(t *testing.T) {
	o := Observation{Population: 100}
	_, ok := o.Vaccinated()
	assert.False(t, ok)

	o.PeopleVaccinated = Count(0)
	_, ok = o.Vaccinated()
	assert.False(t, ok, "zero people vaccinated is not usable")

	o.PeopleVaccinated = Count(40)
	v, ok := o.Vaccinated()
	assert.True(t, ok)
	assert.Equal(t, int64(40), v)
}
