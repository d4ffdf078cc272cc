package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/store"
)

func TestGenerate(t *testing.T) {
	observations := Generate()
	require.NotEmpty(t, observations)

	assert.Equal(t, 0, len(observations)%len(consts.Countries))
	assert.Equal(t, "2020-03-01", observations[0].Date)
	assert.Equal(t, "United States", observations[0].Country)
	assert.Equal(t, int64(331000000), observations[0].Population)
	assert.Equal(t, int64(0), observations[0].TotalCases)
	assert.Nil(t, observations[0].PeopleVaccinated)
	assert.LessOrEqual(t, dashboard.LatestDate(observations), "2023-01-01")

	assert.Empty(t, dashboard.DuplicateDates(observations))
	assert.Len(t, dashboard.LatestByCountry(observations), len(consts.Countries))
}

func TestGenerateInvariants(t *testing.T) {
	last := make(map[string]schema.Observation)
	for _, o := range Generate() {
		require.NoError(t, store.Validate(o), "%s %s", o.Country, o.Date)

		if prev, ok := last[o.Country]; ok {
			assert.Greater(t, o.Date, prev.Date)
			assert.GreaterOrEqual(t, o.TotalCases, prev.TotalCases)
			assert.GreaterOrEqual(t, o.TotalDeaths, prev.TotalDeaths)
			assert.Equal(t, prev.Population, o.Population)
		}

		if o.Date < "2021-01-01" {
			assert.Nil(t, o.TotalVaccinations)
		} else {
			assert.NotNil(t, o.PeopleVaccinated)
		}
		last[o.Country] = o
	}
}

func TestGenerateRankable(t *testing.T) {
	entries := dashboard.RankVaccination(dashboard.LatestByCountry(Generate()), 0)
	assert.Len(t, entries, dashboard.DefaultVaccinationLimit)
	for _, e := range entries {
		assert.Greater(t, e.Population, int64(0))
		assert.LessOrEqual(t, e.Percentage, float64(100))
	}
}
