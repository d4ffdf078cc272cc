package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/store"
)

var reportObservations = []schema.Observation{
	{Country: "Kenya", CountryCode: "KE", Date: "2021-01-01", TotalCases: 1000, TotalDeaths: 10, Population: 200,
		PeopleVaccinated: schema.Count(150)},
	{Country: "Kenya", CountryCode: "KE", Date: "2021-01-08", TotalCases: 2000, TotalDeaths: 30, Population: 200,
		PeopleVaccinated: schema.Count(160)},
	{Country: "Spain", CountryCode: "ES", Date: "2021-01-08", TotalCases: 5000, TotalDeaths: 50, Population: 100},
	{Country: "Nowhere", Date: "2021-01-08", Population: 0},
}

func TestNewReportDropsInvalid(t *testing.T) {
	r, err := newReport(reportObservations)
	require.NoError(t, err)
	assert.Len(t, r.observations, 3)

	_, err = newReport([]schema.Observation{{Country: "Nowhere"}})
	assert.ErrorIs(t, err, store.ErrAllRejected)
}

func TestWriteTable(t *testing.T) {
	r, err := newReport(reportObservations)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.writeTable(&buf, schema.ColumnTotalCases, schema.Descending))

	out := buf.String()
	assert.Contains(t, out, "5,000")
	assert.Contains(t, out, "1.5%")
	assert.Contains(t, out, "Total: 2 countries")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Spain")), bytes.Index(buf.Bytes(), []byte("Kenya")))
}

func TestWriteStats(t *testing.T) {
	r, err := newReport(reportObservations)
	require.NoError(t, err)

	var buf bytes.Buffer
	r.writeStats(&buf, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	assert.Contains(t, buf.String(), "7,000")
	assert.Contains(t, buf.String(), "2023-01-01")
}

func TestWriteTimeseriesGap(t *testing.T) {
	r, err := newReport(reportObservations)
	require.NoError(t, err)

	selection, err := r.selection([]string{"Kenya", "Spain"})
	require.NoError(t, err)

	var buf bytes.Buffer
	r.writeTimeseries(&buf, selection, schema.TotalCases)
	assert.Contains(t, buf.String(), "2021-01-01")
	assert.Contains(t, buf.String(), " - ", "missing value is shown as a gap")

	_, err = r.selection([]string{"A", "B", "C", "D", "E", "F"})
	assert.Error(t, err)
}

func TestChartCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(data, []byte(`[
		{"country":"Kenya","countryCode":"KE","date":"2021-01-01","totalCases":5,"population":53000000},
		{"country":"Kenya","countryCode":"KE","date":"2021-01-08","totalCases":9,"population":53000000}
	]`), 0o644))
	out := filepath.Join(dir, "chart.html")

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"chart", "--file", data, "--countries", "Kenya", "--out", out})
	require.NoError(t, cmd.Execute())

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Kenya")
	assert.Contains(t, stdout.String(), "chart written")
}

func TestTimeseriesCommandUnknownMetric(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"timeseries", "--metric", "population"})
	assert.ErrorIs(t, cmd.Execute(), schema.ErrUnknownMetric)
}
