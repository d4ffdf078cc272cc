package chart

import (
	"bytes"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

func row(date string, values map[string]int64) schema.TimeseriesRow {
	return schema.TimeseriesRow{Date: date, Values: values}
}

func TestScalerX(t *testing.T) {
	s := NewScaler(DefaultLayout(), 3, 100)
	assert.Equal(t, float64(6), s.X(0))
	assert.Equal(t, float64(6+46), s.X(1))
	assert.Equal(t, float64(98), s.X(2))

	single := NewScaler(DefaultLayout(), 1, 100)
	assert.Equal(t, float64(6), single.X(0))
}

func TestScalerY(t *testing.T) {
	s := NewScaler(DefaultLayout(), 2, 1000)
	assert.Equal(t, float64(270), s.Y(0))
	assert.Equal(t, float64(20), s.Y(1000))
	assert.Equal(t, float64(145), s.Y(500))

	zero := NewScaler(DefaultLayout(), 2, 0)
	assert.Equal(t, float64(270), zero.Y(0))
}

func TestMaxValue(t *testing.T) {
	rows := []schema.TimeseriesRow{
		row("2021-01-01", map[string]int64{"A": 10, "B": 50}),
		row("2021-01-08", map[string]int64{"A": 30, "C": 900}),
	}
	assert.Equal(t, int64(50), MaxValue(rows, schema.NewSelection("A", "B")))
	assert.Equal(t, int64(0), MaxValue(nil, schema.NewSelection("A")))
}

func TestBuildPathTwoExtremes(t *testing.T) {
	rows := []schema.TimeseriesRow{
		row("2021-01-01", map[string]int64{"A": 0}),
		row("2021-01-08", map[string]int64{}),
		row("2021-01-15", map[string]int64{}),
		row("2021-01-22", map[string]int64{"A": 1000000}),
	}
	s := NewScaler(DefaultLayout(), len(rows), MaxValue(rows, schema.NewSelection("A")))

	path := BuildPath(rows, "A", s)
	require.Len(t, path.Points, 2)
	assert.Equal(t, Point{X: 6, Y: 270}, path.Points[0])
	assert.Equal(t, Point{X: 98, Y: 20}, path.Points[1])
	assert.Equal(t, "M 6% 270 L 98% 20", path.String())
	assert.Equal(t, "M 60 270 L 980 20", path.Resolve(1000))
}

func TestBuildPathSkipsGaps(t *testing.T) {
	rows := []schema.TimeseriesRow{
		row("2021-01-01", map[string]int64{"A": 10}),
		row("2021-01-08", map[string]int64{"B": 5}),
		row("2021-01-15", map[string]int64{"A": 20}),
	}
	s := NewScaler(DefaultLayout(), len(rows), 20)

	path := BuildPath(rows, "A", s)
	require.Len(t, path.Points, 2)
	assert.Equal(t, float64(6), path.Points[0].X)
	assert.Equal(t, float64(98), path.Points[1].X)
}

func TestBuildPathTooFewPoints(t *testing.T) {
	rows := []schema.TimeseriesRow{
		row("2021-01-01", map[string]int64{"A": 10}),
		row("2021-01-08", map[string]int64{"B": 5}),
	}
	s := NewScaler(DefaultLayout(), len(rows), 10)

	assert.True(t, BuildPath(rows, "A", s).Empty())
	assert.Equal(t, "", BuildPath(rows, "A", s).String())
	assert.True(t, BuildPath(rows, "Nowhere", s).Empty())
	assert.True(t, BuildPath(nil, "A", s).Empty())
}

func TestYTicks(t *testing.T) {
	ticks := YTicks(NewScaler(DefaultLayout(), 2, 2000000))
	require.Len(t, ticks, 5)
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, float64(270), ticks[0].Y)
	assert.Equal(t, "1.0M", ticks[2].Label)
	assert.Equal(t, "2.0M", ticks[4].Label)
	assert.Equal(t, float64(20), ticks[4].Y)
}

func TestXLabels(t *testing.T) {
	rows := []schema.TimeseriesRow{
		row("2021-01-01", nil),
		row("2021-02-01", nil),
		row("2021-03-01", nil),
		row("2021-04-01", nil),
		row("2021-05-01", nil),
	}
	labels := XLabels(rows, NewScaler(DefaultLayout(), len(rows), 0))
	require.Len(t, labels, 3)
	assert.Equal(t, "2021-01", labels[0].Label)
	assert.Equal(t, "2021-03", labels[1].Label)
	assert.Equal(t, "2021-05", labels[2].Label)
	assert.Equal(t, float64(98), labels[2].X)

	assert.Len(t, XLabels(rows[:1], NewScaler(DefaultLayout(), 1, 0)), 1)
	assert.Empty(t, XLabels(nil, NewScaler(DefaultLayout(), 0, 0)))
}

func TestBuild(t *testing.T) {
	rows := []schema.TimeseriesRow{
		row("2021-01-01", map[string]int64{"A": 10, "B": 5}),
		row("2021-01-08", map[string]int64{"A": 30}),
	}
	selection := schema.NewSelection("A", "B")

	c := Build(rows, selection, schema.TotalCases, DefaultLayout())
	assert.Equal(t, int64(30), c.MaxValue)
	require.Len(t, c.Series, 2)
	assert.Equal(t, "#3B82F6", c.Series[0].Color)
	assert.Equal(t, "#10B981", c.Series[1].Color)
	assert.NotEmpty(t, c.Series[0].Path)
	assert.Empty(t, c.Series[1].Path)
	assert.Len(t, c.YTicks, 5)
	assert.Len(t, c.XLabels, 2)
}

func TestColorCycles(t *testing.T) {
	assert.Equal(t, Palette[0], Color(len(Palette)))
	assert.Equal(t, Palette[3], Color(3))
}

func TestRenderHTML(t *testing.T) {
	rows := []schema.TimeseriesRow{
		row("2021-01-01", map[string]int64{"A": 10, "B": 5}),
		row("2021-01-08", map[string]int64{"A": 30}),
	}

	var buf bytes.Buffer
	err := RenderHTML(&buf, rows, schema.NewSelection("A", "B"), "Total Cases", DefaultLayout())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "echarts")
	assert.Contains(t, buf.String(), "Total Cases")
}

func TestNewLineJoinsGaps(t *testing.T) {
	rows := []schema.TimeseriesRow{
		row("2021-01-01", map[string]int64{"A": 10}),
		row("2021-01-08", map[string]int64{"B": 5}),
		row("2021-01-15", map[string]int64{"A": 20}),
	}

	line := NewLine(rows, schema.NewSelection("A"), "Total Cases", DefaultLayout())
	require.Len(t, line.MultiSeries, 1)

	series := line.MultiSeries[0]
	require.NotNil(t, series.ConnectNulls)
	assert.True(t, *series.ConnectNulls, "html line must join gaps like the svg path")
	assert.Equal(t, missingValue, series.Data.([]opts.LineData)[1].Value)
	assert.Len(t, BuildPath(rows, "A", NewScaler(DefaultLayout(), len(rows), 20)).Points, 2)
}
