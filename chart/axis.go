package chart

import (
	"time"

	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

const monthLayout = "2006-01"

// tickFractions are the y-axis gridlines as fractions of the maximum
var tickFractions = []float64{0, 0.25, 0.5, 0.75, 1}

type Tick struct {
	Value float64 `json:"value" msgpack:"value"`
	Label string  `json:"label" msgpack:"label"`
	Y     float64 `json:"y" msgpack:"y"`
}

type AxisLabel struct {
	Date  string  `json:"date" msgpack:"date"`
	Label string  `json:"label" msgpack:"label"`
	X     float64 `json:"x" msgpack:"x"`
}

// YTicks returns five ticks from zero up to the maximum value
func YTicks(scaler Scaler) []Tick {
	plot := scaler.Layout.Height - scaler.Layout.Padding.Top - scaler.Layout.Padding.Bottom

	ticks := make([]Tick, 0, len(tickFractions))
	for _, f := range tickFractions {
		v := f * float64(scaler.MaxValue)
		ticks = append(ticks, Tick{
			Value: v,
			Label: dashboard.FormatCompact(v),
			Y:     scaler.Layout.Baseline() - f*plot,
		})
	}
	return ticks
}

// XLabels labels the first, middle and last row with their month
func XLabels(rows []schema.TimeseriesRow, scaler Scaler) []AxisLabel {
	if len(rows) == 0 {
		return []AxisLabel{}
	}

	indexes := []int{0}
	if middle := len(rows) / 2; middle != 0 && middle != len(rows)-1 {
		indexes = append(indexes, middle)
	}
	if last := len(rows) - 1; last != 0 {
		indexes = append(indexes, last)
	}

	labels := make([]AxisLabel, 0, len(indexes))
	for _, i := range indexes {
		labels = append(labels, AxisLabel{
			Date:  rows[i].Date,
			Label: monthOf(rows[i].Date),
			X:     scaler.X(i),
		})
	}
	return labels
}

func monthOf(date string) string {
	t, err := time.Parse(schema.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(monthLayout)
}
