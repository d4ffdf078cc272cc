package chart

import (
	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Palette is the series colours, reused in order when there are more series
var Palette = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#EC4899",
	"#14B8A6",
	"#F97316",
}

// Color returns the palette colour of the i-th series
func Color(i int) string {
	return Palette[i%len(Palette)]
}

type Series struct {
	Country string  `json:"country" msgpack:"country"`
	Color   string  `json:"color" msgpack:"color"`
	Path    string  `json:"path" msgpack:"path"`
	Points  []Point `json:"points,omitempty" msgpack:"points,omitempty"`
}

type Chart struct {
	Metric   schema.Metric `json:"metric" msgpack:"metric"`
	Height   float64       `json:"height" msgpack:"height"`
	MaxValue int64         `json:"maxValue" msgpack:"maxValue"`
	Series   []Series      `json:"series" msgpack:"series"`
	YTicks   []Tick        `json:"yTicks" msgpack:"yTicks"`
	XLabels  []AxisLabel   `json:"xLabels" msgpack:"xLabels"`
}

// Build describes the whole line chart of the selected countries over rows
func Build(rows []schema.TimeseriesRow, selection schema.Selection, metric schema.Metric, layout Layout) Chart {
	scaler := NewScaler(layout, len(rows), MaxValue(rows, selection))

	series := make([]Series, 0, len(selection))
	for i, country := range selection {
		path := BuildPath(rows, country, scaler)
		series = append(series, Series{
			Country: country,
			Color:   Color(i),
			Path:    path.String(),
			Points:  path.Points,
		})
	}

	return Chart{
		Metric:   metric,
		Height:   layout.Height,
		MaxValue: scaler.MaxValue,
		Series:   series,
		YTicks:   YTicks(scaler),
		XLabels:  XLabels(rows, scaler),
	}
}
