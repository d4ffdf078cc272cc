package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// missingValue is how echarts marks a point with no data
const missingValue = "-"

// NewLine builds an interactive line chart of the selected countries. A
// missing observation has no marker and the line joins its neighbours, the
// same way BuildPath draws it.
func NewLine(rows []schema.TimeseriesRow, selection schema.Selection, title string, layout Layout) *charts.Line {
	dates := make([]string, len(rows))
	for i, row := range rows {
		dates[i] = row.Date
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: formatPixels(layout.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0}),
		charts.WithGridOpts(opts.Grid{
			Top:    formatPixels(layout.Padding.Top + 30),
			Right:  formatPixels(layout.Padding.Right),
			Bottom: formatPixels(layout.Padding.Bottom + 30),
			Left:   formatPixels(layout.Padding.Left),
		}),
	)
	line.SetXAxis(dates)

	for i, country := range selection {
		data := make([]opts.LineData, len(rows))
		for j, row := range rows {
			if v, ok := row.Value(country); ok {
				data[j] = opts.LineData{Value: v}
			} else {
				data[j] = opts.LineData{Value: missingValue}
			}
		}

		line.AddSeries(country, data,
			charts.WithLineChartOpts(opts.LineChart{ConnectNulls: opts.Bool(true), ShowSymbol: opts.Bool(true)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: Color(i)}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2}),
		)
	}

	return line
}

// RenderHTML writes the chart as a standalone html page
func RenderHTML(w io.Writer, rows []schema.TimeseriesRow, selection schema.Selection, title string, layout Layout) error {
	return NewLine(rows, selection, title, layout).Render(w)
}

func formatPixels(v float64) string {
	return formatCoordinate(v) + "px"
}
