package dashboard

import (
	"sort"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Pivot groups the observations of the selected countries by date, keeping
// the selected metric of each country. Rows are ascending by date. A country
// without an observation on a date is absent from that row.
func Pivot(observations []schema.Observation, selection schema.Selection, metric schema.Metric) []schema.TimeseriesRow {
	selected := selection.Set()
	byDate := make(map[string]schema.TimeseriesRow)

	for _, o := range observations {
		if _, ok := selected[o.Country]; !ok {
			continue
		}

		row, ok := byDate[o.Date]
		if !ok {
			row = schema.TimeseriesRow{
				Date:   o.Date,
				Values: make(map[string]int64),
			}
			byDate[o.Date] = row
		}
		row.Values[o.Country] = metric.Value(o)
	}

	rows := make([]schema.TimeseriesRow, 0, len(byDate))
	for _, row := range byDate {
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	return rows
}
