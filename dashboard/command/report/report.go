package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/store"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

// report holds the validated records of one invocation
type report struct {
	observations []schema.Observation
}

func newReport(observations []schema.Observation) (*report, error) {
	s := store.NewMemoryStore()
	loaded := s.Load(observations)
	if loaded.AllRejected() {
		return nil, fmt.Errorf("%w: %d", store.ErrAllRejected, loaded.Rejected)
	}
	return &report{observations: s.Observations()}, nil
}

func (r *report) writeStats(w io.Writer, now time.Time, loc *time.Location) {
	stats := dashboard.GlobalStatsOf(
		dashboard.LatestByCountry(r.observations),
		dashboard.ComputationDate(now, loc),
	)
	trend := dashboard.Trend(r.observations)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Total", "Value", "Change"})
	tbl.AppendRow(table.Row{"Cases", dashboard.FormatGrouped(stats.TotalCases), change(trend.TotalCases)})
	tbl.AppendRow(table.Row{"Deaths", dashboard.FormatGrouped(stats.TotalDeaths), change(trend.TotalDeaths)})
	tbl.AppendRow(table.Row{"Vaccinations", dashboard.FormatGrouped(stats.TotalVaccinations), change(trend.TotalVaccinations)})
	tbl.AppendRow(table.Row{"Countries", stats.Countries, ""})
	tbl.AppendFooter(table.Row{"Last updated", stats.LastUpdated, ""})
	tbl.Render()
}

// change colours a rise in red and a fall in green
func change(rate float64) string {
	s := fmt.Sprintf("%+.1f%%", rate)
	switch {
	case rate > 0:
		return color.RedString(s)
	case rate < 0:
		return color.GreenString(s)
	}
	return s
}

func (r *report) writeTable(w io.Writer, column schema.TableColumn, direction schema.SortDirection) error {
	rows, err := dashboard.Table(dashboard.LatestByCountry(r.observations), column, direction)
	if err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Country", "Code", "Total Cases", "Total Deaths", "Mortality", "Vaccinations"})
	for _, row := range rows {
		tbl.AppendRow(table.Row{
			row.Country,
			row.CountryCode,
			dashboard.FormatGrouped(row.TotalCases),
			dashboard.FormatGrouped(row.TotalDeaths),
			dashboard.FormatPercent(row.MortalityRate),
			dashboard.FormatGrouped(row.TotalVaccinations),
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d countries", len(rows))})
	tbl.Render()
	return nil
}

func (r *report) writeVaccinations(w io.Writer, limit int) {
	entries := dashboard.RankVaccination(dashboard.LatestByCountry(r.observations), limit)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "Country", "People Vaccinated", "Population", "Vaccinated"})
	for i, e := range entries {
		tbl.AppendRow(table.Row{
			i + 1,
			e.Country,
			dashboard.FormatCompact(float64(e.PeopleVaccinated)),
			dashboard.FormatCompact(float64(e.Population)),
			dashboard.FormatPercent(e.Percentage),
		})
	}
	tbl.Render()
}

func (r *report) selection(countries []string) (schema.Selection, error) {
	selection := schema.NewSelection(countries...)
	if len(selection) == 0 {
		selection = dashboard.DefaultSelection(r.observations, consts.DefaultSelectionSize)
	}

	max := viper.GetInt("dashboard.max_countries")
	if max <= 0 {
		max = consts.MaxSelectedCountries
	}
	if len(selection) > max {
		return nil, fmt.Errorf("at most %d countries can be selected", max)
	}
	return selection, nil
}

func (r *report) writeTimeseries(w io.Writer, selection schema.Selection, metric schema.Metric) {
	rows := dashboard.Pivot(r.observations, selection, metric)

	header := table.Row{"Date"}
	for _, country := range selection {
		header = append(header, country)
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(string(metric))
	tbl.AppendHeader(header)
	for _, row := range rows {
		line := table.Row{row.Date}
		for _, country := range selection {
			if v, ok := row.Value(country); ok {
				line = append(line, dashboard.FormatGrouped(v))
			} else {
				line = append(line, "-")
			}
		}
		tbl.AppendRow(line)
	}
	tbl.Render()
}

func (r *report) writeChart(w io.Writer, selection schema.Selection, metric schema.Metric) error {
	rows := dashboard.Pivot(r.observations, selection, metric)
	title := utils.Translate(utils.NewLocalizer(), "chart.title", map[string]interface{}{
		"Metric": utils.Translate(utils.NewLocalizer(), "metric."+string(metric), nil),
	})
	return chart.RenderHTML(w, rows, selection, title, utils.ChartLayout())
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show global totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := records()
			if err != nil {
				return err
			}

			loc, err := utils.MustGetLocation(viper.GetString("data.timezone"))
			if err != nil {
				color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "%s, use UTC\n", err)
			}
			r.writeStats(cmd.OutOrStdout(), time.Now(), loc)
			return nil
		},
	}
}

func tableCmd() *cobra.Command {
	var column, direction string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the latest figures of every country",
		RunE: func(cmd *cobra.Command, _ []string) error {
			col, dir, err := dashboard.ParseSort(column, direction)
			if err != nil {
				return err
			}

			r, err := records()
			if err != nil {
				return err
			}
			return r.writeTable(cmd.OutOrStdout(), col, dir)
		},
	}

	cmd.Flags().StringVar(&column, "sort", string(dashboard.DefaultSortColumn), "sort column")
	cmd.Flags().StringVar(&direction, "direction", string(dashboard.DefaultSortDirection), "asc or desc")
	return cmd
}

func vaccinationsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "vaccinations",
		Short: "Rank countries by people vaccinated",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := records()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = viper.GetInt("dashboard.vaccination_limit")
			}
			r.writeVaccinations(cmd.OutOrStdout(), limit)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of countries, configured limit when 0")
	return cmd
}

func seriesFlags(cmd *cobra.Command, countries *[]string, metric *string) {
	cmd.Flags().StringSliceVar(countries, "countries", nil, "countries to show, comma separated")
	cmd.Flags().StringVarP(metric, "metric", "m", string(schema.DefaultMetric), "metric to show")
}

func timeseriesCmd() *cobra.Command {
	var countries []string
	var metricName string

	cmd := &cobra.Command{
		Use:   "timeseries",
		Short: "Show a metric of selected countries by date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			metric, err := schema.ParseMetric(metricName)
			if err != nil {
				return err
			}

			r, err := records()
			if err != nil {
				return err
			}

			selection, err := r.selection(countries)
			if err != nil {
				return err
			}
			r.writeTimeseries(cmd.OutOrStdout(), selection, metric)
			return nil
		},
	}

	seriesFlags(cmd, &countries, &metricName)
	return cmd
}

func chartCmd() *cobra.Command {
	var countries []string
	var metricName, out string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write the line chart of selected countries as html",
		RunE: func(cmd *cobra.Command, _ []string) error {
			metric, err := schema.ParseMetric(metricName)
			if err != nil {
				return err
			}

			r, err := records()
			if err != nil {
				return err
			}

			selection, err := r.selection(countries)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := r.writeChart(f, selection, metric); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "chart written to %s\n", out)
			return nil
		},
	}

	seriesFlags(cmd, &countries, &metricName)
	cmd.Flags().StringVarP(&out, "out", "o", "chart.html", "output html file")
	return cmd
}
