package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

type statCard struct {
	ID      string   `json:"id" msgpack:"id"`
	Title   string   `json:"title" msgpack:"title"`
	Value   int64    `json:"value" msgpack:"value"`
	Display string   `json:"display" msgpack:"display"`
	Change  *float64 `json:"change,omitempty" msgpack:"change,omitempty"`
}

func (s *Server) stats(c *gin.Context) {
	observations := s.store.Observations()

	stats := dashboard.GlobalStatsOf(
		dashboard.LatestByCountry(observations),
		dashboard.ComputationDate(s.clock(), s.location),
	)
	trend := dashboard.Trend(observations)

	l := localizer(c)
	card := func(id string, value int64, change *float64) statCard {
		return statCard{
			ID:      id,
			Title:   utils.Translate(l, "card."+id, nil),
			Value:   value,
			Display: dashboard.FormatGrouped(value),
			Change:  change,
		}
	}

	responseWithEncoding(c, http.StatusOK, gin.H{
		"stats": stats,
		"trend": trend,
		"cards": []statCard{
			card("totalCases", stats.TotalCases, &trend.TotalCases),
			card("totalDeaths", stats.TotalDeaths, &trend.TotalDeaths),
			card("totalVaccinations", stats.TotalVaccinations, &trend.TotalVaccinations),
			card("countries", int64(stats.Countries), nil),
		},
	})
}

// seriesParams reads the selection and metric shared by the series endpoints,
// aborting the request when either is invalid
func (s *Server) seriesParams(c *gin.Context, observations []schema.Observation) (schema.Selection, schema.Metric, bool) {
	metric, err := selectedMetric(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownMetric, err)
		return nil, "", false
	}

	selection := selectedCountries(c)
	if len(selection) == 0 {
		selection = defaultSelection(observations)
	}
	if len(selection) > s.maxCountries {
		abortWithEncoding(c, http.StatusBadRequest, errorTooManyCountries)
		return nil, "", false
	}

	return selection, metric, true
}

func (s *Server) timeseries(c *gin.Context) {
	observations := s.store.Observations()

	selection, metric, ok := s.seriesParams(c, observations)
	if !ok {
		return
	}

	responseWithEncoding(c, http.StatusOK, gin.H{
		"metric":    metric,
		"countries": selection,
		"rows":      dashboard.Pivot(observations, selection, metric),
	})
}

func (s *Server) vaccinations(c *gin.Context) {
	limit, ok := positiveInt(c, "limit", s.vaccinationLimit)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	snapshots := dashboard.LatestByCountry(s.store.Observations())
	responseWithEncoding(c, http.StatusOK, gin.H{
		"vaccinations": dashboard.RankVaccination(snapshots, limit),
	})
}

func (s *Server) table(c *gin.Context) {
	column, direction, err := dashboard.ParseSort(c.Query("sort"), c.Query("direction"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidSort, err)
		return
	}

	rows, err := dashboard.Table(dashboard.LatestByCountry(s.store.Observations()), column, direction)
	if shouldInterupt(err, c) {
		return
	}

	responseWithEncoding(c, http.StatusOK, gin.H{
		"sort":      column,
		"direction": direction,
		"rows":      rows,
	})
}

func (s *Server) chart(c *gin.Context) {
	observations := s.store.Observations()

	selection, metric, ok := s.seriesParams(c, observations)
	if !ok {
		return
	}

	rows := dashboard.Pivot(observations, selection, metric)
	title := utils.Translate(localizer(c), "chart.title", map[string]interface{}{
		"Metric": metricLabel(localizer(c), metric),
	})

	responseWithEncoding(c, http.StatusOK, gin.H{
		"title": title,
		"chart": chart.Build(rows, selection, metric, s.layout),
	})
}

func (s *Server) chartPage(c *gin.Context) {
	observations := s.store.Observations()

	selection, metric, ok := s.seriesParams(c, observations)
	if !ok {
		return
	}

	rows := dashboard.Pivot(observations, selection, metric)
	title := utils.Translate(localizer(c), "chart.title", map[string]interface{}{
		"Metric": metricLabel(localizer(c), metric),
	})

	var buf bytes.Buffer
	if err := chart.RenderHTML(&buf, rows, selection, title, s.layout); shouldInterupt(err, c) {
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) countries(c *gin.Context) {
	observations := s.store.Observations()

	responseWithEncoding(c, http.StatusOK, gin.H{
		"countries": dashboard.CountryOptions(observations),
		"default":   defaultSelection(observations),
		"max":       s.maxCountries,
	})
}

func (s *Server) metrics(c *gin.Context) {
	l := localizer(c)

	options := make([]schema.MetricOption, 0, len(schema.Metrics))
	for _, m := range schema.Metrics {
		options = append(options, schema.MetricOption{Value: m, Label: metricLabel(l, m)})
	}

	responseWithEncoding(c, http.StatusOK, gin.H{
		"metrics": options,
		"default": schema.DefaultMetric,
	})
}
