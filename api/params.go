package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

// selectedCountries reads the countries query, given either comma separated
// or repeated
func selectedCountries(c *gin.Context) schema.Selection {
	var names []string
	for _, v := range c.QueryArray("countries") {
		names = append(names, strings.Split(v, ",")...)
	}
	return schema.NewSelection(names...)
}

// defaultSelection picks the leading catalogue countries that have records,
// falling back to the first countries seen in the records
func defaultSelection(observations []schema.Observation) schema.Selection {
	present := make(map[string]struct{})
	for _, o := range observations {
		present[o.Country] = struct{}{}
	}

	names := []string{}
	for _, country := range consts.Countries {
		if len(names) == consts.DefaultSelectionSize {
			break
		}
		if _, ok := present[country.Name]; ok {
			names = append(names, country.Name)
		}
	}

	if len(names) == 0 {
		return dashboard.DefaultSelection(observations, consts.DefaultSelectionSize)
	}
	return schema.NewSelection(names...)
}

func selectedMetric(c *gin.Context) (schema.Metric, error) {
	return schema.ParseMetric(c.DefaultQuery("metric", string(schema.DefaultMetric)))
}

// positiveInt reads an optional positive integer query value
func positiveInt(c *gin.Context, key string, fallback int) (int, bool) {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return fallback, true
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func localizer(c *gin.Context) *i18n.Localizer {
	return utils.NewLocalizer(c.GetHeader("Accept-Language"))
}

func metricLabel(l *i18n.Localizer, m schema.Metric) string {
	return utils.Translate(l, "metric."+string(m), nil)
}
