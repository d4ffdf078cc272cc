package schema

import "fmt"

// ErrUnknownMetric is returned when a metric name is not one of Metrics
var ErrUnknownMetric = fmt.Errorf("unknown metric")

type Metric string

const (
	NewCases          Metric = "newCases"
	TotalCases        Metric = "totalCases"
	NewDeaths         Metric = "newDeaths"
	TotalDeaths       Metric = "totalDeaths"
	TotalVaccinations Metric = "totalVaccinations"
)

// DefaultMetric is the metric charted when none is selected
const DefaultMetric = TotalCases

// Metrics lists every selectable metric in display order
var Metrics = []Metric{
	TotalCases,
	NewCases,
	TotalDeaths,
	NewDeaths,
	TotalVaccinations,
}

// ParseMetric converts a metric name into a Metric
func ParseMetric(name string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// Value reads the metric from an observation. Absent vaccination counts read as 0.
func (m Metric) Value(o Observation) int64 {
	switch m {
	case NewCases:
		return o.NewCases
	case TotalCases:
		return o.TotalCases
	case NewDeaths:
		return o.NewDeaths
	case TotalDeaths:
		return o.TotalDeaths
	case TotalVaccinations:
		return o.Vaccinations()
	}
	return 0
}
