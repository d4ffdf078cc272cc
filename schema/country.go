package schema

// CountryOption is one entry of the country selector
type CountryOption struct {
	Label string `json:"label" msgpack:"label"`
	Value string `json:"value" msgpack:"value"`
	Code  string `json:"code" msgpack:"code"`
}

// MetricOption is one entry of the metric selector
type MetricOption struct {
	Value Metric `json:"value" msgpack:"value"`
	Label string `json:"label" msgpack:"label"`
}
