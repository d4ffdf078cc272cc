package dashboard

import (
	"github.com/bitmark-inc/covid-dashboard/schema"
)

// CountryOptions lists each country once in order of first appearance
func CountryOptions(observations []schema.Observation) []schema.CountryOption {
	seen := make(map[string]struct{})
	options := []schema.CountryOption{}
	for _, o := range observations {
		if _, ok := seen[o.Country]; ok {
			continue
		}
		seen[o.Country] = struct{}{}
		options = append(options, schema.CountryOption{
			Label: o.Country,
			Value: o.Country,
			Code:  o.CountryCode,
		})
	}
	return options
}

// DefaultSelection picks the first n countries present in observations
func DefaultSelection(observations []schema.Observation, n int) schema.Selection {
	options := CountryOptions(observations)
	if len(options) > n {
		options = options[:n]
	}

	names := make([]string, 0, len(options))
	for _, o := range options {
		names = append(names, o.Value)
	}
	return schema.NewSelection(names...)
}
