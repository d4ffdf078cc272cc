package store

import (
	"fmt"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Source - reads the full set of observations for one load
type Source func() ([]schema.Observation, error)

// FileSource - a source reading the json file at path
func FileSource(path string) Source {
	return func() ([]schema.Observation, error) {
		return ReadFile(path)
	}
}

// Reload - read the source and load the result into l. The current records
// stay in place when the source fails or every record is rejected.
func Reload(l Loader, source Source) (LoadReport, error) {
	observations, err := source()
	if nil != err {
		return LoadReport{}, err
	}

	report := l.Load(observations)
	if report.AllRejected() {
		return report, fmt.Errorf("%w: %d", ErrAllRejected, report.Rejected)
	}
	return report, nil
}
