package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// ReadJSON - decode a json array of observations
func ReadJSON(r io.Reader) ([]schema.Observation, error) {
	var observations []schema.Observation
	if err := json.NewDecoder(r).Decode(&observations); nil != err {
		return nil, fmt.Errorf("decode observations: %w", err)
	}
	return observations, nil
}

// ReadFile - read observations from a json fixture file
func ReadFile(path string) ([]schema.Observation, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	log.WithFields(log.Fields{"prefix": recordLogPrefix, "file": path}).Debug("read observations")

	return ReadJSON(f)
}
