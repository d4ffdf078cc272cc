package store

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	recordLogPrefix = "record_store"
)

//go:generate mockgen -destination=../api/mocks/mock_store.go -package=mocks github.com/bitmark-inc/covid-dashboard/store RecordStore

// RecordStore - interface for the observation records behind the dashboard
type RecordStore interface {
	Recorder
	Loader
	Pinger
}

// Recorder - read the current records
type Recorder interface {
	Observations() []schema.Observation
}

// Loader - replace the current records
type Loader interface {
	Load([]schema.Observation) LoadReport
}

// Pinger - check the store is ready to serve
type Pinger interface {
	Ping() error
}

// LoadReport - outcome of one load
type LoadReport struct {
	Accepted   int                   `json:"accepted" msgpack:"accepted"`
	Rejected   int                   `json:"rejected" msgpack:"rejected"`
	Duplicates []dashboard.Duplicate `json:"duplicates" msgpack:"duplicates"`
}

// AllRejected - true when records were given but none passed validation
func (r LoadReport) AllRejected() bool {
	return r.Accepted == 0 && r.Rejected > 0
}

type memoryStore struct {
	sync.RWMutex
	observations []schema.Observation
}

// NewMemoryStore - return an empty in-memory record store
func NewMemoryStore() RecordStore {
	return &memoryStore{}
}

// Observations - the records of the last load. The returned slice is never
// modified afterwards, a load publishes a new one.
func (m *memoryStore) Observations() []schema.Observation {
	m.RLock()
	defer m.RUnlock()

	return m.observations
}

// Load - validate records and publish the valid ones in place of the current
// records. When every record is rejected the current records stay in place.
func (m *memoryStore) Load(observations []schema.Observation) LoadReport {
	accepted := make([]schema.Observation, 0, len(observations))
	report := LoadReport{}

	for i, o := range observations {
		if err := Validate(o); nil != err {
			log.WithFields(log.Fields{
				"prefix":  recordLogPrefix,
				"index":   i,
				"country": o.Country,
				"date":    o.Date,
			}).WithError(err).Warn("reject observation")
			report.Rejected++
			continue
		}
		accepted = append(accepted, o)
	}
	report.Accepted = len(accepted)

	if report.AllRejected() {
		log.WithFields(log.Fields{
			"prefix":   recordLogPrefix,
			"rejected": report.Rejected,
		}).Error("all records rejected, keep current records")
		return report
	}

	report.Duplicates = dashboard.DuplicateDates(accepted)
	for _, d := range report.Duplicates {
		log.WithFields(log.Fields{
			"prefix":  recordLogPrefix,
			"country": d.Country,
			"date":    d.Date,
			"count":   d.Count,
		}).Warn("same date reported more than once, last one is used")
	}

	m.Lock()
	m.observations = accepted
	m.Unlock()

	log.WithFields(log.Fields{
		"prefix":   recordLogPrefix,
		"accepted": report.Accepted,
		"rejected": report.Rejected,
	}).Info("records loaded")

	return report
}

// Ping - a store is ready once a load has published records
func (m *memoryStore) Ping() error {
	m.RLock()
	defer m.RUnlock()

	if nil == m.observations {
		return ErrNotLoaded
	}
	return nil
}
