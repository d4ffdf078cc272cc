package store

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

type RecordStoreTestSuite struct {
	suite.Suite
	store RecordStore
}

func (s *RecordStoreTestSuite) SetupTest() {
	s.store = NewMemoryStore()
}

func validObservation(country, date string) schema.Observation {
	return schema.Observation{
		Country:     country,
		CountryCode: strings.ToUpper(country[:2]),
		Date:        date,
		TotalCases:  10,
		Population:  1000,
	}
}

func (s *RecordStoreTestSuite) TestPingBeforeLoad() {
	s.ErrorIs(s.store.Ping(), ErrNotLoaded)
	s.Empty(s.store.Observations())
}

func (s *RecordStoreTestSuite) TestLoad() {
	report := s.store.Load([]schema.Observation{
		validObservation("Kenya", "2021-01-01"),
		validObservation("Kenya", "2021-01-08"),
	})

	s.Equal(2, report.Accepted)
	s.Equal(0, report.Rejected)
	s.Empty(report.Duplicates)
	s.NoError(s.store.Ping())
	s.Len(s.store.Observations(), 2)
}

func (s *RecordStoreTestSuite) TestLoadEmptyIsReady() {
	report := s.store.Load([]schema.Observation{})
	s.Equal(0, report.Accepted)
	s.NoError(s.store.Ping())
}

func (s *RecordStoreTestSuite) TestLoadRejectsInvalid() {
	invalid := validObservation("Kenya", "2021-01-08")
	invalid.Population = 0

	report := s.store.Load([]schema.Observation{
		validObservation("Kenya", "2021-01-01"),
		invalid,
	})

	s.Equal(1, report.Accepted)
	s.Equal(1, report.Rejected)
	s.Equal("2021-01-01", s.store.Observations()[0].Date)
}

func (s *RecordStoreTestSuite) TestLoadAllRejectedKeepsRecords() {
	s.store.Load([]schema.Observation{validObservation("Kenya", "2021-01-01")})

	invalid := validObservation("Spain", "2021/01/08")
	invalid.Population = 0

	report, err := Reload(s.store, func() ([]schema.Observation, error) {
		return []schema.Observation{invalid}, nil
	})
	s.ErrorIs(err, ErrAllRejected)
	s.Equal(0, report.Accepted)
	s.Equal(1, report.Rejected)
	s.True(report.AllRejected())

	s.NoError(s.store.Ping())
	s.Require().Len(s.store.Observations(), 1)
	s.Equal("Kenya", s.store.Observations()[0].Country)
}

func (s *RecordStoreTestSuite) TestLoadAllRejectedBeforeFirstLoad() {
	s.store.Load([]schema.Observation{{Country: "Nowhere"}})
	s.ErrorIs(s.store.Ping(), ErrNotLoaded)
}

func (s *RecordStoreTestSuite) TestLoadFlagsDuplicates() {
	report := s.store.Load([]schema.Observation{
		validObservation("Kenya", "2021-01-01"),
		validObservation("Kenya", "2021-01-01"),
	})

	s.Equal(2, report.Accepted)
	s.Len(report.Duplicates, 1)
	s.Equal(2, report.Duplicates[0].Count)
}

func (s *RecordStoreTestSuite) TestLoadKeepsPreviousSlice() {
	s.store.Load([]schema.Observation{validObservation("Kenya", "2021-01-01")})
	before := s.store.Observations()

	s.store.Load([]schema.Observation{
		validObservation("Spain", "2021-01-01"),
		validObservation("Spain", "2021-01-08"),
	})

	s.Len(before, 1)
	s.Equal("Kenya", before[0].Country)
	s.Len(s.store.Observations(), 2)
}

func (s *RecordStoreTestSuite) TestConcurrentReadAndLoad() {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.store.Load([]schema.Observation{validObservation("Kenya", "2021-01-01")})
		}()
		go func() {
			defer wg.Done()
			obs := s.store.Observations()
			if len(obs) > 0 {
				s.Equal("Kenya", obs[0].Country)
			}
		}()
	}
	wg.Wait()
}

func TestRecordStore(t *testing.T) {
	suite.Run(t, new(RecordStoreTestSuite))
}
