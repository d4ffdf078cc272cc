package schema

// DateLayout is the calendar form every observation date is stored in.
// Dates in this form sort lexically in chronological order.
const DateLayout = "2006-01-02"

// Observation holds one country's metrics for one date
type Observation struct {
	Country           string `json:"country" msgpack:"country"`
	CountryCode       string `json:"countryCode" msgpack:"countryCode"`
	Date              string `json:"date" msgpack:"date"`
	NewCases          int64  `json:"newCases" msgpack:"newCases"`
	TotalCases        int64  `json:"totalCases" msgpack:"totalCases"`
	NewDeaths         int64  `json:"newDeaths" msgpack:"newDeaths"`
	TotalDeaths       int64  `json:"totalDeaths" msgpack:"totalDeaths"`
	TotalVaccinations *int64 `json:"totalVaccinations,omitempty" msgpack:"totalVaccinations,omitempty"`
	PeopleVaccinated  *int64 `json:"peopleVaccinated,omitempty" msgpack:"peopleVaccinated,omitempty"`
	Population        int64  `json:"population" msgpack:"population"`
}

// Vaccinations returns total vaccinations, absent counts as zero
func (o Observation) Vaccinations() int64 {
	if o.TotalVaccinations == nil {
		return 0
	}
	return *o.TotalVaccinations
}

// Vaccinated returns people vaccinated and whether the count is usable for
// percentage calculations. An absent or zero count is not usable.
func (o Observation) Vaccinated() (int64, bool) {
	if o.PeopleVaccinated == nil || *o.PeopleVaccinated == 0 {
		return 0, false
	}
	return *o.PeopleVaccinated, true
}

// Snapshots maps a country name to its most recent observation
type Snapshots map[string]Observation

// Count returns a pointer to v, used for the optional vaccination fields
func Count(v int64) *int64 {
	return &v
}
