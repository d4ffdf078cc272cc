package schema

// GlobalStats summarises the latest snapshot of every country
type GlobalStats struct {
	TotalCases        int64  `json:"totalCases" msgpack:"totalCases"`
	TotalDeaths       int64  `json:"totalDeaths" msgpack:"totalDeaths"`
	TotalVaccinations int64  `json:"totalVaccinations" msgpack:"totalVaccinations"`
	Countries         int    `json:"countries" msgpack:"countries"`
	LastUpdated       string `json:"lastUpdated" msgpack:"lastUpdated"`
}

// StatTrend holds the change rate in percent of each global total against the
// previous reporting date
type StatTrend struct {
	TotalCases        float64 `json:"totalCases" msgpack:"totalCases"`
	TotalDeaths       float64 `json:"totalDeaths" msgpack:"totalDeaths"`
	TotalVaccinations float64 `json:"totalVaccinations" msgpack:"totalVaccinations"`
}

// VaccinationEntry is one country on the vaccination progress panel
type VaccinationEntry struct {
	Country          string  `json:"country" msgpack:"country"`
	PeopleVaccinated int64   `json:"peopleVaccinated" msgpack:"peopleVaccinated"`
	Population       int64   `json:"population" msgpack:"population"`
	Percentage       float64 `json:"percentage" msgpack:"percentage"`
}

// TableRow is one country in the global data table
type TableRow struct {
	Country           string  `json:"country" msgpack:"country"`
	CountryCode       string  `json:"countryCode" msgpack:"countryCode"`
	TotalCases        int64   `json:"totalCases" msgpack:"totalCases"`
	TotalDeaths       int64   `json:"totalDeaths" msgpack:"totalDeaths"`
	MortalityRate     float64 `json:"mortalityRate" msgpack:"mortalityRate"`
	TotalVaccinations int64   `json:"totalVaccinations" msgpack:"totalVaccinations"`
}

type TableColumn string

const (
	ColumnCountry           TableColumn = "country"
	ColumnTotalCases        TableColumn = "totalCases"
	ColumnTotalDeaths       TableColumn = "totalDeaths"
	ColumnMortalityRate     TableColumn = "mortalityRate"
	ColumnTotalVaccinations TableColumn = "totalVaccinations"
)

// TableColumns lists the sortable table columns in display order
var TableColumns = []TableColumn{
	ColumnCountry,
	ColumnTotalCases,
	ColumnTotalDeaths,
	ColumnMortalityRate,
	ColumnTotalVaccinations,
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)
