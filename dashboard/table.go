package dashboard

import (
	"fmt"
	"sort"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

var (
	ErrInvalidSortColumn    = fmt.Errorf("invalid sort column")
	ErrInvalidSortDirection = fmt.Errorf("invalid sort direction")
)

const (
	DefaultSortColumn    = schema.ColumnTotalCases
	DefaultSortDirection = schema.Descending
)

// ParseSort validates a sort column and direction, blank values take the defaults
func ParseSort(column, direction string) (schema.TableColumn, schema.SortDirection, error) {
	col := DefaultSortColumn
	if column != "" {
		col = schema.TableColumn(column)
		if !validColumn(col) {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidSortColumn, column)
		}
	}

	dir := DefaultSortDirection
	switch schema.SortDirection(direction) {
	case "":
	case schema.Ascending, schema.Descending:
		dir = schema.SortDirection(direction)
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortDirection, direction)
	}

	return col, dir, nil
}

func validColumn(c schema.TableColumn) bool {
	for _, col := range schema.TableColumns {
		if col == c {
			return true
		}
	}
	return false
}

// MortalityRate returns deaths per hundred cases, 0 without cases
func MortalityRate(totalDeaths, totalCases int64) float64 {
	if totalCases <= 0 {
		return 0
	}
	return float64(totalDeaths) / float64(totalCases) * 100
}

// Table builds one row per country snapshot sorted on column
func Table(snapshots schema.Snapshots, column schema.TableColumn, direction schema.SortDirection) ([]schema.TableRow, error) {
	if !validColumn(column) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortColumn, column)
	}
	if direction != schema.Ascending && direction != schema.Descending {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortDirection, direction)
	}

	rows := make([]schema.TableRow, 0, len(snapshots))
	for country, s := range snapshots {
		rows = append(rows, schema.TableRow{
			Country:           country,
			CountryCode:       s.CountryCode,
			TotalCases:        s.TotalCases,
			TotalDeaths:       s.TotalDeaths,
			MortalityRate:     MortalityRate(s.TotalDeaths, s.TotalCases),
			TotalVaccinations: s.Vaccinations(),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		c := compareRows(rows[i], rows[j], column)
		if c == 0 {
			return rows[i].Country < rows[j].Country
		}
		if direction == schema.Ascending {
			return c < 0
		}
		return c > 0
	})

	return rows, nil
}

func compareRows(a, b schema.TableRow, column schema.TableColumn) int {
	switch column {
	case schema.ColumnCountry:
		return compare(a.Country < b.Country, a.Country > b.Country)
	case schema.ColumnTotalCases:
		return compare(a.TotalCases < b.TotalCases, a.TotalCases > b.TotalCases)
	case schema.ColumnTotalDeaths:
		return compare(a.TotalDeaths < b.TotalDeaths, a.TotalDeaths > b.TotalDeaths)
	case schema.ColumnMortalityRate:
		return compare(a.MortalityRate < b.MortalityRate, a.MortalityRate > b.MortalityRate)
	case schema.ColumnTotalVaccinations:
		return compare(a.TotalVaccinations < b.TotalVaccinations, a.TotalVaccinations > b.TotalVaccinations)
	}
	return 0
}

func compare(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}
