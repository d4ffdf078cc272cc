package consts

import (
	"fmt"
	"strings"
)

// Country is one entry of the built-in country catalogue
type Country struct {
	Name string
	Code string
	// population in millions
	Population int64
}

// Countries lists the catalogue in selector order
var Countries = []Country{
	{Name: "United States", Code: "US", Population: 331},
	{Name: "India", Code: "IN", Population: 1380},
	{Name: "Brazil", Code: "BR", Population: 212},
	{Name: "United Kingdom", Code: "GB", Population: 67},
	{Name: "Russia", Code: "RU", Population: 144},
	{Name: "France", Code: "FR", Population: 65},
	{Name: "Germany", Code: "DE", Population: 83},
	{Name: "Italy", Code: "IT", Population: 60},
	{Name: "Spain", Code: "ES", Population: 47},
	{Name: "Kenya", Code: "KE", Population: 53},
}

var countryByName map[string]Country

func init() {
	countryByName = make(map[string]Country)
	for _, c := range Countries {
		countryByName[c.Name] = c
	}
}

// CountryCode - ISO code of a catalogue country
func CountryCode(name string) (string, error) {
	if c, ok := countryByName[name]; !ok {
		return "", fmt.Errorf("%s not exist", name)
	} else {
		return c.Code, nil
	}
}

// CountryKey - convert a country name into key
func CountryKey(name string) (string, error) {
	if _, ok := countryByName[name]; !ok {
		return "", fmt.Errorf("%s not exist", name)
	}
	return strings.Replace(strings.ToLower(name), " ", "_", -1), nil
}

const (
	DefaultSelectionSize = 3
	MaxSelectedCountries = 5
)
