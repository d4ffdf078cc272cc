package dashboard

import (
	"sort"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// DefaultVaccinationLimit is the number of countries on the vaccination panel
const DefaultVaccinationLimit = 10

// RankVaccination returns the vaccinated percentage of each country, highest
// first, truncated to limit entries (DefaultVaccinationLimit when limit <= 0).
// A country is left out when its snapshot has no people vaccinated or no
// population.
func RankVaccination(snapshots schema.Snapshots, limit int) []schema.VaccinationEntry {
	if limit <= 0 {
		limit = DefaultVaccinationLimit
	}

	entries := make([]schema.VaccinationEntry, 0, len(snapshots))
	for country, s := range snapshots {
		vaccinated, ok := s.Vaccinated()
		if !ok || s.Population <= 0 {
			continue
		}

		entries = append(entries, schema.VaccinationEntry{
			Country:          country,
			PeopleVaccinated: vaccinated,
			Population:       s.Population,
			Percentage:       float64(vaccinated) / float64(s.Population) * 100,
		})
	}

	// snapshots is a map so equal percentages are ordered by name
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].Country < entries[j].Country
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}
