package dashboard

import (
	"time"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// GlobalStatsOf sums the snapshot of every country. lastUpdated is the
// computation date, not a data date.
func GlobalStatsOf(snapshots schema.Snapshots, lastUpdated string) schema.GlobalStats {
	stats := schema.GlobalStats{
		Countries:   len(snapshots),
		LastUpdated: lastUpdated,
	}

	for _, s := range snapshots {
		stats.TotalCases += s.TotalCases
		stats.TotalDeaths += s.TotalDeaths
		stats.TotalVaccinations += s.Vaccinations()
	}

	return stats
}

// ComputationDate formats now as a calendar date in loc (UTC when loc is nil)
func ComputationDate(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(schema.DateLayout)
}
