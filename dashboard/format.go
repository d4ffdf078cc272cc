package dashboard

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatCompact shortens large numbers for axis labels: 1.2M, 3.4K, 999
func FormatCompact(v float64) string {
	switch {
	case v >= 1000000:
		return fmt.Sprintf("%.1fM", v/1000000)
	case v >= 1000:
		return fmt.Sprintf("%.1fK", v/1000)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatGrouped writes a count with thousands separators for cards and tables
func FormatGrouped(v int64) string {
	return humanize.Comma(v)
}

// FormatPercent writes a percentage with one decimal
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
