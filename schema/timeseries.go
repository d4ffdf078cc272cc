package schema

import (
	"encoding/json"
	"strings"

	"github.com/vmihailenco/msgpack/v4"
)

// TimeseriesRow holds the selected metric of every selected country on one
// date. A country missing from Values had no observation on that date, which
// is a gap and not a zero.
type TimeseriesRow struct {
	Date   string
	Values map[string]int64
}

// Value returns the value of a country and whether it is present
func (r TimeseriesRow) Value(country string) (int64, bool) {
	v, ok := r.Values[country]
	return v, ok
}

// Flatten returns the row as a single object keyed by "date" and country names
func (r TimeseriesRow) Flatten() map[string]interface{} {
	m := make(map[string]interface{}, len(r.Values)+1)
	for country, v := range r.Values {
		m[country] = v
	}
	m["date"] = r.Date
	return m
}

// MarshalJSON encodes the row as {"date": "...", "<country>": value}
func (r TimeseriesRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Flatten())
}

// Selection is an ordered set of country names
type Selection []string

// NewSelection keeps the first occurrence of each non-blank name in order
func NewSelection(countries ...string) Selection {
	seen := make(map[string]struct{}, len(countries))
	s := make(Selection, 0, len(countries))
	for _, c := range countries {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		s = append(s, c)
	}
	return s
}

// Contains returns true if the country is selected
func (s Selection) Contains(country string) bool {
	for _, c := range s {
		if c == country {
			return true
		}
	}
	return false
}

// Set returns the selection as a lookup set
func (s Selection) Set() map[string]struct{} {
	m := make(map[string]struct{}, len(s))
	for _, c := range s {
		m[c] = struct{}{}
	}
	return m
}

// EncodeMsgpack encodes the row in the same flat form as its json
func (r TimeseriesRow) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(r.Flatten())
}
