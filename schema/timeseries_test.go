package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSelectionCollapsesDuplicates(t *testing.T) {
	s := NewSelection("India", "Brazil", "India", " ", "Kenya", "Brazil")
	assert.Equal(t, Selection{"India", "Brazil", "Kenya"}, s)
	assert.True(t, s.Contains("Kenya"))
	assert.False(t, s.Contains("Spain"))
	assert.Len(t, s.Set(), 3)
}

func TestTimeseriesRowJSON(t *testing.T) {
	row := TimeseriesRow{
		Date:   "2021-01-01",
		Values: map[string]int64{"A": 10, "B": 0},
	}

	b, err := json.Marshal(row)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"date":"2021-01-01","A":10,"B":0}`, string(b))

	_, ok := row.Value("C")
	assert.False(t, ok)
	v, ok := row.Value("B")
	assert.True(t, ok, "a zero value is present")
	assert.Equal(t, int64(0), v)
}
