package chart

import (
	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	DefaultHeight = 300
)

// Padding is the space in pixels kept free around the plotting area
type Padding struct {
	Top    float64 `mapstructure:"top"`
	Right  float64 `mapstructure:"right"`
	Bottom float64 `mapstructure:"bottom"`
	Left   float64 `mapstructure:"left"`
}

// DefaultPadding leaves room for the y-axis labels on the left
var DefaultPadding = Padding{Top: 20, Right: 20, Bottom: 30, Left: 60}

// Layout is the size of the drawing surface. The width is not fixed, so x
// coordinates are percentages while y coordinates are pixels.
type Layout struct {
	Height  float64 `mapstructure:"height"`
	Padding Padding `mapstructure:"padding"`
}

func DefaultLayout() Layout {
	return Layout{Height: DefaultHeight, Padding: DefaultPadding}
}

// Baseline is the y coordinate of a zero value
func (l Layout) Baseline() float64 {
	return l.Height - l.Padding.Bottom
}

// Point is a scaled point, X in percent of the width and Y in pixels
type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Scaler maps row indexes and values into drawing coordinates
type Scaler struct {
	Layout   Layout
	Count    int
	MaxValue int64
}

func NewScaler(layout Layout, count int, maxValue int64) Scaler {
	return Scaler{Layout: layout, Count: count, MaxValue: maxValue}
}

// X returns the horizontal position of row i in percent. A single row sits at
// the left edge of the plotting area.
func (s Scaler) X(i int) float64 {
	left := s.Layout.Padding.Left / 10
	if s.Count <= 1 {
		return left
	}
	span := 100 - (s.Layout.Padding.Left+s.Layout.Padding.Right)/10
	return left + float64(i)/float64(s.Count-1)*span
}

// Y returns the vertical position of v in pixels, larger values are higher.
// Every value sits on the baseline when the maximum is zero.
func (s Scaler) Y(v int64) float64 {
	if s.MaxValue <= 0 {
		return s.Layout.Baseline()
	}
	plot := s.Layout.Height - s.Layout.Padding.Top - s.Layout.Padding.Bottom
	return s.Layout.Baseline() - float64(v)/float64(s.MaxValue)*plot
}

// MaxValue returns the largest value of any selected country across rows,
// 0 when there is none
func MaxValue(rows []schema.TimeseriesRow, selection schema.Selection) int64 {
	var max int64
	for _, row := range rows {
		for _, country := range selection {
			if v, ok := row.Value(country); ok && v > max {
				max = v
			}
		}
	}
	return max
}
