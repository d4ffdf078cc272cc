package chart

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

type pathState int

const (
	noPointsYet pathState = iota
	hasOnePoint
	hasPath
)

// Path is the line of one country through the rows where it has a value
type Path struct {
	Points []Point
}

// Empty is true when the country has fewer than two points and draws nothing
func (p Path) Empty() bool {
	return len(p.Points) < 2
}

// String writes the path as "M x% y L x% y ...", blank for an empty path
func (p Path) String() string {
	if p.Empty() {
		return ""
	}

	var b strings.Builder
	for i, pt := range p.Points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoordinate(pt.X))
		b.WriteString("% ")
		b.WriteString(formatCoordinate(pt.Y))
	}
	return b.String()
}

// Resolve writes the path in absolute SVG coordinates for a surface width
func (p Path) Resolve(width float64) string {
	if p.Empty() {
		return ""
	}

	var b strings.Builder
	for i, pt := range p.Points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoordinate(pt.X * width / 100))
		b.WriteString(" ")
		b.WriteString(formatCoordinate(pt.Y))
	}
	return b.String()
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildPath connects the scaled points of country in row order. Rows without
// a value for the country are skipped and the line joins its neighbours. A
// country with fewer than two points yields an empty path.
func BuildPath(rows []schema.TimeseriesRow, country string, scaler Scaler) Path {
	state := noPointsYet
	var points []Point

	for i, row := range rows {
		v, ok := row.Value(country)
		if !ok {
			continue
		}

		points = append(points, Point{X: scaler.X(i), Y: scaler.Y(v)})
		switch state {
		case noPointsYet:
			state = hasOnePoint
		case hasOnePoint:
			state = hasPath
		}
	}

	if state != hasPath {
		return Path{}
	}
	return Path{Points: points}
}
