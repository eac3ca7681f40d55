// seehuhn.de/go/shapes - bordered shape rasterisation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineThrough(t *testing.T) {
	p := Point{X: 1, Y: 2}
	q := Point{X: 4, Y: 6}
	l := LineThrough(p, q)

	assert.Equal(t, Line{A: -4, B: 3, C: -2}, l)
	assert.Zero(t, l.A*p.X+l.B*p.Y+l.C)
	assert.Zero(t, l.A*q.X+l.B*q.Y+l.C)
}

func TestLineEqualityIsCoefficientWise(t *testing.T) {
	// both lines are y = 3, but with different scaling
	short := LineThrough(Point{X: 0, Y: 3}, Point{X: 1, Y: 3})
	long := LineThrough(Point{X: 0, Y: 3}, Point{X: 5, Y: 3})

	assert.Equal(t, horizontalLine(3), short)
	assert.NotEqual(t, short, long)
	assert.NotEqual(t, horizontalLine(3), long)
}

func TestLineDistance(t *testing.T) {
	cases := []struct {
		name string
		l    Line
		x, y int
		want float64
	}{
		{"on_line", LineThrough(Point{0, 0}, Point{10, 0}), 5, 0, 0},
		{"above_horizontal", LineThrough(Point{0, 0}, Point{10, 0}), 5, 3, 3},
		{"beyond_segment", LineThrough(Point{0, 0}, Point{10, 0}), 100, 0, 0},
		{"vertical", LineThrough(Point{4, 0}, Point{4, 9}), 1, 7, 3},
		{"diagonal", LineThrough(Point{0, 0}, Point{3, 3}), 0, 2, math.Sqrt2},
		{"degenerate", LineThrough(Point{2, 2}, Point{2, 2}), 0, 0, math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, c.l.Distance(c.x, c.y), 1e-12)
		})
	}
}

func TestLineIntersect(t *testing.T) {
	ray := horizontalLine(5)

	res, ok := ray.Intersect(LineThrough(Point{0, 0}, Point{10, 10}))
	require.True(t, ok)
	assert.InDelta(t, 5, res.X, 1e-12)
	assert.InDelta(t, 5, res.Y, 1e-12)

	res, ok = ray.Intersect(LineThrough(Point{3, 20}, Point{6, -10}))
	require.True(t, ok)
	assert.InDelta(t, 4.5, res.X, 1e-12)
	assert.InDelta(t, 5, res.Y, 1e-12)

	// parallel lines have no intersection
	_, ok = ray.Intersect(LineThrough(Point{0, 7}, Point{10, 7}))
	assert.False(t, ok)

	// neither do coincident ones
	_, ok = ray.Intersect(LineThrough(Point{0, 5}, Point{10, 5}))
	assert.False(t, ok)
}

func TestSegmentContains(t *testing.T) {
	s := Segment{Start: Point{8, 2}, End: Point{2, 8}}

	assert.True(t, s.Contains(Point{8, 2}))
	assert.True(t, s.Contains(Point{2, 8}))
	assert.True(t, s.Contains(Point{5, 5}))
	assert.False(t, s.Contains(Point{9, 1}), "colinear but outside")
	assert.False(t, s.Contains(Point{5, 6}))
}
