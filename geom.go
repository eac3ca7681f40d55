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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a pixel position in device coordinates.
// The x axis points right and the y axis points down.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Segment is a directed line segment from Start to End.
type Segment struct {
	Start, End Point
}

// Line returns the line through the two end points of s.
func (s Segment) Line() Line {
	return LineThrough(s.Start, s.End)
}

// Contains reports whether p lies on the closed segment s.
// The test uses exact integer arithmetic.
func (s Segment) Contains(p Point) bool {
	dx1, dy1 := s.End.X-s.Start.X, s.End.Y-s.Start.Y
	dx2, dy2 := p.X-s.Start.X, p.Y-s.Start.Y
	if dx1*dy2-dy1*dx2 != 0 {
		return false
	}
	return p.X >= min(s.Start.X, s.End.X) && p.X <= max(s.Start.X, s.End.X) &&
		p.Y >= min(s.Start.Y, s.End.Y) && p.Y <= max(s.Start.Y, s.End.Y)
}

// Line is a line in implicit form, consisting of all points (x, y)
// with A*x + B*y + C = 0.
//
// Two lines compare equal (using ==) only if all three coefficients agree.
// Lines with proportional coefficients describe the same set of points
// but are different values.
type Line struct {
	A, B, C int
}

// LineThrough returns the line through p and q.
// The coefficients are not normalised; their magnitude grows with the
// distance between p and q.
func LineThrough(p, q Point) Line {
	a := p.Y - q.Y
	b := q.X - p.X
	return Line{
		A: a,
		B: b,
		C: -p.X*a - p.Y*b,
	}
}

// horizontalLine returns the line y = y0, in the form used for the
// ray in the membership test.
func horizontalLine(y0 int) Line {
	return Line{A: 0, B: 1, C: -y0}
}

// Distance returns the perpendicular distance from (x, y) to the line.
// For a degenerate line with A = B = 0 the result is +Inf.
func (l Line) Distance(x, y int) float64 {
	norm := math.Hypot(float64(l.A), float64(l.B))
	if norm == 0 {
		return math.Inf(1)
	}
	return math.Abs(float64(l.A*x+l.B*y+l.C)) / norm
}

// Intersect returns the intersection point of l and m, computed by
// Cramer's rule. The second return value is false if the lines are
// parallel (or one of them is degenerate).
func (l Line) Intersect(m Line) (vec.Vec2, bool) {
	zn := det(l.A, l.B, m.A, m.B)
	if zn == 0 {
		return vec.Vec2{}, false
	}
	d := float64(zn)
	return vec.Vec2{
		X: -float64(det(l.C, l.B, m.C, m.B)) / d,
		Y: -float64(det(l.A, l.C, m.A, m.C)) / d,
	}, true
}

// det returns the determinant of the 2×2 matrix [[a, b], [c, d]].
func det(a, b, c, d int) int {
	return a*d - b*c
}
