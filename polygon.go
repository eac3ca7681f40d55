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
	"slices"

	"github.com/pkg/errors"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed polygon, which may be non-convex.
// Interior points are determined by the even-odd rule.
type Polygon struct {
	shape
	edges []Segment
	lines []Line // lines[i] is the line through edges[i]
}

// NewPolygon returns a polygon with the given edges, for a canvas of size
// width × height.
//
// The edges must form a closed chain: the end point of each edge must be
// the start point of the next one, and the end point of the last edge must
// be the start point of the first. Otherwise an error wrapping
// [ErrInvalidPolygon] is returned. The direction of traversal is not
// checked; see [Polygon.Orientation].
func NewPolygon(style Style, width, height int, edges []Segment) (*Polygon, error) {
	s, err := newShape(style, width, height)
	if err != nil {
		return nil, err
	}
	n := len(edges)
	if n == 0 {
		return nil, errors.Wrap(ErrInvalidPolygon, "no edges")
	}

	box := Box{XMin: edges[0].Start.X, XMax: edges[0].Start.X, YMin: edges[0].Start.Y, YMax: edges[0].Start.Y}
	lines := make([]Line, n)
	for i, e := range edges {
		next := edges[(i+1)%n]
		if e.End != next.Start {
			return nil, errors.Wrapf(ErrInvalidPolygon,
				"edge %d ends at %v but edge %d starts at %v", i, e.End, (i+1)%n, next.Start)
		}
		box.XMin = min(box.XMin, e.Start.X)
		box.XMax = max(box.XMax, e.Start.X)
		box.YMin = min(box.YMin, e.Start.Y)
		box.YMax = max(box.YMax, e.Start.Y)
		lines[i] = e.Line()
	}
	s.box = box.clip(width, height)

	Logger().Debug("new polygon",
		"edges", n, "bounds", s.box)

	return &Polygon{
		shape: s,
		edges: slices.Clone(edges),
		lines: lines,
	}, nil
}

// NewPolygonFromPoints returns the polygon with the given vertices,
// connected in order and closed from the last vertex back to the first.
func NewPolygonFromPoints(style Style, width, height int, vertices ...Point) (*Polygon, error) {
	edges := make([]Segment, len(vertices))
	for i, v := range vertices {
		edges[i] = Segment{Start: v, End: vertices[(i+1)%len(vertices)]}
	}
	return NewPolygon(style, width, height, edges)
}

// Edges returns a copy of the edges of p.
func (p *Polygon) Edges() []Segment {
	return slices.Clone(p.edges)
}

// Render draws the polygon onto canvas. Pixels inside the polygon which
// are within BorderWidth of an edge line get the border colour, the
// remaining inside pixels get the fill colour.
func (p *Polygon) Render(canvas Canvas) {
	for y := p.box.YMin; y <= p.box.YMax; y++ {
		for x := p.box.XMin; x <= p.box.XMax; x++ {
			if !p.Contains(x, y) {
				continue
			}
			if p.IsBorder(x, y) {
				canvas.SetPixel(x, y, p.style.Border)
			} else {
				canvas.SetPixel(x, y, p.style.Fill)
			}
		}
	}
}

// Contains reports whether the pixel (x, y) belongs to the polygon.
// Points on an edge always belong to the polygon. Other points are
// classified by casting a horizontal ray to the right and counting
// edge crossings; the point is inside if the count is odd.
func (p *Polygon) Contains(x, y int) bool {
	pt := Point{X: x, Y: y}
	for _, e := range p.edges {
		if e.Contains(pt) {
			return true
		}
	}
	return p.crossings(x, y)%2 == 1
}

// crossings returns the number of edges crossed by the ray from (x, y)
// in the direction of positive x.
func (p *Polygon) crossings(x, y int) int {
	ray := horizontalLine(y)
	count := 0
	for i, e := range p.edges {
		if crosses(x, y, ray, e, p.lines[i]) {
			count++
		}
	}
	return count
}

// crosses reports whether the ray starting at (x, y), lying on the line
// ray, crosses the edge e with supporting line l.
//
// An edge is crossed if the ray meets it at a point with y-coordinate in
// [min(y0, y1), max(y0, y1)). The half-open interval makes sure a ray
// through a vertex counts exactly one of the two adjacent edges when the
// polygon passes through the ray there, and none or both of them when it
// only touches the ray.
func crosses(x, y int, ray Line, e Segment, l Line) bool {
	if l == ray {
		// the ray runs along the edge
		return false
	}
	res, ok := ray.Intersect(l)
	if !ok {
		return false
	}

	xLo, xHi := min(e.Start.X, e.End.X), max(e.Start.X, e.End.X)
	if res.X < float64(xLo) || res.X > float64(xHi) {
		return false
	}
	yLo, yHi := min(e.Start.Y, e.End.Y), max(e.Start.Y, e.End.Y)
	if y < yLo || y >= yHi {
		return false
	}

	return res.X > float64(x)
}

// IsBorder reports whether the pixel (x, y) is within BorderWidth of the
// line through any edge of p.
//
// Distances are measured to the infinite lines, not to the segments:
// a pixel close to the extension of an edge is a border pixel, even if
// it is far away from the edge itself.
func (p *Polygon) IsBorder(x, y int) bool {
	w := float64(p.style.BorderWidth)
	for _, l := range p.lines {
		if l.Distance(x, y) <= w {
			return true
		}
	}
	return false
}

// Orientation describes the direction in which the vertices of a
// polygon are traversed, as seen on a screen where y points down.
type Orientation int

// These are the possible orientations of a polygon.
const (
	Degenerate Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "degenerate"
	}
}

// Orientation returns the traversal direction of p, determined from the
// sign of its signed area. Polygons with zero area are [Degenerate].
func (p *Polygon) Orientation() Orientation {
	area2 := 0
	for _, e := range p.edges {
		area2 += e.Start.X*e.End.Y - e.End.X*e.Start.Y
	}
	switch {
	case area2 > 0:
		return Clockwise
	case area2 < 0:
		return CounterClockwise
	default:
		return Degenerate
	}
}

// Outline returns the boundary of p as a closed path in device
// coordinates.
func (p *Polygon) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, e := range p.edges {
			cmd := path.CmdLineTo
			pt := e.Start
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{{X: float64(pt.X), Y: float64(pt.Y)}}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
