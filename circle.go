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
	"github.com/pkg/errors"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Circle is a disk with an optional border ring.
type Circle struct {
	shape
	center Point
	radius int
}

// NewCircle returns a circle around center with the given radius, for a
// canvas of size width × height. The radius must be positive.
func NewCircle(style Style, width, height int, center Point, radius int) (*Circle, error) {
	s, err := newShape(style, width, height)
	if err != nil {
		return nil, err
	}
	if radius <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "circle radius %d", radius)
	}

	s.box = Box{
		XMin: center.X - radius,
		XMax: center.X + radius,
		YMin: center.Y - radius,
		YMax: center.Y + radius,
	}.clip(width, height)

	Logger().Debug("new circle",
		"center", center, "radius", radius, "bounds", s.box)

	return &Circle{shape: s, center: center, radius: radius}, nil
}

// Center returns the centre of the circle.
func (c *Circle) Center() Point {
	return c.center
}

// Radius returns the radius of the circle.
func (c *Circle) Radius() int {
	return c.radius
}

// classify returns the paint colour for the pixel (x, y), and false if
// the pixel lies outside the circle.
//
// With d the distance from the centre, r the radius and w the border
// width, pixels with d² ≤ (r-w)² are fill, pixels with d² ≤ r² are border.
// If w ≥ r, there is no fill region.
func (c *Circle) classify(x, y int) (Color, bool) {
	dx := x - c.center.X
	dy := y - c.center.Y
	d2 := dx*dx + dy*dy
	if d2 > c.radius*c.radius {
		return Color{}, false
	}
	inner := c.radius - c.style.BorderWidth
	if inner > 0 && d2 <= inner*inner {
		return c.style.Fill, true
	}
	return c.style.Border, true
}

// Render draws the circle onto canvas.
func (c *Circle) Render(canvas Canvas) {
	for y := c.box.YMin; y <= c.box.YMax; y++ {
		for x := c.box.XMin; x <= c.box.XMax; x++ {
			if col, ok := c.classify(x, y); ok {
				canvas.SetPixel(x, y, col)
			}
		}
	}
}

// circleKappa is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const circleKappa = 0.5522847498307936

// Outline returns the circle boundary as a closed path of four cubic
// Bézier curves, in device coordinates.
func (c *Circle) Outline() path.Path {
	cx, cy := float64(c.center.X), float64(c.center.Y)
	r := float64(c.radius)
	k := circleKappa * r

	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx + r, Y: cy}}) {
			return
		}
		quarters := [][]vec.Vec2{
			{{X: cx + r, Y: cy + k}, {X: cx + k, Y: cy + r}, {X: cx, Y: cy + r}},
			{{X: cx - k, Y: cy + r}, {X: cx - r, Y: cy + k}, {X: cx - r, Y: cy}},
			{{X: cx - r, Y: cy - k}, {X: cx - k, Y: cy - r}, {X: cx, Y: cy - r}},
			{{X: cx + k, Y: cy - r}, {X: cx + r, Y: cy - k}, {X: cx + r, Y: cy}},
		}
		for _, q := range quarters {
			if !yield(path.CmdCubeTo, q) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
