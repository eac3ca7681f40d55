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

// Package testcases defines named scenes which exercise the shape
// rasteriser. The scenes are shared by the tests, the benchmarks and
// the tools which generate reference images.
package testcases

import (
	"seehuhn.de/go/shapes"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Items  []Item // shapes, in painting order
}

// Item is a shape description in a test case.
type Item interface {
	build(width, height int) (shapes.Shape, error)
}

// Circle describes a circle.
type Circle struct {
	Style  shapes.Style
	Center shapes.Point
	Radius int
}

func (c Circle) build(width, height int) (shapes.Shape, error) {
	return shapes.NewCircle(c.Style, width, height, c.Center, c.Radius)
}

// Polygon describes a polygon by its vertices.
type Polygon struct {
	Style    shapes.Style
	Vertices []shapes.Point
}

func (p Polygon) build(width, height int) (shapes.Shape, error) {
	return shapes.NewPolygonFromPoints(p.Style, width, height, p.Vertices...)
}

// Shapes constructs the shapes of the test case, for the test case's
// canvas size.
func (tc TestCase) Shapes() ([]shapes.Shape, error) {
	res := make([]shapes.Shape, len(tc.Items))
	for i, item := range tc.Items {
		s, err := item.build(tc.Width, tc.Height)
		if err != nil {
			return nil, err
		}
		res[i] = s
	}
	return res, nil
}

// Colours used by the test cases.
var (
	Black = shapes.MustColor(0, 0, 0)
	White = shapes.MustColor(255, 255, 255)
	Red   = shapes.MustColor(220, 40, 40)
	Green = shapes.MustColor(40, 180, 60)
	Blue  = shapes.MustColor(40, 80, 220)
	Gold  = shapes.MustColor(240, 190, 20)
)

// style is a helper to create a shapes.Style.
func style(fill, border shapes.Color, width int) shapes.Style {
	return shapes.Style{Fill: fill, Border: border, BorderWidth: width}
}

// pt is a helper to create a shapes.Point from x, y coordinates.
func pt(x, y int) shapes.Point {
	return shapes.Point{X: x, Y: y}
}
