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

package testcases

import (
	"math"

	"seehuhn.de/go/shapes"
)

var polygonCases = []TestCase{
	{
		Name:   "square",
		Width:  64,
		Height: 64,
		Items: []Item{
			Polygon{Style: style(Blue, Gold, 2), Vertices: rectangle(10, 10, 54, 54)},
		},
	},
	{
		Name:   "square_no_border",
		Width:  64,
		Height: 64,
		Items: []Item{
			Polygon{Style: style(Blue, Blue, 0), Vertices: rectangle(10, 10, 54, 54)},
		},
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Items: []Item{
			Polygon{Style: style(Green, Black, 1), Vertices: []shapes.Point{pt(10, 50), pt(32, 10), pt(54, 50)}},
		},
	},
	{
		Name:   "triangle_reversed",
		Width:  64,
		Height: 64,
		Items: []Item{
			Polygon{Style: style(Green, Black, 1), Vertices: []shapes.Point{pt(54, 50), pt(32, 10), pt(10, 50)}},
		},
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 64,
		Items: []Item{
			Polygon{Style: style(Gold, Red, 1), Vertices: fivePointStar(32, 32, 25)},
		},
	},
	{
		Name:   "arrow_concave",
		Width:  64,
		Height: 64,
		Items: []Item{
			Polygon{Style: style(Red, White, 1), Vertices: []shapes.Point{
				pt(8, 24), pt(36, 24), pt(36, 10), pt(58, 32),
				pt(36, 54), pt(36, 40), pt(8, 40),
			}},
		},
	},
	{
		Name:   "comb",
		Width:  64,
		Height: 64,
		Items: []Item{
			Polygon{Style: style(Blue, White, 0), Vertices: []shapes.Point{
				pt(6, 58), pt(6, 6), pt(18, 6), pt(18, 40), pt(26, 40), pt(26, 6),
				pt(38, 6), pt(38, 40), pt(46, 40), pt(46, 6), pt(58, 6), pt(58, 58),
			}},
		},
	},
	{
		Name:   "overlapping",
		Width:  64,
		Height: 64,
		Items: []Item{
			Polygon{Style: style(Red, Black, 1), Vertices: rectangle(6, 6, 40, 40)},
			Polygon{Style: style(Blue, Black, 1), Vertices: rectangle(24, 24, 58, 58)},
		},
	},
}

// rectangle returns the corners of an axis-aligned rectangle, in
// clockwise order on the screen.
func rectangle(x1, y1, x2, y2 int) []shapes.Point {
	return []shapes.Point{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// fivePointStar returns the vertices of a self-intersecting five-pointed
// star, rounded to integer coordinates.
func fivePointStar(cx, cy, r float64) []shapes.Point {
	corners := make([]shapes.Point, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
	}

	// connect every second corner: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	res := make([]shapes.Point, len(order))
	for i, j := range order {
		res[i] = corners[j]
	}
	return res
}
