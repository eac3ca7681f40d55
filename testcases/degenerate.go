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

import "seehuhn.de/go/shapes"

// degenerateCases contain shapes which are partly or entirely outside
// the canvas, or which have no interior.
var degenerateCases = []TestCase{
	{
		Name:   "polygon_off_canvas",
		Width:  32,
		Height: 32,
		Items: []Item{
			Polygon{Style: style(Red, Black, 1), Vertices: rectangle(40, 40, 60, 60)},
		},
	},
	{
		Name:   "polygon_partly_off_canvas",
		Width:  32,
		Height: 32,
		Items: []Item{
			Polygon{Style: style(Red, Black, 1), Vertices: rectangle(-10, -10, 16, 16)},
		},
	},
	{
		Name:   "zero_area",
		Width:  32,
		Height: 32,
		Items: []Item{
			Polygon{Style: style(Red, Black, 0), Vertices: []shapes.Point{pt(4, 4), pt(28, 28), pt(16, 16)}},
		},
	},
	{
		Name:   "single_point",
		Width:  32,
		Height: 32,
		Items: []Item{
			Polygon{Style: style(Red, Black, 0), Vertices: []shapes.Point{pt(7, 9)}},
		},
	},
	{
		Name:   "tiny_circle",
		Width:  32,
		Height: 32,
		Items: []Item{
			Circle{Style: style(Red, Black, 0), Center: pt(16, 16), Radius: 1},
		},
	},
}
