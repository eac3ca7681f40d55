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

// largeCases contains test cases with bounding boxes of more than
// 65536 pixels.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Width:  512,
		Height: 512,
		Items: []Item{
			Polygon{Style: style(Blue, Gold, 4), Vertices: rectangle(50, 50, 462, 462)},
		},
	},
	{
		Name:   "large_diamond",
		Width:  512,
		Height: 512,
		Items: []Item{
			Polygon{Style: style(Green, Black, 3), Vertices: []shapes.Point{
				pt(256, 16), pt(496, 256), pt(256, 496), pt(16, 256),
			}},
		},
	},
	{
		Name:   "large_circle",
		Width:  512,
		Height: 512,
		Items: []Item{
			Circle{Style: style(Red, Black, 8), Center: pt(256, 256), Radius: 200},
		},
	},
}
