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

var circleCases = []TestCase{
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Items: []Item{
			Circle{Style: style(Green, Black, 3), Center: pt(32, 32), Radius: 20},
		},
	},
	{
		Name:   "circle_thick_border",
		Width:  64,
		Height: 64,
		Items: []Item{
			Circle{Style: style(Green, Red, 12), Center: pt(32, 32), Radius: 20},
		},
	},
	{
		Name:   "circle_all_border",
		Width:  64,
		Height: 64,
		Items: []Item{
			Circle{Style: style(Green, Red, 20), Center: pt(32, 32), Radius: 20},
		},
	},
	{
		Name:   "circle_clipped",
		Width:  64,
		Height: 64,
		Items: []Item{
			Circle{Style: style(Blue, Gold, 2), Center: pt(60, 60), Radius: 16},
		},
	},
	{
		Name:   "circle_on_square",
		Width:  64,
		Height: 64,
		Items: []Item{
			Polygon{Style: style(Red, Black, 1), Vertices: rectangle(8, 8, 56, 56)},
			Circle{Style: style(White, Black, 2), Center: pt(32, 32), Radius: 18},
		},
	},
}
