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

package shapes_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/shapes"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkCircle benchmarks rendering a bordered disk.
func BenchmarkCircle(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			style := shapes.Style{
				Fill:        shapes.MustColor(255, 255, 255),
				Border:      shapes.MustColor(255, 0, 0),
				BorderWidth: max(size/50, 1),
			}
			c, err := shapes.NewCircle(style, size, size, shapes.Point{X: size / 2, Y: size / 2}, size*45/100)
			if err != nil {
				b.Fatal(err)
			}
			canvas := shapes.ImageCanvas{Img: dst}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				c.Render(canvas)
			}
		})
	}
}

// BenchmarkPolygon benchmarks rendering a concave bordered polygon.
func BenchmarkPolygon(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			style := shapes.Style{
				Fill:        shapes.MustColor(255, 255, 255),
				Border:      shapes.MustColor(255, 0, 0),
				BorderWidth: max(size/50, 1),
			}
			p, err := shapes.NewPolygonFromPoints(style, size, size, arrow(size)...)
			if err != nil {
				b.Fatal(err)
			}
			canvas := shapes.ImageCanvas{Img: dst}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				p.Render(canvas)
			}
		})
	}
}

// BenchmarkVectorPolygon benchmarks x/image/vector filling the same
// polygon as BenchmarkPolygon, without a border.
func BenchmarkVectorPolygon(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			pts := arrow(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
				for _, p := range pts[1:] {
					r.LineTo(float32(p.X), float32(p.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// arrow returns the vertices of an arrow pointing right, scaled to fill
// a canvas of the given size.
func arrow(size int) []shapes.Point {
	s := func(v int) int { return v * size / 64 }
	return []shapes.Point{
		{X: s(8), Y: s(24)}, {X: s(36), Y: s(24)}, {X: s(36), Y: s(10)}, {X: s(58), Y: s(32)},
		{X: s(36), Y: s(54)}, {X: s(36), Y: s(40)}, {X: s(8), Y: s(40)},
	}
}
