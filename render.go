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

// Package shapes rasterises circles and polygons with a filled interior and
// a separately coloured border.
//
// Shapes are described in integer device coordinates, with the x axis
// pointing right and the y axis pointing down. A shape is validated and
// its bounding box is computed when it is constructed; after that it is
// immutable and can be rendered any number of times onto a [Canvas].
// There is no anti-aliasing: every pixel is either painted with the fill
// colour, painted with the border colour, or left alone.
//
// Polygon membership is decided by casting a horizontal ray and applying
// the even-odd rule, so self-overlapping polygons get holes where an even
// number of layers overlap.
package shapes

//go:generate go run ./testcases/export

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/geom/rect"
)

// RenderAll renders the given shapes onto canvas, in order. Later shapes
// paint over earlier ones.
//
// The context is checked before each shape; once a shape has started
// rendering it runs to completion. If the context is cancelled, the
// context error is returned.
func RenderAll(ctx context.Context, canvas Canvas, shapes ...Shape) error {
	start := time.Now()
	for _, s := range shapes {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Render(canvas)
	}
	Logger().Debug("rendered shapes",
		"count", len(shapes), "area", Extent(shapes...), "duration", time.Since(start))
	return nil
}

// RenderParallel renders the given shapes onto canvas, using at most
// workers goroutines. If workers is not positive, one goroutine per shape
// is used.
//
// Calls to canvas are serialised, so canvas need not be safe for
// concurrent use. The order in which overlapping shapes are painted
// is unspecified.
func RenderParallel(ctx context.Context, canvas Canvas, workers int, shapes ...Shape) error {
	start := time.Now()
	locked := NewLockedCanvas(canvas)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, s := range shapes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.Render(locked)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	Logger().Debug("rendered shapes in parallel",
		"count", len(shapes), "area", Extent(shapes...),
		"workers", workers, "duration", time.Since(start))
	return nil
}

// Extent returns the smallest rectangle which contains the bounding boxes
// of all given shapes. Shapes with an empty bounding box are ignored; if
// no pixels can be painted, the zero rectangle is returned.
func Extent(shapes ...Shape) rect.Rect {
	var r rect.Rect
	for _, s := range shapes {
		r.Extend(s.Bounds().Rect())
	}
	return r
}
