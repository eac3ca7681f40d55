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

	"seehuhn.de/go/geom/rect"
)

// Canvas is the pixel surface shapes are drawn onto.
//
// SetPixel is called at most once per pixel and render call, and only for
// coordinates inside the shape's bounding box. Implementations must
// tolerate any coordinate in [0, width) × [0, height) of the canvas
// size passed to the shape constructor.
type Canvas interface {
	SetPixel(x, y int, c Color)
}

// Shape is a geometric figure which can be rasterised onto a canvas.
//
// The implementations in this package are immutable once constructed.
// Render may be called any number of times and always emits the same
// sequence of SetPixel calls.
type Shape interface {
	// Render draws the shape onto c.
	Render(c Canvas)

	// Bounds returns the pixel region visited by Render, already clipped
	// to the canvas.
	Bounds() Box
}

// Style holds the paint parameters shared by all shapes.
type Style struct {
	Fill   Color // colour of interior pixels
	Border Color // colour of pixels within BorderWidth of the outline

	// BorderWidth is the width of the outline in pixels, measured as
	// perpendicular distance to the outline. Must be non-negative.
	BorderWidth int
}

// shape holds the state common to Circle and Polygon.
type shape struct {
	style         Style
	width, height int // canvas size
	box           Box
}

func newShape(style Style, width, height int) (shape, error) {
	if style.BorderWidth < 0 {
		return shape{}, errors.Wrapf(ErrInvalidShape, "negative border width %d", style.BorderWidth)
	}
	if width < 0 || height < 0 {
		return shape{}, errors.Wrapf(ErrInvalidShape, "invalid canvas size %dx%d", width, height)
	}
	return shape{style: style, width: width, height: height}, nil
}

// Style returns the paint parameters of the shape.
func (s *shape) Style() Style {
	return s.style
}

// CanvasSize returns the canvas size the shape was constructed for.
func (s *shape) CanvasSize() (width, height int) {
	return s.width, s.height
}

// Bounds returns the region scanned by Render.
func (s *shape) Bounds() Box {
	return s.box
}

// Box is an axis-aligned pixel rectangle. Both bounds are inclusive.
// A Box with XMin > XMax or YMin > YMax is empty.
type Box struct {
	XMin, XMax int
	YMin, YMax int
}

// Empty reports whether b contains no pixels.
func (b Box) Empty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Contains reports whether the pixel (x, y) lies in b.
func (b Box) Contains(x, y int) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// Rect returns the area covered by the pixels of b, as an
// integer-aligned rectangle. For an empty box the zero rectangle is
// returned.
func (b Box) Rect() rect.Rect {
	if b.Empty() {
		return rect.Rect{}
	}
	return rect.Rect{
		LLx: float64(b.XMin),
		LLy: float64(b.YMin),
		URx: float64(b.XMax + 1),
		URy: float64(b.YMax + 1),
	}
}

// clip restricts b to the canvas [0, width) × [0, height).
func (b Box) clip(width, height int) Box {
	return Box{
		XMin: max(b.XMin, 0),
		XMax: min(b.XMax, width-1),
		YMin: max(b.YMin, 0),
		YMax: min(b.YMax, height-1),
	}
}
