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
	"image/draw"
	"sync"

	"github.com/gogpu/gg"
)

// CanvasFunc adapts an ordinary function to the [Canvas] interface.
type CanvasFunc func(x, y int, c Color)

// SetPixel calls f(x, y, c).
func (f CanvasFunc) SetPixel(x, y int, c Color) {
	f(x, y, c)
}

// ImageCanvas draws onto a [draw.Image].
// Pixel coordinates are relative to the image origin, which need not
// coincide with the upper left corner of the image bounds.
type ImageCanvas struct {
	Img draw.Image
}

// SetPixel implements the [Canvas] interface.
func (c ImageCanvas) SetPixel(x, y int, col Color) {
	c.Img.Set(x, y, col)
}

// PixmapCanvas draws onto a [gg.Pixmap].
type PixmapCanvas struct {
	Pixmap *gg.Pixmap
}

// SetPixel implements the [Canvas] interface.
func (c PixmapCanvas) SetPixel(x, y int, col Color) {
	c.Pixmap.SetPixel(x, y, gg.FromColor(col))
}

// lockedCanvas serialises access to a canvas.
type lockedCanvas struct {
	mu     sync.Mutex
	canvas Canvas
}

// NewLockedCanvas returns a canvas which forwards SetPixel calls to c,
// holding a mutex for the duration of each call. This allows several
// shapes to be rendered onto c concurrently.
func NewLockedCanvas(c Canvas) Canvas {
	return &lockedCanvas{canvas: c}
}

func (l *lockedCanvas) SetPixel(x, y int, c Color) {
	l.mu.Lock()
	l.canvas.SetPixel(x, y, c)
	l.mu.Unlock()
}
