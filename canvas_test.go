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
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageCanvas(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	c := ImageCanvas{Img: img}

	render(square(t, 1)).replay(c)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 5))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(15, 15))
}

func TestPixmapCanvas(t *testing.T) {
	pm := gg.NewPixmap(20, 20)
	square(t, 1).Render(PixmapCanvas{Pixmap: pm})

	assert.Equal(t, gg.FromColor(testBorder), pm.GetPixel(0, 5))
	assert.Equal(t, gg.FromColor(testFill), pm.GetPixel(5, 5))
	assert.Equal(t, gg.RGBA{}, pm.GetPixel(15, 15))
}

func TestCanvasFunc(t *testing.T) {
	n := 0
	square(t, 0).Render(CanvasFunc(func(x, y int, c Color) {
		n++
	}))
	assert.Equal(t, 121, n)
}

func TestLockedCanvas(t *testing.T) {
	rec := &recorder{}
	c := NewLockedCanvas(rec)

	const workers, perWorker = 8, 500
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range perWorker {
				c.SetPixel(i, j, testFill)
			}
		}()
	}
	wg.Wait()

	require.Len(t, rec.calls, workers*perWorker)
}

// replay sends the recorded calls to c.
func (r *recorder) replay(c Canvas) {
	for _, p := range r.calls {
		c.SetPixel(p.X, p.Y, p.Color)
	}
}
