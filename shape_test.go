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
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// pixel is a single SetPixel call.
type pixel struct {
	X, Y  int
	Color Color
}

// recorder is a Canvas which records all SetPixel calls.
type recorder struct {
	calls []pixel
}

func (r *recorder) SetPixel(x, y int, c Color) {
	r.calls = append(r.calls, pixel{X: x, Y: y, Color: c})
}

// painted returns the last colour painted at each pixel.
func (r *recorder) painted() map[Point]Color {
	res := make(map[Point]Color, len(r.calls))
	for _, c := range r.calls {
		res[Point{X: c.X, Y: c.Y}] = c.Color
	}
	return res
}

func render(s Shape) *recorder {
	r := &recorder{}
	s.Render(r)
	return r
}

var (
	testFill   = MustColor(0, 0, 255)
	testBorder = MustColor(255, 0, 0)
)

func testStyle(borderWidth int) Style {
	return Style{Fill: testFill, Border: testBorder, BorderWidth: borderWidth}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.Falsef(t, l.Enabled(context.Background(), level),
			"default logger should not be enabled for %v", level)
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	custom := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)
	assert.Same(t, custom, Logger())

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
