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
	"fmt"

	"github.com/pkg/errors"
)

// Valid range for colour channels.
const (
	ColorMin = 0
	ColorMax = 255
)

// Color is an opaque RGB colour. The zero value is black.
// Colors are immutable; use [NewColor] to create one.
type Color struct {
	r, g, b uint8
}

// NewColor returns the colour with the given red, green and blue
// channels. Each channel must be in the range [ColorMin, ColorMax],
// otherwise an error wrapping [ErrInvalidColor] is returned.
func NewColor(r, g, b int) (Color, error) {
	for _, ch := range []struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.value < ColorMin || ch.value > ColorMax {
			return Color{}, errors.Wrapf(ErrInvalidColor,
				"%s channel %d not in [%d, %d]", ch.name, ch.value, ColorMin, ColorMax)
		}
	}
	return Color{r: uint8(r), g: uint8(g), b: uint8(b)}, nil
}

// MustColor is like [NewColor] but panics if the colour is invalid.
// It is intended for package-level colour definitions.
func MustColor(r, g, b int) Color {
	c, err := NewColor(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// Components returns the red, green and blue channels of c.
func (c Color) Components() (r, g, b int) {
	return int(c.r), int(c.g), int(c.b)
}

// RGBA implements the [image/color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r)
	r |= r << 8
	g = uint32(c.g)
	g |= g << 8
	b = uint32(c.b)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}
