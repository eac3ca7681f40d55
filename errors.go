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

import "github.com/pkg/errors"

// Errors returned by the shape constructors. The returned errors wrap
// these values with details about the offending input; use [errors.Is]
// to test for them.
var (
	// ErrInvalidColor is returned when a colour channel is outside
	// the range [ColorMin, ColorMax].
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidPolygon is returned when the edges of a polygon do not
	// form a closed chain.
	ErrInvalidPolygon = errors.New("invalid polygon")

	// ErrInvalidShape is returned for other invalid shape parameters,
	// for example a negative border width or a non-positive radius.
	ErrInvalidShape = errors.New("invalid shape")
)
