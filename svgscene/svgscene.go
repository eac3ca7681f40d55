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

// Package svgscene reads scenes of bordered shapes from SVG files.
//
// Only a small subset of SVG is understood: the canvas size is taken from
// the width and height attributes (or the viewBox) of the root element,
// and every <polygon> and <circle> element, in document order, becomes a
// shape. The fill colour, stroke colour and stroke-width attributes
// determine the shape's style. Transforms, CSS and all other elements are
// ignored. Coordinates are rounded to the nearest integer.
package svgscene

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"seehuhn.de/go/shapes"
)

// ErrUnsupported is returned for SVG constructs which cannot be
// represented as shapes.
var ErrUnsupported = errors.New("unsupported SVG")

// Scene is a list of shapes together with the canvas size.
type Scene struct {
	Width, Height int
	Shapes        []shapes.Shape
}

// Load reads an SVG document from r and converts it into a scene.
func Load(r io.Reader) (*Scene, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse SVG")
	}
	if root.Name != "svg" {
		return nil, errors.Wrapf(ErrUnsupported, "root element <%s>", root.Name)
	}

	width, height, err := canvasSize(root)
	if err != nil {
		return nil, err
	}
	scene := &Scene{Width: width, Height: height}

	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		var s shapes.Shape
		var err error
		switch el.Name {
		case "polygon":
			s, err = polygon(el, width, height)
		case "circle":
			s, err = circle(el, width, height)
		}
		if err != nil {
			return errors.Wrapf(err, "<%s> element %d", el.Name, len(scene.Shapes)+1)
		}
		if s != nil {
			scene.Shapes = append(scene.Shapes, s)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	shapes.Logger().Debug("loaded SVG scene",
		"width", width, "height", height, "shapes", len(scene.Shapes))
	return scene, nil
}

// canvasSize determines the canvas size from the root element.
func canvasSize(root *svgparser.Element) (width, height int, err error) {
	if w, h := root.Attributes["width"], root.Attributes["height"]; w != "" && h != "" {
		width, err = length(w)
		if err != nil {
			return 0, 0, errors.Wrap(err, "width")
		}
		height, err = length(h)
		if err != nil {
			return 0, 0, errors.Wrap(err, "height")
		}
	} else {
		vb := numbers(root.Attributes["viewBox"])
		if len(vb) != 4 {
			return 0, 0, errors.Wrap(ErrUnsupported, "missing canvas size")
		}
		width, err = toInt(vb[2])
		if err != nil {
			return 0, 0, errors.Wrap(err, "viewBox")
		}
		height, err = toInt(vb[3])
		if err != nil {
			return 0, 0, errors.Wrap(err, "viewBox")
		}
	}
	if width <= 0 || height <= 0 {
		return 0, 0, errors.Wrapf(ErrUnsupported, "canvas size %dx%d", width, height)
	}
	return width, height, nil
}

func polygon(el *svgparser.Element, width, height int) (shapes.Shape, error) {
	style, err := parseStyle(el)
	if err != nil {
		return nil, err
	}
	coords := numbers(el.Attributes["points"])
	if len(coords) == 0 || len(coords)%2 != 0 {
		return nil, errors.Wrapf(ErrUnsupported, "invalid points %q", el.Attributes["points"])
	}
	vertices := make([]shapes.Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		x, err := toInt(coords[i])
		if err != nil {
			return nil, errors.Wrap(err, "points")
		}
		y, err := toInt(coords[i+1])
		if err != nil {
			return nil, errors.Wrap(err, "points")
		}
		vertices = append(vertices, shapes.Point{X: x, Y: y})
	}
	return shapes.NewPolygonFromPoints(style, width, height, vertices...)
}

func circle(el *svgparser.Element, width, height int) (shapes.Shape, error) {
	style, err := parseStyle(el)
	if err != nil {
		return nil, err
	}
	var v [3]int
	for i, name := range []string{"cx", "cy", "r"} {
		s, ok := el.Attributes[name]
		if !ok {
			if name == "r" {
				return nil, errors.Wrap(ErrUnsupported, "circle without radius")
			}
			continue // cx and cy default to 0
		}
		v[i], err = length(s)
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
	}
	return shapes.NewCircle(style, width, height, shapes.Point{X: v[0], Y: v[1]}, v[2])
}

// parseStyle reads fill, stroke and stroke-width. A missing fill is black,
// as in SVG. Without a stroke the border has width 0 and the fill colour.
func parseStyle(el *svgparser.Element) (shapes.Style, error) {
	var style shapes.Style

	fill, ok := el.Attributes["fill"]
	if ok {
		c, err := parseColor(fill)
		if err != nil {
			return style, errors.Wrap(err, "fill")
		}
		style.Fill = c
	}

	stroke := el.Attributes["stroke"]
	if stroke == "" || stroke == "none" {
		style.Border = style.Fill
		return style, nil
	}
	c, err := parseColor(stroke)
	if err != nil {
		return style, errors.Wrap(err, "stroke")
	}
	style.Border = c

	style.BorderWidth = 1
	if w, ok := el.Attributes["stroke-width"]; ok {
		style.BorderWidth, err = length(w)
		if err != nil {
			return style, errors.Wrap(err, "stroke-width")
		}
	}
	return style, nil
}

var namedColors = map[string][3]int{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"lime":    {0, 255, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"aqua":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"fuchsia": {255, 0, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"navy":    {0, 0, 128},
}

// parseColor understands #rgb, #rrggbb, rgb(r,g,b) and a few colour names.
func parseColor(s string) (shapes.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if rgb, ok := namedColors[s]; ok {
		return shapes.NewColor(rgb[0], rgb[1], rgb[2])
	}

	switch {
	case strings.HasPrefix(s, "#") && (len(s) == 4 || len(s) == 7):
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return shapes.Color{}, errors.Wrapf(ErrUnsupported, "colour %q", s)
		}
		if len(s) == 4 {
			r, g, b := int(v>>8&0xf), int(v>>4&0xf), int(v&0xf)
			return shapes.NewColor(r*17, g*17, b*17)
		}
		return shapes.NewColor(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff))

	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		v := numbers(s[4 : len(s)-1])
		if len(v) != 3 {
			return shapes.Color{}, errors.Wrapf(ErrUnsupported, "colour %q", s)
		}
		var rgb [3]int
		for i := range rgb {
			c, err := toInt(v[i])
			if err != nil {
				return shapes.Color{}, errors.Wrapf(err, "colour %q", s)
			}
			rgb[i] = c
		}
		return shapes.NewColor(rgb[0], rgb[1], rgb[2])
	}

	return shapes.Color{}, errors.Wrapf(ErrUnsupported, "colour %q", s)
}

// length parses a number with an optional "px" unit.
func length(s string) (int, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrUnsupported, "length %q", s)
	}
	return toInt(v)
}

// numbers parses a list of numbers separated by white space and/or commas.
// Entries which are not numbers are skipped.
func numbers(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	res := make([]float64, 0, len(fields))
	for _, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			res = append(res, v)
		}
	}
	return res
}

// maxCoord bounds all coordinates and lengths, so that the products
// formed by the geometry code cannot overflow.
const maxCoord = 1 << 28

// toInt rounds v to the nearest integer. NaN, infinities and values
// beyond maxCoord are rejected.
func toInt(v float64) (int, error) {
	if math.IsNaN(v) || math.Abs(v) > maxCoord {
		return 0, errors.Wrapf(ErrUnsupported, "number %g", v)
	}
	return int(math.Round(v)), nil
}
