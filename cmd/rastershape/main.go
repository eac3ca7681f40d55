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

// Command rastershape renders the circles and polygons of an SVG file to a
// PNG image, without anti-aliasing.
//
// Usage:
//
//	rastershape scene.svg
//
// The command is configured using environment variables:
//
//	RASTERSHAPE_OUTPUT      output file name (default out.png)
//	RASTERSHAPE_BACKGROUND  background colour as r,g,b (default 255,255,255)
//	RASTERSHAPE_WORKERS     number of shapes rendered concurrently (default 1)
//	RASTERSHAPE_LOG_LEVEL   debug, info, warn or error (default warn)
//	RASTERSHAPE_COLOR       colourise the summary line (default true)
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/gg"
	"github.com/logrusorgru/aurora"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/svgscene"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rastershape:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	shapes.SetLogger(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: rastershape scene.svg")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, os.Args[1]); err != nil {
		slog.Error("render failed", "input", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, input string) error {
	start := time.Now()

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	scene, err := svgscene.Load(f)
	f.Close()
	if err != nil {
		return err
	}

	bg, err := cfg.background()
	if err != nil {
		return err
	}
	pm := gg.NewPixmap(scene.Width, scene.Height)
	pm.Clear(gg.FromColor(bg))

	canvas := shapes.PixmapCanvas{Pixmap: pm}
	if cfg.Workers == 1 {
		err = shapes.RenderAll(ctx, canvas, scene.Shapes...)
	} else {
		err = shapes.RenderParallel(ctx, canvas, cfg.Workers, scene.Shapes...)
	}
	if err != nil {
		return err
	}

	if err := pm.SavePNG(cfg.Output); err != nil {
		return err
	}

	area := shapes.Extent(scene.Shapes...)
	au := aurora.NewAurora(cfg.Color)
	fmt.Printf("%s %s: %d shapes in %gx%g of %dx%d pixels, %s\n",
		au.Green("wrote"), au.Bold(cfg.Output),
		len(scene.Shapes), area.Dx(), area.Dy(), scene.Width, scene.Height,
		time.Since(start).Round(time.Millisecond))
	return nil
}
