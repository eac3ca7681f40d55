// Command export renders every test case to a PNG image, for visual
// inspection. Run from the module root directory.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/gogpu/gg"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

const outDir = "testdata/rendered"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	shapes.SetLogger(logger)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(ctx, tc, filepath.Join(outDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("exported", "case", name)
		}
	}
}

func export(ctx context.Context, tc testcases.TestCase, fname string) error {
	items, err := tc.Shapes()
	if err != nil {
		return err
	}

	pm := gg.NewPixmap(tc.Width, tc.Height)
	pm.Clear(gg.FromColor(testcases.Black))
	if err := shapes.RenderAll(ctx, shapes.PixmapCanvas{Pixmap: pm}, items...); err != nil {
		return err
	}
	return pm.SavePNG(fname)
}
