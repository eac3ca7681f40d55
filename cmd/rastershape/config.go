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

package main

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"seehuhn.de/go/shapes"
)

// Config holds the settings of the command, read from RASTERSHAPE_*
// environment variables.
type Config struct {
	Output     string     `envconfig:"OUTPUT" default:"out.png"`
	Background []int      `envconfig:"BACKGROUND" default:"255,255,255"`
	Workers    int        `envconfig:"WORKERS" default:"1"`
	LogLevel   slog.Level `envconfig:"LOG_LEVEL" default:"warn"`
	Color      bool       `envconfig:"COLOR" default:"true"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("rastershape", &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.background(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// background returns the canvas background colour.
func (c *Config) background() (shapes.Color, error) {
	if len(c.Background) != 3 {
		return shapes.Color{}, errors.Errorf("RASTERSHAPE_BACKGROUND: need 3 channels, got %d", len(c.Background))
	}
	col, err := shapes.NewColor(c.Background[0], c.Background[1], c.Background[2])
	return col, errors.Wrap(err, "RASTERSHAPE_BACKGROUND")
}
