// Package config holds the notebook settings. Everything has a default; a TOML
// file can override any subset of them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"GridNotebook/internal/grid"
	"GridNotebook/internal/palette"
)

// Config is the per-session configuration. None of it is stored in drawing files.
type Config struct {
	CellSize       int      `toml:"cell_size"`
	GridExtent     int      `toml:"grid_extent"`
	ViewportWidth  int      `toml:"viewport_width"`
	ViewportHeight int      `toml:"viewport_height"`
	EraserSize     int      `toml:"eraser_size"`
	Background     string   `toml:"background"`
	GridColor      string   `toml:"grid_color"`
	DefaultColor   string   `toml:"default_color"`
	Palette        []string `toml:"palette"`
}

// Default returns the stock notebook: 40px cells on a 10000px square.
func Default() Config {
	return Config{
		CellSize:       40,
		GridExtent:     10000,
		ViewportWidth:  600,
		ViewportHeight: 400,
		EraserSize:     10,
		Background:     "white",
		GridColor:      "lightgray",
		DefaultColor:   "black",
		Palette:        []string{"black", "red", "blue", "green", "purple", "maroon", "pink", "brown", "orange"},
	}
}

// Path is where the desktop app looks for its config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "gridnotebook", "config.toml"), nil
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("[CONFIG] Ignoring unknown key %q in %s", key.String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that sizes are positive and colors parse.
func (c Config) Validate() error {
	var errs []error
	for name, v := range map[string]int{
		"cell_size":       c.CellSize,
		"grid_extent":     c.GridExtent,
		"viewport_width":  c.ViewportWidth,
		"viewport_height": c.ViewportHeight,
		"eraser_size":     c.EraserSize,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	colors := append([]string{c.Background, c.GridColor, c.DefaultColor}, c.Palette...)
	for _, s := range colors {
		if _, err := palette.Parse(s); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette is empty"))
	}
	return errors.Join(errs...)
}

// Grid returns the grid described by the config.
func (c Config) Grid() grid.Spec {
	return grid.Spec{CellSize: c.CellSize, Extent: c.GridExtent}
}

// EraserWidth is the width eraser segments are painted with: the full side of the eraser square.
func (c Config) EraserWidth() float64 { return float64(2 * c.EraserSize) }
