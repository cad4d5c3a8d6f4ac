// Package config provides YAML-based configuration loading for bouncebox.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/bouncebox/internal/core"
)

// Config contains all bouncebox configuration.
type Config struct {
	Physics Physics `yaml:"physics"`
	Display Display `yaml:"display"`
	Runtime Runtime `yaml:"runtime"`
}

// Physics defines the moving rectangle's parameters, in pixels.
type Physics struct {
	Speed   float64 `yaml:"speed"`
	MinSize int     `yaml:"min_size"` // Inclusive
	MaxSize int     `yaml:"max_size"` // Exclusive
}

// Display defines how the rectangle is presented in a terminal.
type Display struct {
	ElementID  string `yaml:"element_id"`
	CellWidth  int    `yaml:"cell_width"`  // Pixels per column
	CellHeight int    `yaml:"cell_height"` // Pixels per row
	Fill       string `yaml:"fill"`
	Color      string `yaml:"color"`
}

// Runtime defines frame timing.
type Runtime struct {
	TickRate int `yaml:"tick_rate"`
}

// FillRune returns the first rune of Fill.
func (d Display) FillRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Fill)
	return r
}

// ColorValue returns the parsed Color, or ColorDefault if unknown.
func (d Display) ColorValue() core.Color {
	c, _ := core.ParseColor(d.Color)
	return c
}

// Validate reports every invalid field in one error.
func (c Config) Validate() error {
	var errs []error

	if c.Physics.Speed <= 0 {
		errs = append(errs, fmt.Errorf("physics.speed must be positive, got %g", c.Physics.Speed))
	}
	if c.Physics.MinSize <= 0 {
		errs = append(errs, fmt.Errorf("physics.min_size must be positive, got %d", c.Physics.MinSize))
	}
	if c.Physics.MaxSize <= c.Physics.MinSize {
		errs = append(errs, fmt.Errorf("physics.max_size (%d) must exceed min_size (%d)", c.Physics.MaxSize, c.Physics.MinSize))
	}
	if c.Display.ElementID == "" {
		errs = append(errs, errors.New("display.element_id must not be empty"))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("display cell size must be positive, got %dx%d", c.Display.CellWidth, c.Display.CellHeight))
	}
	if utf8.RuneCountInString(c.Display.Fill) != 1 {
		errs = append(errs, fmt.Errorf("display.fill must be a single character, got %q", c.Display.Fill))
	}
	if _, ok := core.ParseColor(c.Display.Color); !ok {
		errs = append(errs, fmt.Errorf("display.color %q is not a known color", c.Display.Color))
	}
	if c.Runtime.TickRate <= 0 || c.Runtime.TickRate > 240 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate must be in (0, 240], got %d", c.Runtime.TickRate))
	}

	return errors.Join(errs...)
}
