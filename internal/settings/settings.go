// Package settings holds the rendering and runtime configuration.
package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrThickness indicates a negative border thickness.
	ErrThickness = errors.New("settings: table thickness must be >= 0")
	// ErrFontSize indicates a non-positive cell font size.
	ErrFontSize = errors.New("settings: cell font size must be > 0")
)

// Table carries the visual options of the rendered grid.
type Table struct {
	Color        string `yaml:"color"`
	Thickness    int    `yaml:"thickness"`
	CellFontSize int    `yaml:"cell_font_size"`
}

// Settings is the whole configuration file.
type Settings struct {
	Table   Table  `yaml:"table"`
	Query   string `yaml:"query"`    // SQLite row query
	LogFile string `yaml:"log_file"` // empty disables logging in the TUI
	Addr    string `yaml:"addr"`     // listen address in serve mode
	Data    string `yaml:"data"`     // dataset loaded at startup
}

// Default returns the built-in configuration.
func Default() Settings {
	return Settings{
		Table: Table{
			Color:        "white",
			Thickness:    2,
			CellFontSize: 18,
		},
		Addr: ":8080",
	}
}

// Load reads a YAML file over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &s); err != nil {
				return Settings{}, fmt.Errorf("settings: parse %s: %w", path, err)
			}
		}
	}
	if v := os.Getenv("MATRIXVIEW_ADDR"); v != "" {
		s.Addr = v
	}
	if v := os.Getenv("MATRIXVIEW_LOG"); v != "" {
		s.LogFile = v
	}
	if v := os.Getenv("MATRIXVIEW_QUERY"); v != "" {
		s.Query = v
	}
	return s, s.Validate()
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if s.Table.Thickness < 0 {
		return fmt.Errorf("%w: %d", ErrThickness, s.Table.Thickness)
	}
	if s.Table.CellFontSize <= 0 {
		return fmt.Errorf("%w: %d", ErrFontSize, s.Table.CellFontSize)
	}
	return nil
}

// Save writes the settings as YAML.
func (s Settings) Save(path string) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
