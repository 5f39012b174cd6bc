// Package config loads maze generation settings from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults used when a field is not set
const (
	DefaultWidth     = 15
	DefaultHeight    = 15
	DefaultGenerator = "prim"
	DefaultTileSize  = 16
)

// ErrInvalidDimensions is returned for widths or heights that cannot hold a maze
var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// Config holds generation and display settings. Pointer fields distinguish
// "unset" from zero so partial files and flag overrides compose.
type Config struct {
	Width     *int    `json:"width,omitempty"`
	Height    *int    `json:"height,omitempty"`
	Seed      *int64  `json:"seed,omitempty"`
	Generator *string `json:"generator,omitempty"`
	Color     *bool   `json:"color,omitempty"`
	TileSize  *int    `json:"tile_size,omitempty"`
}

// Helper functions to create pointers
func ptrInt(v int) *int          { return &v }
func ptrInt64(v int64) *int64    { return &v }
func ptrString(v string) *string { return &v }
func ptrBool(v bool) *bool       { return &v }

// Empty returns a Config with all fields unset
func Empty() *Config {
	return &Config{}
}

// Default returns a Config with every field set to its default
func Default() *Config {
	return &Config{
		Width:     ptrInt(DefaultWidth),
		Height:    ptrInt(DefaultHeight),
		Generator: ptrString(DefaultGenerator),
		Color:     ptrBool(false),
		TileSize:  ptrInt(DefaultTileSize),
	}
}

// LoadConfig loads a Config from a JSON file.
// The file must have a .json extension and be under 64KB.
// Fields omitted from the file stay unset.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 64 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields that are set
func (c *Config) Validate() error {
	if c.Width != nil && *c.Width < 3 {
		return fmt.Errorf("width %d below 3: %w", *c.Width, ErrInvalidDimensions)
	}
	if c.Height != nil && *c.Height < 3 {
		return fmt.Errorf("height %d below 3: %w", *c.Height, ErrInvalidDimensions)
	}
	if c.TileSize != nil && *c.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", *c.TileSize)
	}
	if c.Generator != nil && *c.Generator == "" {
		return errors.New("generator must not be empty")
	}
	return nil
}

// Merge copies every field set in other over c
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Width != nil {
		c.Width = ptrInt(*other.Width)
	}
	if other.Height != nil {
		c.Height = ptrInt(*other.Height)
	}
	if other.Seed != nil {
		c.Seed = ptrInt64(*other.Seed)
	}
	if other.Generator != nil {
		c.Generator = ptrString(*other.Generator)
	}
	if other.Color != nil {
		c.Color = ptrBool(*other.Color)
	}
	if other.TileSize != nil {
		c.TileSize = ptrInt(*other.TileSize)
	}
}

// SetWidth sets the width
func (c *Config) SetWidth(v int) { c.Width = ptrInt(v) }

// SetHeight sets the height
func (c *Config) SetHeight(v int) { c.Height = ptrInt(v) }

// SetSeed sets the seed
func (c *Config) SetSeed(v int64) { c.Seed = ptrInt64(v) }

// SetGenerator sets the generator name
func (c *Config) SetGenerator(v string) { c.Generator = ptrString(v) }

// SetColor sets whether output is coloured
func (c *Config) SetColor(v bool) { c.Color = ptrBool(v) }

// SetTileSize sets the viewer tile size
func (c *Config) SetTileSize(v int) { c.TileSize = ptrInt(v) }

// GetWidth returns the width or DefaultWidth
func (c *Config) GetWidth() int {
	if c.Width == nil {
		return DefaultWidth
	}
	return *c.Width
}

// GetHeight returns the height or DefaultHeight
func (c *Config) GetHeight() int {
	if c.Height == nil {
		return DefaultHeight
	}
	return *c.Height
}

// GetSeed returns the seed and whether one was configured
func (c *Config) GetSeed() (int64, bool) {
	if c.Seed == nil {
		return 0, false
	}
	return *c.Seed, true
}

// GetGenerator returns the generator name or DefaultGenerator
func (c *Config) GetGenerator() string {
	if c.Generator == nil {
		return DefaultGenerator
	}
	return *c.Generator
}

// GetColor returns whether output is coloured (default false)
func (c *Config) GetColor() bool {
	if c.Color == nil {
		return false
	}
	return *c.Color
}

// GetTileSize returns the viewer tile size or DefaultTileSize
func (c *Config) GetTileSize() int {
	if c.TileSize == nil {
		return DefaultTileSize
	}
	return *c.TileSize
}

// HasEvenDimension reports whether either dimension is even, which leaves
// the bottom or right border open
func (c *Config) HasEvenDimension() bool {
	return c.GetWidth()%2 == 0 || c.GetHeight()%2 == 0
}
