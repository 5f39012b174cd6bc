package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.GetWidth() != 15 || cfg.GetHeight() != 15 {
		t.Errorf("Default dimensions = %dx%d, want 15x15", cfg.GetWidth(), cfg.GetHeight())
	}
	if cfg.GetGenerator() != "prim" {
		t.Errorf("GetGenerator() = %q, want %q", cfg.GetGenerator(), "prim")
	}
	if _, ok := cfg.GetSeed(); ok {
		t.Error("Default seed is set, want unset")
	}
	if cfg.GetColor() {
		t.Error("GetColor() = true, want false")
	}
}

func TestEmpty_GettersFallBack(t *testing.T) {
	cfg := Empty()
	if cfg.GetWidth() != DefaultWidth {
		t.Errorf("GetWidth() = %d, want %d", cfg.GetWidth(), DefaultWidth)
	}
	if cfg.GetTileSize() != DefaultTileSize {
		t.Errorf("GetTileSize() = %d, want %d", cfg.GetTileSize(), DefaultTileSize)
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "maze.json")

	testJSON := `{
  "width": 31,
  "height": 21,
  "seed": 1234,
  "generator": "backtracker"
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.GetWidth() != 31 {
		t.Errorf("GetWidth() = %d, want 31", cfg.GetWidth())
	}
	if cfg.GetHeight() != 21 {
		t.Errorf("GetHeight() = %d, want 21", cfg.GetHeight())
	}
	if seed, ok := cfg.GetSeed(); !ok || seed != 1234 {
		t.Errorf("GetSeed() = %d, %v, want 1234, true", seed, ok)
	}
	if cfg.GetGenerator() != "backtracker" {
		t.Errorf("GetGenerator() = %q, want %q", cfg.GetGenerator(), "backtracker")
	}
	if cfg.Color != nil {
		t.Error("Color set although omitted from file")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(tmpDir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
	}{
		{"wrong extension", write("maze.yaml", "width: 3")},
		{"missing file", filepath.Join(tmpDir, "missing.json")},
		{"bad json", write("bad.json", "{width:")},
		{"too small", write("small.json", `{"width": 1}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.path); err == nil {
				t.Errorf("LoadConfig(%s) error = nil, want error", tt.path)
			}
		})
	}
}

func TestValidate_Dimensions(t *testing.T) {
	cfg := Empty()
	cfg.SetHeight(2)
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Validate() = %v, want ErrInvalidDimensions", err)
	}
}

func TestMerge_OverridesOnlySetFields(t *testing.T) {
	base := Default()
	override := Empty()
	override.SetWidth(41)
	override.SetSeed(7)

	base.Merge(override)

	if base.GetWidth() != 41 {
		t.Errorf("GetWidth() = %d, want 41", base.GetWidth())
	}
	if base.GetHeight() != DefaultHeight {
		t.Errorf("GetHeight() = %d, want unchanged %d", base.GetHeight(), DefaultHeight)
	}
	if seed, ok := base.GetSeed(); !ok || seed != 7 {
		t.Errorf("GetSeed() = %d, %v, want 7, true", seed, ok)
	}

	// Later changes to override must not leak into base.
	*override.Width = 3
	if base.GetWidth() != 41 {
		t.Errorf("GetWidth() = %d after mutating override, want 41", base.GetWidth())
	}
}

func TestHasEvenDimension(t *testing.T) {
	cfg := Default()
	if cfg.HasEvenDimension() {
		t.Error("HasEvenDimension() = true for 15x15")
	}
	cfg.SetWidth(16)
	if !cfg.HasEvenDimension() {
		t.Error("HasEvenDimension() = false for 16x15")
	}
}
