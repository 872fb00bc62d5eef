package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/menta2k/stickerframe/pkg/frame"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Frame.Algorithm != frame.VariantBase {
		t.Errorf("expected base algorithm, got %s", cfg.Frame.Algorithm)
	}
	if cfg.Output.Quality != 90 {
		t.Errorf("expected quality 90, got %d", cfg.Output.Quality)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Output.Quality = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero quality")
	}

	cfg = Default()
	cfg.Output.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty output path")
	}

	cfg = Default()
	cfg.Frame.Density = 2
	if err := cfg.Validate(); err == nil {
		t.Error("expected frame validation to propagate")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Frame.Density = 0.25
	cfg.Frame.Algorithm = frame.VariantCorner
	cfg.Frame.BorderSides = frame.SideCornersOnly
	cfg.Output.Path = "out.webp"

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if loaded.Frame.Density != 0.25 {
		t.Errorf("density not round-tripped: %g", loaded.Frame.Density)
	}
	if loaded.Frame.Algorithm != frame.VariantCorner {
		t.Errorf("algorithm not round-tripped: %s", loaded.Frame.Algorithm)
	}
	if loaded.Output.Path != "out.webp" {
		t.Errorf("output path not round-tripped: %s", loaded.Output.Path)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadFromFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	cfg := Default()
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	// Truncate to invalid JSON.
	if err := writeFile(path, "{nope"); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
