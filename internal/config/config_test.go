package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.Mesher.Algorithm != "greedy" {
		t.Errorf("default algorithm = %q", cfg.Mesher.Algorithm)
	}
	if cfg.Mesher.Workers < 1 {
		t.Errorf("default workers = %d", cfg.Mesher.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
mesher:
  algorithm: culled
  workers: 999
export:
  out_path: terrain.obj
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mesher.Algorithm != "culled" {
		t.Errorf("algorithm = %q", cfg.Mesher.Algorithm)
	}
	if cfg.Mesher.Workers != 64 {
		t.Errorf("workers = %d, want clamped to 64", cfg.Mesher.Workers)
	}
	if cfg.Export.OutPath != "terrain.obj" {
		t.Errorf("out_path = %q", cfg.Export.OutPath)
	}
	// untouched values keep their defaults
	if cfg.Export.AtlasTileSize != 16 {
		t.Errorf("atlas_tile_size = %d", cfg.Export.AtlasTileSize)
	}
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("mesher:\n  algorithm: voronoi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("unknown algorithm accepted")
	}
}
