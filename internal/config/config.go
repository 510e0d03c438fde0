package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the tool configuration, loaded from YAML.
type Config struct {
	Mesher MesherConfig `yaml:"mesher"`
	Export ExportConfig `yaml:"export"`
}

// MesherConfig controls mesh generation.
type MesherConfig struct {
	// Algorithm is "culled" or "greedy".
	Algorithm string `yaml:"algorithm"`
	Workers   int    `yaml:"workers"`
	QueueSize int    `yaml:"queue_size"`
}

// ExportConfig controls mesh and atlas output.
type ExportConfig struct {
	OutPath       string `yaml:"out_path"`
	AtlasTileSize int    `yaml:"atlas_tile_size"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mesher: MesherConfig{
			Algorithm: "greedy",
			Workers:   4,
			QueueSize: 64,
		},
		Export: ExportConfig{
			OutPath:       "chunk.obj",
			AtlasTileSize: 16,
		},
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		cfg.normalize()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// normalize clamps values to workable ranges.
func (c *Config) normalize() {
	if c.Mesher.Workers < 1 {
		c.Mesher.Workers = 1
	}
	if c.Mesher.Workers > 64 {
		c.Mesher.Workers = 64
	}
	if c.Mesher.QueueSize < 1 {
		c.Mesher.QueueSize = 1
	}
	if c.Mesher.QueueSize > 4096 {
		c.Mesher.QueueSize = 4096
	}
	if c.Export.AtlasTileSize < 1 {
		c.Export.AtlasTileSize = 16
	}
}

// Validate rejects values normalize cannot repair.
func (c *Config) Validate() error {
	switch c.Mesher.Algorithm {
	case "culled", "greedy":
	default:
		return fmt.Errorf("unknown mesher algorithm %q", c.Mesher.Algorithm)
	}
	if c.Export.OutPath == "" {
		return fmt.Errorf("export out_path must not be empty")
	}
	return nil
}
