// Package config loads the optional YAML game file: a replacement level
// table and sparse key binding overrides.
//
//	levels:
//	  - {width: 40, height: 30, torches: 4, chasers: 1, chaser_health: 8, chaser_speed_ms: 250, track: level1}
//	keys:
//	  play: {k: move_up, space: none}
//	  special: {Tab: shoot}
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/minotaur/input"
	"github.com/lixenwraith/minotaur/level"
)

// File is the on-disk shape
type File struct {
	Levels level.Table    `yaml:"levels"`
	Keys   input.Bindings `yaml:"keys"`
}

// Config is the resolved game configuration
type Config struct {
	Levels level.Table
	Keys   *input.KeyTable
}

// Default returns the built-in level table and bindings
func Default() *Config {
	return &Config{
		Levels: level.Default(),
		Keys:   input.DefaultKeyTable(),
	}
}

// Load reads path; an empty path returns Default. Absent sections keep
// their defaults, a present levels list replaces the whole table.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse resolves YAML config data
func Parse(data []byte) (*Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if len(f.Levels) > 0 {
		if err := f.Levels.Validate(); err != nil {
			return nil, fmt.Errorf("config levels: %w", err)
		}
		cfg.Levels = f.Levels
	}

	override, err := input.ParseBindings(f.Keys)
	if err != nil {
		return nil, fmt.Errorf("config keys: %w", err)
	}
	cfg.Keys = input.MergeKeyTable(cfg.Keys, override)
	return cfg, nil
}
