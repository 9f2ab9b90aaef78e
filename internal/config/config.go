// Package config loads game configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete configuration file.
type Config struct {
	Game GameSettings `hcl:"game,block"`
}

// GameSettings contains the tunable rules and engine knobs.
type GameSettings struct {
	DrawCount    int    `hcl:"draw_count,optional"`
	UndoCapacity int    `hcl:"undo_capacity,optional"`
	Seed         int64  `hcl:"seed,optional"`
	LogLevel     string `hcl:"log_level,optional"`
}

// DefaultConfig returns the defaults used when no file is given: a
// draw-one game with the standard undo window. Seed zero means "pick a
// random seed".
func DefaultConfig() *Config {
	return &Config{
		Game: GameSettings{
			DrawCount:    1,
			UndoCapacity: 100,
			LogLevel:     "info",
		},
	}
}

// LoadConfig loads configuration from an HCL file, filling omitted
// fields from the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", filename)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	config := &Config{}
	if diags := gohcl.DecodeBody(file.Body, nil, config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	// Omitted optional attributes decode to zero values; fill those
	// from the defaults before validating.
	defaults := DefaultConfig()
	if config.Game.DrawCount == 0 {
		config.Game.DrawCount = defaults.Game.DrawCount
	}
	if config.Game.UndoCapacity == 0 {
		config.Game.UndoCapacity = defaults.Game.UndoCapacity
	}
	if config.Game.LogLevel == "" {
		config.Game.LogLevel = defaults.Game.LogLevel
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the settings for values the engine cannot honour.
func (c *Config) Validate() error {
	if c.Game.DrawCount != 1 && c.Game.DrawCount != 3 {
		return fmt.Errorf("draw_count must be 1 or 3, got %d", c.Game.DrawCount)
	}
	if c.Game.UndoCapacity < 0 {
		return fmt.Errorf("undo_capacity must not be negative, got %d", c.Game.UndoCapacity)
	}
	return nil
}
