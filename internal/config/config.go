// Package config loads blackjack settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file read when no path is given
const DefaultFile = "blackjack.hcl"

// Config represents the complete configuration
type Config struct {
	Game     *GameSettings     `hcl:"game,block"`
	UI       *UISettings       `hcl:"ui,block"`
	Log      *LogSettings      `hcl:"log,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

// GameSettings contains settings for interactive play
type GameSettings struct {
	Seed        int64  `hcl:"seed,optional"`
	DealerDelay string `hcl:"dealer_delay,optional"`
}

// UISettings contains terminal settings
type UISettings struct {
	Plain *bool `hcl:"plain,optional"`
	Color *bool `hcl:"color,optional"`
	Clear *bool `hcl:"clear,optional"`
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// SimulateSettings contains settings for headless simulation
type SimulateSettings struct {
	Games   int `hcl:"games,optional"`
	StandOn int `hcl:"stand_on,optional"`
	Workers int `hcl:"workers,optional"`
}

func boolPtr(b bool) *bool {
	return &b
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			Seed:        0,
			DealerDelay: "1s",
		},
		UI: &UISettings{
			Plain: boolPtr(false),
			Color: boolPtr(true),
			Clear: boolPtr(true),
		},
		Log: &LogSettings{
			Level: "info",
			File:  "",
		},
		Simulate: &SimulateSettings{
			Games:   10000,
			StandOn: 17,
			Workers: 4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; values absent from the file keep their default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.Game.DealerDelay == "" {
		c.Game.DealerDelay = defaults.Game.DealerDelay
	}

	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.Plain == nil {
		c.UI.Plain = defaults.UI.Plain
	}
	if c.UI.Color == nil {
		c.UI.Color = defaults.UI.Color
	}
	if c.UI.Clear == nil {
		c.UI.Clear = defaults.UI.Clear
	}

	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}

	if c.Simulate == nil {
		c.Simulate = defaults.Simulate
	}
	if c.Simulate.Games == 0 {
		c.Simulate.Games = defaults.Simulate.Games
	}
	if c.Simulate.StandOn == 0 {
		c.Simulate.StandOn = defaults.Simulate.StandOn
	}
	if c.Simulate.Workers == 0 {
		c.Simulate.Workers = defaults.Simulate.Workers
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	delay, err := time.ParseDuration(c.Game.DealerDelay)
	if err != nil {
		return fmt.Errorf("invalid dealer delay %q: %w", c.Game.DealerDelay, err)
	}
	if delay < 0 {
		return fmt.Errorf("dealer delay cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Simulate.Games <= 0 {
		return fmt.Errorf("simulated games must be positive")
	}
	if c.Simulate.StandOn < 2 || c.Simulate.StandOn > 21 {
		return fmt.Errorf("stand_on must be between 2 and 21, got %d", c.Simulate.StandOn)
	}
	if c.Simulate.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}

	return nil
}

// GetDealerDelay returns the pause between dealer draws. Call Validate first.
func (c *Config) GetDealerDelay() time.Duration {
	delay, _ := time.ParseDuration(c.Game.DealerDelay)
	return delay
}
