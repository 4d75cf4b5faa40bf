package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second, cfg.GetDealerDelay())
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
game {
  seed         = 42
  dealer_delay = "250ms"
}

ui {
  plain = true
  color = false
  clear = false
}

log {
  level = "debug"
  file  = "blackjack.log"
}

simulate {
  games    = 500
  stand_on = 15
  workers  = 2
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.GetDealerDelay())
	assert.True(t, *cfg.UI.Plain)
	assert.False(t, *cfg.UI.Color)
	assert.False(t, *cfg.UI.Clear)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "blackjack.log", cfg.Log.File)
	assert.Equal(t, 500, cfg.Simulate.Games)
	assert.Equal(t, 15, cfg.Simulate.StandOn)
	assert.Equal(t, 2, cfg.Simulate.Workers)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  seed = 7
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.Equal(t, "1s", cfg.Game.DealerDelay)
	assert.True(t, *cfg.UI.Color)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 17, cfg.Simulate.StandOn)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `game {`)
	_, err := Load(path)
	assert.Error(t, err)

	path = writeConfig(t, `unknown { x = 1 }`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{name: "bad delay", modify: func(c *Config) { c.Game.DealerDelay = "soon" }, errMsg: "dealer delay"},
		{name: "negative delay", modify: func(c *Config) { c.Game.DealerDelay = "-1s" }, errMsg: "negative"},
		{name: "bad level", modify: func(c *Config) { c.Log.Level = "loud" }, errMsg: "log level"},
		{name: "no games", modify: func(c *Config) { c.Simulate.Games = -1 }, errMsg: "games"},
		{name: "stand too high", modify: func(c *Config) { c.Simulate.StandOn = 22 }, errMsg: "stand_on"},
		{name: "no workers", modify: func(c *Config) { c.Simulate.Workers = -2 }, errMsg: "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
