package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
table {
  starting_money = 500
  bust_rule      = "legacy"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, game.Rules{
		DealerName:     "Dealer",
		StartingMoney:  500,
		MaxPlayers:     7,
		DealerStandsOn: 17,
		BustRule:       game.LegacyBust,
	}, rules)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, level)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
table {
  dealer_name      = "House"
  starting_money   = 250
  max_players      = 3
  dealer_stands_on = 16
}

log {
  level = "debug"
  file  = "blackjack.log"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "House", cfg.Table.DealerName)
	assert.Equal(t, 3, cfg.Table.MaxPlayers)
	assert.Equal(t, 16, cfg.Table.DealerStandsOn)
	assert.Equal(t, "strict", cfg.Table.BustRule)
	assert.Equal(t, "blackjack.log", cfg.Log.File)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `table { starting_money = `)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadRejectsUnknownAttribute(t *testing.T) {
	path := writeConfig(t, `table { shoe_decks = 6 }`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"unknown bust rule", func(c *Config) { c.Table.BustRule = "lenient" }, "bust rule"},
		{"negative money", func(c *Config) { c.Table.StartingMoney = -5 }, "starting money"},
		{"no seats", func(c *Config) { c.Table.MaxPlayers = 0 }, "max players"},
		{"dealer over 21", func(c *Config) { c.Table.DealerStandsOn = 22 }, "dealer must stand"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
