package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/game"
)

// Config represents the complete game configuration
type Config struct {
	Table *TableSettings `hcl:"table,block"`
	Log   *LogSettings   `hcl:"log,block"`
}

// TableSettings contains the house rules
type TableSettings struct {
	DealerName     string `hcl:"dealer_name,optional"`
	StartingMoney  int    `hcl:"starting_money,optional"`
	MaxPlayers     int    `hcl:"max_players,optional"`
	DealerStandsOn int    `hcl:"dealer_stands_on,optional"`
	BustRule       string `hcl:"bust_rule,optional"`
}

// LogSettings controls diagnostic logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	rules := game.DefaultRules()
	return &Config{
		Table: &TableSettings{
			DealerName:     rules.DealerName,
			StartingMoney:  rules.StartingMoney,
			MaxPlayers:     rules.MaxPlayers,
			DealerStandsOn: rules.DealerStandsOn,
			BustRule:       rules.BustRule.String(),
		},
		Log: &LogSettings{
			Level: "warn",
		},
	}
}

// Load loads configuration from an HCL file. An empty filename or a missing
// file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
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

	if c.Table == nil {
		c.Table = defaults.Table
	}
	if c.Table.DealerName == "" {
		c.Table.DealerName = defaults.Table.DealerName
	}
	if c.Table.StartingMoney == 0 {
		c.Table.StartingMoney = defaults.Table.StartingMoney
	}
	if c.Table.MaxPlayers == 0 {
		c.Table.MaxPlayers = defaults.Table.MaxPlayers
	}
	if c.Table.DealerStandsOn == 0 {
		c.Table.DealerStandsOn = defaults.Table.DealerStandsOn
	}
	if c.Table.BustRule == "" {
		c.Table.BustRule = defaults.Table.BustRule
	}

	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Rules converts the table settings to game rules
func (c *Config) Rules() (game.Rules, error) {
	bustRule, err := game.ParseBustRule(c.Table.BustRule)
	if err != nil {
		return game.Rules{}, err
	}
	return game.Rules{
		DealerName:     c.Table.DealerName,
		StartingMoney:  c.Table.StartingMoney,
		MaxPlayers:     c.Table.MaxPlayers,
		DealerStandsOn: c.Table.DealerStandsOn,
		BustRule:       bustRule,
	}, nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	rules, err := c.Rules()
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}
