// Package config loads and saves breakeven preferences as TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/breakeven/internal/model"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk format of chart.start_date.
const DateLayout = "2006-01-02"

// Config holds all breakeven configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Defaults   DefaultsConfig   `toml:"defaults"`
	Chart      ChartConfig      `toml:"chart"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Verbose bool `toml:"verbose"`
}

// DefaultsConfig holds the initial control positions, in major currency units.
type DefaultsConfig struct {
	Startup     float64 `toml:"startup"`
	Fixed       float64 `toml:"fixed"`
	Operational float64 `toml:"operational"`
	Sales       float64 `toml:"sales"`
	Months      int     `toml:"months"`
}

// ChartConfig controls the x-axis labels and chart size.
type ChartConfig struct {
	StartDate   string `toml:"start_date,omitempty"` // empty means the current month
	LabelFormat string `toml:"label_format"`
	Height      int    `toml:"height"`
}

// AppearanceConfig holds theme and currency settings.
type AppearanceConfig struct {
	Theme    string `toml:"theme"`
	Currency string `toml:"currency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	cfg := Config{
		Chart: ChartConfig{
			LabelFormat: "Jan 2006",
			Height:      16,
		},
		Appearance: AppearanceConfig{
			Theme:    "flexoki-dark",
			Currency: "EUR",
		},
	}
	cfg.SetInputs(model.DefaultInputs())
	return cfg
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "breakeven")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "breakeven")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Inputs converts the configured defaults into projection inputs.
func (c Config) Inputs() model.Inputs {
	return model.Inputs{
		StartupExpenses:         decimal.NewFromFloat(c.Defaults.Startup),
		MonthlyFixedExpenses:    decimal.NewFromFloat(c.Defaults.Fixed),
		MonthlyOperationalCosts: decimal.NewFromFloat(c.Defaults.Operational),
		MonthlySales:            decimal.NewFromFloat(c.Defaults.Sales),
		Months:                  c.Defaults.Months,
	}
}

// SetInputs stores in as the configured defaults.
func (c *Config) SetInputs(in model.Inputs) {
	c.Defaults = DefaultsConfig{
		Startup:     in.StartupExpenses.InexactFloat64(),
		Fixed:       in.MonthlyFixedExpenses.InexactFloat64(),
		Operational: in.MonthlyOperationalCosts.InexactFloat64(),
		Sales:       in.MonthlySales.InexactFloat64(),
		Months:      in.Months,
	}
}

// StartDate returns the configured first month, or now when unset.
func (c Config) StartDate(now time.Time) (time.Time, error) {
	if c.Chart.StartDate == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(DateLayout, c.Chart.StartDate, time.Local)
	if err != nil {
		return now, fmt.Errorf("parsing chart.start_date %q: %w", c.Chart.StartDate, err)
	}
	return t, nil
}

// GetCurrency returns the currency code from env var or config, in that order.
func GetCurrency(cfg Config) string {
	if cur := os.Getenv("BREAKEVEN_CURRENCY"); cur != "" {
		return cur
	}
	if cfg.Appearance.Currency == "" {
		return "EUR"
	}
	return cfg.Appearance.Currency
}
