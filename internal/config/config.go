// Package config provides configuration management for perkakas.
package config

import (
	"errors"

	"github.com/flashingpumpkin/perkakas/internal/breakpoint"
	"github.com/flashingpumpkin/perkakas/internal/currency"
)

// Config holds the settings shared by every perkakas command.
type Config struct {
	// Prefix is written before Rupiah amounts (default: "Rp.").
	// An empty prefix prints bare grouped digits.
	Prefix string

	// DecimalSymbol joins the fractional part of grouped amounts (default: ",").
	DecimalSymbol string

	// CryptoDecimals is the precision used for fractional crypto values (default: 7).
	CryptoDecimals int

	// KeepTrailingZero selects the always-one-decimal abbreviation variant
	// ("1.0K") instead of dropping a zero fraction ("1K").
	KeepTrailingZero bool

	// Screens are the breakpoints used by the watch command
	// (default: the Tailwind CSS breakpoints).
	Screens breakpoint.Screens

	// Theme is the colour theme for the TUI: "auto", "dark", or "light".
	Theme string

	// WorkingDir is where .perkakas/config.toml is looked up (default: ".").
	WorkingDir string

	// Verbose enables detailed output.
	Verbose bool

	// Quiet suppresses everything except results.
	Quiet bool
}

// MaxCryptoDecimals bounds CryptoDecimals.
const MaxCryptoDecimals = 18

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	screens := make(breakpoint.Screens, len(breakpoint.DefaultScreens))
	copy(screens, breakpoint.DefaultScreens)

	return &Config{
		Prefix:         currency.RupiahPrefix,
		DecimalSymbol:  ",",
		CryptoDecimals: currency.DefaultCryptoDecimals,
		Screens:        screens,
		Theme:          "auto",
		WorkingDir:     ".",
	}
}

// Validate checks that the configuration is valid.
// Returns an error if validation fails.
func (c *Config) Validate() error {
	if c.DecimalSymbol == "" {
		return errors.New("decimal symbol cannot be empty")
	}
	if c.CryptoDecimals < 0 || c.CryptoDecimals > MaxCryptoDecimals {
		return errors.New("crypto decimals must be between 0 and 18")
	}
	if len(c.Screens) == 0 {
		return errors.New("at least one screen is required")
	}
	for _, s := range c.Screens {
		if s.Name == "" {
			return errors.New("screen name cannot be empty")
		}
	}
	switch c.Theme {
	case "auto", "dark", "light":
	default:
		return errors.New("theme must be auto, dark, or light")
	}
	return nil
}

// Apply overlays the values present in fc onto c. A nil fc is a no-op.
func (c *Config) Apply(fc *FileConfig) {
	if fc == nil {
		return
	}
	if fc.Format.Prefix != nil {
		c.Prefix = *fc.Format.Prefix
	}
	if fc.Format.DecimalSymbol != "" {
		c.DecimalSymbol = fc.Format.DecimalSymbol
	}
	if fc.Format.CryptoDecimals != nil {
		c.CryptoDecimals = *fc.Format.CryptoDecimals
	}
	if fc.Format.KeepTrailingZero != nil {
		c.KeepTrailingZero = *fc.Format.KeepTrailingZero
	}
	if len(fc.Screens) > 0 {
		c.Screens = fc.Screens
	}
	if fc.Theme != "" {
		c.Theme = fc.Theme
	}
}
