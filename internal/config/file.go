// Package config provides configuration management for perkakas.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/flashingpumpkin/perkakas/internal/breakpoint"
)

// FileConfig represents the configuration loaded from .perkakas/config.toml.
type FileConfig struct {
	// Format holds formatter defaults.
	Format FormatConfig `toml:"format"`

	// Theme is the TUI colour theme.
	Theme string `toml:"theme"`

	// Screens lists the [screens] table in file order.
	Screens breakpoint.Screens `toml:"-"`
}

// FormatConfig represents the [format] section in config.toml. Pointer
// fields distinguish "unset" from an explicit zero value.
type FormatConfig struct {
	Prefix           *string `toml:"prefix"`
	DecimalSymbol    string  `toml:"decimal_symbol"`
	CryptoDecimals   *int    `toml:"crypto_decimals"`
	KeepTrailingZero *bool   `toml:"keep_trailing_zero"`
}

// rawFileConfig is the decode target; screens are re-ordered afterwards
// using the key order recorded in the TOML metadata.
type rawFileConfig struct {
	Format  FormatConfig   `toml:"format"`
	Theme   string         `toml:"theme"`
	Screens map[string]any `toml:"screens"`
}

// ConfigDir is the directory holding perkakas configuration.
const ConfigDir = ".perkakas"

// Path returns the default config file path for workingDir.
func Path(workingDir string) string {
	return filepath.Join(workingDir, ConfigDir, "config.toml")
}

// LoadFileConfig reads configuration from .perkakas/config.toml in the working directory.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfig(workingDir string) (*FileConfig, error) {
	return LoadFileConfigFrom(Path(workingDir))
}

// LoadFileConfigFrom reads configuration from a specific file path.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfigFrom(configPath string) (*FileConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return ParseFileConfig(string(data))
}

// ParseFileConfig decodes TOML configuration text.
func ParseFileConfig(data string) (*FileConfig, error) {
	var raw rawFileConfig
	md, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, err
	}

	cfg := &FileConfig{Format: raw.Format, Theme: raw.Theme}
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "screens" {
			continue
		}
		width, err := screenWidth(raw.Screens[key[1]])
		if err != nil {
			return nil, fmt.Errorf("screen %q: %w", key[1], err)
		}
		cfg.Screens = append(cfg.Screens, breakpoint.Screen{Name: key[1], MinWidth: width})
	}
	return cfg, nil
}

// screenWidth accepts a CSS length string or a bare number of pixels.
func screenWidth(v any) (string, error) {
	switch w := v.(type) {
	case string:
		return w, nil
	case int64:
		return strconv.FormatInt(w, 10) + "px", nil
	case float64:
		return strconv.FormatFloat(w, 'f', -1, 64) + "px", nil
	default:
		return "", fmt.Errorf("unsupported width type %T", v)
	}
}
