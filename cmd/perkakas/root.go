// Package main provides the CLI entry point for perkakas.
package main

import (
	"fmt"
	"io"

	"github.com/flashingpumpkin/perkakas/internal/config"
	"github.com/flashingpumpkin/perkakas/internal/output"
	"github.com/spf13/cobra"
)

var (
	// Flag variables
	workingDir string
	configFile string
	quiet      bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "perkakas",
	Short: "Formatting utilities and a terminal breakpoint observer",
	Long: `Perkakas formats numbers, currencies, dates and strings the way
Indonesian and US storefronts display them, and watches terminal width
against a set of CSS-style breakpoints.

EXAMPLES

    perkakas rupiah 1500000          # Rp. 1.500.000
    perkakas abbrev 1234567          # 1.2M
    perkakas spell 1250              # Satu Ribu Dua Ratus Lima Puluh
    perkakas watch                   # live breakpoint dashboard

CONFIGURATION FILE

Defaults can be set in .perkakas/config.toml in the working directory.
Run 'perkakas init' to create a commented template, or use --config to
point at a different file.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rupiahCmd)
	rootCmd.AddCommand(usdCmd)
	rootCmd.AddCommand(abbrevCmd)
	rootCmd.AddCommand(cryptoCmd)
	rootCmd.AddCommand(spellCmd)
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(caseCmd)
	rootCmd.AddCommand(ellipsisCmd)
	rootCmd.AddCommand(twCmd)
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(screensCmd)
	rootCmd.AddCommand(watchCmd)

	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "d", ".", "Directory containing .perkakas/config.toml")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (default: .perkakas/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Print results only")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print extra detail")
}

// loadConfig builds the runtime configuration from defaults, the config
// file and the global flags, then validates it.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.WorkingDir = workingDir
	cfg.Quiet = quiet
	cfg.Verbose = verbose && !quiet

	var fileConfig *config.FileConfig
	var err error
	if configFile != "" {
		// Use explicit config file path
		fileConfig, err = config.LoadFileConfigFrom(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
		if fileConfig == nil {
			return nil, fmt.Errorf("config file not found: %s", configFile)
		}
	} else {
		// Try default .perkakas/config.toml
		fileConfig, err = config.LoadFileConfig(cfg.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	cfg.Apply(fileConfig)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// newFormatter returns a formatter writing to w with the config's verbosity.
func newFormatter(cfg *config.Config, w io.Writer) *output.Formatter {
	return output.NewFormatter(cfg.Verbose, cfg.Quiet, w)
}
