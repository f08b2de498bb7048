package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flashingpumpkin/perkakas/internal/config"
	"github.com/spf13/cobra"
)

// DefaultConfigTemplate is the commented template written by perkakas init.
const DefaultConfigTemplate = `# Perkakas Configuration

# Colour theme for the watch dashboard: auto, dark or light.
# theme = "auto"

[format]
# Written before Rupiah amounts. Set to "" for bare grouped digits.
# prefix = "Rp."

# Joins the fractional part of grouped amounts.
# decimal_symbol = ","

# Decimal places kept for crypto values below 1.
# crypto_decimals = 7

# Abbreviate 1000 as "1.0K" instead of "1K".
# keep_trailing_zero = false

# Breakpoints observed by 'perkakas watch' and 'perkakas screens', in
# ascending order. Values accept px, em, rem and ch (one terminal column).
# Uncomment the table to replace the Tailwind CSS defaults.
# [screens]
# sm = "640px"
# md = "768px"
# lg = "1024px"
# xl = "1280px"
# 2xl = "1536px"
`

var initCmd = newInitCmd()

// newInitCmd creates a new init command.
func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a default .perkakas/config.toml configuration file in the
working directory.

The file lists every setting commented out with its default value.
If the configuration file already exists, the command will fail unless --force is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, workingDir, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration file")
	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	configPath := config.Path(dir)
	configDir := filepath.Dir(configPath)

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}
