package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flashingpumpkin/perkakas/internal/testhelpers"
	"github.com/spf13/cobra"
)

// useGlobals points the persistent flag variables at dir for one test.
func useGlobals(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	oldDir, oldConfig, oldQuiet, oldVerbose := workingDir, configFile, quiet, verbose
	workingDir, configFile, quiet, verbose = dir, "", true, false
	t.Cleanup(func() {
		workingDir, configFile, quiet, verbose = oldDir, oldConfig, oldQuiet, oldVerbose
	})
}

// runCommand executes cmd with args and stdin and returns its trimmed output.
func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimRight(out.String(), "\n"), err
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	want := []string{"init", "rupiah", "usd", "abbrev", "crypto", "spell", "date", "case", "ellipsis", "tw", "form", "copy", "screens", "watch"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"working-dir", "config", "quiet", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s not defined", name)
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	useGlobals(t, t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Prefix != "Rp." {
		t.Errorf("Prefix = %q, want Rp.", cfg.Prefix)
	}
	if !cfg.Quiet || cfg.Verbose {
		t.Errorf("Quiet = %v Verbose = %v, want true false", cfg.Quiet, cfg.Verbose)
	}
}

func TestLoadConfig_FromWorkingDir(t *testing.T) {
	useGlobals(t, testhelpers.WriteConfig(t, "[format]\nprefix = \"IDR\"\n"))

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Prefix != "IDR" {
		t.Errorf("Prefix = %q, want IDR", cfg.Prefix)
	}
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	useGlobals(t, t.TempDir())
	configFile = filepath.Join(t.TempDir(), "missing.toml")

	_, err := loadConfig()
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("loadConfig() error = %v, want config file not found", err)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	useGlobals(t, testhelpers.WriteConfig(t, "theme = \"neon\"\n"))

	_, err := loadConfig()
	if err == nil || !strings.Contains(err.Error(), "configuration error") {
		t.Errorf("loadConfig() error = %v, want configuration error", err)
	}
}
