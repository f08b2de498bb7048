package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flashingpumpkin/perkakas/internal/config"
	"github.com/flashingpumpkin/perkakas/internal/testhelpers"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	useGlobals(t, tempDir)

	out, err := runCommand(t, newInitCmd(), "")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	configPath := filepath.Join(tempDir, ".perkakas", "config.toml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("config file was not created at %s", configPath)
	}
	if !strings.Contains(out, "Created") {
		t.Errorf("output = %q; want to contain 'Created'", out)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	for _, want := range []string{"[format]", "# prefix = \"Rp.\"", "# [screens]", "# 2xl = \"1536px\""} {
		if !strings.Contains(string(content), want) {
			t.Errorf("config file missing %q", want)
		}
	}
}

func TestInitCmd_TemplateLoadsAsDefaults(t *testing.T) {
	fc, err := config.ParseFileConfig(DefaultConfigTemplate)
	if err != nil {
		t.Fatalf("ParseFileConfig() error = %v", err)
	}

	cfg := config.NewConfig()
	cfg.Apply(fc)
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if cfg.Prefix != "Rp." || len(cfg.Screens) != 5 {
		t.Errorf("template changed defaults: prefix %q, %d screens", cfg.Prefix, len(cfg.Screens))
	}
}

func TestInitCmd_FailsIfConfigExists(t *testing.T) {
	tempDir := testhelpers.WriteConfig(t, "theme = \"dark\"\n")
	useGlobals(t, tempDir)

	_, err := runCommand(t, newInitCmd(), "")
	if err == nil {
		t.Fatal("expected error when config already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %q; want to contain 'already exists'", err.Error())
	}
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tempDir := testhelpers.WriteConfig(t, "theme = \"dark\"\n")
	useGlobals(t, tempDir)

	if _, err := runCommand(t, newInitCmd(), "", "--force"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	content, err := os.ReadFile(config.Path(tempDir))
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if string(content) != DefaultConfigTemplate {
		t.Error("expected config file to be replaced with the template")
	}
}
