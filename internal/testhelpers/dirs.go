// Package testhelpers provides common utilities for tests across packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// configDirName matches config.ConfigDir. It is repeated here because the
// config package's own tests import testhelpers.
const configDirName = ".perkakas"

// ConfigDir creates a temporary directory with the .perkakas structure.
// Returns the temp dir root and the config dir path.
// The temp dir is automatically cleaned up when the test completes.
func ConfigDir(t *testing.T) (tempDir, configDir string) {
	t.Helper()
	tempDir = t.TempDir()
	configDir = filepath.Join(tempDir, configDirName)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	return tempDir, configDir
}

// WriteConfig creates a working directory whose .perkakas/config.toml
// holds content. Returns the working directory.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()
	tempDir, configDir := ConfigDir(t)
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return tempDir
}
