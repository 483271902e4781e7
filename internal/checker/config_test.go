package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "idlcheck.toml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.False(t, cfg.skipCommand("anything"))
	require.False(t, cfg.allowAnyType("anyType"))
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[skip]
commands = ["legacyCommand"]

[allow]
any_types = ["IDLAnyType"]
any_commands = ["explain", "find-filter"]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.skipCommand("legacyCommand"))
	require.False(t, cfg.skipCommand("find"))
	require.True(t, cfg.allowAnyType("IDLAnyType"))
	require.True(t, cfg.allowAny("explain", ""))
	require.True(t, cfg.allowAny("find", "filter"))
	require.False(t, cfg.allowAny("find", "sort"))
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[allow]
any_type = ["typo"]
`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown key")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
