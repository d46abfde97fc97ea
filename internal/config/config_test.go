package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64(KeySpeed, 1.0, "")
	fs.Uint64(KeySeed, 0, "")
	fs.Bool(KeyDebug, false, "")
	fs.String(KeyLogFile, DefaultLogFile, "")
	fs.String(KeyConfig, "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, Config{Speed: 1.0, LogFile: DefaultLogFile}, cfg)
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("KUSA_BLOCKS_SPEED", "3")

	cfg, err := Load(newFlags(t, "--speed", "2.5", "--seed", "42", "--debug"))
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("KUSA_BLOCKS_SPEED", "1.5")
	t.Setenv("KUSA_BLOCKS_LOG_FILE", "custom.log")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Speed)
	assert.Equal(t, "custom.log", cfg.LogFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kusa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speed: 0.5\nseed: 7\n"), 0o600))

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Speed)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_RejectsNonPositiveSpeed(t *testing.T) {
	_, err := Load(newFlags(t, "--speed", "0"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--speed must be > 0")
}
