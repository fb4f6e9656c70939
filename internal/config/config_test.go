package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"GEMINI_API_KEY", "GEMINI_MODEL", "WORLD_FILE", "RANDOM_SEED", "MAX_TRIGGER_DEPTH", "LOG_LEVEL", "LOG_ENCODING", "LOG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		GeminiModel:     "gemini-2.5-flash",
		MaxTriggerDepth: 16,
		LogLevel:        "info",
		LogEncoding:     "json",
		LogFile:         "text-game.log",
	}, cfg)
	assert.False(t, cfg.GeneratorEnabled())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("WORLD_FILE", "worlds/castle.yaml")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.GeneratorEnabled())
	assert.Equal(t, uint64(42), cfg.RandomSeed)
	assert.Equal(t, "worlds/castle.yaml", cfg.WorldFile)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("RANDOM_SEED", "lots")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("RANDOM_SEED", "1")
	t.Setenv("MAX_TRIGGER_DEPTH", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}
