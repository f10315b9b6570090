package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 2, c.MinPlayers)
	assert.Equal(t, 4, c.MaxPlayers)
	assert.Equal(t, 2, c.Jokers)
	assert.True(t, c.ReversalEnabled)
	assert.Equal(t, "pusoydos", c.Session.Issuer)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "game.yaml", `
max_players: 3
jokers: 1
reversal_enabled: false
log_level: debug
redis:
  addr: localhost:6379
  db: 2
session:
  secret: s3cret
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.MaxPlayers)
	assert.Equal(t, 1, c.Jokers)
	assert.False(t, c.ReversalEnabled)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "localhost:6379", c.Redis.Addr)
	assert.Equal(t, 2, c.Redis.DB)
	assert.Equal(t, "s3cret", c.Session.Secret)
	assert.Equal(t, 3600, c.Session.TTLSeconds)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PUSOY_JOKERS", "0")
	t.Setenv("PUSOY_REDIS_ADDR", "cache:6379")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Jokers)
	assert.Equal(t, "cache:6379", c.Redis.Addr)
}

func TestLoadRejectsInvalidRules(t *testing.T) {
	path := writeConfig(t, "game.json", `{"min_players": 1}`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	path = writeConfig(t, "game.json", `{"jokers": 3}`)
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadWithFlagsOverridesFile(t *testing.T) {
	path := writeConfig(t, "game.yaml", "jokers: 1\nlog_level: warn\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("jokers", 2, "")
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse([]string{"--jokers=0"}))

	c, err := LoadWithFlags(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Jokers)
	assert.Equal(t, "warn", c.LogLevel, "unset flags must not override the file")
}

func TestLoadGameConfigOnce(t *testing.T) {
	assert.Equal(t, Default(), GetGameConfig())

	require.NoError(t, LoadGameConfig(writeConfig(t, "game.yaml", "jokers: 1\n")))
	require.NoError(t, LoadGameConfig(writeConfig(t, "other.yaml", "jokers: 0\n")))
	assert.Equal(t, 1, GetGameConfig().Jokers, "only the first load counts")
}
