package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	// an empty dotenv file keeps the test independent of the working dir
	empty := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	c, err := LoadFromEnv(empty)
	require.NoError(t, err)

	assert.Equal(t, "dev", c.Env)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, uint64(0), c.Game.Seed)
	assert.Equal(t, "en", c.Game.Lang)
	assert.False(t, c.Game.RevealSecret)
	assert.Equal(t, UIAuto, c.Game.UI)
}

func TestLoadFromEnv_UnsupportedLang(t *testing.T) {
	t.Setenv("GAME_LANG", "fr")
	empty := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	_, err := LoadFromEnv(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GAME_LANG")
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GAME_SEED", "42")
	t.Setenv("GAME_LANG", "ru")
	t.Setenv("GAME_REVEAL_SECRET", "true")

	empty := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	c, err := LoadFromEnv(empty)
	require.NoError(t, err)

	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, uint64(42), c.Game.Seed)
	assert.Equal(t, "ru", c.Game.Lang)
	assert.True(t, c.Game.RevealSecret)

	lvl, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadFromEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.env")
	require.NoError(t, os.WriteFile(path, []byte("GAME_SEED=7\nGAME_LANG=ru\n"), 0o600))
	// godotenv sets process env vars; unset them when the test ends
	t.Setenv("GAME_SEED", "")
	t.Setenv("GAME_LANG", "")
	os.Unsetenv("GAME_SEED")
	os.Unsetenv("GAME_LANG")

	c, err := LoadFromEnv(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), c.Game.Seed)
	assert.Equal(t, "ru", c.Game.Lang)
}

func TestLoadFromEnv_MissingDotenvFile(t *testing.T) {
	_, err := LoadFromEnv(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load dotenv")
}

func TestLoadFromEnv_BadSeed(t *testing.T) {
	t.Setenv("GAME_SEED", "-1")
	empty := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	_, err := LoadFromEnv(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.Env = "dev"
		c.Log.Format = "text"
		c.Log.Level = "info"
		c.Game.Lang = "en"
		c.Game.UI = UIAuto
		return c
	}

	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "ok", mutate: func(c *Config) {}},
		{name: "bad env", mutate: func(c *Config) { c.Env = "qa" }, wantErr: "APP_ENV"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "LOG_FORMAT"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "LOG_LEVEL"},
		{name: "empty lang", mutate: func(c *Config) { c.Game.Lang = "" }, wantErr: "GAME_LANG"},
		{name: "lang without catalog", mutate: func(c *Config) { c.Game.Lang = "fr" }, wantErr: `unsupported GAME_LANG="fr"`},
		{name: "lang with region", mutate: func(c *Config) { c.Game.Lang = "ru-RU" }},
		{name: "lang with posix region", mutate: func(c *Config) { c.Game.Lang = "en_GB" }},
		{name: "line ui", mutate: func(c *Config) { c.Game.UI = UILine }},
		{name: "screen ui", mutate: func(c *Config) { c.Game.UI = UIScreen }},
		{name: "bad ui", mutate: func(c *Config) { c.Game.UI = "gui" }, wantErr: "GAME_UI"},
		{name: "reveal secret in prod", mutate: func(c *Config) {
			c.Env = "prod"
			c.Game.RevealSecret = true
		}, wantErr: "refuse to log secrets"},
		{name: "reveal secret in dev", mutate: func(c *Config) { c.Game.RevealSecret = true }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
