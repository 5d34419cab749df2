package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TODO_CONFIG", "TODO_DATA_DIR", "TODO_BACKEND", "TODO_KEY", "TODO_THEME", "TODO_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Backend)
	assert.Equal(t, DefaultKey, cfg.Key)
	assert.True(t, cfg.Confirm)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(`
backend = "sqlite"
data_dir = "/tmp/todo-data"
theme = "neon"
confirm = false
`), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/todo-data", cfg.DataDir)
	assert.Equal(t, "neon", cfg.Theme)
	assert.False(t, cfg.Confirm)
	assert.Equal(t, DefaultKey, cfg.Key, "unset keys keep defaults")
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("key: groceries\nlog_level: debug\n"), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "groceries", cfg.Key)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, BackendJSON, cfg.Backend)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(`backend = "sqlite"`), 0o644))
	t.Setenv("TODO_BACKEND", "json")
	t.Setenv("TODO_DATA_DIR", "/srv/todo")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Backend)
	assert.Equal(t, "/srv/todo", cfg.DataDir)
}

func TestLoad_LeavesValidationToCaller(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_BACKEND", "redis")
	t.Setenv("TODO_THEME", "pink")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Backend)
	assert.Error(t, cfg.Validate())

	cfg.Backend, cfg.Theme = BackendSQLite, "mono"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EnvConfigPath(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "c.yml")
	require.NoError(t, os.WriteFile(p, []byte("theme: mono\n"), 0o644))
	t.Setenv("TODO_CONFIG", p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "bad backend", mutate: func(c *Config) { c.Backend = "redis" }},
		{name: "bad theme", mutate: func(c *Config) { c.Theme = "pink" }},
		{name: "empty key", mutate: func(c *Config) { c.Key = " " }},
		{name: "empty data dir", mutate: func(c *Config) { c.DataDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
