// Package config resolves settings from defaults, a config file (TOML or
// YAML), and TODO_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/todolist/internal/todo"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	DefaultKey      = "todos"
	DefaultTheme    = "classic"
	DefaultLogLevel = "info"
)

// Config is the resolved application configuration.
type Config struct {
	DataDir         string `toml:"data_dir" yaml:"data_dir"`
	Backend         string `toml:"backend" yaml:"backend"`
	Key             string `toml:"key" yaml:"key"`
	TimestampLayout string `toml:"timestamp_layout" yaml:"timestamp_layout"`
	Theme           string `toml:"theme" yaml:"theme"`
	LogLevel        string `toml:"log_level" yaml:"log_level"`
	// Confirm gates edit/delete behind a prompt in the CLI.
	Confirm bool `toml:"confirm" yaml:"confirm"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:         defaultDataDir(),
		Backend:         BackendJSON,
		Key:             DefaultKey,
		TimestampLayout: todo.DefaultTimestampLayout,
		Theme:           DefaultTheme,
		LogLevel:        DefaultLogLevel,
		Confirm:         true,
	}
}

func defaultDataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "todo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todo"
	}
	return filepath.Join(home, ".local", "share", "todo")
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todo", "config.toml")
}

// Load resolves configuration. path may be empty: then TODO_CONFIG, then
// DefaultPath is tried, and a missing default file is not an error.
// The result is not validated; callers layer their overrides and then call
// Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv("TODO_CONFIG"); env != "" {
			path, explicit = env, true
		} else {
			path = DefaultPath()
		}
	}
	if path != "" {
		err := loadFile(&cfg, path)
		if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&cfg.DataDir, "TODO_DATA_DIR")
	set(&cfg.Backend, "TODO_BACKEND")
	set(&cfg.Key, "TODO_KEY")
	set(&cfg.Theme, "TODO_THEME")
	set(&cfg.LogLevel, "TODO_LOG_LEVEL")
}

// Validate rejects unknown backends and themes and an empty key.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %s|%s)", c.Backend, BackendJSON, BackendSQLite)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q (want classic|neon|mono)", c.Theme)
	}
	if strings.TrimSpace(c.Key) == "" {
		return errors.New("storage key is empty")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data dir is empty")
	}
	return nil
}
