package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/store"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "config.toml", `
theme = "Ocean"

[policy]
max_columns_per_row = 3

[nearest]
activation_distance = 80.0

[server]
addr = ":9090"
read_timeout = "5s"

[store]
backend = "memory"
ttl = "1h"

[log]
level = "debug"
format = "json"
`)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "Ocean" || cfg.Policy.MaxColumnsPerRow != 3 || cfg.Server.Addr != ":9090" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.Nearest.ActivationDistance != 80 || cfg.Nearest.BiasMax != 50 {
		t.Errorf("nearest = %+v", cfg.Nearest)
	}
	if cfg.Server.ReadTimeout != 5*time.Second || cfg.Store.TTL != time.Hour {
		t.Errorf("durations = %v, %v", cfg.Server.ReadTimeout, cfg.Store.TTL)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("unset duration lost its default: %v", cfg.Server.WriteTimeout)
	}
	if cfg.Store.Backend != store.BackendMemory || cfg.Log.Level != "debug" {
		t.Errorf("store/log = %+v %+v", cfg.Store, cfg.Log)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if _, err := Load(""); err != nil {
		t.Errorf("Load(\"\") without a config file: %v", err)
	}
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v", err)
	}
}

func TestLoadRejects(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `theme = `},
		{"unknown key", "[server]\nport = 80\n"},
		{"unknown theme", `theme = "Neon"`},
		{"too many columns", "[policy]\nmax_columns_per_row = 5\n"},
		{"unknown backend", "[store]\nbackend = \"etcd\"\n"},
		{"redis without url", "[store]\nbackend = \"redis\"\n"},
		{"bad log level", "[log]\nlevel = \"loud\"\n"},
		{"bad log format", "[log]\nformat = \"xml\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.toml", tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"SLIDEKIT_SERVER_ADDR":     "127.0.0.1:7000",
		"SLIDEKIT_STORE_BACKEND":   "redis",
		"SLIDEKIT_REDIS_URL":       "redis://cache:6379/1",
		"SLIDEKIT_STORE_TTL":       "10m",
		"SLIDEKIT_MAX_COLUMNS":     "2",
		"SLIDEKIT_ROW_BESIDE_LEAF": "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" || cfg.Store.Backend != "redis" || cfg.Store.RedisURL != "redis://cache:6379/1" {
		t.Errorf("strings = %+v %+v", cfg.Server, cfg.Store)
	}
	if cfg.Store.TTL != 10*time.Minute || cfg.Policy.MaxColumnsPerRow != 2 || !cfg.Policy.AllowRowBesideLeaf {
		t.Errorf("parsed = %v %+v", cfg.Store.TTL, cfg.Policy)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	env = map[string]string{"SLIDEKIT_MAX_COLUMNS": "many"}
	if err := Default().ApplyEnv(lookup); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("ApplyEnv(bad int) error = %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SLIDEKIT_LOG_LEVEL", "warn")
	envFile := writeFile(t, ".env", "SLIDEKIT_LOG_LEVEL=debug\nSLIDEKIT_THEME=Carbon\n")
	t.Cleanup(func() { os.Unsetenv("SLIDEKIT_THEME") })

	cfg, err := Load("", envFile, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("env file overrode the environment: level = %q", cfg.Log.Level)
	}
	if cfg.Theme != "Carbon" {
		t.Errorf("theme = %q, want Carbon from env file", cfg.Theme)
	}
}
