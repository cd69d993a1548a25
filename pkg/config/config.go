// Package config loads slidekit settings.
//
// Settings are layered, later layers winning:
//
//  1. built-in defaults ([Default])
//  2. a TOML file, by default $XDG_CONFIG_HOME/slidekit/config.toml
//  3. .env files, which only fill variables not already set
//  4. SLIDEKIT_* environment variables
//
// A minimal file:
//
//	theme = "Ocean"
//
//	[policy]
//	max_columns_per_row = 3
//
//	[server]
//	addr = ":9090"
//
//	[store]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[log]
//	level = "debug"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/schema"
	"github.com/matzehuels/slidekit/pkg/store"
	"github.com/matzehuels/slidekit/pkg/theme"
)

const appName = "slidekit"

// EnvPrefix prefixes every environment variable read by [Config.ApplyEnv].
const EnvPrefix = "SLIDEKIT_"

// Config holds every setting.
type Config struct {
	Theme   string             `toml:"theme"`
	Policy  dnd.Policy         `toml:"policy"`
	Nearest dnd.NearestOptions `toml:"nearest"`
	Server  Server             `toml:"server"`
	Store   store.Config       `toml:"store"`
	Log     Log                `toml:"log"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	MaxBodyBytes int64         `toml:"max_body_bytes"`
}

// Log configures the charm logger.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text, json or logfmt
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:   theme.Default().Name,
		Policy:  dnd.DefaultPolicy(),
		Nearest: dnd.DefaultNearestOptions(),
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			MaxBodyBytes: 4 << 20,
		},
		Store: store.Config{Backend: store.BackendFile},
		Log:   Log{Level: "info", Format: "text"},
	}
}

// DefaultPath returns the config file location following the XDG layout.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load layers defaults, the TOML file at path, envFiles and the process
// environment. An empty path uses [DefaultPath], which may be absent; an
// explicit path must exist. Missing env files are skipped.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "locate config")
		}
		path = p
	}
	switch err := cfg.loadFile(path); {
	case err == nil:
	case os.IsNotExist(err) && !explicit:
	case os.IsNotExist(err):
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	default:
		return nil, err
	}

	var present []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) > 0 {
		if err := godotenv.Load(present...); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load env files")
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// ApplyEnv overrides settings from SLIDEKIT_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"THEME":            &c.Theme,
		"SERVER_ADDR":      &c.Server.Addr,
		"STORE_BACKEND":    &c.Store.Backend,
		"STORE_DIR":        &c.Store.Dir,
		"REDIS_URL":        &c.Store.RedisURL,
		"REDIS_PREFIX":     &c.Store.RedisPrefix,
		"MONGO_URI":        &c.Store.MongoURI,
		"MONGO_DATABASE":   &c.Store.MongoDatabase,
		"MONGO_COLLECTION": &c.Store.MongoCollection,
		"LOG_LEVEL":        &c.Log.Level,
		"LOG_FORMAT":       &c.Log.Format,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"STORE_TTL":            &c.Store.TTL,
		"STORE_CONNECT_DELAY":  &c.Store.ConnectDelay,
		"SERVER_READ_TIMEOUT":  &c.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT": &c.Server.WriteTimeout,
	}
	for key, dst := range durations {
		if v, ok := lookup(EnvPrefix + key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s%s", EnvPrefix, key)
			}
			*dst = d
		}
	}

	if v, ok := lookup(EnvPrefix + "MAX_COLUMNS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sMAX_COLUMNS", EnvPrefix)
		}
		c.Policy.MaxColumnsPerRow = n
	}
	if v, ok := lookup(EnvPrefix + "ROW_BESIDE_LEAF"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sROW_BESIDE_LEAF", EnvPrefix)
		}
		c.Policy.AllowRowBesideLeaf = b
	}
	return nil
}

var (
	backends   = []string{store.BackendMemory, store.BackendFile, store.BackendRedis, store.BackendMongo}
	logFormats = []string{"text", "json", "logfmt"}
)

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if _, ok := theme.ByName(c.Theme); !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown theme %q", c.Theme)
	}
	if n := c.Policy.MaxColumnsPerRow; n < 1 || n > schema.MaxColumnsPerRow {
		return errors.New(errors.ErrCodeInvalidConfig, "policy.max_columns_per_row must be 1-%d, got %d", schema.MaxColumnsPerRow, n)
	}
	if c.Nearest.ActivationDistance < 0 || c.Nearest.BiasMax < 0 || c.Nearest.BiasRatio < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "nearest options must not be negative")
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr is empty")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_body_bytes must be positive")
	}
	if !slices.Contains(backends, c.Store.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "store.backend must be one of %s, got %q", strings.Join(backends, ", "), c.Store.Backend)
	}
	if c.Store.Backend == store.BackendRedis && c.Store.RedisURL == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "store.redis_url is required for the redis backend")
	}
	if c.Store.Backend == store.BackendMongo && c.Store.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "store.mongo_uri is required for the mongo backend")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return errors.New(errors.ErrCodeInvalidConfig, "log.format must be one of %s, got %q", strings.Join(logFormats, ", "), c.Log.Format)
	}
	return nil
}

// Formatter maps the configured log format to a charm log formatter.
func (l Log) Formatter() log.Formatter {
	switch l.Format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	}
	return log.TextFormatter
}

// String renders the effective configuration as TOML.
func (c *Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return b.String()
}
