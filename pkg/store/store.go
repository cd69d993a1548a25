// Package store persists slide templates.
//
// A [Store] keeps whole decks ([io.SlidesTemplate]) keyed by a template id.
// The encoding and id rules live in Store; the byte-level persistence is
// delegated to a [Backend]:
//   - memory: in-process cache with optional expiry, for tests and the server
//   - file: one JSON file per template, for the CLI
//   - redis: shared storage for multi-instance servers
//   - mongo: document storage, one document per template
//
// # Usage
//
//	s, err := store.Open(ctx, store.Config{Backend: "file", Dir: "~/.config/slidekit/templates"})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	if err := s.Put(ctx, "cats", tpl); err != nil {
//	    return err
//	}
//	tpl, err = s.Get(ctx, "cats")
//
// Templates are validated on the way in and on the way out, so a Store never
// hands back a deck that violates the containment schema.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	slerrors "github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/io"
	"github.com/matzehuels/slidekit/pkg/observability"
)

// ErrNotFound is returned by backends when a key does not exist.
var ErrNotFound = errors.New("not found")

// Backend stores encoded templates.
type Backend interface {
	// Name identifies the backend in logs and hooks.
	Name() string

	// Get returns the stored bytes or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores data under key, replacing any previous value.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the stored keys in any order.
	Keys(ctx context.Context) ([]string, error)

	Close() error
}

// Store reads and writes templates through a backend.
type Store struct {
	backend Backend
}

// New wraps a backend.
func New(b Backend) *Store { return &Store{backend: b} }

// Backend returns the underlying backend.
func (s *Store) Backend() Backend { return s.backend }

// Get loads a template. Unknown ids yield a TEMPLATE_NOT_FOUND error.
func (s *Store) Get(ctx context.Context, id string) (*io.SlidesTemplate, error) {
	if err := slerrors.ValidateTemplateID(id); err != nil {
		return nil, err
	}
	data, err := s.backend.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		observability.Store().OnStoreMiss(ctx, s.backend.Name())
		return nil, slerrors.New(slerrors.ErrCodeTemplateNotFound, "template %q not found", id)
	}
	if err != nil {
		return nil, slerrors.Wrap(slerrors.ErrCodeStore, err, "get template %s", id)
	}
	observability.Store().OnStoreHit(ctx, s.backend.Name())
	return io.ReadJSON(bytes.NewReader(data))
}

// Put validates and stores a template under id.
func (s *Store) Put(ctx context.Context, id string, t *io.SlidesTemplate) error {
	if err := slerrors.ValidateTemplateID(id); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := io.WriteJSON(t, &buf); err != nil {
		return slerrors.Wrap(slerrors.ErrCodeInternal, err, "encode template %s", id)
	}
	if err := s.backend.Set(ctx, id, buf.Bytes()); err != nil {
		return slerrors.Wrap(slerrors.ErrCodeStore, err, "save template %s", id)
	}
	observability.Store().OnStoreSet(ctx, s.backend.Name(), buf.Len())
	return nil
}

// Delete removes a template. Deleting an unknown id succeeds.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := slerrors.ValidateTemplateID(id); err != nil {
		return err
	}
	if err := s.backend.Delete(ctx, id); err != nil {
		return slerrors.Wrap(slerrors.ErrCodeStore, err, "delete template %s", id)
	}
	return nil
}

// List returns the stored template ids in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	keys, err := s.backend.Keys(ctx)
	if err != nil {
		return nil, slerrors.Wrap(slerrors.ErrCodeStore, err, "list templates")
	}
	slices.Sort(keys)
	return keys, nil
}

// Close releases the backend.
func (s *Store) Close() error { return s.backend.Close() }

// Backend names accepted by [Open].
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend string        `toml:"backend"`
	TTL     time.Duration `toml:"ttl"`

	// ConnectAttempts and ConnectDelay bound the initial ping of the
	// redis and mongo backends. Zero values use the defaults.
	ConnectAttempts int           `toml:"connect_attempts"`
	ConnectDelay    time.Duration `toml:"connect_delay"`

	// file
	Dir string `toml:"dir"`

	// redis
	RedisURL    string `toml:"redis_url"`
	RedisPrefix string `toml:"redis_prefix"`

	// mongo
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Open connects the backend named by cfg. An empty backend means memory.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	var (
		b   Backend
		err error
	)
	switch cfg.Backend {
	case "", BackendMemory:
		b = NewMemory(cfg.TTL)
	case BackendFile:
		b, err = NewFile(cfg.Dir)
	case BackendRedis:
		err = cfg.connect(ctx, func() (err error) {
			b, err = NewRedis(ctx, cfg.RedisURL, cfg.RedisPrefix, cfg.TTL)
			return err
		})
	case BackendMongo:
		err = cfg.connect(ctx, func() (err error) {
			b, err = NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
			return err
		})
	default:
		return nil, slerrors.New(slerrors.ErrCodeInvalidConfig, "unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	return New(b), nil
}

func (cfg Config) connect(ctx context.Context, fn func() error) error {
	attempts, delay := cfg.ConnectAttempts, cfg.ConnectDelay
	if attempts <= 0 {
		attempts = DefaultConnectAttempts
	}
	if delay <= 0 {
		delay = DefaultConnectDelay
	}
	return retry(ctx, attempts, delay, fn)
}
