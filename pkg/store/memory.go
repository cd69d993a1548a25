package store

import (
	"context"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
)

// Memory keeps templates in process memory. A zero TTL keeps entries until
// they are deleted.
type Memory struct {
	c *cache.Cache
}

// NewMemory returns an empty in-memory backend.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		return &Memory{c: cache.New(cache.NoExpiration, 0)}
	}
	return &Memory{c: cache.New(ttl, 10*time.Minute)}
}

func (m *Memory) Name() string { return BackendMemory }

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v.([]byte)), nil
}

func (m *Memory) Set(_ context.Context, key string, data []byte) error {
	m.c.Set(key, slices.Clone(data), cache.DefaultExpiration)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

func (m *Memory) Keys(context.Context) ([]string, error) {
	items := m.c.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *Memory) Close() error {
	m.c.Flush()
	return nil
}

var _ Backend = (*Memory)(nil)
