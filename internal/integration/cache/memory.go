// Package cache provides the lookup cache backends used by the plant catalog client.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process cache backed by go-cache.
type Memory struct {
	store *gocache.Cache
}

// NewMemory creates an in-process cache whose entries expire after ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{store: gocache.New(ttl, ttl*2)}
}

// Get returns a cached value.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

// Set stores a value for ttl.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.store.Set(key, value, ttl)
}
