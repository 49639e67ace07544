// Package cache provides a concurrency-safe in-memory key/value store
// with per-entry TTL and bulk invalidation. Entries are evicted lazily
// on read and in bulk by InvalidateAll; there is no background janitor,
// the refresh scheduler clears the whole store every cycle anyway.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the per-key lifetime applied by Set.
const DefaultTTL = 2 * time.Minute

// Config holds store construction parameters.
type Config struct {
	TTL time.Duration
	Now func() time.Time
}

// Option configures a store.
type Option func(*Config)

// WithTTL overrides the default per-key TTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) {
		if ttl > 0 {
			c.TTL = ttl
		}
	}
}

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		if now != nil {
			c.Now = now
		}
	}
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is a generic TTL cache. Reads take the read lock; expired
// entries are deleted on the next access or by InvalidateAll.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// New creates an empty store.
func New[V any](opts ...Option) *Store[V] {
	cfg := &Config{TTL: DefaultTTL, Now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     cfg.TTL,
		now:     cfg.Now,
	}
}

// Get returns the live value for key. An entry is a miss strictly after
// its expiry instant.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; a concurrent Set wins.
		if cur, still := s.entries[key]; still && s.now().After(cur.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the store's default TTL.
func (s *Store[V]) Set(key string, value V) {
	s.SetTTL(key, value, s.ttl)
}

// SetTTL stores value under key with an explicit TTL. Last writer wins
// per key.
func (s *Store[V]) SetTTL(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	exp := s.now().Add(ttl)
	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: exp}
	s.mu.Unlock()
}

// InvalidateAll drops every entry regardless of remaining TTL. Safe to
// call concurrently with Get/Set; in-flight reads may still return a
// just-invalidated value.
func (s *Store[V]) InvalidateAll() {
	s.mu.Lock()
	s.entries = make(map[string]entry[V])
	s.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
