// Package cache holds short-lived read models in process memory.
package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/tt-league/internal/platform/resilience"
)

var errNoLoader = errors.New("cache: loader is required")

type item struct {
	value   any
	expires time.Time // zero means never
}

// Store maps keys to values for a fixed TTL. Concurrent misses on one key
// share a single load. A zero TTL keeps values until they are deleted.
type Store struct {
	ttl   time.Duration
	now   func() time.Time
	loads resilience.SingleFlight

	mu    sync.Mutex
	items map[string]item
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, now: time.Now, items: map[string]item{}}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if !it.expires.IsZero() && !s.now().Before(it.expires) {
		delete(s.items, key)
		return nil, false
	}
	return it.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}
	it := item{value: value}
	if s.ttl > 0 {
		it.expires = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
}

// DeletePrefix drops every key starting with prefix and reports how many
// went. An empty prefix deletes nothing.
func (s *Store) DeletePrefix(_ context.Context, prefix string) int {
	if prefix == "" {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
			n++
		}
	}
	return n
}

// GetOrLoad returns the cached value for key or stores what load returns.
// Errors are passed through and never cached. An empty key bypasses the
// cache.
func (s *Store) GetOrLoad(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	if load == nil {
		return nil, errNoLoader
	}
	if key == "" {
		return load(ctx)
	}
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	v, err, _ := s.loads.Do(key, func() (any, error) {
		if v, ok := s.Get(ctx, key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err == nil {
			s.Set(ctx, key, v)
		}
		return v, err
	})
	return v, err
}
