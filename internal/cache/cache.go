// Package cache provides an in-memory TTL cache shared by request handlers.
package cache

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// sweepHorizon is the fixed age beyond which Sweep evicts an entry,
	// independent of any per-read max-age.
	sweepHorizon = 60 * time.Second

	// sweepThreshold is the store size past which MaybeSweep actually sweeps.
	sweepThreshold = 100
)

type entry struct {
	value    interface{}
	storedAt time.Time
}

// Store is a mutex-guarded key/value store with per-read staleness checks.
// Staleness is a per-read judgment: Get does not delete expired entries, only
// Sweep does. Contents are volatile and reset on restart.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
	log     zerolog.Logger
}

// New creates an empty store.
func New(log zerolog.Logger) *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
		log:     log.With().Str("component", "cache").Logger(),
	}
}

// Get returns the value stored under key if it is younger than maxAge.
// An entry aged exactly maxAge is already stale.
func (s *Store) Get(key string, maxAge time.Duration) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.storedAt) >= maxAge {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, overwriting any previous entry.
func (s *Store) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{value: value, storedAt: s.now()}
}

// Sweep removes every entry older than the sweep horizon and returns the
// number of entries removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, e := range s.entries {
		if now.Sub(e.storedAt) > sweepHorizon {
			delete(s.entries, key)
			removed++
		}
	}

	if removed > 0 {
		s.log.Debug().Int("removed", removed).Int("remaining", len(s.entries)).Msg("Cache sweep completed")
	}
	return removed
}

// MaybeSweep sweeps only once the store has grown past the size threshold.
// Handlers call it on the request path, so growth stays bounded without a
// background timer.
func (s *Store) MaybeSweep() {
	s.mu.Lock()
	size := len(s.entries)
	s.mu.Unlock()

	if size > sweepThreshold {
		s.Sweep()
	}
}

// Len reports the current number of entries, fresh or stale.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
