package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value      T
	capturedAt time.Time
}

// Store is an advisory TTL cache. Entries never expire out of the map:
// callers decide per lookup whether an entry is fresh enough, and stale
// entries stay servable as a fallback when refreshing is not allowed.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	clone   func(T) T
	now     func() time.Time
}

func New[T any](clone func(T) T) *Store[T] {
	return &Store[T]{
		entries: make(map[string]entry[T]),
		clone:   clone,
		now:     time.Now,
	}
}

// Get returns the stored payload and its age. The payload is returned even
// when older than any TTL; ok is false only when the key was never stored.
func (s *Store[T]) Get(key string) (T, time.Duration, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		var zero T
		return zero, 0, false
	}
	age := s.now().Sub(e.capturedAt)
	if s.clone != nil {
		return s.clone(e.value), age, true
	}
	return e.value, age, true
}

// Put stores value under key with the current timestamp, replacing any
// prior entry wholesale.
func (s *Store[T]) Put(key string, value T) {
	s.mu.Lock()
	s.entries[key] = entry[T]{value: s.cloneValue(value), capturedAt: s.now()}
	s.mu.Unlock()
}

// IsFresh reports whether key exists and its age is below ttl.
func (s *Store[T]) IsFresh(key string, ttl time.Duration) bool {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return s.now().Sub(e.capturedAt) < ttl
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store[T]) cloneValue(value T) T {
	if s.clone == nil {
		return value
	}
	return s.clone(value)
}
