package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/tempcheck/internal/session"
)

var (
	// ErrNotFound is returned when no screen exists for a given id.
	ErrNotFound = errors.New("no converter screen for id")
)

// MemoryStore is a concurrency-safe in-memory implementation of session.Store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: screen id
	data map[string]session.Screen

	// retention configuration
	maxCount int           // max number of screens held
	maxIdle  time.Duration // screens untouched for longer are pruned
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxCount is <= 0 it is treated as unlimited; if maxIdle is <= 0
// screens never expire.
func NewMemoryStore(maxCount int, maxIdle time.Duration) *MemoryStore {
	return &MemoryStore{
		data:     make(map[string]session.Screen),
		maxCount: maxCount,
		maxIdle:  maxIdle,
	}
}

// Save inserts or replaces a screen and enforces the count limit.
func (s *MemoryStore) Save(screen session.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[screen.ID] = screen

	// Enforce retention by count, evicting the least recently updated.
	for s.maxCount > 0 && len(s.data) > s.maxCount {
		oldest := ""
		var oldestAt time.Time
		for id, sc := range s.data {
			if id == screen.ID {
				continue
			}
			if oldest == "" || sc.UpdatedAt.Before(oldestAt) {
				oldest = id
				oldestAt = sc.UpdatedAt
			}
		}
		if oldest == "" {
			break
		}
		delete(s.data, oldest)
	}
}

// Get returns the screen stored under id.
func (s *MemoryStore) Get(id string) (session.Screen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	screen, ok := s.data[id]
	if !ok {
		return session.Screen{}, ErrNotFound
	}
	return screen, nil
}

// Update applies fn to the screen stored under id while holding the write
// lock, so no other save, delete or prune can interleave. If fn returns an
// error the stored screen is left unchanged.
func (s *MemoryStore) Update(id string, fn func(session.Screen) (session.Screen, error)) (session.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	screen, ok := s.data[id]
	if !ok {
		return session.Screen{}, ErrNotFound
	}

	updated, err := fn(screen)
	if err != nil {
		return session.Screen{}, err
	}
	updated.ID = id
	s.data[id] = updated
	return updated, nil
}

// Delete removes the screen stored under id.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return ErrNotFound
	}
	delete(s.data, id)
	return nil
}

// Prune removes screens last updated before now minus the idle limit and
// returns how many were removed.
func (s *MemoryStore) Prune(now time.Time) int {
	if s.maxIdle <= 0 {
		return 0
	}
	cutoff := now.Add(-s.maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, screen := range s.data {
		if screen.UpdatedAt.Before(cutoff) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of screens held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
