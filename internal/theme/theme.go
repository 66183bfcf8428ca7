// Package theme holds the light/dark preference of one visitor.
package theme

import (
	"context"
	"sync"

	"github.com/khadija-altaf/folio/internal/logger"
	"github.com/khadija-altaf/folio/internal/storage"
)

// Key is the storage key the preference is persisted under.
const Key = "theme"

const (
	Dark  = "dark"
	Light = "light"
)

// Store is the in-memory theme flag backed by durable storage. The in-memory
// flag is authoritative; storage failures never change it.
type Store struct {
	storage storage.Storage
	log     *logger.Logger

	mu   sync.RWMutex
	dark bool
}

// New returns a Store in light mode. Call Initialize to load the persisted
// preference.
func New(s storage.Storage, log *logger.Logger) *Store {
	return &Store{storage: s, log: log}
}

// Initialize reads the persisted preference. Only the exact value "dark"
// enables dark mode; a missing key, any other value or a read error leaves
// light mode.
func (s *Store) Initialize(ctx context.Context) {
	value, ok, err := s.storage.Get(ctx, Key)
	if err != nil {
		s.log.DebugErr(err, "reading theme preference")
		return
	}
	if ok && value == Dark {
		s.mu.Lock()
		s.dark = true
		s.mu.Unlock()
	}
}

// Get reports whether dark mode is on.
func (s *Store) Get() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// Toggle flips the flag and persists the new value. It returns the new flag.
func (s *Store) Toggle(ctx context.Context) bool {
	s.mu.Lock()
	s.dark = !s.dark
	dark := s.dark
	s.mu.Unlock()

	value := Light
	if dark {
		value = Dark
	}
	if err := s.storage.Set(ctx, Key, value); err != nil {
		s.log.DebugErr(err, "persisting theme preference")
	}
	return dark
}

// Class returns the root style marker for the current mode.
func (s *Store) Class() string {
	if s.Get() {
		return Dark
	}
	return ""
}

// Name returns "dark" or "light".
func (s *Store) Name() string {
	if s.Get() {
		return Dark
	}
	return Light
}
