// Package storage provides the durable key-value capability the theme
// preference is persisted through. Each visitor gets its own namespace, the
// way a browser keeps its own local storage.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/khadija-altaf/folio/internal/db"
)

// Storage reads and writes string values by key.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// SQLite stores values in the kv_entries table under one namespace.
type SQLite struct {
	db        *db.DB
	namespace string
}

// NewSQLite returns a Storage scoped to namespace.
func NewSQLite(database *db.DB, namespace string) *SQLite {
	return &SQLite{db: database, namespace: namespace}
}

// Get returns the value stored under key. ok is false when the key is absent.
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_entries WHERE namespace = ? AND key = ?`,
		s.namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s/%s: %w", s.namespace, key, err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (namespace, key, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(namespace, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		s.namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", s.namespace, key, err)
	}
	return nil
}

// Memory is a process-local Storage.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty Memory storage.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Factory hands out a Storage for a visitor namespace.
type Factory func(namespace string) Storage

// SQLiteFactory returns a Factory backed by database.
func SQLiteFactory(database *db.DB) Factory {
	return func(namespace string) Storage {
		return NewSQLite(database, namespace)
	}
}
