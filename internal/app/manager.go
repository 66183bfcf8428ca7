package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khadija-altaf/folio/internal/storage"
	"github.com/khadija-altaf/folio/internal/theme"
)

// DefaultIdleTTL is how long an untouched session is kept in memory.
const DefaultIdleTTL = 30 * time.Minute

// Manager owns the live sessions. Every browser tab has its own session,
// keyed by tab id, so page state and timers of one tab never touch another.
// The tabs of one visitor share its theme preference.
type Manager struct {
	opts    Options
	storage storage.Factory
	idleTTL time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	visitors map[string]*visitor
	closed   bool

	stop chan struct{}
	done chan struct{}
}

// NewManager returns a Manager creating sessions with opts. Each visitor's
// durable state lives in the storage namespace returned by st for its id.
func NewManager(opts Options, st storage.Factory, idleTTL time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Manager{
		opts:     opts.withDefaults(),
		storage:  st,
		idleTTL:  idleTTL,
		sessions: make(map[string]*Session),
		visitors: make(map[string]*visitor),
	}
}

// visitor is the state shared by the open tabs of one visitor.
type visitor struct {
	theme *theme.Store
	tabs  int
}

// Get returns the live session for tab.
func (m *Manager) Get(tab string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[tab]
	return s, ok
}

// Create starts a session in a new tab of a new visitor.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	s, _, err := m.GetOrCreate(ctx, "", "")
	return s, err
}

// GetOrCreate returns the session of tab for visitorID, starting one if
// needed. A returning visitor whose sessions were evicted keeps its id, so
// its stored preferences still apply. An empty or malformed id gets a fresh
// one, and so does a tab id owned by another visitor. The second result
// reports whether a session was created.
func (m *Manager) GetOrCreate(ctx context.Context, visitorID, tab string) (*Session, bool, error) {
	if _, err := uuid.Parse(visitorID); err != nil {
		visitorID = uuid.New().String()
	}
	if _, err := uuid.Parse(tab); err != nil {
		tab = uuid.New().String()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, false, ErrSessionClosed
	}
	if s, ok := m.sessions[tab]; ok {
		if s.Visitor() == visitorID {
			return s, false, nil
		}
		tab = uuid.New().String()
	}

	v, ok := m.visitors[visitorID]
	if !ok {
		th := theme.New(m.storage(visitorID), m.opts.Log.With("visitor", visitorID))
		th.Initialize(ctx)
		v = &visitor{theme: th}
		m.visitors[visitorID] = v
	}
	v.tabs++

	s := newSession(tab, visitorID, v.theme, m.opts)
	s.themeChanged = m.broadcastTheme
	m.sessions[tab] = s
	m.opts.Log.WithFields(map[string]any{"session": tab, "visitor": visitorID}).Debug("session created")
	return s, true, nil
}

// broadcastTheme sends a theme event to the other tabs of from's visitor.
func (m *Manager) broadcastTheme(from *Session, dark bool) {
	m.mu.Lock()
	var tabs []*Session
	for _, s := range m.sessions {
		if s != from && s.Visitor() == from.Visitor() {
			tabs = append(tabs, s)
		}
	}
	m.mu.Unlock()

	for _, s := range tabs {
		s.publishTheme(dark)
	}
}

// Tabs returns the number of live sessions of visitorID.
func (m *Manager) Tabs(visitorID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.visitors[visitorID]; ok {
		return v.tabs
	}
	return 0
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Evict closes sessions idle for longer than the idle TTL and returns how
// many were removed.
func (m *Manager) Evict() int {
	now := m.opts.Clock.Now()

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen()) > m.idleTTL {
			stale = append(stale, s)
			delete(m.sessions, id)
			m.release(s.Visitor())
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	if len(stale) > 0 {
		m.opts.Log.WithFields(map[string]any{"evicted": len(stale)}).Debug("idle sessions evicted")
	}
	return len(stale)
}

// release drops one tab of visitorID, forgetting the visitor with its last
// tab. m.mu must be held.
func (m *Manager) release(visitorID string) {
	v, ok := m.visitors[visitorID]
	if !ok {
		return
	}
	if v.tabs--; v.tabs <= 0 {
		delete(m.visitors, visitorID)
	}
}

// Start runs the eviction janitor every interval until ctx is done or Close
// is called.
func (m *Manager) Start(ctx context.Context, interval time.Duration) {
	m.mu.Lock()
	if m.stop != nil || m.closed {
		m.mu.Unlock()
		return
	}
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	stop, done := m.stop, m.done
	m.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				m.Evict()
			}
		}
	}()
}

// Close stops the janitor and closes every session.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	stop, done := m.stop, m.done
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.visitors = make(map[string]*visitor)
	m.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
	for _, s := range sessions {
		s.Close()
	}
}
