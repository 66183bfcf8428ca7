// Package clock schedules the timed state changes of the portfolio: the
// typing effect, the contact form delays, toast expiry and route transitions.
//
// Timers are acquired through a Scope owned by one component. Releasing the
// scope cancels everything it still holds, and a callback that already fired
// but has not yet run becomes a no-op, so no state is written after teardown.
package clock

import (
	"sync"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	Stop() bool
}

// Clock is the time source timers are scheduled on.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// Real returns the wall clock.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Dispatcher runs fn serialized with every other event of its owner.
type Dispatcher func(fn func())

// Direct runs fn on the calling goroutine.
func Direct(fn func()) { fn() }

// Scope tracks the timers acquired by one component.
type Scope struct {
	clock    Clock
	dispatch Dispatcher

	mu       sync.Mutex
	released bool
	nextID   uint64
	timers   map[uint64]Timer
}

// NewScope returns a scope scheduling on c and delivering callbacks through
// dispatch. A nil dispatch runs callbacks directly.
func NewScope(c Clock, dispatch Dispatcher) *Scope {
	if dispatch == nil {
		dispatch = Direct
	}
	return &Scope{
		clock:    c,
		dispatch: dispatch,
		timers:   make(map[uint64]Timer),
	}
}

// Handle cancels one timer acquired from a Scope.
type Handle struct {
	scope *Scope
	id    uint64
}

// Stop cancels the timer. It is safe to call more than once and on the zero
// Handle.
func (h Handle) Stop() {
	if h.scope == nil {
		return
	}
	h.scope.cancel(h.id)
}

// After runs f once after d unless the handle is stopped or the scope is
// released first.
func (s *Scope) After(d time.Duration, f func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return Handle{}
	}
	s.nextID++
	id := s.nextID
	s.timers[id] = s.clock.AfterFunc(d, func() {
		s.dispatch(func() {
			if !s.take(id) {
				return
			}
			f()
		})
	})
	return Handle{scope: s, id: id}
}

// Every runs f every d until the handle is stopped or the scope is released.
// f may stop its own handle.
func (s *Scope) Every(d time.Duration, f func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return Handle{}
	}
	s.nextID++
	id := s.nextID
	s.arm(id, d, f)
	return Handle{scope: s, id: id}
}

// arm schedules the next tick of a recurring timer. s.mu must be held.
func (s *Scope) arm(id uint64, d time.Duration, f func()) {
	s.timers[id] = s.clock.AfterFunc(d, func() {
		s.dispatch(func() {
			if !s.live(id) {
				return
			}
			f()
			s.mu.Lock()
			if _, ok := s.timers[id]; ok && !s.released {
				s.arm(id, d, f)
			}
			s.mu.Unlock()
		})
	})
}

// Release cancels every pending timer. Later After/Every calls are ignored.
func (s *Scope) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	s.released = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Released reports whether Release has been called.
func (s *Scope) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// Pending returns the number of timers still scheduled.
func (s *Scope) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Now returns the scope clock's current time.
func (s *Scope) Now() time.Time { return s.clock.Now() }

func (s *Scope) cancel(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// take removes a fired one-shot timer and reports whether it was still live.
func (s *Scope) take(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return false
	}
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

func (s *Scope) live(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return false
	}
	_, ok := s.timers[id]
	return ok
}
