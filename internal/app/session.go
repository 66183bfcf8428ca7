// Package app ties the pages, theme, router and toasts of one visitor into a
// Session and keeps the live sessions in a Manager.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/clock"
	"github.com/khadija-altaf/folio/internal/logger"
	"github.com/khadija-altaf/folio/internal/notifications"
	"github.com/khadija-altaf/folio/internal/pages"
	"github.com/khadija-altaf/folio/internal/router"
	"github.com/khadija-altaf/folio/internal/storage"
	"github.com/khadija-altaf/folio/internal/theme"
)

var (
	// ErrSessionClosed is returned by every call on a closed session.
	ErrSessionClosed = errors.New("session closed")
	// ErrWrongPage is returned by a page action when that page is not shown.
	ErrWrongPage = errors.New("page not active")
	// ErrUnknownItem is returned by a page action naming an item that does
	// not exist.
	ErrUnknownItem = errors.New("unknown item")
)

// Options configures new sessions.
type Options struct {
	Catalog    *catalog.Catalog
	Clock      clock.Clock
	Timing     pages.Timing
	ToastTTL   time.Duration
	Transition time.Duration
	Submitter  pages.Submitter
	Log        *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}
	if o.Clock == nil {
		o.Clock = clock.Real()
	}
	def := pages.DefaultTiming()
	if o.Timing.TypingInterval <= 0 {
		o.Timing.TypingInterval = def.TypingInterval
	}
	if o.Timing.SubmitDelay <= 0 {
		o.Timing.SubmitDelay = def.SubmitDelay
	}
	if o.Timing.SubmittedReset <= 0 {
		o.Timing.SubmittedReset = def.SubmittedReset
	}
	if o.ToastTTL <= 0 {
		o.ToastTTL = notifications.DefaultTTL
	}
	if o.Transition <= 0 {
		o.Transition = router.DefaultTransition
	}
	if o.Submitter == nil {
		o.Submitter = pages.Simulated{Log: o.Log}
	}
	return o
}

// Session is the UI state of one browser tab of a visitor.
//
// Every mutation runs under one lock, one at a time and to completion. Timer
// callbacks are delivered through the same lock, so they never interleave
// with a user action.
type Session struct {
	id      string
	visitor string
	opts    Options
	log     *logger.Logger

	mu        sync.Mutex
	closed    bool
	lastSeen  time.Time
	scope     *clock.Scope
	theme     *theme.Store
	toasts    *notifications.Center
	trans     *router.Transition
	page      pages.Page
	pageScope *clock.Scope

	bus *bus

	// themeChanged tells the visitor's other tabs about a toggle. It runs
	// outside s.mu.
	themeChanged func(from *Session, dark bool)
}

// NewSession creates a session for visitor id and loads its theme from st.
// No page is shown until the first Navigate.
func NewSession(ctx context.Context, id string, st storage.Storage, opts Options) *Session {
	opts = opts.withDefaults()
	th := theme.New(st, opts.Log.With("visitor", id))
	th.Initialize(ctx)
	return newSession(id, id, th, opts)
}

// newSession creates tab session id of visitor. Tabs of one visitor share
// th. opts must already have defaults applied.
func newSession(id, visitor string, th *theme.Store, opts Options) *Session {
	s := &Session{
		id:      id,
		visitor: visitor,
		opts:    opts,
		log:     opts.Log.With("session", id),
		bus:     newBus(),
		theme:   th,
	}
	s.scope = clock.NewScope(opts.Clock, s.runTimer)
	s.toasts = notifications.NewCenter(s.scope, opts.ToastTTL)
	s.toasts.OnChange(func(e notifications.Event) {
		s.publish(string(e.Kind), e.Toast)
	})
	s.trans = router.NewTransition(s.scope, opts.Transition)
	s.trans.OnChange(func() {
		s.publish(EventRoute, s.trans.State())
	})
	s.lastSeen = opts.Clock.Now()
	return s
}

// ID returns the session id. For sessions made by a Manager this is the tab
// id.
func (s *Session) ID() string { return s.id }

// Visitor returns the id of the visitor owning the session.
func (s *Session) Visitor() string { return s.visitor }

// Dispatch runs fn with exclusive access to the session.
func (s *Session) Dispatch(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.lastSeen = s.opts.Clock.Now()
	return fn()
}

// runTimer delivers a timer callback. Callbacks arriving after Close are
// dropped.
func (s *Session) runTimer(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	fn()
}

func (s *Session) publish(kind string, data any) {
	s.bus.publish(Event{Kind: kind, Data: data, At: s.opts.Clock.Now()})
}

// Subscribe returns a stream of session events and a func that ends the
// subscription. A subscriber that falls behind misses events rather than
// stalling the session.
func (s *Session) Subscribe() (<-chan Event, func()) {
	return s.bus.subscribe()
}

// Navigate shows the page at path. The previous page is unmounted at once
// and its timers released; it stays in the exiting slot of the transition
// until the exit animation ends. Navigating to the shown path does nothing.
func (s *Session) Navigate(path string) error {
	return s.Dispatch(func() error {
		route, changed, err := s.trans.Navigate(path)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		page, err := pages.New(route.Page)
		if err != nil {
			return err
		}
		s.unmountPage()

		scope := clock.NewScope(s.opts.Clock, s.runTimer)
		page.Mount(s.host(scope))
		s.page = page
		s.pageScope = scope

		s.log.Debug("navigated to " + route.Path)
		s.publish(EventRoute, s.trans.State())
		return nil
	})
}

func (s *Session) host(scope *clock.Scope) pages.Host {
	return pages.Host{
		Catalog:    s.opts.Catalog,
		Scope:      scope,
		Background: s.scope,
		Toasts:     s.toasts,
		Submitter:  s.opts.Submitter,
		Timing:     s.opts.Timing,
		Log:        s.log,
		Emit:       s.publish,
	}
}

// unmountPage tears down the shown page. s.mu must be held.
func (s *Session) unmountPage() {
	if s.page == nil {
		return
	}
	s.page.Unmount()
	s.pageScope.Release()
	s.page = nil
	s.pageScope = nil
}

// ToggleTheme flips dark mode and returns the new value.
func (s *Session) ToggleTheme(ctx context.Context) (bool, error) {
	var dark bool
	err := s.Dispatch(func() error {
		dark = s.theme.Toggle(ctx)
		s.publishTheme(dark)
		return nil
	})
	if err == nil && s.themeChanged != nil {
		s.themeChanged(s, dark)
	}
	return dark, err
}

func (s *Session) publishTheme(dark bool) {
	name := theme.Light
	if dark {
		name = theme.Dark
	}
	s.publish(EventTheme, map[string]any{"dark": dark, "theme": name})
}

// Dark reports whether dark mode is on.
func (s *Session) Dark() bool { return s.theme.Get() }

// Toasts returns the session's notification center.
func (s *Session) Toasts() *notifications.Center { return s.toasts }

// Notify enqueues a toast on behalf of the application.
func (s *Session) Notify(t notifications.Toast) (string, error) {
	var id string
	err := s.Dispatch(func() error {
		id = s.toasts.Enqueue(t)
		return nil
	})
	return id, err
}

// DismissToast removes a toast. It reports whether the toast existed.
func (s *Session) DismissToast(id string) (bool, error) {
	var ok bool
	err := s.Dispatch(func() error {
		ok = s.toasts.Dismiss(id)
		return nil
	})
	return ok, err
}

// ListToasts returns the visible toasts.
func (s *Session) ListToasts() ([]notifications.Toast, error) {
	var toasts []notifications.Toast
	err := s.Dispatch(func() error {
		toasts = s.toasts.List()
		return nil
	})
	return toasts, err
}

// WithPage runs fn on the shown page if it has type T.
func WithPage[T pages.Page](s *Session, fn func(p T) error) error {
	return s.Dispatch(func() error {
		p, ok := s.page.(T)
		if !ok {
			return ErrWrongPage
		}
		return fn(p)
	})
}

// SelectSkillCategory switches the Skills tab.
func (s *Session) SelectSkillCategory(id string) error {
	return WithPage(s, func(p *pages.Skills) error {
		if !p.SelectCategory(id) {
			return fmt.Errorf("%w: skill category %q", ErrUnknownItem, id)
		}
		return nil
	})
}

// SelectProject opens the project modal.
func (s *Session) SelectProject(id int) error {
	return WithPage(s, func(p *pages.Projects) error {
		if !p.Select(id) {
			return fmt.Errorf("%w: project %d", ErrUnknownItem, id)
		}
		return nil
	})
}

// CloseProject closes the project modal.
func (s *Session) CloseProject() error {
	return WithPage(s, func(p *pages.Projects) error {
		p.Close()
		return nil
	})
}

// SetProjectFilter changes the project grid filter.
func (s *Session) SetProjectFilter(id string) error {
	return WithPage(s, func(p *pages.Projects) error {
		if !p.SetFilter(id) {
			return fmt.Errorf("%w: project filter %q", ErrUnknownItem, id)
		}
		return nil
	})
}

// FlipCertification flips a certification card.
func (s *Session) FlipCertification(id int) error {
	return WithPage(s, func(p *pages.Certifications) error {
		if !p.Flip(id) {
			return fmt.Errorf("%w: certification %d", ErrUnknownItem, id)
		}
		return nil
	})
}

// SetContactField updates one contact form field.
func (s *Session) SetContactField(name, value string) error {
	return WithPage(s, func(p *pages.Contact) error {
		return p.SetField(name, value)
	})
}

// SubmitContact starts a contact form submission.
func (s *Session) SubmitContact() error {
	return WithPage(s, func(p *pages.Contact) error {
		return p.Submit()
	})
}

// SetTagline changes the text typed on Home.
func (s *Session) SetTagline(text string) error {
	return WithPage(s, func(p *pages.Home) error {
		p.SetTagline(text)
		return nil
	})
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() (Snapshot, error) {
	var snap Snapshot
	err := s.Dispatch(func() error {
		snap = s.snapshot()
		return nil
	})
	return snap, err
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		SessionID:  s.id,
		Dark:       s.theme.Get(),
		Theme:      s.theme.Name(),
		ThemeClass: s.theme.Class(),
		Transition: s.trans.State(),
		Toasts:     s.toasts.List(),
		Footer:     BuildFooter(s.opts.Catalog, s.opts.Clock.Now().Year()),
	}
	if r, ok := s.trans.Entering(); ok {
		snap.Route = r
		snap.Nav = NavLinks(r.Path)
	} else {
		snap.Nav = NavLinks("")
	}
	if s.page != nil {
		snap.PageID = s.page.ID()
		snap.Page = s.page.View()
	}
	return snap
}

// LastSeen returns the time of the last user action.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close tears the session down: the page is unmounted, every timer is
// released and subscribers are disconnected. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.unmountPage()
	s.scope.Release()
	s.mu.Unlock()

	s.bus.close()
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
