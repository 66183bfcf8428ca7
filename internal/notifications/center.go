package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khadija-altaf/folio/internal/clock"
)

// DefaultTTL is how long a toast stays visible unless dismissed.
const DefaultTTL = 5 * time.Second

// Center is the toast queue of one session. Toasts are listed in insertion
// order and removed either by Dismiss or when their TTL elapses.
type Center struct {
	scope    *clock.Scope
	ttl      time.Duration
	onChange func(Event)

	mu     sync.Mutex
	toasts []Toast
	timers map[string]clock.Handle
}

// NewCenter returns an empty Center whose expiry timers are acquired from
// scope. A non-positive ttl selects DefaultTTL.
func NewCenter(scope *clock.Scope, ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		scope:  scope,
		ttl:    ttl,
		timers: make(map[string]clock.Handle),
	}
}

// OnChange registers fn to receive every enqueue and dismissal. fn runs
// after the Center's lock is released.
func (c *Center) OnChange(fn func(Event)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Enqueue appends t and returns its id. ID and CreatedAt are assigned here;
// an empty Variant becomes VariantDefault.
func (c *Center) Enqueue(t Toast) string {
	t.ID = uuid.New().String()
	t.CreatedAt = c.scope.Now()
	if t.Variant == "" {
		t.Variant = VariantDefault
	}

	c.mu.Lock()
	c.toasts = append(c.toasts, t)
	id := t.ID
	c.timers[id] = c.scope.After(c.ttl, func() { c.Dismiss(id) })
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(Event{Kind: EventEnqueued, Toast: t})
	}
	return id
}

// Dismiss removes the toast with id and cancels its expiry. Unknown ids are
// ignored. It reports whether a toast was removed.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	idx := -1
	for i, t := range c.toasts {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return false
	}

	removed := c.toasts[idx]
	c.toasts = append(c.toasts[:idx:idx], c.toasts[idx+1:]...)
	if h, ok := c.timers[id]; ok {
		h.Stop()
		delete(c.timers, id)
	}
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(Event{Kind: EventDismissed, Toast: removed})
	}
	return true
}

// List returns the visible toasts in insertion order.
func (c *Center) List() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// ListToasts returns List. A Center is a Source on its own.
func (c *Center) ListToasts() ([]Toast, error) { return c.List(), nil }

// DismissToast returns Dismiss(id).
func (c *Center) DismissToast(id string) (bool, error) { return c.Dismiss(id), nil }

// TTL returns the auto-dismiss delay.
func (c *Center) TTL() time.Duration { return c.ttl }
