package app

import (
	"sync"
	"time"

	"github.com/khadija-altaf/folio/internal/notifications"
	"github.com/khadija-altaf/folio/internal/pages"
)

// Event kinds streamed to subscribers.
const (
	EventRoute          = "route"
	EventTyping         = pages.EventTyping
	EventContact        = pages.EventContact
	EventToast          = string(notifications.EventEnqueued)
	EventToastDismissed = string(notifications.EventDismissed)
	EventTheme          = "theme"
)

// subscriberBuffer is the number of events a subscriber may fall behind by
// before events are dropped for it.
const subscriberBuffer = 64

// Event is one change to a session.
type Event struct {
	Kind string    `json:"kind"`
	Data any       `json:"data"`
	At   time.Time `json:"at"`
}

type bus struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	next   int
	closed bool
}

func newBus() *bus {
	return &bus{subs: make(map[int]chan Event)}
}

// subscribe registers a listener. The returned cancel func is idempotent.
func (b *bus) subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.next
	b.next++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

// publish delivers e to every subscriber that has room for it.
func (b *bus) publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

func (b *bus) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *bus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
