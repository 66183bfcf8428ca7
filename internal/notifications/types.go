package notifications

import "time"

// Variant selects how a toast is styled.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast is a single transient notification.
type Toast struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventKind identifies a change to the toast list.
type EventKind string

const (
	EventEnqueued  EventKind = "toast"
	EventDismissed EventKind = "toast_dismissed"
)

// Event reports one change to the toast list.
type Event struct {
	Kind  EventKind `json:"kind"`
	Toast Toast     `json:"toast"`
}
