package tui

import "github.com/khadija-altaf/folio/internal/app"

// eventMsg carries one session event into the update loop.
type eventMsg app.Event

// sessionClosedMsg is sent when the session stops publishing events.
type sessionClosedMsg struct{}
