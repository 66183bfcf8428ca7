package testutil

import (
	"time"

	"github.com/khadija-altaf/folio/internal/clock"
)

// FakeClock is a manually advanced clock for deterministic timer tests.
type FakeClock = clock.Manual

// NewFakeClock creates a FakeClock starting at 2024-01-01 12:00 UTC.
func NewFakeClock() *FakeClock {
	return clock.NewManual(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}
