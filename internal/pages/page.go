// Package pages implements the eight portfolio pages. Each page is a small
// state holder that turns the catalog plus its local state into an immutable
// view for rendering.
//
// Pages are not safe for concurrent use. The owning session serializes every
// call, including timer callbacks delivered through the page scope.
package pages

import (
	"fmt"
	"time"

	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/clock"
	"github.com/khadija-altaf/folio/internal/logger"
	"github.com/khadija-altaf/folio/internal/notifications"
	"github.com/khadija-altaf/folio/internal/router"
)

// Event kinds emitted by pages.
const (
	EventTyping  = "typing"
	EventContact = "contact"
)

// Timing holds the page delays.
type Timing struct {
	TypingInterval time.Duration
	SubmitDelay    time.Duration
	SubmittedReset time.Duration
}

// DefaultTiming returns the stock delays.
func DefaultTiming() Timing {
	return Timing{
		TypingInterval: 50 * time.Millisecond,
		SubmitDelay:    1500 * time.Millisecond,
		SubmittedReset: 3 * time.Second,
	}
}

// Host is everything a mounted page may use.
type Host struct {
	Catalog *catalog.Catalog
	// Scope holds the page's own timers and is released on unmount.
	Scope *clock.Scope
	// Background outlives the page. Work that must finish after unmount,
	// such as an in-flight contact submission, is scheduled here.
	Background *clock.Scope
	Toasts     *notifications.Center
	Submitter  Submitter
	Timing     Timing
	Log        *logger.Logger
	Emit       func(kind string, payload any)
}

func (h Host) emit(kind string, payload any) {
	if h.Emit != nil {
		h.Emit(kind, payload)
	}
}

// Page is one routed view.
type Page interface {
	ID() string
	Mount(h Host)
	Unmount()
	View() any
}

// New returns a fresh, unmounted page for id.
func New(id string) (Page, error) {
	switch id {
	case router.PageHome:
		return &Home{}, nil
	case router.PageAbout:
		return &About{}, nil
	case router.PageSkills:
		return &Skills{}, nil
	case router.PageExperience:
		return &Experience{}, nil
	case router.PageProjects:
		return &Projects{}, nil
	case router.PageCertifications:
		return &Certifications{}, nil
	case router.PageEducation:
		return &Education{}, nil
	case router.PageContact:
		return &Contact{}, nil
	}
	return nil, fmt.Errorf("unknown page %q", id)
}

// Stagger spaces out the entrance of a page's children.
type Stagger struct {
	DelayChildren   float64 `json:"delay_children"`
	StaggerChildren float64 `json:"stagger_children"`
}

// Delay returns the entrance delay in seconds of child i.
func (s Stagger) Delay(i int) float64 {
	return s.DelayChildren + float64(i)*s.StaggerChildren
}

var staggers = map[string]Stagger{
	router.PageHome:           {DelayChildren: 0.3, StaggerChildren: 0.2},
	router.PageAbout:          {DelayChildren: 0.3, StaggerChildren: 0.2},
	router.PageSkills:         {DelayChildren: 0.2, StaggerChildren: 0.1},
	router.PageExperience:     {DelayChildren: 0.2, StaggerChildren: 0.3},
	router.PageProjects:       {DelayChildren: 0.1, StaggerChildren: 0.2},
	router.PageCertifications: {DelayChildren: 0.1, StaggerChildren: 0.2},
	router.PageEducation:      {DelayChildren: 0.2, StaggerChildren: 0.3},
	router.PageContact:        {DelayChildren: 0.1, StaggerChildren: 0.2},
}

// FooterStagger is the stagger of the footer columns.
var FooterStagger = Stagger{StaggerChildren: 0.1}

// StaggerFor returns the stagger of page id.
func StaggerFor(id string) Stagger { return staggers[id] }

// Staggered pairs a list child with its entrance delay.
type Staggered[T any] struct {
	Item  T       `json:"item"`
	Delay float64 `json:"delay"`
}

func stagger[T any](s Stagger, items []T) []Staggered[T] {
	out := make([]Staggered[T], len(items))
	for i, item := range items {
		out[i] = Staggered[T]{Item: item, Delay: s.Delay(i)}
	}
	return out
}

// base carries the mount state shared by every page.
type base struct {
	host    Host
	mounted bool
}

func (b *base) Mount(h Host) {
	b.host = h
	b.mounted = true
}

func (b *base) Unmount() { b.mounted = false }

// Mounted reports whether the page is currently mounted.
func (b *base) Mounted() bool { return b.mounted }

func (b *base) catalog() *catalog.Catalog {
	if b.host.Catalog == nil {
		return catalog.Default()
	}
	return b.host.Catalog
}
