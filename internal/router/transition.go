package router

import (
	"time"

	"github.com/khadija-altaf/folio/internal/clock"
)

// DefaultTransition is the page enter/exit duration.
const DefaultTransition = 500 * time.Millisecond

// Variant is one animation keyframe of a page container.
type Variant struct {
	Opacity float64 `json:"opacity"`
	Y       float64 `json:"y"`
}

// Motion describes how pages enter and leave.
type Motion struct {
	Initial  Variant `json:"initial"`
	Animate  Variant `json:"animate"`
	Exit     Variant `json:"exit"`
	Type     string  `json:"type"`
	Ease     string  `json:"ease"`
	Duration float64 `json:"duration"`
}

// PageMotion returns the page transition for duration d.
func PageMotion(d time.Duration) Motion {
	return Motion{
		Initial:  Variant{Opacity: 0, Y: 20},
		Animate:  Variant{Opacity: 1, Y: 0},
		Exit:     Variant{Opacity: 0, Y: -20},
		Type:     "tween",
		Ease:     "anticipate",
		Duration: d.Seconds(),
	}
}

// Transition tracks the entering page and at most one exiting page.
//
// Transition is not safe for concurrent use. Its owner serializes calls with
// the exit timer through the scope's dispatcher.
type Transition struct {
	scope    *clock.Scope
	duration time.Duration
	onChange func()

	entering *Route
	exiting  *Route
	exitDone clock.Handle
}

// NewTransition returns a Transition with no page yet. Exit timers are
// acquired from scope.
func NewTransition(scope *clock.Scope, duration time.Duration) *Transition {
	if duration <= 0 {
		duration = DefaultTransition
	}
	return &Transition{scope: scope, duration: duration}
}

// OnChange registers fn to run when an exit completes.
func (t *Transition) OnChange(fn func()) { t.onChange = fn }

// Navigate looks up path and makes it the entering page. The current page
// becomes the exiting page; a page still exiting from an earlier navigation
// is dropped at once. It reports whether anything changed: navigating to the
// current path is a no-op.
func (t *Transition) Navigate(path string) (Route, bool, error) {
	route, err := Lookup(path)
	if err != nil {
		return Route{}, false, err
	}
	if t.entering != nil && t.entering.Path == route.Path {
		return route, false, nil
	}

	t.exitDone.Stop()
	t.exiting = nil
	if t.entering != nil {
		prev := *t.entering
		t.exiting = &prev
		t.exitDone = t.scope.After(t.duration, t.finishExit)
	}
	t.entering = &route
	return route, true, nil
}

func (t *Transition) finishExit() {
	t.exiting = nil
	t.exitDone = clock.Handle{}
	if t.onChange != nil {
		t.onChange()
	}
}

// Entering returns the page being shown.
func (t *Transition) Entering() (Route, bool) {
	if t.entering == nil {
		return Route{}, false
	}
	return *t.entering, true
}

// Exiting returns the page animating out, if any.
func (t *Transition) Exiting() (Route, bool) {
	if t.exiting == nil {
		return Route{}, false
	}
	return *t.exiting, true
}

// Duration returns the transition length.
func (t *Transition) Duration() time.Duration { return t.duration }

// State is a snapshot of a Transition.
type State struct {
	Entering *Route `json:"entering"`
	Exiting  *Route `json:"exiting,omitempty"`
	Motion   Motion `json:"motion"`
}

// State returns a copy of the current transition.
func (t *Transition) State() State {
	s := State{Motion: PageMotion(t.duration)}
	if r, ok := t.Entering(); ok {
		s.Entering = &r
	}
	if r, ok := t.Exiting(); ok {
		s.Exiting = &r
	}
	return s
}
