package pages

import (
	"github.com/khadija-altaf/folio/internal/clock"
	"github.com/khadija-altaf/folio/internal/router"
)

// Home is the landing page with the typed tagline.
type Home struct {
	base

	tagline []rune
	shown   int
	ticker  clock.Handle
}

// HomeView is the rendered state of Home.
type HomeView struct {
	Name        string              `json:"name"`
	Designation string              `json:"designation"`
	Subtitle    string              `json:"subtitle"`
	Tagline     string              `json:"tagline"`
	Typed       string              `json:"typed"`
	TypingDone  bool                `json:"typing_done"`
	Resume      string              `json:"resume"`
	ContactPath string              `json:"contact_path"`
	Tools       []Staggered[string] `json:"tools"`
	Blocks      []Staggered[string] `json:"blocks"`
	Stagger     Stagger             `json:"stagger"`
}

func (p *Home) ID() string { return router.PageHome }

// Mount starts typing the catalog tagline.
func (p *Home) Mount(h Host) {
	p.base.Mount(h)
	p.restart(p.catalog().Personal.Tagline)
}

// Unmount stops the typing effect.
func (p *Home) Unmount() {
	p.ticker.Stop()
	p.base.Unmount()
}

// SetTagline replaces the text being typed. A different text restarts the
// effect from the beginning; the same text is ignored.
func (p *Home) SetTagline(text string) {
	if !p.mounted || text == string(p.tagline) {
		return
	}
	p.restart(text)
}

func (p *Home) restart(text string) {
	p.ticker.Stop()
	p.ticker = clock.Handle{}
	p.tagline = []rune(text)
	p.shown = 0
	if len(p.tagline) == 0 {
		return
	}
	interval := p.host.Timing.TypingInterval
	if interval <= 0 {
		interval = DefaultTiming().TypingInterval
	}
	p.ticker = p.host.Scope.Every(interval, p.tick)
}

func (p *Home) tick() {
	if p.shown < len(p.tagline) {
		p.shown++
	}
	if p.shown >= len(p.tagline) {
		p.ticker.Stop()
	}
	p.host.emit(EventTyping, TypingState{Typed: p.Typed(), Done: p.Done()})
}

// TypingState is the payload of a typing event.
type TypingState struct {
	Typed string `json:"typed"`
	Done  bool   `json:"done"`
}

// Typed returns the revealed prefix of the tagline.
func (p *Home) Typed() string { return string(p.tagline[:p.shown]) }

// Done reports whether the whole tagline is revealed.
func (p *Home) Done() bool { return p.shown >= len(p.tagline) }

func (p *Home) View() any {
	c := p.catalog()
	s := StaggerFor(router.PageHome)
	return HomeView{
		Name:        c.Personal.Name,
		Designation: c.Personal.Designation,
		Subtitle:    c.Personal.Subtitle,
		Tagline:     string(p.tagline),
		Typed:       p.Typed(),
		TypingDone:  p.Done(),
		Resume:      c.Personal.Resume,
		ContactPath: "/contact",
		Tools:       stagger(s, c.Copy.HomeTools),
		Blocks:      stagger(s, []string{"intro", "tagline", "actions", "tools"}),
		Stagger:     s,
	}
}
