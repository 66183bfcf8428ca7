package pages

import (
	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/router"
)

// Experience renders the career timeline.
type Experience struct {
	base
}

// TimelineEntry is an experience entry positioned on the timeline.
type TimelineEntry struct {
	catalog.ExperienceEntry
	IsLast bool `json:"is_last"`
}

// ExperienceView is the rendered state of Experience.
type ExperienceView struct {
	Intro    string                     `json:"intro"`
	Timeline []Staggered[TimelineEntry] `json:"timeline"`
	Stats    []catalog.Stat             `json:"stats"`
	CTAPath  string                     `json:"cta_path"`
	Stagger  Stagger                    `json:"stagger"`
}

func (p *Experience) ID() string { return router.PageExperience }

func (p *Experience) View() any {
	c := p.catalog()
	s := StaggerFor(router.PageExperience)

	entries := make([]TimelineEntry, len(c.Experience))
	for i, e := range c.Experience {
		entries[i] = TimelineEntry{ExperienceEntry: e, IsLast: i == len(c.Experience)-1}
	}
	return ExperienceView{
		Intro:    c.Copy.ExperienceIntro,
		Timeline: stagger(s, entries),
		Stats:    c.Copy.ExperienceStats,
		CTAPath:  "/contact",
		Stagger:  s,
	}
}
