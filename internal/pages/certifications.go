package pages

import (
	"sort"

	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/router"
)

// Certifications shows two-sided certification cards.
type Certifications struct {
	base
	flipped map[int]bool
}

// CertCard is a certification with its face and badge.
type CertCard struct {
	catalog.CertificationEntry
	Flipped    bool   `json:"flipped"`
	BadgeClass string `json:"badge_class"`
}

// CertCounters are the summary numbers under the grid.
type CertCounters struct {
	Completed  int    `json:"completed"`
	InProgress int    `json:"in_progress"`
	Planned    string `json:"planned"`
}

// CertificationsView is the rendered state of Certifications.
type CertificationsView struct {
	Intro    string                `json:"intro"`
	Cards    []Staggered[CertCard] `json:"cards"`
	Counters CertCounters          `json:"counters"`
	CTAPath  string                `json:"cta_path"`
	Stagger  Stagger               `json:"stagger"`
}

func (p *Certifications) ID() string { return router.PageCertifications }

// Flip toggles the face of card id. Unknown ids are ignored and reported as
// false.
func (p *Certifications) Flip(id int) bool {
	if _, ok := p.catalog().Certification(id); !ok {
		return false
	}
	if p.flipped == nil {
		p.flipped = make(map[int]bool)
	}
	if p.flipped[id] {
		delete(p.flipped, id)
	} else {
		p.flipped[id] = true
	}
	return true
}

// Flipped returns the ids of flipped cards in ascending order.
func (p *Certifications) Flipped() []int {
	out := make([]int, 0, len(p.flipped))
	for id := range p.flipped {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func certBadgeClass(c catalog.CertificationEntry) string {
	if c.Upcoming() {
		return "bg-orange-100 text-orange-800 dark:bg-orange-900 dark:text-orange-300"
	}
	return "bg-green-100 text-green-800 dark:bg-green-900 dark:text-green-300"
}

func (p *Certifications) View() any {
	c := p.catalog()
	s := StaggerFor(router.PageCertifications)

	cards := make([]CertCard, len(c.Certifications))
	for i, cert := range c.Certifications {
		cards[i] = CertCard{
			CertificationEntry: cert,
			Flipped:            p.flipped[cert.ID],
			BadgeClass:         certBadgeClass(cert),
		}
	}
	return CertificationsView{
		Intro: c.Copy.CertificationsIntro,
		Cards: stagger(s, cards),
		Counters: CertCounters{
			Completed:  c.CompletedCount(),
			InProgress: c.InProgressCount(),
			Planned:    c.Copy.PlannedCerts,
		},
		CTAPath: "/contact",
		Stagger: s,
	}
}
