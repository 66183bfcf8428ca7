package pages

import (
	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/router"
)

// Education renders the education cards.
type Education struct {
	base
}

// EducationCard is an education entry with its status badge.
type EducationCard struct {
	catalog.EducationEntry
	StatusLabel string `json:"status_label"`
	BadgeClass  string `json:"badge_class"`
}

// EducationView is the rendered state of Education.
type EducationView struct {
	Intro    string                     `json:"intro"`
	Cards    []Staggered[EducationCard] `json:"cards"`
	Benefits []PhilosophyBlock          `json:"benefits"`
	CTAPath  string                     `json:"cta_path"`
	Stagger  Stagger                    `json:"stagger"`
}

func (p *Education) ID() string { return router.PageEducation }

func educationCard(e catalog.EducationEntry) EducationCard {
	if e.Ongoing() {
		return EducationCard{
			EducationEntry: e,
			StatusLabel:    "In Progress",
			BadgeClass:     "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-300",
		}
	}
	return EducationCard{
		EducationEntry: e,
		StatusLabel:    "Completed",
		BadgeClass:     "bg-green-100 text-green-800 dark:bg-green-900 dark:text-green-300",
	}
}

func (p *Education) View() any {
	c := p.catalog()
	s := StaggerFor(router.PageEducation)

	cards := make([]EducationCard, len(c.Education))
	for i, e := range c.Education {
		cards[i] = educationCard(e)
	}
	v := EducationView{
		Intro:   c.Copy.EducationIntro,
		Cards:   stagger(s, cards),
		CTAPath: "/contact",
		Stagger: s,
	}
	for _, sec := range c.Copy.EducationBenefits {
		v.Benefits = append(v.Benefits, PhilosophyBlock{Title: sec.Title, Body: catalog.Markdown(sec.Body)})
	}
	return v
}
