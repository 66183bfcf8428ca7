package pages

import (
	"html/template"

	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/router"
)

// About has no local state.
type About struct {
	base
}

// InfoCard is one labelled fact about the owner.
type InfoCard struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// AboutView is the rendered state of About.
type AboutView struct {
	Name         string                `json:"name"`
	ProfileImage string                `json:"profile_image"`
	Intro        string                `json:"intro"`
	Bio          template.HTML         `json:"bio"`
	BeyondTitle  string                `json:"beyond_title"`
	Beyond       template.HTML         `json:"beyond"`
	Cards        []Staggered[InfoCard] `json:"cards"`
	Stats        []catalog.Stat        `json:"stats"`
	Stagger      Stagger               `json:"stagger"`
}

func (p *About) ID() string { return router.PageAbout }

func (p *About) View() any {
	c := p.catalog()
	s := StaggerFor(router.PageAbout)
	cards := []InfoCard{
		{Icon: "map-pin", Label: "Location", Value: c.Personal.Location},
		{Icon: "mail", Label: "Email", Value: c.Personal.Email},
		{Icon: "briefcase", Label: "Experience", Value: c.Personal.Experience},
		{Icon: "graduation-cap", Label: "Education", Value: c.Personal.Education},
	}
	return AboutView{
		Name:         c.Personal.Name,
		ProfileImage: c.Personal.ProfileImage,
		Intro:        c.Copy.AboutIntro,
		Bio:          catalog.Markdown(c.Copy.AboutBio),
		BeyondTitle:  c.Copy.AboutBeyond.Title,
		Beyond:       catalog.Markdown(c.Copy.AboutBeyond.Body),
		Cards:        stagger(s, cards),
		Stats:        c.Copy.AboutStats,
		Stagger:      s,
	}
}
