package pages

import (
	"html/template"

	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/router"
)

// Contact shows the contact details and the message form.
type Contact struct {
	base
	form *Form
}

// ContactItem is one way to reach the owner.
type ContactItem struct {
	Icon  string       `json:"icon"`
	Label string       `json:"label"`
	Value string       `json:"value"`
	Href  template.URL `json:"href"`
	Color string       `json:"color"`
}

// ContactView is the rendered state of Contact.
type ContactView struct {
	Intro    string                   `json:"intro"`
	Items    []Staggered[ContactItem] `json:"items"`
	Social   []catalog.SocialLink     `json:"social"`
	Services []Staggered[string]      `json:"services"`
	Form     FormState                `json:"form"`
	Email    string                   `json:"email"`
	Resume   string                   `json:"resume"`
	Stagger  Stagger                  `json:"stagger"`
}

func (p *Contact) ID() string { return router.PageContact }

func (p *Contact) Mount(h Host) {
	p.base.Mount(h)
	p.form = newForm(h, p.Mounted)
}

// Unmount detaches the form. A submission already in flight still
// completes and notifies, but leaves the form untouched.
func (p *Contact) Unmount() {
	if p.form != nil {
		p.form.reset.Stop()
	}
	p.base.Unmount()
}

// Form returns the contact form. It is nil before Mount.
func (p *Contact) Form() *Form { return p.form }

// SetField forwards to the form.
func (p *Contact) SetField(name, value string) error {
	if p.form == nil || !p.mounted {
		return ErrNotIdle
	}
	return p.form.SetField(name, value)
}

// Submit forwards to the form.
func (p *Contact) Submit() error {
	if p.form == nil || !p.mounted {
		return ErrNotIdle
	}
	return p.form.Submit()
}

func (p *Contact) View() any {
	c := p.catalog()
	s := StaggerFor(router.PageContact)
	items := []ContactItem{
		{Icon: "mail", Label: "Email", Value: c.Personal.Email, Href: template.URL("mailto:" + c.Personal.Email), Color: "text-red-600 dark:text-red-400"},
		{Icon: "phone", Label: "Phone", Value: c.Personal.Phone, Href: template.URL("tel:" + c.Personal.Phone), Color: "text-green-600 dark:text-green-400"},
		{Icon: "map-pin", Label: "Location", Value: c.Personal.Location, Href: "#", Color: "text-blue-600 dark:text-blue-400"},
	}

	// Services fade in after the contact cards.
	services := make([]Staggered[string], len(c.Copy.ContactServices))
	for i, svc := range c.Copy.ContactServices {
		services[i] = Staggered[string]{Item: svc, Delay: 0.5 + float64(i)*0.1}
	}

	v := ContactView{
		Intro:    c.Copy.ContactIntro,
		Items:    stagger(s, items),
		Social:   c.Social,
		Services: services,
		Form:     FormState{Phase: PhaseIdle},
		Email:    c.Personal.Email,
		Resume:   c.Personal.Resume,
		Stagger:  s,
	}
	if p.form != nil {
		v.Form = p.form.State()
	}
	return v
}
