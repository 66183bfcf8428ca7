package app

import (
	"fmt"

	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/notifications"
	"github.com/khadija-altaf/folio/internal/pages"
	"github.com/khadija-altaf/folio/internal/router"
)

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Footer is the static footer content.
type Footer struct {
	Initials    string               `json:"initials"`
	Name        string               `json:"name"`
	Designation string               `json:"designation"`
	Blurb       string               `json:"blurb"`
	Location    string               `json:"location"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	Social      []catalog.SocialLink `json:"social"`
	Nav         []router.Route       `json:"nav"`
	Services    []string             `json:"services"`
	Copyright   string               `json:"copyright"`
	Stagger     pages.Stagger        `json:"stagger"`
}

// Snapshot is an immutable view of a session.
type Snapshot struct {
	SessionID  string                `json:"session_id"`
	Dark       bool                  `json:"dark"`
	Theme      string                `json:"theme"`
	ThemeClass string                `json:"theme_class"`
	Route      router.Route          `json:"route"`
	Transition router.State          `json:"transition"`
	PageID     string                `json:"page_id"`
	Page       any                   `json:"page"`
	Toasts     []notifications.Toast `json:"toasts"`
	Nav        []NavLink             `json:"nav"`
	Footer     Footer                `json:"footer"`
}

// footerPages are the routes linked from the footer.
var footerPages = []string{
	router.PageHome,
	router.PageAbout,
	router.PageSkills,
	router.PageExperience,
	router.PageProjects,
	router.PageContact,
}

// NavLinks returns the navigation bar with active marked.
func NavLinks(active string) []NavLink {
	routes := router.Routes()
	out := make([]NavLink, len(routes))
	for i, r := range routes {
		out[i] = NavLink{Path: r.Path, Label: r.Label, Active: r.Path == active}
	}
	return out
}

// BuildFooter returns the footer for c in year.
func BuildFooter(c *catalog.Catalog, year int) Footer {
	nav := make([]router.Route, 0, len(footerPages))
	for _, id := range footerPages {
		if r, ok := router.ByPage(id); ok {
			nav = append(nav, r)
		}
	}
	return Footer{
		Initials:    c.Initials(),
		Name:        c.Personal.Name,
		Designation: c.Personal.Designation,
		Blurb:       c.Copy.FooterBlurb,
		Location:    c.Personal.Location,
		Email:       c.Personal.Email,
		Phone:       c.Personal.Phone,
		Social:      c.Social,
		Nav:         nav,
		Services:    c.Copy.FooterServices,
		Copyright:   fmt.Sprintf("© %d %s. All rights reserved.", year, c.Personal.Name),
		Stagger:     pages.FooterStagger,
	}
}
