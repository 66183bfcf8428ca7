// Package router maps URL paths to pages and tracks the page transition.
package router

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned for paths outside the route table.
var ErrNotFound = errors.New("route not found")

// Page ids.
const (
	PageHome           = "home"
	PageAbout          = "about"
	PageSkills         = "skills"
	PageExperience     = "experience"
	PageProjects       = "projects"
	PageCertifications = "certifications"
	PageEducation      = "education"
	PageContact        = "contact"
)

// Route binds a path to a page.
type Route struct {
	Path  string `json:"path"`
	Page  string `json:"page"`
	Label string `json:"label"`
}

var table = []Route{
	{Path: "/", Page: PageHome, Label: "Home"},
	{Path: "/about", Page: PageAbout, Label: "About"},
	{Path: "/skills", Page: PageSkills, Label: "Skills"},
	{Path: "/experience", Page: PageExperience, Label: "Experience"},
	{Path: "/projects", Page: PageProjects, Label: "Projects"},
	{Path: "/certifications", Page: PageCertifications, Label: "Certifications"},
	{Path: "/education", Page: PageEducation, Label: "Education"},
	{Path: "/contact", Page: PageContact, Label: "Contact"},
}

// Routes returns the route table in navigation order.
func Routes() []Route {
	return append([]Route(nil), table...)
}

// Lookup returns the route for path. Matching is exact and case-sensitive.
func Lookup(path string) (Route, error) {
	for _, r := range table {
		if r.Path == path {
			return r, nil
		}
	}
	return Route{}, fmt.Errorf("%w: %s", ErrNotFound, path)
}

// ByPage returns the route serving page id.
func ByPage(page string) (Route, bool) {
	for _, r := range table {
		if r.Page == page {
			return r, true
		}
	}
	return Route{}, false
}
