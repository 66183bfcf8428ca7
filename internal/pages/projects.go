package pages

import (
	"html/template"

	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/router"
)

// Project filter ids.
const (
	FilterAll        = "all"
	FilterAutomation = catalog.CategoryAutomation
	FilterDashboard  = catalog.CategoryDashboard
)

// Filter is one option of the project filter.
type Filter struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

var projectFilters = []Filter{
	{ID: FilterAll, Name: "All Projects", Icon: "activity"},
	{ID: FilterAutomation, Name: "Automation", Icon: "test-tube"},
	{ID: FilterDashboard, Name: "Dashboards", Icon: "code"},
}

// StatusClass returns the badge style of a project status.
func StatusClass(status string) string {
	switch status {
	case catalog.StatusActive:
		return "bg-green-100 text-green-800 dark:bg-green-900 dark:text-green-300"
	case catalog.StatusInProduction:
		return "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-300"
	case catalog.StatusCompleted:
		return "bg-purple-100 text-purple-800 dark:bg-purple-900 dark:text-purple-300"
	default:
		return "bg-gray-100 text-gray-800 dark:bg-gray-900 dark:text-gray-300"
	}
}

// Projects is the project grid with a filter and a detail modal.
type Projects struct {
	base
	filter   string
	selected *catalog.ProjectEntry
}

// ProjectCard is a project with its badge style.
type ProjectCard struct {
	catalog.ProjectEntry
	BadgeClass string `json:"badge_class"`
}

// ProjectModal is the open project detail.
type ProjectModal struct {
	ProjectCard
	SnippetHTML template.HTML `json:"snippet_html,omitempty"`
}

// ProjectsView is the rendered state of Projects.
type ProjectsView struct {
	Intro    string                   `json:"intro"`
	Filters  []Filter                 `json:"filters"`
	Filter   string                   `json:"filter"`
	Cards    []Staggered[ProjectCard] `json:"cards"`
	Selected *ProjectModal            `json:"selected"`
	CTAPath  string                   `json:"cta_path"`
	Stagger  Stagger                  `json:"stagger"`
}

func (p *Projects) ID() string { return router.PageProjects }

// Select opens the modal for project id. An unknown id leaves the selection
// unchanged and reports false.
func (p *Projects) Select(id int) bool {
	entry, ok := p.catalog().Project(id)
	if !ok {
		return false
	}
	p.selected = &entry
	return true
}

// Close clears the selection.
func (p *Projects) Close() { p.selected = nil }

// Selected returns the open project, if any.
func (p *Projects) Selected() (catalog.ProjectEntry, bool) {
	if p.selected == nil {
		return catalog.ProjectEntry{}, false
	}
	return *p.selected, true
}

// SetFilter changes the grid filter. Unknown ids are ignored and reported
// as false.
func (p *Projects) SetFilter(id string) bool {
	for _, f := range projectFilters {
		if f.ID == id {
			p.filter = id
			return true
		}
	}
	return false
}

// Filter returns the active filter id.
func (p *Projects) Filter() string {
	if p.filter == "" {
		return FilterAll
	}
	return p.filter
}

func (p *Projects) View() any {
	c := p.catalog()
	s := StaggerFor(router.PageProjects)
	active := p.Filter()

	filters := make([]Filter, len(projectFilters))
	for i, f := range projectFilters {
		f.Active = f.ID == active
		filters[i] = f
	}

	var cards []ProjectCard
	for _, proj := range c.ProjectsIn(active) {
		cards = append(cards, ProjectCard{ProjectEntry: proj, BadgeClass: StatusClass(proj.Status)})
	}

	v := ProjectsView{
		Intro:   c.Copy.ProjectsIntro,
		Filters: filters,
		Filter:  active,
		Cards:   stagger(s, cards),
		CTAPath: "/contact",
		Stagger: s,
	}
	if p.selected != nil {
		m := &ProjectModal{ProjectCard: ProjectCard{ProjectEntry: *p.selected, BadgeClass: StatusClass(p.selected.Status)}}
		if p.selected.Snippet != "" {
			m.SnippetHTML = catalog.Markdown(p.selected.Snippet)
		}
		v.Selected = m
	}
	return v
}
