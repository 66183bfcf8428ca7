package pages

import (
	"html/template"

	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/router"
)

// Skill category ids.
const (
	CategoryTesting     = "testing"
	CategoryTools       = "tools"
	CategoryDevelopment = "development"
)

// Category is one tab of the Skills page.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

var skillCategories = []Category{
	{ID: CategoryTesting, Name: "Testing Skills", Icon: "test-tube", Color: "from-green-500 to-emerald-600"},
	{ID: CategoryTools, Name: "Tools & Technologies", Icon: "bug", Color: "from-blue-500 to-cyan-600"},
	{ID: CategoryDevelopment, Name: "Development Skills", Icon: "code", Color: "from-purple-500 to-pink-600"},
}

// Skills shows one skill category at a time.
type Skills struct {
	base
	active string
}

// PhilosophyBlock is a rendered prose section.
type PhilosophyBlock struct {
	Title string        `json:"title"`
	Body  template.HTML `json:"body"`
}

// SkillsView is the rendered state of Skills. Exactly one of Levels and
// Tools is populated, depending on the active category.
type SkillsView struct {
	Intro      string                          `json:"intro"`
	Categories []Category                      `json:"categories"`
	Active     string                          `json:"active"`
	Levels     []Staggered[catalog.SkillEntry] `json:"levels,omitempty"`
	Tools      []Staggered[catalog.ToolEntry]  `json:"tools,omitempty"`
	Philosophy []PhilosophyBlock               `json:"philosophy"`
	Stagger    Stagger                         `json:"stagger"`
}

func (p *Skills) ID() string { return router.PageSkills }

// Active returns the selected category id.
func (p *Skills) Active() string {
	if p.active == "" {
		return CategoryTesting
	}
	return p.active
}

// SelectCategory switches the visible category. Unknown ids are ignored and
// reported as false.
func (p *Skills) SelectCategory(id string) bool {
	for _, c := range skillCategories {
		if c.ID == id {
			p.active = id
			return true
		}
	}
	return false
}

func (p *Skills) View() any {
	c := p.catalog()
	s := StaggerFor(router.PageSkills)
	active := p.Active()

	cats := make([]Category, len(skillCategories))
	for i, cat := range skillCategories {
		cat.Active = cat.ID == active
		cats[i] = cat
	}

	v := SkillsView{
		Intro:      c.Copy.SkillsIntro,
		Categories: cats,
		Active:     active,
		Stagger:    s,
	}
	switch active {
	case CategoryTools:
		v.Tools = stagger(s, c.Skills.Tools)
	case CategoryDevelopment:
		v.Levels = stagger(s, c.Skills.Development)
	default:
		v.Levels = stagger(s, c.Skills.Testing)
	}
	for _, sec := range c.Copy.SkillsPhilosophy {
		v.Philosophy = append(v.Philosophy, PhilosophyBlock{Title: sec.Title, Body: catalog.Markdown(sec.Body)})
	}
	return v
}
