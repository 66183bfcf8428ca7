package tui

import (
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/notifications"
	"github.com/khadija-altaf/folio/internal/pages"
)

// View renders the header, the page, the toasts and the key help.
func (m Model) View() string {
	st := newStyles(m.snap.Dark)

	var b strings.Builder
	b.WriteString(m.renderHeader(st))
	b.WriteString("\n")
	if m.showError {
		b.WriteString(st.errBanner.Render(m.errorMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if toasts := m.renderToasts(st); toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}
	b.WriteString(st.footer.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderHeader(st styles) string {
	tabs := []string{st.brand.Render(m.snap.Footer.Initials)}
	for i, link := range m.snap.Nav {
		label := fmt.Sprintf("%d %s", i+1, link.Label)
		if link.Active {
			tabs = append(tabs, st.activeTab.Render(label))
		} else {
			tabs = append(tabs, st.tab.Render(label))
		}
	}
	mode := "☀ light"
	if m.snap.Dark {
		mode = "☾ dark"
	}
	tabs = append(tabs, st.muted.Render(mode))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderToasts(st styles) string {
	var out []string
	for _, t := range m.snap.Toasts {
		box := st.toast
		if t.Variant == notifications.VariantDestructive {
			box = st.errToast
		}
		out = append(out, box.Render(st.subtitle.Render(t.Title)+"\n"+st.text.Render(t.Description)))
	}
	return strings.Join(out, "\n")
}

// renderPage renders the body of the shown page.
func (m Model) renderPage() string {
	st := newStyles(m.snap.Dark)
	var body string
	switch v := m.snap.Page.(type) {
	case pages.HomeView:
		body = m.renderHome(st, v)
	case pages.AboutView:
		body = m.renderAbout(st, v)
	case pages.SkillsView:
		body = m.renderSkills(st, v)
	case pages.ExperienceView:
		body = m.renderExperience(st, v)
	case pages.ProjectsView:
		body = m.renderProjects(st, v)
	case pages.CertificationsView:
		body = m.renderCertifications(st, v)
	case pages.EducationView:
		body = m.renderEducation(st, v)
	case pages.ContactView:
		body = m.renderContact(st, v)
	}
	return body + "\n\n" + m.renderFooter(st)
}

func (m Model) renderHome(st styles, v pages.HomeView) string {
	var b strings.Builder
	b.WriteString(st.title.Render(v.Name) + "\n")
	b.WriteString(st.subtitle.Render(v.Designation) + "\n")
	b.WriteString(st.muted.Render(v.Subtitle) + "\n\n")
	typed := v.Typed
	if !v.TypingDone {
		typed += "|"
	}
	b.WriteString(st.text.Render(typed) + "\n\n")
	var tools []string
	for _, t := range v.Tools {
		tools = append(tools, st.badge.Render(t.Item))
	}
	b.WriteString(strings.Join(tools, " ") + "\n\n")
	for _, block := range v.Blocks {
		b.WriteString(st.item.Render("• "+block.Item) + "\n")
	}
	b.WriteString("\n" + st.muted.Render("enter: get in touch · resume: "+v.Resume))
	return b.String()
}

func (m Model) renderAbout(st styles, v pages.AboutView) string {
	var b strings.Builder
	b.WriteString(st.title.Render("About Me") + "\n")
	b.WriteString(st.muted.Render(v.Intro) + "\n\n")
	b.WriteString(st.text.Render(plainText(v.Bio)) + "\n\n")
	for _, c := range v.Cards {
		b.WriteString(st.item.Render(fmt.Sprintf("%-12s %s", c.Item.Label, c.Item.Value)) + "\n")
	}
	b.WriteString("\n" + m.renderStats(st, v.Stats))
	if v.BeyondTitle != "" {
		b.WriteString("\n\n" + st.subtitle.Render(v.BeyondTitle) + "\n")
		b.WriteString(st.text.Render(plainText(v.Beyond)))
	}
	return b.String()
}

func (m Model) renderSkills(st styles, v pages.SkillsView) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Skills & Expertise") + "\n")
	b.WriteString(st.muted.Render(v.Intro) + "\n\n")
	for i, c := range v.Categories {
		label := c.Name
		if c.Active {
			label += " ✓"
		}
		b.WriteString(m.renderItem(st, i, label) + "\n")
	}
	b.WriteString("\n")
	for _, s := range v.Levels {
		b.WriteString(fmt.Sprintf("  %-28s %s %3d%%\n", s.Item.Name, st.bar.Render(levelBar(s.Item.Level, 20)), s.Item.Level))
	}
	for _, t := range v.Tools {
		b.WriteString(st.item.Render(st.subtitle.Render(t.Item.Name)+" "+st.muted.Render(t.Item.Description)) + "\n")
	}
	for _, p := range v.Philosophy {
		b.WriteString("\n" + st.subtitle.Render(p.Title) + "\n" + st.text.Render(plainText(p.Body)) + "\n")
	}
	return b.String()
}

func (m Model) renderExperience(st styles, v pages.ExperienceView) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Professional Experience") + "\n")
	b.WriteString(st.muted.Render(v.Intro) + "\n\n")
	for _, e := range v.Timeline {
		b.WriteString(st.subtitle.Render(e.Item.Title) + " · " + st.text.Render(e.Item.Company) + "\n")
		b.WriteString(st.muted.Render(strings.Join(nonEmpty(e.Item.Period, e.Item.Location, e.Item.Type), " · ")) + "\n")
		b.WriteString(st.text.Render(e.Item.Description) + "\n")
		for _, a := range e.Item.Achievements {
			b.WriteString(st.item.Render("• "+a) + "\n")
		}
		if !e.Item.IsLast {
			b.WriteString(st.muted.Render("  │") + "\n")
		}
	}
	b.WriteString("\n" + m.renderStats(st, v.Stats))
	return b.String()
}

func (m Model) renderProjects(st styles, v pages.ProjectsView) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Featured Projects") + "\n")
	b.WriteString(st.muted.Render(v.Intro) + "\n\n")
	var filters []string
	for _, f := range v.Filters {
		if f.Active {
			filters = append(filters, st.badge.Render(f.Name))
		} else {
			filters = append(filters, st.muted.Render(f.Name))
		}
	}
	b.WriteString(strings.Join(filters, "  ") + "\n\n")

	if p := v.Selected; p != nil {
		var d strings.Builder
		d.WriteString(st.subtitle.Render(p.Title) + "  " + st.badge.Render(p.Status) + "\n\n")
		d.WriteString(st.text.Render(p.Description) + "\n\n")
		d.WriteString(st.muted.Render(strings.Join(p.Technologies, ", ")) + "\n")
		for _, a := range p.Achievements {
			d.WriteString("• " + a + "\n")
		}
		if p.Snippet != "" {
			d.WriteString("\n" + st.muted.Render(p.Snippet) + "\n")
		}
		for _, link := range nonEmpty(p.GitHub, p.Link) {
			d.WriteString("\n" + st.muted.Render(link))
		}
		d.WriteString("\n" + st.muted.Render("esc: close"))
		b.WriteString(st.modal.Render(d.String()))
		return b.String()
	}

	for i, c := range v.Cards {
		label := fmt.Sprintf("%s  [%s]", c.Item.Title, c.Item.Status)
		b.WriteString(m.renderItem(st, i, label) + "\n")
		b.WriteString(st.item.Render(st.muted.Render(strings.Join(c.Item.Technologies, ", "))) + "\n")
	}
	b.WriteString("\n" + st.muted.Render("enter: details · f: filter"))
	return b.String()
}

func (m Model) renderCertifications(st styles, v pages.CertificationsView) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Certifications") + "\n")
	b.WriteString(st.muted.Render(v.Intro) + "\n\n")
	for i, c := range v.Cards {
		var face string
		if c.Item.Flipped {
			face = "Skills: " + strings.Join(c.Item.Skills, ", ")
		} else {
			face = strings.Join(nonEmpty(c.Item.Title, c.Item.Issuer, c.Item.Date), " · ")
		}
		b.WriteString(m.renderItem(st, i, face) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(st.success.Render(fmt.Sprintf("%d Completed", v.Counters.Completed)) + "   ")
	b.WriteString(st.warning.Render(fmt.Sprintf("%d In Progress", v.Counters.InProgress)) + "   ")
	b.WriteString(st.subtitle.Render(v.Counters.Planned+" Planned") + "\n")
	b.WriteString("\n" + st.muted.Render("enter: flip card"))
	return b.String()
}

func (m Model) renderEducation(st styles, v pages.EducationView) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Education") + "\n")
	b.WriteString(st.muted.Render(v.Intro) + "\n\n")
	for _, c := range v.Cards {
		var d strings.Builder
		d.WriteString(st.subtitle.Render(c.Item.Degree) + "  " + st.badge.Render(c.Item.StatusLabel) + "\n")
		d.WriteString(st.text.Render(c.Item.Institution) + "\n")
		d.WriteString(st.muted.Render(strings.Join(nonEmpty(c.Item.Period, gpa(c.Item.GPA), c.Item.Minor), " · ")))
		for _, a := range c.Item.Achievements {
			d.WriteString("\n• " + a)
		}
		if len(c.Item.Focus) > 0 {
			d.WriteString("\n" + st.muted.Render("Focus: "+strings.Join(c.Item.Focus, ", ")))
		}
		b.WriteString(st.card.Render(d.String()) + "\n")
	}
	for _, p := range v.Benefits {
		b.WriteString("\n" + st.subtitle.Render(p.Title) + "\n" + st.text.Render(plainText(p.Body)) + "\n")
	}
	return b.String()
}

func (m Model) renderContact(st styles, v pages.ContactView) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Get In Touch") + "\n")
	b.WriteString(st.muted.Render(v.Intro) + "\n\n")
	for _, it := range v.Items {
		b.WriteString(st.item.Render(fmt.Sprintf("%-10s %s", it.Item.Label, it.Item.Value)) + "\n")
	}
	b.WriteString("\n")

	switch v.Form.Phase {
	case pages.PhaseSubmitting:
		b.WriteString(st.text.Render(m.spinner.View() + " Sending..."))
	case pages.PhaseSubmitted:
		b.WriteString(st.success.Render("✓ Message Sent!") + "\n")
		b.WriteString(st.muted.Render("Thank you for reaching out. I'll get back to you soon."))
	default:
		var f strings.Builder
		for i, name := range inputFields {
			f.WriteString(st.muted.Render(fieldLabel(name)) + "\n" + m.inputs[i].View() + "\n")
		}
		f.WriteString(st.muted.Render(fieldLabel(pages.FieldMessage)) + "\n" + m.message.View() + "\n")
		if m.editing {
			f.WriteString(st.muted.Render("tab: next field · ctrl+s: send · esc: done"))
		} else {
			f.WriteString(st.muted.Render("enter: write a message"))
		}
		b.WriteString(st.card.Render(f.String()))
	}
	return b.String()
}

func (m Model) renderFooter(st styles) string {
	f := m.snap.Footer
	lines := []string{
		st.subtitle.Render(f.Name) + " · " + st.muted.Render(f.Designation),
		st.muted.Render(strings.Join(nonEmpty(f.Location, f.Email, f.Phone), " · ")),
		st.muted.Render(f.Copyright),
	}
	return st.footer.Render(strings.Join(lines, "\n"))
}

// renderItem renders a selectable line, highlighted under the cursor.
func (m Model) renderItem(st styles, i int, label string) string {
	if i == m.cursor {
		return st.selected.Render(label)
	}
	return st.item.Render(label)
}

func (m Model) renderStats(st styles, stats []catalog.Stat) string {
	var out []string
	for _, s := range stats {
		out = append(out, st.subtitle.Render(s.Value)+" "+st.muted.Render(s.Label))
	}
	return strings.Join(out, "   ")
}

// levelBar draws a proficiency bar of width cells.
func levelBar(level, width int) string {
	level = min(max(level, 0), 100)
	filled := level * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// plainText strips markup from rendered prose.
func plainText(h template.HTML) string {
	s := tagPattern.ReplaceAllString(string(h), "")
	return strings.TrimSpace(html.UnescapeString(s))
}

func gpa(v string) string {
	if v == "" {
		return ""
	}
	return "GPA " + v
}

func nonEmpty(vals ...string) []string {
	out := vals[:0:0]
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
