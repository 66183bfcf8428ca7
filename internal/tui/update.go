package tui

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/khadija-altaf/folio/internal/app"
	"github.com/khadija-altaf/folio/internal/pages"
	"github.com/khadija-altaf/folio/internal/router"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.viewport.SetContent(m.renderPage())
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case eventMsg:
		if err := m.refresh(); err != nil {
			return m, m.quit()
		}
		return m, m.listen()

	case sessionClosedMsg:
		return m, m.quit()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.submitting() {
			m.viewport.SetContent(m.renderPage())
		}
		return m, cmd
	}

	return m.updateInputs(msg)
}

// handleKeys handles keys while browsing.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	routes := router.Routes()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m.navigate(routes[(m.pageIndex()+1)%len(routes)].Path)

	case key.Matches(msg, m.keys.Prev):
		return m.navigate(routes[(m.pageIndex()+len(routes)-1)%len(routes)].Path)

	case key.Matches(msg, m.keys.Jump):
		n, _ := strconv.Atoi(msg.String())
		if n >= 1 && n <= len(routes) {
			return m.navigate(routes[n-1].Path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.viewport.SetContent(m.renderPage())
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
			m.viewport.SetContent(m.renderPage())
		}
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		return m.activate()

	case key.Matches(msg, m.keys.Back):
		if m.showError {
			m.clearError()
			return m, nil
		}
		if v, ok := m.snap.Page.(pages.ProjectsView); ok && v.Selected != nil {
			return m.apply(m.session.CloseProject())
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		v, ok := m.snap.Page.(pages.ProjectsView)
		if !ok {
			return m, nil
		}
		return m.apply(m.session.SetProjectFilter(nextFilter(v)))

	case key.Matches(msg, m.keys.Theme):
		_, err := m.session.ToggleTheme(context.Background())
		return m.apply(err)

	case key.Matches(msg, m.keys.Dismiss):
		if len(m.snap.Toasts) == 0 {
			return m, nil
		}
		newest := m.snap.Toasts[len(m.snap.Toasts)-1]
		_, err := m.session.DismissToast(newest.ID)
		return m.apply(err)

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleEditKeys handles keys while the contact form has focus.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, m.quit()

	case "esc":
		// Keep what was typed in the session's form.
		for name, value := range m.fields() {
			_ = m.session.SetContactField(name, value)
		}
		m.stopEditing()
		return m.apply(nil)

	case "tab", "shift+tab":
		n := len(m.inputs) + 1
		if msg.String() == "tab" {
			m.focus = (m.focus + 1) % n
		} else {
			m.focus = (m.focus + n - 1) % n
		}
		cmd := m.focusField()
		m.viewport.SetContent(m.renderPage())
		return m, cmd
	}

	if key.Matches(msg, m.keys.Submit) {
		return m.submit()
	}
	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused form input.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.editing {
		return m, nil
	}
	var cmd tea.Cmd
	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	} else {
		m.message, cmd = m.message.Update(msg)
	}
	m.viewport.SetContent(m.renderPage())
	return m, cmd
}

// activate acts on the item under the cursor.
func (m Model) activate() (tea.Model, tea.Cmd) {
	switch v := m.snap.Page.(type) {
	case pages.HomeView:
		return m.navigate(v.ContactPath)

	case pages.SkillsView:
		if m.cursor < len(v.Categories) {
			return m.apply(m.session.SelectSkillCategory(v.Categories[m.cursor].ID))
		}

	case pages.ProjectsView:
		if v.Selected != nil {
			return m.apply(m.session.CloseProject())
		}
		if m.cursor < len(v.Cards) {
			return m.apply(m.session.SelectProject(v.Cards[m.cursor].Item.ID))
		}

	case pages.CertificationsView:
		if m.cursor < len(v.Cards) {
			return m.apply(m.session.FlipCertification(v.Cards[m.cursor].Item.ID))
		}

	case pages.ContactView:
		if v.Form.Phase != pages.PhaseIdle {
			return m, nil
		}
		m.clearError()
		cmd := m.startEditing()
		m.viewport.SetContent(m.renderPage())
		return m, cmd
	}
	return m, nil
}

// submit copies the inputs into the session's form and sends it.
func (m Model) submit() (tea.Model, tea.Cmd) {
	var err error
	for _, name := range append(append([]string(nil), inputFields...), pages.FieldMessage) {
		if err = m.session.SetContactField(name, m.fields()[name]); err != nil {
			break
		}
	}
	if err == nil {
		err = m.session.SubmitContact()
	}
	if err == nil {
		m.stopEditing()
		m.clearError()
		model, _ := m.apply(nil)
		return model, m.spinner.Tick
	}
	return m.apply(err)
}

func (m Model) navigate(path string) (tea.Model, tea.Cmd) {
	m.clearError()
	return m.apply(m.session.Navigate(path))
}

// apply reloads the snapshot after a session call and reports err.
func (m Model) apply(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, app.ErrSessionClosed) {
		return m, m.quit()
	}
	if err != nil {
		m.setError(err)
	}
	if rerr := m.refresh(); rerr != nil {
		return m, m.quit()
	}
	return m, nil
}

func (m Model) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}

func (m Model) submitting() bool {
	v, ok := m.snap.Page.(pages.ContactView)
	return ok && v.Form.Phase == pages.PhaseSubmitting
}

// nextFilter returns the filter after the active one.
func nextFilter(v pages.ProjectsView) string {
	for i, f := range v.Filters {
		if f.ID == v.Filter {
			return v.Filters[(i+1)%len(v.Filters)].ID
		}
	}
	return pages.FilterAll
}
