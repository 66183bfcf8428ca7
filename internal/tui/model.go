// Package tui browses the portfolio in the terminal. It drives the same
// Session as the web front end, so typing, the contact form phases and toasts
// behave identically.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/khadija-altaf/folio/internal/app"
	"github.com/khadija-altaf/folio/internal/pages"
	"github.com/khadija-altaf/folio/internal/router"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// chromeHeight is the space taken by the header and the help line.
	chromeHeight = 6
)

// contact form inputs, in focus order. The message uses the text area.
var inputFields = []string{pages.FieldName, pages.FieldEmail, pages.FieldSubject}

// Model is the terminal front end of one session.
type Model struct {
	session *app.Session
	events  <-chan app.Event
	cancel  func()
	snap    app.Snapshot

	// UI state
	cursor   int
	editing  bool
	focus    int
	showHelp bool

	// Components
	inputs   []textinput.Model
	message  textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	// Error banner
	showError bool
	errorMsg  string

	width  int
	height int
}

// New returns a Model for s, showing Home if no page is shown yet.
func New(s *app.Session) (Model, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return Model{}, err
	}
	if snap.PageID == "" {
		if err := s.Navigate("/"); err != nil {
			return Model{}, err
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	inputs := make([]textinput.Model, len(inputFields))
	for i, name := range inputFields {
		in := textinput.New()
		in.Placeholder = fieldLabel(name)
		in.CharLimit = 200
		in.Width = 40
		inputs[i] = in
	}
	msg := textarea.New()
	msg.Placeholder = fieldLabel(pages.FieldMessage)
	msg.SetWidth(60)
	msg.SetHeight(4)

	events, cancel := s.Subscribe()
	m := Model{
		session:  s,
		events:   events,
		cancel:   cancel,
		inputs:   inputs,
		message:  msg,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		spinner:  sp,
		help:     help.New(),
		keys:     defaultKeyMap(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	if err := m.refresh(); err != nil {
		cancel()
		return Model{}, err
	}
	return m, nil
}

// Init starts listening for session events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listen(), m.spinner.Tick)
}

// listen waits for the next session event.
func (m Model) listen() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return sessionClosedMsg{}
		}
		return eventMsg(ev)
	}
}

// refresh reloads the snapshot. The form inputs follow the session's form
// unless the user is editing them.
func (m *Model) refresh() error {
	snap, err := m.session.Snapshot()
	if err != nil {
		return err
	}
	if snap.PageID != m.snap.PageID {
		m.cursor = 0
		m.stopEditing()
		m.viewport.GotoTop()
	}
	m.snap = snap
	if n := m.itemCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	if v, ok := snap.Page.(pages.ContactView); ok && !m.editing {
		m.setInputs(v.Form.Fields)
	}
	m.viewport.SetContent(m.renderPage())
	return nil
}

// Snapshot returns the state last loaded from the session.
func (m Model) Snapshot() app.Snapshot { return m.snap }

// Close ends the event subscription.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// itemCount returns the number of selectable items on the shown page.
func (m Model) itemCount() int {
	switch v := m.snap.Page.(type) {
	case pages.SkillsView:
		return len(v.Categories)
	case pages.ProjectsView:
		return len(v.Cards)
	case pages.CertificationsView:
		return len(v.Cards)
	default:
		return 0
	}
}

// pageIndex returns the position of the shown page in the route table.
func (m Model) pageIndex() int {
	for i, r := range router.Routes() {
		if r.Page == m.snap.PageID {
			return i
		}
	}
	return 0
}

func (m *Model) setError(err error) {
	m.showError = true
	switch {
	case errors.Is(err, pages.ErrInvalidForm):
		m.errorMsg = "Please fill in every field before sending."
	case errors.Is(err, pages.ErrNotIdle):
		m.errorMsg = "Your message is still being sent."
	default:
		m.errorMsg = err.Error()
	}
}

func (m *Model) clearError() {
	m.showError = false
	m.errorMsg = ""
}

func (m *Model) setInputs(f pages.Fields) {
	values := []string{f.Name, f.Email, f.Subject}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
	}
	m.message.SetValue(f.Message)
}

func (m Model) fields() map[string]string {
	out := make(map[string]string, len(inputFields)+1)
	for i, name := range inputFields {
		out[name] = m.inputs[i].Value()
	}
	out[pages.FieldMessage] = m.message.Value()
	return out
}

func (m *Model) startEditing() tea.Cmd {
	m.editing = true
	m.focus = 0
	return m.focusField()
}

func (m *Model) stopEditing() {
	m.editing = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
}

// focusField focuses input m.focus and blurs the others.
func (m *Model) focusField() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if m.focus == len(m.inputs) {
		cmd = m.message.Focus()
	} else {
		m.message.Blur()
	}
	return cmd
}

func fieldLabel(name string) string {
	switch name {
	case pages.FieldName:
		return "Your Name"
	case pages.FieldEmail:
		return "Email Address"
	case pages.FieldSubject:
		return "Subject"
	case pages.FieldMessage:
		return "Your Message"
	}
	return name
}
