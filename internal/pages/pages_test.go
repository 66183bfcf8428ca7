package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/clock"
	"github.com/khadija-altaf/folio/internal/notifications"
	"github.com/khadija-altaf/folio/internal/router"
	"github.com/khadija-altaf/folio/internal/testutil"
)

type emitted struct {
	kind    string
	payload any
}

type harness struct {
	clock      *testutil.FakeClock
	host       Host
	pageScope  *clock.Scope
	background *clock.Scope
	toasts     *notifications.Center
	events     []emitted
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fc := testutil.NewFakeClock()
	h := &harness{
		clock:      fc,
		pageScope:  clock.NewScope(fc, nil),
		background: clock.NewScope(fc, nil),
	}
	h.toasts = notifications.NewCenter(h.background, time.Minute)
	h.host = Host{
		Catalog:    catalog.Default(),
		Scope:      h.pageScope,
		Background: h.background,
		Toasts:     h.toasts,
		Timing:     DefaultTiming(),
		Emit: func(kind string, payload any) {
			h.events = append(h.events, emitted{kind: kind, payload: payload})
		},
	}
	return h
}

// unmount mirrors what the session does when leaving a page.
func (h *harness) unmount(p Page) {
	p.Unmount()
	h.pageScope.Release()
}

func (h *harness) phases() []Phase {
	var out []Phase
	for _, e := range h.events {
		if e.kind == EventContact {
			out = append(out, e.payload.(FormState).Phase)
		}
	}
	return out
}

func TestNewCoversEveryRoute(t *testing.T) {
	for _, r := range router.Routes() {
		p, err := New(r.Page)
		require.NoError(t, err, r.Page)
		assert.Equal(t, r.Page, p.ID())
	}
	_, err := New("blog")
	assert.Error(t, err)
}

func TestStaggerDelay(t *testing.T) {
	s := StaggerFor(router.PageExperience)
	assert.InDelta(t, 0.2, s.Delay(0), 1e-9)
	assert.InDelta(t, 0.8, s.Delay(2), 1e-9)

	v := (&Skills{}).View().(SkillsView)
	require.Len(t, v.Levels, 5)
	assert.InDelta(t, 0.2, v.Levels[0].Delay, 1e-9)
	assert.InDelta(t, 0.6, v.Levels[4].Delay, 1e-9)
}

func TestHomeTypingShortTagline(t *testing.T) {
	h := newHarness(t)
	h.host.Catalog.Personal.Tagline = "QA"

	home := &Home{}
	home.Mount(h.host)
	assert.Equal(t, "", home.Typed())
	assert.False(t, home.Done())

	h.clock.Advance(50 * time.Millisecond)
	assert.Equal(t, "Q", home.Typed())

	h.clock.Advance(50 * time.Millisecond)
	assert.Equal(t, "QA", home.Typed())
	assert.True(t, home.Done())
	assert.Equal(t, 0, h.pageScope.Pending())

	h.clock.Advance(time.Second)
	assert.Equal(t, "QA", home.Typed())
	assert.Len(t, h.events, 2)

	v := home.View().(HomeView)
	assert.Equal(t, "QA", v.Typed)
	assert.True(t, v.TypingDone)
}

func TestHomeTypingFullTagline(t *testing.T) {
	h := newHarness(t)
	home := &Home{}
	home.Mount(h.host)

	tagline := h.host.Catalog.Personal.Tagline
	h.clock.Advance(time.Duration(len([]rune(tagline))) * 50 * time.Millisecond)
	assert.Equal(t, tagline, home.Typed())
	assert.True(t, home.Done())
}

func TestHomeSetTaglineRestarts(t *testing.T) {
	h := newHarness(t)
	h.host.Catalog.Personal.Tagline = "abcdef"
	home := &Home{}
	home.Mount(h.host)

	h.clock.Advance(150 * time.Millisecond)
	require.Equal(t, "abc", home.Typed())

	home.SetTagline("xy")
	assert.Equal(t, "", home.Typed())
	h.clock.Advance(100 * time.Millisecond)
	assert.Equal(t, "xy", home.Typed())

	// Same text does not restart.
	home.SetTagline("xy")
	assert.Equal(t, "xy", home.Typed())
}

func TestHomeStopsTypingOnUnmount(t *testing.T) {
	h := newHarness(t)
	home := &Home{}
	home.Mount(h.host)

	h.clock.Advance(100 * time.Millisecond)
	typed := home.Typed()
	events := len(h.events)

	h.unmount(home)
	h.clock.Advance(10 * time.Second)

	assert.Equal(t, typed, home.Typed())
	assert.Len(t, h.events, events)
	assert.Equal(t, 0, h.clock.Pending())
}

func TestHomeEmptyTagline(t *testing.T) {
	h := newHarness(t)
	h.host.Catalog.Personal.Tagline = ""
	home := &Home{}
	home.Mount(h.host)

	assert.True(t, home.Done())
	assert.Equal(t, 0, h.pageScope.Pending())
}

func TestAboutView(t *testing.T) {
	v := (&About{}).View().(AboutView)
	require.Len(t, v.Cards, 4)
	assert.Equal(t, "Location", v.Cards[0].Item.Label)
	assert.Equal(t, "BSc Mathematics", v.Cards[3].Item.Value)
	require.Len(t, v.Stats, 3)
	assert.Equal(t, "40%", v.Stats[1].Value)
	assert.Contains(t, string(v.Bio), "Quality-Driven Professional")
}

func TestSkillsSelectCategory(t *testing.T) {
	p := &Skills{}
	assert.Equal(t, CategoryTesting, p.Active())

	assert.True(t, p.SelectCategory(CategoryTools))
	v := p.View().(SkillsView)
	assert.Equal(t, CategoryTools, v.Active)
	assert.Len(t, v.Tools, 6)
	assert.Empty(t, v.Levels)
	assert.True(t, v.Categories[1].Active)
	assert.False(t, v.Categories[0].Active)

	assert.False(t, p.SelectCategory("cooking"))
	assert.Equal(t, CategoryTools, p.Active())

	assert.True(t, p.SelectCategory(CategoryDevelopment))
	v = p.View().(SkillsView)
	require.Len(t, v.Levels, 5)
	assert.Equal(t, "JavaScript", v.Levels[0].Item.Name)
}

func TestExperienceTimeline(t *testing.T) {
	v := (&Experience{}).View().(ExperienceView)
	require.Len(t, v.Timeline, 3)
	assert.False(t, v.Timeline[0].Item.IsLast)
	assert.True(t, v.Timeline[2].Item.IsLast)
	assert.Equal(t, "/contact", v.CTAPath)
	assert.Len(t, v.Stats, 4)
}

func TestProjectsModal(t *testing.T) {
	p := &Projects{}
	_, open := p.Selected()
	assert.False(t, open)

	require.True(t, p.Select(2))
	sel, open := p.Selected()
	require.True(t, open)
	assert.Equal(t, "MyMo QA Dashboard", sel.Title)

	v := p.View().(ProjectsView)
	require.NotNil(t, v.Selected)
	assert.Equal(t, 2, v.Selected.ID)
	assert.Contains(t, v.Selected.BadgeClass, "bg-blue-100")

	p.Close()
	_, open = p.Selected()
	assert.False(t, open)
	assert.Nil(t, p.View().(ProjectsView).Selected)

	assert.False(t, p.Select(42))
	_, open = p.Selected()
	assert.False(t, open)
}

func TestProjectsModalRendersSnippet(t *testing.T) {
	p := &Projects{}
	require.True(t, p.Select(1))
	v := p.View().(ProjectsView)
	assert.Contains(t, string(v.Selected.SnippetHTML), "<pre")
}

func TestProjectsFilter(t *testing.T) {
	p := &Projects{}
	assert.Len(t, p.View().(ProjectsView).Cards, 3)

	require.True(t, p.SetFilter(FilterDashboard))
	v := p.View().(ProjectsView)
	require.Len(t, v.Cards, 1)
	assert.Equal(t, 2, v.Cards[0].Item.ID)
	assert.True(t, v.Filters[2].Active)

	require.True(t, p.SetFilter(FilterAutomation))
	assert.Len(t, p.View().(ProjectsView).Cards, 2)

	assert.False(t, p.SetFilter("mobile"))
	assert.Equal(t, FilterAutomation, p.Filter())
}

func TestStatusClass(t *testing.T) {
	assert.Contains(t, StatusClass(catalog.StatusActive), "green")
	assert.Contains(t, StatusClass(catalog.StatusInProduction), "blue")
	assert.Contains(t, StatusClass(catalog.StatusCompleted), "purple")
	assert.Contains(t, StatusClass("Archived"), "gray")
}

func TestCertificationsFlip(t *testing.T) {
	p := &Certifications{}
	assert.Empty(t, p.Flipped())

	require.True(t, p.Flip(3))
	assert.Equal(t, []int{3}, p.Flipped())
	v := p.View().(CertificationsView)
	assert.False(t, v.Cards[0].Item.Flipped)
	assert.False(t, v.Cards[1].Item.Flipped)
	assert.True(t, v.Cards[2].Item.Flipped)

	require.True(t, p.Flip(3))
	assert.Empty(t, p.Flipped())

	assert.False(t, p.Flip(99))
	assert.Empty(t, p.Flipped())
}

func TestCertificationsCounters(t *testing.T) {
	v := (&Certifications{}).View().(CertificationsView)
	assert.Equal(t, 2, v.Counters.Completed)
	assert.Equal(t, 1, v.Counters.InProgress)
	assert.Equal(t, "5+", v.Counters.Planned)
	assert.Contains(t, v.Cards[2].Item.BadgeClass, "orange")
}

func TestEducationBadges(t *testing.T) {
	v := (&Education{}).View().(EducationView)
	require.Len(t, v.Cards, 2)
	assert.Equal(t, "Completed", v.Cards[0].Item.StatusLabel)
	assert.Equal(t, "3.70 CGPA", v.Cards[0].Item.GPA)
	assert.Equal(t, "In Progress", v.Cards[1].Item.StatusLabel)
	assert.Len(t, v.Cards[1].Item.Focus, 3)
	assert.Len(t, v.Benefits, 3)
}

func fillForm(t *testing.T, c *Contact) {
	t.Helper()
	require.NoError(t, c.SetField(FieldName, "Ada"))
	require.NoError(t, c.SetField(FieldEmail, "ada@example.com"))
	require.NoError(t, c.SetField(FieldSubject, "Hello"))
	require.NoError(t, c.SetField(FieldMessage, "Testing the form"))
}

func TestContactHappyPath(t *testing.T) {
	h := newHarness(t)
	c := &Contact{}
	c.Mount(h.host)
	fillForm(t, c)

	require.NoError(t, c.Submit())
	assert.Equal(t, PhaseSubmitting, c.Form().Phase())
	assert.ErrorIs(t, c.SetField(FieldName, "late"), ErrNotIdle)
	assert.ErrorIs(t, c.Submit(), ErrNotIdle)

	h.clock.Advance(1499 * time.Millisecond)
	assert.Equal(t, PhaseSubmitting, c.Form().Phase())
	assert.Empty(t, h.toasts.List())

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, PhaseSubmitted, c.Form().Phase())
	assert.Equal(t, Fields{}, c.Form().Fields())
	toasts := h.toasts.List()
	require.Len(t, toasts, 1)
	assert.Equal(t, SuccessToast.Title, toasts[0].Title)
	assert.Equal(t, notifications.VariantDefault, toasts[0].Variant)

	h.clock.Advance(3 * time.Second)
	assert.Equal(t, PhaseIdle, c.Form().Phase())
	assert.Len(t, h.toasts.List(), 1)

	assert.Equal(t, []Phase{PhaseSubmitting, PhaseSubmitted, PhaseIdle}, h.phases())
}

func TestContactEmptyFieldBlocksSubmit(t *testing.T) {
	fields := []string{FieldName, FieldEmail, FieldSubject, FieldMessage}
	for _, empty := range fields {
		t.Run(empty, func(t *testing.T) {
			h := newHarness(t)
			c := &Contact{}
			c.Mount(h.host)
			fillForm(t, c)
			require.NoError(t, c.SetField(empty, ""))

			err := c.Submit()
			assert.ErrorIs(t, err, ErrInvalidForm)
			assert.Equal(t, PhaseIdle, c.Form().Phase())

			h.clock.Advance(10 * time.Second)
			assert.Empty(t, h.toasts.List())
			assert.Empty(t, h.phases())
		})
	}
}

func TestContactUnknownField(t *testing.T) {
	h := newHarness(t)
	c := &Contact{}
	c.Mount(h.host)
	assert.ErrorIs(t, c.SetField("phone", "123"), ErrUnknownField)
}

func TestContactLastWriteWins(t *testing.T) {
	h := newHarness(t)
	c := &Contact{}
	c.Mount(h.host)
	require.NoError(t, c.SetField(FieldSubject, "first"))
	require.NoError(t, c.SetField(FieldSubject, "second"))
	assert.Equal(t, "second", c.Form().Fields().Subject)
	assert.Empty(t, c.Form().Fields().Name)
}

type failingSubmitter struct{ calls int }

func (f *failingSubmitter) Submit(context.Context, Message) error {
	f.calls++
	return errors.New("smtp down")
}

func TestContactFailureKeepsFields(t *testing.T) {
	h := newHarness(t)
	sub := &failingSubmitter{}
	h.host.Submitter = sub
	c := &Contact{}
	c.Mount(h.host)
	fillForm(t, c)

	require.NoError(t, c.Submit())
	h.clock.Advance(1500 * time.Millisecond)

	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, PhaseIdle, c.Form().Phase())
	assert.Equal(t, "Ada", c.Form().Fields().Name)
	toasts := h.toasts.List()
	require.Len(t, toasts, 1)
	assert.Equal(t, notifications.VariantDestructive, toasts[0].Variant)
	assert.Equal(t, FailureToast.Title, toasts[0].Title)
	assert.Equal(t, []Phase{PhaseSubmitting, PhaseIdle}, h.phases())
}

func TestSimulatedFailure(t *testing.T) {
	err := Simulated{Fail: true}.Submit(context.Background(), Message{})
	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.NoError(t, Simulated{}.Submit(context.Background(), Message{Name: "x"}))
}

func TestContactUnmountMidSubmission(t *testing.T) {
	h := newHarness(t)
	c := &Contact{}
	c.Mount(h.host)
	fillForm(t, c)
	require.NoError(t, c.Submit())

	h.clock.Advance(500 * time.Millisecond)
	h.unmount(c)
	h.clock.Advance(5 * time.Second)

	// The delay completed and notified, but the form was left alone.
	require.Len(t, h.toasts.List(), 1)
	assert.Equal(t, PhaseSubmitting, c.Form().Phase())
	assert.Equal(t, "Ada", c.Form().Fields().Name)
	assert.Equal(t, []Phase{PhaseSubmitting}, h.phases())
}

func TestContactUnmountDuringSubmittedCancelsReset(t *testing.T) {
	h := newHarness(t)
	c := &Contact{}
	c.Mount(h.host)
	fillForm(t, c)
	require.NoError(t, c.Submit())

	h.clock.Advance(2 * time.Second)
	require.Equal(t, PhaseSubmitted, c.Form().Phase())

	h.unmount(c)
	h.clock.Advance(5 * time.Second)
	assert.Equal(t, PhaseSubmitted, c.Form().Phase())
	assert.Equal(t, []Phase{PhaseSubmitting, PhaseSubmitted}, h.phases())
}

func TestContactView(t *testing.T) {
	v := (&Contact{}).View().(ContactView)
	assert.Len(t, v.Items, 3)
	assert.Len(t, v.Services, 8)
	assert.InDelta(t, 0.5, v.Services[0].Delay, 1e-9)
	assert.Equal(t, PhaseIdle, v.Form.Phase)
	assert.Len(t, v.Social, 3)
}
