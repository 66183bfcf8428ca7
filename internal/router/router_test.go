package router

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khadija-altaf/folio/internal/clock"
	"github.com/khadija-altaf/folio/internal/testutil"
)

func TestLookupAllRoutes(t *testing.T) {
	want := map[string]string{
		"/":               PageHome,
		"/about":          PageAbout,
		"/skills":         PageSkills,
		"/experience":     PageExperience,
		"/projects":       PageProjects,
		"/certifications": PageCertifications,
		"/education":      PageEducation,
		"/contact":        PageContact,
	}
	for path, page := range want {
		r, err := Lookup(path)
		require.NoError(t, err, path)
		assert.Equal(t, page, r.Page)
	}
	assert.Len(t, Routes(), 8)
}

func TestLookupUnknown(t *testing.T) {
	for _, path := range []string{"/About", "/blog", "", "/about/", "/contact?x=1"} {
		_, err := Lookup(path)
		assert.True(t, errors.Is(err, ErrNotFound), "path %q", path)
	}
}

func TestFirstNavigationHasNoExit(t *testing.T) {
	fc := testutil.NewFakeClock()
	tr := NewTransition(clock.NewScope(fc, nil), 0)

	_, ok := tr.Entering()
	assert.False(t, ok)

	r, changed, err := tr.Navigate("/")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, PageHome, r.Page)

	_, exiting := tr.Exiting()
	assert.False(t, exiting)
}

func TestNavigateExitsAfterDuration(t *testing.T) {
	fc := testutil.NewFakeClock()
	tr := NewTransition(clock.NewScope(fc, nil), DefaultTransition)
	changes := 0
	tr.OnChange(func() { changes++ })

	_, _, _ = tr.Navigate("/")
	_, _, err := tr.Navigate("/about")
	require.NoError(t, err)

	entering, _ := tr.Entering()
	exiting, ok := tr.Exiting()
	require.True(t, ok)
	assert.Equal(t, PageAbout, entering.Page)
	assert.Equal(t, PageHome, exiting.Page)

	fc.Advance(499 * time.Millisecond)
	_, ok = tr.Exiting()
	assert.True(t, ok)

	fc.Advance(time.Millisecond)
	_, ok = tr.Exiting()
	assert.False(t, ok)
	assert.Equal(t, 1, changes)
}

func TestNavigateSupersedesInFlightTransition(t *testing.T) {
	fc := testutil.NewFakeClock()
	scope := clock.NewScope(fc, nil)
	tr := NewTransition(scope, DefaultTransition)
	changes := 0
	tr.OnChange(func() { changes++ })

	paths := []string{"/", "/about", "/skills", "/projects"}
	for _, p := range paths {
		_, _, err := tr.Navigate(p)
		require.NoError(t, err)
		fc.Advance(100 * time.Millisecond)

		_, ok := tr.Entering()
		assert.True(t, ok)
		assert.LessOrEqual(t, scope.Pending(), 1)
	}

	entering, _ := tr.Entering()
	exiting, ok := tr.Exiting()
	require.True(t, ok)
	assert.Equal(t, PageProjects, entering.Page)
	assert.Equal(t, PageSkills, exiting.Page)
	assert.Equal(t, 0, changes)

	fc.Advance(time.Second)
	_, ok = tr.Exiting()
	assert.False(t, ok)
	assert.Equal(t, 1, changes)
}

func TestNavigateToCurrentIsNoop(t *testing.T) {
	fc := testutil.NewFakeClock()
	tr := NewTransition(clock.NewScope(fc, nil), DefaultTransition)

	_, _, _ = tr.Navigate("/contact")
	_, changed, err := tr.Navigate("/contact")
	require.NoError(t, err)
	assert.False(t, changed)
	_, ok := tr.Exiting()
	assert.False(t, ok)
}

func TestNavigateUnknownKeepsState(t *testing.T) {
	fc := testutil.NewFakeClock()
	tr := NewTransition(clock.NewScope(fc, nil), DefaultTransition)

	_, _, _ = tr.Navigate("/skills")
	_, _, err := tr.Navigate("/nope")
	assert.ErrorIs(t, err, ErrNotFound)

	r, _ := tr.Entering()
	assert.Equal(t, PageSkills, r.Page)
}

func TestPageMotion(t *testing.T) {
	m := PageMotion(DefaultTransition)
	assert.Equal(t, Variant{Opacity: 0, Y: 20}, m.Initial)
	assert.Equal(t, Variant{Opacity: 1, Y: 0}, m.Animate)
	assert.Equal(t, Variant{Opacity: 0, Y: -20}, m.Exit)
	assert.Equal(t, "anticipate", m.Ease)
	assert.InDelta(t, 0.5, m.Duration, 1e-9)
}
