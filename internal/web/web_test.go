package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/khadija-altaf/folio/internal/app"
	"github.com/khadija-altaf/folio/internal/assets"
	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/db"
	"github.com/khadija-altaf/folio/internal/notifications"
	"github.com/khadija-altaf/folio/internal/pages"
	"github.com/khadija-altaf/folio/internal/router"
	"github.com/khadija-altaf/folio/internal/storage"
	"github.com/khadija-altaf/folio/internal/testutil"
)

type testEnv struct {
	router   chi.Router
	sessions *app.Manager
	clock    *testutil.FakeClock
	cookie   *http.Cookie
	tab      string
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	fc := testutil.NewFakeClock()
	m := app.NewManager(app.Options{Clock: fc, ToastTTL: time.Minute}, storage.SQLiteFactory(database), 0)
	t.Cleanup(m.Close)

	_, filename, _, _ := runtime.Caller(0)
	assetDir := filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "site_assets")

	wb, err := New(m, nil, assets.New(assetDir, nil), nil)
	if err != nil {
		t.Fatalf("creating web: %v", err)
	}
	r := chi.NewRouter()
	wb.RegisterRoutes(r)
	return &testEnv{router: r, sessions: m, clock: fc}
}

// newTab returns a second browser tab of the same visitor.
func (e *testEnv) newTab() *testEnv {
	other := *e
	other.tab = ""
	return &other
}

// do sends a request from the test tab, keeping the visitor cookie and the
// tab id.
func (e *testEnv) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if e.cookie != nil {
		req.AddCookie(e.cookie)
	}
	if e.tab != "" {
		req.Header.Set(TabHeader, e.tab)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			e.cookie = c
		}
	}
	if id := w.Header().Get(TabHeader); id != "" {
		e.tab = id
	}
	return w
}

func (e *testEnv) session(t *testing.T) *app.Session {
	t.Helper()
	if e.tab == "" {
		t.Fatal("no tab yet")
	}
	s, ok := e.sessions.Get(e.tab)
	if !ok {
		t.Fatal("session not found")
	}
	return s
}

func (e *testEnv) snapshot(t *testing.T) map[string]any {
	t.Helper()
	w := e.do(t, "GET", "/api/session", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/session: status %d", w.Code)
	}
	var snap map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal session: %v", err)
	}
	return snap
}

func formPhase(t *testing.T, snap map[string]any) string {
	t.Helper()
	page, ok := snap["page"].(map[string]any)
	if !ok {
		t.Fatalf("no page in snapshot: %v", snap)
	}
	form, ok := page["form"].(map[string]any)
	if !ok {
		t.Fatalf("no form in page: %v", page)
	}
	return form["phase"].(string)
}

func TestEveryRouteRendersOnePage(t *testing.T) {
	env := setupTest(t)

	for _, route := range router.Routes() {
		w := env.do(t, "GET", route.Path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", route.Path, w.Code)
		}
		body := w.Body.String()
		if n := strings.Count(body, `aria-current="page"`); n != 1 {
			t.Errorf("GET %s: expected exactly one active nav link, got %d", route.Path, n)
		}
		if !strings.Contains(body, `data-page="`+route.Page+`"`) {
			t.Errorf("GET %s: expected page %s", route.Path, route.Page)
		}
		if !strings.Contains(body, "© 2024 ") {
			t.Errorf("GET %s: expected footer copyright", route.Path)
		}
	}

	snap := env.snapshot(t)
	transition := snap["transition"].(map[string]any)
	if transition["exiting"] == nil {
		t.Error("expected the previous page to be exiting right after navigation")
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, "GET", "/does-not-exist", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Page not found") {
		t.Error("expected not found page")
	}
	if strings.Contains(body, `aria-current="page"`) {
		t.Error("expected no active nav link on the not found page")
	}
}

func TestSessionCookie(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, "GET", "/", nil)
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName || !c.HttpOnly || c.SameSite != http.SameSiteLaxMode || c.MaxAge != cookieMaxAge {
		t.Errorf("unexpected cookie %+v", c)
	}

	if w.Header().Get(TabHeader) == "" {
		t.Error("expected the tab id in the response")
	}

	w = env.do(t, "GET", "/about", nil)
	if len(w.Result().Cookies()) != 0 {
		t.Error("expected no new cookie for a known session")
	}
	if env.sessions.Len() != 1 {
		t.Errorf("expected 1 session, got %d", env.sessions.Len())
	}

	// A page loaded without a tab id is a new tab of the same visitor.
	other := env.newTab()
	w = other.do(t, "GET", "/", nil)
	if len(w.Result().Cookies()) != 0 {
		t.Error("expected the visitor cookie to be reused")
	}
	if other.tab == env.tab {
		t.Error("expected a new tab id")
	}
	if n := env.sessions.Tabs(env.cookie.Value); n != 2 {
		t.Errorf("expected 2 tabs for the visitor, got %d", n)
	}
}

func TestThemeToggle(t *testing.T) {
	env := setupTest(t)
	env.do(t, "GET", "/about", nil)

	w := env.do(t, "POST", "/theme/toggle", url.Values{"back": {"/about"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != tabURL("/about", env.tab) {
		t.Errorf("expected redirect to /about in the same tab, got %q", loc)
	}

	w = env.do(t, "GET", "/api/theme", nil)
	var theme themeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &theme); err != nil {
		t.Fatalf("unmarshal theme: %v", err)
	}
	if !theme.Dark || theme.Theme != "dark" {
		t.Errorf("expected dark theme, got %+v", theme)
	}
	if body := env.do(t, "GET", "/about", nil).Body.String(); !strings.Contains(body, `<html lang="en" class="dark"`) {
		t.Error("expected dark class on the document")
	}

	w = env.do(t, "POST", "/api/theme/toggle", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &theme); err != nil {
		t.Fatalf("unmarshal theme: %v", err)
	}
	if theme.Dark || theme.Theme != "light" {
		t.Errorf("expected light theme after second toggle, got %+v", theme)
	}
}

func TestThemeToggleRejectsForeignRedirect(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, "POST", "/theme/toggle", url.Values{"back": {"//evil.example"}})
	if loc := w.Header().Get("Location"); loc != tabURL("/", env.tab) {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestProjectModal(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, "POST", "/projects/select", url.Values{"id": {"2"}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != tabURL("/projects", env.tab) {
		t.Fatalf("expected 303 to /projects, got %d %q", w.Code, w.Header().Get("Location"))
	}
	body := env.do(t, "GET", "/projects", nil).Body.String()
	if !strings.Contains(body, `role="dialog"`) {
		t.Fatal("expected project modal")
	}
	if !strings.Contains(body, catalog.Default().Projects[1].Title) {
		t.Error("expected project 2 title")
	}

	env.do(t, "POST", "/projects/close", url.Values{})
	if body := env.do(t, "GET", "/projects", nil).Body.String(); strings.Contains(body, `role="dialog"`) {
		t.Error("expected modal closed")
	}

	if w := env.do(t, "POST", "/projects/select", url.Values{"id": {"abc"}}); w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id: expected 400, got %d", w.Code)
	}
	if w := env.do(t, "POST", "/projects/select", url.Values{"id": {"99"}}); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: expected 404, got %d", w.Code)
	}
}

func TestProjectFilter(t *testing.T) {
	env := setupTest(t)

	env.do(t, "POST", "/projects/filter", url.Values{"filter": {"dashboard"}})
	body := env.do(t, "GET", "/projects", nil).Body.String()
	c := catalog.Default()
	if !strings.Contains(body, c.Projects[1].Title) {
		t.Error("expected the dashboard project")
	}
	if strings.Contains(body, c.Projects[0].Title) {
		t.Error("expected automation projects filtered out")
	}

	if w := env.do(t, "POST", "/projects/filter", url.Values{"filter": {"games"}}); w.Code != http.StatusNotFound {
		t.Errorf("unknown filter: expected 404, got %d", w.Code)
	}
}

func TestCertificationFlipTwice(t *testing.T) {
	env := setupTest(t)

	env.do(t, "POST", "/certifications/flip", url.Values{"id": {"3"}})
	if body := env.do(t, "GET", "/certifications", nil).Body.String(); !strings.Contains(body, "text-left flipped") {
		t.Fatal("expected certification 3 flipped")
	}

	env.do(t, "POST", "/certifications/flip", url.Values{"id": {"3"}})
	if body := env.do(t, "GET", "/certifications", nil).Body.String(); strings.Contains(body, "text-left flipped") {
		t.Error("expected certification 3 back to front")
	}
}

func TestSkillCategory(t *testing.T) {
	env := setupTest(t)

	env.do(t, "POST", "/skills/category", url.Values{"category": {"tools"}})
	body := env.do(t, "GET", "/skills", nil).Body.String()
	if !strings.Contains(body, catalog.Default().Skills.Tools[0].Description) {
		t.Error("expected tools grid")
	}
}

func TestContactFlow(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, "POST", "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Hi there"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if phase := formPhase(t, env.snapshot(t)); phase != string(pages.PhaseSubmitting) {
		t.Fatalf("expected submitting, got %s", phase)
	}

	env.clock.Advance(pages.DefaultTiming().SubmitDelay)
	if phase := formPhase(t, env.snapshot(t)); phase != string(pages.PhaseSubmitted) {
		t.Fatalf("expected submitted, got %s", phase)
	}

	w = env.do(t, "GET", "/api/toasts", nil)
	var toasts []notifications.Toast
	if err := json.Unmarshal(w.Body.Bytes(), &toasts); err != nil {
		t.Fatalf("unmarshal toasts: %v", err)
	}
	if len(toasts) != 1 || toasts[0].Title != pages.SuccessToast.Title {
		t.Fatalf("expected one success toast, got %+v", toasts)
	}
	body := env.do(t, "GET", "/contact", nil).Body.String()
	if !strings.Contains(body, "Message Sent!") {
		t.Error("expected the sent confirmation")
	}
	if !strings.Contains(body, `id="contact-form"`) {
		t.Error("expected the form to stay visible after sending")
	}

	env.clock.Advance(pages.DefaultTiming().SubmittedReset)
	snap := env.snapshot(t)
	if phase := formPhase(t, snap); phase != string(pages.PhaseIdle) {
		t.Fatalf("expected idle, got %s", phase)
	}
	fields := snap["page"].(map[string]any)["form"].(map[string]any)["fields"].(map[string]any)
	for name, v := range fields {
		if v != "" {
			t.Errorf("field %s not cleared: %v", name, v)
		}
	}
}

func TestContactMissingField(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, "POST", "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `value="Ada"`) {
		t.Error("expected entered values kept")
	}
	if phase := formPhase(t, env.snapshot(t)); phase != string(pages.PhaseIdle) {
		t.Errorf("expected idle, got %s", phase)
	}
	if n := len(env.session(t).Toasts().List()); n != 0 {
		t.Errorf("expected no toast, got %d", n)
	}
}

func TestToastDismissForm(t *testing.T) {
	env := setupTest(t)
	env.do(t, "GET", "/", nil)

	id, err := env.session(t).Notify(notifications.Toast{Title: "hello"})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if body := env.do(t, "GET", "/", nil).Body.String(); !strings.Contains(body, `data-toast-id="`+id+`"`) {
		t.Fatal("expected toast rendered")
	}

	w := env.do(t, "POST", "/toasts/"+id+"/dismiss", url.Values{"back": {"/"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if n := len(env.session(t).Toasts().List()); n != 0 {
		t.Errorf("expected toast dismissed, got %d left", n)
	}
}

func TestTabsNavigateIndependently(t *testing.T) {
	tabA := setupTest(t)
	tabA.do(t, "GET", "/", nil)
	tabA.clock.Advance(150 * time.Millisecond)

	tabB := tabA.newTab()
	if w := tabB.do(t, "GET", "/projects", nil); w.Code != http.StatusOK {
		t.Fatalf("GET /projects: expected 200, got %d", w.Code)
	}
	if tabA.tab == tabB.tab {
		t.Fatal("expected separate tabs")
	}
	tabA.clock.Advance(time.Minute)

	snap := tabA.snapshot(t)
	if snap["page_id"] != router.PageHome {
		t.Fatalf("tab A: expected home, got %v", snap["page_id"])
	}
	home := snap["page"].(map[string]any)
	if home["typing_done"] != true || home["typed"] != home["tagline"] {
		t.Errorf("tab A: expected typing to finish, got typed=%q done=%v", home["typed"], home["typing_done"])
	}
	if snap := tabB.snapshot(t); snap["page_id"] != router.PageProjects {
		t.Errorf("tab B: expected projects, got %v", snap["page_id"])
	}
}

func TestContactSurvivesOtherTab(t *testing.T) {
	tabA := setupTest(t)
	w := tabA.do(t, "POST", "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Hi there"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	tabB := tabA.newTab()
	tabB.do(t, "GET", "/about", nil)
	tabA.clock.Advance(pages.DefaultTiming().SubmitDelay)

	if phase := formPhase(t, tabA.snapshot(t)); phase != string(pages.PhaseSubmitted) {
		t.Fatalf("tab A: expected submitted, got %s", phase)
	}
	if body := tabA.do(t, "GET", "/contact", nil).Body.String(); !strings.Contains(body, "Message Sent!") {
		t.Error("tab A: expected the sent confirmation")
	}
}

func TestContactPostWhileBusy(t *testing.T) {
	env := setupTest(t)
	fields := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Hi there"},
	}
	env.do(t, "POST", "/contact", fields)

	again := url.Values{
		"name":    {"Bob"},
		"email":   {"bob@example.com"},
		"subject": {"Again"},
		"message": {"Twice"},
	}
	for _, phase := range []pages.Phase{pages.PhaseSubmitting, pages.PhaseSubmitted} {
		w := env.do(t, "POST", "/contact", again)
		if w.Code != http.StatusSeeOther {
			t.Fatalf("%s: expected 303, got %d", phase, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != tabURL("/contact", env.tab) {
			t.Errorf("%s: expected redirect back to the form, got %q", phase, loc)
		}
		if got := formPhase(t, env.snapshot(t)); got != string(phase) {
			t.Errorf("expected %s, got %s", phase, got)
		}
		env.clock.Advance(pages.DefaultTiming().SubmitDelay)
	}

	if n := len(env.session(t).Toasts().List()); n != 1 {
		t.Errorf("expected one toast for one submission, got %d", n)
	}
}

func TestToastAPIGoesThroughSession(t *testing.T) {
	env := setupTest(t)
	env.do(t, "GET", "/", nil)
	s := env.session(t)

	id, err := s.Notify(notifications.Toast{Title: "hello"})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	env.clock.Advance(10 * time.Second)

	w := env.do(t, "POST", "/api/toasts/"+id+"/dismiss", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if n := len(s.Toasts().List()); n != 0 {
		t.Errorf("expected toast dismissed, got %d left", n)
	}
	if !s.LastSeen().Equal(env.clock.Now()) {
		t.Errorf("expected dismissal to count as activity, last seen %v", s.LastSeen())
	}

	env.sessions.Close()
	if w := env.do(t, "GET", "/api/toasts", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("closed: expected 503, got %d", w.Code)
	}
}

func TestCatalogAPI(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, "GET", "/api/catalog", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var c catalog.Catalog
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("unmarshal catalog: %v", err)
	}
	if c.Personal.Name != catalog.Default().Personal.Name {
		t.Errorf("unexpected name %q", c.Personal.Name)
	}
	if len(c.Projects) != 3 || len(c.Certifications) != 3 {
		t.Errorf("unexpected catalog sizes: %d projects, %d certifications", len(c.Projects), len(c.Certifications))
	}
}

func TestAssets(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		path        string
		status      int
		contentType string
	}{
		{"/assets/folio.css", http.StatusOK, "text/css"},
		{"/assets/folio.js", http.StatusOK, "text/javascript"},
		{"/assets/images/profile.svg", http.StatusOK, "image/svg+xml"},
		{"/resume-khadija-altaf.pdf", http.StatusOK, "application/pdf"},
		{"/assets/.env", http.StatusNotFound, ""},
		{"/assets/notes.txt", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		w := env.do(t, "GET", tt.path, nil)
		if w.Code != tt.status {
			t.Errorf("GET %s: expected %d, got %d", tt.path, tt.status, w.Code)
			continue
		}
		if tt.contentType != "" && !strings.HasPrefix(w.Header().Get("Content-Type"), tt.contentType) {
			t.Errorf("GET %s: expected %s, got %s", tt.path, tt.contentType, w.Header().Get("Content-Type"))
		}
	}
}

func TestLiveWebSocket(t *testing.T) {
	env := setupTest(t)
	env.do(t, "GET", "/", nil)

	server := httptest.NewServer(env.router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/live?tab=" + env.tab
	header := http.Header{"Cookie": {env.cookie.String()}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	readEvent := func() app.Event {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		var ev app.Event
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("websocket read: %v", err)
		}
		return ev
	}

	if err := conn.WriteJSON(liveRequest{Type: "toggle_theme"}); err != nil {
		t.Fatalf("websocket write: %v", err)
	}
	if ev := readEvent(); ev.Kind != app.EventTheme {
		t.Fatalf("expected theme event, got %s", ev.Kind)
	}
	if !env.session(t).Dark() {
		t.Error("expected dark mode after toggle over websocket")
	}

	if err := conn.WriteJSON(liveRequest{Type: "bogus"}); err != nil {
		t.Fatalf("websocket write: %v", err)
	}
	if ev := readEvent(); ev.Kind != "error" {
		t.Errorf("expected error event, got %s", ev.Kind)
	}

	// Events from other requests reach the socket.
	env.do(t, "POST", "/theme/toggle", url.Values{})
	if ev := readEvent(); ev.Kind != app.EventTheme {
		t.Errorf("expected theme event, got %s", ev.Kind)
	}
}

func TestLiveClosesWithSession(t *testing.T) {
	env := setupTest(t)
	env.do(t, "GET", "/", nil)

	server := httptest.NewServer(env.router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/live?tab=" + env.tab
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Cookie": {env.cookie.String()}})
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	// The reply proves the handler is running, and it subscribes before
	// reading.
	if err := conn.WriteJSON(liveRequest{Type: "bogus"}); err != nil {
		t.Fatalf("websocket write: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var ev app.Event
	if err := conn.ReadJSON(&ev); err != nil || ev.Kind != "error" {
		t.Fatalf("expected error reply, got %+v, %v", ev, err)
	}

	env.sessions.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		err := conn.ReadJSON(&ev)
		if err == nil {
			continue
		}
		if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
			t.Errorf("expected going-away close, got %v", err)
		}
		break
	}
}
