package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/khadija-altaf/folio/internal/app"
	"github.com/khadija-altaf/folio/internal/pages"
	"github.com/khadija-altaf/folio/internal/router"
)

// themeResponse is the JSON response for the theme endpoints.
type themeResponse struct {
	Dark  bool   `json:"dark"`
	Theme string `json:"theme"`
}

func (wb *Web) handlePage(w http.ResponseWriter, r *http.Request) {
	s, err := wb.session(w, r)
	if err != nil {
		wb.fail(w, r, err)
		return
	}
	if err := s.Navigate(r.URL.Path); err != nil {
		if errors.Is(err, router.ErrNotFound) {
			wb.notFound(w, r, s)
			return
		}
		wb.fail(w, r, err)
		return
	}
	wb.renderPage(w, r, s, http.StatusOK)
}

func (wb *Web) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s, err := wb.session(w, r)
	if err != nil {
		wb.fail(w, r, err)
		return
	}
	wb.notFound(w, r, s)
}

func (wb *Web) renderPage(w http.ResponseWriter, r *http.Request, s *app.Session, status int) {
	snap, err := s.Snapshot()
	if err != nil {
		wb.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := wb.renderer.Page(w, snap); err != nil {
		wb.log.Error(err, "rendering page")
	}
}

func (wb *Web) notFound(w http.ResponseWriter, r *http.Request, s *app.Session) {
	snap, err := s.Snapshot()
	if err != nil {
		wb.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := wb.renderer.NotFound(w, snap); err != nil {
		wb.log.Error(err, "rendering not found page")
	}
}

// pageAction shows the page at path and runs act on the session, then sends
// the browser back to that page in the same tab.
func (wb *Web) pageAction(path string, act func(r *http.Request, s *app.Session) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := wb.session(w, r)
		if err != nil {
			wb.fail(w, r, err)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		if err := s.Navigate(path); err != nil {
			wb.fail(w, r, err)
			return
		}
		if err := act(r, s); err != nil {
			wb.fail(w, r, err)
			return
		}
		http.Redirect(w, r, tabURL(path, s.ID()), http.StatusSeeOther)
	}
}

func selectSkillCategory(r *http.Request, s *app.Session) error {
	return s.SelectSkillCategory(r.PostFormValue("category"))
}

func selectProject(r *http.Request, s *app.Session) error {
	id, err := formInt(r, "id")
	if err != nil {
		return err
	}
	return s.SelectProject(id)
}

func closeProject(_ *http.Request, s *app.Session) error {
	return s.CloseProject()
}

func setProjectFilter(r *http.Request, s *app.Session) error {
	return s.SetProjectFilter(r.PostFormValue("filter"))
}

func flipCertification(r *http.Request, s *app.Session) error {
	id, err := formInt(r, "id")
	if err != nil {
		return err
	}
	return s.FlipCertification(id)
}

// handleContact copies the posted fields into the form and submits it. An
// incomplete form is shown again with what was entered. A post while a
// submission is in flight or just confirmed, such as a double submit, only
// shows the form as it is.
func (wb *Web) handleContact(w http.ResponseWriter, r *http.Request) {
	s, err := wb.session(w, r)
	if err != nil {
		wb.fail(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if err := s.Navigate("/contact"); err != nil {
		wb.fail(w, r, err)
		return
	}

	for _, name := range []string{pages.FieldName, pages.FieldEmail, pages.FieldSubject, pages.FieldMessage} {
		if err = s.SetContactField(name, r.PostFormValue(name)); err != nil {
			break
		}
	}
	if err == nil {
		err = s.SubmitContact()
	}
	switch {
	case err == nil, errors.Is(err, pages.ErrNotIdle):
		http.Redirect(w, r, tabURL("/contact", s.ID()), http.StatusSeeOther)
	case errors.Is(err, pages.ErrInvalidForm):
		wb.renderPage(w, r, s, http.StatusUnprocessableEntity)
	default:
		wb.fail(w, r, err)
	}
}

func (wb *Web) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	s, err := wb.session(w, r)
	if err != nil {
		wb.fail(w, r, err)
		return
	}
	if _, err := s.ToggleTheme(r.Context()); err != nil {
		wb.fail(w, r, err)
		return
	}
	http.Redirect(w, r, tabURL(back(r), s.ID()), http.StatusSeeOther)
}

func (wb *Web) handleToastDismiss(w http.ResponseWriter, r *http.Request) {
	s, err := wb.session(w, r)
	if err != nil {
		wb.fail(w, r, err)
		return
	}
	// A toast that already expired is not an error for a form post.
	if _, err := s.DismissToast(chi.URLParam(r, "id")); err != nil {
		wb.fail(w, r, err)
		return
	}
	http.Redirect(w, r, tabURL(back(r), s.ID()), http.StatusSeeOther)
}

func (wb *Web) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wb.catalog)
}

func (wb *Web) handleTheme(w http.ResponseWriter, r *http.Request) {
	s, err := wb.session(w, r)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	snap, err := s.Snapshot()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Dark: snap.Dark, Theme: snap.Theme})
}

func (wb *Web) handleAPIThemeToggle(w http.ResponseWriter, r *http.Request) {
	s, err := wb.session(w, r)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	dark, err := s.ToggleTheme(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	name := "light"
	if dark {
		name = "dark"
	}
	writeJSON(w, http.StatusOK, themeResponse{Dark: dark, Theme: name})
}

func (wb *Web) handleSession(w http.ResponseWriter, r *http.Request) {
	s, err := wb.session(w, r)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	snap, err := s.Snapshot()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// fail answers a failed page request or form action.
func (wb *Web) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		wb.log.Error(err, r.Method+" "+r.URL.Path)
	} else {
		wb.log.DebugErr(err, r.Method+" "+r.URL.Path)
	}
	http.Error(w, http.StatusText(status), status)
}

// statusFor maps an error to an HTTP status.
func statusFor(err error) int {
	var numErr *strconv.NumError
	switch {
	case errors.Is(err, router.ErrNotFound), errors.Is(err, app.ErrUnknownItem):
		return http.StatusNotFound
	case errors.Is(err, pages.ErrInvalidForm), errors.Is(err, pages.ErrNotIdle), errors.Is(err, pages.ErrUnknownField):
		return http.StatusUnprocessableEntity
	case errors.Is(err, app.ErrWrongPage), errors.As(err, &numErr):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrSessionClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func formInt(r *http.Request, key string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(r.PostFormValue(key)))
}

// back returns the page to return to after an action, from the "back" form
// value. Only site-relative paths are accepted.
func back(r *http.Request) string {
	if p := r.PostFormValue("back"); isLocalPath(p) {
		return p
	}
	return "/"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
