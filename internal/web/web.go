// Package web serves the portfolio over HTTP: server-rendered pages, form
// actions, a JSON API and a websocket of live session events.
package web

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/khadija-altaf/folio/internal/app"
	"github.com/khadija-altaf/folio/internal/assets"
	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/logger"
	"github.com/khadija-altaf/folio/internal/notifications"
	"github.com/khadija-altaf/folio/internal/router"
)

// CookieName is the visitor cookie. It names the visitor, not the tab.
const CookieName = "folio_sid"

// TabHeader carries the tab id on script requests, and on every response
// that resolved a session.
const TabHeader = "X-Folio-Tab"

// tabParam is the query and form field carrying the tab id.
const tabParam = "tab"

const (
	cookieMaxAge   = 365 * 24 * 60 * 60
	requestTimeout = 60 * time.Second
)

// Web provides the portfolio routes.
type Web struct {
	sessions *app.Manager
	catalog  *catalog.Catalog
	assets   *assets.Dir
	renderer *Renderer
	log      *logger.Logger
}

// New creates the web front end. Sessions come from m, content from c and
// static files from dir, which may be nil.
func New(m *app.Manager, c *catalog.Catalog, dir *assets.Dir, log *logger.Logger) (*Web, error) {
	renderer, err := NewRenderer(true)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = catalog.Default()
	}
	if dir == nil {
		dir = assets.New("", nil)
	}
	return &Web{
		sessions: m,
		catalog:  c,
		assets:   dir,
		renderer: renderer,
		log:      log,
	}, nil
}

// RegisterRoutes mounts all web routes onto the given router.
func (wb *Web) RegisterRoutes(r chi.Router) {
	// Long-lived connection, kept out of the request timeout.
	r.Get("/ws/live", wb.handleLive)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Get("/assets/folio.css", serveStatic("text/css; charset=utf-8", cssContent))
		r.Get("/assets/folio.js", serveStatic("text/javascript; charset=utf-8", jsContent))
		r.Handle("/assets/*", http.StripPrefix("/assets", wb.assets.Handler()))
		if resume := wb.catalog.Personal.Resume; isLocalPath(resume) {
			r.Get(resume, func(w http.ResponseWriter, r *http.Request) {
				wb.assets.ServeFile(w, r, resume)
			})
		}

		// Form actions.
		r.Post("/theme/toggle", wb.handleThemeToggle)
		r.Post("/skills/category", wb.pageAction("/skills", selectSkillCategory))
		r.Post("/projects/select", wb.pageAction("/projects", selectProject))
		r.Post("/projects/close", wb.pageAction("/projects", closeProject))
		r.Post("/projects/filter", wb.pageAction("/projects", setProjectFilter))
		r.Post("/certifications/flip", wb.pageAction("/certifications", flipCertification))
		r.Post("/contact", wb.handleContact)
		r.Post("/toasts/{id}/dismiss", wb.handleToastDismiss)

		// JSON API.
		r.Get("/api/catalog", wb.handleCatalog)
		r.Get("/api/theme", wb.handleTheme)
		r.Post("/api/theme/toggle", wb.handleAPIThemeToggle)
		r.Get("/api/session", wb.handleSession)
		notifications.RegisterRoutes(r, wb.resolveToasts, statusFor)

		// Pages.
		for _, route := range router.Routes() {
			r.Get(route.Path, wb.handlePage)
		}
		r.NotFound(wb.handleNotFound)
	})
}

// session returns the session of the caller's tab, starting one and setting
// the visitor cookie when needed. A request naming no tab is a freshly
// loaded page and gets a tab of its own.
func (wb *Web) session(w http.ResponseWriter, r *http.Request) (*app.Session, error) {
	var visitor string
	if c, err := r.Cookie(CookieName); err == nil {
		visitor = c.Value
	}
	s, _, err := wb.sessions.GetOrCreate(r.Context(), visitor, tabID(r))
	if err != nil {
		return nil, err
	}
	if s.Visitor() != visitor {
		http.SetCookie(w, sessionCookie(s.Visitor(), r))
	}
	w.Header().Set(TabHeader, s.ID())
	return s, nil
}

// tabID returns the tab named by the request header, query or form.
func tabID(r *http.Request) string {
	if id := r.Header.Get(TabHeader); id != "" {
		return id
	}
	if id := r.URL.Query().Get(tabParam); id != "" {
		return id
	}
	if r.Method == http.MethodPost {
		return r.PostFormValue(tabParam)
	}
	return ""
}

// tabURL returns path addressed to tab id.
func tabURL(path, id string) string {
	return path + "?" + url.Values{tabParam: {id}}.Encode()
}

func sessionCookie(id string, r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}

// resolveToasts gives the JSON toast routes the caller's session, so their
// reads and dismissals are serialized with every other session action.
func (wb *Web) resolveToasts(w http.ResponseWriter, r *http.Request) (notifications.Source, error) {
	s, err := wb.session(w, r)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func serveStatic(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}

// isLocalPath reports whether p is a site-relative path.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}
