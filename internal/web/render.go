package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/khadija-altaf/folio/internal/app"
)

// pageData is what the layout template renders.
type pageData struct {
	app.Snapshot
	Title    string
	NotFound bool
	Live     bool
}

// Renderer turns session snapshots into HTML documents.
type Renderer struct {
	tmpl *template.Template
	live bool
}

// NewRenderer parses the page templates. When live is set, pages include
// the script that follows session events over the websocket.
func NewRenderer(live bool) (*Renderer, error) {
	tmpl, err := template.New("layout").Funcs(template.FuncMap{
		"seconds": seconds,
		"dict":    dict,
	}).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	if _, err := tmpl.Parse(pagesTemplate); err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, live: live}, nil
}

// Page writes the full document for snap.
func (r *Renderer) Page(w io.Writer, snap app.Snapshot) error {
	return r.render(w, pageData{
		Snapshot: snap,
		Title:    title(snap),
		Live:     r.live,
	})
}

// NotFound writes the 404 document, keeping the visitor's navbar, theme and
// toasts.
func (r *Renderer) NotFound(w io.Writer, snap app.Snapshot) error {
	return r.render(w, pageData{
		Snapshot: snap,
		Title:    "Page not found | " + snap.Footer.Name,
		NotFound: true,
		Live:     r.live,
	})
}

// render buffers the output so a template error never leaves a half-written
// page.
func (r *Renderer) render(w io.Writer, data pageData) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", data.PageID, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func title(snap app.Snapshot) string {
	name := snap.Footer.Name
	if snap.Route.Label == "" || snap.Route.Path == "/" {
		return name + " | " + snap.Footer.Designation
	}
	return snap.Route.Label + " | " + name
}

// seconds formats an animation delay or duration in seconds for CSS.
func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "s"
}

func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}
