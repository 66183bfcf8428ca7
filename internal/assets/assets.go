// Package assets serves and copies the static files of the site (profile
// photo, resume, images) from a directory, restricted to an allow-list of
// glob patterns.
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the files served when no patterns are configured.
var DefaultPatterns = []string{
	"**/*.{png,jpg,jpeg,gif,svg,webp,ico}",
	"**/*.pdf",
	"**/*.{css,js}",
	"**/*.{woff,woff2}",
}

// Dir is an asset directory.
type Dir struct {
	root     string
	fsys     fs.FS
	patterns []string
}

// New returns the asset directory rooted at root. An empty root yields a Dir
// that serves nothing.
func New(root string, patterns []string) *Dir {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	d := &Dir{root: root, patterns: patterns}
	if root != "" {
		d.fsys = os.DirFS(root)
	}
	return d
}

// Root returns the directory path.
func (d *Dir) Root() string { return d.root }

// Allowed reports whether relPath may be served. Paths with a dot-prefixed
// segment or leaving the root are never allowed.
func (d *Dir) Allowed(relPath string) bool {
	p := filepath.ToSlash(relPath)
	p = strings.TrimPrefix(p, "/")
	if p == "" || !fs.ValidPath(p) {
		return false
	}
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") {
			return false
		}
	}
	return matchesAny(p, d.patterns)
}

// matchesAny checks relPath against every pattern, then the base name
// against every pattern.
func matchesAny(relPath string, patterns []string) bool {
	base := path.Base(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// List returns the allowed files under the root, sorted.
func (d *Dir) List() ([]string, error) {
	if d.fsys == nil {
		return nil, nil
	}
	seen := make(map[string]bool)
	for _, pattern := range d.patterns {
		matches, err := doublestar.Glob(d.fsys, filepath.ToSlash(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if d.Allowed(m) {
				seen[m] = true
			}
		}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// Handler serves allowed files. Mount it with the URL prefix stripped.
func (d *Dir) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d.ServeFile(w, r, r.URL.Path)
	})
}

// ServeFile writes the asset at relPath, or 404 when it is missing or not
// allowed.
func (d *Dir) ServeFile(w http.ResponseWriter, r *http.Request, relPath string) {
	p := strings.TrimPrefix(filepath.ToSlash(relPath), "/")
	if d.fsys == nil || !d.Allowed(p) {
		http.NotFound(w, r)
		return
	}
	if info, err := fs.Stat(d.fsys, p); err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, d.fsys, p)
}

// CopyTo copies every allowed file into dst, keeping relative paths. It
// calls onFile after each copy when non-nil and returns the number copied.
func (d *Dir) CopyTo(dst string, onFile func(relPath string)) (int, error) {
	files, err := d.List()
	if err != nil {
		return 0, err
	}
	for i, rel := range files {
		if err := d.copyFile(rel, filepath.Join(dst, filepath.FromSlash(rel))); err != nil {
			return i, err
		}
		if onFile != nil {
			onFile(rel)
		}
	}
	return len(files), nil
}

func (d *Dir) copyFile(rel, dst string) error {
	src, err := d.fsys.Open(rel)
	if err != nil {
		return fmt.Errorf("opening asset %s: %w", rel, err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", rel, err)
	}
	return out.Close()
}
