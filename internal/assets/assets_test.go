package assets

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testdataDir returns the absolute path to testdata/site_assets.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	root := filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "site_assets")
	abs, err := filepath.Abs(root)
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		t.Fatalf("testdata dir does not exist: %s", abs)
	}
	return abs
}

func TestAllowed(t *testing.T) {
	d := New("", nil)

	tests := []struct {
		path string
		want bool
	}{
		{"images/profile.svg", true},
		{"/images/profile.svg", true},
		{"resume-khadija-altaf.pdf", true},
		{"deep/nested/photo.JPG", false},
		{"deep/nested/photo.jpg", true},
		{"notes.txt", false},
		{".env", false},
		{"images/.cache/thumb.png", false},
		{"../outside.png", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.Allowed(tt.path); got != tt.want {
			t.Errorf("Allowed(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestAllowedCustomPatterns(t *testing.T) {
	d := New("", []string{"images/*.svg"})

	if !d.Allowed("images/profile.svg") {
		t.Error("expected images/profile.svg to be allowed")
	}
	if d.Allowed("resume-khadija-altaf.pdf") {
		t.Error("expected pdf to be rejected by custom patterns")
	}
}

func TestList(t *testing.T) {
	d := New(testdataDir(t), nil)

	files, err := d.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"images/profile.svg", "resume-khadija-altaf.pdf"}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Errorf("List() = %v, want %v", files, want)
	}
}

func TestListWithoutRoot(t *testing.T) {
	files, err := New("", nil).List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestHandler(t *testing.T) {
	h := http.StripPrefix("/assets", New(testdataDir(t), nil).Handler())

	tests := []struct {
		path   string
		status int
	}{
		{"/assets/images/profile.svg", http.StatusOK},
		{"/assets/resume-khadija-altaf.pdf", http.StatusOK},
		{"/assets/notes.txt", http.StatusNotFound},
		{"/assets/.env", http.StatusNotFound},
		{"/assets/images/.cache/thumb.png", http.StatusNotFound},
		{"/assets/images/missing.png", http.StatusNotFound},
		{"/assets/images", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != tt.status {
			t.Errorf("GET %s: expected %d, got %d", tt.path, tt.status, w.Code)
		}
	}
}

func TestHandlerContentType(t *testing.T) {
	h := http.StripPrefix("/assets", New(testdataDir(t), nil).Handler())

	req := httptest.NewRequest("GET", "/assets/images/profile.svg", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Errorf("expected svg content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "<svg") {
		t.Error("expected svg body")
	}
}

func TestCopyTo(t *testing.T) {
	d := New(testdataDir(t), nil)
	dst := t.TempDir()

	var copied []string
	n, err := d.CopyTo(dst, func(rel string) { copied = append(copied, rel) })
	if err != nil {
		t.Fatalf("CopyTo() error: %v", err)
	}
	if n != 2 || len(copied) != 2 {
		t.Fatalf("expected 2 files copied, got n=%d callbacks=%d", n, len(copied))
	}

	data, err := os.ReadFile(filepath.Join(dst, "images", "profile.svg"))
	if err != nil {
		t.Fatalf("reading copied file: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("copied svg has wrong content")
	}
	if _, err := os.Stat(filepath.Join(dst, ".env")); !os.IsNotExist(err) {
		t.Error("dotfile must not be copied")
	}
	if _, err := os.Stat(filepath.Join(dst, "notes.txt")); !os.IsNotExist(err) {
		t.Error("non-matching file must not be copied")
	}
}
