package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM kv_entries").Scan(&count); err != nil {
		t.Fatalf("kv_entries: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty kv_entries, got %d rows", count)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if d.Path() != path {
		t.Errorf("Path() = %q, want %q", d.Path(), path)
	}

	if _, err := d.Exec(`INSERT INTO kv_entries (namespace, key, value) VALUES ('a', 'theme', 'dark')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	d.Close()

	// Reopening the same file keeps the row.
	d, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer d.Close()

	var value string
	if err := d.QueryRow(`SELECT value FROM kv_entries WHERE namespace = 'a' AND key = 'theme'`).Scan(&value); err != nil {
		t.Fatalf("select: %v", err)
	}
	if value != "dark" {
		t.Errorf("value = %q, want %q", value, "dark")
	}
}
