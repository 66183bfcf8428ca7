package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DataDir != ".folio" {
		t.Errorf("expected default data_dir %q, got %q", ".folio", cfg.DataDir)
	}
	if cfg.Timing.TypingInterval != 50*time.Millisecond {
		t.Errorf("expected typing interval 50ms, got %v", cfg.Timing.TypingInterval)
	}
	if cfg.Timing.SubmitDelay != 1500*time.Millisecond {
		t.Errorf("expected submit delay 1.5s, got %v", cfg.Timing.SubmitDelay)
	}
	if cfg.Timing.SubmittedReset != 3*time.Second {
		t.Errorf("expected submitted reset 3s, got %v", cfg.Timing.SubmittedReset)
	}
	if cfg.Contact.SimulateFailure {
		t.Error("expected submissions to succeed by default")
	}
	if len(cfg.AssetPatterns) == 0 {
		t.Error("expected default asset patterns")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.AssetsDir = "static"
	original.AssetPatterns = []string{"**/*.svg", "*.pdf"}
	original.CatalogFile = "content.yml"
	original.Log.Format = LogFormatJSON
	original.Timing.SubmitDelay = 2 * time.Second
	original.Contact.SimulateFailure = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved config: %v", err)
	}
	if !strings.Contains(string(data), "submit_delay: 2s") {
		t.Errorf("expected durations written as strings, got:\n%s", data)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.AssetsDir != original.AssetsDir {
		t.Errorf("assets_dir: got %q, want %q", loaded.AssetsDir, original.AssetsDir)
	}
	if loaded.CatalogFile != original.CatalogFile {
		t.Errorf("catalog_file: got %q, want %q", loaded.CatalogFile, original.CatalogFile)
	}
	if loaded.Log.Format != LogFormatJSON {
		t.Errorf("log.format: got %q, want %q", loaded.Log.Format, LogFormatJSON)
	}
	if loaded.Timing.SubmitDelay != 2*time.Second {
		t.Errorf("timing.submit_delay: got %v, want 2s", loaded.Timing.SubmitDelay)
	}
	if loaded.SessionIdleTTL != original.SessionIdleTTL {
		t.Errorf("session_idle_ttl: got %v, want %v", loaded.SessionIdleTTL, original.SessionIdleTTL)
	}
	if !loaded.Contact.SimulateFailure {
		t.Error("contact.simulate_failure: expected true")
	}
	if len(loaded.AssetPatterns) != len(original.AssetPatterns) {
		t.Fatalf("asset_patterns length: got %d, want %d", len(loaded.AssetPatterns), len(original.AssetPatterns))
	}
	for i, v := range loaded.AssetPatterns {
		if v != original.AssetPatterns[i] {
			t.Errorf("asset_patterns[%d]: got %q, want %q", i, v, original.AssetPatterns[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("timing:\n  toast_ttl: 10s\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Timing.ToastTTL != 10*time.Second {
		t.Errorf("toast_ttl: got %v, want 10s", cfg.Timing.ToastTTL)
	}
	if cfg.Timing.Transition != 500*time.Millisecond {
		t.Errorf("transition default lost: got %v", cfg.Timing.Transition)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yml")
	if err := os.WriteFile(path, []byte("port: [\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Override nested and top-level keys via env vars.
	t.Setenv("FOLIO_LOG_LEVEL", "debug")
	t.Setenv("FOLIO_TIMING_SUBMIT_DELAY", "250ms")
	t.Setenv("FOLIO_DATA_DIR", "/var/lib/folio")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("env override failed: got log.level %q, want %q", loaded.Log.Level, "debug")
	}
	if loaded.Timing.SubmitDelay != 250*time.Millisecond {
		t.Errorf("env override failed: got submit delay %v, want 250ms", loaded.Timing.SubmitDelay)
	}
	if loaded.DataDir != "/var/lib/folio" {
		t.Errorf("env override failed: got data_dir %q", loaded.DataDir)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FOLIO_PORT", "port"},
		{"FOLIO_DATA_DIR", "data_dir"},
		{"FOLIO_SESSION_IDLE_TTL", "session_idle_ttl"},
		{"FOLIO_LOG_FORMAT", "log.format"},
		{"FOLIO_TIMING_TOAST_TTL", "timing.toast_ttl"},
		{"FOLIO_CONTACT_SIMULATE_FAILURE", "contact.simulate_failure"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDBPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "data"
	if got := cfg.DBPath(); got != filepath.Join("data", "folio.db") {
		t.Errorf("DBPath() = %q", got)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"zero idle ttl", func(c *Config) { c.SessionIdleTTL = 0 }},
		{"zero typing interval", func(c *Config) { c.Timing.TypingInterval = 0 }},
		{"negative submit delay", func(c *Config) { c.Timing.SubmitDelay = -time.Second }},
		{"zero toast ttl", func(c *Config) { c.Timing.ToastTTL = 0 }},
		{"zero transition", func(c *Config) { c.Timing.Transition = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBuildConfig(t *testing.T) {
	cfg, err := buildConfig(wizardAnswers{
		Port:            " 3000 ",
		DataDir:         "",
		AssetsDir:       "static",
		ExtraPatterns:   "*.txt, docs/**",
		CatalogFile:     "content.yml",
		LogFormat:       LogFormatJSON,
		AllowAllOrigins: true,
	})
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("port: got %d", cfg.Port)
	}
	if cfg.DataDir != ".folio" {
		t.Errorf("blank data dir should keep default, got %q", cfg.DataDir)
	}
	if cfg.AssetsDir != "static" || cfg.CatalogFile != "content.yml" {
		t.Errorf("unexpected dirs: %+v", cfg)
	}
	if cfg.Log.Format != LogFormatJSON || !cfg.AllowAllOrigins {
		t.Errorf("unexpected log/cors settings: %+v", cfg)
	}
	n := len(cfg.AssetPatterns)
	if n < 2 || cfg.AssetPatterns[n-2] != "*.txt" || cfg.AssetPatterns[n-1] != "docs/**" {
		t.Errorf("extra patterns not appended: %v", cfg.AssetPatterns)
	}

	if _, err := buildConfig(wizardAnswers{Port: "http"}); err == nil {
		t.Error("expected error for non-numeric port")
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"80", "8080", " 443 "} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"", "abc", "0", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q): expected error", bad)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.svg", []string{"**/*.svg"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
