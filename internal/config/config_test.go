package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default data_dir %q, got %q", "data", cfg.DataDir)
	}
	if cfg.Rotator.IntervalMS != 6000 {
		t.Errorf("expected default interval 6000ms, got %d", cfg.Rotator.IntervalMS)
	}
	if cfg.Rotator.Interval() != 6*time.Second {
		t.Errorf("Interval() = %v, want 6s", cfg.Rotator.Interval())
	}
	if !cfg.Analytics.Enabled {
		t.Error("analytics should be enabled by default")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ppmsite.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.LogLevel = LogDebug
	original.Rotator.IntervalMS = 5000
	original.Rotator.TransitionScale = 0.5
	original.Contact.Subjects = []string{"Audit", "Tax"}
	original.ContentFile = "content.yml"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.LogLevel != original.LogLevel {
		t.Errorf("log_level: got %q, want %q", loaded.LogLevel, original.LogLevel)
	}
	if loaded.Rotator.IntervalMS != 5000 {
		t.Errorf("rotator.interval_ms: got %d, want 5000", loaded.Rotator.IntervalMS)
	}
	if loaded.Rotator.TransitionScale != 0.5 {
		t.Errorf("rotator.transition_scale: got %f, want 0.5", loaded.Rotator.TransitionScale)
	}
	if loaded.ContentFile != "content.yml" {
		t.Errorf("content_file: got %q", loaded.ContentFile)
	}
	if len(loaded.Contact.Subjects) != 2 || loaded.Contact.Subjects[1] != "Tax" {
		t.Errorf("contact.subjects: got %v", loaded.Contact.Subjects)
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

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("PPMSITE_PORT", "9191")
	t.Setenv("PPMSITE_ROTATOR__INTERVAL_MS", "5000")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9191 {
		t.Errorf("env override failed: got port %d, want 9191", loaded.Port)
	}
	if loaded.Rotator.IntervalMS != 5000 {
		t.Errorf("nested env override failed: got %d, want 5000", loaded.Rotator.IntervalMS)
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("port: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative port", func(c *Config) { c.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"empty log level", func(c *Config) { c.LogLevel = "" }, false},
		{"negative interval", func(c *Config) { c.Rotator.IntervalMS = -5 }, true},
		{"interval off", func(c *Config) { c.Rotator.IntervalMS = 0 }, false},
		{"negative scale", func(c *Config) { c.Rotator.TransitionScale = -1 }, true},
		{"zero scale", func(c *Config) { c.Rotator.TransitionScale = 0 }, true},
		{"blank subject", func(c *Config) { c.Contact.Subjects = []string{"A", " "} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"PPMSITE_PORT":                 "port",
		"PPMSITE_ROTATOR__INTERVAL_MS": "rotator.interval_ms",
		"PPMSITE_ANALYTICS__ENABLED":   "analytics.enabled",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
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
		{"Tax", []string{"Tax"}},
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
