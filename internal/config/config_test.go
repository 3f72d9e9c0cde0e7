package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Journal.Enabled {
		t.Errorf("journal should be enabled by default")
	}
	if cfg.Demo.ConfirmDelay != 800*time.Millisecond {
		t.Errorf("confirm_delay = %s, want 800ms", cfg.Demo.ConfirmDelay)
	}
	if cfg.Demo.DefaultNote == "" {
		t.Errorf("default note should not be empty")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log.level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[journal]
enabled = false
path = "/tmp/journal.db"

[demo]
confirm_delay = "250ms"
default_note = "call back on Friday"

[keys]
close-top = ["ctrl+w"]
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Journal.Enabled {
		t.Errorf("journal.enabled should be false")
	}
	if cfg.Journal.Path != "/tmp/journal.db" {
		t.Errorf("journal.path = %q", cfg.Journal.Path)
	}
	if cfg.Demo.ConfirmDelay != 250*time.Millisecond {
		t.Errorf("confirm_delay = %s", cfg.Demo.ConfirmDelay)
	}
	if cfg.Demo.DefaultNote != "call back on Friday" {
		t.Errorf("default_note = %q", cfg.Demo.DefaultNote)
	}
	if got := cfg.Keys["close-top"]; len(got) != 1 || got[0] != "ctrl+w" {
		t.Errorf("keys.close-top = %v", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("MODALSTACK_LOG_LEVEL", "debug")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[journal\nenabled = "), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Config{
		Journal: JournalConfig{Enabled: true, Path: "/var/lib/modalstack.db"},
		Log:     LogConfig{Level: "warn", File: "/tmp/modalstack.log"},
		Demo:    DemoConfig{ConfirmDelay: 2 * time.Second, DefaultNote: "n"},
		Keys:    map[string][]string{"quit": {"ctrl+q"}},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Journal != want.Journal || got.Log != want.Log || got.Demo != want.Demo {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
	if k := got.Keys["quit"]; len(k) != 1 || k[0] != "ctrl+q" {
		t.Fatalf("keys not saved: %v", got.Keys)
	}
}
