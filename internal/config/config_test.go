package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSet(t *testing.T) {
	cfg := &Config{
		sessionSettings: make(map[string]string),
	}

	cfg.Set("confirm_quit", "false")
	if cfg.Get("confirm_quit") != "false" {
		t.Errorf("Expected 'false', got '%s'", cfg.Get("confirm_quit"))
	}
}

func TestGet(t *testing.T) {
	cfg := &Config{
		Settings:        map[string]string{"test": "persisted"},
		sessionSettings: make(map[string]string),
	}

	if cfg.Get("nonexistent") != "" {
		t.Errorf("Expected empty string for nonexistent key, got '%s'", cfg.Get("nonexistent"))
	}

	if cfg.Get("test") != "persisted" {
		t.Errorf("Expected 'persisted', got '%s'", cfg.Get("test"))
	}

	// Session value overrides the persisted one
	cfg.Set("test", "value")
	if cfg.Get("test") != "value" {
		t.Errorf("Expected 'value', got '%s'", cfg.Get("test"))
	}
}

func TestGetAllReturnsACopy(t *testing.T) {
	cfg := &Config{
		Settings: map[string]string{"a": "1"},
	}
	cfg.Set("b", "2")

	all := cfg.GetAll()
	if len(all) != 2 {
		t.Errorf("Expected 2 settings, got %d", len(all))
	}

	all["b"] = "modified"
	if cfg.Get("b") != "2" {
		t.Errorf("GetAll() should return a copy, not a reference")
	}
}

func TestNilSessionSettings(t *testing.T) {
	cfg := &Config{}

	cfg.Set("key", "value")
	if cfg.Get("key") != "value" {
		t.Errorf("Set should initialize nil sessionSettings")
	}

	cfg2 := &Config{}
	if cfg2.Get("key") != "" {
		t.Errorf("Get should return empty string for nil sessionSettings")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Theme != "tokyo-night" {
		t.Errorf("Expected default theme 'tokyo-night', got '%s'", cfg.Theme)
	}
	if cfg.Sidebar.Width != 28 || cfg.Sidebar.MinWidth != 20 || cfg.Sidebar.MaxWidth != 50 {
		t.Errorf("Unexpected default widths: %+v", cfg.Sidebar)
	}
	if cfg.Sidebar.Position != "left" {
		t.Errorf("Expected default position 'left', got '%s'", cfg.Sidebar.Position)
	}
	if cfg.AutoExpandDelay() != 500*time.Millisecond {
		t.Errorf("Expected 500ms auto-expand delay, got %s", cfg.AutoExpandDelay())
	}
	if cfg.Sidebar.RowHeight != 3 {
		t.Errorf("Expected row height 3, got %d", cfg.Sidebar.RowHeight)
	}
	if cfg.sessionSettings == nil {
		t.Errorf("defaultConfig should initialize sessionSettings")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `theme = "default"

[sidebar]
position = "right"
width = 80
max_width = 60
auto_expand_delay_ms = 250

[settings]
confirm_quit = "false"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"theme", cfg.Theme, "default"},
		{"position", cfg.Sidebar.Position, "right"},
		{"width clamped to max", cfg.Sidebar.Width, 60},
		{"min width default", cfg.Sidebar.MinWidth, 20},
		{"delay", cfg.AutoExpandDelay(), 250 * time.Millisecond},
		{"status format default", cfg.StatusTimeFormat, "%H:%M"},
		{"setting", cfg.Get("confirm_quit"), "false"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, tt.got)
		}
	}
}

func TestLoadFromFileUnknownPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[sidebar]\nposition = \"top\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Sidebar.Position != "left" {
		t.Errorf("Expected fallback position 'left', got '%s'", cfg.Sidebar.Position)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got error %v", err)
	}
	if cfg.Theme != "tokyo-night" {
		t.Errorf("Expected default theme, got '%s'", cfg.Theme)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Errorf("Expected a parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg.Sidebar.Width = 33
	cfg.Sidebar.Collapsed = true
	cfg.Settings["persisted"] = "yes"
	cfg.Set("session", "only")

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Sidebar.Width != 33 || !loaded.Sidebar.Collapsed {
		t.Errorf("Sidebar settings not persisted: %+v", loaded.Sidebar)
	}
	if loaded.Get("persisted") != "yes" {
		t.Errorf("Expected persisted setting to survive a save")
	}
	if loaded.Get("session") != "" {
		t.Errorf("Session settings must not be saved")
	}
}
