package c5

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
width = 900
height = 360
title = "Complex mapping"
show_debug = true
debug_key = "F1"
background = "#f8f8ff"
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Width != 900 || cfg.Height != 360 || cfg.Title != "Complex mapping" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.ShowDebug || cfg.DebugKey != "F1" {
		t.Errorf("debug settings = %v, %q", cfg.ShowDebug, cfg.DebugKey)
	}
	if cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want default", cfg.ScreenshotDir)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	def := DefaultConfig()
	if cfg.Width != def.Width || cfg.Height != def.Height || cfg.Title != def.Title || cfg.Background != def.Background {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name, data, wantErr string
	}{
		{"syntax", `width = `, "parse config"},
		{"unknown key", "colour = \"red\"", "unknown keys colour"},
		{"background", `background = "#zzzzzz"`, "background"},
		{"debug key", `debug_key = "NotAKey"`, "debug_key"},
		{"tps", `tps = -5`, "tps"},
	}
	for _, tt := range tests {
		_, err := ParseConfig([]byte(tt.data))
		if err == nil {
			t.Errorf("%s: want error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: err = %v, want it to mention %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c5.toml")
	if err := os.WriteFile(path, []byte("title = \"from file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "from file" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file: want error")
	}
}

func TestLookupKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"D", ebiten.KeyD},
		{"d", ebiten.KeyD},
		{"Space", ebiten.KeySpace},
		{"f1", ebiten.KeyF1},
	}
	for _, tt := range tests {
		got, ok := lookupKey(tt.name)
		if !ok || got != tt.want {
			t.Errorf("lookupKey(%q) = %v, %v; want %v", tt.name, got, ok, tt.want)
		}
	}
	if _, ok := lookupKey("Hyper"); ok {
		t.Error("lookupKey(Hyper) found a key")
	}
}
