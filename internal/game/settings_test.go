package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("empty path: %v", err)
	}
	if s.WindowWidth != WindowWidth || s.WindowHeight != WindowHeight {
		t.Fatalf("window %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if s.Zoom != DefaultZoom || s.Seed != 1337 || s.StartMap != "forest" {
		t.Fatalf("defaults: %+v", s)
	}
	if !s.Audio || s.Players != 6 || s.PlayerName != "wanderer" {
		t.Fatalf("defaults: %+v", s)
	}
	if s.StartMapType() != MapForest {
		t.Fatalf("start map %v", s.StartMapType())
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := `window_width: 1024
window_height: 640
zoom: 2.0
seed: 99
start_map: Market
audio: false
players: 3
player_name: Ada
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.WindowWidth != 1024 || s.WindowHeight != 640 || s.Zoom != 2.0 {
		t.Fatalf("loaded: %+v", s)
	}
	if s.Seed != 99 || s.Audio || s.Players != 3 || s.PlayerName != "Ada" {
		t.Fatalf("loaded: %+v", s)
	}
	if s.StartMap != "market" || s.StartMapType() != MapMarket {
		t.Fatalf("start map %q not normalized", s.StartMap)
	}
}

func TestLoadSettingsNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := `window_width: -5
zoom: 99
seed: 0
players: 0
player_name: "  "
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.WindowWidth != WindowWidth {
		t.Fatalf("width %d not defaulted", s.WindowWidth)
	}
	if s.Zoom != MaxZoom {
		t.Fatalf("zoom %v not clamped", s.Zoom)
	}
	if s.Seed != 1337 || s.Players != 1 || s.PlayerName != "wanderer" {
		t.Fatalf("normalized: %+v", s)
	}
}

func TestLoadSettingsRejectsUnknownMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("start_map: moon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSettings(path)
	if err == nil || !strings.Contains(err.Error(), "start_map") {
		t.Fatalf("err=%v, want an unknown start_map error", err)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file did not error")
	}
}

func TestLoadSettingsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("zoom: [not a number\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("malformed yaml did not error")
	}
}
