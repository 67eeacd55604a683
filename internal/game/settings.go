package game

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings are the client-side tunables loaded from settings.yaml.
// World geometry lives in config.go and is never configurable.
type Settings struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	Zoom         float64 `yaml:"zoom"`
	Seed         uint64  `yaml:"seed"`
	StartMap     string  `yaml:"start_map"`
	Audio        bool    `yaml:"audio"`
	Players      int     `yaml:"players"`
	PlayerName   string  `yaml:"player_name"`
}

// LoadSettings reads path if non-empty, falling back to defaults for
// anything unset. An empty path returns pure defaults without touching
// the filesystem.
func LoadSettings(path string) (Settings, error) {
	s := defaultSettings()
	if strings.TrimSpace(path) == "" {
		s.normalize()
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("settings.yaml: %w", err)
	}
	s.normalize()
	if err := s.validate(); err != nil {
		return s, fmt.Errorf("settings.yaml: %w", err)
	}
	return s, nil
}

func defaultSettings() Settings {
	return Settings{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		Zoom:         DefaultZoom,
		Seed:         1337,
		StartMap:     "forest",
		Audio:        true,
		Players:      6,
		PlayerName:   "wanderer",
	}
}

func (s *Settings) normalize() {
	if s.WindowWidth <= 0 {
		s.WindowWidth = WindowWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = WindowHeight
	}
	s.Zoom = clampF(s.Zoom, MinZoom, MaxZoom)
	if s.Seed == 0 {
		s.Seed = 1337
	}
	s.StartMap = strings.ToLower(strings.TrimSpace(s.StartMap))
	if s.StartMap == "" {
		s.StartMap = "forest"
	}
	if s.Players < 1 {
		s.Players = 1
	}
	if s.Players > 32 {
		s.Players = 32
	}
	if strings.TrimSpace(s.PlayerName) == "" {
		s.PlayerName = "wanderer"
	}
}

func (s *Settings) validate() error {
	switch s.StartMap {
	case "cafe", "market", "forest":
	default:
		return fmt.Errorf("unknown start_map %q", s.StartMap)
	}
	return nil
}

// StartMapType resolves the configured map name. Unknown names fall
// back to the forest map; validate catches them on the load path.
func (s *Settings) StartMapType() MapType {
	switch s.StartMap {
	case "cafe":
		return MapCafe
	case "market":
		return MapMarket
	default:
		return MapForest
	}
}
