package gameconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the user prefs file, relative to the process working directory.
const ConfigPath = "config/tiltmaze.json"

// Prefs holds user preferences persisted across runs: window size, debug
// overlays, and the last difficulty played. Nothing here affects simulation
// behavior within a session.
type Prefs struct {
	WindowWidth    int    `json:"window_width"`
	WindowHeight   int    `json:"window_height"`
	ShowFPS        bool   `json:"show_fps"`
	ShowBallSpeed  bool   `json:"show_ball_speed"`
	LastDifficulty string `json:"last_difficulty,omitempty"`
}

// Default returns default preferences (1280×720 window, overlays off).
func Default() Prefs {
	return Prefs{
		WindowWidth:  1280,
		WindowHeight: 720,
	}
}

// Load reads preferences from config/tiltmaze.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		d := Default()
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	return p, nil
}

// Save writes preferences to config/tiltmaze.json, creating the config directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
