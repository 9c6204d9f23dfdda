package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the path to the overlay preferences file, relative to the
// process working directory.
const PrefsPath = "config/prefs.json"

// Prefs holds display-only preferences (debug overlays, vsync). Persisted
// across runs; none of these affect the simulation itself.
type Prefs struct {
	ShowFPS bool `json:"show_fps"`
	ShowIDs bool `json:"show_ids"`
	VSync   bool `json:"vsync"`
}

// Default returns default preferences (overlays off, vsync on).
func Default() Prefs {
	return Prefs{
		ShowFPS: false,
		ShowIDs: false,
		VSync:   true,
	}
}

// Load reads preferences from config/prefs.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/prefs.json, creating the config directory
// if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(PrefsPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
