package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the studio config file, relative to the process
// working directory.
const ConfigPath = "config/studio.json"

// Prefs holds studio-only preferences (debug overlays, grid, outliner helper
// toggle). Persisted across runs. Scene content is separate and owned by the
// scene graph.
type Prefs struct {
	ShowFPS      bool `json:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc"`
	GridVisible  bool `json:"grid_visible"`
	ShowHelpers  bool `json:"show_helpers"`
}

// Default returns default preferences (debug overlays off, grid and helper
// visualization on).
func Default() Prefs {
	return Prefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  true,
		ShowHelpers:  true,
	}
}

// Load reads preferences from config/studio.json. If the file is missing or
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
	return p, nil
}

// Save writes preferences to config/studio.json, creating the config
// directory if needed.
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
