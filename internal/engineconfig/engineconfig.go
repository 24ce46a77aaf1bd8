package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/viewkit.yaml"

// Window holds the window geometry used by the raylib front end.
type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
}

// Prefs holds engine preferences: unit density, asset locations and debug overlays.
type Prefs struct {
	Density      float32 `yaml:"density"`
	AssetsDir    string  `yaml:"assets_dir"`
	Layout       string  `yaml:"layout"`
	Stylesheet   string  `yaml:"stylesheet,omitempty"`
	Font         string  `yaml:"font,omitempty"` // font name searched under <assets_dir>/fonts
	Window       Window  `yaml:"window"`
	ShowFPS      bool    `yaml:"show_fps"`
	ShowHitAreas bool    `yaml:"show_hit_areas"`
	LogFile      string  `yaml:"log_file,omitempty"`
}

// Default returns default preferences (density 1, debug overlays off).
func Default() Prefs {
	return Prefs{
		Density:   1,
		AssetsDir: "assets",
		Layout:    "assets/layout.yaml",
		Window:    Window{Width: 960, Height: 640, Title: "viewkit"},
		LogFile:   "logs/viewkit.txt",
	}
}

// Load reads preferences from path. A missing file yields Default(); fields absent
// from the file keep their defaults.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if p.Density <= 0 {
		return Default(), fmt.Errorf("%s: density must be positive, got %v", path, p.Density)
	}
	return p, nil
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides preferences from VIEWKIT_DENSITY, VIEWKIT_ASSETS and VIEWKIT_LAYOUT.
func ApplyEnv(p Prefs, getenv func(string) string) (Prefs, error) {
	if s := getenv("VIEWKIT_DENSITY"); s != "" {
		d, err := strconv.ParseFloat(s, 32)
		if err != nil || d <= 0 {
			return p, fmt.Errorf("VIEWKIT_DENSITY: invalid density %q", s)
		}
		p.Density = float32(d)
	}
	if s := getenv("VIEWKIT_ASSETS"); s != "" {
		p.AssetsDir = s
	}
	if s := getenv("VIEWKIT_LAYOUT"); s != "" {
		p.Layout = s
	}
	return p, nil
}
