// Package config loads scene descriptions: the gradient parameters and the
// per-entity records (pattern, mode, cadence, palette, position) that the
// host feeds into the simulation core. Defaults are resolved once at load.
package config

import (
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"caglow/internal/lifecycle"
	"caglow/internal/pattern"
)

// Entity describes one automaton-rendered game entity.
type Entity struct {
	Pattern        string   `yaml:"pattern"`
	Mode           string   `yaml:"mode"`
	Phase          int      `yaml:"phase"`
	CellSize       int      `yaml:"cell_size"`
	StepsPerSecond int      `yaml:"steps_per_second"`
	LifeForce      bool     `yaml:"life_force"`
	X              int      `yaml:"x"`
	Y              int      `yaml:"y"`
	Palette        []string `yaml:"palette"`
}

// Scene is the root configuration document.
type Scene struct {
	HostTPS      int      `yaml:"host_tps"`
	ScreenWidth  int      `yaml:"screen_width"`
	ScreenHeight int      `yaml:"screen_height"`
	GradientSize int      `yaml:"gradient_size"`
	NoiseScale   float64  `yaml:"noise_scale"`
	Seed         int64    `yaml:"seed"`
	Palette      []string `yaml:"palette"`
	ScrollSpeed  int      `yaml:"scroll_speed"`
	Entities     []Entity `yaml:"entities"`
}

// DefaultScene returns a scene with a small demo cast, used when no file is
// supplied.
func DefaultScene() Scene {
	return Scene{
		HostTPS:      60,
		ScreenWidth:  320,
		ScreenHeight: 240,
		GradientSize: 128,
		NoiseScale:   0.04,
		Seed:         1337,
		Palette:      []string{"#1a2a6c", "#b21f1f", "#fdbb2d"},
		ScrollSpeed:  1,
		Entities: []Entity{
			{Pattern: "pulsar", Mode: "looping", CellSize: 4, StepsPerSecond: 4, X: 60, Y: 60},
			{Pattern: "beehive", Mode: "static", CellSize: 6, X: 220, Y: 40},
			{Pattern: "blinker", Mode: "looping", CellSize: 5, StepsPerSecond: 2, X: 220, Y: 160},
		},
	}
}

// Load reads a YAML scene file, fills defaults and validates it. An empty
// path yields the default scene.
func Load(path string) (Scene, error) {
	scene := DefaultScene()
	if path == "" {
		return scene, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	scene = Scene{}
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return Scene{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	scene.applyDefaults()
	if err := scene.Validate(); err != nil {
		return Scene{}, err
	}
	return scene, nil
}

func (s *Scene) applyDefaults() {
	def := DefaultScene()
	if s.HostTPS <= 0 {
		s.HostTPS = def.HostTPS
	}
	if s.ScreenWidth <= 0 {
		s.ScreenWidth = def.ScreenWidth
	}
	if s.ScreenHeight <= 0 {
		s.ScreenHeight = def.ScreenHeight
	}
	if s.GradientSize <= 0 {
		s.GradientSize = def.GradientSize
	}
	if s.NoiseScale <= 0 {
		s.NoiseScale = def.NoiseScale
	}
	if len(s.Palette) == 0 {
		s.Palette = def.Palette
	}
	if s.ScrollSpeed == 0 {
		s.ScrollSpeed = def.ScrollSpeed
	}
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Mode == "" {
			e.Mode = "static"
		}
		if e.CellSize <= 0 {
			e.CellSize = 4
		}
		if e.StepsPerSecond <= 0 {
			e.StepsPerSecond = 8
		}
	}
}

// Validate checks every entity against the closed pattern and mode sets and
// parses all palettes, so bad configuration fails at load rather than
// mid-frame.
func (s *Scene) Validate() error {
	if _, err := ParsePalette(s.Palette); err != nil {
		return err
	}
	for i, e := range s.Entities {
		if _, ok := pattern.ParseID(e.Pattern); !ok {
			return fmt.Errorf("config: entity %d: unknown pattern %q", i, e.Pattern)
		}
		if _, ok := lifecycle.ParseMode(e.Mode); !ok {
			return fmt.Errorf("config: entity %d: unknown mode %q", i, e.Mode)
		}
		if len(e.Palette) > 0 {
			if _, err := ParsePalette(e.Palette); err != nil {
				return fmt.Errorf("config: entity %d: %w", i, err)
			}
		}
	}
	return nil
}

// PatternID resolves the entity's pattern name. Call after Validate.
func (e Entity) PatternID() pattern.ID {
	id, _ := pattern.ParseID(e.Pattern)
	return id
}

// ModeValue resolves the entity's lifecycle mode. Call after Validate.
func (e Entity) ModeValue() lifecycle.Mode {
	m, _ := lifecycle.ParseMode(e.Mode)
	return m
}

// ParsePalette converts hex color stops ("#rrggbb") into RGBA values.
func ParsePalette(stops []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("config: palette stop %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return out, nil
}
