package config

import (
	"os"
	"path/filepath"
	"testing"

	"caglow/internal/lifecycle"
	"caglow/internal/pattern"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	scene, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if scene.HostTPS != 60 || scene.GradientSize != 128 {
		t.Fatalf("unexpected defaults: %+v", scene)
	}
	if err := scene.Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}
}

func TestLoadParsesSceneAndFillsDefaults(t *testing.T) {
	path := writeScene(t, `
seed: 99
palette: ["#000000", "#ffffff"]
entities:
  - pattern: glider
    mode: looping
    steps_per_second: 12
    x: 10
    y: 20
  - pattern: block
`)
	scene, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if scene.Seed != 99 {
		t.Fatalf("seed = %d, want 99", scene.Seed)
	}
	if scene.HostTPS != 60 {
		t.Fatalf("HostTPS default not applied: %d", scene.HostTPS)
	}
	if len(scene.Entities) != 2 {
		t.Fatalf("entities = %d, want 2", len(scene.Entities))
	}
	first := scene.Entities[0]
	if first.PatternID() != pattern.Glider || first.ModeValue() != lifecycle.ModeLooping {
		t.Fatalf("entity 0 resolved to %v/%v", first.PatternID(), first.ModeValue())
	}
	second := scene.Entities[1]
	if second.ModeValue() != lifecycle.ModeStatic {
		t.Fatalf("entity mode should default to static, got %v", second.ModeValue())
	}
	if second.CellSize <= 0 {
		t.Fatalf("cell size default not applied")
	}
}

func TestLoadRejectsUnknownPattern(t *testing.T) {
	path := writeScene(t, `
entities:
  - pattern: dragon
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("unknown pattern accepted")
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	path := writeScene(t, `
entities:
  - pattern: block
    mode: bouncing
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("unknown mode accepted")
	}
}

func TestLoadRejectsBadPalette(t *testing.T) {
	path := writeScene(t, `
palette: ["#zzz"]
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("bad palette accepted")
	}
}

func TestParsePalette(t *testing.T) {
	colors, err := ParsePalette([]string{"#ff0000", "#00ff00"})
	if err != nil {
		t.Fatalf("ParsePalette: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("parsed %d stops, want 2", len(colors))
	}
	if colors[0].R != 255 || colors[0].G != 0 || colors[0].B != 0 {
		t.Fatalf("stop 0 = %v, want red", colors[0])
	}
	if colors[1].G != 255 {
		t.Fatalf("stop 1 = %v, want green", colors[1])
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("missing file accepted")
	}
}
