package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}

	if c.Viewport.Width != 800 || c.Viewport.Height != 450 {
		t.Errorf("Expected 800x450 viewport, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Rays.FOV != 40 {
		t.Errorf("Expected fov 40, got %d", c.Rays.FOV)
	}
	if c.Walls.Count != 5 || !c.Walls.Boundary {
		t.Errorf("Expected 5 walls plus boundary, got %d boundary=%v", c.Walls.Count, c.Walls.Boundary)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fov", func(c *Config) { c.Rays.FOV = 0 }},
		{"negative fov", func(c *Config) { c.Rays.FOV = -3 }},
		{"fov past a half turn", func(c *Config) { c.Rays.FOV = 180 }},
		{"zero width", func(c *Config) { c.Viewport.Width = 0 }},
		{"negative height", func(c *Config) { c.Viewport.Height = -1 }},
		{"negative walls", func(c *Config) { c.Walls.Count = -1 }},
		{"no walls at all", func(c *Config) { c.Walls.Count = 0; c.Walls.Boundary = false }},
		{"unknown control", func(c *Config) { c.Control = "joystick" }},
		{"unknown backend", func(c *Config) { c.Backend = "opengl" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Rays.FOV != DefaultConfig().Rays.FOV {
		t.Errorf("Expected default fov, got %d", c.Rays.FOV)
	}
}

func TestLoadOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raycaster.yaml")
	data := `
rays:
  fov: 80
walls:
  count: 12
  seed: 99
control: pointer
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Rays.FOV != 80 {
		t.Errorf("Expected fov 80, got %d", c.Rays.FOV)
	}
	if c.Walls.Count != 12 || c.Walls.Seed != 99 {
		t.Errorf("Expected 12 walls seed 99, got %d seed %d", c.Walls.Count, c.Walls.Seed)
	}
	if c.Control != ControlPointer {
		t.Errorf("Expected pointer control, got %q", c.Control)
	}
	// Untouched fields keep their defaults.
	if c.Viewport.Width != 800 || !c.Walls.Boundary {
		t.Errorf("Expected defaults to survive overlay, got width %d boundary %v", c.Viewport.Width, c.Walls.Boundary)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rays: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}
