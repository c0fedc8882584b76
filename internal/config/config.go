// Package config provides the startup configuration for the raycaster.
// Values start from defaults and may be overlaid from a YAML file and then by
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// ControlScheme selects how the player is driven.
type ControlScheme string

const (
	// ControlPointer binds the player to the pointer; the facing never changes.
	ControlPointer ControlScheme = "pointer"
	// ControlMotion moves and rotates the player from held keys.
	ControlMotion ControlScheme = "motion"
)

// Backend selects the host that opens the window and polls input.
type Backend string

const (
	BackendEbiten   Backend = "ebiten"
	BackendTerminal Backend = "terminal"
)

// Config holds every constant fixed at startup
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Rays     RayConfig      `yaml:"rays"`
	Walls    WallConfig     `yaml:"walls"`
	Motion   MotionConfig   `yaml:"motion"`

	Control ControlScheme `yaml:"control"`
	Backend Backend       `yaml:"backend"`
	Debug   bool          `yaml:"debug"`
	LogFile string        `yaml:"log_file"` // Log destination while the terminal backend owns the screen
}

// ViewportConfig defines the logical screen
type ViewportConfig struct {
	Width  int    `yaml:"width"`  // W
	Height int    `yaml:"height"` // H
	Title  string `yaml:"title"`
}

// RayConfig defines the fan
type RayConfig struct {
	FOV int `yaml:"fov"` // Ray count, one ray per degree
}

// WallConfig defines wall generation
type WallConfig struct {
	Count    int   `yaml:"count"`    // Random walls
	Boundary bool  `yaml:"boundary"` // Add the four viewport border walls
	Seed     int64 `yaml:"seed"`     // 0 picks a time-based seed
}

// MotionConfig defines per-frame movement
type MotionConfig struct {
	RotateStep float64 `yaml:"rotate_step"` // Degrees per frame
	MoveStep   float64 `yaml:"move_step"`   // Pixels per frame
	StartAngle float64 `yaml:"start_angle"` // Initial facing in degrees
}

// DefaultConfig returns the stock viewer settings
func DefaultConfig() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Width:  800,
			Height: 450,
			Title:  "Raycaster",
		},
		Rays: RayConfig{
			FOV: 40,
		},
		Walls: WallConfig{
			Count:    5,
			Boundary: true,
		},
		Motion: MotionConfig{
			RotateStep: 2,
			MoveStep:   2,
		},
		Control: ControlMotion,
		Backend: BackendEbiten,
		LogFile: "raycaster.log",
	}
}

// Load reads a YAML config file on top of the defaults
func Load(path string) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// Validate rejects configurations the frame loop cannot run with
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d must be positive", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	}
	if c.Rays.FOV <= 0 {
		return fmt.Errorf("%w: fov %d must be positive", ErrInvalid, c.Rays.FOV)
	}
	// Rays more than 90 degrees off the facing have no perpendicular distance.
	if c.Rays.FOV >= 180 {
		return fmt.Errorf("%w: fov %d must be below 180", ErrInvalid, c.Rays.FOV)
	}
	if c.Walls.Count < 0 {
		return fmt.Errorf("%w: wall count %d is negative", ErrInvalid, c.Walls.Count)
	}
	if c.Walls.Count == 0 && !c.Walls.Boundary {
		return fmt.Errorf("%w: no walls to cast against", ErrInvalid)
	}
	switch c.Control {
	case ControlPointer, ControlMotion:
	default:
		return fmt.Errorf("%w: unknown control scheme %q", ErrInvalid, c.Control)
	}
	switch c.Backend {
	case BackendEbiten, BackendTerminal:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	return nil
}
