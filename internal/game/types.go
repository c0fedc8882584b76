package game

import (
	"math"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/geom"
)

// ViewMode selects how a frame is presented. It never affects the
// visibility pass.
type ViewMode int

const (
	ModeOverlay ViewMode = iota
	ModePerspective
)

func (m ViewMode) String() string {
	switch m {
	case ModeOverlay:
		return "overlay"
	case ModePerspective:
		return "perspective"
	default:
		return "unknown"
	}
}

// Input is a snapshot of the controls for one frame.
type Input struct {
	Pointer     geom.Vec2
	ToggleView  bool
	RotateLeft  bool
	RotateRight bool
	Forward     bool
	Backward    bool
	Dump        bool
	Quit        bool
}

// Rules are the fixed parameters applied by Step.
type Rules struct {
	Control       config.ControlScheme
	RotateStep    float64 // Degrees per frame
	MoveStep      float64 // Pixels per frame
	Width, Height float64
}

// RulesFrom extracts the motion rules from a config.
func RulesFrom(cfg *config.Config) Rules {
	return Rules{
		Control:    cfg.Control,
		RotateStep: cfg.Motion.RotateStep,
		MoveStep:   cfg.Motion.MoveStep,
		Width:      float64(cfg.Viewport.Width),
		Height:     float64(cfg.Viewport.Height),
	}
}

// State is everything the frame loop mutates between frames.
type State struct {
	Player geom.Vec2
	Angle  float64 // Facing in degrees, measured from +X toward +Y
	Mode   ViewMode
}

// Step applies one frame of input and returns the next state.
func (s State) Step(in Input, rules Rules) State {
	next := s
	if in.ToggleView {
		if next.Mode == ModeOverlay {
			next.Mode = ModePerspective
		} else {
			next.Mode = ModeOverlay
		}
	}

	switch rules.Control {
	case config.ControlPointer:
		next.Player = in.Pointer
	case config.ControlMotion:
		if in.RotateLeft {
			next.Angle -= rules.RotateStep
		}
		if in.RotateRight {
			next.Angle += rules.RotateStep
		}
		next.Angle = normalizeDegrees(next.Angle)

		heading := Heading(next.Angle)
		if in.Forward {
			next.Player = next.Player.Add(heading.Scale(rules.MoveStep))
		}
		if in.Backward {
			next.Player = next.Player.Sub(heading.Scale(rules.MoveStep))
		}
	}

	// Keep player in bounds
	next.Player.X = math.Max(0, math.Min(rules.Width, next.Player.X))
	next.Player.Y = math.Max(0, math.Min(rules.Height, next.Player.Y))
	return next
}

// Heading returns the unit vector for a facing in degrees.
func Heading(angle float64) geom.Vec2 {
	rad := angle * math.Pi / 180
	return geom.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
