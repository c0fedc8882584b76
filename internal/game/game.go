package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/view"
	"chosenoffset.com/raycaster/internal/world/scene"
)

// Game holds all frame-loop state and implements render.Game.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	State        State
	Scene        *scene.Scene
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Clock        render.Clock // Optional, used by the debug overlay

	rules Rules
	fan   *raycast.Fan
	frame raycast.Frame
	debug bool
	log   *logrus.Entry

	// Debug
	FrameCount int
}

// NewGame creates a game for cfg over the given scene. The player starts in
// the centre of the viewport.
func NewGame(cfg *config.Config, sc *scene.Scene, r render.Renderer, input render.InputManager) *Game {
	g := &Game{
		ScreenWidth:  cfg.Viewport.Width,
		ScreenHeight: cfg.Viewport.Height,
		State: State{
			Player: geom.Vec2{X: float64(cfg.Viewport.Width) / 2, Y: float64(cfg.Viewport.Height) / 2},
			Angle:  normalizeDegrees(cfg.Motion.StartAngle),
			Mode:   ModeOverlay,
		},
		Scene:    sc,
		Renderer: r,
		InputMgr: input,
		rules:    RulesFrom(cfg),
		fan:      raycast.NewFan(cfg.Rays.FOV),
		debug:    cfg.Debug,
		log:      logger.Log.WithFields(logrus.Fields{"component": "visibility"}),
	}
	g.cast()
	return g
}

// Frame returns the buffers from the most recent visibility pass.
func (g *Game) Frame() *raycast.Frame {
	return &g.frame
}

// Directions returns the current fan.
func (g *Game) Directions() []geom.Vec2 {
	return g.fan.Directions(raycast.StartAngle(g.State.Angle, g.fan.Size()))
}

// Update polls input, advances the state, and runs the visibility pass.
func (g *Game) Update() error {
	g.FrameCount++

	in := g.poll()
	if in.Quit {
		g.log.WithField("frames", g.FrameCount).Info("Quit requested")
		return render.ErrTerminated
	}

	prev := g.State
	g.State = g.State.Step(in, g.rules)
	if g.State.Mode != prev.Mode {
		g.log.WithField("mode", g.State.Mode).Debug("View mode toggled")
	}

	g.cast()

	if in.Dump {
		g.dumpDistances()
	}
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Draw renders the last visibility pass in the current view mode.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(view.Background)

	switch g.State.Mode {
	case ModeOverlay:
		view.Overlay(g.Renderer, screen, g.State.Player, &g.frame, g.Scene.Walls())
	case ModePerspective:
		view.Columns(g.Renderer, screen, &g.frame)
	}

	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) cast() {
	raycast.Cast(g.State.Player, g.State.Angle, g.Directions(), g.Scene.Walls(), &g.frame)
}

func (g *Game) poll() Input {
	x, y := g.InputMgr.GetCursorPosition()
	in := g.InputMgr
	return Input{
		Pointer:     geom.Vec2{X: float64(x), Y: float64(y)},
		ToggleView:  in.IsKeyJustPressed(render.KeyV),
		RotateLeft:  in.IsKeyPressed(render.KeyA) || in.IsKeyPressed(render.KeyLeft),
		RotateRight: in.IsKeyPressed(render.KeyD) || in.IsKeyPressed(render.KeyRight),
		Forward:     in.IsKeyPressed(render.KeyW) || in.IsKeyPressed(render.KeyUp),
		Backward:    in.IsKeyPressed(render.KeyS) || in.IsKeyPressed(render.KeyDown),
		Dump:        in.IsKeyJustPressed(render.KeyP),
		Quit:        in.IsKeyJustPressed(render.KeyEscape) || in.IsKeyJustPressed(render.KeyQ),
	}
}

func (g *Game) dumpDistances() {
	hits := 0
	for _, h := range g.frame.Hits {
		if h.OK {
			hits++
		}
	}
	g.log.WithFields(logrus.Fields{
		"frame":     g.FrameCount,
		"player":    fmt.Sprintf("(%.1f, %.1f)", g.State.Player.X, g.State.Player.Y),
		"angle":     g.State.Angle,
		"rays":      g.frame.Len(),
		"hits":      hits,
		"distances": g.frame.Distances,
	}).Info("Distance buffer")
}

func (g *Game) drawDebug(screen render.Image) {
	fps := 0.0
	if g.Clock != nil {
		fps = g.Clock.ActualFPS()
	}
	msg := fmt.Sprintf("FPS: %.1f\nPlayer: (%.0f, %.0f)\nAngle: %.0f\nMode: %s",
		fps, g.State.Player.X, g.State.Player.Y, g.State.Angle, g.State.Mode)
	g.Renderer.DrawText(screen, msg, 4, 4)
}
