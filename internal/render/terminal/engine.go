// Package terminal runs games inside a terminal using tcell. Logical pixels
// are scaled onto character cells and shaded with block runes.
package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/render"
)

const tick = time.Second / 60

// Engine implements render.Engine on a tcell screen.
type Engine struct {
	screen tcell.Screen
	input  *InputManager
	title  string
	fps    float64
}

// NewEngine creates a terminal engine feeding the given input manager.
// A nil screen means the real terminal is opened when the game starts.
func NewEngine(screen tcell.Screen, input *InputManager) *Engine {
	return &Engine{screen: screen, input: input}
}

// SetWindowSize is a no-op: the terminal decides its own size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the terminal title where supported.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is a no-op: terminals are always resizable.
func (e *Engine) SetWindowResizable(resizable bool) {}

// ActualFPS returns the measured frame rate.
func (e *Engine) ActualFPS() float64 {
	return e.fps
}

// RunGame runs the frame loop until the game terminates or Ctrl-C is pressed.
func (e *Engine) RunGame(game render.Game) error {
	if e.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create terminal screen: %w", err)
		}
		e.screen = screen
	}
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer e.screen.Fini()

	e.screen.EnableMouse(tcell.MouseMotionEvents)
	e.screen.HideCursor()
	if e.title != "" {
		e.screen.SetTitle(e.title)
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go e.screen.ChannelEvents(events, quit)

	img := e.newImage(game)
	log := logger.Log.WithFields(logrus.Fields{"component": "terminal"})
	cols, rows := img.Grid()
	log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Info("Terminal backend started")

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if e.input.handleKey(ev) {
					return nil
				}
			case *tcell.EventMouse:
				e.input.handleMouse(ev, img)
			case *tcell.EventResize:
				img = e.newImage(game)
				e.screen.Sync()
			}
		case now := <-ticker.C:
			if dt := now.Sub(last).Seconds(); dt > 0 {
				e.fps = 1 / dt
			}
			last = now

			e.input.beginFrame()
			if err := game.Update(); err != nil {
				if errors.Is(err, render.ErrTerminated) {
					return nil
				}
				return err
			}
			img.Clear()
			game.Draw(img)
			img.flush(e.screen)
			e.screen.Show()
		}
	}
}

func (e *Engine) newImage(game render.Game) *Image {
	cols, rows := e.screen.Size()
	width, height := game.Layout(cols, rows)
	return NewImage(width, height, cols, rows)
}
