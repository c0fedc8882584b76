package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// holdWindow is how long a key counts as held after its last key event.
// Terminals report repeats rather than key-up events.
const holdWindow = 120 * time.Millisecond

// InputManager implements render.InputManager from tcell events.
type InputManager struct {
	now      func() time.Time
	lastSeen map[render.Key]time.Time
	pending  map[render.Key]bool
	just     map[render.Key]bool
	mouseX   int
	mouseY   int
}

// NewInputManager creates a terminal input manager.
func NewInputManager() *InputManager {
	return &InputManager{
		now:      time.Now,
		lastSeen: make(map[render.Key]time.Time),
		pending:  make(map[render.Key]bool),
		just:     make(map[render.Key]bool),
	}
}

// IsKeyPressed returns whether the key has been reported within the hold window.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	seen, ok := m.lastSeen[key]
	return ok && m.now().Sub(seen) <= holdWindow
}

// IsKeyJustPressed returns whether the key was reported since the previous frame.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return m.just[key]
}

// GetCursorPosition returns the last mouse position in logical pixels.
func (m *InputManager) GetCursorPosition() (x, y int) {
	return m.mouseX, m.mouseY
}

// beginFrame promotes keys seen since the last frame to just-pressed.
func (m *InputManager) beginFrame() {
	m.just, m.pending = m.pending, m.just
	clear(m.pending)
}

// handleKey records a key event. It reports whether the event asks to quit.
func (m *InputManager) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	key, ok := translateKey(ev)
	if !ok {
		return false
	}
	m.lastSeen[key] = m.now()
	m.pending[key] = true
	return false
}

// handleMouse records the pointer position, converting cells to logical pixels.
func (m *InputManager) handleMouse(ev *tcell.EventMouse, img *Image) {
	col, row := ev.Position()
	m.mouseX = col * img.width / img.cols
	m.mouseY = row * img.height / img.rows
}

func translateKey(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return render.KeyW, true
		case 'a':
			return render.KeyA, true
		case 's':
			return render.KeyS, true
		case 'd':
			return render.KeyD, true
		case 'v':
			return render.KeyV, true
		case 'p':
			return render.KeyP, true
		case 'q':
			return render.KeyQ, true
		}
	}
	return 0, false
}
