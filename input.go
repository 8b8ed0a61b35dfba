package c5

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer is the raw mouse state in canvas pixels. Input sources only write
// raw state here; widget arbitration happens later in the cycle.
type Pointer struct {
	X, Y    float64 // current position
	PX, PY  float64 // position before the last update
	Pressed bool
	// PPressed is the button state before the last update.
	PPressed bool
	Dragged  bool // pressed and moved since the press
	Button   MouseButton
}

// JustPressed reports whether the button went down on the last update.
func (p *Pointer) JustPressed() bool {
	return p.Pressed && !p.PPressed
}

// JustReleased reports whether the button went up on the last update.
func (p *Pointer) JustReleased() bool {
	return !p.Pressed && p.PPressed
}

// Moved reports whether the last update changed the position.
func (p *Pointer) Moved() bool {
	return p.X != p.PX || p.Y != p.PY
}

// update records a new sample. The button is latched on press so that it
// does not change mid-interaction.
func (p *Pointer) update(x, y float64, pressed bool, button MouseButton) {
	moved := x != p.X || y != p.Y
	p.PX, p.PY = p.X, p.Y
	p.X, p.Y = x, y
	switch {
	case pressed && !p.Pressed:
		p.Button = button
		p.Dragged = false
	case pressed && moved:
		p.Dragged = true
	case !pressed:
		p.Dragged = false
	}
	p.PPressed = p.Pressed
	p.Pressed = pressed
}

// InDistance reports whether the pointer lies strictly within r pixels of
// (x, y).
func (p *Pointer) InDistance(x, y, r float64) bool {
	dx, dy := p.X-x, p.Y-y
	return dx*dx+dy*dy < r*r
}

// pointerSample is one reading of the mouse.
type pointerSample struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// readMouse polls the Ebitengine mouse. When several buttons are down the
// left one wins, then right, then middle.
func readMouse() pointerSample {
	mx, my := ebiten.CursorPosition()
	s := pointerSample{x: float64(mx), y: float64(my)}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		s.pressed = true
		switch {
		case left:
			s.button = MouseButtonLeft
		case right:
			s.button = MouseButtonRight
		default:
			s.button = MouseButtonMiddle
		}
	}
	return s
}

// readKeys appends the keys pressed since the previous tick.
func readKeys(buf []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(buf[:0])
}

// processInput feeds one pointer sample into the app. An injected event, if
// queued, replaces real input for this cycle.
func (app *App) processInput(real func() pointerSample) {
	defer app.dispatchPointer()
	if s, ok := app.popInjected(); ok {
		app.pointer.update(s.x, s.y, s.pressed, s.button)
		return
	}
	if real == nil {
		app.pointer.update(app.pointer.X, app.pointer.Y, app.pointer.Pressed, app.pointer.Button)
		return
	}
	s := real()
	app.pointer.update(s.x, s.y, s.pressed, s.button)
}

// PointerEvent names a change in pointer state seen by OnPointer.
type PointerEvent uint8

const (
	PointerPressed PointerEvent = iota
	PointerReleased
	// PointerClicked follows PointerReleased on every release, wherever the
	// press started.
	PointerClicked
	PointerDragged
	PointerMoved
)

func (e PointerEvent) String() string {
	switch e {
	case PointerPressed:
		return "pressed"
	case PointerReleased:
		return "released"
	case PointerClicked:
		return "clicked"
	case PointerDragged:
		return "dragged"
	case PointerMoved:
		return "moved"
	default:
		return fmt.Sprintf("PointerEvent(%d)", uint8(e))
	}
}

// OnPointer sets a callback that receives pointer events in canvas pixels.
// It runs after the pointer sample of a frame is taken and before the
// cycle's widget arbitration. A press or release that also moved reports
// only the press or release.
func (app *App) OnPointer(fn func(PointerEvent, Pointer)) {
	app.onPointer = fn
}

func (app *App) dispatchPointer() {
	fn := app.onPointer
	if fn == nil {
		return
	}
	p := app.pointer
	switch {
	case p.JustPressed():
		fn(PointerPressed, p)
	case p.JustReleased():
		fn(PointerReleased, p)
		fn(PointerClicked, p)
	case p.Moved() && p.Pressed:
		fn(PointerDragged, p)
	case p.Moved():
		fn(PointerMoved, p)
	}
}

// handleKeys dispatches just-pressed keys to the debug toggle and the OnKey
// callback.
func (app *App) handleKeys(keys []ebiten.Key) {
	for _, k := range keys {
		if app.debugKey != nil && k == *app.debugKey {
			app.ToggleDebug()
		}
		if app.onKey != nil {
			app.onKey(k)
		}
	}
}
