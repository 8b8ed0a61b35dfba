package c5

import (
	"errors"
	"fmt"
	"time"
)

// ErrStopped is returned by Cycle and Frame once the app has been stopped
// or disposed.
var ErrStopped = errors.New("c5: app stopped")

// Clock supplies the current time to the frame timer.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

type loopState uint8

const (
	stateIdle loopState = iota
	stateRunning
	stateStopped
	stateDisposed
)

func (s loopState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	case stateStopped:
		return "stopped"
	case stateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("loopState(%d)", uint8(s))
	}
}

// slowDrawTime is the draw duration above which a cycle is logged.
const slowDrawTime = 50 * time.Millisecond

// Load moves the app from idle to running. It runs at most once no matter
// how many times or from where it is called; Run and the first Cycle both
// call it.
func (app *App) Load() {
	app.loadOnce.Do(func() {
		if app.state == stateIdle {
			app.state = stateRunning
		}
		w, h := app.Size()
		app.log().Info("c5: app loaded", "width", w, "height", h, "axes", len(app.axes))
	})
}

// Start loads the app if needed and resumes a stopped loop. A disposed app
// stays disposed.
func (app *App) Start() {
	app.Load()
	if app.state == stateStopped {
		app.state = stateRunning
		app.log().Info("c5: app started")
	}
}

// Stop halts the loop. The windowed host exits at its next tick.
func (app *App) Stop() {
	if app.state == stateRunning || app.state == stateIdle {
		app.state = stateStopped
		app.log().Info("c5: app stopped")
	}
}

// Running reports whether cycles are being run.
func (app *App) Running() bool {
	return app.state == stateRunning
}

// OnDispose registers fn to run when the app is disposed. Hooks run in
// reverse registration order.
func (app *App) OnDispose(fn func()) {
	app.disposers = append(app.disposers, fn)
}

// Dispose stops the app and runs the disposal hooks. Only the first call has
// an effect.
func (app *App) Dispose() {
	app.disposeOnce.Do(func() {
		app.Stop()
		for i := len(app.disposers) - 1; i >= 0; i-- {
			app.disposers[i]()
		}
		app.disposers = nil
		app.state = stateDisposed
		app.log().Info("c5: app disposed")
	})
}

// Cycle runs one iteration of the loop on s:
//
//  1. clear the surface
//  2. update timing (frame delta, periodic FPS sample, limit animations)
//  3. run the drag protocol for the control points of every axis
//  4. call the draw callback, then the button strip and caption
//  5. draw control point markers on top
//  6. record the draw duration and refresh the debug table
//
// Pointer state must already be up to date. Cycle loads the app if it is
// idle and returns ErrStopped once it has been stopped.
func (app *App) Cycle(s Surface) error {
	app.Load()
	if app.state != stateRunning {
		return ErrStopped
	}
	app.surface = s
	defer func() { app.surface = discardSurface{} }()

	s.Clear(app.background)

	app.timer.tick(app.clock.Now())
	if app.timer.sampleFPS() {
		app.DebugInfo(DebugFPS, app.timer.FPS())
	}
	app.DebugInfo(DebugMouse, fmt.Sprintf("%v, %v", app.pointer.X, app.pointer.Y))
	dt := float32(app.timer.FrameTime().Seconds())
	for _, a := range app.axes {
		a.update(dt)
	}

	app.DebugInfo(DebugActive, app.ui.Active())
	app.DebugInfo(DebugHot, app.ui.Hot())
	app.DebugInfo(DebugMousePressed, app.pointer.Pressed)
	app.ui.BeginFrame()
	for _, a := range app.axes {
		a.updateControlPoints(app.ui, &app.pointer)
	}

	start := app.clock.Now()
	if app.draw != nil {
		app.draw()
	}
	drawTime := app.clock.Now().Sub(start)
	app.doButtons(s)
	app.drawCaption(s)

	for _, a := range app.axes {
		a.drawControlPoints(app.ui)
	}

	app.timer.Record(drawTime)
	if drawTime > slowDrawTime {
		app.log().Debug("c5: slow frame", "frame", app.timer.Frame(), "draw", drawTime)
	}
	app.DebugInfo(DebugDrawTime, durationMillis(drawTime))
	app.DebugInfo(DebugMaxDrawTime, durationMillis(app.timer.MaxDrawTime()))
	app.drawDebug(s)

	app.timer.advance()
	return nil
}

// Frame runs one headless frame on s: the test runner step, one pointer
// sample (an injected event if queued, else poll, else the previous state),
// the cycle, and any queued screenshots. A surface that implements Resizer
// is first resized to the window size, so a caption or button strip added
// by a click in one frame is in the picture from the next frame on.
func (app *App) Frame(s Surface, poll func() Pointer) error {
	if app.testRunner != nil {
		app.testRunner.step(app)
	}
	var real func() pointerSample
	if poll != nil {
		real = func() pointerSample {
			p := poll()
			return pointerSample{x: p.X, y: p.Y, pressed: p.Pressed, button: p.Button}
		}
	}
	app.processInput(real)
	if r, ok := s.(Resizer); ok {
		w, h := app.WindowSize()
		if sw, sh := s.Size(); sw != w || sh != h {
			app.log().Debug("c5: resize surface", "width", w, "height", h)
			r.Resize(w, h)
		}
	}
	if err := app.Cycle(s); err != nil {
		return err
	}
	app.flushScreenshots(s)
	return nil
}

// RunHeadless runs frames cycles on s, or fewer if the app is stopped. When
// a test runner is attached, frames <= 0 means "until the script is done".
func RunHeadless(app *App, s Surface, frames int) error {
	app.Start()
	for i := 0; frames <= 0 || i < frames; i++ {
		if frames <= 0 && (app.testRunner == nil || app.testRunner.Done()) {
			break
		}
		if err := app.Frame(s, nil); err != nil {
			if errors.Is(err, ErrStopped) {
				return nil
			}
			return err
		}
	}
	return nil
}
