package c5

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// App is the runtime shell. It owns the canvas, its axes, the pointer
// state, widget arbitration, the button strip, the caption and the debug
// table, and runs the per-cycle loop.
//
// An App is driven from a single goroutine: either the Ebitengine loop (see
// Run) or a headless driver calling Frame.
type App struct {
	cfg        Config
	background Color
	logger     *slog.Logger

	axes    []*Axis
	ui      *UI
	pointer Pointer
	surface Surface

	draw      func()
	onKey     func(ebiten.Key)
	onPointer func(PointerEvent, Pointer)
	debugKey  *ebiten.Key

	buttons     []*Button
	onAnyButton func()
	caption     string
	typesetter  Typesetter

	debug        debugTable
	showDebug    bool
	debugChanges int

	timer FrameTimer
	clock Clock

	injectQueue     []pointerSample
	testRunner      *TestRunner
	screenshotQueue []string

	state       loopState
	loadOnce    sync.Once
	disposeOnce sync.Once
	disposers   []func()
}

// NewApp creates an app with one default axis covering the whole canvas.
// Config fields left zero take their defaults.
func NewApp(cfg Config) (*App, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	bg, _ := ParseHex(cfg.Background)
	app := &App{
		cfg:        cfg,
		background: bg,
		logger:     cfg.Logger,
		ui:         NewUI(),
		surface:    discardSurface{},
		showDebug:  cfg.ShowDebug,
		clock:      wallClock{},
	}
	if cfg.DebugKey != "" {
		k, _ := lookupKey(cfg.DebugKey)
		app.debugKey = &k
	}
	app.AddAxis()
	return app, nil
}

// MustNewApp is like NewApp but panics on an invalid config.
func MustNewApp(cfg Config) *App {
	app, err := NewApp(cfg)
	if err != nil {
		panic(fmt.Sprintf("c5: %v", err))
	}
	return app
}

func (app *App) log() *slog.Logger {
	if app.logger != nil {
		return app.logger
	}
	return Logger()
}

// Config returns the effective configuration.
func (app *App) Config() Config {
	return app.cfg
}

// Size returns the canvas size in pixels.
func (app *App) Size() (width, height int) {
	return app.cfg.Width, app.cfg.Height
}

// AddAxis adds an axis with the default limits whose viewport covers the
// whole canvas. Axis IDs start at 1.
func (app *App) AddAxis() *Axis {
	vp := Rect{Width: float64(app.cfg.Width), Height: float64(app.cfg.Height)}
	a := newAxis(app, len(app.axes)+1, vp)
	app.axes = append(app.axes, a)
	return a
}

// Axis returns the default axis.
func (app *App) Axis() *Axis {
	return app.axes[0]
}

// Axes returns all axes in creation order.
func (app *App) Axes() []*Axis {
	return app.axes
}

// UI returns the app's widget arbitration state.
func (app *App) UI() *UI {
	return app.ui
}

// Pointer returns the current pointer state.
func (app *App) Pointer() Pointer {
	return app.pointer
}

// Timer returns the frame timing state.
func (app *App) Timer() *FrameTimer {
	return &app.timer
}

// Surface returns the surface of the running cycle. Outside a cycle it
// returns a surface that discards everything.
func (app *App) Surface() Surface {
	return app.surface
}

// SetDraw sets the callback invoked once per cycle to draw the scene. It
// must not block.
func (app *App) SetDraw(fn func()) {
	app.draw = fn
}

// OnKey sets a callback that receives each key pressed since the previous
// tick. Only the windowed host delivers keys.
func (app *App) OnKey(fn func(ebiten.Key)) {
	app.onKey = fn
}

// SetClock replaces the wall clock used for timing.
func (app *App) SetClock(c Clock) {
	app.clock = c
}

// Region layout below the canvas: button strip, caption, debug table.

func (app *App) captionTop() int {
	return app.cfg.Height + app.buttonStripHeight()
}

func (app *App) debugTop() int {
	return app.captionTop() + app.captionRegionHeight()
}

// WindowSize returns the size of the whole window: the canvas plus the
// button strip, caption and debug regions that are currently in use.
func (app *App) WindowSize() (width, height int) {
	height = app.debugTop()
	if app.showDebug {
		height += debugRegionHeight()
	}
	return app.cfg.Width, height
}
