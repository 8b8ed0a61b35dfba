package c5

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts an App to ebiten.Game. Update records raw input; Draw runs
// the cycle, so arbitration always sees the latest sample.
type game struct {
	app     *App
	surface *EbitenSurface
	latest  pointerSample
	keys    []ebiten.Key
	w, h    int
}

func (g *game) Update() error {
	app := g.app
	if !app.Running() {
		return ebiten.Termination
	}
	g.latest = readMouse()
	g.keys = readKeys(g.keys)
	app.handleKeys(g.keys)

	if w, h := app.WindowSize(); w != g.w || h != g.h {
		g.w, g.h = w, h
		ebiten.SetWindowSize(w, h)
	}
	if app.showDebug {
		fps, tps := hostRates()
		app.DebugInfo("Host FPS/TPS", fmt.Sprintf("%.1f/%.1f", fps, tps))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		g.surface = NewEbitenSurface(screen)
	} else {
		g.surface.Reset(screen)
	}
	app := g.app
	if app.testRunner != nil {
		app.testRunner.step(app)
	}
	app.processInput(func() pointerSample { return g.latest })
	if err := app.Cycle(g.surface); err != nil {
		return
	}
	app.flushScreenshots(g.surface)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.app.WindowSize()
}

// Run opens a window for app and runs its loop until the window is closed
// or the app is stopped. Disposal hooks run before Run returns. Stopping
// the app is not an error.
func Run(app *App) error {
	w, h := app.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(app.cfg.Title)
	if app.cfg.TPS > 0 {
		ebiten.SetTPS(app.cfg.TPS)
	}
	app.Start()
	defer app.Dispose()

	err := ebiten.RunGame(&game{app: app, w: w, h: h})
	if err == nil || errors.Is(err, ebiten.Termination) || errors.Is(err, ErrStopped) {
		return nil
	}
	return fmt.Errorf("c5: run: %w", err)
}
