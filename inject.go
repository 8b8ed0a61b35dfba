package c5

// InjectPress queues a left-button press at the given canvas pixel. Injected
// events are consumed one per cycle and replace real input for that cycle.
func (app *App) InjectPress(x, y float64) {
	app.injectQueue = append(app.injectQueue, pointerSample{x: x, y: y, pressed: true, button: MouseButtonLeft})
}

// InjectMove queues a pointer move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (app *App) InjectMove(x, y float64) {
	app.injectQueue = append(app.injectQueue, pointerSample{x: x, y: y, pressed: true, button: MouseButtonLeft})
}

// InjectHover queues a pointer move with no button held.
func (app *App) InjectHover(x, y float64) {
	app.injectQueue = append(app.injectQueue, pointerSample{x: x, y: y, button: MouseButtonLeft})
}

// InjectRelease queues a pointer release at the given canvas pixel.
func (app *App) InjectRelease(x, y float64) {
	app.injectQueue = append(app.injectQueue, pointerSample{x: x, y: y, button: MouseButtonLeft})
}

// InjectClick hovers, presses and releases at the same point. Widgets must
// be hot before a press captures them, so the sequence takes three cycles.
func (app *App) InjectClick(x, y float64) {
	app.InjectHover(x, y)
	app.InjectPress(x, y)
	app.InjectRelease(x, y)
}

// InjectDrag queues a full drag: a hover and a press at (fromX, fromY),
// frames-2 interpolated moves, a move onto (toX, toY) and the release there.
// Frames below 2 are raised to 2.
func (app *App) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	app.InjectHover(fromX, fromY)
	app.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		app.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	app.InjectMove(toX, toY)
	app.InjectRelease(toX, toY)
}

// PendingInjected returns the number of queued synthetic events.
func (app *App) PendingInjected() int {
	return len(app.injectQueue)
}

func (app *App) popInjected() (pointerSample, bool) {
	if len(app.injectQueue) == 0 {
		return pointerSample{}, false
	}
	s := app.injectQueue[0]
	copy(app.injectQueue, app.injectQueue[1:])
	app.injectQueue = app.injectQueue[:len(app.injectQueue)-1]
	return s, true
}
