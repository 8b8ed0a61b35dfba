package c5

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Debug table keys written by the cycle.
const (
	DebugFPS          = "FPS"
	DebugMouse        = "Mouse Position"
	DebugActive       = "Active"
	DebugHot          = "Hot"
	DebugMousePressed = "Mouse pressed"
	DebugDrawTime     = "draw time"
	DebugMaxDrawTime  = "Max draw time in the last 180 frames (ms)"
)

const (
	debugTextSize   = 12
	debugLineHeight = 16
	debugMaxLines   = 12
	debugPadding    = 10
)

// debugTable is an ordered key/value table. Values are stored in their
// JSON form; keys keep their first-insertion order.
type debugTable struct {
	keys     []string
	values   map[string]string
	rendered string
	lines    []string
}

func (d *debugTable) set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = encodeDebugValue(value)
}

func encodeDebugValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprint(v))
	}
	return string(b)
}

// text renders the table as one "key  value" line per key.
func (d *debugTable) text() string {
	var b strings.Builder
	for _, k := range d.keys {
		b.WriteString(k)
		b.WriteString("  ")
		b.WriteString(d.values[k])
		b.WriteByte('\n')
	}
	return b.String()
}

// refresh re-renders the table and reports whether the text differs from
// the previous refresh. The cached lines are only rebuilt on change.
func (d *debugTable) refresh() bool {
	t := d.text()
	if t == d.rendered {
		return false
	}
	d.rendered = t
	d.lines = strings.Split(strings.TrimSuffix(t, "\n"), "\n")
	return true
}

// DebugInfo sets a debug table entry. The value is shown as JSON.
func (app *App) DebugInfo(key string, value any) {
	app.debug.set(key, value)
}

// DebugText returns the debug table as rendered at the end of the last
// cycle.
func (app *App) DebugText() string {
	return app.debug.rendered
}

// ToggleDebug shows or hides the debug overlay.
func (app *App) ToggleDebug() {
	app.showDebug = !app.showDebug
	app.log().Info("c5: debug overlay", "shown", app.showDebug)
}

// DebugShown reports whether the debug overlay is visible.
func (app *App) DebugShown() bool {
	return app.showDebug
}

func debugRegionHeight() int {
	return debugMaxLines*debugLineHeight + 2*debugPadding
}

// drawDebug refreshes the table and, when shown, draws it in the debug
// region below the canvas.
func (app *App) drawDebug(s Surface) {
	if app.debug.refresh() {
		app.debugChanges++
		app.log().Debug("c5: debug table", "frame", app.timer.Frame(), "table", app.debug.rendered)
	}
	if !app.showDebug {
		return
	}
	top := float64(app.debugTop())
	w, _ := app.WindowSize()
	s.FillRect(0, top, float64(w), float64(debugRegionHeight()), ColorWhite)
	for i, line := range app.debug.lines {
		if i == debugMaxLines {
			break
		}
		y := top + debugPadding + float64(i+1)*debugLineHeight - 4
		s.DrawText(line, debugPadding, y, debugTextSize, ColorBlack, TextAlignLeft)
	}
}
