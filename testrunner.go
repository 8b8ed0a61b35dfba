package c5

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptOp is the kind of a test script step.
type scriptOp uint8

const (
	opUnknown scriptOp = iota
	opClick
	opDrag
	opMove
	opWait
	opScreenshot
	opDebug
	opStop
)

var scriptOps = map[string]scriptOp{
	"click":      opClick,
	"drag":       opDrag,
	"move":       opMove,
	"wait":       opWait,
	"screenshot": opScreenshot,
	"debug":      opDebug,
	"stop":       opStop,
}

// scriptStep is one decoded step. Positions are canvas pixels.
type scriptStep struct {
	op       scriptOp
	action   string
	at       Vec2
	from, to Vec2
	frames   int
	label    string
}

func (st *scriptStep) UnmarshalJSON(data []byte) error {
	var raw struct {
		Action string  `json:"action"`
		Label  string  `json:"label"`
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		FromX  float64 `json:"fromX"`
		FromY  float64 `json:"fromY"`
		ToX    float64 `json:"toX"`
		ToY    float64 `json:"toY"`
		Frames int     `json:"frames"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*st = scriptStep{
		op:     scriptOps[raw.Action],
		action: raw.Action,
		at:     Vec2{raw.X, raw.Y},
		from:   Vec2{raw.FromX, raw.FromY},
		to:     Vec2{raw.ToX, raw.ToY},
		frames: raw.Frames,
		label:  raw.Label,
	}
	return nil
}

// run performs the step and returns how many further frames to hold before
// the next one.
func (st scriptStep) run(app *App) int {
	switch st.op {
	case opClick:
		app.InjectClick(st.at.X, st.at.Y)
	case opMove:
		app.InjectHover(st.at.X, st.at.Y)
	case opDrag:
		app.InjectDrag(st.from.X, st.from.Y, st.to.X, st.to.Y, st.frames)
	case opWait:
		// The frame that runs the wait is the first waited frame.
		return max(st.frames-1, 0)
	case opScreenshot:
		app.Screenshot(st.label)
	case opDebug:
		app.ToggleDebug()
	case opStop:
		app.Stop()
	}
	return 0
}

// TestRunner replays a pointer script against an App, one step per frame.
// A step only starts once the injected events of the previous one are used
// up, so a drag or click completes before the next screenshot.
//
// A script is a JSON object with a "steps" array. Each step has an "action"
// of click (x, y), move (x, y), drag (fromX, fromY, toX, toY, frames),
// wait (frames), screenshot (label), debug or stop:
//
//	{"steps": [
//	  {"action": "drag", "fromX": 525, "fromY": 350, "toX": 350, "toY": 175, "frames": 10},
//	  {"action": "screenshot", "label": "after-drag"}
//	]}
type TestRunner struct {
	steps    []scriptStep
	next     int
	hold     int
	finished bool
}

// LoadTestScript decodes and validates a script.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("c5: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("c5: parse test script: no steps")
	}
	for i, st := range script.Steps {
		if st.op == opUnknown {
			return nil, fmt.Errorf("c5: parse test script: step %d: unknown action %q", i, st.action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to the app. Frame advances it before the
// pointer sample is taken.
func (app *App) SetTestRunner(runner *TestRunner) {
	app.testRunner = runner
}

// Done reports whether the script has run to the end.
func (r *TestRunner) Done() bool {
	return r.finished
}

func (r *TestRunner) step(app *App) {
	switch {
	case r.finished, app.PendingInjected() > 0:
		return
	case r.hold > 0:
		r.hold--
		return
	case r.next == len(r.steps):
		r.finished = true
		return
	}
	r.hold = r.steps[r.next].run(app)
	r.next++
	r.finished = r.next == len(r.steps) && r.hold == 0 && app.PendingInjected() == 0
}
