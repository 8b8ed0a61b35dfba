package c5

import "testing"

func TestControlPointIDs(t *testing.T) {
	app, _ := newTestApp(t)
	a := app.Axis()
	p1 := a.AddControlPoint(0, 0, "p1")
	p2 := a.AddControlPoint(1, 1, "p2")
	q := app.AddAxis().AddControlPoint(0, 0, "q")
	if p1.ID() != 101 || p2.ID() != 102 || q.ID() != 201 {
		t.Errorf("IDs = %d, %d, %d, want 101, 102, 201", p1.ID(), p2.ID(), q.ID())
	}
	if p1.Radius != DefaultControlPointRadius || !p1.Visible || p1.Fill != ColorRed {
		t.Errorf("defaults = %+v", *p1)
	}
	if got := a.ControlPoints(); len(got) != 2 || got[0] != p1 || got[1] != p2 {
		t.Errorf("ControlPoints = %v", got)
	}
}

func TestControlPointHitRadius(t *testing.T) {
	app, _ := newTestApp(t)
	a := app.Axis() // 87.5 px per unit
	p := a.AddControlPoint(0, 0, "")
	tests := []struct {
		mx, my float64
		want   bool
	}{
		{0, 0, true},
		{0.06, 0, true},  // 5.25 px
		{0.07, 0, false}, // 6.125 px
		{0.04, 0.04, true},
		{0, -0.08, false},
	}
	for _, tt := range tests {
		if got := a.pointerNear(p, tt.mx, tt.my); got != tt.want {
			t.Errorf("pointerNear(%v, %v) = %v, want %v", tt.mx, tt.my, got, tt.want)
		}
	}
}

func TestControlPointDrag(t *testing.T) {
	app, rec := newTestApp(t)
	a := app.Axis()
	a.SetLimits(-2, 2, -2, 2)
	p := a.AddControlPoint(1, 0, "p")
	q := a.AddControlPoint(-1, -1, "q")

	// (1, 0) is pixel (525, 350); (0, 1) is pixel (350, 175).
	app.InjectDrag(525, 350, 350, 175, 10)
	n := app.PendingInjected()
	if n != 12 {
		t.Fatalf("queued %d events, want 12", n)
	}

	runFrames(t, app, rec, 1)
	if app.UI().Hot() != p.ID() {
		t.Fatalf("after hover hot = %d, want %d", app.UI().Hot(), p.ID())
	}
	for i := 2; i < n; i++ {
		runFrames(t, app, rec, 1)
		if app.UI().Active() != p.ID() {
			t.Fatalf("frame %d: active = %d, want %d", i, app.UI().Active(), p.ID())
		}
	}
	runFrames(t, app, rec, 1)
	if app.UI().Active() != NoWidget {
		t.Errorf("after release active = %d, want NoWidget", app.UI().Active())
	}
	if !approxEqual(p.X, 0, 1e-6) || !approxEqual(p.Y, 1, 1e-6) {
		t.Errorf("p = (%v, %v), want (0, 1)", p.X, p.Y)
	}
	if q.X != -1 || q.Y != -1 {
		t.Errorf("q moved to (%v, %v)", q.X, q.Y)
	}

	// More cycles with the button up leave the point alone.
	runFrames(t, app, rec, 3)
	if !approxEqual(p.X, 0, 1e-6) || !approxEqual(p.Y, 1, 1e-6) {
		t.Errorf("p drifted to (%v, %v)", p.X, p.Y)
	}
}

func TestControlPointDragLeavesRadius(t *testing.T) {
	app, rec := newTestApp(t)
	a := app.Axis()
	p := a.AddControlPoint(0, 0, "p")

	// A fast drag: the pointer jumps far outside the hit radius in one cycle.
	app.InjectHover(350, 350)
	app.InjectPress(350, 350)
	app.InjectMove(612.5, 350)
	runFrames(t, app, rec, 3)
	if app.UI().Active() != p.ID() {
		t.Fatalf("active = %d, want %d", app.UI().Active(), p.ID())
	}
	if !approxEqual(p.X, 3, 1e-9) || p.Y != 0 {
		t.Errorf("p = (%v, %v), want (3, 0)", p.X, p.Y)
	}
}

func TestControlPointNotGrabbedBySweep(t *testing.T) {
	app, rec := newTestApp(t)
	p := app.Axis().AddControlPoint(0, 0, "p")

	// The button goes down on empty canvas, then passes over the point.
	app.InjectHover(100, 100)
	app.InjectPress(100, 100)
	app.InjectMove(350, 350)
	app.InjectMove(437.5, 350)
	app.InjectRelease(437.5, 350)
	runFrames(t, app, rec, app.PendingInjected())
	if p.X != 0 || p.Y != 0 {
		t.Errorf("p = (%v, %v), want (0, 0)", p.X, p.Y)
	}
	if app.UI().Active() != NoWidget {
		t.Errorf("active = %d, want NoWidget", app.UI().Active())
	}
}

func TestControlPointStaysOnRelease(t *testing.T) {
	app, rec := newTestApp(t)
	p := app.Axis().AddControlPoint(0, 0, "p")

	// The release lands one logical unit right of the last pressed position.
	app.InjectHover(350, 350)
	app.InjectPress(350, 350)
	app.InjectMove(437.5, 350)
	app.InjectRelease(525, 350)
	runFrames(t, app, rec, app.PendingInjected())
	if !approxEqual(p.X, 1, 1e-9) || p.Y != 0 {
		t.Errorf("p = (%v, %v), want (1, 0)", p.X, p.Y)
	}
}

func TestControlPointHiddenIgnored(t *testing.T) {
	app, rec := newTestApp(t)
	p := app.Axis().AddControlPoint(0, 0, "p")
	p.Visible = false
	app.InjectDrag(350, 350, 400, 400, 4)
	runFrames(t, app, rec, app.PendingInjected())
	if p.X != 0 || p.Y != 0 {
		t.Errorf("hidden point moved to (%v, %v)", p.X, p.Y)
	}
	if app.UI().Hot() != NoWidget {
		t.Errorf("hot = %d, want NoWidget", app.UI().Hot())
	}
}

func TestControlPointOverlapFirstWins(t *testing.T) {
	app, rec := newTestApp(t)
	a := app.Axis()
	first := a.AddControlPoint(0, 0, "first")
	second := a.AddControlPoint(0.01, 0, "second")
	app.InjectDrag(350, 350, 437.5, 350, 3)
	runFrames(t, app, rec, app.PendingInjected())
	if !approxEqual(first.X, 1, 1e-9) {
		t.Errorf("first.X = %v, want 1", first.X)
	}
	if second.X != 0.01 {
		t.Errorf("second.X = %v, want 0.01", second.X)
	}
}

func TestControlPointHotMarker(t *testing.T) {
	app, rec := newTestApp(t)
	app.Axis().AddControlPoint(0, 0, "p")
	app.InjectHover(350, 350)
	runFrames(t, app, rec, 1)
	found := false
	for _, cmd := range rec.Commands {
		if cmd.Type == CommandStrokeCircle && cmd.Color == ColorYellow {
			found = true
		}
	}
	if !found {
		t.Error("hot control point not outlined in yellow")
	}
}
