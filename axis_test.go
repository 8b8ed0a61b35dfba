package c5

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestAxisDefaults(t *testing.T) {
	app, _ := newTestApp(t)
	a := app.Axis()
	xmin, xmax, ymin, ymax := a.Limits()
	if xmin != -4 || xmax != 4 || ymin != -4 || ymax != 4 {
		t.Errorf("Limits = (%v, %v, %v, %v), want (-4, 4, -4, 4)", xmin, xmax, ymin, ymax)
	}
	sx, sy := a.Scale()
	if sx != 87.5 || sy != 87.5 {
		t.Errorf("Scale = (%v, %v), want (87.5, 87.5)", sx, sy)
	}
	ox, oy := a.Origin()
	if ox != 350 || oy != 350 {
		t.Errorf("Origin = (%v, %v), want (350, 350)", ox, oy)
	}
}

func TestAxisRoundTrip(t *testing.T) {
	tests := []struct {
		name                   string
		xmin, xmax, ymin, ymax float64
		vp                     Rect
	}{
		{"square", -2, 2, -2, 2, Rect{0, 0, 700, 700}},
		{"offset", -math.Pi, math.Pi, -math.Pi, math.Pi, Rect{465, 15, 420, 420}},
		{"skewed", 0, 30, -0.2, 1.8, Rect{0, 350, 700, 300}},
		{"tiny", 1e-3, 2e-3, -5e-4, 5e-4, Rect{10, 10, 333, 211}},
		{"inverted", 4, -4, -4, 4, Rect{0, 0, 700, 700}},
	}
	points := [][2]float64{{0, 0}, {1, -1}, {0.123, 4.56}, {-7.5, 3.25}, {1e-3, -2e-4}}
	for _, tt := range tests {
		app, _ := newTestApp(t)
		a := app.Axis()
		a.SetViewport(tt.vp.X, tt.vp.Y, tt.vp.X+tt.vp.Width, tt.vp.Y+tt.vp.Height)
		a.SetLimits(tt.xmin, tt.xmax, tt.ymin, tt.ymax)
		for _, p := range points {
			px, py := a.ToScreen(p[0], p[1])
			x, y := a.ToLogical(px, py)
			if !approxEqual(x, p[0], 1e-9) || !approxEqual(y, p[1], 1e-9) {
				t.Errorf("%s: ToLogical(ToScreen(%v, %v)) = (%v, %v)", tt.name, p[0], p[1], x, y)
			}
		}
	}
}

func TestAxisCornersMapToViewport(t *testing.T) {
	app, _ := newTestApp(t)
	a := app.Axis()
	a.SetViewport(465, 15, 885, 435)
	a.SetLimits(-math.Pi, math.Pi, -1, 2)

	// The origin is rounded to whole pixels, so corners are within half a
	// pixel of the viewport edges.
	px, py := a.ToScreen(-math.Pi, 2)
	if !approxEqual(px, 465, 0.5+1e-9) || !approxEqual(py, 15, 0.5+1e-9) {
		t.Errorf("top-left = (%v, %v), want ~(465, 15)", px, py)
	}
	px, py = a.ToScreen(math.Pi, -1)
	if !approxEqual(px, 885, 0.5+1e-9) || !approxEqual(py, 435, 0.5+1e-9) {
		t.Errorf("bottom-right = (%v, %v), want ~(885, 435)", px, py)
	}
	ox, oy := a.Origin()
	if ox != math.Round(ox) || oy != math.Round(oy) {
		t.Errorf("Origin = (%v, %v), want whole pixels", ox, oy)
	}
}

func TestAxisYUp(t *testing.T) {
	app, _ := newTestApp(t)
	a := app.Axis()
	_, low := a.ToScreen(0, -1)
	_, high := a.ToScreen(0, 1)
	if high >= low {
		t.Errorf("y=1 at pixel %v, y=-1 at %v; larger logical y must be higher on screen", high, low)
	}
}

func TestAxisMouse(t *testing.T) {
	app, _ := newTestApp(t)
	a := app.Axis()
	a.SetLimits(-2, 2, -2, 2)
	app.pointer.update(350, 350, false, MouseButtonLeft)
	app.pointer.update(525, 175, false, MouseButtonLeft)
	if a.MouseX() != 1 || a.MouseY() != 1 {
		t.Errorf("Mouse = (%v, %v), want (1, 1)", a.MouseX(), a.MouseY())
	}
	if a.PMouseX() != 0 || a.PMouseY() != 0 {
		t.Errorf("PMouse = (%v, %v), want (0, 0)", a.PMouseX(), a.PMouseY())
	}
}

func TestAnimateLimits(t *testing.T) {
	app, _ := newTestApp(t)
	a := app.Axis()
	a.AnimateLimits(-2, 2, -1, 1, 1, nil)
	if !a.Animating() {
		t.Fatal("Animating = false after AnimateLimits")
	}
	a.update(0.5)
	xmin, xmax, ymin, ymax := a.Limits()
	if !approxEqual(xmin, -3, 1e-5) || !approxEqual(xmax, 3, 1e-5) ||
		!approxEqual(ymin, -2.5, 1e-5) || !approxEqual(ymax, 2.5, 1e-5) {
		t.Errorf("halfway limits = (%v, %v, %v, %v), want (-3, 3, -2.5, 2.5)", xmin, xmax, ymin, ymax)
	}
	sx, _ := a.Scale()
	if !approxEqual(sx, 700.0/6, 1e-3) {
		t.Errorf("halfway xScale = %v, want %v", sx, 700.0/6)
	}
	a.update(0.6)
	xmin, xmax, ymin, ymax = a.Limits()
	if xmin != -2 || xmax != 2 || ymin != -1 || ymax != 1 {
		t.Errorf("final limits = (%v, %v, %v, %v), want (-2, 2, -1, 1)", xmin, xmax, ymin, ymax)
	}
	if a.Animating() {
		t.Error("Animating = true after the duration elapsed")
	}
}

func TestSetLimitsCancelsAnimation(t *testing.T) {
	app, _ := newTestApp(t)
	a := app.Axis()
	a.AnimateLimits(-1, 1, -1, 1, 1, nil)
	a.SetLimits(0, 10, 0, 10)
	a.update(0.5)
	if xmin, xmax, _, _ := a.Limits(); xmin != 0 || xmax != 10 {
		t.Errorf("limits = (%v, %v), want (0, 10)", xmin, xmax)
	}
	if a.Animating() {
		t.Error("Animating = true after SetLimits")
	}

	a.AnimateLimits(-1, 1, -1, 1, 0, nil)
	if xmin, _, _, _ := a.Limits(); xmin != -1 || a.Animating() {
		t.Errorf("zero-duration animation: xmin = %v, animating = %v", xmin, a.Animating())
	}
}

func TestWithClipReleasesOnPanic(t *testing.T) {
	app, rec := newTestApp(t)
	app.surface = rec
	func() {
		defer func() { _ = recover() }()
		app.Axis().WithClip(func() { panic("boom") })
	}()
	if rec.ClipDepth() != 0 {
		t.Errorf("ClipDepth = %d after panic, want 0", rec.ClipDepth())
	}
}

func TestClipScopeEndIdempotent(t *testing.T) {
	app, rec := newTestApp(t)
	app.surface = rec
	scope := app.Axis().BeginClip()
	scope.End()
	scope.End()
	var nilScope *ClipScope
	nilScope.End()
	if rec.UnbalancedPops() != 0 || rec.Count(CommandPopClip) != 1 {
		t.Errorf("pops = %d, unbalanced = %d, want 1 and 0", rec.Count(CommandPopClip), rec.UnbalancedPops())
	}
}

func TestStrokeCircleUsesXScale(t *testing.T) {
	app, rec := newTestApp(t)
	app.surface = rec
	a := app.Axis()
	a.SetLimits(-2, 2, -1, 1)
	a.StrokeCircle(0, 0, 1, StrokeStyle{})
	if len(rec.Commands) != 1 || rec.Commands[0].Radius != 175 {
		t.Fatalf("commands = %+v, want one circle of radius 175", rec.Commands)
	}
}

func TestDrawDotLabel(t *testing.T) {
	app, rec := newTestApp(t)
	app.surface = rec
	a := app.Axis()
	a.DrawDot(0, 0, 4, DotStyle{Label: "P"})
	if rec.Count(CommandFillCircle) != 1 || rec.Count(CommandStrokeCircle) != 1 {
		t.Errorf("fill/stroke = %d/%d, want 1/1", rec.Count(CommandFillCircle), rec.Count(CommandStrokeCircle))
	}
	texts := rec.Texts()
	if len(texts) != 1 || texts[0] != "P" {
		t.Fatalf("texts = %v, want [P]", texts)
	}
	last := rec.Commands[len(rec.Commands)-1]
	if last.Points[0] != (Vec2{350, 350 + labelDrop}) {
		t.Errorf("label at %v, want (350, %d)", last.Points[0], 350+labelDrop)
	}

	rec.Reset()
	a.DrawDot(0, 0, 4, DotStyle{NoFill: true, NoStroke: true})
	if len(rec.Commands) != 0 {
		t.Errorf("NoFill+NoStroke drew %d commands", len(rec.Commands))
	}
}

func TestDrawTextOffsetUp(t *testing.T) {
	app, rec := newTestApp(t)
	app.surface = rec
	app.Axis().DrawText("x", 0, 0, TextStyle{Offset: Vec2{3, 5}})
	if got := rec.Commands[0].Points[0]; got != (Vec2{353, 345}) {
		t.Errorf("text anchor = %v, want (353, 345)", got)
	}
}

func TestStrokePathShortInput(t *testing.T) {
	app, rec := newTestApp(t)
	app.surface = rec
	a := app.Axis()
	a.StrokePath([]float64{1, 2}, StrokeStyle{})
	a.Polygon([]float64{0, 0, 1, 1}, RectStyle{})
	if len(rec.Commands) != 0 {
		t.Errorf("short paths drew %d commands, want 0", len(rec.Commands))
	}
}
