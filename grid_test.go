package c5

import (
	"math"
	"strings"
	"testing"
)

func TestGridStep(t *testing.T) {
	tests := []struct {
		extent, want float64
	}{
		{8, 1},
		{10, 1},
		{6.5, 1},
		{6, 0.5},
		{4, 0.5},
		{3, 0.2},
		{2, 0.2},
		{1.2, 0.1},
		{1, 0.1},
		{2 * math.Pi, 1},
		{100, 10},
		{30, 2},
		{0.002, 0.0002},
	}
	for _, tt := range tests {
		got := GridStep(tt.extent)
		if !approxEqual(got, tt.want, tt.want*1e-9) {
			t.Errorf("GridStep(%v) = %v, want %v", tt.extent, got, tt.want)
		}
	}
}

func TestGridStepLineCount(t *testing.T) {
	for e := 0.01; e < 1e4; e *= 1.37 {
		n := len(gridLines(0, e, GridStep(e)))
		if n < 5 || n > 15 {
			t.Errorf("extent %v: %d grid lines, want a handful", e, n)
		}
	}
}

func TestGridStepInvalid(t *testing.T) {
	for _, e := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if got := GridStep(e); !math.IsNaN(got) {
			t.Errorf("GridStep(%v) = %v, want NaN", e, got)
		}
	}
}

func TestGridLines(t *testing.T) {
	got := gridLines(-4, 4, 1)
	want := []float64{-3, -2, -1, 0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("gridLines(-4, 4, 1) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %v, want %v", i, got[i], want[i])
		}
	}

	got = gridLines(-0.3, 1.1, 0.5)
	if len(got) != 3 || got[0] != 0 || got[2] != 1 {
		t.Errorf("gridLines(-0.3, 1.1, 0.5) = %v, want [0 0.5 1]", got)
	}

	if got := gridLines(0, 1, 0); got != nil {
		t.Errorf("zero step = %v, want nil", got)
	}
	if got := gridLines(0, 1e9, 1e-3); len(got) != maxGridLines {
		t.Errorf("len = %d, want capped at %d", len(got), maxGridLines)
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-2, "-2.0"},
		{0.5, "0.50"},
		{0.001, "0.0010"},
		{10, "10"},
		{25, "25"},
		{100, "1.0e+2"},
		{-3000, "-3.0e+3"},
		{1e-7, "1.0e-7"},
	}
	for _, tt := range tests {
		if got := formatTick(tt.v); got != tt.want {
			t.Errorf("formatTick(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestAxisGridLabelsAndLines(t *testing.T) {
	app, rec := newTestApp(t)
	app.surface = rec
	a := app.Axis()

	a.AxisGrid(GridStyle{})
	// Seven lines per direction between -4 and 4 with step 1.
	if got := rec.Count(CommandPolyline); got != 14 {
		t.Errorf("grid lines = %d, want 14", got)
	}
	if got := rec.Count(CommandText); got != 14 {
		t.Errorf("labels = %d, want 14", got)
	}
	if got := rec.Count(CommandPolygon); got != 1 {
		t.Errorf("background fills = %d, want 1", got)
	}
	if !strings.Contains(strings.Join(rec.Texts(), " "), "-3.0") {
		t.Errorf("labels = %v, want -3.0 among them", rec.Texts())
	}
}

func TestAxisGridTicksOnlyWithoutGrid(t *testing.T) {
	app, rec := newTestApp(t)
	app.surface = rec
	a := app.Axis()

	a.AxisGrid(GridStyle{NoGrid: true, NoFill: true})
	ticks := rec.Count(CommandPolyline)
	if ticks != 14 {
		t.Errorf("ticks = %d, want 14", ticks)
	}
	if rec.Commands[1].Points[1].Y >= rec.Commands[1].Points[0].Y {
		t.Errorf("x tick %v should point up", rec.Commands[1].Points)
	}

	rec.Reset()
	a.AxisGrid(GridStyle{NoGrid: true, NoTicks: true, NoLabels: true, NoFill: true})
	if len(rec.Commands) != 0 {
		t.Errorf("all parts disabled drew %d commands", len(rec.Commands))
	}
}
