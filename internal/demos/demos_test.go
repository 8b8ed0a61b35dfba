package demos

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/mathviz/c5"
)

func TestMappingEval(t *testing.T) {
	z := complex(0.3, -1.2)
	tests := []struct {
		m    Mapping
		want complex128
	}{
		{MappingExp, cmplx.Exp(z)},
		{MappingCos, cmplx.Cos(z)},
		{MappingSin, cmplx.Sin(z)},
		{MappingCosh, cmplx.Cosh(z)},
		{MappingSinh, cmplx.Sinh(z)},
		{MappingSquare, z * z},
		{MappingInverse, 1 / z},
		{MappingLog, cmplx.Log(z)},
	}
	for _, tt := range tests {
		if got := tt.m.Eval(z); cmplx.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%v.Eval = %v, want %v", tt.m, got, tt.want)
		}
	}
	if got := MappingExp.Eval(complex(0, math.Pi)); cmplx.Abs(got+1) > 1e-12 {
		t.Errorf("exp(i pi) = %v, want -1", got)
	}
}

func TestMappingNames(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Mappings {
		name := m.String()
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
		got, err := ParseMapping(name)
		if err != nil || got != m {
			t.Errorf("ParseMapping(%q) = %v, %v", name, got, err)
		}
		if m.TeX() == "" {
			t.Errorf("%v has no TeX", m)
		}
	}
	if _, err := ParseMapping("tan"); err == nil {
		t.Error("ParseMapping(tan): want error")
	}
}

func TestMapPath(t *testing.T) {
	got := MappingSquare.mapPath([]float64{1, 1, 0, 2, 7})
	want := []float64{0, 2, -4, 0}
	if len(got) != len(want) {
		t.Fatalf("mapPath = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k, got, err)
		}
	}
	if _, err := ParseKind("nope"); err == nil {
		t.Error("ParseKind(nope): want error")
	}
	if _, err := New(Kind(99), c5.Config{}); err == nil {
		t.Error("New(99): want error")
	}
}

func TestDemosRunHeadless(t *testing.T) {
	for _, k := range Kinds {
		app, err := New(k, c5.Config{})
		if err != nil {
			t.Fatalf("%v: New: %v", k, err)
		}
		rec := c5.NewRecordingSurface(app.WindowSize())
		if err := c5.RunHeadless(app, rec, 3); err != nil {
			t.Fatalf("%v: RunHeadless: %v", k, err)
		}
		if rec.ClipDepth() != 0 || rec.UnbalancedPops() != 0 {
			t.Errorf("%v: clip depth %d, unbalanced %d", k, rec.ClipDepth(), rec.UnbalancedPops())
		}
		if app.Caption() == "" {
			t.Errorf("%v: no caption", k)
		}
		app.Dispose()
	}
}

func TestComplexMultClamp(t *testing.T) {
	app, err := NewComplexMult(c5.Config{})
	if err != nil {
		t.Fatal(err)
	}
	z := app.Axis().ControlPoints()[0]
	rec := c5.NewRecordingSurface(app.WindowSize())

	// Drag z from (1, 0) to (2, 0); the clamp pulls it back to the unit circle.
	app.InjectDrag(525, 350, 700, 350, 3)
	if err := c5.RunHeadless(app, rec, app.PendingInjected()+1); err != nil {
		t.Fatal(err)
	}
	if math.Abs(math.Hypot(z.X, z.Y)-1) > 1e-9 {
		t.Errorf("|z| = %v, want 1", math.Hypot(z.X, z.Y))
	}
}

func TestMappingDemoButtons(t *testing.T) {
	d, err := NewMappingDemo(c5.Config{})
	if err != nil {
		t.Fatal(err)
	}
	app := d.App
	if got := len(app.Buttons()); got != len(Mappings)+2 {
		t.Fatalf("buttons = %d, want %d", got, len(Mappings)+2)
	}
	rec := c5.NewRecordingSurface(app.WindowSize())
	if err := c5.RunHeadless(app, rec, 1); err != nil {
		t.Fatal(err)
	}

	r := app.Buttons()[MappingSquare].Rect()
	app.InjectClick(r.X+r.Width/2, r.Y+r.Height/2)
	if err := c5.RunHeadless(app, rec, 3); err != nil {
		t.Fatal(err)
	}
	if d.Mapping != MappingSquare {
		t.Errorf("Mapping = %v, want square", d.Mapping)
	}
	if want := "Mapping: " + c5.Math("f(z) = z^2"); app.Caption() != want {
		t.Errorf("Caption = %q, want %q", app.Caption(), want)
	}
}
