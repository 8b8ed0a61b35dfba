package c5

import (
	"math"
	"testing"
)

func TestLinRange(t *testing.T) {
	got := LinRange(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if !approxEqual(got[i], want[i], 1e-12) {
			t.Errorf("LinRange[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got := LinRange(3, 9, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("LinRange(n=1) = %v, want [3]", got)
	}
	if got := LinRange(0, 1, 0); got != nil {
		t.Errorf("LinRange(n=0) = %v, want nil", got)
	}
}

func TestLinRange2D(t *testing.T) {
	got := LinRange2D(Vec2{0, 0}, Vec2{2, -4}, 3)
	want := []float64{0, 0, 1, -2, 2, -4}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMeshGrid(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{5, 6}
	rows := MeshGrid(xs, ys, true)
	if len(rows) != 2 || len(rows[0]) != 6 || rows[1][1] != 6 || rows[1][4] != 2 {
		t.Errorf("rows = %v", rows)
	}
	cols := MeshGrid(xs, ys, false)
	if len(cols) != 3 || len(cols[0]) != 4 || cols[2][0] != 2 || cols[2][3] != 6 {
		t.Errorf("cols = %v", cols)
	}
}

func TestMeshGrid2D(t *testing.T) {
	paths := MeshGrid2D(Vec2{-1, -1}, Vec2{0, 2}, Vec2{2, 0}, 3, 5)
	if len(paths) != 3 {
		t.Fatalf("len = %d, want 3", len(paths))
	}
	for i, p := range paths {
		if len(p) != 10 {
			t.Fatalf("path %d has %d values, want 10", i, len(p))
		}
		y := -1 + float64(i)
		if p[0] != -1 || p[1] != y || p[8] != 1 || p[9] != y {
			t.Errorf("path %d = %v", i, p)
		}
	}
	if MeshGrid2D(Vec2{}, Vec2{1, 0}, Vec2{0, 1}, 0, 3) != nil {
		t.Error("n=0: want nil")
	}
}

func TestClampToSegment(t *testing.T) {
	v1, v2 := Vec2{0, 0}, Vec2{10, 0}
	tests := []struct {
		p     Vec2
		wantQ Vec2
		wantT float64
	}{
		{Vec2{5, 3}, Vec2{5, 0}, 0.5},
		{Vec2{-4, 1}, Vec2{0, 0}, 0},
		{Vec2{14, -2}, Vec2{10, 0}, 1},
	}
	for _, tt := range tests {
		q, u, ok := ClampToSegment(tt.p, v1, v2)
		if !ok || q != tt.wantQ || u != tt.wantT {
			t.Errorf("ClampToSegment(%v) = %v, %v, %v; want %v, %v", tt.p, q, u, ok, tt.wantQ, tt.wantT)
		}
	}
	p := Vec2{3, 4}
	if q, _, ok := ClampToSegment(p, v1, v1); ok || q != p {
		t.Errorf("degenerate segment = %v, %v; want %v, false", q, ok, p)
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(Vec2{3, -4})
	if !approxEqual(v.X, 0.6, 1e-12) || !approxEqual(v.Y, -0.8, 1e-12) {
		t.Errorf("Normalize = %v", v)
	}
	if Normalize(Vec2{}) != (Vec2{}) {
		t.Error("Normalize(0) changed the zero vector")
	}
	if got := Clamp(math.Inf(1), -1, 1); got != 1 {
		t.Errorf("Clamp(+Inf) = %v", got)
	}
}
