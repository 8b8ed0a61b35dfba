package c5

import "math"

// LinRange returns n evenly spaced values from begin to end inclusive.
// n == 1 returns {begin}; n <= 0 returns nil.
func LinRange(begin, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = begin
		return out
	}
	step := (end - begin) / float64(n-1)
	for i := range out {
		out[i] = begin + step*float64(i)
	}
	return out
}

// LinRange2D returns n evenly spaced points from v1 to v2 inclusive as a
// flat x0,y0,x1,y1,... slice.
func LinRange2D(v1, v2 Vec2, n int) []float64 {
	xs := LinRange(v1.X, v2.X, n)
	ys := LinRange(v1.Y, v2.Y, n)
	out := make([]float64, 0, 2*len(xs))
	for i := range xs {
		out = append(out, xs[i], ys[i])
	}
	return out
}

// MeshGrid returns grid lines as flat point slices. With horizontal set it
// returns one row per y value, [x0,y, x1,y, ...]; otherwise one column per x
// value, [x,y0, x,y1, ...].
func MeshGrid(xs, ys []float64, horizontal bool) [][]float64 {
	if horizontal {
		out := make([][]float64, len(ys))
		for i, y := range ys {
			row := make([]float64, 0, 2*len(xs))
			for _, x := range xs {
				row = append(row, x, y)
			}
			out[i] = row
		}
		return out
	}
	out := make([][]float64, len(xs))
	for i, x := range xs {
		col := make([]float64, 0, 2*len(ys))
		for _, y := range ys {
			col = append(col, x, y)
		}
		out[i] = col
	}
	return out
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp2 interpolates between v1 (t = 0) and v2 (t = 1).
func Lerp2(v1, v2 Vec2, t float64) Vec2 {
	return Vec2{(1-t)*v1.X + t*v2.X, (1-t)*v1.Y + t*v2.Y}
}

// ClampToSegment projects p onto the segment v1-v2 and returns the closest
// point together with its parameter in [0, 1]. A degenerate segment returns
// p itself and ok = false.
func ClampToSegment(p, v1, v2 Vec2) (q Vec2, t float64, ok bool) {
	if v1 == v2 {
		return p, 0, false
	}
	dx, dy := v2.X-v1.X, v2.Y-v1.Y
	t = Clamp(((p.X-v1.X)*dx+(p.Y-v1.Y)*dy)/(dx*dx+dy*dy), 0, 1)
	return Lerp2(v1, v2, t), t, true
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func Normalize(v Vec2) Vec2 {
	d := math.Hypot(v.X, v.Y)
	if d == 0 {
		return v
	}
	return Vec2{v.X / d, v.Y / d}
}

// MeshGrid2D returns n paths of m points each. Path i starts at
// z + v*i/(n-1) and runs along w; together they cover the parallelogram
// spanned by v and w from corner z.
func MeshGrid2D(z, v, w Vec2, n, m int) [][]float64 {
	if n < 1 || m < 1 {
		return nil
	}
	starts := LinRange2D(z, Vec2{z.X + v.X, z.Y + v.Y}, n)
	out := make([][]float64, 0, n)
	for i := 0; i+1 < len(starts); i += 2 {
		s := Vec2{starts[i], starts[i+1]}
		out = append(out, LinRange2D(s, Vec2{s.X + w.X, s.Y + w.Y}, m))
	}
	return out
}
