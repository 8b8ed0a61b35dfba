package c5

import (
	"math"
	"strconv"
	"strings"
)

// maxGridLines bounds the number of lines drawn per direction so that
// degenerate limits cannot stall a frame.
const maxGridLines = 1000

// GridStep returns a "nice" grid spacing for an axis extent: a power of ten
// times 1, 1/2 or 1/5, giving roughly 3 to 10 lines across the extent.
// Non-positive or non-finite extents return NaN.
func GridStep(extent float64) float64 {
	if !(extent > 0) || math.IsInf(extent, 0) {
		return math.NaN()
	}
	p := math.Ceil(math.Log10(extent)) - 1
	base := math.Pow(10, p)
	r := extent / base
	switch {
	case r > 6:
		return base
	case r > 3:
		return base / 2
	case r > 1.3:
		return base / 5
	default:
		return math.Pow(10, p-1)
	}
}

// gridLines returns the multiples of step strictly inside (lo, hi), starting
// at floor(lo/step)+1.
func gridLines(lo, hi, step float64) []float64 {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil
	}
	var out []float64
	for i := math.Floor(lo/step) + 1; i*step < hi && len(out) < maxGridLines; i++ {
		out = append(out, i*step)
	}
	return out
}

// AxisGrid draws the background, grid lines and tick labels for the current
// limits. Ticks are only drawn when labels are shown without grid lines.
func (a *Axis) AxisGrid(style GridStyle) {
	st := style.merged(a.DefaultGrid)
	lines := StrokeStyle{Color: st.LineColor, Width: st.LineWidth}
	labels := TextStyle{Color: st.LabelColor, Size: st.LabelSize, Offset: st.LabelOffset}
	tick := StrokeStyle{Width: st.LineWidth}
	drawTicks := !st.NoLabels && st.NoGrid && !st.NoTicks

	if !st.NoFill {
		a.FillRect(a.xmin, a.ymin, a.xmax-a.xmin, a.ymax-a.ymin, RectStyle{Fill: st.Background})
	}
	for _, x := range gridLines(a.xmin, a.xmax, GridStep(a.xmax-a.xmin)) {
		if !st.NoGrid {
			a.Line(x, a.ymin, x, a.ymax, lines)
		}
		if !st.NoLabels {
			a.DrawText(formatTick(x), x, a.ymin, labels)
		}
		if drawTicks {
			a.DrawTick(x, a.ymin, st.TickLength, 0, 1, tick)
		}
	}
	for _, y := range gridLines(a.ymin, a.ymax, GridStep(a.ymax-a.ymin)) {
		if !st.NoGrid {
			a.Line(a.xmin, y, a.xmax, y, lines)
		}
		if !st.NoLabels {
			a.DrawText(formatTick(y), a.xmin, y, labels)
		}
		if drawTicks {
			a.DrawTick(a.xmin, y, st.TickLength, 1, 0, tick)
		}
	}
}

// formatTick formats v with two significant digits, switching to exponent
// notation for very small or large magnitudes ("0.50", "1.0", "10",
// "1.0e+2").
func formatTick(v float64) string {
	const digits = 2
	if v == 0 {
		return "0.0"
	}
	e := strconv.FormatFloat(v, 'e', digits-1, 64)
	mant, exp, _ := strings.Cut(e, "e")
	n, _ := strconv.Atoi(exp)
	if n < -6 || n >= digits {
		return mant + "e" + exp[:1] + strconv.Itoa(abs(n))
	}
	return strconv.FormatFloat(v, 'f', digits-1-n, 64)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
