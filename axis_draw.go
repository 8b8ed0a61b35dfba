package c5

// Drawing primitives. Positions are logical coordinates; widths, dot radii
// and text sizes are pixels.

func (a *Axis) surface() Surface {
	return a.app.surface
}

// toScreenPath converts a flat x0,y0,x1,y1,... slice into pixel points.
// A trailing odd value is ignored.
func (a *Axis) toScreenPath(xy []float64) []Vec2 {
	n := len(xy) / 2
	pts := make([]Vec2, n)
	for i := range n {
		pts[i] = a.toScreenVec(xy[2*i], xy[2*i+1])
	}
	return pts
}

// Line strokes the segment from (x1, y1) to (x2, y2).
func (a *Axis) Line(x1, y1, x2, y2 float64, style StrokeStyle) {
	a.StrokePath([]float64{x1, y1, x2, y2}, style)
}

// StrokePath strokes the open polyline x0,y0,x1,y1,... Paths with fewer than
// two points draw nothing.
func (a *Axis) StrokePath(xy []float64, style StrokeStyle) {
	if len(xy) < 4 {
		return
	}
	st := style.merged(a.DefaultStroke)
	a.surface().StrokePolyline(a.toScreenPath(xy), st.Width, st.Color)
}

// StrokePaths strokes every path in paths with the same style.
func (a *Axis) StrokePaths(paths [][]float64, style StrokeStyle) {
	for _, p := range paths {
		a.StrokePath(p, style)
	}
}

// Lines strokes disjoint segments given as x1,y1,x2,y2 quadruples.
func (a *Axis) Lines(xy []float64, style StrokeStyle) {
	st := style.merged(a.DefaultStroke)
	s := a.surface()
	for i := 0; i+3 < len(xy); i += 4 {
		s.StrokePolyline([]Vec2{
			a.toScreenVec(xy[i], xy[i+1]),
			a.toScreenVec(xy[i+2], xy[i+3]),
		}, st.Width, st.Color)
	}
}

// Plot strokes the graph through (xs[i], ys[i]). Extra values in the longer
// slice are ignored.
func (a *Axis) Plot(xs, ys []float64, style StrokeStyle) {
	n := min(len(xs), len(ys))
	if n < 2 {
		return
	}
	st := style.merged(a.DefaultStroke)
	pts := make([]Vec2, n)
	for i := range n {
		pts[i] = a.toScreenVec(xs[i], ys[i])
	}
	a.surface().StrokePolyline(pts, st.Width, st.Color)
}

// Polygon fills the closed polygon x0,y0,x1,y1,... and optionally strokes
// its outline.
func (a *Axis) Polygon(xy []float64, style RectStyle) {
	if len(xy) < 6 {
		return
	}
	st := style.merged(DefaultRect)
	pts := a.toScreenPath(xy)
	s := a.surface()
	s.FillPolygon(pts, st.Fill)
	if st.Outline {
		pts = append(pts, pts[0])
		s.StrokePolyline(pts, a.DefaultStroke.Width, st.OutlineColor)
	}
}

func rectPath(x, y, w, h float64) []float64 {
	return []float64{x, y, x + w, y, x + w, y + h, x, y + h, x, y}
}

// StrokeRect strokes the logical rectangle with corner (x, y) and extent
// (w, h).
func (a *Axis) StrokeRect(x, y, w, h float64, style StrokeStyle) {
	a.StrokePath(rectPath(x, y, w, h), style)
}

// FillRect fills the logical rectangle with corner (x, y) and extent (w, h).
func (a *Axis) FillRect(x, y, w, h float64, style RectStyle) {
	a.Polygon(rectPath(x, y, w, h)[:8], style)
}

// StrokeCircle strokes a circle of logical radius r. The radius is scaled by
// the horizontal scale only.
func (a *Axis) StrokeCircle(x, y, r float64, style StrokeStyle) {
	st := style.merged(a.DefaultStroke)
	px, py := a.ToScreen(x, y)
	a.surface().StrokeCircle(px, py, r*a.xScale, st.Width, st.Color)
}

// DrawDot draws a dot of pixel radius size at a logical position. A label,
// if set, is drawn below the dot.
func (a *Axis) DrawDot(x, y, size float64, style DotStyle) {
	st := style.merged(DefaultDot)
	px, py := a.ToScreen(x, y)
	s := a.surface()
	if !st.NoFill {
		s.FillCircle(px, py, size, st.Fill)
	}
	if !st.NoStroke {
		s.StrokeCircle(px, py, size, st.LineWidth, st.Stroke)
	}
	if st.Label != "" {
		a.Label(st.Label, x, y)
	}
}

var defaultTick = StrokeStyle{Color: ColorGray, Width: 1}

// DrawTick strokes a tick of pixel length size from (x, y) in the screen
// direction (dx, -dy), so (0, 1) points up and (1, 0) points right.
func (a *Axis) DrawTick(x, y, size, dx, dy float64, style StrokeStyle) {
	st := style.merged(defaultTick)
	px, py := a.ToScreen(x, y)
	a.surface().StrokePolyline([]Vec2{{px, py}, {px + dx*size, py - dy*size}}, st.Width, st.Color)
}

const (
	labelSize = 16
	labelDrop = 22
)

// Label draws text in black 16px, 22 pixels below (x, y). Empty text draws
// nothing.
func (a *Axis) Label(text string, x, y float64) {
	if text == "" {
		return
	}
	px, py := a.ToScreen(x, y)
	a.surface().DrawText(text, px, py+labelDrop, labelSize, ColorBlack, TextAlignLeft)
}

// DrawText draws text with its baseline anchored at (x, y), shifted by
// style.Offset pixels.
func (a *Axis) DrawText(text string, x, y float64, style TextStyle) {
	st := style.merged(DefaultText)
	px, py := a.ToScreen(x, y)
	a.surface().DrawText(text, px+st.Offset.X, py-st.Offset.Y, st.Size, st.Color, st.Align)
}

