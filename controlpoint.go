package c5

import "math"

// DefaultControlPointRadius is the marker radius in pixels.
const DefaultControlPointRadius = 6

// ControlPoint is a named marker the user can drag around an axis. Its
// position is in the owning axis's logical coordinates.
type ControlPoint struct {
	X, Y    float64
	Name    string
	Radius  float64 // pixels, also the hit radius
	Fill    Color
	Visible bool

	id WidgetID
}

// ID returns the arbitration identity of the point.
func (p *ControlPoint) ID() WidgetID {
	return p.id
}

// Pos returns the logical position of the point.
func (p *ControlPoint) Pos() Vec2 {
	return Vec2{p.X, p.Y}
}

// Set moves the point to (x, y).
func (p *ControlPoint) Set(x, y float64) {
	p.X, p.Y = x, y
}

// AddControlPoint adds a visible, red, draggable point at (x, y). The name
// is drawn as a label under the marker.
func (a *Axis) AddControlPoint(x, y float64, name string) *ControlPoint {
	p := &ControlPoint{
		X:       x,
		Y:       y,
		Name:    name,
		Radius:  DefaultControlPointRadius,
		Fill:    ColorRed,
		Visible: true,
		id:      WidgetID(a.id*100 + len(a.points) + 1),
	}
	a.points = append(a.points, p)
	return p
}

// ControlPoints returns the points of the axis in insertion order.
func (a *Axis) ControlPoints() []*ControlPoint {
	return a.points
}

// pointerNear reports whether the pointer at logical (mx, my) is within the
// pixel radius of p, measuring logical distance scaled by xScale.
func (a *Axis) pointerNear(p *ControlPoint, mx, my float64) bool {
	return math.Hypot(p.X-mx, p.Y-my)*a.xScale < p.Radius
}

// updateControlPoints runs the drag protocol for every visible point in
// insertion order. The active point follows the pointer while it is down;
// on the release cycle it stays where the last pressed cycle put it.
func (a *Axis) updateControlPoints(ui *UI, ptr *Pointer) {
	mx, my := a.ToLogical(ptr.X, ptr.Y)
	for _, p := range a.points {
		if !p.Visible {
			continue
		}
		res := ui.interact(p.id, func() bool { return a.pointerNear(p, mx, my) }, ptr)
		if res.Pressed {
			p.X, p.Y = mx, my
		}
	}
}

// drawControlPoints draws the markers of all visible points. The hot point
// gets a yellow outline.
func (a *Axis) drawControlPoints(ui *UI) {
	for _, p := range a.points {
		if !p.Visible {
			continue
		}
		style := DotStyle{Fill: p.Fill, Label: p.Name}
		if p.id == ui.Hot() {
			style.Stroke = ColorYellow
		}
		a.DrawDot(p.X, p.Y, p.Radius, style)
	}
}
