package c5

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// limitsAnim holds active tweens for the four axis limits.
type limitsAnim struct {
	xmin, xmax, ymin, ymax *gween.Tween
}

// Axis maps a logical coordinate rectangle (for example a window of the
// complex plane) onto a pixel viewport of the app's canvas, and draws in
// logical coordinates. Logical Y increases upward; pixel Y increases downward.
//
// Several axes may share one canvas, each with its own viewport.
type Axis struct {
	// DefaultStroke is merged under every stroke style passed to this axis.
	DefaultStroke StrokeStyle
	// DefaultGrid is merged under the style passed to AxisGrid.
	DefaultGrid GridStyle

	app *App
	id  int

	xmin, xmax, ymin, ymax float64
	viewport               Rect

	xScale, yScale float64
	ox, oy         float64

	points []*ControlPoint
	anim   *limitsAnim
}

func newAxis(app *App, id int, viewport Rect) *Axis {
	a := &Axis{
		DefaultStroke: DefaultStroke,
		DefaultGrid:   DefaultGrid,
		app:           app,
		id:            id,
		xmin:          -4,
		xmax:          4,
		ymin:          -4,
		ymax:          4,
		viewport:      viewport,
	}
	a.updateScale()
	return a
}

// ID returns the axis identity. The first axis of an app has ID 1.
func (a *Axis) ID() int {
	return a.id
}

// updateScale recomputes scale factors and origin from the current limits
// and viewport. Every mutation of either goes through here.
func (a *Axis) updateScale() {
	a.xScale = a.viewport.Width / (a.xmax - a.xmin)
	a.yScale = a.viewport.Height / (a.ymax - a.ymin)
	a.ox = math.Round(a.viewport.X - a.xmin*a.xScale)
	a.oy = math.Round(a.viewport.Y + a.ymax*a.yScale)
}

// SetLimits sets the logical rectangle shown by the axis and cancels any
// running limits animation. Inverted ranges flip the rendered orientation;
// empty ranges produce infinite scale and are not guarded.
func (a *Axis) SetLimits(xmin, xmax, ymin, ymax float64) {
	a.anim = nil
	a.setLimits(xmin, xmax, ymin, ymax)
}

func (a *Axis) setLimits(xmin, xmax, ymin, ymax float64) {
	a.xmin, a.xmax, a.ymin, a.ymax = xmin, xmax, ymin, ymax
	a.updateScale()
}

// Limits returns the logical rectangle shown by the axis.
func (a *Axis) Limits() (xmin, xmax, ymin, ymax float64) {
	return a.xmin, a.xmax, a.ymin, a.ymax
}

// SetViewport sets the pixel rectangle (left, top, right, bottom) the axis
// renders into.
func (a *Axis) SetViewport(left, top, right, bottom float64) {
	a.viewport = Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
	a.updateScale()
}

// Viewport returns the pixel rectangle the axis renders into.
func (a *Axis) Viewport() Rect {
	return a.viewport
}

// Scale returns the pixels per logical unit along each axis.
func (a *Axis) Scale() (sx, sy float64) {
	return a.xScale, a.yScale
}

// Origin returns the pixel position of the logical origin.
func (a *Axis) Origin() (ox, oy float64) {
	return a.ox, a.oy
}

// ToScreen converts logical coordinates to pixels.
func (a *Axis) ToScreen(x, y float64) (px, py float64) {
	return a.ox + x*a.xScale, a.oy - y*a.yScale
}

// ToLogical converts pixels to logical coordinates.
func (a *Axis) ToLogical(px, py float64) (x, y float64) {
	return (px - a.ox) / a.xScale, -(py - a.oy) / a.yScale
}

func (a *Axis) toScreenVec(x, y float64) Vec2 {
	px, py := a.ToScreen(x, y)
	return Vec2{px, py}
}

// MouseX returns the pointer X position in logical coordinates.
func (a *Axis) MouseX() float64 {
	x, _ := a.ToLogical(a.app.pointer.X, a.app.pointer.Y)
	return x
}

// MouseY returns the pointer Y position in logical coordinates.
func (a *Axis) MouseY() float64 {
	_, y := a.ToLogical(a.app.pointer.X, a.app.pointer.Y)
	return y
}

// PMouseX returns the previous pointer X position in logical coordinates.
func (a *Axis) PMouseX() float64 {
	x, _ := a.ToLogical(a.app.pointer.PX, a.app.pointer.PY)
	return x
}

// PMouseY returns the previous pointer Y position in logical coordinates.
func (a *Axis) PMouseY() float64 {
	_, y := a.ToLogical(a.app.pointer.PX, a.app.pointer.PY)
	return y
}

// AnimateLimits moves the limits to the given rectangle over duration
// seconds using easeFn (nil means linear). The transform is recomputed on
// every step. A later SetLimits cancels the animation.
func (a *Axis) AnimateLimits(xmin, xmax, ymin, ymax float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	if duration <= 0 {
		a.SetLimits(xmin, xmax, ymin, ymax)
		return
	}
	a.anim = &limitsAnim{
		xmin: gween.New(float32(a.xmin), float32(xmin), duration, easeFn),
		xmax: gween.New(float32(a.xmax), float32(xmax), duration, easeFn),
		ymin: gween.New(float32(a.ymin), float32(ymin), duration, easeFn),
		ymax: gween.New(float32(a.ymax), float32(ymax), duration, easeFn),
	}
}

// Animating reports whether a limits animation is in progress.
func (a *Axis) Animating() bool {
	return a.anim != nil
}

// update advances the limits animation. Called once per cycle.
func (a *Axis) update(dt float32) {
	if a.anim == nil {
		return
	}
	xmin, d0 := a.anim.xmin.Update(dt)
	xmax, d1 := a.anim.xmax.Update(dt)
	ymin, d2 := a.anim.ymin.Update(dt)
	ymax, d3 := a.anim.ymax.Update(dt)
	a.setLimits(float64(xmin), float64(xmax), float64(ymin), float64(ymax))
	if d0 && d1 && d2 && d3 {
		a.anim = nil
	}
}

// ClipScope is an active clip returned by Axis.BeginClip.
type ClipScope struct {
	surface Surface
	done    bool
}

// End restores the clip that was active before BeginClip. Calling End more
// than once is a no-op, so it is safe to both defer it and call it early.
func (c *ClipScope) End() {
	if c == nil || c.done {
		return
	}
	c.done = true
	c.surface.PopClip()
}

// BeginClip restricts subsequent drawing to the axis viewport until the
// returned scope is ended. Prefer WithClip, which cannot leak the clip.
func (a *Axis) BeginClip() *ClipScope {
	s := a.app.surface
	s.PushClip(a.viewport)
	return &ClipScope{surface: s}
}

// EndClip ends a scope started with BeginClip.
func (a *Axis) EndClip(scope *ClipScope) {
	scope.End()
}

// WithClip runs fn with drawing restricted to the axis viewport. The clip is
// released when fn returns or panics.
func (a *Axis) WithClip(fn func()) {
	scope := a.BeginClip()
	defer scope.End()
	fn()
}
