package c5

import "image"

// Surface is the raster target a frame is drawn onto. All coordinates are
// pixels with the origin at the top-left. Implementations never fail: a
// backend that cannot draw something logs and moves on.
//
// Three implementations ship with the package: EbitenSurface draws into an
// ebiten.Image (the window), ImageSurface rasterizes in software for
// headless snapshots, and RecordingSurface only records commands.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
	// Clear fills the whole surface, ignoring the clip stack.
	Clear(bg Color)

	StrokePolyline(pts []Vec2, width float64, c Color)
	FillPolygon(pts []Vec2, c Color)
	FillCircle(cx, cy, r float64, c Color)
	StrokeCircle(cx, cy, r, width float64, c Color)
	FillRect(x, y, w, h float64, c Color)

	// DrawText draws s with its baseline at y. The horizontal anchor is
	// chosen by align.
	DrawText(s string, x, y, size float64, c Color, align TextAlign)
	// MeasureText returns the advance width and line height of s.
	MeasureText(s string, size float64) (width, height float64)

	// PushClip intersects the current clip with r. Every PushClip must be
	// matched by exactly one PopClip.
	PushClip(r Rect)
	// PopClip restores the clip that was current before the matching PushClip.
	PopClip()
}

// Snapshotter is implemented by surfaces that can read back their pixels.
type Snapshotter interface {
	Snapshot() image.Image
}

// Resizer is implemented by offscreen surfaces that can follow the app's
// window size. Frame resizes them before a cycle when the size changed.
type Resizer interface {
	Resize(width, height int)
}

// clipStack tracks nested clip rectangles for surface implementations.
type clipStack struct {
	full  Rect
	rects []Rect
}

func (cs *clipStack) current() Rect {
	if len(cs.rects) == 0 {
		return cs.full
	}
	return cs.rects[len(cs.rects)-1]
}

func (cs *clipStack) push(r Rect) Rect {
	next := cs.current().Intersect(r)
	cs.rects = append(cs.rects, next)
	return next
}

// pop removes the innermost clip. Returns false on an unbalanced pop.
func (cs *clipStack) pop() bool {
	if len(cs.rects) == 0 {
		return false
	}
	cs.rects = cs.rects[:len(cs.rects)-1]
	return true
}

func (cs *clipStack) depth() int {
	return len(cs.rects)
}

// alignOffset returns how far to shift a text run of width w left of its
// anchor for the given alignment.
func alignOffset(align TextAlign, w float64) float64 {
	switch align {
	case TextAlignCenter:
		return w / 2
	case TextAlignRight:
		return w
	default:
		return 0
	}
}

// discardSurface drops every draw call. An App draws into it outside of
// Cycle so that stray drawing calls are harmless.
type discardSurface struct{}

func (discardSurface) Size() (int, int)                                             { return 0, 0 }
func (discardSurface) Clear(Color)                                                  {}
func (discardSurface) StrokePolyline([]Vec2, float64, Color)                        {}
func (discardSurface) FillPolygon([]Vec2, Color)                                    {}
func (discardSurface) FillCircle(float64, float64, float64, Color)                  {}
func (discardSurface) StrokeCircle(float64, float64, float64, float64, Color)       {}
func (discardSurface) FillRect(float64, float64, float64, float64, Color)           {}
func (discardSurface) DrawText(string, float64, float64, float64, Color, TextAlign) {}
func (discardSurface) MeasureText(string, float64) (float64, float64)               { return 0, 0 }
func (discardSurface) PushClip(Rect)                                                {}
func (discardSurface) PopClip()                                                     {}
