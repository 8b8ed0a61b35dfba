package c5

import (
	"bytes"
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	whiteOnce     sync.Once

	ttfSource     *text.GoTextFaceSource
	ttfSourceErr  error
	ttfSourceOnce sync.Once
)

// solidSource returns a white sub-image used as the source texture for
// vector triangles. Created lazily so importing the package does not need a
// graphics context.
func solidSource() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(ColorWhite.RGBA())
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

func goTextSource() (*text.GoTextFaceSource, error) {
	ttfSourceOnce.Do(func() {
		ttfSource, ttfSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	return ttfSource, ttfSourceErr
}

// EbitenSurface draws onto an ebiten.Image, normally the screen image passed
// to ebiten.Game.Draw. Clipping is done with sub-images, which share the
// parent's coordinate system.
type EbitenSurface struct {
	dst     *ebiten.Image
	targets []*ebiten.Image
	clips   clipStack
	faces   map[float64]*text.GoTextFace
	path    vector.Path
	verts   []ebiten.Vertex
	inds    []uint16
}

// NewEbitenSurface wraps dst.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	s := &EbitenSurface{faces: make(map[float64]*text.GoTextFace)}
	s.Reset(dst)
	return s
}

// Reset points the surface at a new destination image and drops any clip
// state left over from the previous frame.
func (s *EbitenSurface) Reset(dst *ebiten.Image) {
	s.dst = dst
	b := dst.Bounds()
	s.clips = clipStack{full: Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}}
	s.targets = append(s.targets[:0], dst)
}

func (s *EbitenSurface) target() *ebiten.Image {
	return s.targets[len(s.targets)-1]
}

func (s *EbitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear(bg Color) {
	s.dst.Fill(bg.RGBA())
}

func (s *EbitenSurface) StrokePolyline(pts []Vec2, width float64, c Color) {
	if len(pts) < 2 {
		return
	}
	s.path = vector.Path{}
	s.path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		s.path.LineTo(float32(p.X), float32(p.Y))
	}
	s.stroke(width, c)
}

func (s *EbitenSurface) FillPolygon(pts []Vec2, c Color) {
	if len(pts) < 3 {
		return
	}
	s.path = vector.Path{}
	s.path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		s.path.LineTo(float32(p.X), float32(p.Y))
	}
	s.path.Close()
	s.fill(c)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c Color) {
	s.path = vector.Path{}
	s.path.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	s.path.Close()
	s.fill(c)
}

func (s *EbitenSurface) StrokeCircle(cx, cy, r, width float64, c Color) {
	s.path = vector.Path{}
	s.path.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	s.path.Close()
	s.stroke(width, c)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c Color) {
	s.FillPolygon([]Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, c)
}

func (s *EbitenSurface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	src, err := goTextSource()
	if err != nil {
		Logger().Warn("c5: font unavailable", "err", err)
		return nil
	}
	f := &text.GoTextFace{Source: src, Size: size}
	s.faces[size] = f
	return f
}

func (s *EbitenSurface) DrawText(str string, x, y, size float64, c Color, align TextAlign) {
	f := s.face(size)
	if f == nil || str == "" {
		return
	}
	w := text.Advance(str, f)
	m := f.Metrics()
	op := &text.DrawOptions{}
	op.GeoM.Translate(x-alignOffset(align, w), y-m.HAscent)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	text.Draw(s.target(), str, f, op)
}

func (s *EbitenSurface) MeasureText(str string, size float64) (float64, float64) {
	f := s.face(size)
	if f == nil {
		return 0, 0
	}
	m := f.Metrics()
	return text.Advance(str, f), m.HAscent + m.HDescent
}

func (s *EbitenSurface) PushClip(r Rect) {
	next := s.clips.push(r)
	rect := image.Rect(
		int(math.Floor(next.X)), int(math.Floor(next.Y)),
		int(math.Ceil(next.X+next.Width)), int(math.Ceil(next.Y+next.Height)),
	)
	s.targets = append(s.targets, s.dst.SubImage(rect).(*ebiten.Image))
}

func (s *EbitenSurface) PopClip() {
	if !s.clips.pop() {
		Logger().Debug("c5: unbalanced PopClip")
		return
	}
	s.targets = s.targets[:len(s.targets)-1]
}

// Snapshot reads back the destination pixels as straight-alpha NRGBA.
func (s *EbitenSurface) Snapshot() image.Image {
	b := s.dst.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	s.dst.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, bl, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			bl = uint8(min(int(bl)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = bl
		img.Pix[i+3] = a
	}
	return img
}

func (s *EbitenSurface) stroke(width float64, c Color) {
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	s.verts, s.inds = s.path.AppendVerticesAndIndicesForStroke(s.verts[:0], s.inds[:0], op)
	s.submit(c, ebiten.FillRuleFillAll)
}

func (s *EbitenSurface) fill(c Color) {
	s.verts, s.inds = s.path.AppendVerticesAndIndicesForFilling(s.verts[:0], s.inds[:0])
	s.submit(c, ebiten.FillRuleNonZero)
}

func (s *EbitenSurface) submit(c Color, rule ebiten.FillRule) {
	if len(s.inds) == 0 {
		return
	}
	a := float32(clamp01(c.A))
	for i := range s.verts {
		s.verts[i].SrcX = 1
		s.verts[i].SrcY = 1
		s.verts[i].ColorR = float32(clamp01(c.R)) * a
		s.verts[i].ColorG = float32(clamp01(c.G)) * a
		s.verts[i].ColorB = float32(clamp01(c.B)) * a
		s.verts[i].ColorA = a
	}
	s.target().DrawTriangles(s.verts, s.inds, solidSource(), &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       rule,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}
