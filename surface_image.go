package c5

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	ggFontSource     *ggtext.FontSource
	ggFontSourceErr  error
	ggFontSourceOnce sync.Once
)

func ggFont() (*ggtext.FontSource, error) {
	ggFontSourceOnce.Do(func() {
		ggFontSource, ggFontSourceErr = ggtext.NewFontSource(goregular.TTF)
	})
	return ggFontSource, ggFontSourceErr
}

// ImageSurface rasterizes in software with gg. It needs no window or GPU,
// which makes it the surface for headless snapshots and tests.
//
// gg's software renderer does not apply clip rectangles, so clipping is done
// here: PushClip saves the pixels and PopClip restores everything outside the
// clip rectangle, discarding whatever was drawn there.
type ImageSurface struct {
	dc    *gg.Context
	pm    *gg.Pixmap
	clips clipStack
	saved [][]uint8
	faces map[float64]ggtext.Face
}

// NewImageSurface creates a software surface of the given size.
func NewImageSurface(width, height int) *ImageSurface {
	pm := gg.NewPixmap(width, height)
	return &ImageSurface{
		dc:    gg.NewContext(width, height, gg.WithPixmap(pm)),
		pm:    pm,
		clips: clipStack{full: Rect{Width: float64(width), Height: float64(height)}},
		faces: make(map[float64]ggtext.Face),
	}
}

// Resize replaces the pixmap with a blank one of the new size. It must not
// be called while a clip is pushed.
func (s *ImageSurface) Resize(width, height int) {
	if w, h := s.Size(); w == width && h == height {
		return
	}
	if err := s.dc.Close(); err != nil {
		Logger().Debug("c5: close gg context", "err", err)
	}
	s.pm = gg.NewPixmap(width, height)
	s.dc = gg.NewContext(width, height, gg.WithPixmap(s.pm))
	s.clips = clipStack{full: Rect{Width: float64(width), Height: float64(height)}}
	s.saved = nil
}

// Close releases the gg context.
func (s *ImageSurface) Close() error {
	return s.dc.Close()
}

// SavePNG writes the current pixels to path.
func (s *ImageSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("c5: save %s: %w", path, err)
	}
	return nil
}

// Snapshot returns a copy of the current pixels.
func (s *ImageSurface) Snapshot() image.Image {
	return s.dc.Image()
}

func (s *ImageSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *ImageSurface) Clear(bg Color) {
	s.dc.ClearWithColor(gg.RGBA{R: bg.R, G: bg.G, B: bg.B, A: bg.A})
}

func (s *ImageSurface) setColor(c Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func (s *ImageSurface) StrokePolyline(pts []Vec2, width float64, c Color) {
	if len(pts) < 2 {
		return
	}
	s.dc.ClearPath()
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.stroke(width, c)
}

func (s *ImageSurface) FillPolygon(pts []Vec2, c Color) {
	if len(pts) < 3 {
		return
	}
	s.dc.ClearPath()
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.fill(c)
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, c Color) {
	s.dc.ClearPath()
	s.dc.DrawCircle(cx, cy, r)
	s.fill(c)
}

func (s *ImageSurface) StrokeCircle(cx, cy, r, width float64, c Color) {
	s.dc.ClearPath()
	s.dc.DrawCircle(cx, cy, r)
	s.stroke(width, c)
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c Color) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.fill(c)
}

func (s *ImageSurface) face(size float64) ggtext.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	src, err := ggFont()
	if err != nil {
		Logger().Warn("c5: font unavailable", "err", err)
		return nil
	}
	f := src.Face(size)
	s.faces[size] = f
	return f
}

func (s *ImageSurface) DrawText(str string, x, y, size float64, c Color, align TextAlign) {
	f := s.face(size)
	if f == nil || str == "" {
		return
	}
	s.dc.SetFont(f)
	s.setColor(c)
	w, _ := s.dc.MeasureString(str)
	s.dc.DrawString(str, x-alignOffset(align, w), y)
}

func (s *ImageSurface) MeasureText(str string, size float64) (float64, float64) {
	f := s.face(size)
	if f == nil {
		return 0, 0
	}
	s.dc.SetFont(f)
	return s.dc.MeasureString(str)
}

func (s *ImageSurface) PushClip(r Rect) {
	s.clips.push(r)
	s.saved = append(s.saved, append([]uint8(nil), s.pm.Data()...))
}

func (s *ImageSurface) PopClip() {
	if len(s.saved) == 0 {
		Logger().Debug("c5: unbalanced PopClip")
		return
	}
	clip := s.clips.current()
	s.clips.pop()
	saved := s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	restoreOutside(s.pm.Data(), saved, s.pm.Width(), s.pm.Height(), clip)
}

// restoreOutside copies every pixel of saved that lies outside clip back
// into data. Both buffers are tightly packed RGBA rows.
func restoreOutside(data, saved []uint8, width, height int, clip Rect) {
	x0 := max(0, min(width, int(math.Floor(clip.X))))
	x1 := max(x0, min(width, int(math.Ceil(clip.X+clip.Width))))
	y0 := max(0, min(height, int(math.Floor(clip.Y))))
	y1 := max(y0, min(height, int(math.Ceil(clip.Y+clip.Height))))
	stride := width * 4
	for y := 0; y < height; y++ {
		row := y * stride
		if y < y0 || y >= y1 {
			copy(data[row:row+stride], saved[row:row+stride])
			continue
		}
		copy(data[row:row+x0*4], saved[row:row+x0*4])
		copy(data[row+x1*4:row+stride], saved[row+x1*4:row+stride])
	}
}

func (s *ImageSurface) stroke(width float64, c Color) {
	s.setColor(c)
	s.dc.SetLineWidth(width)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.dc.SetLineCap(gg.LineCapRound)
	if err := s.dc.Stroke(); err != nil {
		Logger().Debug("c5: stroke failed", "err", err)
	}
}

func (s *ImageSurface) fill(c Color) {
	s.setColor(c)
	if err := s.dc.Fill(); err != nil {
		Logger().Debug("c5: fill failed", "err", err)
	}
}
