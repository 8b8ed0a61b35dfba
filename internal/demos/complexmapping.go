package demos

import (
	"math"

	"github.com/mathviz/c5"
	"github.com/tanema/gween/ease"
)

// MappingDemo is the state of the complex mapping demo.
type MappingDemo struct {
	App     *c5.App
	Mapping Mapping

	// Radius is the half-width of the source square.
	Radius float64
	// GridLines is the number of mesh lines per direction.
	GridLines int
	// Samples is the number of points per mesh line.
	Samples int

	src, dst *c5.Axis
	a, b     *c5.ControlPoint
}

// NewComplexMapping shows a grid on the left panel and its image under a
// complex function on the right panel. Control point A drags a horizontal
// line and B a vertical line through the source grid.
func NewComplexMapping(cfg c5.Config) (*c5.App, error) {
	d, err := NewMappingDemo(cfg)
	if err != nil {
		return nil, err
	}
	return d.App, nil
}

// NewMappingDemo builds the mapping demo and returns its state.
func NewMappingDemo(cfg c5.Config) (*MappingDemo, error) {
	const (
		width  = 900
		margin = 15
		size   = (width - 4*margin) / 2
	)
	cfg.Width, cfg.Height = width, size+2*margin
	if cfg.Title == "" {
		cfg.Title = "Complex mapping"
	}
	app, err := c5.NewApp(cfg)
	if err != nil {
		return nil, err
	}
	d := &MappingDemo{
		App:       app,
		Mapping:   MappingExp,
		Radius:    math.Pi,
		GridLines: 15,
		Samples:   201,
	}
	d.src = app.AddAxis()
	d.src.SetViewport(margin, margin, margin+size, margin+size)
	d.dst = app.AddAxis()
	d.dst.SetViewport(width/2+margin, margin, width-margin, margin+size)
	d.src.SetLimits(-d.Radius, d.Radius, -d.Radius, d.Radius)
	d.dst.SetLimits(-d.Radius, d.Radius, -d.Radius, d.Radius)

	d.a = d.src.AddControlPoint(0, 0.5, "A")
	d.a.Fill = c5.TableauSaturated[2]
	d.b = d.src.AddControlPoint(0.5, 0, "B")
	d.b.Fill = c5.TableauSaturated[3]

	for _, m := range Mappings {
		app.AddButton(c5.Math(m.TeX()), func(*c5.App) { d.Mapping = m })
	}
	app.AddButton("Resolution", func(*c5.App) {
		if d.GridLines == 15 {
			d.GridLines = 31
		} else {
			d.GridLines = 15
		}
	})
	app.AddButton("Zoom", func(*c5.App) { d.toggleZoom() })
	app.SetTypesetter(c5.UnicodeTypesetter{})
	app.OnAnyButtonClicked(d.updateCaption)
	d.updateCaption()

	app.SetDraw(d.draw)
	return d, nil
}

func (d *MappingDemo) updateCaption() {
	d.App.SetCaption("Mapping: " + c5.Math("f(z) = "+d.Mapping.TeX()))
}

// toggleZoom animates the target panel between the source radius and twice
// that.
func (d *MappingDemo) toggleZoom() {
	_, xmax, _, _ := d.dst.Limits()
	r := 2 * d.Radius
	if xmax > 1.5*d.Radius {
		r = d.Radius
	}
	d.dst.AnimateLimits(-r, r, -r, r, 0.5, ease.InOutQuad)
}

func (d *MappingDemo) draw() {
	r := d.Radius
	corner := c5.Vec2{X: -r, Y: -r}
	xMesh := c5.MeshGrid2D(corner, c5.Vec2{Y: 2 * r}, c5.Vec2{X: 2 * r}, d.GridLines, d.Samples)
	yMesh := c5.MeshGrid2D(corner, c5.Vec2{X: 2 * r}, c5.Vec2{Y: 2 * r}, d.GridLines, d.Samples)
	hline := c5.LinRange2D(c5.Vec2{X: -r, Y: d.a.Y}, c5.Vec2{X: r, Y: d.a.Y}, d.Samples)
	vline := c5.LinRange2D(c5.Vec2{X: d.b.X, Y: -r}, c5.Vec2{X: d.b.X, Y: r}, d.Samples)

	b1, b2 := c5.Tableau[0], c5.Tableau[1]
	c3, c4 := c5.TableauSaturated[2], c5.TableauSaturated[3]

	d.src.WithClip(func() {
		d.src.AxisGrid(c5.GridStyle{NoGrid: true, NoTicks: true})
		d.src.StrokePaths(xMesh, c5.StrokeStyle{Color: b1})
		d.src.StrokePaths(yMesh, c5.StrokeStyle{Color: b2})
		d.src.StrokePath(hline, c5.StrokeStyle{Color: c3, Width: 3})
		d.src.StrokePath(vline, c5.StrokeStyle{Color: c4, Width: 3})
	})

	d.dst.WithClip(func() {
		d.dst.AxisGrid(c5.GridStyle{NoGrid: true})
		for _, p := range xMesh {
			d.dst.StrokePath(d.Mapping.mapPath(p), c5.StrokeStyle{Color: b1})
		}
		for _, p := range yMesh {
			d.dst.StrokePath(d.Mapping.mapPath(p), c5.StrokeStyle{Color: b2})
		}
		d.dst.StrokePath(d.Mapping.mapPath(hline), c5.StrokeStyle{Color: c3, Width: 3})
		d.dst.StrokePath(d.Mapping.mapPath(vline), c5.StrokeStyle{Color: c4, Width: 3})
		fa := d.Mapping.Eval(complex(d.a.X, d.a.Y))
		fb := d.Mapping.Eval(complex(d.b.X, d.b.Y))
		d.dst.DrawDot(real(fa), imag(fa), 6, c5.DotStyle{Label: "f(A)", Fill: c3})
		d.dst.DrawDot(real(fb), imag(fb), 6, c5.DotStyle{Label: "f(B)", Fill: c4})
	})

	d.App.DebugInfo("A", [2]float64{d.a.X, d.a.Y})
	d.App.DebugInfo("B", [2]float64{d.b.X, d.b.Y})
}
