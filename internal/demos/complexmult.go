package demos

import "github.com/mathviz/c5"

// Widget IDs for the complex multiplication checkboxes.
const (
	idClampZ c5.WidgetID = 2001
	idClampW c5.WidgetID = 2002
)

// NewComplexMult shows z, w and their product zw on the plane. Checkboxes
// keep z and w on the unit circle.
func NewComplexMult(cfg c5.Config) (*c5.App, error) {
	cfg.Width, cfg.Height = 700, 700
	if cfg.Title == "" {
		cfg.Title = "Complex multiplication"
	}
	app, err := c5.NewApp(cfg)
	if err != nil {
		return nil, err
	}
	axis := app.Axis()
	axis.SetLimits(-2, 2, -2, 2)

	c1, c2, c3 := c5.TableauSaturated[0], c5.TableauSaturated[1], c5.TableauSaturated[2]
	z := axis.AddControlPoint(1, 0, "z")
	z.Fill = c1
	w := axis.AddControlPoint(0, 1, "w")
	w.Fill = c2
	clampZ, clampW := true, true

	app.SetCaption("The product " + c5.Math(`zw`) + " multiplies the lengths and adds the angles.")
	app.SetDraw(func() {
		axis.AxisGrid(c5.GridStyle{})

		if clampZ {
			z.X, z.Y = unit(z.X, z.Y)
		}
		if clampW {
			w.X, w.Y = unit(w.X, w.Y)
		}
		if clampZ || clampW {
			axis.StrokeCircle(0, 0, 1, c5.StrokeStyle{})
		}

		axis.Line(0, 0, z.X, z.Y, c5.StrokeStyle{Color: c1})
		axis.Line(0, 0, w.X, w.Y, c5.StrokeStyle{Color: c2})
		zw := complex(z.X, z.Y) * complex(w.X, w.Y)
		axis.Line(0, 0, real(zw), imag(zw), c5.StrokeStyle{Color: c3})
		axis.DrawDot(real(zw), imag(zw), 6, c5.DotStyle{Label: "zw", Fill: c3})

		clampZ = app.CheckBox(idClampZ, clampZ, 50, 600, c5.CheckBoxStyle{Label: "Clamp z"})
		clampW = app.CheckBox(idClampW, clampW, 50, 650, c5.CheckBoxStyle{Label: "Clamp w"})
	})
	return app, nil
}

func unit(x, y float64) (float64, float64) {
	v := c5.Normalize(c5.Vec2{X: x, Y: y})
	return v.X, v.Y
}
