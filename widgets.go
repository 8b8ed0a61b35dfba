package c5

import "math"

// Widgets are drawn in canvas pixels on the app surface and arbitrate
// through the app's UI. Each call both handles input and draws, so call them
// from the draw callback every cycle.

const sliderKnobRadius = 6

// DoClickable runs one arbitration step for a custom widget against the
// app's pointer.
func (app *App) DoClickable(id WidgetID, inRange func() bool) Interaction {
	return app.ui.interact(id, inRange, &app.pointer)
}

// Slider draws a slider from v1 to v2 with its knob at parameter t in
// [0, 1] and returns the parameter after this cycle's input. While the knob
// is dragged the parameter is the pointer projected onto the segment.
func (app *App) Slider(id WidgetID, t float64, v1, v2 Vec2, style SliderStyle) float64 {
	st := style.merged(defaultSlider)
	s := app.surface
	s.StrokePolyline([]Vec2{v1, v2}, st.Track.Width, st.Track.Color)
	if st.Label != "" {
		s.DrawText(st.Label, v2.X+20, v2.Y+5, st.LabelSize, st.LabelColor, TextAlignLeft)
	}

	knob := Lerp2(v1, v2, t)
	value := t
	res := app.DoClickable(id, func() bool {
		return app.pointer.InDistance(knob.X, knob.Y, sliderKnobRadius)
	})
	if res.Pressed {
		if q, u, ok := ClampToSegment(Vec2{app.pointer.X, app.pointer.Y}, v1, v2); ok {
			knob, value = q, u
		}
	}

	outline := ColorBlack
	if app.ui.Hot() == id {
		outline = ColorGray
	}
	s.FillCircle(knob.X, knob.Y, sliderKnobRadius, st.Knob)
	s.StrokeCircle(knob.X, knob.Y, sliderKnobRadius, DefaultStroke.Width, outline)
	return value
}

// inSquare reports whether the pointer is inside the square of the given
// side whose lower-left corner is (x, y).
func (app *App) inSquare(x, y, side float64) bool {
	dx := math.Abs(app.pointer.X - x - side/2)
	dy := math.Abs(app.pointer.Y - y + side/2)
	return math.Max(dx, dy) < side/2
}

// CheckBox draws a square checkbox with its lower-left corner at (x, y) and
// returns the checked state, flipped if a click completed this cycle.
func (app *App) CheckBox(id WidgetID, checked bool, x, y float64, style CheckBoxStyle) bool {
	st := style.merged(defaultCheckBox)
	side := st.Side
	res := app.DoClickable(id, func() bool { return app.inSquare(x, y, side) })
	if res.Clicked {
		checked = !checked
	}

	outline := ColorBlack
	if app.ui.Hot() == id {
		outline = ColorGray
	}
	s := app.surface
	top := y - side
	s.FillRect(x, top, side, side, ColorLightGray)
	s.StrokePolyline(squarePath(x, top, side), DefaultStroke.Width, outline)
	if checked {
		s.FillRect(x+side/2-side/6, y-side/2-side/6, side/3, side/3, ColorBlack)
	}
	if st.Label != "" {
		s.DrawText(st.Label, x+2*side, y, st.LabelSize, ColorBlack, TextAlignLeft)
	}
	return checked
}

// ColorButton draws a filled square with its lower-left corner at (x, y)
// and reports whether it was clicked this cycle. It flashes yellow on the
// click cycle.
func (app *App) ColorButton(id WidgetID, x, y, side float64, fill Color) bool {
	res := app.DoClickable(id, func() bool { return app.inSquare(x, y, side) })
	if res.Clicked {
		fill = ColorYellow
	}
	outline := ColorBlack
	if app.ui.Hot() == id {
		outline = ColorGray
	}
	s := app.surface
	s.FillRect(x, y-side, side, side, fill)
	s.StrokePolyline(squarePath(x, y-side, side), DefaultStroke.Width, outline)
	return res.Clicked
}

func squarePath(x, y, side float64) []Vec2 {
	return []Vec2{{x, y}, {x + side, y}, {x + side, y + side}, {x, y + side}, {x, y}}
}
