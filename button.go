package c5

// buttonIDBase is the first widget ID used by buttons.
const buttonIDBase WidgetID = 1 << 20

const (
	buttonStripHeight = 48
	buttonTextSize    = 16
	buttonPadX        = 16
	buttonGap         = 16
	buttonHeight      = 32
)

var (
	buttonFill      = ColorGhostWhite
	buttonHoverFill = Hex("#f0f0ff")
	buttonBorder    = ColorLightGray
	buttonText      = ColorGray
	buttonHoverText = Hex("#2c5777")
)

// Button is a clickable label in the strip below the canvas.
type Button struct {
	Label   string
	OnClick func(*App)

	id   WidgetID
	rect Rect
}

// ID returns the arbitration identity of the button.
func (b *Button) ID() WidgetID { return b.id }

// Rect returns where the button was laid out in the last cycle.
func (b *Button) Rect() Rect { return b.rect }

// AddButton appends a button to the strip below the canvas. On a completed
// click onClick runs with the app, then the OnAnyButtonClicked hook.
// Labels may contain math markup.
func (app *App) AddButton(label string, onClick func(*App)) *Button {
	b := &Button{
		Label:   label,
		OnClick: onClick,
		id:      buttonIDBase + WidgetID(len(app.buttons)),
	}
	app.buttons = append(app.buttons, b)
	return b
}

// Buttons returns the registered buttons in order.
func (app *App) Buttons() []*Button {
	return app.buttons
}

// OnAnyButtonClicked sets a hook that runs after any button's own handler.
func (app *App) OnAnyButtonClicked(fn func()) {
	app.onAnyButton = fn
}

func (app *App) buttonStripHeight() int {
	if len(app.buttons) == 0 {
		return 0
	}
	return buttonStripHeight
}

// layoutButtons centers the buttons in the strip, measuring labels on s.
func (app *App) layoutButtons(s Surface) {
	if len(app.buttons) == 0 {
		return
	}
	widths := make([]float64, len(app.buttons))
	total := float64(buttonGap * (len(app.buttons) - 1))
	for i, b := range app.buttons {
		widths[i] = app.measureRich(s, b.Label, buttonTextSize) + 2*buttonPadX
		total += widths[i]
	}
	x := (float64(app.cfg.Width) - total) / 2
	y := float64(app.cfg.Height) + (buttonStripHeight-buttonHeight)/2
	for i, b := range app.buttons {
		b.rect = Rect{X: x, Y: y, Width: widths[i], Height: buttonHeight}
		x += widths[i] + buttonGap
	}
}

// doButtons arbitrates and draws every button. Click handlers run after the
// whole strip has been processed so that a handler adding buttons does not
// disturb this cycle.
func (app *App) doButtons(s Surface) {
	app.layoutButtons(s)
	var clicked []*Button
	for _, b := range app.buttons {
		r := b.rect
		res := app.DoClickable(b.id, func() bool { return r.Contains(app.pointer.X, app.pointer.Y) })
		if res.Clicked && r.Contains(app.pointer.X, app.pointer.Y) {
			clicked = append(clicked, b)
		}
		fill, text := buttonFill, buttonText
		if app.ui.Hot() == b.id || app.ui.Active() == b.id {
			fill, text = buttonHoverFill, buttonHoverText
		}
		s.FillRect(r.X, r.Y, r.Width, r.Height, fill)
		s.StrokePolyline([]Vec2{
			{r.X, r.Y}, {r.X + r.Width, r.Y}, {r.X + r.Width, r.Y + r.Height}, {r.X, r.Y + r.Height}, {r.X, r.Y},
		}, 1, buttonBorder)
		app.drawRich(s, b.Label, r.X+buttonPadX, r.Y+r.Height/2+buttonTextSize/3, buttonTextSize, text)
	}
	for _, b := range clicked {
		app.log().Debug("c5: button clicked", "label", b.Label)
		if b.OnClick != nil {
			b.OnClick(app)
		}
		if app.onAnyButton != nil {
			app.onAnyButton()
		}
	}
}
