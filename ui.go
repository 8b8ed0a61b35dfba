package c5

// WidgetID identifies an interactive widget for arbitration. Control points
// get IDs axisID*100+n; callers should pick IDs of 1000 and above for
// sliders and checkboxes, and stay below buttonIDBase.
type WidgetID int

// NoWidget means no widget is hot or active.
const NoWidget WidgetID = -1

// UI arbitrates pointer focus between widgets with the hot/active scheme: a
// widget under the pointer becomes hot, a hot widget that sees the button
// go down becomes active, and the active widget keeps the pointer until release.
// At most one widget is active at any time.
//
// A UI is owned by one App and only touched from the cycle goroutine.
type UI struct {
	hot    WidgetID
	active WidgetID

	// claimed is set once a widget holds hot in the current frame.
	claimed bool
}

// NewUI returns arbitration state with no hot or active widget.
func NewUI() *UI {
	return &UI{hot: NoWidget, active: NoWidget}
}

// Hot returns the widget eligible to capture the next press.
func (u *UI) Hot() WidgetID { return u.hot }

// Active returns the widget currently capturing the pointer.
func (u *UI) Active() WidgetID { return u.active }

// Reset clears hot and active.
func (u *UI) Reset() {
	u.hot, u.active = NoWidget, NoWidget
	u.claimed = false
}

// BeginFrame starts a new arbitration pass. Call it once per cycle before
// the first Interact; App.Cycle does this for its own UI.
func (u *UI) BeginFrame() {
	u.claimed = false
}

// Interaction is the result of UI.Interact for one widget in one cycle.
type Interaction struct {
	// Pressed is true every cycle the widget holds the pointer and the
	// pointer is still down.
	Pressed bool
	// Clicked is true once, on the cycle the captured pointer is released.
	Clicked bool
}

// Interact runs one arbitration step for widget id. inRange reports whether
// the pointer is inside the widget's hit region; pressed is the pointer
// button state for this cycle and justPressed is true only on the cycle the
// button went down. A hot widget is captured only by a fresh press, so a
// press that starts elsewhere and slides onto the widget never activates it.
//
// Widgets are visited in a fixed order each cycle; when hit regions overlap
// the first visited widget wins hot.
func (u *UI) Interact(id WidgetID, inRange func() bool, pressed, justPressed bool) Interaction {
	var res Interaction
	if u.active == id {
		if pressed {
			res.Pressed = true
		} else {
			u.active = NoWidget
			res.Clicked = true
		}
		return res
	}
	in := inRange()
	if u.hot == id {
		if justPressed && u.active == NoWidget {
			u.active = id
		}
		if in {
			u.claimed = true
		} else {
			u.hot = NoWidget
		}
	}
	if u.active == NoWidget && !u.claimed && in {
		u.hot = id
		u.claimed = true
	}
	return res
}

// interact runs Interact with the button state of ptr.
func (u *UI) interact(id WidgetID, inRange func() bool, ptr *Pointer) Interaction {
	return u.Interact(id, inRange, ptr.Pressed, ptr.JustPressed())
}
