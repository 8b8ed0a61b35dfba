package c5

// CommandType identifies the kind of recorded draw command.
type CommandType uint8

const (
	CommandClear        CommandType = iota // Surface.Clear
	CommandPolyline                        // Surface.StrokePolyline
	CommandPolygon                         // Surface.FillPolygon
	CommandFillCircle                      // Surface.FillCircle
	CommandStrokeCircle                    // Surface.StrokeCircle
	CommandFillRect                        // Surface.FillRect
	CommandText                            // Surface.DrawText
	CommandPushClip                        // Surface.PushClip
	CommandPopClip                         // Surface.PopClip
)

// DrawCommand is a single recorded draw instruction.
type DrawCommand struct {
	Type   CommandType
	Points []Vec2  // polyline/polygon vertices, circle center, rect origin, text anchor
	Size   Vec2    // rect width/height
	Radius float64 // circle radius, text size
	Width  float64 // stroke width
	Color  Color
	Text   string
	Align  TextAlign
	Clip   Rect // effective clip when the command was issued
	Depth  int  // clip nesting depth when the command was issued
}

// RecordingSurface is a Surface that records every call as a DrawCommand.
// Text is measured with a fixed advance so layouts are deterministic.
type RecordingSurface struct {
	Commands []DrawCommand

	width, height int
	clips         clipStack
	unbalanced    int
}

// NewRecordingSurface creates a recording surface of the given size.
func NewRecordingSurface(width, height int) *RecordingSurface {
	return &RecordingSurface{
		width:  width,
		height: height,
		clips:  clipStack{full: Rect{Width: float64(width), Height: float64(height)}},
	}
}

// Reset drops all recorded commands, keeping the clip stack.
func (r *RecordingSurface) Reset() {
	r.Commands = r.Commands[:0]
}

// ClipDepth returns the current clip nesting depth.
func (r *RecordingSurface) ClipDepth() int {
	return r.clips.depth()
}

// UnbalancedPops returns how many PopClip calls had no matching PushClip.
func (r *RecordingSurface) UnbalancedPops() int {
	return r.unbalanced
}

// Count returns the number of recorded commands of type t.
func (r *RecordingSurface) Count(t CommandType) int {
	n := 0
	for i := range r.Commands {
		if r.Commands[i].Type == t {
			n++
		}
	}
	return n
}

// Texts returns the strings of all recorded text commands, in order.
func (r *RecordingSurface) Texts() []string {
	var out []string
	for i := range r.Commands {
		if r.Commands[i].Type == CommandText {
			out = append(out, r.Commands[i].Text)
		}
	}
	return out
}

func (r *RecordingSurface) record(cmd DrawCommand) {
	cmd.Clip = r.clips.current()
	cmd.Depth = r.clips.depth()
	r.Commands = append(r.Commands, cmd)
}

func (r *RecordingSurface) Size() (int, int) { return r.width, r.height }

// Resize changes the reported size and the full clip rectangle.
func (r *RecordingSurface) Resize(width, height int) {
	r.width, r.height = width, height
	r.clips.full = Rect{Width: float64(width), Height: float64(height)}
}

func (r *RecordingSurface) Clear(bg Color) {
	r.record(DrawCommand{Type: CommandClear, Color: bg})
}

func (r *RecordingSurface) StrokePolyline(pts []Vec2, width float64, c Color) {
	r.record(DrawCommand{Type: CommandPolyline, Points: append([]Vec2(nil), pts...), Width: width, Color: c})
}

func (r *RecordingSurface) FillPolygon(pts []Vec2, c Color) {
	r.record(DrawCommand{Type: CommandPolygon, Points: append([]Vec2(nil), pts...), Color: c})
}

func (r *RecordingSurface) FillCircle(cx, cy, radius float64, c Color) {
	r.record(DrawCommand{Type: CommandFillCircle, Points: []Vec2{{cx, cy}}, Radius: radius, Color: c})
}

func (r *RecordingSurface) StrokeCircle(cx, cy, radius, width float64, c Color) {
	r.record(DrawCommand{Type: CommandStrokeCircle, Points: []Vec2{{cx, cy}}, Radius: radius, Width: width, Color: c})
}

func (r *RecordingSurface) FillRect(x, y, w, h float64, c Color) {
	r.record(DrawCommand{Type: CommandFillRect, Points: []Vec2{{x, y}}, Size: Vec2{w, h}, Color: c})
}

func (r *RecordingSurface) DrawText(s string, x, y, size float64, c Color, align TextAlign) {
	r.record(DrawCommand{Type: CommandText, Points: []Vec2{{x, y}}, Radius: size, Text: s, Color: c, Align: align})
}

// MeasureText uses a fixed advance of 0.6em per byte.
func (r *RecordingSurface) MeasureText(s string, size float64) (float64, float64) {
	return float64(len(s)) * size * 0.6, size * 1.2
}

func (r *RecordingSurface) PushClip(rect Rect) {
	r.record(DrawCommand{Type: CommandPushClip, Points: []Vec2{{rect.X, rect.Y}}, Size: Vec2{rect.Width, rect.Height}})
	r.clips.push(rect)
}

func (r *RecordingSurface) PopClip() {
	if !r.clips.pop() {
		r.unbalanced++
		return
	}
	r.record(DrawCommand{Type: CommandPopClip})
}
