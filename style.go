package c5

// Style structs use zero values to mean "inherit the default". Boolean
// switches are phrased negatively (NoFill, NoGrid, ...) so that the zero
// value keeps the default behavior. Each struct has a merged method that
// overlays the set fields on top of a default.

// StrokeStyle controls line drawing.
type StrokeStyle struct {
	Color Color
	Width float64 // pixels
}

// DefaultStroke is the stroke used when a call passes a zero StrokeStyle.
var DefaultStroke = StrokeStyle{Color: ColorBlack, Width: 1.03}

func (s StrokeStyle) merged(def StrokeStyle) StrokeStyle {
	if s.Color.IsZero() {
		s.Color = def.Color
	}
	if s.Width == 0 {
		s.Width = def.Width
	}
	return s
}

// RectStyle controls filled rectangles and polygons.
type RectStyle struct {
	Fill         Color
	Outline      bool  // stroke the outline after filling
	OutlineColor Color // defaults to black
}

// DefaultRect is the fill used when a call passes a zero RectStyle.
var DefaultRect = RectStyle{Fill: ColorGray, OutlineColor: ColorBlack}

func (s RectStyle) merged(def RectStyle) RectStyle {
	if s.Fill.IsZero() {
		s.Fill = def.Fill
	}
	if s.OutlineColor.IsZero() {
		s.OutlineColor = def.OutlineColor
	}
	s.Outline = s.Outline || def.Outline
	return s
}

// DotStyle controls dots drawn with a pixel radius at a logical position.
type DotStyle struct {
	Fill      Color
	Stroke    Color
	LineWidth float64
	NoFill    bool
	NoStroke  bool
	Label     string
}

// DefaultDot is the style used when a call passes a zero DotStyle.
var DefaultDot = DotStyle{Fill: ColorRed, Stroke: ColorBlack, LineWidth: 1}

func (s DotStyle) merged(def DotStyle) DotStyle {
	if s.Fill.IsZero() {
		s.Fill = def.Fill
	}
	if s.Stroke.IsZero() {
		s.Stroke = def.Stroke
	}
	if s.LineWidth == 0 {
		s.LineWidth = def.LineWidth
	}
	if s.Label == "" {
		s.Label = def.Label
	}
	s.NoFill = s.NoFill || def.NoFill
	s.NoStroke = s.NoStroke || def.NoStroke
	return s
}

// TextStyle controls text drawn at a logical position. Offset is in pixels,
// with positive Y moving the text up.
type TextStyle struct {
	Color  Color
	Size   float64
	Offset Vec2
	Align  TextAlign
}

// DefaultText is the style used when a call passes a zero TextStyle.
var DefaultText = TextStyle{Color: ColorBlack, Size: 14}

func (s TextStyle) merged(def TextStyle) TextStyle {
	if s.Color.IsZero() {
		s.Color = def.Color
	}
	if s.Size == 0 {
		s.Size = def.Size
	}
	if s.Offset == (Vec2{}) {
		s.Offset = def.Offset
	}
	if s.Align == TextAlignLeft {
		s.Align = def.Align
	}
	return s
}

// GridStyle controls Axis.AxisGrid.
type GridStyle struct {
	Background  Color
	LineColor   Color
	LineWidth   float64
	LabelColor  Color
	LabelSize   float64
	LabelOffset Vec2 // pixels from the grid line; zero means {3, 3}
	TickLength  float64

	NoFill   bool // skip the background fill
	NoGrid   bool // skip grid lines
	NoLabels bool // skip tick labels
	NoTicks  bool // skip ticks (only drawn when labels are shown without grid)
}

// DefaultGrid is the grid style used when a call passes a zero GridStyle.
var DefaultGrid = GridStyle{
	Background:  ColorGhostWhite,
	LineColor:   ColorLightGray,
	LineWidth:   1,
	LabelColor:  ColorGray,
	LabelSize:   10,
	LabelOffset: Vec2{3, 3},
	TickLength:  10,
}

func (s GridStyle) merged(def GridStyle) GridStyle {
	if s.Background.IsZero() {
		s.Background = def.Background
	}
	if s.LineColor.IsZero() {
		s.LineColor = def.LineColor
	}
	if s.LineWidth == 0 {
		s.LineWidth = def.LineWidth
	}
	if s.LabelColor.IsZero() {
		s.LabelColor = def.LabelColor
	}
	if s.LabelSize == 0 {
		s.LabelSize = def.LabelSize
	}
	if s.LabelOffset == (Vec2{}) {
		s.LabelOffset = def.LabelOffset
	}
	if s.TickLength == 0 {
		s.TickLength = def.TickLength
	}
	s.NoFill = s.NoFill || def.NoFill
	s.NoGrid = s.NoGrid || def.NoGrid
	s.NoLabels = s.NoLabels || def.NoLabels
	s.NoTicks = s.NoTicks || def.NoTicks
	return s
}

// SliderStyle controls App.Slider.
type SliderStyle struct {
	Label      string
	LabelColor Color
	LabelSize  float64
	Track      StrokeStyle
	Knob       Color
}

var defaultSlider = SliderStyle{
	LabelColor: ColorBlack,
	LabelSize:  16,
	Track:      StrokeStyle{Color: ColorBlack, Width: 2},
	Knob:       ColorLightGray,
}

func (s SliderStyle) merged(def SliderStyle) SliderStyle {
	if s.Label == "" {
		s.Label = def.Label
	}
	if s.LabelColor.IsZero() {
		s.LabelColor = def.LabelColor
	}
	if s.LabelSize == 0 {
		s.LabelSize = def.LabelSize
	}
	s.Track = s.Track.merged(def.Track)
	if s.Knob.IsZero() {
		s.Knob = def.Knob
	}
	return s
}

// CheckBoxStyle controls App.CheckBox.
type CheckBoxStyle struct {
	Side      float64
	Label     string
	LabelSize float64
}

var defaultCheckBox = CheckBoxStyle{Side: 16, LabelSize: 16}

func (s CheckBoxStyle) merged(def CheckBoxStyle) CheckBoxStyle {
	if s.Side == 0 {
		s.Side = def.Side
	}
	if s.Label == "" {
		s.Label = def.Label
	}
	if s.LabelSize == 0 {
		s.LabelSize = def.LabelSize
	}
	return s
}
