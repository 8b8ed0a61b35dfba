package c5

import (
	"fmt"
	"strconv"
	"strings"
)

// Named colors used by the default styles.
var (
	ColorBlack      = Color{0, 0, 0, 1}
	ColorWhite      = Color{1, 1, 1, 1}
	ColorRed        = Color{1, 0, 0, 1}
	ColorYellow     = Color{1, 1, 0, 1}
	ColorGray       = Hex("#808080")
	ColorLightGray  = Hex("#d3d3d3")
	ColorGhostWhite = Hex("#f8f8ff")
)

// Tableau is the Tableau 10 palette: blue, orange, red, teal, green, yellow,
// purple, pink, brown, gray.
var Tableau = [10]Color{
	Hex("#4e79a7"),
	Hex("#f28e2b"),
	Hex("#e15759"),
	Hex("#76b7b2"),
	Hex("#59a14f"),
	Hex("#edc948"),
	Hex("#b07aa1"),
	Hex("#ff9da7"),
	Hex("#9c755f"),
	Hex("#bab0ab"),
}

// TableauSaturated holds saturated variants of the Tableau colors, in the
// same order.
var TableauSaturated = [10]Color{
	Hex("#1b4e87"),
	Hex("#ff7f00"),
	Hex("#d62020"),
	Hex("#00857d"),
	Hex("#008e00"),
	Hex("#f5cc00"),
	Hex("#8700a3"),
	Hex("#ff4d4d"),
	Hex("#804d33"),
	Hex("#8a8a85"),
}

// TableauLight holds light variants of the Tableau colors, in the same order.
var TableauLight = [10]Color{
	Hex("#8cbce8"),
	Hex("#f7c99c"),
	Hex("#e8a3a5"),
	Hex("#b2d3cc"),
	Hex("#a2cda2"),
	Hex("#f2e8c2"),
	Hex("#d8c1d4"),
	Hex("#ffd5da"),
	Hex("#c3b4aa"),
	Hex("#d9d5d1"),
}

// Hex parses a "#rrggbb" or "#rrggbbaa" color and panics on malformed input.
// Use ParseHex for untrusted strings.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHex parses a "#rgb", "#rrggbb" or "#rrggbbaa" color string. The
// leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("c5: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("c5: invalid hex color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
