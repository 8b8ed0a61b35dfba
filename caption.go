package c5

import (
	"regexp"
	"strings"
)

// Typesetter renders math markup. It is optional: without one, or when it
// fails, math segments are shown as their raw "$...$" markup.
type Typesetter interface {
	// Measure returns the advance width of tex at the given size.
	Measure(s Surface, tex string, size float64) (float64, error)
	// Draw renders tex with its baseline at (x, y) and returns its advance.
	Draw(s Surface, tex string, x, y, size float64, c Color) (float64, error)
}

// Segment is a run of caption or button text. Math segments hold the markup
// without the surrounding dollar signs.
type Segment struct {
	Text string
	Math bool
}

// raw returns the segment as it appears in source text.
func (g Segment) raw() string {
	if g.Math {
		return "$" + g.Text + "$"
	}
	return g.Text
}

var texRun = regexp.MustCompile(`\$[^$]+\$`)

// Math wraps tex in math markers so that it is typeset when drawn.
func Math(tex string) string {
	return "$" + tex + "$"
}

// ConvertTeX splits src into plain and math segments. Math runs are
// delimited by single dollar signs; a lone or doubled "$" stays plain text.
func ConvertTeX(src string) []Segment {
	var out []Segment
	last := 0
	for _, m := range texRun.FindAllStringIndex(src, -1) {
		if m[0] > last {
			out = append(out, Segment{Text: src[last:m[0]]})
		}
		out = append(out, Segment{Text: src[m[0]+1 : m[1]-1], Math: true})
		last = m[1]
	}
	if last < len(src) {
		out = append(out, Segment{Text: src[last:]})
	}
	return out
}

// SetTypesetter installs the math renderer. Pass nil to show raw markup.
func (app *App) SetTypesetter(t Typesetter) {
	app.typesetter = t
}

// SetCaption sets the text shown below the buttons. The caption region is
// hidden until a caption is set; "\n" starts a new line.
func (app *App) SetCaption(text string) {
	app.caption = text
}

// Caption returns the current caption.
func (app *App) Caption() string {
	return app.caption
}

const (
	captionTextSize   = 16
	captionLineHeight = 22
	captionPadding    = 20
)

func (app *App) captionLines() []string {
	if app.caption == "" {
		return nil
	}
	return strings.Split(app.caption, "\n")
}

func (app *App) captionRegionHeight() int {
	n := len(app.captionLines())
	if n == 0 {
		return 0
	}
	return n*captionLineHeight + 2*captionPadding
}

func (app *App) drawCaption(s Surface) {
	top := float64(app.captionTop())
	for i, line := range app.captionLines() {
		y := top + captionPadding + float64(i+1)*captionLineHeight - 6
		app.drawRich(s, line, captionPadding/2, y, captionTextSize, ColorBlack)
	}
}

// drawRich draws text with math segments typeset and returns the advance.
func (app *App) drawRich(s Surface, text string, x, y, size float64, c Color) float64 {
	start := x
	for _, seg := range ConvertTeX(text) {
		if seg.Math && app.typesetter != nil {
			w, err := app.typesetter.Draw(s, seg.Text, x, y, size, c)
			if err == nil {
				x += w
				continue
			}
			app.log().Debug("c5: typeset failed, showing markup", "tex", seg.Text, "err", err)
		}
		raw := seg.raw()
		s.DrawText(raw, x, y, size, c, TextAlignLeft)
		w, _ := s.MeasureText(raw, size)
		x += w
	}
	return x - start
}

// measureRich returns the advance drawRich would produce.
func (app *App) measureRich(s Surface, text string, size float64) float64 {
	var total float64
	for _, seg := range ConvertTeX(text) {
		if seg.Math && app.typesetter != nil {
			if w, err := app.typesetter.Measure(s, seg.Text, size); err == nil {
				total += w
				continue
			}
		}
		w, _ := s.MeasureText(seg.raw(), size)
		total += w
	}
	return total
}

// UnicodeTypesetter renders a small subset of TeX by substituting Unicode
// symbols: Greek letters, common operators, and single-character
// superscripts and subscripts. Anything else is drawn as written.
type UnicodeTypesetter struct{}

var texSymbols = strings.NewReplacer(
	`\alpha`, "α", `\beta`, "β", `\gamma`, "γ", `\delta`, "δ", `\epsilon`, "ε",
	`\theta`, "θ", `\lambda`, "λ", `\mu`, "μ", `\pi`, "π", `\rho`, "ρ",
	`\sigma`, "σ", `\tau`, "τ", `\phi`, "φ", `\omega`, "ω", `\Omega`, "Ω",
	`\Delta`, "Δ", `\Sigma`, "Σ", `\cdot`, "·", `\times`, "×", `\infty`, "∞",
	`\le`, "≤", `\ge`, "≥", `\ne`, "≠", `\to`, "→", `\in`, "∈", `\sum`, "∑",
	`\sqrt`, "√", `\,`, " ", `\{`, "{", `\}`, "}", `{`, "", `}`, "",
)

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴', '5': '⁵', '6': '⁶',
	'7': '⁷', '8': '⁸', '9': '⁹', '+': '⁺', '-': '⁻', 'n': 'ⁿ', 'i': 'ⁱ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄', '5': '₅', '6': '₆',
	'7': '₇', '8': '₈', '9': '₉', '+': '₊', '-': '₋', 'n': 'ₙ', 'k': 'ₖ',
}

// Convert returns the Unicode rendering of tex.
func (UnicodeTypesetter) Convert(tex string) string {
	src := []rune(texSymbols.Replace(tex))
	var b strings.Builder
	for i := 0; i < len(src); i++ {
		r := src[i]
		if (r == '^' || r == '_') && i+1 < len(src) {
			table := superscripts
			if r == '_' {
				table = subscripts
			}
			if s, ok := table[src[i+1]]; ok {
				b.WriteRune(s)
				i++
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (u UnicodeTypesetter) Measure(s Surface, tex string, size float64) (float64, error) {
	w, _ := s.MeasureText(u.Convert(tex), size)
	return w, nil
}

func (u UnicodeTypesetter) Draw(s Surface, tex string, x, y, size float64, c Color) (float64, error) {
	text := u.Convert(tex)
	s.DrawText(text, x, y, size, c, TextAlignLeft)
	w, _ := s.MeasureText(text, size)
	return w, nil
}
