package demos

import (
	"fmt"
	"math"

	"github.com/mathviz/c5"
	"github.com/tanema/gween/ease"
)

const idTermSlider c5.WidgetID = 3001

// series is one of the sequences whose partial sums are shown.
type series struct {
	name    string
	tex     string
	term    func(n float64) float64
	sumYMax float64
}

var partialSumSeries = []series{
	{name: "a", tex: `a(n) = 1/n^2`, term: func(n float64) float64 { return 1 / (n * n) }, sumYMax: 1.8},
	{name: "b", tex: `b(n) = 1/n`, term: func(n float64) float64 { return 1 / n }, sumYMax: 4},
}

// NewPartialSums draws the terms of a sequence as bars on the top axis and
// stacks them into partial sums on the bottom axis. A slider picks how many
// terms are shown; buttons switch the sequence.
func NewPartialSums(cfg c5.Config) (*c5.App, error) {
	const (
		axHeight = 300
		gap      = 50
		maxN     = 30
	)
	cfg.Width, cfg.Height = 700, 2*axHeight+gap
	if cfg.Title == "" {
		cfg.Title = "Partial sums"
	}
	app, err := c5.NewApp(cfg)
	if err != nil {
		return nil, err
	}

	terms := app.AddAxis()
	terms.SetViewport(0, 0, 700, axHeight)
	terms.SetLimits(0, maxN, -0.2, 1.2)
	sums := app.AddAxis()
	sums.SetViewport(0, axHeight+gap, 700, 2*axHeight+gap)
	sums.SetLimits(0, maxN, -0.2, partialSumSeries[0].sumYMax)

	current := partialSumSeries[0]
	n := 1
	caption := func() {
		app.SetCaption(fmt.Sprintf("Partial sums of %s", c5.Math(current.tex)))
	}
	for _, s := range partialSumSeries {
		app.AddButton(c5.Math(s.tex), func(*c5.App) {
			current = s
			sums.AnimateLimits(0, maxN, -0.2, s.sumYMax, 0.4, ease.OutCubic)
		})
	}
	app.OnAnyButtonClicked(caption)
	caption()

	barFill := c5.RectStyle{Fill: c5.Tableau[0], Outline: true, OutlineColor: c5.TableauSaturated[0]}
	sumFill := c5.RectStyle{Fill: c5.Tableau[1], Outline: true, OutlineColor: c5.TableauSaturated[1]}

	app.SetDraw(func() {
		terms.AxisGrid(c5.GridStyle{})
		sums.AxisGrid(c5.GridStyle{})

		t := app.Slider(idTermSlider, float64(n-1)/(maxN-1),
			c5.Vec2{X: 20, Y: axHeight + gap/2}, c5.Vec2{X: 630, Y: axHeight + gap/2},
			c5.SliderStyle{Label: fmt.Sprintf("n = %d", n)})
		n = int(math.Floor(t*(maxN-1) + 1))

		terms.WithClip(func() {
			for i := 1; i < n; i++ {
				terms.FillRect(float64(i), 0, 0.8, current.term(float64(i)), barFill)
			}
		})
		sums.WithClip(func() {
			for i := 1; i < n; i++ {
				s := 0.0
				for j := 1; j <= i; j++ {
					a := current.term(float64(j))
					sums.FillRect(float64(i), s, 0.8, a, sumFill)
					s += a
				}
			}
		})
	})
	return app, nil
}
