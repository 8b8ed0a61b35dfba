// Package c5 is a small immediate-mode framework for interactive math
// visualizations on [Ebitengine].
//
// An [App] owns a canvas and one or more [Axis] values. Each axis maps a
// logical rectangle (a window of the plane) onto a pixel viewport and draws
// in logical coordinates. Every cycle the app clears the canvas, lets the
// draggable [ControlPoint] markers follow the pointer, calls your draw
// callback, and draws the markers on top.
//
// # Quick start
//
//	app := c5.MustNewApp(c5.Config{Title: "Complex multiplication"})
//	axis := app.Axis()
//	axis.SetLimits(-2, 2, -2, 2)
//	z := axis.AddControlPoint(1, 0, "z")
//
//	app.SetDraw(func() {
//		axis.AxisGrid(c5.GridStyle{})
//		axis.Line(0, 0, z.X, z.Y, c5.StrokeStyle{Color: c5.Tableau[0]})
//	})
//	if err := c5.Run(app); err != nil {
//		log.Fatal(err)
//	}
//
// # Interaction
//
// Control points, sliders, checkboxes and buttons share one [UI]
// arbitration state: a widget under the pointer becomes hot, a press that
// starts on the hot widget makes it active, and the active widget keeps the
// pointer until release. Custom widgets join the scheme through [App.DoClickable].
//
// # Surfaces
//
// Drawing goes through the [Surface] interface. [EbitenSurface] draws into
// the window, [ImageSurface] rasterizes in software with gogpu/gg for
// headless snapshots, and [RecordingSurface] records commands for tests.
// Use [RunHeadless] with an ImageSurface to render without a window.
//
// [Ebitengine]: https://ebitengine.org
package c5
