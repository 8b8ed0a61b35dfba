package c5

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsSampleInterval is how many cycles pass between FPS samples.
const fpsSampleInterval = 59

// FPS returns the last sampled frame rate, or 0 before the first sample.
func (t *FrameTimer) FPS() int { return t.fps }

// sampleFPS takes an FPS reading from the last frame time every
// fpsSampleInterval cycles. It reports whether a sample was taken.
func (t *FrameTimer) sampleFPS() bool {
	if t.frame%fpsSampleInterval != 0 || t.frameTime <= 0 {
		return false
	}
	t.fps = int(math.Round(1 / t.frameTime.Seconds()))
	return true
}

// hostRates reports the frame and tick rates measured by Ebitengine. Only
// meaningful while a window is running.
func hostRates() (fps, tps float64) {
	return ebiten.ActualFPS(), ebiten.ActualTPS()
}
