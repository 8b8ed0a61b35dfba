package c5

import "time"

// DrawTimeWindow is the number of cycles the draw-time maximum covers.
const DrawTimeWindow = 180

// FrameTimer keeps per-cycle timing: the wall time between cycles, a ring
// of the last DrawTimeWindow draw durations with their maximum, and the
// cycle counter.
type FrameTimer struct {
	drawTimes [DrawTimeWindow]time.Duration
	maxDraw   time.Duration
	lastDraw  time.Duration
	frameTime time.Duration
	last      time.Time
	frame     uint64
	fps       int
}

// Frame returns the number of completed cycles.
func (t *FrameTimer) Frame() uint64 { return t.frame }

// FrameTime returns the wall time between the last two cycles.
func (t *FrameTimer) FrameTime() time.Duration { return t.frameTime }

// LastDrawTime returns the most recently recorded draw duration.
func (t *FrameTimer) LastDrawTime() time.Duration { return t.lastDraw }

// MaxDrawTime returns the largest draw duration among the last
// min(DrawTimeWindow, cycles) cycles.
func (t *FrameTimer) MaxDrawTime() time.Duration { return t.maxDraw }

// tick measures the time since the previous cycle. The first tick has no
// predecessor and reports zero.
func (t *FrameTimer) tick(now time.Time) {
	if !t.last.IsZero() {
		t.frameTime = now.Sub(t.last)
	}
	t.last = now
}

// Record stores d in the slot of the current cycle and recomputes the
// window maximum by a full scan.
func (t *FrameTimer) Record(d time.Duration) {
	t.lastDraw = d
	t.drawTimes[t.frame%DrawTimeWindow] = d
	t.maxDraw = 0
	for _, v := range t.drawTimes {
		if v > t.maxDraw {
			t.maxDraw = v
		}
	}
}

// advance ends the current cycle.
func (t *FrameTimer) advance() {
	t.frame++
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
