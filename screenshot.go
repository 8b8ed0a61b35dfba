package c5

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot, taken at the end of the current
// frame. The PNG is written to Config.ScreenshotDir with a timestamped
// name. Surfaces that cannot read back pixels skip it with a warning.
func (app *App) Screenshot(label string) {
	app.screenshotQueue = append(app.screenshotQueue, label)
}

// flushScreenshots writes every queued screenshot of s.
func (app *App) flushScreenshots(s Surface) {
	if len(app.screenshotQueue) == 0 {
		return
	}
	defer func() { app.screenshotQueue = app.screenshotQueue[:0] }()

	snap, ok := s.(Snapshotter)
	if !ok {
		app.log().Warn("c5: screenshot: surface cannot read pixels", "surface", fmt.Sprintf("%T", s))
		return
	}
	dir := app.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		app.log().Warn("c5: screenshot: mkdir failed", "dir", dir, "err", err)
		return
	}

	img := snap.Snapshot()
	stamp := time.Now().Format("20060102_150405")
	for _, label := range app.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			app.log().Warn("c5: screenshot failed", "err", err)
			continue
		}
		app.log().Info("c5: screenshot saved", "path", path)
	}
}

// writePNG encodes img to a PNG file at path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("c5: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("c5: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
