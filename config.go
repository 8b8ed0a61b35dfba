package c5

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config holds App settings. The zero value of each field selects its
// default, so a Config can be partially filled in code or loaded from a
// TOML file:
//
//	width = 1400
//	height = 700
//	title = "Complex mapping"
//	show_debug = true
//	debug_key = "D"
type Config struct {
	Width  int    `toml:"width"`  // canvas width in pixels, default 700
	Height int    `toml:"height"` // canvas height in pixels, default 700
	Title  string `toml:"title"`  // window title, default "c5"

	ShowDebug bool   `toml:"show_debug"` // show the debug overlay at start
	DebugKey  string `toml:"debug_key"`  // key name that toggles the overlay; empty disables

	TPS           int    `toml:"tps"`            // ticks per second, default Ebitengine's 60
	ScreenshotDir string `toml:"screenshot_dir"` // default "screenshots"
	Background    string `toml:"background"`     // canvas color as hex, default "#ffffff"

	// Logger overrides the package logger for this app.
	Logger *slog.Logger `toml:"-"`
}

// DefaultConfig returns the settings used for zero Config fields.
func DefaultConfig() Config {
	return Config{
		Width:         700,
		Height:        700,
		Title:         "c5",
		ScreenshotDir: "screenshots",
		Background:    "#ffffff",
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = def.ScreenshotDir
	}
	if c.Background == "" {
		c.Background = def.Background
	}
	return c
}

// validate checks the fields that need parsing.
func (c Config) validate() error {
	if _, err := ParseHex(c.Background); err != nil {
		return fmt.Errorf("c5: config background: %w", err)
	}
	if c.DebugKey != "" {
		if _, ok := lookupKey(c.DebugKey); !ok {
			return fmt.Errorf("c5: config debug_key: unknown key %q", c.DebugKey)
		}
	}
	if c.TPS < 0 {
		return fmt.Errorf("c5: config tps: must not be negative, got %d", c.TPS)
	}
	return nil
}

// ParseConfig decodes TOML data into a Config, applies defaults and
// validates it. Unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, fmt.Errorf("c5: parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("c5: parse config: unknown keys %s", strings.Join(keys, ", "))
	}
	c = c.withDefaults()
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("c5: load config: %w", err)
	}
	return ParseConfig(data)
}

// lookupKey resolves a key name such as "D", "Space" or "F1" to an
// Ebitengine key, ignoring case.
func lookupKey(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}
