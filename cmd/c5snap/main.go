// Command c5snap renders a demo without a window and writes the final frame
// as a PNG. A JSON test script can drive the pointer before the snapshot,
// which makes it useful for visual regression checks.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mathviz/c5"
	"github.com/mathviz/c5/internal/demos"
)

type options struct {
	Demo    string
	Out     string
	Frames  int
	Script  string
	Config  string
	Debug   bool
	Verbose bool
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "c5snap [flags]",
		Short: "Render a c5 demo to a PNG without opening a window",
		Example: `  # Render the complex mapping demo after 10 frames
  c5snap --demo complexmapping --out mapping.png

  # Replay a pointer script, then snapshot
  c5snap --demo complexmult --script drag.json --out drag.png`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	names := make([]string, len(demos.Kinds))
	for i, k := range demos.Kinds {
		names[i] = k.String()
	}
	rootCmd.Flags().StringVar(&opts.Demo, "demo", demos.KindComplexMult.String(),
		"demo to render ("+strings.Join(names, ", ")+")")
	rootCmd.Flags().StringVarP(&opts.Out, "out", "o", "c5snap.png", "output PNG path")
	rootCmd.Flags().IntVarP(&opts.Frames, "frames", "n", 10, "cycles to run; with --script, 0 runs until the script ends")
	rootCmd.Flags().StringVar(&opts.Script, "script", "", "JSON test script to replay")
	rootCmd.Flags().StringVar(&opts.Config, "config", "", "TOML config file")
	rootCmd.Flags().BoolVar(&opts.Debug, "debug-table", false, "include the debug table in the image")
	rootCmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts options) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	c5.SetLogger(logger)

	kind, err := demos.ParseKind(opts.Demo)
	if err != nil {
		return err
	}
	var cfg c5.Config
	if opts.Config != "" {
		if cfg, err = c5.LoadConfig(opts.Config); err != nil {
			return err
		}
	}
	cfg.ShowDebug = cfg.ShowDebug || opts.Debug

	app, err := demos.New(kind, cfg)
	if err != nil {
		return err
	}
	defer app.Dispose()

	if opts.Script != "" {
		data, err := os.ReadFile(opts.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := c5.LoadTestScript(data)
		if err != nil {
			return err
		}
		app.SetTestRunner(runner)
	}

	surface := c5.NewImageSurface(app.WindowSize())
	defer surface.Close()

	if err := c5.RunHeadless(app, surface, opts.Frames); err != nil {
		return err
	}
	if err := surface.SavePNG(opts.Out); err != nil {
		return err
	}
	logger.Info("wrote snapshot", "path", opts.Out, "demo", kind, "frames", app.Timer().Frame())
	return nil
}
