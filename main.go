package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sparkbench/app"
	"sparkbench/hal"
	"sparkbench/internal/buildinfo"
)

func main() {
	var (
		headless, term, version bool
		hz                      int
		ticks                   uint64
		configPath              string
		f                       app.Flags
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&term, "term", false, "Render into the terminal instead of a window.")
	flag.IntVar(&hz, "hz", 0, "Tick rate for headless and terminal runs, and the fixed step rate (default 60).")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless or terminal mode (0 = until the scenes finish).")
	flag.StringVar(&configPath, "config", "", "JSON config file; flags override its values.")
	flag.StringVar(&f.Scenes, "scenes", "", "Comma separated scene list, or \"all\".")
	flag.UintVar(&f.Seed, "seed", 0, "RNG seed (0 = wall clock).")
	flag.Float64Var(&f.Seconds, "seconds", 0, "Seconds per scene (default 5).")
	flag.IntVar(&f.Frames, "frames", 0, "Frames per scene; overrides -seconds when set.")
	flag.BoolVar(&f.Fixed, "fixed", false, "Advance scenes by 1/hz instead of wall time.")
	flag.BoolVar(&f.Loop, "loop", false, "Restart from the first scene after the last.")
	flag.StringVar(&f.CaptureDir, "capture", "", "Directory for the last frame of each scene as WebP.")
	flag.StringVar(&f.ReportPath, "report", "", "Write the JSON run report here.")
	flag.StringVar(&f.TexturePath, "texture", "", "PNG or TGA image for the texture scene.")
	flag.BoolVar(&f.NoOverlay, "no-overlay", false, "Start with the HUD hidden.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	var cfg app.Config
	if configPath != "" {
		var err error
		if cfg, err = app.LoadConfig(configPath); err != nil {
			fail(err)
		}
	}
	f.Hz = hz
	cfg.Resolve(f)
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	newApp := func(h hal.HAL) func() error {
		step, _, err := app.New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		return step
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case headless:
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Hz: cfg.Hz, Ticks: ticks})
	case term:
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Hz: cfg.Hz, Ticks: ticks})
	default:
		err = hal.RunWindow(newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
