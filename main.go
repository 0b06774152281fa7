// Command cubedrop drops a cube onto a plane and lets you tune the scene live.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"cubedrop/app"
	"cubedrop/config"
	"cubedrop/hal"
	"cubedrop/internal/buildinfo"
)

func main() {
	var (
		hc      hal.HeadlessConfig
		opts    hal.Options
		cfgPath string
		watch   bool
		noPanel bool
		noStats bool
		helpers bool
	)
	flag.BoolVar(&hc.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hc.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hc.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&hc.Fast, "fast", false, "Headless: run frames back to back.")
	flag.StringVar(&cfgPath, "config", "", "TOML parameters file; 's' saves to it.")
	flag.BoolVar(&watch, "watch", false, "Reload -config when it changes.")
	flag.IntVar(&opts.Width, "width", 480, "Framebuffer width.")
	flag.IntVar(&opts.Height, "height", 320, "Framebuffer height.")
	flag.IntVar(&opts.Scale, "scale", 2, "Window pixel scale.")
	flag.BoolVar(&noPanel, "no-panel", false, "Start with the parameter panel hidden.")
	flag.BoolVar(&noStats, "no-stats", false, "Start with the FPS overlay hidden.")
	flag.BoolVar(&helpers, "helpers", false, "Show the axes and light helpers.")
	flag.Parse()

	opts.Title = "cubedrop"
	log := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
	log("%s", buildinfo.String())

	params := config.Default()
	if cfgPath != "" {
		p, err := config.Load(cfgPath)
		switch {
		case err == nil:
			params = p
		case errors.Is(err, os.ErrNotExist):
			log("config: %s not found, using defaults", cfgPath)
		default:
			log("%v", err)
			os.Exit(1)
		}
	}

	var a *app.App
	defer func() {
		if a != nil {
			a.Close()
		}
	}()
	newApp := app.StepFunc(app.Config{
		Params:      params,
		ParamsPath:  cfgPath,
		Watch:       watch,
		ShowPanel:   !noPanel,
		ShowStats:   !noStats,
		ShowHelpers: helpers,
	}, &a)

	var err error
	if hc.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, opts, newApp, hc)
	} else {
		err = hal.RunWindow(opts, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		if a != nil {
			a.Close()
		}
		os.Exit(1)
	}
}
