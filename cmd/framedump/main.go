// Command framedump runs the demo headless for a number of frames and writes
// the last frame as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"cubedrop/app"
	"cubedrop/config"
	"cubedrop/hal"
)

func main() {
	var (
		frames  = flag.Uint64("frames", 120, "Frames to simulate before capture.")
		outPath = flag.String("out", "frame.png", "Output PNG.")
		cfgPath = flag.String("config", "", "TOML parameters file.")
		width   = flag.Int("width", 480, "Frame width.")
		height  = flag.Int("height", 320, "Frame height.")
		panel   = flag.Bool("panel", false, "Include the parameter panel.")
	)
	flag.Parse()

	if *frames == 0 {
		fatalf("usage: framedump -frames N -out frame.png [-config params.toml]")
	}
	params := config.Default()
	if *cfgPath != "" {
		p, err := config.Load(*cfgPath)
		if err != nil {
			fatalf("%v", err)
		}
		params = p
	}

	img, err := capture(params, *frames, *width, *height, *panel)
	if err != nil {
		fatalf("run: %v", err)
	}
	if err := writePNG(*outPath, img); err != nil {
		fatalf("write: %v", err)
	}
}

func capture(params config.Params, frames uint64, w, h int, panel bool) (*image.RGBA, error) {
	var (
		a  *app.App
		fb hal.Framebuffer
	)
	newApp := app.StepFunc(app.Config{Params: params, ShowPanel: panel}, &a)
	err := hal.RunHeadless(context.Background(), hal.Options{Width: w, Height: h}, func(h hal.HAL) (hal.StepFunc, error) {
		fb = h.Display().Framebuffer()
		return newApp(h)
	}, hal.HeadlessConfig{Enabled: true, Ticks: frames, Fast: true})
	if a != nil {
		a.Close()
	}
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			r, g, b := hal.PixelRGB(fb, x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
