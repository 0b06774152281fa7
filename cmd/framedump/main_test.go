package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cubedrop/config"
)

func TestCaptureDrawsScene(t *testing.T) {
	img, err := capture(config.Default(), 3, 64, 48, false)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("expected 64x48, got %v", b)
	}
	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatalf("expected a non-black frame")
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Fatalf("expected 64x48 png, got %dx%d", cfg.Width, cfg.Height)
	}
}
