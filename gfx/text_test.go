package gfx

import (
	"testing"

	"cubedrop/fonts/font6x8"
)

func TestTextDrawsInsideLine(t *testing.T) {
	tgt := NewRGBATarget(40, 20)
	tgt.Clear(RGB(0, 0, 0))
	Text(tgt, font6x8.Font, 2, 4, "Hi", RGB(0xFF, 0xFF, 0xFF))

	n := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if tgt.Pixel(x, y).R == 0 {
				continue
			}
			n++
			if y < 4 || y >= 12 || x < 2 || x >= 14 {
				t.Fatalf("pixel (%d,%d) outside the text box", x, y)
			}
		}
	}
	if n == 0 {
		t.Fatalf("expected text pixels")
	}
	if w := TextWidth(font6x8.Font, "Hi"); w != 12 {
		t.Fatalf("expected width 12, got %d", w)
	}
}

func TestFillRectClips(t *testing.T) {
	tgt := NewRGBATarget(4, 4)
	tgt.Clear(RGB(0, 0, 0))
	FillRect(tgt, -2, -2, 4, 4, RGB(0xFF, 0, 0))
	if tgt.Pixel(1, 1).R != 0xFF || tgt.Pixel(2, 2).R != 0 {
		t.Fatalf("unexpected fill %v %v", tgt.Pixel(1, 1), tgt.Pixel(2, 2))
	}
}
