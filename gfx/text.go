package gfx

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Displayer adapts a Target to drivers.Displayer so tinyfont can draw on it.
// Pixels are alpha-blended.
type Displayer struct {
	T Target
}

func (d Displayer) Size() (x, y int16) {
	if d.T == nil {
		return 0, 0
	}
	w, h := d.T.Size()
	return int16(w), int16(h)
}

func (d Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.T == nil {
		return
	}
	Blend(d.T, int(x), int(y), RGBA(c.R, c.G, c.B, c.A))
}

func (d Displayer) Display() error { return nil }

// Text draws s with its top-left corner at (x, y).
func Text(t Target, f tinyfont.Fonter, x, y int, s string, c Color) {
	if t == nil || f == nil || s == "" {
		return
	}
	base := int16(y) + int16(f.GetYAdvance()) - 1
	tinyfont.WriteLine(Displayer{T: t}, f, int16(x), base, s, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// TextWidth is the advance width of s in pixels.
func TextWidth(f tinyfont.Fonter, s string) int {
	_, w := tinyfont.LineWidth(f, s)
	return int(w)
}

// FillRect fills the w×h rectangle at (x, y), blending by c.A.
func FillRect(t Target, x, y, w, h int, c Color) {
	if t == nil {
		return
	}
	tw, th := t.Size()
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, tw), min(y+h, th)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			Blend(t, px, py, c)
		}
	}
}
