package gfx

// Target is a minimal pixel target for software rendering.
//
// Implementations must clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Pixel(x, y int) Color
	Clear(c Color)
}

// RGBATarget renders into an RGBA8888 buffer.
//
// Callers provide the backing buffer and layout (stride in bytes).
type RGBATarget struct {
	Buf    []byte
	Stride int
	W      int
	H      int
}

// NewRGBATarget allocates a tightly packed w×h target.
func NewRGBATarget(w, h int) *RGBATarget {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGBATarget{Buf: make([]byte, w*h*4), Stride: w * 4, W: w, H: h}
}

func (t *RGBATarget) Size() (w, h int) { return t.W, t.H }

func (t *RGBATarget) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGBATarget) offset(x, y int) int {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return -1
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return -1
	}
	return off
}

func (t *RGBATarget) Clear(c Color) {
	if !t.valid() {
		return
	}
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*4
			if off+3 >= len(t.Buf) {
				return
			}
			t.Buf[off] = c.R
			t.Buf[off+1] = c.G
			t.Buf[off+2] = c.B
			t.Buf[off+3] = 0xFF
		}
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if !t.valid() {
		return
	}
	off := t.offset(x, y)
	if off < 0 {
		return
	}
	t.Buf[off] = c.R
	t.Buf[off+1] = c.G
	t.Buf[off+2] = c.B
	t.Buf[off+3] = 0xFF
}

func (t *RGBATarget) Pixel(x, y int) Color {
	if !t.valid() {
		return Color{}
	}
	off := t.offset(x, y)
	if off < 0 {
		return Color{}
	}
	return Color{R: t.Buf[off], G: t.Buf[off+1], B: t.Buf[off+2], A: t.Buf[off+3]}
}

// Blend mixes c over the pixel at (x, y) using c.A as coverage.
func Blend(t Target, x, y int, c Color) {
	switch c.A {
	case 0:
		return
	case 0xFF:
		t.SetPixel(x, y, c)
		return
	}
	d := t.Pixel(x, y)
	a := uint32(c.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	t.SetPixel(x, y, RGB(mix(c.R, d.R), mix(c.G, d.G), mix(c.B, d.B)))
}
