package font6x8

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type recorder struct {
	px map[[2]int16]bool
}

func newRecorder() *recorder { return &recorder{px: map[[2]int16]bool{}} }

func (r *recorder) Size() (x, y int16) { return 64, 16 }

func (r *recorder) SetPixel(x, y int16, c color.RGBA) { r.px[[2]int16{x, y}] = true }

func (r *recorder) Display() error { return nil }

func TestGlyphTableCoversASCII(t *testing.T) {
	if got, want := len(glyphData), (last-first+1)*cols; got != want {
		t.Fatalf("expected %d bytes, got %d", want, got)
	}
}

func TestDrawStaysInCell(t *testing.T) {
	for r := rune(first); r <= last; r++ {
		rec := newRecorder()
		Font.GetGlyph(r).Draw(rec, 10, 7, color.RGBA{A: 0xFF})
		for p := range rec.px {
			if p[0] < 10 || p[0] >= 10+width || p[1] < 0 || p[1] > 7 {
				t.Fatalf("rune %q pixel %v outside its cell", r, p)
			}
		}
		if r != ' ' && len(rec.px) == 0 {
			t.Fatalf("rune %q draws nothing", r)
		}
	}
}

func TestUnknownRuneDrawsQuestionMark(t *testing.T) {
	want := newRecorder()
	Font.GetGlyph('?').Draw(want, 0, 7, color.RGBA{A: 0xFF})
	got := newRecorder()
	Font.GetGlyph('ж').Draw(got, 0, 7, color.RGBA{A: 0xFF})
	if len(got.px) != len(want.px) {
		t.Fatalf("expected %d pixels, got %d", len(want.px), len(got.px))
	}
	for p := range want.px {
		if !got.px[p] {
			t.Fatalf("missing pixel %v", p)
		}
	}
}

func TestLineWidth(t *testing.T) {
	_, w := tinyfont.LineWidth(Font, "abc")
	if w != 3*width {
		t.Fatalf("expected width %d, got %d", 3*width, w)
	}
	if Font.GetYAdvance() != height {
		t.Fatalf("expected y advance %d", height)
	}
}
