package gfx

import "testing"

func TestParseHex(t *testing.T) {
	for _, s := range []string{"#9c9c9c", "9c9c9c", "0x9C9C9C", " #9c9c9c "} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if c != RGB(0x9c, 0x9c, 0x9c) {
			t.Fatalf("parse %q: got %v", s, c)
		}
	}
	for _, s := range []string{"", "#fff", "#zzzzzz", "#1234567"} {
		if _, err := ParseHex(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestColorText(t *testing.T) {
	c := Hex(0x12ab3f)
	b, err := c.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "#12ab3f" {
		t.Fatalf("expected #12ab3f, got %s", b)
	}
	var got Color
	if err := got.UnmarshalText(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != c {
		t.Fatalf("expected %v, got %v", c, got)
	}
	if err := got.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestColorScale(t *testing.T) {
	c := RGB(200, 100, 0)
	if got := c.Scale(0.5); got != RGB(100, 50, 0) {
		t.Fatalf("expected half, got %v", got)
	}
	if got := c.Scale(2); got != c {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
	if got := c.Scale(-1); got != RGB(0, 0, 0) {
		t.Fatalf("expected black, got %v", got)
	}
}

func TestBlend(t *testing.T) {
	tgt := NewRGBATarget(1, 1)
	tgt.Clear(RGB(0, 0, 0))
	Blend(tgt, 0, 0, RGBA(0xFF, 0xFF, 0xFF, 0x80))
	if got := tgt.Pixel(0, 0); got.R != 0x80 {
		t.Fatalf("expected 0x80, got %#x", got.R)
	}
	Blend(tgt, 0, 0, RGBA(0xFF, 0, 0, 0))
	if got := tgt.Pixel(0, 0); got.R != 0x80 {
		t.Fatalf("expected transparent blend to be a no-op, got %#x", got.R)
	}
}
