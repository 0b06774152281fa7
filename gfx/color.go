package gfx

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Hex builds an opaque color from 0xRRGGBB.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// Hex returns the color as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// String formats the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Hex())
}

// ParseHex parses "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseHex(s string) (Color, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "#")
	t = strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
	if len(t) != 6 {
		return Color{}, fmt.Errorf("parse color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Scale multiplies the RGB channels by s, clamped to [0, 1].
func (c Color) Scale(s float32) Color {
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	mul := func(ch uint8) uint8 {
		return uint8(float32(ch)*s + 0.5)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

// rgbf is a linear color accumulator used while shading.
type rgbf struct {
	r, g, b float32
}

func toRGBF(c Color) rgbf {
	const inv = 1.0 / 255
	return rgbf{float32(c.R) * inv, float32(c.G) * inv, float32(c.B) * inv}
}

func (a rgbf) add(b rgbf) rgbf      { return rgbf{a.r + b.r, a.g + b.g, a.b + b.b} }
func (a rgbf) mul(b rgbf) rgbf      { return rgbf{a.r * b.r, a.g * b.g, a.b * b.b} }
func (a rgbf) scale(s float32) rgbf { return rgbf{a.r * s, a.g * s, a.b * s} }

func (a rgbf) toColor(alpha uint8) Color {
	return Color{R: unit8(a.r), G: unit8(a.g), B: unit8(a.b), A: alpha}
}

func unit8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
