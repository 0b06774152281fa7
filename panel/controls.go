package panel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chewxy/math32"

	"cubedrop/gfx"
)

// Number edits a float32 within [min, max].
type Number struct {
	name     string
	v        *float32
	min, max float32
	step     float32
	onChange func(float32)
}

// Number adds a numeric control. The default step is a hundredth of the
// range.
func (f *Folder) Number(label string, v *float32, min, max float32) *Number {
	if max < min {
		min, max = max, min
	}
	n := &Number{name: label, v: v, min: min, max: max, step: (max - min) / 100}
	if n.step <= 0 {
		n.step = 1
	}
	f.add(n)
	return n
}

// Step sets the increment used by Left/Right and the wheel.
func (n *Number) Step(s float32) *Number {
	if s > 0 {
		n.step = s
	}
	return n
}

// Name sets the displayed label.
func (n *Number) Name(s string) *Number {
	n.name = s
	return n
}

// OnChange sets a callback invoked after every effective change.
func (n *Number) OnChange(fn func(float32)) *Number {
	n.onChange = fn
	return n
}

func (n *Number) Get() float32 { return *n.v }

// Set stores v clamped to the range and reports whether the value changed.
func (n *Number) Set(v float32) bool {
	if math32.IsNaN(v) {
		return false
	}
	v = min(max(v, n.min), n.max)
	if *n.v == v {
		return false
	}
	*n.v = v
	if n.onChange != nil {
		n.onChange(v)
	}
	return true
}

func (n *Number) label() string { return n.name }

func (n *Number) value() string {
	return strconv.FormatFloat(float64(*n.v), 'f', n.decimals(), 32)
}

// decimals is the precision implied by the step.
func (n *Number) decimals() int {
	d := int(math.Ceil(-math.Log10(float64(n.step)) - 1e-4))
	return min(max(d, 0), 4)
}

func (n *Number) adjust(steps int, fine bool) bool {
	s := n.step
	if fine {
		s /= 10
	}
	return n.Set(*n.v + float32(steps)*s)
}

func (n *Number) activate(*Panel) bool { return false }

// fraction is the value position in [0, 1].
func (n *Number) fraction() float32 {
	if n.max == n.min {
		return 0
	}
	return (*n.v - n.min) / (n.max - n.min)
}

// setFraction sets the value from a slider position, snapped to the step.
func (n *Number) setFraction(f float32) bool {
	f = min(max(f, 0), 1)
	v := n.min + f*(n.max-n.min)
	v = n.min + float32(math.Round(float64((v-n.min)/n.step)))*n.step
	return n.Set(v)
}

// Bool edits a bool.
type Bool struct {
	name     string
	v        *bool
	onChange func(bool)
}

func (f *Folder) Bool(label string, v *bool) *Bool {
	b := &Bool{name: label, v: v}
	f.add(b)
	return b
}

func (b *Bool) Name(s string) *Bool {
	b.name = s
	return b
}

func (b *Bool) OnChange(fn func(bool)) *Bool {
	b.onChange = fn
	return b
}

func (b *Bool) Get() bool { return *b.v }

func (b *Bool) Set(v bool) bool {
	if *b.v == v {
		return false
	}
	*b.v = v
	if b.onChange != nil {
		b.onChange(v)
	}
	return true
}

func (b *Bool) label() string { return b.name }

func (b *Bool) value() string {
	if *b.v {
		return "[x]"
	}
	return "[ ]"
}

func (b *Bool) adjust(steps int, _ bool) bool {
	if steps == 0 {
		return false
	}
	return b.Set(steps > 0)
}

func (b *Bool) activate(*Panel) bool { return b.Set(!*b.v) }

// ColorControl edits a color through its R, G and B channels.
type ColorControl struct {
	name     string
	v        *gfx.Color
	onChange func(gfx.Color)
}

// Color adds a color control. Enter switches to channel edit mode, where
// Up/Down pick the channel and Left/Right change it.
func (f *Folder) Color(label string, v *gfx.Color) *ColorControl {
	c := &ColorControl{name: label, v: v}
	f.add(c)
	return c
}

func (c *ColorControl) Name(s string) *ColorControl {
	c.name = s
	return c
}

func (c *ColorControl) OnChange(fn func(gfx.Color)) *ColorControl {
	c.onChange = fn
	return c
}

func (c *ColorControl) Get() gfx.Color { return *c.v }

func (c *ColorControl) Set(v gfx.Color) bool {
	v.A = 0xFF
	if *c.v == v {
		return false
	}
	*c.v = v
	if c.onChange != nil {
		c.onChange(v)
	}
	return true
}

// SetHex sets the color from 0xRRGGBB.
func (c *ColorControl) SetHex(v uint32) bool { return c.Set(gfx.Hex(v)) }

func (c *ColorControl) label() string { return c.name }

func (c *ColorControl) value() string { return c.v.String() }

func (c *ColorControl) channelValue(ch int) string {
	names := [3]string{"R", "G", "B"}
	vals := [3]uint8{c.v.R, c.v.G, c.v.B}
	return fmt.Sprintf("%s:%02x", names[ch], vals[ch])
}

// adjustChannel moves channel ch by steps (16 per step, 1 when fine).
func (c *ColorControl) adjustChannel(ch, steps int, fine bool) bool {
	v := *c.v
	shiftChannel(&v, ch, steps, fine)
	return c.Set(v)
}

// adjust outside channel edit brightens or darkens all channels together.
func (c *ColorControl) adjust(steps int, fine bool) bool {
	v := *c.v
	for ch := 0; ch < 3; ch++ {
		shiftChannel(&v, ch, steps, fine)
	}
	return c.Set(v)
}

func shiftChannel(v *gfx.Color, ch, steps int, fine bool) {
	d := 16
	if fine {
		d = 1
	}
	chans := [3]*uint8{&v.R, &v.G, &v.B}
	p := chans[ch]
	*p = uint8(min(max(int(*p)+steps*d, 0), 0xFF))
}

func (c *ColorControl) activate(p *Panel) bool {
	p.editing = c
	p.channel = 0
	return false
}
