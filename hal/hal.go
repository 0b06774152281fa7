package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrQuit is returned by a step function to end the run without an error.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// BytesPerPixel returns the pixel size for a format, or 0 if unknown.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGBA8888:
		return 4
	default:
		return 0
	}
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Buffer returns the live backing slice; it is replaced on Resize, so callers
// must not hold it across frames.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Resize(width, height int)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyHome
	KeyEnd
)

// KeyMod is a bit set of held modifier keys.
type KeyMod uint8

const (
	ModShift KeyMod = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is a keyboard event.
//
// Either Code or Rune is set. Rune events are text input and only come as
// presses.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
	Mod   KeyMod
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerKind classifies a pointer event.
type PointerKind uint8

const (
	PointerMove PointerKind = iota + 1
	PointerPress
	PointerRelease
	PointerWheel
)

// PointerButton identifies a mouse button.
type PointerButton uint8

const (
	ButtonNone PointerButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// PointerEvent is a mouse event in framebuffer coordinates.
//
// DX/DY are the motion since the previous event. Wheel is positive when
// scrolling up (zoom in).
type PointerEvent struct {
	Kind   PointerKind
	X, Y   int
	DX, DY int
	Button PointerButton
	Held   PointerButton
	Wheel  float32
	Mod    KeyMod
}

// Pointer provides mouse events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides a base tick stream.
//
// The host tick is one millisecond.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the demo and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
