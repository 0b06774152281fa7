package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	defaultWidth  = 480
	defaultHeight = 320
	defaultScale  = 2
)

// Options configures the host HAL.
type Options struct {
	// Width and Height are the framebuffer size in pixels.
	Width  int
	Height int

	// Scale is the window pixel scale. The window is Width*Scale by
	// Height*Scale and the framebuffer follows window resizes divided by Scale.
	Scale int

	Title string

	// Log receives log lines. Defaults to os.Stdout.
	Log io.Writer
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Scale <= 0 {
		o.Scale = defaultScale
	}
	if o.Title == "" {
		o.Title = "cubedrop"
	}
	if o.Log == nil {
		o.Log = os.Stdout
	}
	return o
}

type hostHAL struct {
	opts   Options
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
	t      *hostTime
}

// New returns a host HAL implementation.
func New(opts Options) HAL {
	return newHost(opts)
}

func newHost(opts Options) *hostHAL {
	opts = opts.withDefaults()
	return &hostHAL{
		opts:   opts,
		logger: &hostLogger{w: opts.Log},
		fb:     newHostFramebuffer(opts.Width, opts.Height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
