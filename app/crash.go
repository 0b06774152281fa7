package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cubedrop/fonts/font6x8"
	"cubedrop/gfx"
	"cubedrop/hal"
)

// crash logs a recovered frame panic with its stack and switches the app to
// the crash screen.
func (a *App) crash(v any, stack []byte) {
	a.crashed = true
	lines := []string{
		"cubedrop panic:",
		fmt.Sprintf("frame: %d", a.frame),
		fmt.Sprintf("panic: %v", v),
	}
	a.logf("app: panic in frame %d: %v", a.frame, v)
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			a.logf("%s", line)
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}
	lines = append(lines, "", "press Esc to quit")
	a.crashReport = lines
	a.drawCrash()
}

// crashStep keeps the report on screen until Escape.
func (a *App) crashStep() error {
	for {
		select {
		case ev, ok := <-a.keys:
			if !ok {
				a.keys = nil
				continue
			}
			if ev.Press && ev.Code == hal.KeyEscape {
				return hal.ErrQuit
			}
			continue
		case _, ok := <-a.ptr:
			if !ok {
				a.ptr = nil
			}
			continue
		default:
		}
		break
	}
	a.drawCrash()
	return nil
}

func (a *App) drawCrash() {
	t := a.target()
	if t == nil {
		return
	}
	t.Clear(gfx.Hex(0xFFFFFF))
	f := font6x8.Font
	fw := gfx.TextWidth(f, "0")
	fh := int(f.GetYAdvance())
	w, h := t.Size()
	cols := 1
	if fw > 0 && w/fw > 1 {
		cols = w / fw
	}

	fg := gfx.Hex(0x000000)
	y := 0
	for _, line := range a.crashReport {
		if line == "" {
			y += fh
			continue
		}
		for len(line) > 0 {
			if y+fh > h {
				_ = a.fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			gfx.Text(t, f, 0, y, chunk, fg)
			y += fh
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = a.fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
