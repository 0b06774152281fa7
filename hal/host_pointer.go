//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostPointer struct {
	ch chan PointerEvent

	init  bool
	lastX int
	lastY int
	held  PointerButton
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

var buttonMap = [...]struct {
	btn ebiten.MouseButton
	id  PointerButton
}{
	{ebiten.MouseButtonLeft, ButtonLeft},
	{ebiten.MouseButtonRight, ButtonRight},
	{ebiten.MouseButtonMiddle, ButtonMiddle},
}

// poll reads the cursor in layout coordinates. ebiten already maps the cursor
// through Layout, so no scaling is applied here.
func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	mod := currentMods()
	if !p.init {
		p.init = true
		p.lastX, p.lastY = x, y
	}

	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b.btn) {
			p.held = b.id
			p.emit(PointerEvent{Kind: PointerPress, X: x, Y: y, Button: b.id, Held: p.held, Mod: mod})
		}
		if inpututil.IsMouseButtonJustReleased(b.btn) {
			if p.held == b.id {
				p.held = ButtonNone
			}
			p.emit(PointerEvent{Kind: PointerRelease, X: x, Y: y, Button: b.id, Held: p.held, Mod: mod})
		}
	}

	if dx, dy := x-p.lastX, y-p.lastY; dx != 0 || dy != 0 {
		p.emit(PointerEvent{Kind: PointerMove, X: x, Y: y, DX: dx, DY: dy, Held: p.held, Mod: mod})
	}
	p.lastX, p.lastY = x, y

	if _, wy := ebiten.Wheel(); wy != 0 {
		p.emit(PointerEvent{Kind: PointerWheel, X: x, Y: y, Wheel: float32(wy), Held: p.held, Mod: mod})
	}
}
