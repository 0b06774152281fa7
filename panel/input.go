package panel

import "cubedrop/hal"

// HandleKey applies a key event and reports whether the panel consumed it.
func (p *Panel) HandleKey(ev hal.KeyEvent) bool {
	if !ev.Press || ev.Rune != 0 {
		return false
	}
	if ev.Code == hal.KeyTab {
		p.Hidden = !p.Hidden
		p.editing = nil
		p.dragging = nil
		return true
	}
	if p.Hidden || p.Closed {
		return false
	}
	fine := ev.Mod&hal.ModShift != 0

	if c := p.editing; c != nil {
		switch ev.Code {
		case hal.KeyUp:
			p.channel = (p.channel + 2) % 3
		case hal.KeyDown:
			p.channel = (p.channel + 1) % 3
		case hal.KeyLeft:
			c.adjustChannel(p.channel, -1, fine)
		case hal.KeyRight:
			c.adjustChannel(p.channel, 1, fine)
		case hal.KeyEnter, hal.KeyEscape:
			p.editing = nil
		default:
			return false
		}
		return true
	}

	switch ev.Code {
	case hal.KeyUp:
		p.moveSel(-1)
	case hal.KeyDown:
		p.moveSel(1)
	case hal.KeyHome:
		p.sel = 0
	case hal.KeyEnd:
		p.moveSel(len(p.rows))
	case hal.KeyLeft, hal.KeyRight:
		steps := 1
		if ev.Code == hal.KeyLeft {
			steps = -1
		}
		r, ok := p.selected()
		if !ok {
			return false
		}
		if r.c == nil {
			r.f.SetOpen(steps > 0)
			return true
		}
		r.c.adjust(steps, fine)
	case hal.KeyEnter:
		r, ok := p.selected()
		if !ok {
			return false
		}
		if r.c == nil {
			r.f.SetOpen(!r.f.Open)
			return true
		}
		r.c.activate(p)
	default:
		return false
	}
	return true
}

// HandlePointer applies a pointer event and reports whether it hit the panel.
// Coordinates are those of the target passed to the last Draw.
func (p *Panel) HandlePointer(ev hal.PointerEvent) bool {
	if p.Hidden {
		p.dragging = nil
		return false
	}
	l := p.layout

	switch ev.Kind {
	case hal.PointerRelease:
		if p.dragging != nil {
			p.dragging = nil
			return true
		}
		return l.contains(ev.X, ev.Y)

	case hal.PointerMove:
		if n := p.dragging; n != nil {
			if ev.Held != hal.ButtonLeft {
				p.dragging = nil
				return true
			}
			n.setFraction(l.sliderFraction(ev.X))
			return true
		}
		return l.contains(ev.X, ev.Y)

	case hal.PointerPress:
		if !l.contains(ev.X, ev.Y) {
			return false
		}
		if ev.Y < l.y+l.lh {
			p.SetClosed(!p.Closed)
			return true
		}
		i, ok := l.rowAt(ev.Y, p.top, len(p.rows))
		if !ok || ev.Button != hal.ButtonLeft {
			return true
		}
		p.sel = i
		if p.editing != p.rows[i].c {
			p.editing = nil
		}
		r := p.rows[i]
		switch c := r.c.(type) {
		case nil:
			r.f.SetOpen(!r.f.Open)
		case *Number:
			if ev.X >= l.valueX {
				p.dragging = c
				c.setFraction(l.sliderFraction(ev.X))
			}
		default:
			c.activate(p)
		}
		return true

	case hal.PointerWheel:
		if !l.contains(ev.X, ev.Y) {
			return false
		}
		i, ok := l.rowAt(ev.Y, p.top, len(p.rows))
		if !ok || p.rows[i].c == nil || ev.Wheel == 0 {
			return true
		}
		p.sel = i
		steps := 1
		if ev.Wheel < 0 {
			steps = -1
		}
		p.rows[i].c.adjust(steps, ev.Mod&hal.ModShift != 0)
		return true
	}
	return false
}
