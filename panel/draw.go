package panel

import "cubedrop/gfx"

var (
	colBg       = gfx.RGBA(0x1f, 0x1f, 0x1f, 0xE8)
	colTitle    = gfx.Hex(0x000000)
	colTitleTxt = gfx.Hex(0xEBEBEB)
	colFolder   = gfx.Hex(0x2C2C2C)
	colSel      = gfx.Hex(0x1A2D44)
	colText     = gfx.Hex(0xD6D6D6)
	colDim      = gfx.Hex(0x888888)
	colNumber   = gfx.Hex(0x2CC9FF)
	colBool     = gfx.Hex(0xC8E06B)
	colSlider   = gfx.Hex(0x424242)
	colEdit     = gfx.Hex(0xFFD14A)
)

// layout is where the last Draw put things, for pointer hit tests.
type layout struct {
	x, y, w, h int
	lh         int
	rowsY      int
	rows       int
	valueX     int
	valueW     int
}

func (l layout) contains(x, y int) bool {
	return l.w > 0 && x >= l.x && x < l.x+l.w && y >= l.y && y < l.y+l.h
}

func (l layout) rowAt(y, top, n int) (int, bool) {
	if l.lh <= 0 || y < l.rowsY {
		return 0, false
	}
	i := top + (y-l.rowsY)/l.lh
	if i < top || i >= top+l.rows || i >= n {
		return 0, false
	}
	return i, true
}

func (l layout) sliderFraction(x int) float32 {
	if l.valueW <= 1 {
		return 0
	}
	return float32(x-l.valueX) / float32(l.valueW-1)
}

// ensureSelectionVisible scrolls so the selected row fits in rows lines.
func (p *Panel) ensureSelectionVisible(rows int) {
	if rows < 1 {
		rows = 1
	}
	if p.sel < p.top {
		p.top = p.sel
	}
	if p.sel >= p.top+rows {
		p.top = p.sel - rows + 1
	}
	if last := len(p.rows) - rows; p.top > last {
		p.top = last
	}
	if p.top < 0 {
		p.top = 0
	}
}

// Draw renders the panel at the top right of t.
func (p *Panel) Draw(t gfx.Target) {
	if p.Hidden || t == nil {
		p.layout = layout{}
		return
	}
	tw, th := t.Size()
	w := min(p.Width, tw)
	if w <= 0 || th <= 0 {
		p.layout = layout{}
		return
	}
	fh := int(p.font.GetYAdvance())
	lh := fh + 4
	maxRows := (th - lh) / lh
	if maxRows < 0 {
		maxRows = 0
	}
	rows := min(len(p.rows), maxRows)
	p.ensureSelectionVisible(maxRows)

	l := layout{
		x:      tw - w,
		y:      0,
		w:      w,
		h:      lh * (rows + 1),
		lh:     lh,
		rowsY:  lh,
		rows:   rows,
		valueX: tw - w + w*5/9,
	}
	l.valueW = l.x + l.w - 3 - l.valueX
	p.layout = l

	gfx.FillRect(t, l.x, l.y, l.w, l.h, colBg)
	gfx.FillRect(t, l.x, l.y, l.w, lh, colTitle)
	mark := "v "
	if p.Closed {
		mark = "> "
	}
	gfx.Text(t, p.font, l.x+3, l.y+2, mark+p.Title, colTitleTxt)

	for i := 0; i < rows; i++ {
		idx := p.top + i
		r := p.rows[idx]
		y := l.rowsY + i*lh
		selected := idx == p.sel

		if r.c == nil {
			gfx.FillRect(t, l.x, y, l.w, lh-1, colFolder)
			if selected {
				gfx.FillRect(t, l.x, y, l.w, lh-1, colSel)
			}
			mark := "v "
			if !r.f.Open {
				mark = "> "
			}
			gfx.Text(t, p.font, l.x+3, y+2, mark+r.f.Name, colText)
			continue
		}

		if selected {
			gfx.FillRect(t, l.x, y, l.w, lh-1, colSel)
		}
		labelW := l.valueX - l.x - 10
		gfx.Text(t, p.font, l.x+9, y+2, truncateToWidth(p, r.c.label(), labelW), colDim)
		p.drawValue(t, r.c, l, y)
	}
}

func (p *Panel) drawValue(t gfx.Target, c control, l layout, y int) {
	switch c := c.(type) {
	case *Number:
		gfx.FillRect(t, l.valueX, y+1, l.valueW, l.lh-3, colSlider)
		fill := int(c.fraction() * float32(l.valueW))
		gfx.FillRect(t, l.valueX, y+1, fill, l.lh-3, colNumber.WithAlpha(0x60))
		gfx.Text(t, p.font, l.valueX+2, y+2, truncateToWidth(p, c.value(), l.valueW-2), colNumber)
	case *Bool:
		gfx.Text(t, p.font, l.valueX, y+2, c.value(), colBool)
	case *ColorControl:
		sw := l.lh - 3
		gfx.FillRect(t, l.valueX, y+1, sw, sw, *c.v)
		txt := c.value()
		col := colText
		if p.editing == c {
			txt = c.channelValue(p.channel)
			col = colEdit
		}
		gfx.Text(t, p.font, l.valueX+sw+3, y+2, txt, col)
	default:
		gfx.Text(t, p.font, l.valueX, y+2, c.value(), colText)
	}
}

func truncateToWidth(p *Panel, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if gfx.TextWidth(p.font, s) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		if gfx.TextWidth(p.font, string(r)+"~") <= maxW {
			return string(r) + "~"
		}
	}
	return ""
}
