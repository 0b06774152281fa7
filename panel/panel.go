// Package panel implements a small parameter panel: named folders of
// number, bool and color controls bound to live variables, driven by the
// keyboard and pointer and drawn over the rendered frame.
package panel

import (
	"tinygo.org/x/tinyfont"

	"cubedrop/fonts/font6x8"
)

const defaultWidth = 168

// Panel is a list of folders. Controls edit the variables they are bound to
// directly, so values changed elsewhere show up on the next Draw.
type Panel struct {
	Title string

	// Hidden panels draw nothing and ignore input except Tab.
	Hidden bool
	// Closed panels show only their title bar.
	Closed bool

	Width int

	font    tinyfont.Fonter
	folders []*Folder

	rows []row
	sel  int
	top  int

	editing *ColorControl
	channel int

	dragging *Number

	layout layout
}

// Folder groups controls under a collapsible header.
type Folder struct {
	Name string
	Open bool

	p        *Panel
	controls []control
}

type row struct {
	f *Folder
	c control // nil for the folder header
}

type control interface {
	label() string
	value() string
	// adjust moves the value by steps increments and reports whether it
	// changed.
	adjust(steps int, fine bool) bool
	// activate handles Enter.
	activate(p *Panel) bool
}

// New returns an empty, visible panel.
func New(title string) *Panel {
	return &Panel{Title: title, Width: defaultWidth, font: font6x8.Font}
}

// SetFont replaces the font used by Draw.
func (p *Panel) SetFont(f tinyfont.Fonter) {
	if f != nil {
		p.font = f
	}
}

// AddFolder appends an open folder.
func (p *Panel) AddFolder(name string) *Folder {
	f := &Folder{Name: name, Open: true, p: p}
	p.folders = append(p.folders, f)
	p.rebuild()
	return f
}

// Folders returns the folders in insertion order.
func (p *Panel) Folders() []*Folder { return p.folders }

func (f *Folder) add(c control) {
	f.controls = append(f.controls, c)
	f.p.rebuild()
}

// SetOpen opens or collapses the folder.
func (f *Folder) SetOpen(open bool) {
	if f.Open == open {
		return
	}
	f.Open = open
	f.p.rebuild()
}

// rebuild recomputes the visible rows, keeping the selection on the same
// row when it is still visible, else on its folder header.
func (p *Panel) rebuild() {
	var cur row
	if p.sel >= 0 && p.sel < len(p.rows) {
		cur = p.rows[p.sel]
	}
	p.rows = p.rows[:0]
	if !p.Closed {
		for _, f := range p.folders {
			p.rows = append(p.rows, row{f: f})
			if !f.Open {
				continue
			}
			for _, c := range f.controls {
				p.rows = append(p.rows, row{f: f, c: c})
			}
		}
	}

	p.sel = 0
	for i, r := range p.rows {
		if r == cur {
			p.sel = i
			return
		}
	}
	for i, r := range p.rows {
		if r.f == cur.f && r.c == nil {
			p.sel = i
			return
		}
	}
}

// Selected returns the label of the selected row, or the folder name for a
// header.
func (p *Panel) Selected() string {
	if p.sel < 0 || p.sel >= len(p.rows) {
		return ""
	}
	r := p.rows[p.sel]
	if r.c == nil {
		return r.f.Name
	}
	return r.c.label()
}

// Rows is the number of visible rows.
func (p *Panel) Rows() int { return len(p.rows) }

func (p *Panel) moveSel(delta int) {
	if len(p.rows) == 0 {
		return
	}
	p.sel += delta
	if p.sel < 0 {
		p.sel = 0
	}
	if p.sel >= len(p.rows) {
		p.sel = len(p.rows) - 1
	}
}

func (p *Panel) selected() (row, bool) {
	if p.sel < 0 || p.sel >= len(p.rows) {
		return row{}, false
	}
	return p.rows[p.sel], true
}

// SetClosed shows or hides everything but the title bar.
func (p *Panel) SetClosed(closed bool) {
	p.Closed = closed
	p.editing = nil
	p.rebuild()
}

// Editing reports whether a color control is in channel edit mode.
func (p *Panel) Editing() bool { return p.editing != nil }
