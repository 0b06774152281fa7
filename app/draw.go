package app

import (
	"cubedrop/fonts/font6x8"
	"cubedrop/gfx"
)

const helpLine = "r reset  p pause  s save  tab panel  h helpers  f fps"

var (
	hudText = gfx.Hex(0xD6D6D6)
	hudBg   = gfx.RGBA(0x00, 0x00, 0x00, 0xA0)
)

// target wraps the framebuffer for this frame; the buffer changes on resize.
func (a *App) target() gfx.Target {
	if a.fb == nil {
		return nil
	}
	return &gfx.RGBATarget{
		Buf:    a.fb.Buffer(),
		Stride: a.fb.StrideBytes(),
		W:      a.fb.Width(),
		H:      a.fb.Height(),
	}
}

func (a *App) draw() {
	t := a.target()
	if t == nil {
		return
	}
	a.renderer.Render(t, a.scene)

	if a.showStats {
		a.stats.Draw(t, 0, 0)
	}
	a.panel.Draw(t)

	_, h := t.Size()
	lh := int(font6x8.Font.GetYAdvance()) + 2
	y := h - lh
	line := helpLine
	if a.now < a.statusUntil && a.status != "" {
		line = a.status
	} else if a.paused {
		line = "paused  " + helpLine
	}
	gfx.FillRect(t, 0, y, gfx.TextWidth(font6x8.Font, line)+4, lh, hudBg)
	gfx.Text(t, font6x8.Font, 2, y+1, line, hudText)
}
