//go:build cgo

package hal

import (
	"errors"
	"fmt"

	"cubedrop/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard and mouse input. It blocks until the window closes or the step
// returns ErrQuit.
func RunWindow(opts Options, newApp NewAppFunc) error {
	h := newHost(opts)
	step, err := newApp(h)
	if err != nil {
		return fmt.Errorf("window: init app: %w", err)
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(h.opts.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*h.opts.Scale, h.fb.height*h.opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	step    StepFunc

	shown uint64 // presentCount at the last upload
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

// Draw uploads the framebuffer only when the app presented a new frame or
// the size changed.
func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	n := fb.presentCount()
	stale := g.fbImg == nil || n != g.shown ||
		g.fbImg.Bounds().Dx() != fb.Width() || g.fbImg.Bounds().Dy() != fb.Height()
	if stale {
		var w, h int
		g.scratch, w, h = fb.snapshot(g.scratch)
		if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
			if g.fbImg != nil {
				g.fbImg.Deallocate()
			}
			g.fbImg = ebiten.NewImage(w, h)
		}
		g.fbImg.WritePixels(g.scratch)
		g.shown = n
	}
	screen.DrawImage(g.fbImg, nil)
}

// Layout keeps the framebuffer at the window size divided by the pixel scale,
// so the scene re-projects on resize.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.h.opts.Scale
	w, h := outsideWidth/s, outsideHeight/s
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g.h.fb.Resize(w, h)
	return w, h
}
