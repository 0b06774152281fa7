package app

import (
	"cubedrop/config"
	"cubedrop/hal"
)

// handleInput drains pending key and pointer events. The panel sees every
// event first; what it does not consume drives the shortcuts and the orbit
// controls.
func (a *App) handleInput() error {
	for {
		select {
		case ev, ok := <-a.keys:
			if !ok {
				a.keys = nil
				continue
			}
			if a.panel.HandleKey(ev) {
				continue
			}
			if err := a.handleKey(ev); err != nil {
				return err
			}
			continue
		case ev, ok := <-a.ptr:
			if !ok {
				a.ptr = nil
				continue
			}
			if a.panel.HandlePointer(ev) {
				continue
			}
			a.handlePointer(ev)
			continue
		default:
		}
		return nil
	}
}

func (a *App) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	if ev.Code == hal.KeyEscape {
		return hal.ErrQuit
	}
	switch ev.Rune {
	case 'r', 'R':
		a.params = a.base
		a.resetBodies()
		a.setStatus("reset")
	case 'p', 'P':
		a.paused = !a.paused
		if a.paused {
			a.setStatus("paused")
		} else {
			a.setStatus("running")
		}
	case 's', 'S':
		a.save()
	case 'h', 'H':
		a.showHelpers = !a.showHelpers
		a.applyParams()
	case 'f', 'F':
		a.showStats = !a.showStats
	}
	return nil
}

func (a *App) save() {
	if a.cfg.ParamsPath == "" {
		a.setStatus("save: no config file (-config)")
		return
	}
	a.capture()
	if err := config.Save(a.cfg.ParamsPath, a.params); err != nil {
		a.setStatus(err.Error())
		return
	}
	a.base = a.params
	a.setStatus("saved " + a.cfg.ParamsPath)
}

func (a *App) handlePointer(ev hal.PointerEvent) {
	h := 1
	if a.fb != nil {
		h = a.fb.Height()
	}
	switch ev.Kind {
	case hal.PointerMove:
		switch ev.Held {
		case hal.ButtonLeft:
			a.controls.Rotate(float32(ev.DX), float32(ev.DY), h)
		case hal.ButtonRight, hal.ButtonMiddle:
			a.controls.Pan(float32(ev.DX), float32(ev.DY), h)
		}
	case hal.PointerWheel:
		a.controls.Zoom(ev.Wheel)
	}
}

// onReload runs on the watcher goroutine. Only the newest params are kept.
func (a *App) onReload(p config.Params, err error) {
	if err != nil {
		a.logf("app: reload: %v", err)
		return
	}
	for {
		select {
		case a.reload <- p:
			return
		default:
		}
		select {
		case <-a.reload:
		default:
		}
	}
}

func (a *App) applyReload() {
	select {
	case p := <-a.reload:
		if p == a.base {
			// Our own save, or a write that changed nothing.
			return
		}
		a.base = p
		a.params = p
		a.resetBodies()
		a.setStatus("reloaded " + a.cfg.ParamsPath)
	default:
	}
}
