package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the file must stay quiet before it is reloaded, so an
// editor's burst of writes yields one reload.
const settle = 50 * time.Millisecond

// Watch reloads path whenever it is written, created or renamed into place
// and passes the result to fn: the new Params, or the defaults and the load
// error. fn runs on the watcher goroutine, which exits when ctx is done.
//
// The file's directory is watched rather than the file, so atomic saves that
// replace the file keep being seen.
func Watch(ctx context.Context, path string, fn func(Params, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer w.Close()
		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					pending = time.After(settle)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				fn(Default(), fmt.Errorf("config: watch: %w", err))
			case <-pending:
				pending = nil
				p, err := Load(abs)
				if ctx.Err() != nil {
					return
				}
				fn(p, err)
			}
		}
	}()
	return nil
}
