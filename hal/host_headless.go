package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64

	// Fast runs steps back to back without waiting for the ticker.
	Fast bool
}

// StepFunc is the per-frame callback returned by an app constructor.
type StepFunc func() error

// NewAppFunc builds the app against a HAL and returns its frame callback.
type NewAppFunc func(HAL) (StepFunc, error)

// RunHeadless runs the app without opening a window.
//
// It returns nil after cfg.Ticks frames or when the step returns ErrQuit,
// ctx.Err() on cancellation, or the first other error returned by the step.
func RunHeadless(ctx context.Context, opts Options, newApp NewAppFunc, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(opts)
	step, err := newApp(h)
	if err != nil {
		return fmt.Errorf("headless: init app: %w", err)
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	var tick uint64
	runFrame := func() (bool, error) {
		h.t.advance(uint64(d / time.Millisecond))
		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrQuit) {
					return true, nil
				}
				return false, err
			}
		}
		tick++
		return cfg.Ticks > 0 && tick >= cfg.Ticks, nil
	}

	if cfg.Fast {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			done, err := runFrame()
			if err != nil || done {
				return err
			}
		}
	}

	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			done, err := runFrame()
			if err != nil || done {
				return err
			}
		}
	}
}
