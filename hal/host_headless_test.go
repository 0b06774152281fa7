package hal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var steps int
	var got HAL
	err := RunHeadless(context.Background(), Options{Width: 8, Height: 4}, func(h HAL) (StepFunc, error) {
		got = h
		return func() error {
			steps++
			return nil
		}, nil
	}, HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 5, Fast: true})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("expected 5 steps, got %d", steps)
	}
	fb := got.Display().Framebuffer()
	if fb.Width() != 8 || fb.Height() != 4 {
		t.Fatalf("expected 8x4 framebuffer, got %dx%d", fb.Width(), fb.Height())
	}
}

func TestRunHeadlessQuitIsClean(t *testing.T) {
	var steps int
	err := RunHeadless(context.Background(), Options{}, func(HAL) (StepFunc, error) {
		return func() error {
			steps++
			if steps == 3 {
				return ErrQuit
			}
			return nil
		}, nil
	}, HeadlessConfig{Fast: true})
	if err != nil {
		t.Fatalf("expected nil on ErrQuit, got %v", err)
	}
	if steps != 3 {
		t.Fatalf("expected 3 steps, got %d", steps)
	}
}

func TestRunHeadlessPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), Options{}, func(HAL) (StepFunc, error) {
		return func() error { return boom }, nil
	}, HeadlessConfig{Fast: true})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	err = RunHeadless(context.Background(), Options{}, func(HAL) (StepFunc, error) {
		return nil, boom
	}, HeadlessConfig{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected init error to wrap boom, got %v", err)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, Options{}, func(HAL) (StepFunc, error) {
		return func() error { return nil }, nil
	}, HeadlessConfig{Hz: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
