package hal

import (
	"testing"
	"time"
)

func TestHostTimeStepFromClock(t *testing.T) {
	now := time.Unix(0, 0)
	ht := newHostTime()
	ht.now = func() time.Time { return now }

	ht.step()
	if ht.seq != 1 {
		t.Fatalf("expected first step to emit 1 tick, got %d", ht.seq)
	}

	now = now.Add(16*time.Millisecond + 500*time.Microsecond)
	ht.step()
	if ht.seq != 17 {
		t.Fatalf("expected 17 ticks, got %d", ht.seq)
	}

	now = now.Add(600 * time.Microsecond)
	ht.step()
	if ht.seq != 18 {
		t.Fatalf("expected carried remainder to emit 1 tick, got %d", ht.seq)
	}
}

func TestHostTimeDropsWhenFull(t *testing.T) {
	ht := newHostTime()
	ht.advance(2000)
	if ht.seq != 2000 {
		t.Fatalf("expected seq 2000, got %d", ht.seq)
	}
	if got := len(ht.ch); got != cap(ht.ch) {
		t.Fatalf("expected full channel, got %d", got)
	}
}
