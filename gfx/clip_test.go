package gfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestClipNear(t *testing.T) {
	in := []mgl32.Vec4{{0, 0, 0, 1}, {1, 0, 0, 1}, {0, 1, 0, 1}}
	if got := clipNear(in, nil); len(got) != 3 {
		t.Fatalf("expected inside triangle kept, got %d vertices", len(got))
	}

	out := []mgl32.Vec4{{0, 0, -2, 1}, {1, 0, -2, 1}, {0, 1, -2, 1}}
	if got := clipNear(out, nil); len(got) != 0 {
		t.Fatalf("expected triangle behind near plane dropped, got %d", len(got))
	}

	// One vertex behind: the triangle becomes a quad.
	mixed := []mgl32.Vec4{{0, 0, -3, 1}, {1, 0, 0, 1}, {0, 1, 0, 1}}
	got := clipNear(mixed, nil)
	if len(got) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(got))
	}
	for _, v := range got {
		if v.Z()+v.W() < -1e-6 {
			t.Fatalf("vertex %v outside near plane", v)
		}
	}
}

func TestClipSegmentNear(t *testing.T) {
	a := mgl32.Vec4{0, 0, -3, 1}
	b := mgl32.Vec4{0, 0, 1, 1}
	ca, cb, ok := clipSegmentNear(a, b)
	if !ok {
		t.Fatalf("expected segment kept")
	}
	if d := ca.Z() + ca.W(); d < -1e-6 || d > 1e-6 {
		t.Fatalf("expected clipped end on near plane, got %v", ca)
	}
	if cb != b {
		t.Fatalf("expected inside end unchanged, got %v", cb)
	}
	if _, _, ok := clipSegmentNear(a, a); ok {
		t.Fatalf("expected segment behind near plane dropped")
	}
}

func TestClipSegmentRect(t *testing.T) {
	t0, t1, ok := clipSegmentRect(-10, 5, 20, 5, 0, 0, 10, 10)
	if !ok {
		t.Fatalf("expected crossing segment kept")
	}
	if !mgl32.FloatEqual(t0, 1.0/3) || !mgl32.FloatEqual(t1, 2.0/3) {
		t.Fatalf("expected [1/3, 2/3], got [%v, %v]", t0, t1)
	}
	if _, _, ok := clipSegmentRect(-10, -5, 20, -5, 0, 0, 10, 10); ok {
		t.Fatalf("expected segment above rect dropped")
	}
	t0, t1, ok = clipSegmentRect(2, 2, 3, 3, 0, 0, 10, 10)
	if !ok || t0 != 0 || t1 != 1 {
		t.Fatalf("expected inside segment untouched, got [%v, %v] %v", t0, t1, ok)
	}
}
