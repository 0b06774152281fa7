package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const dt = 1.0 / 60

func groundWorld(o WorldOptions) (*World, *Body) {
	w := NewWorld(o)
	ground := NewPlane()
	ground.SetQuaternion(mgl32.QuatRotate(-math32.Pi/2, mgl32.Vec3{1, 0, 0}))
	if err := w.AddBody(ground); err != nil {
		panic(err)
	}
	return w, ground
}

func lowestCorner(b *Body) float32 {
	cs := b.Shape.corners()
	low := b.toWorld(cs[0]).Y()
	for _, c := range cs[1:] {
		low = min(low, b.toWorld(c).Y())
	}
	return low
}

func TestPlaneNormalFacesUp(t *testing.T) {
	_, ground := groundWorld(WorldOptions{})
	n, _ := planeNormal(ground)
	if n.Sub(mgl32.Vec3{0, 1, 0}).Len() > 1e-5 {
		t.Fatalf("expected +Y normal, got %v", n)
	}
}

func TestBoxFallsAndRests(t *testing.T) {
	w, ground := groundWorld(WorldOptions{})
	box := NewBox(mgl32.Vec3{0.5, 0.5, 0.5}, 1)
	box.SetPosition(mgl32.Vec3{1, 3, 0})
	if err := w.AddBody(box); err != nil {
		t.Fatalf("add: %v", err)
	}

	w.Step(dt)
	if box.Position.Y() >= 3 || box.Velocity.Y() >= 0 {
		t.Fatalf("expected box to start falling, got y=%v vy=%v", box.Position.Y(), box.Velocity.Y())
	}

	for i := 0; i < 5*60; i++ {
		w.Step(dt)
		if low := lowestCorner(box); low < -0.05 {
			t.Fatalf("step %d: box sank to %v", i, low)
		}
	}
	if y := box.Position.Y(); y < 0.47 || y > 0.52 {
		t.Fatalf("expected box resting at y~0.5, got %v", y)
	}
	if v := box.Velocity.Len(); v > 0.2 {
		t.Fatalf("expected box at rest, speed %v", v)
	}
	if ground.Position != (mgl32.Vec3{}) || ground.Velocity != (mgl32.Vec3{}) {
		t.Fatalf("static plane moved: %v %v", ground.Position, ground.Velocity)
	}
	if got := w.StepCount(); got != 301 {
		t.Fatalf("expected 301 steps, got %d", got)
	}
}

func TestDroppedBoxStopsAtSurface(t *testing.T) {
	for _, h := range []float32{1, 3, 6, 10} {
		w, _ := groundWorld(WorldOptions{})
		box := NewBox(mgl32.Vec3{0.5, 0.5, 0.5}, 1)
		box.SetPosition(mgl32.Vec3{1, h, 0})
		w.AddBody(box)

		deepest := float32(0)
		for i := 0; i < 5*60; i++ {
			w.Step(dt)
			deepest = min(deepest, lowestCorner(box))
		}
		if deepest < -0.03 {
			t.Fatalf("drop from %v: box sank to %v", h, deepest)
		}
		if y := box.Position.Y(); y < 0.47 || y > 0.52 {
			t.Fatalf("drop from %v: expected box resting at y~0.5, got %v", h, y)
		}
	}
}

func TestTiltedBoxSettlesOnPlane(t *testing.T) {
	w, _ := groundWorld(WorldOptions{})
	box := NewBox(mgl32.Vec3{0.5, 0.5, 0.5}, 1)
	box.SetPosition(mgl32.Vec3{0, 2, 0})
	box.SetQuaternion(mgl32.AnglesToQuat(0.4, 0.3, 0.2, mgl32.XYZ))
	w.AddBody(box)

	for i := 0; i < 8*60; i++ {
		w.Step(dt)
		if l := box.Quaternion.Len(); !mgl32.FloatEqualThreshold(l, 1, 1e-4) {
			t.Fatalf("step %d: quaternion length %v", i, l)
		}
	}
	if low := lowestCorner(box); low < -0.03 || low > 0.03 {
		t.Fatalf("expected lowest corner on the plane, got %v", low)
	}
}

func TestFastBoxDoesNotTunnel(t *testing.T) {
	w, _ := groundWorld(WorldOptions{})
	box := NewBox(mgl32.Vec3{0.5, 0.5, 0.5}, 1)
	box.SetPosition(mgl32.Vec3{0, 2, 0})
	box.SetVelocity(mgl32.Vec3{0, -45, 0}, mgl32.Vec3{})
	w.AddBody(box)

	for i := 0; i < 3*60; i++ {
		w.Step(dt)
	}
	if y := box.Position.Y(); y < 0.4 {
		t.Fatalf("box passed through the plane: y=%v", y)
	}
}

func TestRestitutionBounces(t *testing.T) {
	w, ground := groundWorld(WorldOptions{})
	ground.Restitution = 0.8
	box := NewBox(mgl32.Vec3{0.5, 0.5, 0.5}, 1)
	box.SetPosition(mgl32.Vec3{0, 3, 0})
	w.AddBody(box)

	bounced := false
	for i := 0; i < 2*60; i++ {
		w.Step(dt)
		if box.Velocity.Y() > 1 {
			bounced = true
			break
		}
	}
	if !bounced {
		t.Fatalf("expected an upward bounce")
	}
}

func TestZeroMassIsImmovable(t *testing.T) {
	w, _ := groundWorld(WorldOptions{})
	box := NewBox(mgl32.Vec3{0.5, 0.5, 0.5}, 0)
	box.SetPosition(mgl32.Vec3{0, 3, 0})
	w.AddBody(box)
	for i := 0; i < 60; i++ {
		w.Step(dt)
	}
	if box.Position != (mgl32.Vec3{0, 3, 0}) {
		t.Fatalf("immovable box moved to %v", box.Position)
	}

	box.SetMass(-2)
	if box.Mass != 0 || box.Movable() {
		t.Fatalf("expected negative mass clamped to immovable, got mass %v", box.Mass)
	}

	box.SetMass(2)
	w.Step(dt)
	if box.Position.Y() >= 3 {
		t.Fatalf("expected box to fall after getting mass")
	}
}

func TestStepNonPositiveIsNoop(t *testing.T) {
	w, _ := groundWorld(WorldOptions{})
	box := NewBox(mgl32.Vec3{0.5, 0.5, 0.5}, 1)
	box.SetPosition(mgl32.Vec3{0, 3, 0})
	w.AddBody(box)

	w.Step(0)
	w.Step(-dt)
	w.Step(float32(math.NaN()))
	if w.StepCount() != 0 || w.Time() != 0 {
		t.Fatalf("expected no steps, got %d / %v", w.StepCount(), w.Time())
	}
	if box.Position != (mgl32.Vec3{0, 3, 0}) {
		t.Fatalf("box moved on a no-op step: %v", box.Position)
	}
}

func TestSleepAndWake(t *testing.T) {
	w, _ := groundWorld(WorldOptions{AllowSleep: true})
	box := NewBox(mgl32.Vec3{0.5, 0.5, 0.5}, 1)
	box.SetPosition(mgl32.Vec3{0, 0.5, 0})
	w.AddBody(box)

	for i := 0; i < 4*60 && !box.Sleeping(); i++ {
		w.Step(dt)
	}
	if !box.Sleeping() {
		t.Fatalf("expected resting box to fall asleep")
	}
	p := box.Position
	w.Step(dt)
	if box.Position != p {
		t.Fatalf("sleeping box moved")
	}

	box.SetPosition(mgl32.Vec3{0, 2, 0})
	if box.Sleeping() {
		t.Fatalf("expected SetPosition to wake the box")
	}
	w.Step(dt)
	if box.Position.Y() >= 2 {
		t.Fatalf("expected woken box to fall")
	}
}

func TestAddRemoveBodies(t *testing.T) {
	w := NewWorld(WorldOptions{})
	if w.Gravity != (mgl32.Vec3{0, -9.81, 0}) || w.Iterations != defaultIterations {
		t.Fatalf("unexpected defaults: %v %d", w.Gravity, w.Iterations)
	}
	a, b := NewPlane(), NewBox(mgl32.Vec3{1, 1, 1}, 1)
	if err := w.AddBody(a); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := w.AddBody(b); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := w.AddBody(a); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := w.AddBody(nil); !errors.Is(err, ErrNilBody) {
		t.Fatalf("expected ErrNilBody, got %v", err)
	}
	if a.ID != 0 || b.ID != 1 {
		t.Fatalf("unexpected IDs %d %d", a.ID, b.ID)
	}
	if !w.RemoveBody(a) || w.RemoveBody(a) {
		t.Fatalf("expected remove once")
	}
	if got := w.Bodies(); len(got) != 1 || got[0] != b {
		t.Fatalf("unexpected bodies %v", got)
	}
}

func TestBoxInertia(t *testing.T) {
	got := BoxShape(mgl32.Vec3{0.5, 0.5, 0.5}).Inertia(6)
	// 6/12 * (1 + 1)
	if !got.ApproxEqualThreshold(mgl32.Vec3{1, 1, 1}, 1e-5) {
		t.Fatalf("expected unit inertia, got %v", got)
	}
}
