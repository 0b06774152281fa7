package physics

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

const defaultIterations = 10

var (
	ErrNilBody   = errors.New("physics: nil body")
	ErrDuplicate = errors.New("physics: body already in world")
)

// WorldOptions configures a new World.
type WorldOptions struct {
	// Gravity defaults to (0, -9.81, 0) when zero. Set World.Gravity after
	// construction for a weightless world.
	Gravity mgl32.Vec3

	// Iterations is the number of solver passes per step (default 10).
	Iterations int

	// AllowSleep lets bodies at rest stop being simulated until woken.
	AllowSleep bool
}

// World owns bodies and advances them.
type World struct {
	Gravity    mgl32.Vec3
	Iterations int
	AllowSleep bool

	bodies   []*Body
	nextID   int
	contacts []Contact

	steps uint64
	time  float64
}

// NewWorld creates an empty world.
func NewWorld(o WorldOptions) *World {
	if o.Gravity == (mgl32.Vec3{}) {
		o.Gravity = mgl32.Vec3{0, -9.81, 0}
	}
	if o.Iterations < 1 {
		o.Iterations = defaultIterations
	}
	return &World{Gravity: o.Gravity, Iterations: o.Iterations, AllowSleep: o.AllowSleep}
}

// AddBody adds b and assigns its ID.
func (w *World) AddBody(b *Body) error {
	if b == nil {
		return ErrNilBody
	}
	for _, o := range w.bodies {
		if o == b {
			return ErrDuplicate
		}
	}
	b.ID = w.nextID
	w.nextID++
	w.bodies = append(w.bodies, b)
	return nil
}

// RemoveBody removes b and reports whether it was present.
func (w *World) RemoveBody(b *Body) bool {
	for i, o := range w.bodies {
		if o == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// Bodies returns the bodies in insertion order.
func (w *World) Bodies() []*Body { return w.bodies }

// StepCount is the number of steps taken.
func (w *World) StepCount() uint64 { return w.steps }

// Time is the simulated time in seconds.
func (w *World) Time() float64 { return w.time }

// Contacts returns the contacts solved in the last step. The slice is reused
// by the next step.
func (w *World) Contacts() []Contact { return w.contacts }

// Step advances the world by exactly dt seconds. dt <= 0 does nothing.
func (w *World) Step(dt float32) {
	if !(dt > 0) {
		return
	}
	for _, b := range w.bodies {
		if b.active() {
			b.integrateVelocity(w.Gravity, dt)
		}
	}

	w.contacts = w.contacts[:0]
	for _, b := range w.bodies {
		if !b.active() || b.Shape.Kind != ShapeBox {
			continue
		}
		for _, p := range w.bodies {
			if p.Shape.Kind == ShapePlane {
				w.contacts = boxPlaneContacts(w.contacts, b, p, dt)
			}
		}
	}

	for i := range w.contacts {
		w.contacts[i].prepare(dt)
	}
	iters := w.Iterations
	if iters < 1 {
		iters = 1
	}
	for it := 0; it < iters; it++ {
		for i := range w.contacts {
			w.contacts[i].solve()
		}
	}

	for _, b := range w.bodies {
		if !b.active() {
			continue
		}
		b.integratePosition(dt)
		if w.AllowSleep {
			b.updateSleep(dt)
		}
	}
	w.steps++
	w.time += float64(dt)
}

func (b *Body) active() bool {
	return b.Movable() && !b.sleeping
}
