package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// BodyType tells dynamic bodies from immovable ones.
type BodyType uint8

const (
	Dynamic BodyType = iota
	Static
)

func (t BodyType) String() string {
	switch t {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

const (
	defaultLinearDamping  = 0.01
	defaultAngularDamping = 0.01
	defaultFriction       = 0.3

	// A body whose speed stays under sleepSpeed for sleepTime seconds falls
	// asleep when the world allows it.
	sleepSpeed = 0.1
	sleepTime  = 1
)

// Body is a rigid body. Position, Quaternion and the velocities may be read
// at any time between steps; use the setters to change them so sleeping
// bodies wake up.
type Body struct {
	ID    int
	Type  BodyType
	Shape Shape

	Position   mgl32.Vec3
	Quaternion mgl32.Quat

	Velocity        mgl32.Vec3
	AngularVelocity mgl32.Vec3

	// Mass is in kilograms; zero means immovable.
	Mass float32

	LinearDamping  float32
	AngularDamping float32
	Friction       float32
	Restitution    float32

	invMass    float32
	invInertia mgl32.Vec3 // local principal axes

	sleeping bool
	idle     float32
}

func newBody(t BodyType, s Shape) *Body {
	return &Body{
		ID:             -1,
		Type:           t,
		Shape:          s,
		Quaternion:     mgl32.QuatIdent(),
		LinearDamping:  defaultLinearDamping,
		AngularDamping: defaultAngularDamping,
		Friction:       defaultFriction,
	}
}

// NewPlane returns a static infinite plane through the origin with local
// normal +Z. Rotate it with SetQuaternion.
func NewPlane() *Body {
	return newBody(Static, PlaneShape())
}

// NewBox returns a dynamic box. A mass <= 0 gives an immovable box.
func NewBox(halfExtents mgl32.Vec3, mass float32) *Body {
	b := newBody(Dynamic, BoxShape(halfExtents))
	b.SetMass(mass)
	return b
}

// SetMass sets the mass and recomputes the inertia. Masses <= 0 (and NaN)
// make the body immovable; Mass is never negative.
func (b *Body) SetMass(m float32) {
	if !(m > 0) {
		b.Mass = 0
		b.invMass = 0
		b.invInertia = mgl32.Vec3{}
		b.Velocity = mgl32.Vec3{}
		b.AngularVelocity = mgl32.Vec3{}
		return
	}
	b.Mass = m
	b.updateMassProperties()
	b.Wake()
}

func (b *Body) updateMassProperties() {
	if b.Type == Static || b.Mass <= 0 {
		b.invMass = 0
		b.invInertia = mgl32.Vec3{}
		return
	}
	b.invMass = 1 / b.Mass
	in := b.Shape.Inertia(b.Mass)
	inv := func(v float32) float32 {
		if v <= 0 {
			return 0
		}
		return 1 / v
	}
	b.invInertia = mgl32.Vec3{inv(in[0]), inv(in[1]), inv(in[2])}
}

// Movable reports whether the solver may move the body.
func (b *Body) Movable() bool {
	return b.Type == Dynamic && b.invMass > 0
}

// SetPosition teleports the body and wakes it.
func (b *Body) SetPosition(p mgl32.Vec3) {
	b.Position = p
	b.Wake()
}

// SetQuaternion sets the orientation (normalized) and wakes the body.
func (b *Body) SetQuaternion(q mgl32.Quat) {
	if q.Len() == 0 {
		q = mgl32.QuatIdent()
	}
	b.Quaternion = q.Normalize()
	b.Wake()
}

// SetVelocity sets linear and angular velocity and wakes the body.
func (b *Body) SetVelocity(v, w mgl32.Vec3) {
	b.Velocity = v
	b.AngularVelocity = w
	b.Wake()
}

// Wake clears the sleep state.
func (b *Body) Wake() {
	b.sleeping = false
	b.idle = 0
}

// Sleeping reports whether the body is asleep.
func (b *Body) Sleeping() bool { return b.sleeping }

// toWorld maps a point from body space to world space.
func (b *Body) toWorld(p mgl32.Vec3) mgl32.Vec3 {
	return b.Position.Add(b.Quaternion.Rotate(p))
}

// invInertiaWorld applies the world-space inverse inertia tensor to v.
func (b *Body) invInertiaWorld(v mgl32.Vec3) mgl32.Vec3 {
	local := b.Quaternion.Conjugate().Rotate(v)
	local = mgl32.Vec3{local[0] * b.invInertia[0], local[1] * b.invInertia[1], local[2] * b.invInertia[2]}
	return b.Quaternion.Rotate(local)
}

// velocityAt is the velocity of the body-fixed point at offset r from the
// centre of mass.
func (b *Body) velocityAt(r mgl32.Vec3) mgl32.Vec3 {
	return b.Velocity.Add(b.AngularVelocity.Cross(r))
}

func (b *Body) applyImpulse(p, r mgl32.Vec3) {
	b.Velocity = b.Velocity.Add(p.Mul(b.invMass))
	b.AngularVelocity = b.AngularVelocity.Add(b.invInertiaWorld(r.Cross(p)))
}

func (b *Body) integrateVelocity(g mgl32.Vec3, dt float32) {
	b.Velocity = b.Velocity.Add(g.Mul(dt))
	b.Velocity = b.Velocity.Mul(math32.Pow(1-b.LinearDamping, dt))
	b.AngularVelocity = b.AngularVelocity.Mul(math32.Pow(1-b.AngularDamping, dt))
}

func (b *Body) integratePosition(dt float32) {
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	w := b.AngularVelocity
	if w == (mgl32.Vec3{}) {
		return
	}
	spin := mgl32.Quat{W: 0, V: w}.Mul(b.Quaternion).Scale(0.5 * dt)
	b.Quaternion = b.Quaternion.Add(spin).Normalize()
}

func (b *Body) updateSleep(dt float32) {
	speed2 := b.Velocity.LenSqr() + b.AngularVelocity.LenSqr()
	if speed2 >= sleepSpeed*sleepSpeed {
		b.idle = 0
		return
	}
	b.idle += dt
	if b.idle >= sleepTime {
		b.sleeping = true
		b.Velocity = mgl32.Vec3{}
		b.AngularVelocity = mgl32.Vec3{}
	}
}
