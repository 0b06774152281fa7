package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// baumgarte is the fraction of penetration removed per step.
	baumgarte = 0.2
	// slop is the penetration left alone to keep resting contacts stable.
	slop = 0.005
	// bounceThreshold is the closing speed under which restitution is ignored.
	bounceThreshold = 1
)

// Contact is one point of contact between a movable body and a plane.
type Contact struct {
	Body  *Body
	Plane *Body

	Point  mgl32.Vec3 // world space, on the body
	Normal mgl32.Vec3 // plane normal, towards the body
	Depth  float32    // penetration; negative is the gap left to close

	r        mgl32.Vec3
	t1, t2   mgl32.Vec3
	kn       float32
	kt1, kt2 float32
	bias     float32
	jn       float32
	jt1, jt2 float32
	mu       float32
}

// planeNormal is the plane's world normal and a point on it.
func planeNormal(p *Body) (mgl32.Vec3, mgl32.Vec3) {
	return p.Quaternion.Rotate(mgl32.Vec3{0, 0, 1}), p.Position
}

// boxPlaneContacts appends a contact for every box corner below the plane,
// and a speculative one for every corner that would reach it within dt at
// its current velocity.
func boxPlaneContacts(dst []Contact, box, plane *Body, dt float32) []Contact {
	n, origin := planeNormal(plane)
	for _, c := range box.Shape.corners() {
		p := box.toWorld(c)
		d := p.Sub(origin).Dot(n)
		if d >= slop {
			vn := box.velocityAt(p.Sub(box.Position)).Dot(n)
			if d+vn*dt >= slop {
				continue
			}
		}
		dst = append(dst, Contact{Body: box, Plane: plane, Point: p, Normal: n, Depth: -d})
	}
	return dst
}

// tangents returns two unit vectors orthogonal to n and to each other.
func tangents(n mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	var a mgl32.Vec3
	if math32.Abs(n[0]) < 0.57 {
		a = mgl32.Vec3{1, 0, 0}
	} else {
		a = mgl32.Vec3{0, 1, 0}
	}
	t1 := n.Cross(a).Normalize()
	return t1, n.Cross(t1)
}

// effectiveMass is 1 / (J M^-1 J^T) along direction d at offset r.
func effectiveMass(b *Body, r, d mgl32.Vec3) float32 {
	rd := r.Cross(d)
	k := b.invMass + b.invInertiaWorld(rd).Cross(r).Dot(d)
	if k <= 0 {
		return 0
	}
	return 1 / k
}

func (c *Contact) prepare(dt float32) {
	b := c.Body
	c.r = c.Point.Sub(b.Position)
	c.t1, c.t2 = tangents(c.Normal)
	c.kn = effectiveMass(b, c.r, c.Normal)
	c.kt1 = effectiveMass(b, c.r, c.t1)
	c.kt2 = effectiveMass(b, c.r, c.t2)
	c.mu = math32.Sqrt(b.Friction * c.Plane.Friction)

	if c.Depth > 0 {
		c.bias = baumgarte / dt * max(c.Depth-slop, 0)
	} else {
		// Separated: the body may still approach by the gap this step.
		c.bias = c.Depth / dt
	}
	vn := b.velocityAt(c.r).Dot(c.Normal)
	e := max(b.Restitution, c.Plane.Restitution)
	if vn < -bounceThreshold && e > 0 {
		c.bias = max(c.bias, -e*vn)
	}
}

func (c *Contact) solve() {
	b := c.Body

	vn := b.velocityAt(c.r).Dot(c.Normal)
	dj := (c.bias - vn) * c.kn
	old := c.jn
	c.jn = max(old+dj, 0)
	dj = c.jn - old
	b.applyImpulse(c.Normal.Mul(dj), c.r)

	limit := c.mu * c.jn
	c.jt1 = c.solveTangent(c.t1, c.kt1, c.jt1, limit)
	c.jt2 = c.solveTangent(c.t2, c.kt2, c.jt2, limit)
}

func (c *Contact) solveTangent(t mgl32.Vec3, k, acc, limit float32) float32 {
	b := c.Body
	vt := b.velocityAt(c.r).Dot(t)
	next := mgl32.Clamp(acc-vt*k, -limit, limit)
	b.applyImpulse(t.Mul(next-acc), c.r)
	return next
}
