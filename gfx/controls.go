package gfx

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// polarEpsilon keeps the orbit away from the poles, where the view matrix
// degenerates.
const polarEpsilon = 1e-3

// OrbitControls orbits a camera around Target.
//
// Rotate, Zoom and Pan only accumulate input; Update applies it. Update reads
// the camera position back every call, so code that moves the camera directly
// keeps its change.
type OrbitControls struct {
	Target mgl32.Vec3

	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32

	MinDistance float32
	MaxDistance float32

	// MinPolar and MaxPolar bound the angle from +Y, in radians.
	MinPolar float32
	MaxPolar float32

	dTheta, dPhi float32
	scale        float32
	panX, panY   float32
}

// NewOrbitControls returns controls orbiting target with unit speeds and no
// distance limits.
func NewOrbitControls(target mgl32.Vec3) *OrbitControls {
	return &OrbitControls{
		Target:      target,
		RotateSpeed: 1,
		ZoomSpeed:   1,
		PanSpeed:    1,
		MaxDistance: math.MaxFloat32,
		MaxPolar:    math32.Pi,
		scale:       1,
	}
}

// Rotate queues a drag of (dx, dy) pixels in a view h pixels tall. A drag
// across the full height turns the camera once around.
func (o *OrbitControls) Rotate(dx, dy float32, h int) {
	if h <= 0 {
		return
	}
	k := 2 * math32.Pi / float32(h) * o.RotateSpeed
	o.dTheta -= dx * k
	o.dPhi -= dy * k
}

// Zoom queues wheel steps; positive steps move the camera closer.
func (o *OrbitControls) Zoom(steps float32) {
	o.scale *= math32.Pow(0.95, steps*o.ZoomSpeed)
}

// Pan queues a drag of (dx, dy) pixels in a view h pixels tall. The target
// moves in the view plane so the point under the cursor follows it.
func (o *OrbitControls) Pan(dx, dy float32, h int) {
	if h <= 0 {
		return
	}
	o.panX += dx / float32(h) * o.PanSpeed
	o.panY += dy / float32(h) * o.PanSpeed
}

// Update applies queued input to c and reports whether the camera moved.
func (o *OrbitControls) Update(c *Camera) bool {
	if c == nil {
		return false
	}
	if o.idle() && c.Target == o.Target {
		return false
	}
	before := c.Position

	offset := c.Position.Sub(o.Target)
	radius := offset.Len()
	if radius < 1e-6 {
		offset = mgl32.Vec3{0, 0, 1e-6}
		radius = 1e-6
	}

	if o.panX != 0 || o.panY != 0 {
		fov := c.FOVYDeg
		if fov <= 0 || fov >= 180 {
			fov = 75
		}
		reach := radius * math32.Tan(mgl32.DegToRad(fov)/2)
		fwd := offset.Mul(-1 / radius)
		up := c.Up
		if up == (mgl32.Vec3{}) {
			up = mgl32.Vec3{0, 1, 0}
		}
		right := normalize(fwd.Cross(up))
		camUp := right.Cross(fwd)
		o.Target = o.Target.
			Sub(right.Mul(2 * o.panX * reach)).
			Add(camUp.Mul(2 * o.panY * reach))
	}

	theta := math32.Atan2(offset.X(), offset.Z())
	phi := math32.Acos(mgl32.Clamp(offset.Y()/radius, -1, 1))
	theta += o.dTheta
	phi += o.dPhi
	phi = mgl32.Clamp(phi, max(o.MinPolar, polarEpsilon), min(o.MaxPolar, math32.Pi-polarEpsilon))

	radius *= o.scale
	radius = mgl32.Clamp(radius, max(o.MinDistance, 1e-3), o.MaxDistance)

	sp := math32.Sin(phi)
	offset = mgl32.Vec3{
		radius * sp * math32.Sin(theta),
		radius * math32.Cos(phi),
		radius * sp * math32.Cos(theta),
	}
	c.Position = o.Target.Add(offset)
	c.Target = o.Target

	o.dTheta, o.dPhi = 0, 0
	o.scale = 1
	o.panX, o.panY = 0, 0
	return c.Position.Sub(before).Len() > 1e-5
}

func (o *OrbitControls) idle() bool {
	return o.dTheta == 0 && o.dPhi == 0 && o.scale == 1 && o.panX == 0 && o.panY == 0
}
