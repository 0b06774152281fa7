package physics

import "github.com/go-gl/mathgl/mgl32"

// ShapeKind identifies a collision shape.
type ShapeKind uint8

const (
	ShapePlane ShapeKind = iota + 1
	ShapeBox
)

func (k ShapeKind) String() string {
	switch k {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Shape is a collision shape in body space. Planes pass through the body
// origin with normal +Z; boxes are centred on it.
type Shape struct {
	Kind        ShapeKind
	HalfExtents mgl32.Vec3
}

func PlaneShape() Shape { return Shape{Kind: ShapePlane} }

// BoxShape returns a box; negative extents are mirrored.
func BoxShape(halfExtents mgl32.Vec3) Shape {
	for i, v := range halfExtents {
		if v < 0 {
			halfExtents[i] = -v
		}
	}
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

// Inertia returns the principal moments of inertia for mass m.
func (s Shape) Inertia(m float32) mgl32.Vec3 {
	if s.Kind != ShapeBox {
		return mgl32.Vec3{}
	}
	x, y, z := s.HalfExtents[0], s.HalfExtents[1], s.HalfExtents[2]
	k := m / 3
	return mgl32.Vec3{k * (y*y + z*z), k * (x*x + z*z), k * (x*x + y*y)}
}

// corners returns the eight box corners in body space.
func (s Shape) corners() [8]mgl32.Vec3 {
	h := s.HalfExtents
	var out [8]mgl32.Vec3
	for i := range out {
		out[i] = h
		if i&1 != 0 {
			out[i][0] = -h[0]
		}
		if i&2 != 0 {
			out[i][1] = -h[1]
		}
		if i&4 != 0 {
			out[i][2] = -h[2]
		}
	}
	return out
}
