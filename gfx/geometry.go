package gfx

import "github.com/go-gl/mathgl/mgl32"

// PlaneGeometry builds a width×height plane in the XY plane facing +Z,
// subdivided into segW×segH quads.
func PlaneGeometry(width, height float32, segW, segH int) *Geometry {
	if segW < 1 {
		segW = 1
	}
	if segH < 1 {
		segH = 1
	}
	g := &Geometry{planar: true, normal: mgl32.Vec3{0, 0, 1}}
	hw, hh := width/2, height/2
	for iy := 0; iy <= segH; iy++ {
		y := hh - float32(iy)*height/float32(segH)
		for ix := 0; ix <= segW; ix++ {
			x := -hw + float32(ix)*width/float32(segW)
			g.Vertices = append(g.Vertices, Vertex{Pos: mgl32.Vec3{x, y, 0}})
		}
	}
	row := segW + 1
	for iy := 0; iy < segH; iy++ {
		for ix := 0; ix < segW; ix++ {
			a := uint16(iy*row + ix)
			b := uint16((iy+1)*row + ix)
			c := uint16((iy+1)*row + ix + 1)
			d := uint16(iy*row + ix + 1)
			// Counter-clockwise seen from +Z.
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}

// BoxGeometry builds an axis-aligned box centred on the origin with outward
// counter-clockwise faces.
func BoxGeometry(width, height, depth float32) *Geometry {
	x, y, z := width/2, height/2, depth/2
	faces := [6][4]mgl32.Vec3{
		{{x, -y, z}, {x, -y, -z}, {x, y, -z}, {x, y, z}},     // +X
		{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}}, // -X
		{{-x, y, z}, {x, y, z}, {x, y, -z}, {-x, y, -z}},     // +Y
		{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}}, // -Y
		{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}},     // +Z
		{{x, -y, -z}, {-x, -y, -z}, {-x, y, -z}, {x, y, -z}}, // -Z
	}
	g := &Geometry{}
	for _, f := range faces {
		base := uint16(len(g.Vertices))
		for _, p := range f {
			g.Vertices = append(g.Vertices, Vertex{Pos: p})
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

// AxesGeometry builds three segments of the given length from the origin:
// X red, Y green, Z blue.
func AxesGeometry(size float32) *Geometry {
	if size <= 0 {
		size = 1
	}
	return &Geometry{
		Lines: true,
		Vertices: []Vertex{
			{Pos: mgl32.Vec3{0, 0, 0}}, {Pos: mgl32.Vec3{size, 0, 0}},
			{Pos: mgl32.Vec3{0, 0, 0}}, {Pos: mgl32.Vec3{0, size, 0}},
			{Pos: mgl32.Vec3{0, 0, 0}}, {Pos: mgl32.Vec3{0, 0, size}},
		},
		Indices:    []uint16{0, 1, 2, 3, 4, 5},
		LineColors: []Color{Hex(0xFF0000), Hex(0x00FF00), Hex(0x0000FF)},
	}
}

// LightHelper is a line gizmo that follows a directional light: a square of
// the given size at the light position facing the light direction, plus a
// segment towards the lit point.
type LightHelper struct {
	Mesh *Mesh
	size float32
}

// NewLightHelper creates the helper mesh. Call Update after the light moves.
func NewLightHelper(size float32) *LightHelper {
	if size <= 0 {
		size = 1
	}
	g := &Geometry{
		Lines:    true,
		Vertices: make([]Vertex, 6),
		Indices:  []uint16{0, 1, 1, 2, 2, 3, 3, 0, 4, 5},
	}
	return &LightHelper{
		Mesh: NewMesh("light-helper", g, BasicMaterial(RGB(0xFF, 0xFF, 0xFF))),
		size: size,
	}
}

// Update rebuilds the gizmo for the light's current position, direction and
// color. The mesh transform stays identity; vertices are in world space.
func (h *LightHelper) Update(l DirectionalLight) {
	dir := l.Direction()
	up := mgl32.Vec3{0, 1, 0}
	if abs32(dir.Dot(up)) > 0.99 {
		up = mgl32.Vec3{1, 0, 0}
	}
	right := normalize(dir.Cross(up)).Mul(h.size)
	top := normalize(right.Cross(dir)).Mul(h.size)
	p := l.Position
	reach := l.Position.Sub(l.Target).Len()
	if reach == 0 {
		reach = h.size
	}

	v := h.Mesh.Geometry.Vertices
	v[0].Pos = p.Sub(right).Add(top)
	v[1].Pos = p.Add(right).Add(top)
	v[2].Pos = p.Add(right).Sub(top)
	v[3].Pos = p.Sub(right).Sub(top)
	v[4].Pos = p
	v[5].Pos = p.Sub(dir.Mul(reach))
	h.Mesh.Material.Color = l.Color
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
