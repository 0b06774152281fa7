package gfx

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Side selects which triangle faces are drawn.
type Side uint8

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Material is a Phong-style surface description.
type Material struct {
	Color     Color
	Wireframe bool
	Side      Side

	// Specular is the highlight strength in [0, 1]; Shininess its exponent.
	Specular  float32
	Shininess float32

	// Unlit draws Color as-is, ignoring lights (helpers, lines).
	Unlit bool

	CastShadow    bool
	ReceiveShadow bool
}

// PhongMaterial returns a lit material with default highlight settings.
func PhongMaterial(c Color) Material {
	return Material{Color: c, Specular: 0.07, Shininess: 30}
}

// BasicMaterial returns an unlit material.
func BasicMaterial(c Color) Material {
	return Material{Color: c, Unlit: true}
}

// AmbientLight lights every face equally.
type AmbientLight struct {
	Color     Color
	Intensity float32
}

// DirectionalLight shines from Position towards Target.
type DirectionalLight struct {
	Color     Color
	Intensity float32
	Position  mgl32.Vec3
	Target    mgl32.Vec3

	// Rotation (Euler XYZ, radians) turns the Position-to-Target direction
	// about the light position. Zero leaves the light aimed at Target.
	Rotation mgl32.Vec3
}

// Direction returns the unit vector from the lit surface towards the light.
func (l DirectionalLight) Direction() mgl32.Vec3 {
	d := normalize(l.Position.Sub(l.Target))
	if d == (mgl32.Vec3{}) {
		d = mgl32.Vec3{0, 1, 0}
	}
	if l.Rotation != (mgl32.Vec3{}) {
		q := mgl32.AnglesToQuat(l.Rotation[0], l.Rotation[1], l.Rotation[2], mgl32.XYZ)
		d = normalize(q.Rotate(d))
	}
	return d
}

// Camera is a perspective camera looking at Target.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	FOVYDeg float32
	Near    float32
	Far     float32
}

// NewCamera returns a camera with the given vertical field of view and clip
// planes, at (0, 0, 1) looking at the origin along -Z.
func NewCamera(fovYDeg, near, far float32) Camera {
	return Camera{
		Position: mgl32.Vec3{0, 0, 1},
		Up:       mgl32.Vec3{0, 1, 0},
		FOVYDeg:  fovYDeg,
		Near:     near,
		Far:      far,
	}
}

// View returns the camera view matrix.
func (c Camera) View() mgl32.Mat4 {
	up := c.Up
	if up == (mgl32.Vec3{}) {
		up = mgl32.Vec3{0, 1, 0}
	}
	return mgl32.LookAtV(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	fov := c.FOVYDeg
	if fov <= 0 || fov >= 180 {
		fov = 75
	}
	near, far := c.Near, c.Far
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = near + 1000
	}
	return mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
}

// Vertex is a mesh vertex in object space.
type Vertex struct {
	Pos mgl32.Vec3
}

// Geometry is an indexed triangle list or, when Lines is set, a segment list
// with optional per-segment colors.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint16

	Lines      bool
	LineColors []Color

	// planar is set for flat geometry that can receive planar shadows;
	// normal is the object-space face normal.
	planar bool
	normal mgl32.Vec3
}

// Planar reports whether every face shares one object-space normal.
func (g *Geometry) Planar() (mgl32.Vec3, bool) {
	if g == nil {
		return mgl32.Vec3{}, false
	}
	return g.normal, g.planar
}

// Mesh is a drawable scene node.
type Mesh struct {
	Name     string
	Geometry *Geometry
	Material Material

	Position   mgl32.Vec3
	Quaternion mgl32.Quat
	Scale      mgl32.Vec3

	Visible bool
}

// NewMesh returns a visible mesh at the origin with unit scale.
func NewMesh(name string, g *Geometry, m Material) *Mesh {
	return &Mesh{
		Name:       name,
		Geometry:   g,
		Material:   m,
		Quaternion: mgl32.QuatIdent(),
		Scale:      mgl32.Vec3{1, 1, 1},
		Visible:    true,
	}
}

// Matrix returns the object-to-world transform T·R·S.
func (m *Mesh) Matrix() mgl32.Mat4 {
	q := m.Quaternion
	if q.Len() == 0 {
		q = mgl32.QuatIdent()
	}
	t := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	s := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	return t.Mul4(q.Normalize().Mat4()).Mul4(s)
}

// Scene is a collection of meshes and lights to render.
type Scene struct {
	Background Color
	Camera     Camera

	Ambient     AmbientLight
	Directional DirectionalLight

	// Shadows enables planar shadow projection along the directional light.
	Shadows bool

	meshes []*Mesh
}

// NewScene returns an empty scene with a white ambient light and a white
// directional light above the origin.
func NewScene() *Scene {
	return &Scene{
		Background: RGB(0, 0, 0),
		Camera:     NewCamera(75, 0.1, 1000),
		Ambient:    AmbientLight{Color: RGB(0xFF, 0xFF, 0xFF), Intensity: 0.25},
		Directional: DirectionalLight{
			Color:     RGB(0xFF, 0xFF, 0xFF),
			Intensity: 0.75,
			Position:  mgl32.Vec3{0, 1, 0},
		},
		Shadows: true,
	}
}

// Add appends meshes in draw order. Nil meshes and duplicates are ignored.
func (s *Scene) Add(meshes ...*Mesh) {
	for _, m := range meshes {
		if m == nil || s.index(m) >= 0 {
			continue
		}
		s.meshes = append(s.meshes, m)
	}
}

// Remove drops a mesh from the scene.
func (s *Scene) Remove(m *Mesh) {
	i := s.index(m)
	if i < 0 {
		return
	}
	s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
}

// Meshes returns the meshes in draw order.
func (s *Scene) Meshes() []*Mesh { return s.meshes }

func (s *Scene) index(m *Mesh) int {
	for i, o := range s.meshes {
		if o == m {
			return i
		}
	}
	return -1
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math32.IsNaN(l) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
