package gfx

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameStats counts the work done by one Render call.
type FrameStats struct {
	Meshes       int
	Triangles    int
	Lines        int
	Pixels       int
	ShadowPixels int
}

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it; its buffers grow to the largest target seen
// and are not reallocated per frame.
type Renderer struct {
	// LineBias pulls lines towards the camera in [0, 1] depth so edges drawn
	// over their own faces stay visible.
	LineBias float32

	// ShadowLift raises projected shadows off their receiver, in world units.
	ShadowLift float32

	depth  []float32
	owner  []int32
	shadow []bool
	w, h   int

	scene *Scene
	vp    mgl32.Mat4
	eye   mgl32.Vec3
	light mgl32.Vec3
	stats FrameStats

	polyIn  []mgl32.Vec4
	polyOut []mgl32.Vec4
}

// NewRenderer creates a renderer with default biases.
func NewRenderer() *Renderer {
	return &Renderer{
		LineBias:   2e-4,
		ShadowLift: 2e-3,
		polyIn:     make([]mgl32.Vec4, 0, 8),
		polyOut:    make([]mgl32.Vec4, 0, 8),
	}
}

func (r *Renderer) resize(w, h int) {
	r.w, r.h = w, h
	n := w * h
	if cap(r.depth) < n {
		r.depth = make([]float32, n)
		r.owner = make([]int32, n)
		r.shadow = make([]bool, n)
	}
	r.depth = r.depth[:n]
	r.owner = r.owner[:n]
	r.shadow = r.shadow[:n]
	for i := range r.depth {
		r.depth[i] = 1
		r.owner[i] = -1
		r.shadow[i] = false
	}
}

// Owner returns the index of the scene mesh that produced the pixel at (x, y)
// in the last frame, or -1 for background.
func (r *Renderer) Owner(x, y int) int {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return -1
	}
	return int(r.owner[y*r.w+x])
}

// Shadowed reports whether the pixel at (x, y) was darkened by a shadow in
// the last frame.
func (r *Renderer) Shadowed(x, y int) bool {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return false
	}
	return r.shadow[y*r.w+x]
}

// Render clears the target and draws the scene into it.
func (r *Renderer) Render(t Target, s *Scene) FrameStats {
	if r == nil || t == nil || s == nil {
		return FrameStats{}
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return FrameStats{}
	}
	t.Clear(s.Background)
	r.resize(w, h)

	r.scene = s
	r.stats = FrameStats{}
	aspect := float32(w) / float32(h)
	r.vp = s.Camera.Projection(aspect).Mul4(s.Camera.View())
	r.eye = s.Camera.Position
	r.light = s.Directional.Direction()

	for i, m := range s.meshes {
		if m == nil || !m.Visible || m.Geometry == nil {
			continue
		}
		r.stats.Meshes++
		r.drawMesh(t, int32(i), m)
	}
	if s.Shadows {
		r.shadowPass(t)
	}
	r.scene = nil
	return r.stats
}

func (r *Renderer) drawMesh(t Target, id int32, m *Mesh) {
	g := m.Geometry
	model := m.Matrix()
	world := func(i uint16) (mgl32.Vec3, bool) {
		if int(i) >= len(g.Vertices) {
			return mgl32.Vec3{}, false
		}
		p := g.Vertices[i].Pos
		return model.Mul4x1(p.Vec4(1)).Vec3(), true
	}

	if g.Lines {
		for i := 0; i+1 < len(g.Indices); i += 2 {
			a, okA := world(g.Indices[i])
			b, okB := world(g.Indices[i+1])
			if !okA || !okB {
				continue
			}
			c := m.Material.Color
			if k := i / 2; k < len(g.LineColors) {
				c = g.LineColors[k]
			}
			r.drawSegment(t, a, b, c, id)
		}
		return
	}

	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, okA := world(g.Indices[i])
		b, okB := world(g.Indices[i+1])
		c, okC := world(g.Indices[i+2])
		if !okA || !okB || !okC {
			continue
		}
		n := normalize(b.Sub(a).Cross(c.Sub(a)))
		if n == (mgl32.Vec3{}) {
			continue
		}
		front := n.Dot(r.eye.Sub(a)) > 0
		switch m.Material.Side {
		case FrontSide:
			if !front {
				continue
			}
		case BackSide:
			if front {
				continue
			}
			n = n.Mul(-1)
		case DoubleSide:
			if !front {
				n = n.Mul(-1)
			}
		}

		center := a.Add(b).Add(c).Mul(1.0 / 3)
		col := r.shade(m.Material, n, center)
		r.stats.Triangles++
		if m.Material.Wireframe {
			r.drawSegment(t, a, b, col, id)
			r.drawSegment(t, b, c, col, id)
			r.drawSegment(t, c, a, col, id)
			continue
		}
		r.fillWorldTriangle(a, b, c, func(idx, x, y int, z float32) {
			if z >= r.depth[idx] {
				return
			}
			r.depth[idx] = z
			r.owner[idx] = id
			t.SetPixel(x, y, col)
			r.stats.Pixels++
		})
	}
}

// shade computes a flat Blinn-Phong color for a face with world normal n
// through point p.
func (r *Renderer) shade(mat Material, n, p mgl32.Vec3) Color {
	if mat.Unlit {
		return mat.Color
	}
	s := r.scene
	base := toRGBF(mat.Color)
	light := toRGBF(s.Ambient.Color).scale(s.Ambient.Intensity)

	ndl := n.Dot(r.light)
	if ndl > 0 && s.Directional.Intensity > 0 {
		dl := toRGBF(s.Directional.Color).scale(s.Directional.Intensity)
		light = light.add(dl.scale(ndl))
		out := base.mul(light)
		if mat.Specular > 0 {
			v := normalize(r.eye.Sub(p))
			hv := normalize(r.light.Add(v))
			if ndh := n.Dot(hv); ndh > 0 {
				shin := mat.Shininess
				if shin <= 0 {
					shin = 30
				}
				out = out.add(dl.scale(mat.Specular * math32.Pow(ndh, shin)))
			}
		}
		return out.toColor(0xFF)
	}
	return base.mul(light).toColor(0xFF)
}

// shadowColor is the receiver's color lit by ambient light only.
func (r *Renderer) shadowColor(mat Material) Color {
	s := r.scene
	light := toRGBF(s.Ambient.Color).scale(s.Ambient.Intensity)
	return toRGBF(mat.Color).mul(light).toColor(0xFF)
}

type screenVert struct {
	x, y, z float32
}

func (r *Renderer) toScreen(c mgl32.Vec4) (screenVert, bool) {
	w := c.W()
	if w <= 1e-6 {
		return screenVert{}, false
	}
	inv := 1 / w
	return screenVert{
		x: (c.X()*inv*0.5 + 0.5) * float32(r.w),
		y: (1 - (c.Y()*inv*0.5 + 0.5)) * float32(r.h),
		z: c.Z()*inv*0.5 + 0.5,
	}, true
}

// fillWorldTriangle clips a world-space triangle against the near plane and
// scans the result, calling frag for every covered pixel centre with its
// [0, 1] depth.
func (r *Renderer) fillWorldTriangle(a, b, c mgl32.Vec3, frag func(idx, x, y int, z float32)) {
	r.polyIn = append(r.polyIn[:0],
		r.vp.Mul4x1(a.Vec4(1)),
		r.vp.Mul4x1(b.Vec4(1)),
		r.vp.Mul4x1(c.Vec4(1)),
	)
	r.polyOut = clipNear(r.polyIn, r.polyOut)
	if len(r.polyOut) < 3 {
		return
	}
	p0, ok := r.toScreen(r.polyOut[0])
	if !ok {
		return
	}
	prev, ok := r.toScreen(r.polyOut[1])
	if !ok {
		return
	}
	for i := 2; i < len(r.polyOut); i++ {
		cur, ok := r.toScreen(r.polyOut[i])
		if !ok {
			return
		}
		r.scanTriangle(p0, prev, cur, frag)
		prev = cur
	}
}

func edgeFn(a, b screenVert, px, py float32) float32 {
	return (px-a.x)*(b.y-a.y) - (py-a.y)*(b.x-a.x)
}

func (r *Renderer) scanTriangle(p0, p1, p2 screenVert, frag func(idx, x, y int, z float32)) {
	area := edgeFn(p0, p1, p2.x, p2.y)
	if area == 0 || math32.IsNaN(area) {
		return
	}
	minX := int(math32.Floor(min(p0.x, p1.x, p2.x)))
	maxX := int(math32.Ceil(max(p0.x, p1.x, p2.x)))
	minY := int(math32.Floor(min(p0.y, p1.y, p2.y)))
	maxY := int(math32.Ceil(max(p0.y, p1.y, p2.y)))
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, r.w-1)
	maxY = min(maxY, r.h-1)
	if minX > maxX || minY > maxY {
		return
	}

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edgeFn(p1, p2, px, py) * inv
			w1 := edgeFn(p2, p0, px, py) * inv
			w2 := edgeFn(p0, p1, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*p0.z + w1*p1.z + w2*p2.z
			if z < 0 || z > 1 {
				continue
			}
			frag(y*r.w+x, x, y, z)
		}
	}
}

// drawSegment draws a world-space line with depth testing.
func (r *Renderer) drawSegment(t Target, a, b mgl32.Vec3, c Color, id int32) {
	ca := r.vp.Mul4x1(a.Vec4(1))
	cb := r.vp.Mul4x1(b.Vec4(1))
	ca, cb, ok := clipSegmentNear(ca, cb)
	if !ok {
		return
	}
	sa, okA := r.toScreen(ca)
	sb, okB := r.toScreen(cb)
	if !okA || !okB {
		return
	}
	t0, t1, ok := clipSegmentRect(sa.x, sa.y, sb.x, sb.y, 0, 0, float32(r.w), float32(r.h))
	if !ok {
		return
	}
	dx, dy, dz := sb.x-sa.x, sb.y-sa.y, sb.z-sa.z
	x0, y0, z0 := sa.x+dx*t0, sa.y+dy*t0, sa.z+dz*t0
	x1, y1, z1 := sa.x+dx*t1, sa.y+dy*t1, sa.z+dz*t1

	steps := int(math32.Ceil(max(math32.Abs(x1-x0), math32.Abs(y1-y0))))
	if steps < 1 {
		steps = 1
	}
	r.stats.Lines++
	for i := 0; i <= steps; i++ {
		f := float32(i) / float32(steps)
		x := int(x0 + (x1-x0)*f)
		y := int(y0 + (y1-y0)*f)
		if x < 0 || y < 0 || x >= r.w || y >= r.h {
			continue
		}
		z := z0 + (z1-z0)*f - r.LineBias
		if z > 1 {
			continue
		}
		idx := y*r.w + x
		if z >= r.depth[idx] {
			continue
		}
		r.depth[idx] = z
		r.owner[idx] = id
		t.SetPixel(x, y, c)
		r.stats.Pixels++
	}
}
