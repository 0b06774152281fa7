package gfx

import "github.com/go-gl/mathgl/mgl32"

// shadowDepthTolerance lets a projected shadow pass the depth test against
// the receiver it was projected onto.
const shadowDepthTolerance = 1e-4

// shadowPass projects every shadow-casting mesh along the directional light
// onto each planar shadow receiver. Only pixels the receiver owns, and which
// are not yet shadowed, are darkened to the receiver's ambient-only color.
func (r *Renderer) shadowPass(t Target) {
	s := r.scene
	if s.Directional.Intensity <= 0 {
		return
	}
	for ri, recv := range s.meshes {
		if !receivesShadow(recv) {
			continue
		}
		local, _ := recv.Geometry.Planar()
		model := recv.Matrix()
		n := normalize(model.Mat3().Inv().Transpose().Mul3x1(local))
		if n == (mgl32.Vec3{}) {
			continue
		}
		ln := r.light.Dot(n)
		if ln <= 0.01 {
			continue
		}
		origin := model.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3().Add(n.Mul(r.ShadowLift))
		project := func(p mgl32.Vec3) mgl32.Vec3 {
			d := p.Sub(origin).Dot(n)
			if d < 0 {
				d = 0
			}
			return p.Sub(r.light.Mul(d / ln))
		}

		id := int32(ri)
		col := r.shadowColor(recv.Material)
		for ci, caster := range s.meshes {
			if ci == ri || !castsShadow(caster) {
				continue
			}
			g := caster.Geometry
			cm := caster.Matrix()
			for i := 0; i+2 < len(g.Indices); i += 3 {
				ia, ib, ic := int(g.Indices[i]), int(g.Indices[i+1]), int(g.Indices[i+2])
				if ia >= len(g.Vertices) || ib >= len(g.Vertices) || ic >= len(g.Vertices) {
					continue
				}
				a := project(cm.Mul4x1(g.Vertices[ia].Pos.Vec4(1)).Vec3())
				b := project(cm.Mul4x1(g.Vertices[ib].Pos.Vec4(1)).Vec3())
				c := project(cm.Mul4x1(g.Vertices[ic].Pos.Vec4(1)).Vec3())
				r.fillWorldTriangle(a, b, c, func(idx, x, y int, z float32) {
					if r.owner[idx] != id || r.shadow[idx] {
						return
					}
					if z > r.depth[idx]+shadowDepthTolerance {
						return
					}
					r.shadow[idx] = true
					t.SetPixel(x, y, col)
					r.stats.ShadowPixels++
				})
			}
		}
	}
}

func receivesShadow(m *Mesh) bool {
	if m == nil || !m.Visible || !m.Material.ReceiveShadow || m.Geometry == nil || m.Geometry.Lines {
		return false
	}
	_, ok := m.Geometry.Planar()
	return ok
}

func castsShadow(m *Mesh) bool {
	return m != nil && m.Visible && m.Material.CastShadow && m.Geometry != nil && !m.Geometry.Lines
}
