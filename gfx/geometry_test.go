package gfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func faceNormal(g *Geometry, i int) (mgl32.Vec3, mgl32.Vec3) {
	a := g.Vertices[g.Indices[i]].Pos
	b := g.Vertices[g.Indices[i+1]].Pos
	c := g.Vertices[g.Indices[i+2]].Pos
	return b.Sub(a).Cross(c.Sub(a)), a.Add(b).Add(c).Mul(1.0 / 3)
}

func TestBoxFacesPointOutward(t *testing.T) {
	g := BoxGeometry(1, 2, 3)
	if len(g.Indices) != 36 {
		t.Fatalf("expected 36 indices, got %d", len(g.Indices))
	}
	for i := 0; i < len(g.Indices); i += 3 {
		n, c := faceNormal(g, i)
		if n.Dot(c) <= 0 {
			t.Fatalf("triangle %d faces inward", i/3)
		}
	}
	if _, ok := g.Planar(); ok {
		t.Fatalf("box must not be planar")
	}
}

func TestPlaneFacesPlusZ(t *testing.T) {
	g := PlaneGeometry(5, 5, 5, 5)
	if len(g.Vertices) != 36 || len(g.Indices) != 150 {
		t.Fatalf("unexpected sizes %d/%d", len(g.Vertices), len(g.Indices))
	}
	for i := 0; i < len(g.Indices); i += 3 {
		n, _ := faceNormal(g, i)
		if n.Z() <= 0 || n.X() != 0 || n.Y() != 0 {
			t.Fatalf("triangle %d normal %v", i/3, n)
		}
	}
	if n, ok := g.Planar(); !ok || n != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("expected planar +Z, got %v %v", n, ok)
	}
}

func TestLightHelperFollowsLight(t *testing.T) {
	h := NewLightHelper(0.5)
	l := DirectionalLight{Color: Hex(0xffcc00), Intensity: 1, Position: mgl32.Vec3{0, 2, 2}}
	h.Update(l)
	v := h.Mesh.Geometry.Vertices
	if v[4].Pos != l.Position {
		t.Fatalf("expected line start at light, got %v", v[4].Pos)
	}
	if v[5].Pos.Sub(l.Target).Len() > 1e-5 {
		t.Fatalf("expected line end at target, got %v", v[5].Pos)
	}
	if h.Mesh.Material.Color != l.Color {
		t.Fatalf("expected helper color %v, got %v", l.Color, h.Mesh.Material.Color)
	}
	for i := 0; i < 4; i++ {
		if d := v[i].Pos.Sub(l.Position).Dot(l.Direction()); d > 1e-5 || d < -1e-5 {
			t.Fatalf("square corner %d off the light plane", i)
		}
	}
}
