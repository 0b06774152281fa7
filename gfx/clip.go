package gfx

import "github.com/go-gl/mathgl/mgl32"

// nearDist is the signed distance of a clip-space point to the near plane
// (z >= -w is inside).
func nearDist(p mgl32.Vec4) float32 { return p.Z() + p.W() }

func lerp4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

// clipNear clips a convex clip-space polygon against the near plane
// (Sutherland-Hodgman) and returns the result in out[:0].
func clipNear(in, out []mgl32.Vec4) []mgl32.Vec4 {
	out = out[:0]
	n := len(in)
	for i := 0; i < n; i++ {
		a := in[i]
		b := in[(i+1)%n]
		da, db := nearDist(a), nearDist(b)
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, lerp4(a, b, da/(da-db)))
		}
	}
	return out
}

// clipSegmentNear clips a clip-space segment against the near plane.
func clipSegmentNear(a, b mgl32.Vec4) (mgl32.Vec4, mgl32.Vec4, bool) {
	da, db := nearDist(a), nearDist(b)
	switch {
	case da < 0 && db < 0:
		return a, b, false
	case da < 0:
		a = lerp4(a, b, da/(da-db))
	case db < 0:
		b = lerp4(a, b, da/(da-db))
	}
	return a, b, true
}

// clipSegmentRect clips the 2D segment (x0,y0)-(x1,y1) to the rectangle
// [minX,maxX]×[minY,maxY] (Liang-Barsky) and returns the parameter range.
func clipSegmentRect(x0, y0, x1, y1, minX, minY, maxX, maxY float32) (t0, t1 float32, ok bool) {
	t0, t1 = 0, 1
	dx, dy := x1-x0, y1-y0
	edges := [4][2]float32{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return t0, t1, true
}
