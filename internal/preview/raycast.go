package preview

import (
	"math"

	"deskscene/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half line from Origin along unit Dir.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at distance t.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// triangle is a world-space triangle with its per-vertex attributes.
type triangle struct {
	p0, e1, e2 mgl32.Vec3
	n          [3]mgl32.Vec3
	uv         [3]mgl32.Vec2
	face       mgl32.Vec3
}

// target is one drawable in world space with a bounding box for early rejection.
type target struct {
	tris     []triangle
	min, max mgl32.Vec3
	object   int // index into Scene.Objects, or -1
	lamp     int // index into Scene.Lamps, or -1
}

func newTarget(m geometry.Mesh, model mgl32.Mat4) target {
	normalMat := model.Mat3().Inv().Transpose()
	t := target{object: -1, lamp: -1}
	first := true
	for _, tri := range m.Triangles() {
		var p [3]mgl32.Vec3
		var wt triangle
		for k, v := range tri {
			p[k] = model.Mul4x1(v.Position.Vec4(1)).Vec3()
			wt.n[k] = normalMat.Mul3x1(v.Normal).Normalize()
			wt.uv[k] = v.UV
			if first {
				t.min, t.max = p[k], p[k]
				first = false
			}
			for a := 0; a < 3; a++ {
				t.min[a] = min(t.min[a], p[k][a])
				t.max[a] = max(t.max[a], p[k][a])
			}
		}
		wt.p0 = p[0]
		wt.e1 = p[1].Sub(p[0])
		wt.e2 = p[2].Sub(p[0])
		wt.face = wt.e1.Cross(wt.e2)
		t.tris = append(t.tris, wt)
	}
	return t
}

// hitsBox is the slab test against the target's bounds.
func (t *target) hitsBox(r Ray, maxT float32) bool {
	tmin, tmax := float32(0), maxT
	for a := 0; a < 3; a++ {
		if r.Dir[a] == 0 {
			if r.Origin[a] < t.min[a] || r.Origin[a] > t.max[a] {
				return false
			}
			continue
		}
		inv := 1 / r.Dir[a]
		t0 := (t.min[a] - r.Origin[a]) * inv
		t1 := (t.max[a] - r.Origin[a]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = max(tmin, t0)
		tmax = min(tmax, t1)
		if tmax < tmin {
			return false
		}
	}
	return true
}

const (
	hitEpsilon = 1e-6
	// barycentric slack so rays through a shared edge hit one of its triangles
	edgeEpsilon = 1e-5
)

// intersect is Möller–Trumbore with back faces culled, like the GL pass.
func (tr *triangle) intersect(r Ray) (t, u, v float32, ok bool) {
	if tr.face.Dot(r.Dir) >= 0 {
		return 0, 0, 0, false
	}
	pvec := r.Dir.Cross(tr.e2)
	det := tr.e1.Dot(pvec)
	if float32(math.Abs(float64(det))) < hitEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1 / det
	tvec := r.Origin.Sub(tr.p0)
	u = tvec.Dot(pvec) * invDet
	if u < -edgeEpsilon || u > 1+edgeEpsilon {
		return 0, 0, 0, false
	}
	qvec := tvec.Cross(tr.e1)
	v = r.Dir.Dot(qvec) * invDet
	if v < -edgeEpsilon || u+v > 1+edgeEpsilon {
		return 0, 0, 0, false
	}
	t = tr.e2.Dot(qvec) * invDet
	if t <= hitEpsilon {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// Hit describes the nearest surface along a ray.
type Hit struct {
	T      float32
	Point  mgl32.Vec3
	Normal mgl32.Vec3
	UV     mgl32.Vec2
	Object int
	Lamp   int
}

func (tr *triangle) hit(r Ray, t, u, v float32) Hit {
	w := 1 - u - v
	n := tr.n[0].Mul(w).Add(tr.n[1].Mul(u)).Add(tr.n[2].Mul(v))
	uv := tr.uv[0].Mul(w).Add(tr.uv[1].Mul(u)).Add(tr.uv[2].Mul(v))
	return Hit{T: t, Point: r.At(t), Normal: n, UV: uv}
}
