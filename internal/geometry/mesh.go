// Package geometry builds the interleaved triangle meshes the scene is made of.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout: position.xyz, normal.xyz, uv.st
const (
	FloatsPerPosition = 3
	FloatsPerNormal   = 3
	FloatsPerUV       = 2
	FloatsPerVertex   = FloatsPerPosition + FloatsPerNormal + FloatsPerUV
)

// Mesh is a non-indexed triangle list with counter-clockwise front faces.
type Mesh struct {
	Vertices []float32
}

// Vertex is one decoded mesh vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Triangle is three consecutive vertices of a mesh.
type Triangle [3]Vertex

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Vertex decodes vertex i.
func (m Mesh) Vertex(i int) Vertex {
	v := m.Vertices[i*FloatsPerVertex : (i+1)*FloatsPerVertex]
	return Vertex{
		Position: mgl32.Vec3{v[0], v[1], v[2]},
		Normal:   mgl32.Vec3{v[3], v[4], v[5]},
		UV:       mgl32.Vec2{v[6], v[7]},
	}
}

// Triangles decodes the mesh into triangles.
func (m Mesh) Triangles() []Triangle {
	n := m.VertexCount() / 3
	tris := make([]Triangle, n)
	for i := 0; i < n; i++ {
		tris[i] = Triangle{m.Vertex(i * 3), m.Vertex(i*3 + 1), m.Vertex(i*3 + 2)}
	}
	return tris
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m Mesh) Bounds() (min, max mgl32.Vec3) {
	if m.VertexCount() == 0 {
		return
	}
	min = m.Vertex(0).Position
	max = min
	for i := 1; i < m.VertexCount(); i++ {
		p := m.Vertex(i).Position
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}
	return
}

// Merge concatenates meshes into a single draw.
func Merge(meshes ...Mesh) Mesh {
	total := 0
	for _, m := range meshes {
		total += len(m.Vertices)
	}
	out := make([]float32, 0, total)
	for _, m := range meshes {
		out = append(out, m.Vertices...)
	}
	return Mesh{Vertices: out}
}

type builder struct {
	verts []float32
}

func (b *builder) vertex(p, n mgl32.Vec3, uv mgl32.Vec2) {
	b.verts = append(b.verts, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
}

// quad emits a, b, c, d (CCW seen from outside) as two triangles.
func (b *builder) quad(a, bb, c, d, n mgl32.Vec3) {
	b.vertex(a, n, mgl32.Vec2{0, 0})
	b.vertex(bb, n, mgl32.Vec2{1, 0})
	b.vertex(c, n, mgl32.Vec2{1, 1})
	b.vertex(a, n, mgl32.Vec2{0, 0})
	b.vertex(c, n, mgl32.Vec2{1, 1})
	b.vertex(d, n, mgl32.Vec2{0, 1})
}

func (b *builder) mesh() Mesh {
	return Mesh{Vertices: b.verts}
}

// Box returns an axis-aligned box spanning min..max. Each face maps the full 0..1 UV square.
func Box(min, max mgl32.Vec3) Mesh {
	x0, y0, z0 := min[0], min[1], min[2]
	x1, y1, z1 := max[0], max[1], max[2]

	b := &builder{verts: make([]float32, 0, 36*FloatsPerVertex)}
	// +X
	b.quad(mgl32.Vec3{x1, y0, z1}, mgl32.Vec3{x1, y0, z0}, mgl32.Vec3{x1, y1, z0}, mgl32.Vec3{x1, y1, z1}, mgl32.Vec3{1, 0, 0})
	// -X
	b.quad(mgl32.Vec3{x0, y0, z0}, mgl32.Vec3{x0, y0, z1}, mgl32.Vec3{x0, y1, z1}, mgl32.Vec3{x0, y1, z0}, mgl32.Vec3{-1, 0, 0})
	// +Y
	b.quad(mgl32.Vec3{x0, y1, z1}, mgl32.Vec3{x1, y1, z1}, mgl32.Vec3{x1, y1, z0}, mgl32.Vec3{x0, y1, z0}, mgl32.Vec3{0, 1, 0})
	// -Y
	b.quad(mgl32.Vec3{x0, y0, z0}, mgl32.Vec3{x1, y0, z0}, mgl32.Vec3{x1, y0, z1}, mgl32.Vec3{x0, y0, z1}, mgl32.Vec3{0, -1, 0})
	// +Z
	b.quad(mgl32.Vec3{x0, y0, z1}, mgl32.Vec3{x1, y0, z1}, mgl32.Vec3{x1, y1, z1}, mgl32.Vec3{x0, y1, z1}, mgl32.Vec3{0, 0, 1})
	// -Z
	b.quad(mgl32.Vec3{x1, y0, z0}, mgl32.Vec3{x0, y0, z0}, mgl32.Vec3{x0, y1, z0}, mgl32.Vec3{x1, y1, z0}, mgl32.Vec3{0, 0, -1})
	return b.mesh()
}

// Cube returns a unit cube centered on the origin.
func Cube() Mesh {
	return Box(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5})
}

// Plane returns an upward-facing square of half size h at height y.
func Plane(h, y float32) Mesh {
	b := &builder{}
	b.quad(mgl32.Vec3{-h, y, h}, mgl32.Vec3{h, y, h}, mgl32.Vec3{h, y, -h}, mgl32.Vec3{-h, y, -h}, mgl32.Vec3{0, 1, 0})
	return b.mesh()
}

// Pyramid returns a square pyramid with its base at baseY and apex above the origin.
// Side normals are the true face normals.
func Pyramid(halfBase, baseY, apexY float32) Mesh {
	h := halfBase
	apex := mgl32.Vec3{0, apexY, 0}
	corners := [4]mgl32.Vec3{
		{h, baseY, -h},
		{-h, baseY, -h},
		{-h, baseY, h},
		{h, baseY, h},
	}

	b := &builder{verts: make([]float32, 0, 18*FloatsPerVertex)}
	for i := 0; i < 4; i++ {
		p, q := corners[i], corners[(i+1)%4]
		n := q.Sub(p).Cross(apex.Sub(p)).Normalize()
		b.vertex(p, n, mgl32.Vec2{0, 0})
		b.vertex(q, n, mgl32.Vec2{1, 0})
		b.vertex(apex, n, mgl32.Vec2{0.5, 1})
	}
	b.quad(mgl32.Vec3{-h, baseY, -h}, mgl32.Vec3{h, baseY, -h}, mgl32.Vec3{h, baseY, h}, mgl32.Vec3{-h, baseY, h}, mgl32.Vec3{0, -1, 0})
	return b.mesh()
}
