package graphics

import (
	"deskscene/internal/geometry"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is a geometry mesh uploaded to a VAO/VBO pair
type Mesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewMesh uploads m with attributes 0 = position, 1 = normal, 2 = uv
func NewMesh(m geometry.Mesh) *Mesh {
	mesh := &Mesh{vertexCount: int32(m.VertexCount())}

	gl.GenVertexArrays(1, &mesh.vao)
	gl.BindVertexArray(mesh.vao)

	gl.GenBuffers(1, &mesh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	if len(m.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)
	}

	stride := int32(geometry.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, geometry.FloatsPerPosition, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, geometry.FloatsPerNormal, gl.FLOAT, false, stride, geometry.FloatsPerPosition*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, geometry.FloatsPerUV, gl.FLOAT, false, stride, (geometry.FloatsPerPosition+geometry.FloatsPerNormal)*4)

	gl.BindVertexArray(0)
	return mesh
}

// Draw issues the triangle draw call
func (m *Mesh) Draw() {
	if m.vertexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	gl.BindVertexArray(0)
}

// Delete releases the GL buffers
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}
