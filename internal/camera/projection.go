package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects the projection type.
type Mode int

const (
	Perspective Mode = iota
	Orthographic
)

func (m Mode) String() string {
	if m == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Projection holds the viewport aspect and clip planes
type Projection struct {
	Mode        Mode
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
	// OrthoHalfExtent is the half width and height of the orthographic volume
	OrthoHalfExtent float32
}

func NewProjection(width, height int) *Projection {
	p := &Projection{
		Mode:            Perspective,
		AspectRatio:     1,
		NearPlane:       0.1,
		FarPlane:        100.0,
		OrthoHalfExtent: 5.0,
	}
	p.SetViewport(width, height)
	return p
}

// Matrix returns the projection matrix. zoom is the vertical FOV in degrees
// and is ignored in orthographic mode.
func (p *Projection) Matrix(zoom float32) mgl32.Mat4 {
	if p.Mode == Orthographic {
		h := p.OrthoHalfExtent
		return mgl32.Ortho(-h, h, -h, h, p.NearPlane, p.FarPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(zoom), p.AspectRatio, p.NearPlane, p.FarPlane)
}

// SetViewport updates the aspect ratio. Degenerate sizes (minimized window) are ignored.
func (p *Projection) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.AspectRatio = float32(width) / float32(height)
}
