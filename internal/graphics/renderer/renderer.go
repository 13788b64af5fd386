package renderer

import (
	"fmt"

	"deskscene/internal/profiling"
	"deskscene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	state       *scene.State
	clearColor  mgl32.Vec4
}

// NewRenderer configures GL state and initializes the renderables in order.
// Renderables that were initialized are disposed again if a later one fails.
func NewRenderer(state *scene.State, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		state:      state,
		clearColor: mgl32.Vec4{0, 0, 0, 1},
	}

	for _, rend := range rs {
		if err := rend.Init(); err != nil {
			r.Dispose()
			return nil, fmt.Errorf("init renderable %T: %w", rend, err)
		}
		r.renderables = append(r.renderables, rend)
	}

	return r, nil
}

// Render draws one frame from the current state
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("renderer.Render")()

	c := r.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	frame := r.state.Frame()
	ctx := RenderContext{
		State: r.state,
		DT:    dt,
		View:  frame.View,
		Proj:  frame.Proj,
		Eye:   frame.Eye,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// UpdateViewport resizes the GL viewport and the projection
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.state.Resize(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
