package lamps

import (
	"fmt"

	"deskscene/internal/graphics"
	"deskscene/internal/graphics/renderer"
	"deskscene/internal/graphics/shaders"
	"deskscene/internal/profiling"
	"deskscene/internal/scene"
)

// Lamps draws the unlit light markers
type Lamps struct {
	scene  *scene.Scene
	shader *graphics.Shader
	meshes []*graphics.Mesh
}

// NewLamps creates the lamp pass for s
func NewLamps(s *scene.Scene) *Lamps {
	return &Lamps{scene: s}
}

// Init compiles the lamp shader and uploads the marker meshes
func (l *Lamps) Init() error {
	var err error
	l.shader, err = graphics.NewShader(shaders.LampVertexShader, shaders.LampFragmentShader)
	if err != nil {
		return fmt.Errorf("lamp shader: %w", err)
	}
	for _, lamp := range l.scene.Lamps {
		l.meshes = append(l.meshes, graphics.NewMesh(lamp.Mesh))
	}
	return nil
}

// Render draws every lamp in its light's color
func (l *Lamps) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.lamps")()

	l.shader.Use()
	l.shader.SetMat4("view", ctx.View)
	l.shader.SetMat4("projection", ctx.Proj)
	for i, lamp := range l.scene.Lamps {
		l.shader.SetMat4("model", lamp.Model)
		l.shader.SetVec3("lampColor", lamp.Light.Color)
		l.meshes[i].Draw()
	}
}

// Dispose releases GL resources
func (l *Lamps) Dispose() {
	for _, m := range l.meshes {
		m.Delete()
	}
	l.meshes = nil
	if l.shader != nil {
		l.shader.Delete()
	}
}

// SetViewport is a no-op
func (l *Lamps) SetViewport(width, height int) {}
