package objects

import (
	"fmt"

	"deskscene/internal/graphics"
	"deskscene/internal/graphics/renderer"
	"deskscene/internal/graphics/shaders"
	"deskscene/internal/lighting"
	"deskscene/internal/profiling"
	"deskscene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Objects draws the textured scene geometry with Phong lighting
type Objects struct {
	scene          *scene.Scene
	textureSize    int
	maxTextureSize int

	shader   *graphics.Shader
	meshes   []*graphics.Mesh
	textures map[string]uint32
}

// NewObjects creates the object pass for s. Generated textures are
// textureSize square; loaded ones are capped at maxTextureSize.
func NewObjects(s *scene.Scene, textureSize, maxTextureSize int) *Objects {
	return &Objects{
		scene:          s,
		textureSize:    textureSize,
		maxTextureSize: maxTextureSize,
		textures:       make(map[string]uint32),
	}
}

// Init compiles the shader and uploads meshes and textures
func (o *Objects) Init() (err error) {
	defer func() {
		if err != nil {
			o.Dispose()
		}
	}()

	o.shader, err = graphics.NewShader(shaders.ObjectVertexShader, shaders.ObjectFragmentShader)
	if err != nil {
		return fmt.Errorf("object shader: %w", err)
	}

	images, err := o.scene.LoadTextures(o.textureSize, o.maxTextureSize)
	if err != nil {
		return err
	}
	for key, img := range images {
		id, err := graphics.UploadTexture(img)
		if err != nil {
			return fmt.Errorf("texture %s: %w", key, err)
		}
		o.textures[key] = id
	}

	for _, obj := range o.scene.Objects {
		o.meshes = append(o.meshes, graphics.NewMesh(obj.Mesh))
	}
	return nil
}

// Render draws every object
func (o *Objects) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.objects")()

	o.shader.Use()
	o.shader.SetMat4("view", ctx.View)
	o.shader.SetMat4("projection", ctx.Proj)
	o.shader.SetVec3("viewPosition", ctx.Eye)
	o.setLighting(o.scene.Material, o.scene.Lights())
	o.shader.SetVec2("uvScale", o.scene.UVScale)
	o.shader.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	for i, obj := range o.scene.Objects {
		o.shader.SetMat4("model", obj.Model)
		gl.BindTexture(gl.TEXTURE_2D, o.textures[obj.Texture])
		o.meshes[i].Draw()
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (o *Objects) setLighting(m lighting.Material, lights []lighting.Light) {
	o.shader.SetFloat("ambientStrength", m.AmbientStrength)
	o.shader.SetFloat("specularStrength", m.SpecularStrength)
	o.shader.SetFloat("shininess", m.Shininess)

	n := min(len(lights), lighting.MaxLights)
	o.shader.SetInt("lightCount", int32(n))
	for i, l := range lights[:n] {
		o.shader.SetVec3(fmt.Sprintf("lights[%d].position", i), l.Position)
		o.shader.SetVec3(fmt.Sprintf("lights[%d].color", i), l.Color)
	}
}

// Dispose releases GL resources
func (o *Objects) Dispose() {
	for _, m := range o.meshes {
		m.Delete()
	}
	o.meshes = nil
	for key, id := range o.textures {
		graphics.DeleteTexture(id)
		delete(o.textures, key)
	}
	if o.shader != nil {
		o.shader.Delete()
		o.shader = nil
	}
}

// SetViewport is a no-op; the projection comes from the render context
func (o *Objects) SetViewport(width, height int) {}
