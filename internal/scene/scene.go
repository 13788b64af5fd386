// Package scene describes the desk scene and the per-run state the frame loop works on.
package scene

import (
	"fmt"
	"image"

	"deskscene/internal/config"
	"deskscene/internal/geometry"
	"deskscene/internal/lighting"
	"deskscene/internal/texture"

	"github.com/go-gl/mathgl/mgl32"
)

// Texture keys
const (
	TextureFrame  = "frame"
	TextureDrawer = "drawer"
	TextureFloor  = "floor"
)

// Object is a textured, lit mesh.
type Object struct {
	Name    string
	Mesh    geometry.Mesh
	Texture string
	Model   mgl32.Mat4
}

// Lamp is the visible marker of a light. Lamps are drawn unlit.
type Lamp struct {
	Name  string
	Mesh  geometry.Mesh
	Model mgl32.Mat4
	Light lighting.Light
}

// TextureSource says where a texture comes from.
type TextureSource struct {
	Path     string
	Fallback texture.Kind
}

// Scene is everything that gets drawn, in draw order.
type Scene struct {
	Objects  []Object
	Lamps    []Lamp
	Rig      lighting.Rig
	Material lighting.Material
	UVScale  mgl32.Vec2
	Textures map[string]TextureSource
}

// lamp marker transforms
const (
	keyLampScale    = 1.0
	fillLampScale   = 1.0
	accentLampScale = 0.75
	keyLampAngle    = 40.0
	fillLampAngle   = 40.0
	accentLampAngle = 10.0
)

// New builds the desk scene from cfg.
func New(cfg *config.Config) *Scene {
	rig := lighting.Rig{
		Key:    lightFrom(cfg.Lighting.Key),
		Fill:   lightFrom(cfg.Lighting.Fill),
		Accent: lightFrom(cfg.Lighting.Accent),
	}

	identity := mgl32.Ident4()
	cube := geometry.Cube()

	return &Scene{
		Objects: []Object{
			{Name: "frame", Mesh: geometry.DeskFrame(), Texture: TextureFrame, Model: identity},
			{Name: "drawer", Mesh: geometry.Drawer(), Texture: TextureDrawer, Model: identity},
			{Name: "floor", Mesh: geometry.Floor(), Texture: TextureFloor, Model: identity},
			{Name: "legs", Mesh: geometry.Legs(), Texture: TextureFrame, Model: identity},
		},
		Lamps: []Lamp{
			{Name: "key", Mesh: cube, Model: LampModel(rig.Key.Position, keyLampScale, keyLampAngle), Light: rig.Key},
			{Name: "fill", Mesh: cube, Model: LampModel(rig.Fill.Position, fillLampScale, fillLampAngle), Light: rig.Fill},
			{Name: "accent", Mesh: geometry.LampPyramid(), Model: LampModel(rig.Accent.Position, accentLampScale, accentLampAngle), Light: rig.Accent},
		},
		Rig: rig,
		Material: lighting.Material{
			AmbientStrength:  cfg.Lighting.AmbientStrength,
			SpecularStrength: cfg.Lighting.SpecularStrength,
			Shininess:        cfg.Lighting.Shininess,
		},
		UVScale: cfg.Scene.UVScale,
		Textures: map[string]TextureSource{
			TextureFrame:  {Path: cfg.Scene.Textures.Frame, Fallback: texture.KindWood},
			TextureDrawer: {Path: cfg.Scene.Textures.Drawer, Fallback: texture.KindDarkWood},
			TextureFloor:  {Path: cfg.Scene.Textures.Floor, Fallback: texture.KindBricks},
		},
	}
}

// LampModel returns translate * scale * rotateY(angleDeg).
// The lamp angles 40/40/10 are degrees. The scene they come from passed the same
// numbers to a radians rotate; degrees are kept on purpose, so do not convert back.
func LampModel(pos mgl32.Vec3, scale, angleDeg float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.Scale3D(scale, scale, scale)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(angleDeg)))
}

// Lights returns the rig in shader slot order.
func (s *Scene) Lights() []lighting.Light {
	return s.Rig.Lights()
}

// LoadTextures resolves every texture source to an upload-ready image.
func (s *Scene) LoadTextures(size, maxSize int) (map[string]*image.RGBA, error) {
	out := make(map[string]*image.RGBA, len(s.Textures))
	for key, src := range s.Textures {
		img, err := texture.Resolve(src.Path, src.Fallback, size, maxSize)
		if err != nil {
			return nil, fmt.Errorf("texture %s: %w", key, err)
		}
		out[key] = img
	}
	return out, nil
}

func lightFrom(c config.LightConfig) lighting.Light {
	return lighting.Light{Position: c.Position, Color: c.Color}
}
