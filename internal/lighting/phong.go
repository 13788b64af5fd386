// Package lighting evaluates the Phong reflection model on the CPU.
//
// The object fragment shader evaluates the same formula with the same
// constants, so Evaluate doubles as the reference for what the GPU draws.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the number of light slots the object shader declares.
const MaxLights = 3

// Light is a point light. It has no falloff.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Rig holds the key, fill and accent lights of the scene.
type Rig struct {
	Key    Light
	Fill   Light
	Accent Light
}

// Lights returns the rig as a slice in key, fill, accent order.
func (r Rig) Lights() []Light {
	return []Light{r.Key, r.Fill, r.Accent}
}

// Material holds the reflection constants shared by every light and surface.
type Material struct {
	AmbientStrength  float32
	SpecularStrength float32
	Shininess        float32
}

// DefaultMaterial returns the constants the scene was tuned with.
func DefaultMaterial() Material {
	return Material{
		AmbientStrength:  0.1,
		SpecularStrength: 0.8,
		Shininess:        16,
	}
}

// Surface is a single shaded sample.
type Surface struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	UV        mgl32.Vec2
	BaseColor mgl32.Vec3
}

// Terms is the per-light breakdown of the Phong sum.
type Terms struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Sum returns ambient+diffuse+specular.
func (t Terms) Sum() mgl32.Vec3 {
	return t.Ambient.Add(t.Diffuse).Add(t.Specular)
}

// Contribution computes one light's terms at fragPos. normal must be unit length.
// A light at or behind the surface plane contributes ambient only.
func Contribution(m Material, normal, fragPos, eye mgl32.Vec3, light Light) Terms {
	terms := Terms{Ambient: light.Color.Mul(m.AmbientStrength)}

	lightDir := light.Position.Sub(fragPos).Normalize()
	diff := normal.Dot(lightDir)
	if diff <= 0 {
		return terms
	}
	terms.Diffuse = light.Color.Mul(diff)

	viewDir := eye.Sub(fragPos).Normalize()
	reflectDir := Reflect(lightDir.Mul(-1), normal)
	spec := viewDir.Dot(reflectDir)
	if spec > 0 {
		factor := float32(math.Pow(float64(spec), float64(m.Shininess)))
		terms.Specular = light.Color.Mul(m.SpecularStrength * factor)
	}
	return terms
}

// Evaluate returns the lit color of s seen from eye. The result is not clamped
// and alpha is always 1.
func Evaluate(m Material, s Surface, eye mgl32.Vec3, lights []Light) mgl32.Vec4 {
	normal := s.Normal.Normalize()

	var phong mgl32.Vec3
	for _, l := range lights {
		phong = phong.Add(Contribution(m, normal, s.Position, eye, l).Sum())
	}

	rgb := mulElem(phong, s.BaseColor)
	return rgb.Vec4(1)
}

// Reflect mirrors incident i about normal n, matching GLSL reflect.
func Reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
