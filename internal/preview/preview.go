// Package preview renders the scene on the CPU with the same lighting as the GPU path.
// It needs no window or GL context.
package preview

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"

	"deskscene/internal/lighting"
	"deskscene/internal/scene"
	"deskscene/internal/texture"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

// Renderer traces one primary ray per pixel.
type Renderer struct {
	state    *scene.State
	targets  []target
	samplers map[string]*texture.Sampler
	workers  int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWorkers caps the number of rows shaded at once. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Renderer) { r.workers = n }
}

// New prepares a renderer for state. textures holds upload-ready images keyed
// like Scene.Textures; a missing key shades that object white.
func New(state *scene.State, textures map[string]*image.RGBA, opts ...Option) *Renderer {
	r := &Renderer{
		state:    state,
		samplers: make(map[string]*texture.Sampler, len(textures)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}

	for key, img := range textures {
		r.samplers[key] = texture.NewSampler(img)
	}
	for i, obj := range state.Scene.Objects {
		t := newTarget(obj.Mesh, obj.Model)
		t.object = i
		r.targets = append(r.targets, t)
	}
	for i, lamp := range state.Scene.Lamps {
		t := newTarget(lamp.Mesh, lamp.Model)
		t.lamp = i
		r.targets = append(r.targets, t)
	}
	return r
}

// Render shades a width x height image from the state's current camera.
// Row 0 is the top of the picture.
func (r *Renderer) Render(ctx context.Context, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", width, height)
	}

	proj := *r.state.Projection
	proj.SetViewport(width, height)
	view := r.state.Camera.ViewMatrix()
	invVP := proj.Matrix(r.state.Camera.Zoom).Mul4(view).Inv()
	eye := r.state.Camera.Position
	lights := r.state.Scene.Lights()

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ndcY := 1 - 2*(float32(y)+0.5)/float32(height)
			for x := 0; x < width; x++ {
				ndcX := 2*(float32(x)+0.5)/float32(width) - 1
				c := r.Shade(PrimaryRay(invVP, ndcX, ndcY), eye, lights)
				img.SetRGBA(x, y, toRGBA(c))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("preview render: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("preview render: %w", err)
	}
	return img, nil
}

// PrimaryRay unprojects an NDC position through the near and far planes.
func PrimaryRay(invViewProj mgl32.Mat4, ndcX, ndcY float32) Ray {
	near := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	n := near.Vec3().Mul(1 / near.W())
	f := far.Vec3().Mul(1 / far.W())
	return Ray{Origin: n, Dir: f.Sub(n).Normalize()}
}

// Trace returns the nearest front-facing hit along r.
func (r *Renderer) Trace(ray Ray) (Hit, bool) {
	best := Hit{T: float32(math.Inf(1))}
	found := false
	for ti := range r.targets {
		tg := &r.targets[ti]
		if !tg.hitsBox(ray, best.T) {
			continue
		}
		for i := range tg.tris {
			t, u, v, ok := tg.tris[i].intersect(ray)
			if !ok || t >= best.T {
				continue
			}
			best = tg.tris[i].hit(ray, t, u, v)
			best.Object, best.Lamp = tg.object, tg.lamp
			found = true
		}
	}
	return best, found
}

// Shade returns the unclamped color seen along ray. Misses are black.
func (r *Renderer) Shade(ray Ray, eye mgl32.Vec3, lights []lighting.Light) mgl32.Vec4 {
	hit, ok := r.Trace(ray)
	if !ok {
		return mgl32.Vec4{0, 0, 0, 1}
	}
	sc := r.state.Scene
	if hit.Lamp >= 0 {
		return sc.Lamps[hit.Lamp].Light.Color.Vec4(1)
	}

	base := mgl32.Vec3{1, 1, 1}
	if s, ok := r.samplers[sc.Objects[hit.Object].Texture]; ok {
		uv := mgl32.Vec2{hit.UV[0] * sc.UVScale[0], hit.UV[1] * sc.UVScale[1]}
		base = s.Sample(uv)
	}
	return lighting.Evaluate(sc.Material, lighting.Surface{
		Position:  hit.Point,
		Normal:    hit.Normal,
		UV:        hit.UV,
		BaseColor: base,
	}, eye, lights)
}

func toRGBA(c mgl32.Vec4) color.RGBA {
	conv := func(f float32) uint8 {
		f = mgl32.Clamp(f, 0, 1)
		return uint8(f*255 + 0.5)
	}
	return color.RGBA{conv(c[0]), conv(c[1]), conv(c[2]), conv(c[3])}
}
