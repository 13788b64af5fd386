package texture

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sampler reads an upload-ready image the way a GL_REPEAT, GL_LINEAR sampler does.
// Row 0 of the image is v=0.
type Sampler struct {
	img  *image.RGBA
	w, h int
}

// NewSampler wraps img. img must not be modified while the sampler is in use.
func NewSampler(img *image.RGBA) *Sampler {
	return &Sampler{img: img, w: img.Bounds().Dx(), h: img.Bounds().Dy()}
}

// Sample returns the bilinearly filtered color at uv, each channel in [0,1].
func (s *Sampler) Sample(uv mgl32.Vec2) mgl32.Vec3 {
	if s.w == 0 || s.h == 0 {
		return mgl32.Vec3{}
	}
	x := float64(uv[0])*float64(s.w) - 0.5
	y := float64(uv[1])*float64(s.h) - 0.5
	x0f, y0f := math.Floor(x), math.Floor(y)
	fx, fy := float32(x-x0f), float32(y-y0f)
	x0, y0 := wrap(int(x0f), s.w), wrap(int(y0f), s.h)
	x1, y1 := wrap(x0+1, s.w), wrap(y0+1, s.h)

	c00 := s.texel(x0, y0)
	c10 := s.texel(x1, y0)
	c01 := s.texel(x0, y1)
	c11 := s.texel(x1, y1)

	top := c00.Mul(1 - fx).Add(c10.Mul(fx))
	bottom := c01.Mul(1 - fx).Add(c11.Mul(fx))
	return top.Mul(1 - fy).Add(bottom.Mul(fy))
}

func (s *Sampler) texel(x, y int) mgl32.Vec3 {
	i := y*s.img.Stride + x*4
	p := s.img.Pix[i : i+3 : i+3]
	return mgl32.Vec3{float32(p[0]) / 255, float32(p[1]) / 255, float32(p[2]) / 255}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
