package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Kind names a generated texture pattern.
type Kind string

const (
	KindWood     Kind = "wood"
	KindDarkWood Kind = "dark-wood"
	KindBricks   Kind = "bricks"
)

// DefaultSize is the edge length of generated textures.
const DefaultSize = 256

// Procedural generates a size x size texture of the given kind.
func Procedural(kind Kind, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("procedural %s: invalid size %d", kind, size)
	}
	switch kind {
	case KindWood:
		return wood(size, color.RGBA{196, 140, 84, 255}, color.RGBA{140, 92, 50, 255}), nil
	case KindDarkWood:
		return wood(size, color.RGBA{120, 74, 40, 255}, color.RGBA{74, 42, 22, 255}), nil
	case KindBricks:
		return bricks(size), nil
	default:
		return nil, fmt.Errorf("unknown procedural texture %q", kind)
	}
}

// hash2 is a small integer hash giving a stable value in [0,1).
func hash2(x, y int) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h&0xffffff) / float64(0x1000000)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(p, q uint8) uint8 {
		return uint8(math.Round(float64(p) + (float64(q)-float64(p))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

// wood draws vertical grain lines with a slow wobble.
func wood(size int, light, dark color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	const rings = 12.0
	for y := 0; y < size; y++ {
		fy := float64(y) / float64(size)
		for x := 0; x < size; x++ {
			fx := float64(x) / float64(size)
			wobble := 0.04*math.Sin(fy*2*math.Pi*3) + 0.015*math.Sin(fy*2*math.Pi*11+fx*5)
			grain := 0.5 + 0.5*math.Sin((fx+wobble)*rings*2*math.Pi)
			grain = math.Pow(grain, 3)
			grain += (hash2(x, y) - 0.5) * 0.08
			img.SetRGBA(x, y, lerpColor(light, dark, grain))
		}
	}
	return img
}

// bricks draws a running bond of 4 rows by 2 bricks per tile.
func bricks(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	brick := color.RGBA{150, 62, 44, 255}
	brickDark := color.RGBA{110, 42, 30, 255}
	mortar := color.RGBA{190, 184, 172, 255}

	rowH := size / 4
	brickW := size / 2
	gap := max(1, size/64)
	for y := 0; y < size; y++ {
		row := y / max(1, rowH)
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < size; x++ {
			bx := (x + offset) % size
			inMortar := y%max(1, rowH) < gap || bx%max(1, brickW) < gap
			if inMortar {
				img.SetRGBA(x, y, mortar)
				continue
			}
			id := bx / max(1, brickW)
			shade := 0.35*hash2(id, row) + (hash2(x, y)-0.5)*0.15
			img.SetRGBA(x, y, lerpColor(brick, brickDark, shade))
		}
	}
	return img
}
