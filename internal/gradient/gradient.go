// Package gradient pre-bakes a continuous-noise color field into a fixed-size
// texture so per-cell color sampling is an O(1) lookup at render time.
package gradient

import (
	"errors"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// ErrInvalidSize reports a non-positive cache size at construction.
var ErrInvalidSize = errors.New("gradient: size must be positive")

// ErrEmptyPalette reports a palette with no color stops.
var ErrEmptyPalette = errors.New("gradient: palette must have at least one stop")

// Cache holds a size x size field of pre-baked RGB values. It is immutable
// after construction except through Regenerate, so it can be shared read-only
// by any number of entities. For a fixed seed and palette, Lookup is a pure
// function of its coordinates.
type Cache struct {
	size       int
	noiseScale float64
	seed       int64
	palette    []color.RGBA
	stops      []colorful.Color
	texels     []color.RGBA
	nanSamples int
}

// New pre-bakes the texture: every texel samples seeded simplex noise at
// (x*noiseScale, y*noiseScale) and maps the [0,1] value through piecewise
// linear interpolation across the palette, treating the stops as evenly
// spaced and wrapping from the last back to the first. The O(size²) cost is
// paid here, once.
func New(size int, palette []color.RGBA, noiseScale float64, seed int64) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	stops := make([]colorful.Color, len(palette))
	for i, p := range palette {
		stops[i] = colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
	}
	c := &Cache{
		size:       size,
		noiseScale: noiseScale,
		seed:       seed,
		palette:    append([]color.RGBA(nil), palette...),
		stops:      stops,
		texels:     make([]color.RGBA, size*size),
	}
	c.bake(seed)
	return c, nil
}

func (c *Cache) bake(seed int64) {
	c.seed = seed
	c.nanSamples = 0
	noise := opensimplex.NewNormalized(seed)
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			v := noise.Eval2(float64(x)*c.noiseScale, float64(y)*c.noiseScale)
			if math.IsNaN(v) {
				// Recover locally: a bad sample contributes the first
				// palette stop instead of poisoning the texture.
				v = 0
				c.nanSamples++
			}
			c.texels[y*c.size+x] = c.colorAt(v)
		}
	}
}

// colorAt maps v in [0,1] through the wrapped palette ramp.
func (c *Cache) colorAt(v float64) color.RGBA {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	n := len(c.stops)
	if n == 1 {
		return c.palette[0]
	}
	pos := v * float64(n)
	i := int(pos) % n
	t := pos - math.Floor(pos)
	next := (i + 1) % n
	r, g, b := c.stops[i].BlendRgb(c.stops[next], t).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Lookup maps a screen coordinate into cache space by tiling modulo the
// texture size and returns the stored color. O(1), no recomputation.
func (c *Cache) Lookup(screenX, screenY int) color.RGBA {
	x := ((screenX % c.size) + c.size) % c.size
	y := ((screenY % c.size) + c.size) % c.size
	return c.texels[y*c.size+x]
}

// LookupAnimated offsets the vertical coordinate by timeOffset, producing a
// scrolling animation without re-sampling the noise field.
func (c *Cache) LookupAnimated(screenX, screenY, timeOffset int) color.RGBA {
	return c.Lookup(screenX, screenY+timeOffset)
}

// Regenerate replaces the whole texture using a new seed. Palette, scale and
// size are retained. Not safe to call while other goroutines read the cache;
// the frame-driven host model serializes this naturally.
func (c *Cache) Regenerate(seed int64) {
	c.bake(seed)
}

// Size returns the texture edge length.
func (c *Cache) Size() int { return c.size }

// Seed returns the seed of the current bake.
func (c *Cache) Seed() int64 { return c.seed }

// NaNSamples counts noise samples in the current bake that were replaced by
// the fallback color. Exposed so the host can log a one-shot diagnostic.
func (c *Cache) NaNSamples() int { return c.nanSamples }
