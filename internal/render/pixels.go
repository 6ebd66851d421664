// Package render provides a software canvas that rasterizes the compositor's
// fill commands into an RGBA byte buffer. The buffer is display-agnostic; the
// ebiten host uploads it as a texture, and tests read it directly.
package render

import "image/color"

// PixelCanvas rasterizes fill-rectangle commands into a row-major RGBA buffer.
type PixelCanvas struct {
	w, h int
	buf  []byte
}

// NewPixelCanvas allocates a canvas of the given pixel dimensions.
func NewPixelCanvas(w, h int) *PixelCanvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &PixelCanvas{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Size returns the canvas dimensions.
func (p *PixelCanvas) Size() (int, int) { return p.w, p.h }

// Pixels exposes the backing RGBA buffer for texture upload.
func (p *PixelCanvas) Pixels() []byte { return p.buf }

// Clear fills the whole canvas with an opaque color.
func (p *PixelCanvas) Clear(c color.RGBA) {
	for i := 0; i < len(p.buf); i += 4 {
		p.buf[i+0] = c.R
		p.buf[i+1] = c.G
		p.buf[i+2] = c.B
		p.buf[i+3] = 255
	}
}

// FillRect blends an axis-aligned rectangle over the canvas. The rectangle is
// clipped to the canvas bounds; the color's alpha selects source-over
// coverage, with 255 overwriting outright.
func (p *PixelCanvas) FillRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := x, y
	x1, y1 := x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > p.w {
		x1 = p.w
	}
	if y1 > p.h {
		y1 = p.h
	}
	if x0 >= x1 || y0 >= y1 || c.A == 0 {
		return
	}
	for py := y0; py < y1; py++ {
		base := (py*p.w + x0) * 4
		for px := x0; px < x1; px++ {
			if c.A == 255 {
				p.buf[base+0] = c.R
				p.buf[base+1] = c.G
				p.buf[base+2] = c.B
				p.buf[base+3] = 255
			} else {
				a := int(c.A)
				inv := 255 - a
				p.buf[base+0] = uint8((int(c.R)*a + int(p.buf[base+0])*inv) / 255)
				p.buf[base+1] = uint8((int(c.G)*a + int(p.buf[base+1])*inv) / 255)
				p.buf[base+2] = uint8((int(c.B)*a + int(p.buf[base+2])*inv) / 255)
				p.buf[base+3] = 255
			}
			base += 4
		}
	}
}

// At returns the canvas color at (x, y); out-of-range reads are transparent
// black. Used by tests.
func (p *PixelCanvas) At(x, y int) color.RGBA {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return color.RGBA{}
	}
	base := (y*p.w + x) * 4
	return color.RGBA{R: p.buf[base], G: p.buf[base+1], B: p.buf[base+2], A: p.buf[base+3]}
}
