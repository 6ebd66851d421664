package render

import (
	"image/color"
	"testing"
)

func TestFillRectWritesAndClips(t *testing.T) {
	p := NewPixelCanvas(8, 8)
	p.Clear(color.RGBA{})
	red := color.RGBA{R: 200, G: 10, B: 10, A: 255}
	p.FillRect(6, 6, 4, 4, red)

	if got := p.At(6, 6); got.R != 200 {
		t.Fatalf("in-bounds pixel = %v, want red", got)
	}
	if got := p.At(7, 7); got.R != 200 {
		t.Fatalf("corner pixel = %v, want red", got)
	}
	if got := p.At(5, 5); got.R != 0 {
		t.Fatalf("pixel outside rect = %v, want black", got)
	}
	// Out-of-range reads are transparent, and fully off-canvas fills are no-ops.
	p.FillRect(-10, -10, 4, 4, red)
	if got := p.At(0, 0); got.R != 0 {
		t.Fatalf("off-canvas fill leaked to (0,0): %v", got)
	}
	if got := p.At(8, 8); (got != color.RGBA{}) {
		t.Fatalf("out-of-range At = %v, want zero", got)
	}
}

func TestFillRectAlphaBlends(t *testing.T) {
	p := NewPixelCanvas(2, 2)
	p.Clear(color.RGBA{})
	p.FillRect(0, 0, 2, 2, color.RGBA{R: 255, A: 128})
	got := p.At(0, 0)
	if got.R < 120 || got.R > 135 {
		t.Fatalf("half-alpha red over black = %d, want ~128", got.R)
	}
	if got.A != 255 {
		t.Fatalf("canvas alpha = %d, want opaque", got.A)
	}
}

func TestClearFloodsCanvas(t *testing.T) {
	p := NewPixelCanvas(4, 4)
	bg := color.RGBA{R: 3, G: 7, B: 11, A: 255}
	p.Clear(bg)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := p.At(x, y); got != bg {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, bg)
			}
		}
	}
}
