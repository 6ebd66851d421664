// Package compositor turns automaton grids into fill-rectangle draw commands,
// coloring each live cell from a shared gradient cache. The drawing surface is
// an injected capability, keeping the simulation core free of any rendering
// API dependency.
package compositor

import (
	"image/color"

	"caglow/internal/core"
	"caglow/internal/gradient"
	"caglow/internal/lifecycle"
)

// Canvas is the pixel-drawing primitive supplied by the host renderer.
type Canvas interface {
	FillRect(x, y, w, h int, c color.RGBA)
}

// Compositor emits draw commands for grids onto the canvas fixed at
// construction.
type Compositor struct {
	canvas Canvas
}

// New returns a compositor drawing onto the provided canvas.
func New(canvas Canvas) *Compositor {
	return &Compositor{canvas: canvas}
}

// DrawGrid emits one filled rectangle per live cell. Each cell samples the
// gradient at its own screen position with the given vertical time offset, so
// the entity shimmers as the gradient scrolls beneath it. Alpha is applied
// uniformly to every emitted rectangle.
func (cp *Compositor) DrawGrid(g *core.Grid, cache *gradient.Cache, originX, originY, cellSize, timeOffset int, alpha uint8) {
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if !g.Alive(x, y) {
				continue
			}
			px := originX + x*cellSize
			py := originY + y*cellSize
			col := cache.LookupAnimated(px, py, timeOffset)
			col.A = alpha
			cp.canvas.FillRect(px, py, cellSize, cellSize, col)
		}
	}
}

// DrawController draws a lifecycle controller's grid anchored so the pattern
// box lands at (anchorX, anchorY); the controller's margin cells extend
// around the anchor.
func (cp *Compositor) DrawController(c *lifecycle.Controller, cache *gradient.Cache, anchorX, anchorY, timeOffset int) {
	ox, oy := c.GridOffset()
	cp.DrawGrid(c.Grid(), cache, anchorX+ox, anchorY+oy, c.CellSize(), timeOffset, 255)
}
