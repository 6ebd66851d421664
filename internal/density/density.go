// Package density provides procedural seeding and corrective maintenance for
// automaton grids: radial probability fields for organic spawns, and a
// life-force override that keeps persistent entities from dying out.
package density

import (
	"math"

	"caglow/internal/core"
)

// SeedRadialDensity sets each cell alive with a probability interpolated
// between centerDensity at the grid center and edgeDensity at the farthest
// corner. Each cell gets an independent draw from rng, so results are only
// reproducible when the caller seeds rng deterministically.
func SeedRadialDensity(g *core.Grid, centerDensity, edgeDensity float64, rng *core.RNG) {
	cols, rows := g.Cols(), g.Rows()
	cx := float64(cols-1) / 2
	cy := float64(rows-1) / 2
	maxDist := math.Hypot(cx, cy)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			d := 0.0
			if maxDist > 0 {
				d = math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
				if d > 1 {
					d = 1
				}
			}
			p := centerDensity + (edgeDensity-centerDensity)*d
			if rng.Chance(p) {
				g.SetAlive(x, y, true)
			}
		}
	}
}

// ApplyLifeForce forces the innermost cells of the grid back to alive. It must
// run after every Step of a looping automaton that represents a persistent
// entity; free B3/S23 evolution would otherwise frequently extinguish it. This
// is a deliberate rule override, not a correction of the step itself.
func ApplyLifeForce(g *core.Grid) {
	x0, x1 := coreSpan(g.Cols())
	y0, y1 := coreSpan(g.Rows())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.SetAlive(x, y, true)
		}
	}
}

// CoreCells returns the cells pinned by ApplyLifeForce, for callers that need
// to assert or display the protected region.
func CoreCells(g *core.Grid) []core.Cell {
	x0, x1 := coreSpan(g.Cols())
	y0, y1 := coreSpan(g.Rows())
	var cells []core.Cell
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cells = append(cells, core.Cell{X: x, Y: y})
		}
	}
	return cells
}

// coreSpan picks the innermost one or two indices along an axis: the middle
// cell for odd extents, the middle pair for even ones.
func coreSpan(n int) (int, int) {
	if n <= 1 {
		return 0, 0
	}
	if n%2 == 0 {
		return n/2 - 1, n / 2
	}
	return n / 2, n / 2
}
