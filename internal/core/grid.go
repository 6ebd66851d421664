package core

import "errors"

// ErrInvalidDimensions reports a non-positive grid size at construction.
var ErrInvalidDimensions = errors.New("core: dimensions must be positive")

// Cell is a relative cell coordinate.
type Cell struct {
	X int
	Y int
}

// Pattern is the minimal shape the grid needs to stamp caller-supplied
// pattern data. The pattern package provides the canonical catalog.
type Pattern interface {
	Cells() []Cell
}

// Grid is a double-buffered Conway board. Step applies B3/S23 with bounded
// edges: neighbors outside the grid count as dead. The buffer swap is atomic
// relative to readers, so a frame never observes a half-stepped state.
type Grid struct {
	cols, rows int
	cur        []bool
	nxt        []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrInvalidDimensions
	}
	total := cols * rows
	return &Grid{
		cols: cols,
		rows: rows,
		cur:  make([]bool, total),
		nxt:  make([]bool, total),
	}, nil
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// Alive reports the state of cell (x, y). Out-of-range coordinates are dead.
func (g *Grid) Alive(x, y int) bool {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return false
	}
	return g.cur[y*g.cols+x]
}

// SetAlive writes a single cell in the current buffer. Out-of-range
// coordinates are a no-op so callers can stamp near edges without bounds
// arithmetic.
func (g *Grid) SetAlive(x, y int, alive bool) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return
	}
	g.cur[y*g.cols+x] = alive
}

// SeedPattern ORs the pattern's live cells into the grid at the given offset.
// Cells that land outside the grid are silently clipped.
func (g *Grid) SeedPattern(p Pattern, offsetX, offsetY int) {
	for _, c := range p.Cells() {
		g.SetAlive(offsetX+c.X, offsetY+c.Y, true)
	}
}

// Clear kills every cell in the current buffer.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = false
	}
}

// Step advances the board by one B3/S23 generation. Results are written into
// the back buffer and the buffers are swapped once the whole generation is
// computed. No allocation occurs after construction.
func (g *Grid) Step() {
	cols, rows := g.cols, g.rows
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= rows {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					if nx < 0 || nx >= cols {
						continue
					}
					if g.cur[ny*cols+nx] {
						neighbors++
					}
				}
			}
			idx := y*cols + x
			alive := g.cur[idx]
			g.nxt[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// Population counts the live cells in the current buffer.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// IsEmpty reports whether every cell is dead.
func (g *Grid) IsEmpty() bool { return g.Population() == 0 }

// Snapshot copies the current cell matrix in row-major order. The copy is
// detached from the grid, so later steps do not mutate it.
func (g *Grid) Snapshot() []bool {
	out := make([]bool, len(g.cur))
	copy(out, g.cur)
	return out
}
