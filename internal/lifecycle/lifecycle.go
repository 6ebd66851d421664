// Package lifecycle wraps a grid automaton with a render lifecycle: either
// frozen at a fixed pattern phase, or stepping on a throttled cadence
// decoupled from the host frame rate.
package lifecycle

import (
	"caglow/internal/core"
	"caglow/internal/pattern"
)

// Mode selects the lifecycle behavior. It is fixed at construction; there is
// no runtime switching.
type Mode int

const (
	// ModeStatic seeds the grid once and never steps it. Used for still
	// lifes and for oscillators frozen at a chosen phase.
	ModeStatic Mode = iota
	// ModeLooping steps the grid on its own throttled cadence.
	ModeLooping
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	case ModeLooping:
		return "looping"
	default:
		return "unknown"
	}
}

// ParseMode resolves a configuration name to a Mode.
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "static":
		return ModeStatic, true
	case "looping":
		return ModeLooping, true
	default:
		return 0, false
	}
}

// gridMargin is the dead border kept around the seeded pattern so oscillator
// phases have room to breathe inside the bounded grid.
const gridMargin = 2

// Controller owns one automaton instance and its update cadence.
type Controller struct {
	pat      pattern.Pattern
	mode     Mode
	grid     *core.Grid
	throttle *core.StepThrottle
	cellSize int
	phase    int
	steps    int64
}

// NewController builds a controller for the given pattern. The grid is sized
// to the pattern box plus a fixed margin and seeded at phase zero, then
// stepped forward `phase` generations so both modes start at the requested
// phase. For ModeLooping, stepsPerSecond is throttled against
// hostTicksPerSecond; both are ignored for ModeStatic.
func NewController(p pattern.Pattern, mode Mode, phase, cellSize, hostTicksPerSecond, stepsPerSecond int) (*Controller, error) {
	grid, err := core.NewGrid(p.Width+2*gridMargin, p.Height+2*gridMargin)
	if err != nil {
		return nil, err
	}
	grid.SeedPattern(p, gridMargin, gridMargin)

	if cellSize < 1 {
		cellSize = 1
	}
	if phase < 0 {
		phase = 0
	}
	for i := 0; i < phase; i++ {
		grid.Step()
	}

	c := &Controller{
		pat:      p,
		mode:     mode,
		grid:     grid,
		cellSize: cellSize,
		phase:    phase,
	}
	if mode == ModeLooping {
		c.throttle = core.NewStepThrottle(hostTicksPerSecond, stepsPerSecond)
	}
	if p.Period > 0 {
		c.phase = phase % p.Period
	}
	return c, nil
}

// Advance gives the controller a chance to step at the given host tick and
// reports whether a step occurred. Static controllers never step; looping
// controllers step at most once per call, when the throttle interval has
// elapsed since the last step.
func (c *Controller) Advance(tick int64) bool {
	if c.mode != ModeLooping {
		return false
	}
	if !c.throttle.ShouldStep(tick) {
		return false
	}
	c.grid.Step()
	c.steps++
	if c.pat.Period > 0 {
		c.phase = (c.phase + 1) % c.pat.Period
	}
	return true
}

// Grid exposes the owned automaton for seeding helpers, life-force
// correction, and the compositor's read pass.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Mode returns the lifecycle mode fixed at construction.
func (c *Controller) Mode() Mode { return c.mode }

// Pattern returns the catalog entry the controller was built from.
func (c *Controller) Pattern() pattern.Pattern { return c.pat }

// CellSize returns the pixel size of one cell.
func (c *Controller) CellSize() int { return c.cellSize }

// Phase returns the current oscillation phase, modulo the pattern period.
func (c *Controller) Phase() int { return c.phase }

// Steps returns the number of steps performed since construction, excluding
// the phase pre-roll.
func (c *Controller) Steps() int64 { return c.steps }

// Dimensions returns the pixel footprint of the pattern box, for layout and
// hitbox computation by the host. The margin cells are an internal detail and
// are excluded.
func (c *Controller) Dimensions() (w, h int) {
	return c.pat.Width * c.cellSize, c.pat.Height * c.cellSize
}

// GridOffset returns the pixel offset of the grid's top-left corner relative
// to the pattern box anchor, so hosts can draw the full grid while positioning
// entities by the pattern footprint.
func (c *Controller) GridOffset() (x, y int) {
	return -gridMargin * c.cellSize, -gridMargin * c.cellSize
}
