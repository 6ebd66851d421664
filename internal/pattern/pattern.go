// Package pattern holds the canonical catalog of Game of Life patterns used
// to seed entity automatons. The catalog is immutable, shared data; consumers
// stamp it into a grid with Grid.SeedPattern.
package pattern

import "caglow/internal/core"

// ID identifies a catalog pattern. The set is closed; switch statements over
// it should be exhaustive.
type ID int

const (
	Block ID = iota
	Beehive
	Loaf
	Boat
	Tub
	Blinker
	Toad
	Beacon
	Pulsar
	Glider
	LightweightSpaceship
)

// String returns the catalog name of the pattern.
func (id ID) String() string {
	switch id {
	case Block:
		return "block"
	case Beehive:
		return "beehive"
	case Loaf:
		return "loaf"
	case Boat:
		return "boat"
	case Tub:
		return "tub"
	case Blinker:
		return "blinker"
	case Toad:
		return "toad"
	case Beacon:
		return "beacon"
	case Pulsar:
		return "pulsar"
	case Glider:
		return "glider"
	case LightweightSpaceship:
		return "lwss"
	default:
		return "unknown"
	}
}

// Pattern describes one catalog entry: a bounding box, the live cells of its
// phase-zero form, its period, and, for moving patterns, the translation the
// pattern undergoes per full period.
type Pattern struct {
	ID     ID
	Width  int
	Height int
	Period int
	Shift  core.Cell
	Live   []core.Cell
}

// Size returns the bounding box of the phase-zero form.
func (p Pattern) Size() (int, int) { return p.Width, p.Height }

// Cells returns the live-cell offsets. The slice is shared catalog data and
// must not be mutated.
func (p Pattern) Cells() []core.Cell { return p.Live }

// Moves reports whether the pattern translates across the grid.
func (p Pattern) Moves() bool { return p.Shift != core.Cell{} }

// StillLife reports whether the pattern is invariant under stepping.
func (p Pattern) StillLife() bool { return p.Period == 1 && !p.Moves() }
