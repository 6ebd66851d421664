package pattern

import "caglow/internal/core"

var catalog = map[ID]Pattern{
	Block: {
		ID: Block, Width: 2, Height: 2, Period: 1,
		Live: []core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	},
	Beehive: {
		ID: Beehive, Width: 4, Height: 3, Period: 1,
		Live: []core.Cell{
			{X: 1, Y: 0}, {X: 2, Y: 0},
			{X: 0, Y: 1}, {X: 3, Y: 1},
			{X: 1, Y: 2}, {X: 2, Y: 2},
		},
	},
	Loaf: {
		ID: Loaf, Width: 4, Height: 4, Period: 1,
		Live: []core.Cell{
			{X: 1, Y: 0}, {X: 2, Y: 0},
			{X: 0, Y: 1}, {X: 3, Y: 1},
			{X: 1, Y: 2}, {X: 3, Y: 2},
			{X: 2, Y: 3},
		},
	},
	Boat: {
		ID: Boat, Width: 3, Height: 3, Period: 1,
		Live: []core.Cell{
			{X: 0, Y: 0}, {X: 1, Y: 0},
			{X: 0, Y: 1}, {X: 2, Y: 1},
			{X: 1, Y: 2},
		},
	},
	Tub: {
		ID: Tub, Width: 3, Height: 3, Period: 1,
		Live: []core.Cell{
			{X: 1, Y: 0},
			{X: 0, Y: 1}, {X: 2, Y: 1},
			{X: 1, Y: 2},
		},
	},
	Blinker: {
		ID: Blinker, Width: 3, Height: 1, Period: 2,
		Live: []core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	},
	Toad: {
		ID: Toad, Width: 4, Height: 2, Period: 2,
		Live: []core.Cell{
			{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
			{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		},
	},
	Beacon: {
		ID: Beacon, Width: 4, Height: 4, Period: 2,
		Live: []core.Cell{
			{X: 0, Y: 0}, {X: 1, Y: 0},
			{X: 0, Y: 1}, {X: 1, Y: 1},
			{X: 2, Y: 2}, {X: 3, Y: 2},
			{X: 2, Y: 3}, {X: 3, Y: 3},
		},
	},
	Pulsar: {
		ID: Pulsar, Width: 13, Height: 13, Period: 3,
		Live: pulsarCells(),
	},
	Glider: {
		ID: Glider, Width: 3, Height: 3, Period: 4,
		Shift: core.Cell{X: 1, Y: 1},
		Live: []core.Cell{
			{X: 1, Y: 0},
			{X: 2, Y: 1},
			{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
		},
	},
	LightweightSpaceship: {
		ID: LightweightSpaceship, Width: 5, Height: 4, Period: 4,
		Shift: core.Cell{X: -2, Y: 0},
		Live: []core.Cell{
			{X: 1, Y: 0}, {X: 4, Y: 0},
			{X: 0, Y: 1},
			{X: 0, Y: 2}, {X: 4, Y: 2},
			{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
		},
	},
}

// The pulsar has four-fold symmetry; its 48 cells are generated from one
// quadrant arm mirrored across both axes of the 13x13 box.
func pulsarCells() []core.Cell {
	arm := []core.Cell{
		{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
		{X: 0, Y: 2}, {X: 5, Y: 2},
		{X: 0, Y: 3}, {X: 5, Y: 3},
		{X: 0, Y: 4}, {X: 5, Y: 4},
		{X: 2, Y: 5}, {X: 3, Y: 5}, {X: 4, Y: 5},
	}
	cells := make([]core.Cell, 0, len(arm)*4)
	for _, c := range arm {
		cells = append(cells,
			core.Cell{X: c.X, Y: c.Y},
			core.Cell{X: 12 - c.X, Y: c.Y},
			core.Cell{X: c.X, Y: 12 - c.Y},
			core.Cell{X: 12 - c.X, Y: 12 - c.Y},
		)
	}
	return cells
}

// Lookup returns the catalog entry for id.
func Lookup(id ID) (Pattern, bool) {
	p, ok := catalog[id]
	return p, ok
}

// MustLookup returns the catalog entry for id and panics on an unknown ID.
// Intended for the fixed catalog constants, where a miss is a programming error.
func MustLookup(id ID) Pattern {
	p, ok := catalog[id]
	if !ok {
		panic("pattern: unknown id " + id.String())
	}
	return p
}

// All returns every catalog entry in ID order.
func All() []Pattern {
	out := make([]Pattern, 0, len(catalog))
	for id := Block; id <= LightweightSpaceship; id++ {
		out = append(out, catalog[id])
	}
	return out
}

// ParseID resolves a catalog name (as used in scene configuration) to an ID.
func ParseID(name string) (ID, bool) {
	for id := Block; id <= LightweightSpaceship; id++ {
		if id.String() == name {
			return id, true
		}
	}
	return 0, false
}
