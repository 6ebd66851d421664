package core

import (
	"errors"
	"testing"
)

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}}
	for _, c := range cases {
		if _, err := NewGrid(c[0], c[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", c[0], c[1], err)
		}
	}
	if _, err := NewGrid(1, 1); err != nil {
		t.Fatalf("NewGrid(1, 1) unexpected error: %v", err)
	}
}

func TestStepDeadGridStaysDead(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 7}, {16, 16}} {
		g, err := NewGrid(size[0], size[1])
		if err != nil {
			t.Fatalf("NewGrid: %v", err)
		}
		for i := 0; i < 10; i++ {
			g.Step()
		}
		if !g.IsEmpty() {
			t.Fatalf("%dx%d dead grid spawned %d live cells", size[0], size[1], g.Population())
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g, _ := NewGrid(4, 4)
	g.SetAlive(1, 1, true)
	g.SetAlive(2, 1, true)
	g.SetAlive(1, 2, true)
	g.SetAlive(2, 2, true)
	before := g.Snapshot()

	for i := 0; i < 25; i++ {
		g.Step()
	}
	after := g.Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("block changed at index %d after 25 steps", i)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g, _ := NewGrid(5, 5)
	g.SetAlive(1, 2, true)
	g.SetAlive(2, 2, true)
	g.SetAlive(3, 2, true)

	g.Step()
	vertical := map[Cell]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if g.Alive(x, y) != vertical[Cell{x, y}] {
				t.Fatalf("after one step cell (%d,%d) alive=%v, expected %v", x, y, g.Alive(x, y), vertical[Cell{x, y}])
			}
		}
	}

	g.Step()
	horizontal := map[Cell]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if g.Alive(x, y) != horizontal[Cell{x, y}] {
				t.Fatalf("after two steps cell (%d,%d) alive=%v, expected %v", x, y, g.Alive(x, y), horizontal[Cell{x, y}])
			}
		}
	}
}

func TestBoundedEdgesKillOverhang(t *testing.T) {
	// A blinker lying along the top edge has no room to rotate upward; with
	// dead cells beyond the boundary it must still rotate, losing nothing,
	// because the vertical form fits rows 0..1 only partially.
	g, _ := NewGrid(5, 2)
	g.SetAlive(1, 0, true)
	g.SetAlive(2, 0, true)
	g.SetAlive(3, 0, true)
	g.Step()
	// Vertical blinker would occupy (2,-1)(2,0)(2,1); the -1 row is clipped.
	want := map[Cell]bool{{2, 0}: true, {2, 1}: true}
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			if g.Alive(x, y) != want[Cell{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, g.Alive(x, y), want[Cell{x, y}])
			}
		}
	}
}

func TestSetAliveOutOfRangeIsNoOp(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.SetAlive(-1, 0, true)
	g.SetAlive(0, -1, true)
	g.SetAlive(3, 0, true)
	g.SetAlive(0, 3, true)
	if !g.IsEmpty() {
		t.Fatalf("out-of-range SetAlive mutated the grid")
	}
	if g.Alive(-1, -1) || g.Alive(3, 3) {
		t.Fatalf("out-of-range Alive should report dead")
	}
}

type stampPattern struct {
	cells []Cell
}

func (p stampPattern) Cells() []Cell { return p.cells }

func TestSeedPatternClipsAtEdges(t *testing.T) {
	g, _ := NewGrid(4, 4)
	p := stampPattern{cells: []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
	g.SeedPattern(p, 3, 3)
	if got := g.Population(); got != 1 {
		t.Fatalf("clipped seed population = %d, want 1", got)
	}
	if !g.Alive(3, 3) {
		t.Fatalf("in-bounds corner cell should be alive")
	}
}

func TestSeedPatternORsIntoExistingCells(t *testing.T) {
	g, _ := NewGrid(4, 4)
	g.SetAlive(0, 0, true)
	p := stampPattern{cells: []Cell{{0, 0}, {1, 1}}}
	g.SeedPattern(p, 0, 0)
	if !g.Alive(0, 0) || !g.Alive(1, 1) {
		t.Fatalf("seed should OR cells in, preserving existing live cells")
	}
	if got := g.Population(); got != 2 {
		t.Fatalf("population = %d, want 2", got)
	}
}

func TestStepDoesNotAllocate(t *testing.T) {
	g, _ := NewGrid(32, 32)
	g.SetAlive(10, 10, true)
	g.SetAlive(11, 10, true)
	g.SetAlive(12, 10, true)
	allocs := testing.AllocsPerRun(100, func() { g.Step() })
	if allocs != 0 {
		t.Fatalf("Step allocated %.1f times per run, want 0", allocs)
	}
}
