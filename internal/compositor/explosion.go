package compositor

import (
	"caglow/internal/core"
	"caglow/internal/density"
	"caglow/internal/gradient"
)

// ExplosionSpec configures transient explosion automatons. Zero-value fields
// are resolved to defaults once, at spawn, never re-checked per frame.
type ExplosionSpec struct {
	Cols, Rows     int
	CellSize       int
	CenterDensity  float64
	EdgeDensity    float64
	StepsPerSecond int
	MaxLifeTicks   int64
}

func (s ExplosionSpec) withDefaults() ExplosionSpec {
	if s.Cols <= 0 {
		s.Cols = 12
	}
	if s.Rows <= 0 {
		s.Rows = 12
	}
	if s.CellSize <= 0 {
		s.CellSize = 3
	}
	if s.CenterDensity <= 0 {
		s.CenterDensity = 0.9
	}
	if s.EdgeDensity < 0 {
		s.EdgeDensity = 0
	}
	if s.StepsPerSecond <= 0 {
		s.StepsPerSecond = 30
	}
	if s.MaxLifeTicks <= 0 {
		s.MaxLifeTicks = 90
	}
	return s
}

type explosion struct {
	grid     *core.Grid
	throttle *core.StepThrottle
	cellSize int
	originX  int
	originY  int
	age      int64
	maxAge   int64
}

func (e *explosion) alpha() uint8 {
	if e.age >= e.maxAge {
		return 0
	}
	return uint8(255 * (e.maxAge - e.age) / e.maxAge)
}

// Explosions is the single owned collection of live explosion automatons.
// The host spawns into it and calls Update then Draw once per tick; removal
// happens only inside Update.
type Explosions struct {
	spec    ExplosionSpec
	hostTPS int
	rng     *core.RNG
	list    []*explosion
}

// NewExplosions resolves the spec defaults and returns an empty collection.
func NewExplosions(spec ExplosionSpec, hostTicksPerSecond int, rng *core.RNG) *Explosions {
	if hostTicksPerSecond <= 0 {
		hostTicksPerSecond = 60
	}
	return &Explosions{spec: spec.withDefaults(), hostTPS: hostTicksPerSecond, rng: rng}
}

// Spawn creates an explosion centered on the given screen position, seeded
// with a dense radial burst that thins toward the grid edge.
func (ex *Explosions) Spawn(centerX, centerY int) {
	spec := ex.spec
	grid, err := core.NewGrid(spec.Cols, spec.Rows)
	if err != nil {
		return
	}
	density.SeedRadialDensity(grid, spec.CenterDensity, spec.EdgeDensity, ex.rng)
	ex.list = append(ex.list, &explosion{
		grid:     grid,
		throttle: core.NewStepThrottle(ex.hostTPS, spec.StepsPerSecond),
		cellSize: spec.CellSize,
		originX:  centerX - spec.Cols*spec.CellSize/2,
		originY:  centerY - spec.Rows*spec.CellSize/2,
		maxAge:   spec.MaxLifeTicks,
	})
}

// Update ages and steps every explosion and drops the expired ones: an
// explosion ends when its grid goes fully dead or its lifetime elapses,
// whichever comes first. The lifetime cap bounds particles that evolve into
// a stable non-empty configuration.
func (ex *Explosions) Update(tick int64) {
	kept := ex.list[:0]
	for _, e := range ex.list {
		e.age++
		if e.throttle.ShouldStep(tick) {
			e.grid.Step()
		}
		if e.age >= e.maxAge || e.grid.IsEmpty() {
			continue
		}
		kept = append(kept, e)
	}
	// Release dropped entries so their grids can be collected.
	for i := len(kept); i < len(ex.list); i++ {
		ex.list[i] = nil
	}
	ex.list = kept
}

// Draw emits the surviving explosions with their lifetime-faded alpha.
func (ex *Explosions) Draw(cp *Compositor, cache *gradient.Cache, timeOffset int) {
	for _, e := range ex.list {
		cp.DrawGrid(e.grid, cache, e.originX, e.originY, e.cellSize, timeOffset, e.alpha())
	}
}

// Len reports the number of live explosions.
func (ex *Explosions) Len() int { return len(ex.list) }
