//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"caglow/internal/compositor"
	"caglow/internal/config"
	"caglow/internal/core"
	"caglow/internal/density"
	"caglow/internal/gradient"
	"caglow/internal/lifecycle"
	"caglow/internal/pattern"
	"caglow/internal/render"
)

// entity binds one lifecycle controller to a screen position. Position and
// game semantics live here, in the host layer, never in the core.
type entity struct {
	ctl       *lifecycle.Controller
	x, y      int
	lifeForce bool
}

// Game adapts the simulation core to the ebiten.Game interface: it owns the
// host tick counter, advances the controllers and explosions on it, and
// drives the compositor into a software canvas uploaded once per frame.
type Game struct {
	scene config.Scene

	entities   []*entity
	explosions *compositor.Explosions
	cache      *gradient.Cache
	comp       *compositor.Compositor
	canvas     *render.PixelCanvas
	frame      *ebiten.Image

	tick       int64
	paused     bool
	nanWarned  bool
	background color.RGBA
}

// New builds the game from a validated scene.
func New(scene config.Scene) (*Game, error) {
	palette, err := config.ParsePalette(scene.Palette)
	if err != nil {
		return nil, err
	}
	cache, err := gradient.New(scene.GradientSize, palette, scene.NoiseScale, scene.Seed)
	if err != nil {
		return nil, err
	}

	entities := make([]*entity, 0, len(scene.Entities))
	for _, e := range scene.Entities {
		ctl, err := lifecycle.NewController(
			pattern.MustLookup(e.PatternID()),
			e.ModeValue(),
			e.Phase,
			e.CellSize,
			scene.HostTPS,
			e.StepsPerSecond,
		)
		if err != nil {
			return nil, err
		}
		entities = append(entities, &entity{ctl: ctl, x: e.X, y: e.Y, lifeForce: e.LifeForce})
	}

	canvas := render.NewPixelCanvas(scene.ScreenWidth, scene.ScreenHeight)
	g := &Game{
		scene:      scene,
		entities:   entities,
		explosions: compositor.NewExplosions(compositor.ExplosionSpec{}, scene.HostTPS, core.NewRNG(scene.Seed+1)),
		cache:      cache,
		comp:       compositor.New(canvas),
		canvas:     canvas,
		frame:      ebiten.NewImage(scene.ScreenWidth, scene.ScreenHeight),
		background: color.RGBA{R: 8, G: 8, B: 12, A: 255},
	}
	return g, nil
}

// Update advances the host tick, the eligible automatons, and the explosion
// collection. A frame always completes; nothing here returns a simulation
// error.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cache.Regenerate(time.Now().UnixNano())
		g.nanWarned = false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.explosions.Spawn(mx, my)
	}

	if g.paused {
		return nil
	}
	g.tick++

	for _, e := range g.entities {
		if e.ctl.Advance(g.tick) && e.lifeForce {
			density.ApplyLifeForce(e.ctl.Grid())
		}
	}
	g.explosions.Update(g.tick)

	if !g.nanWarned && g.cache.NaNSamples() > 0 {
		log.Printf("gradient bake replaced %d invalid noise samples", g.cache.NaNSamples())
		g.nanWarned = true
	}
	return nil
}

// Draw composites every entity and explosion into the software canvas, then
// uploads it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Clear(g.background)
	offset := int(g.tick) * g.scene.ScrollSpeed
	for _, e := range g.entities {
		g.comp.DrawController(e.ctl, g.cache, e.x, e.y, offset)
	}
	g.explosions.Draw(g.comp, g.cache, offset)

	g.frame.ReplacePixels(g.canvas.Pixels())
	screen.DrawImage(g.frame, nil)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.ScreenWidth, g.scene.ScreenHeight
}
