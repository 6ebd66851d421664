//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"caglow/internal/app"
	"caglow/internal/config"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	scene, err := config.Load(cfg.Scene)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Seed != 0 {
		scene.Seed = cfg.Seed
	}

	game, err := app.New(scene)
	if err != nil {
		log.Fatal(err)
	}

	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle("caglow")
	ebiten.SetTPS(scene.HostTPS)
	ebiten.SetWindowSize(scene.ScreenWidth*scale, scene.ScreenHeight*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
