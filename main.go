package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/frogger/common"
	"github.com/milk9111/frogger/prefabs"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	levelName := flag.String("level", "", "level spec in prefabs/ (default level.yaml)")
	seed := flag.Int("seed", 0, "seed passed to lane spawner scripts")
	scale := flag.Float64("scale", 1, "window scale")
	watch := flag.Bool("watch", false, "rebuild the level when prefabs/ changes on disk")
	dir := flag.String("prefabs", prefabs.Dir, "directory checked for spec overrides before the embedded copies")
	flag.Parse()

	prefabs.Dir = *dir

	logger := common.NewLogger(*debug)
	defer func() { _ = logger.Sync() }()

	game, err := NewGame(*levelName, *seed, *debug, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *watch {
		if err := game.Watch(); err != nil {
			logger.Warn("hot reload disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(common.BaseWidth*(*scale)), int(common.BaseHeight*(*scale)))
	ebiten.SetWindowTitle("frogger")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
