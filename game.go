package main

import (
	"fmt"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/frogger/common"
	"github.com/milk9111/frogger/ecs/entity"
	"github.com/milk9111/frogger/ecs/render"
	"github.com/milk9111/frogger/prefabs"
	"go.uber.org/zap"
)

type Game struct {
	levelName string
	seed      int
	debug     bool
	log       *zap.Logger

	stage   *entity.Stage
	watcher *prefabs.Watcher

	paused   bool
	over     bool
	pauseUI  *ebitenui.UI
	overUI   *ebitenui.UI
	overSync func()
}

func NewGame(levelName string, seed int, debug bool, log *zap.Logger) (*Game, error) {
	g := &Game{
		levelName: levelName,
		seed:      seed,
		debug:     debug,
		log:       log,
		stage:     entity.NewStage(log, seed, nil),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)
	g.overUI, g.overSync = NewGameOverUI(g)
	return g, nil
}

// Watch rebuilds the level whenever a spec or script under prefabs.Dir
// changes on disk.
func (g *Game) Watch() error {
	w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

// restart starts a new run with a fresh session.
func (g *Game) restart() error {
	content, err := prefabs.LoadContent(g.levelName)
	if err != nil {
		return err
	}
	session := entity.NewSession(content.Level.Lives, content.Level.GoalScore, content.Level.LevelBonus)
	if err := g.build(content, session); err != nil {
		return err
	}
	g.paused = false
	g.over = false
	return nil
}

// reload rebuilds the world from the current content but keeps the score.
func (g *Game) reload() error {
	content, err := prefabs.LoadContent(g.levelName)
	if err != nil {
		return err
	}
	return g.build(content, g.stage.Session)
}

func (g *Game) build(content *prefabs.Content, session *entity.Session) error {
	session.OnGameOver = func() { g.over = true }
	if err := g.stage.Build(content, session); err != nil {
		return err
	}
	g.log.Info("level built",
		zap.String("level", content.Level.Name),
		zap.Int("entities", g.stage.World.Len()),
	)
	return nil
}

func (g *Game) Update() error {
	g.pollWatcher()

	if g.over {
		g.overSync()
		g.overUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.clickRestart()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	world := g.stage.World
	pollInput(world)
	world.Step()
	world.HandleComponents()
	world.HandleCollisions()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		g.log.Warn("watcher", zap.Error(err))
	}
	if len(changed) == 0 {
		return
	}
	if err := g.reload(); err != nil {
		g.log.Error("reload failed", zap.Strings("files", changed), zap.Error(err))
		return
	}
	g.log.Info("reloaded", zap.Strings("files", changed))
}

func (g *Game) Draw(screen *ebiten.Image) {
	world := g.stage.World
	world.Draw()
	render.DrawEbiten(screen, g.stage.Scene, common.CellSize)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  entities: %d  checks: %d",
			ebiten.ActualFPS(), world.Len(), world.Collisions().Checks()), 4, common.BaseHeight-16)
	}

	if g.over {
		g.overUI.Draw(screen)
	} else if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
