package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/frogger/common"
	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/entity"
	"github.com/milk9111/frogger/ecs/render"
	"github.com/milk9111/frogger/prefabs"
	"go.uber.org/zap"
)

// termGame runs the world on a tcell screen. Terminals report key presses but
// not releases, so each key is held for exactly one tick.
type termGame struct {
	screen  tcell.Screen
	log     *zap.Logger
	content *prefabs.Content

	stage   *entity.Stage
	pending []ecs.Key
	over    bool
}

func newTermGame(screen tcell.Screen, content *prefabs.Content, seed int, log *zap.Logger) (*termGame, error) {
	g := &termGame{
		screen:  screen,
		log:     log,
		content: content,
	}
	g.stage = entity.NewStage(log, seed, func(scene *render.Scene) {
		render.DrawTerminal(screen, scene)
	})
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *termGame) restart() error {
	lvl := g.content.Level
	session := entity.NewSession(lvl.Lives, lvl.GoalScore, lvl.LevelBonus)
	session.OnGameOver = func() { g.over = true }
	if err := g.stage.Build(g.content, session); err != nil {
		return err
	}
	g.over = false
	g.pending = g.pending[:0]
	return nil
}

// handleEvent returns false when the player quits.
func (g *termGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.queue(ecs.KeyUp)
		case tcell.KeyDown:
			g.queue(ecs.KeyDown)
		case tcell.KeyLeft:
			g.queue(ecs.KeyLeft)
		case tcell.KeyRight:
			g.queue(ecs.KeyRight)
		case tcell.KeyEnter:
			if g.over {
				if err := g.restart(); err != nil {
					g.log.Error("restart failed", zap.Error(err))
				}
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				g.queue(ecs.KeyUp)
			case 's':
				g.queue(ecs.KeyDown)
			case 'a':
				g.queue(ecs.KeyLeft)
			case 'd':
				g.queue(ecs.KeyRight)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// tick runs one frame. Queued keys are down for this frame only.
func (g *termGame) tick() {
	if g.over {
		g.pending = g.pending[:0]
		g.drawGameOver()
		return
	}
	world := g.stage.World
	for _, k := range g.pending {
		world.PressKey(k)
	}
	world.Tick()
	for _, k := range g.pending {
		world.ReleaseKey(k)
	}
	g.pending = g.pending[:0]
}

// queue holds k down for the next tick. Keys are dropped while the game
// over screen is up.
func (g *termGame) queue(k ecs.Key) {
	if g.over {
		return
	}
	g.pending = append(g.pending, k)
}

func (g *termGame) drawGameOver() {
	_, height := g.screen.Size()
	msg := fmt.Sprintf("GAME OVER  score %d  enter: restart  q: quit", g.stage.Session.Score)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	for i, r := range msg {
		g.screen.SetContent(i, height/2, r, nil, style)
	}
	g.screen.Show()
}

func (g *termGame) run(frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.tick()
		}
	}
}

func main() {
	debug := flag.Bool("debug", false, "log engine debug messages")
	levelName := flag.String("level", "", "level spec in prefabs/ (default level.yaml)")
	seed := flag.Int("seed", 0, "seed passed to lane spawner scripts")
	fps := flag.Int("fps", 30, "frames per second")
	logPath := flag.String("log", "termfrog.log", "log file")
	flag.Parse()

	logger, err := common.NewFileLogger(*logPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	content, err := prefabs.LoadContent(*levelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	game, err := newTermGame(screen, content, *seed, logger)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build level: %v\n", err)
		os.Exit(1)
	}

	if *fps <= 0 {
		*fps = 30
	}
	game.run(time.Second / time.Duration(*fps))
}
