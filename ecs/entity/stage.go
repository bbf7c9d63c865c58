package entity

import (
	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/render"
	"github.com/milk9111/frogger/prefabs"
	"go.uber.org/zap"
)

// Stage holds the world a host is running. Build swaps in a new world only
// after it was assembled, so a failed rebuild leaves the running one intact.
type Stage struct {
	World   *ecs.World
	Scene   *render.Scene
	Session *Session
	Level   *Level

	log     *zap.Logger
	seed    int
	present func(*render.Scene)
}

// NewStage returns an empty stage. present, when not nil, receives the
// stage's scene at the end of every World.Draw.
func NewStage(log *zap.Logger, seed int, present func(*render.Scene)) *Stage {
	if log == nil {
		log = zap.NewNop()
	}
	return &Stage{log: log, seed: seed, present: present}
}

// Build assembles content for session into a fresh world and scene, then
// clears the previous world.
func (s *Stage) Build(content *prefabs.Content, session *Session) error {
	scene := render.NewScene()
	opts := []ecs.Option{ecs.WithLogger(s.log)}
	if s.present != nil {
		present := s.present
		opts = append(opts, ecs.WithPresenter(ecs.PresenterFunc(func() { present(scene) })))
	}
	world := ecs.NewWorld(opts...)

	level, err := BuildLevel(world, scene, content, session, s.seed)
	if err != nil {
		world.Clear()
		return err
	}

	if s.World != nil {
		s.World.Clear()
	}
	s.World = world
	s.Scene = scene
	s.Session = session
	s.Level = level
	return nil
}
