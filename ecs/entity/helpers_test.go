package entity

import (
	"testing"

	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/render"
	"github.com/milk9111/frogger/prefabs"
	"go.uber.org/zap/zaptest"
)

func testLevel() prefabs.LevelSpec {
	return prefabs.LevelSpec{
		Name:       "test",
		Columns:    5,
		Rows:       5,
		Visible:    5,
		Lives:      3,
		Goals:      []int{2},
		HopScore:   10,
		GoalScore:  50,
		LevelBonus: 100,
	}
}

func testFrogSpec() prefabs.FrogSpec {
	return prefabs.FrogSpec{
		HopFrames:   4,
		HopHeight:   1,
		StartColumn: 2,
		StartRow:    0,
		Size:        0.8,
	}
}

// fakeServices counts what the frog asks of the session.
type fakeServices struct {
	kills   int
	score   int
	reached []*ecs.Entity
}

func (f *fakeServices) services() *Services {
	return &Services{
		KillFrog:  func(*ecs.World) { f.kills++ },
		ReachGoal: func(_ *ecs.World, goal *ecs.Entity) { f.reached = append(f.reached, goal) },
		AddScore:  func(points int) { f.score += points },
	}
}

func newTestWorld(t *testing.T) (*ecs.World, *render.Scene) {
	t.Helper()
	w := ecs.NewWorld(ecs.WithLogger(zaptest.NewLogger(t)))
	w.Collisions().Pairs(collisionRules)
	return w, render.NewScene()
}

func countType(w *ecs.World, typ ecs.EntityType) []*ecs.Entity {
	var out []*ecs.Entity
	for _, e := range w.Entities() {
		if e.Type == typ && !e.MarkedForDeletion {
			out = append(out, e)
		}
	}
	return out
}
