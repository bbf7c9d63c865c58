package entity

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/render"
	"github.com/milk9111/frogger/prefabs"
	"go.uber.org/zap"
)

const defaultSpawnInterval = 100

// laneScript asks a tengo script whether a lane spawns this frame.
//
// Inputs: frame, interval, count, row, seed, length. Outputs: spawn (bool) and
// optionally a rewritten length.
type laneScript struct {
	name     string
	compiled *tengo.Compiled
}

func compileLaneScript(name string) (*laneScript, error) {
	if name == "" {
		name = "steady"
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("lane script %q: %w", name, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("interval", 1)
	_ = script.Add("count", 0)
	_ = script.Add("row", 0)
	_ = script.Add("seed", 0)
	_ = script.Add("length", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("lane script %q: compile: %w", name, err)
	}
	return &laneScript{name: name, compiled: compiled}, nil
}

func (s *laneScript) decide(frame, interval, count, row, seed int, length float64) (bool, float64, error) {
	c := s.compiled
	for name, v := range map[string]any{
		"frame":    frame,
		"interval": interval,
		"count":    count,
		"row":      row,
		"seed":     seed,
		"length":   length,
	} {
		if err := c.Set(name, v); err != nil {
			return false, 0, fmt.Errorf("lane script %q: set %s: %w", s.name, name, err)
		}
	}
	if err := c.Run(); err != nil {
		return false, 0, fmt.Errorf("lane script %q: run: %w", s.name, err)
	}
	spawn := c.Get("spawn").Bool()
	out := c.Get("length").Float()
	if out <= 0 {
		out = length
	}
	return spawn, out, nil
}

// spawnerBehavior belongs to one lane's builder entity. It never moves and
// never collides; it only adds movers to the world.
type spawnerBehavior struct {
	surface render.Surface
	lane    prefabs.LaneSpec
	level   prefabs.LevelSpec
	turtle  prefabs.TurtleSpec
	script  *laneScript
	seed    int
}

// BuildBuilder returns the invisible spawner for lane.
func BuildBuilder(surface render.Surface, lane prefabs.LaneSpec, level prefabs.LevelSpec, turtle prefabs.TurtleSpec, seed int) (*ecs.Entity, error) {
	script, err := compileLaneScript(lane.Script)
	if err != nil {
		return nil, fmt.Errorf("entity: build builder: lane %d: %w", lane.Row, err)
	}
	if lane.Interval <= 0 {
		lane.Interval = defaultSpawnInterval
	}

	e := ecs.NewEntity(TypeBuilder, 0, 0)
	e.Solid = false
	e.Position = ecs.Vec3{Y: float64(lane.Row)}
	e.Props = &BuilderState{Lane: lane.Row}
	e.SetBehavior(&spawnerBehavior{
		surface: surface,
		lane:    lane,
		level:   level,
		turtle:  turtle,
		script:  script,
		seed:    seed,
	})
	return e, nil
}

func (b *spawnerBehavior) OnStep(e *ecs.Entity, _ ecs.Input, w *ecs.World) {
	st := e.Props.(*BuilderState)
	if !st.Warmed {
		st.Warmed = true
		for f := -b.lane.Prewarm; f < 0; f++ {
			if !b.tick(e, st, w, f, float64(-f)) {
				return
			}
		}
	}
	if b.tick(e, st, w, st.Frame, 0) {
		st.Frame++
	}
}

// tick runs the script for frame and spawns a mover already advanced by
// ahead frames of travel. It returns false once the builder is disabled.
func (b *spawnerBehavior) tick(e *ecs.Entity, st *BuilderState, w *ecs.World, frame int, ahead float64) bool {
	spawn, length, err := b.script.decide(frame, b.lane.Interval, st.Spawned, b.lane.Row, b.seed, b.lane.Length)
	if err != nil {
		w.Logger().Error("lane spawner disabled", zap.Int("lane", b.lane.Row), zap.Error(err))
		e.Enabled = false
		return false
	}
	if !spawn {
		return true
	}

	x := b.spawnX(length) + float64(b.lane.Direction)*b.lane.Speed*ahead
	mover, err := BuildMover(b.surface, b.lane, x, length, b.level, b.turtle)
	if err != nil {
		w.Logger().Error("lane spawner disabled", zap.Int("lane", b.lane.Row), zap.Error(err))
		e.Enabled = false
		return false
	}
	if offLane(mover, float64(b.level.Columns)) {
		mover.MarkedForDeletion = true
	}
	if ts, ok := mover.Props.(*TurtleState); ok {
		// Every other raft dives.
		ts.Diver = ts.Diver && st.Spawned%2 == 0
	}
	w.Add(mover)
	st.Spawned++
	return true
}

// spawnX is just outside the lane end movers enter from.
func (b *spawnerBehavior) spawnX(length float64) float64 {
	if b.lane.Direction > 0 {
		return -length
	}
	return float64(b.level.Columns)
}
