package entity

import (
	"math"

	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/component"
	"github.com/milk9111/frogger/ecs/render"
	"github.com/milk9111/frogger/prefabs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const (
	defaultHopFrames = 8
	defaultFrogSize  = 0.8
)

// frogBehavior drives the player: one hop per key press, riding platforms,
// and death or goal resolution one step after the collision reported it.
type frogBehavior struct {
	svc       *Services
	hopFrames int
	hopHeight float64
	columns   float64
	rows      float64
	hopScore  int
}

// BuildFrog returns the player frog at its start cell.
func BuildFrog(surface render.Surface, spec prefabs.FrogSpec, level prefabs.LevelSpec, svc *Services) *ecs.Entity {
	size := spec.Size
	if size <= 0 || size > 1 {
		size = defaultFrogSize
	}
	hopFrames := spec.HopFrames
	if hopFrames <= 0 {
		hopFrames = defaultHopFrames
	}
	inset := (1 - size) / 2

	e := ecs.NewEntity(TypeFrog, size, size)
	st := &FrogState{
		StartX:  float64(spec.StartColumn) + inset,
		StartY:  float64(spec.StartRow) + inset,
		BestRow: spec.StartRow,
	}
	e.Position = ecs.Vec3{X: st.StartX, Y: st.StartY}
	e.Props = st
	e.SetBehavior(&frogBehavior{
		svc:       svc,
		hopFrames: hopFrames,
		hopHeight: spec.HopHeight,
		columns:   float64(level.Columns),
		rows:      float64(level.Rows),
		hopScore:  level.HopScore,
	})

	d := component.NewDrawable(surface, e, spec.Color.Or(colornames.Limegreen))
	d.ZBias = LayerFrog
	e.AddComponent(d)
	return e
}

func (b *frogBehavior) OnStep(e *ecs.Entity, in ecs.Input, w *ecs.World) {
	st := e.Props.(*FrogState)
	hopping := st.Mode == FrogHopping

	if goal := st.Reached; goal != nil && !hopping {
		st.clearContacts()
		b.respawn(e, st)
		b.svc.ReachGoal(w, goal)
		return
	}
	if st.MarkedForDeath && !b.survives(st, hopping) {
		cause := st.Cause
		st.clearContacts()
		st.Deaths++
		b.respawn(e, st)
		w.Logger().Debug("frog killed", zap.Stringer("cause", cause), zap.Uint64("frame", w.Frame()))
		b.svc.KillFrog(w)
		return
	}

	riding, ride := st.Riding, st.Ride
	st.clearContacts()

	e.Velocity = ecs.Vec3{}
	if riding {
		e.Velocity.X = ride.X
	}

	if st.Mode == FrogIdle {
		dir := hopDirection(in)
		switch {
		case dir == (ecs.Vec3{}):
			st.Latched = false
		case !st.Latched:
			st.Latched = true
			if b.canHop(e, dir) {
				b.startHop(st, dir)
			}
		}
	}

	landed := false
	if st.Mode == FrogHopping {
		frames := float64(b.hopFrames)
		e.Velocity.X += st.HopDir.X / frames
		e.Velocity.Y += st.HopDir.Y / frames
		st.HopFrame++
		e.Position.Z = b.arc(st)
		if st.HopFrame >= b.hopFrames {
			st.Mode = FrogIdle
			landed = true
		}
	}

	e.Move()

	if landed {
		b.land(e, st, riding)
	}

	if e.Position.X < 0 || e.Position.X+e.Width > b.columns {
		if riding {
			st.markDeath(CauseOffscreen)
		}
		e.Position.X = math.Max(0, math.Min(e.Position.X, b.columns-e.Width))
	}
}

func (b *frogBehavior) OnCollide(e, other *ecs.Entity, w *ecs.World) {
	st := e.Props.(*FrogState)
	switch other.Type {
	case TypeCar:
		st.markDeath(CauseVehicle)
	case TypeWater:
		st.markDeath(CauseWater)
	case TypeLog, TypeTurtle:
		st.Riding = true
		st.Ride = other.Velocity
	case TypeGoal:
		if gs, ok := other.Props.(*GoalState); ok && gs.Filled {
			st.markDeath(CauseGoalTaken)
			return
		}
		st.Reached = other
	}
}

// survives reports whether a pending death is cancelled. Standing on a
// platform cancels drowning, and nothing but traffic kills mid-hop.
func (b *frogBehavior) survives(st *FrogState, hopping bool) bool {
	switch st.Cause {
	case CauseWater:
		return st.Riding || hopping
	case CauseGoalTaken:
		return hopping
	}
	return false
}

func (b *frogBehavior) canHop(e *ecs.Entity, dir ecs.Vec3) bool {
	r := ecs.GetBounds(e).Translate(dir.X, dir.Y)
	return r.X1 >= 0 && r.X2 <= b.columns && r.Y1 >= 0 && r.Y2 <= b.rows
}

func (b *frogBehavior) startHop(st *FrogState, dir ecs.Vec3) {
	st.Mode = FrogHopping
	st.HopFrame = 0
	st.HopDir = dir
	half := float32(b.hopFrames) / 2
	st.hopArc[0] = gween.New(0, float32(b.hopHeight), half, ease.OutQuad)
	st.hopArc[1] = gween.New(float32(b.hopHeight), 0, half, ease.InQuad)
}

func (b *frogBehavior) arc(st *FrogState) float64 {
	if st.hopArc[0] == nil {
		return 0
	}
	if float32(st.HopFrame) <= float32(b.hopFrames)/2 {
		z, _ := st.hopArc[0].Update(1)
		return float64(z)
	}
	z, _ := st.hopArc[1].Update(1)
	return float64(z)
}

// land snaps the frog back onto the grid after a hop. X is left alone while
// riding, since the platform carries it between columns.
func (b *frogBehavior) land(e *ecs.Entity, st *FrogState, riding bool) {
	inset := (1 - e.Height) / 2
	e.Position.Y = math.Round(e.Position.Y-inset) + inset
	if !riding {
		e.Position.X = math.Round(e.Position.X-inset) + inset
	}
	e.Position.Z = 0
	st.hopArc = [2]*gween.Tween{}

	row := int(math.Round(e.Position.Y - inset))
	if row > st.BestRow {
		st.BestRow = row
		b.svc.AddScore(b.hopScore)
	}
}

func (b *frogBehavior) respawn(e *ecs.Entity, st *FrogState) {
	e.Position = ecs.Vec3{X: st.StartX, Y: st.StartY}
	e.Velocity = ecs.Vec3{}
	st.Mode = FrogIdle
	st.HopFrame = 0
	st.HopDir = ecs.Vec3{}
	st.hopArc = [2]*gween.Tween{}
	st.BestRow = int(math.Floor(st.StartY))
	// A key still held from before the reset must be released first.
	st.Latched = true
}

func (st *FrogState) clearContacts() {
	st.Riding = false
	st.Ride = ecs.Vec3{}
	st.MarkedForDeath = false
	st.Cause = CauseNone
	st.Reached = nil
}

// markDeath records cause. Drowning is the weakest cause and never replaces
// another one.
func (st *FrogState) markDeath(cause DeathCause) {
	if st.MarkedForDeath && st.Cause != CauseWater {
		return
	}
	st.MarkedForDeath = true
	st.Cause = cause
}

func hopDirection(in ecs.Input) ecs.Vec3 {
	switch {
	case in.Pressed(ecs.KeyUp):
		return ecs.Vec3{Y: 1}
	case in.Pressed(ecs.KeyDown):
		return ecs.Vec3{Y: -1}
	case in.Pressed(ecs.KeyLeft):
		return ecs.Vec3{X: -1}
	case in.Pressed(ecs.KeyRight):
		return ecs.Vec3{X: 1}
	}
	return ecs.Vec3{}
}
