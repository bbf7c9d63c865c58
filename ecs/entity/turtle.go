package entity

import (
	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/render"
	"github.com/milk9111/frogger/prefabs"
	"golang.org/x/image/colornames"
)

// turtleBehavior is a sinking platform. The dive clock picks the phase and
// the phase alone decides Z velocity and solidity.
type turtleBehavior struct {
	moverBehavior
	surface, sink, submerged, rise int
	depth                          float64
}

func newTurtleBehavior(spec prefabs.TurtleSpec, columns float64) *turtleBehavior {
	b := &turtleBehavior{
		moverBehavior: moverBehavior{columns: columns},
		surface:       spec.SurfaceFrames,
		sink:          spec.SinkFrames,
		submerged:     spec.SubmergedFrames,
		rise:          spec.RiseFrames,
		depth:         spec.Depth,
	}
	if b.surface <= 0 {
		b.surface = 150
	}
	if b.sink <= 0 {
		b.sink = 20
	}
	if b.submerged <= 0 {
		b.submerged = 60
	}
	if b.rise <= 0 {
		b.rise = 20
	}
	if b.depth <= 0 {
		b.depth = 1
	}
	return b
}

// BuildTurtle returns a turtle raft of the given length.
func BuildTurtle(surface render.Surface, lane prefabs.LaneSpec, x, length, columns float64, spec prefabs.TurtleSpec) *ecs.Entity {
	e := newMover(TypeTurtle, lane, x, length)
	e.Props = &TurtleState{Lane: lane.Row, Diver: spec.Divers}
	e.SetBehavior(newTurtleBehavior(spec, columns))
	attachDrawable(surface, e, lane.Color.Or(spec.Color.Or(colornames.Firebrick)), LayerMover)
	return e
}

func (b *turtleBehavior) cycle() int {
	return b.surface + b.sink + b.submerged + b.rise
}

// Phase returns the dive phase for a clock value.
func (b *turtleBehavior) Phase(clock int) TurtlePhase {
	switch c := clock % b.cycle(); {
	case c < b.surface:
		return TurtleSurfaced
	case c < b.surface+b.sink:
		return TurtleSinking
	case c < b.surface+b.sink+b.submerged:
		return TurtleSubmerged
	default:
		return TurtleRising
	}
}

func (b *turtleBehavior) OnStep(e *ecs.Entity, in ecs.Input, w *ecs.World) {
	st := e.Props.(*TurtleState)
	wrapped := false
	if st.Diver {
		phase := b.Phase(st.Clock)
		switch phase {
		case TurtleSinking:
			e.Velocity.Z = -b.depth / float64(b.sink)
		case TurtleRising:
			e.Velocity.Z = b.depth / float64(b.rise)
		default:
			e.Velocity.Z = 0
		}
		e.Solid = phase != TurtleSubmerged
		if d := drawableOf(e); d != nil {
			d.SetHidden(phase == TurtleSubmerged)
		}
		st.Clock = (st.Clock + 1) % b.cycle()
		wrapped = st.Clock == 0
	}
	b.moverBehavior.OnStep(e, in, w)
	if wrapped {
		e.Position.Z = 0
	}
}
