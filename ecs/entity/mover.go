package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/component"
	"github.com/milk9111/frogger/ecs/render"
	"github.com/milk9111/frogger/prefabs"
	"golang.org/x/image/colornames"
)

// moverInset keeps lane traffic a little thinner than a row so a frog in
// the next row never touches it.
const moverInset = 0.1

// moverBehavior moves with default motion and removes the mover once it has
// fully left the lane.
type moverBehavior struct {
	columns float64
}

func (b *moverBehavior) OnStep(e *ecs.Entity, _ ecs.Input, _ *ecs.World) {
	e.Move()
	if offLane(e, b.columns) {
		e.MarkedForDeletion = true
	}
}

func offLane(e *ecs.Entity, columns float64) bool {
	switch {
	case e.Velocity.X > 0:
		return e.Position.X > columns
	case e.Velocity.X < 0:
		return e.Position.X+e.Width < 0
	}
	return false
}

// BuildMover returns the mover a lane spawns at column x.
func BuildMover(surface render.Surface, lane prefabs.LaneSpec, x, length float64, level prefabs.LevelSpec, turtle prefabs.TurtleSpec) (*ecs.Entity, error) {
	if length <= 0 {
		length = lane.Length
	}
	columns := float64(level.Columns)
	switch lane.Mover {
	case prefabs.MoverCar, prefabs.MoverTruck:
		return BuildVehicle(surface, lane, x, length, columns), nil
	case prefabs.MoverLog:
		return BuildLog(surface, lane, x, length, columns), nil
	case prefabs.MoverTurtle:
		return BuildTurtle(surface, lane, x, length, columns, turtle), nil
	}
	return nil, fmt.Errorf("entity: build mover: lane %d: unknown mover %q", lane.Row, lane.Mover)
}

func BuildVehicle(surface render.Surface, lane prefabs.LaneSpec, x, length, columns float64) *ecs.Entity {
	e := newMover(TypeCar, lane, x, length)
	e.Props = &VehicleState{Lane: lane.Row}
	e.SetBehavior(&moverBehavior{columns: columns})
	attachDrawable(surface, e, lane.Color.Or(colornames.Yellow), LayerMover)
	return e
}

func BuildLog(surface render.Surface, lane prefabs.LaneSpec, x, length, columns float64) *ecs.Entity {
	e := newMover(TypeLog, lane, x, length)
	e.Props = &LogState{Lane: lane.Row}
	e.SetBehavior(&moverBehavior{columns: columns})
	attachDrawable(surface, e, lane.Color.Or(colornames.Saddlebrown), LayerMover)
	return e
}

func newMover(t ecs.EntityType, lane prefabs.LaneSpec, x, length float64) *ecs.Entity {
	e := ecs.NewEntity(t, length, 1-2*moverInset)
	e.Position = ecs.Vec3{X: x, Y: float64(lane.Row) + moverInset}
	e.Velocity = ecs.Vec3{X: lane.Speed * float64(lane.Direction)}
	return e
}

func attachDrawable(surface render.Surface, e *ecs.Entity, clr color.Color, layer float64) *component.Drawable {
	d := component.NewDrawable(surface, e, clr)
	d.ZBias = layer
	e.AddComponent(d)
	return d
}

// drawableOf returns the first Drawable owned by e.
func drawableOf(e *ecs.Entity) *component.Drawable {
	for _, c := range e.Components() {
		if d, ok := c.(*component.Drawable); ok {
			return d
		}
	}
	return nil
}
