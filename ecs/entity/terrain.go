package entity

import (
	"image/color"

	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/render"
)

// BuildGround returns a non-solid full-width backdrop strip for row.
func BuildGround(surface render.Surface, row int, columns float64, clr color.Color) *ecs.Entity {
	e := ecs.NewEntity(TypeGround, columns, 1)
	e.Solid = false
	e.Enabled = false
	e.Position = ecs.Vec3{Y: float64(row)}
	e.Props = &GroundState{}
	attachDrawable(surface, e, clr, LayerGround)
	return e
}

// BuildWater returns a solid full-width strip that drowns a frog not
// standing on a platform.
func BuildWater(surface render.Surface, row int, columns float64, clr color.Color) *ecs.Entity {
	e := BuildGround(surface, row, columns, clr)
	e.Type = TypeWater
	e.Solid = true
	e.Props = &WaterState{}
	return e
}

type goalBehavior struct {
	open, filled color.Color
}

func (b *goalBehavior) OnStep(e *ecs.Entity, _ ecs.Input, _ *ecs.World) {
	st := e.Props.(*GoalState)
	d := drawableOf(e)
	if d == nil {
		return
	}
	if st.Filled {
		d.SetColor(b.filled)
		return
	}
	d.SetColor(b.open)
}

// BuildGoal returns a one-cell home slot at column col of row.
func BuildGoal(surface render.Surface, col, row int, open, filled color.Color) *ecs.Entity {
	e := ecs.NewEntity(TypeGoal, 1, 1)
	e.Position = ecs.Vec3{X: float64(col), Y: float64(row)}
	e.Props = &GoalState{}
	e.SetBehavior(&goalBehavior{open: open, filled: filled})
	attachDrawable(surface, e, open, LayerGoal)
	return e
}
