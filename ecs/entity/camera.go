package entity

import (
	"github.com/milk9111/frogger/common"
	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/component"
	"github.com/milk9111/frogger/ecs/render"
	"github.com/milk9111/frogger/prefabs"
)

// cameraBehavior eases the view anchor toward the row under the target,
// keeping LeadRows of lookahead and staying inside the level.
type cameraBehavior struct{}

func (cameraBehavior) OnStep(e *ecs.Entity, _ ecs.Input, w *ecs.World) {
	st := e.Props.(*CameraState)
	target, ok := w.Lookup(st.Target)
	if !ok {
		return
	}
	want := common.Clamp(target.Position.Y-st.LeadRows, st.MinY, st.MaxY)
	e.Position.Y = common.Lerp(e.Position.Y, want, st.Smoothness)
}

// BuildCamera returns the camera following target.
func BuildCamera(surface render.Surface, spec prefabs.CameraSpec, level prefabs.LevelSpec, target ecs.EntityID) *ecs.Entity {
	smooth := spec.Smoothness
	if smooth <= 0 || smooth > 1 {
		smooth = 0.15
	}
	visible := level.Visible
	if visible <= 0 || visible > level.Rows {
		visible = level.Rows
	}

	e := ecs.NewEntity(TypeCamera, 0, 0)
	e.Solid = false
	e.Props = &CameraState{
		Target:     target,
		Smoothness: smooth,
		LeadRows:   spec.LeadRows,
		MaxY:       float64(level.Rows - visible),
	}
	e.SetBehavior(cameraBehavior{})
	e.AddComponent(component.NewView(surface, e))
	return e
}
