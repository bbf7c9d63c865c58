package entity

import (
	"fmt"

	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/component"
	"github.com/milk9111/frogger/ecs/render"
	"golang.org/x/image/colornames"
)

// BuildHUD returns the score line. Its label sits in screen rows, not world
// rows, so it does not scroll with the camera.
func BuildHUD(surface render.Surface, s *Session, row int) *ecs.Entity {
	e := ecs.NewEntity(TypeHUD, 0, 0)
	e.Solid = false
	e.Enabled = false
	e.Position = ecs.Vec3{X: 0.2, Y: float64(row)}
	e.Props = &HUDState{}
	e.AddComponent(component.NewTextDrawable(surface, e, func(*ecs.Entity) string {
		return fmt.Sprintf("SCORE %d  LIVES %d  LEVEL %d", s.Score, s.Lives, s.Level)
	}, colornames.White))
	return e
}
