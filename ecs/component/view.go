package component

import (
	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/render"
)

// View anchors the surface view at its parent's position every frame.
type View struct {
	parent  *ecs.Entity
	surface render.Surface
}

func NewView(surface render.Surface, parent *ecs.Entity) *View {
	return &View{parent: parent, surface: surface}
}

func (v *View) Category() ecs.Category {
	return ecs.CategoryVisual
}

func (v *View) Handle() {
	v.surface.SetView(v.parent.Position.X, v.parent.Position.Y)
}
