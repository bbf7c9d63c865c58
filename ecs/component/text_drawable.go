package component

import (
	"image/color"

	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/render"
)

// TextFunc produces the text shown for an entity this frame.
type TextFunc func(e *ecs.Entity) string

// TextDrawable keeps a UI label in sync with its entity: text, position
// relative to the entity and colour.
type TextDrawable struct {
	parent  *ecs.Entity
	surface render.Surface
	label   *render.Label
	text    TextFunc

	OffsetX, OffsetY float64
	Color            color.Color
}

var _ ecs.ComponentDestroyer = (*TextDrawable)(nil)

// NewTextDrawable attaches a label for parent to surface.
func NewTextDrawable(surface render.Surface, parent *ecs.Entity, text TextFunc, clr color.Color) *TextDrawable {
	t := &TextDrawable{
		parent:  parent,
		surface: surface,
		label:   &render.Label{},
		text:    text,
		Color:   clr,
	}
	t.Handle()
	surface.AddLabel(t.label)
	return t
}

func (t *TextDrawable) Category() ecs.Category {
	return ecs.CategoryNonVisual
}

func (t *TextDrawable) Handle() {
	if t.text != nil {
		t.label.Text = t.text(t.parent)
	}
	t.label.X = t.parent.Position.X + t.OffsetX
	t.label.Y = t.parent.Position.Y + t.OffsetY
	t.label.Color = t.Color
}

func (t *TextDrawable) Destroy() {
	t.surface.RemoveLabel(t.label)
}

// Label returns the proxy.
func (t *TextDrawable) Label() *render.Label {
	return t.label
}
