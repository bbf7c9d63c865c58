package component

import (
	"image/color"

	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/render"
)

// Drawable keeps a sprite proxy on a surface in sync with its entity.
type Drawable struct {
	parent  *ecs.Entity
	surface render.Surface
	sprite  *render.Sprite

	// ZBias is added to the entity's Z when ordering the proxy.
	ZBias float64
}

var _ ecs.ComponentDestroyer = (*Drawable)(nil)

// NewDrawable attaches a sprite for parent to surface.
func NewDrawable(surface render.Surface, parent *ecs.Entity, clr color.Color) *Drawable {
	d := &Drawable{
		parent:  parent,
		surface: surface,
		sprite:  &render.Sprite{Color: clr},
	}
	d.Handle()
	surface.AddSprite(d.sprite)
	return d
}

func (d *Drawable) Category() ecs.Category {
	return ecs.CategoryVisual
}

// Handle copies the parent's box and depth into the proxy.
func (d *Drawable) Handle() {
	p := d.parent
	d.sprite.X = p.Position.X
	d.sprite.Y = p.Position.Y
	d.sprite.Z = p.Position.Z + d.ZBias
	d.sprite.W = p.Width
	d.sprite.H = p.Height
}

// Destroy detaches the proxy.
func (d *Drawable) Destroy() {
	d.surface.RemoveSprite(d.sprite)
}

// Sprite returns the proxy.
func (d *Drawable) Sprite() *render.Sprite {
	return d.sprite
}

// SetColor changes the proxy colour.
func (d *Drawable) SetColor(clr color.Color) {
	d.sprite.Color = clr
}

// SetHidden hides or shows the proxy without detaching it.
func (d *Drawable) SetHidden(hidden bool) {
	d.sprite.Hidden = hidden
}
