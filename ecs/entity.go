package ecs

import "strconv"

// EntityID identifies one entity instance inside a world. Zero is never
// handed out.
type EntityID uint64

func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Valid reports whether the id was assigned by a world.
func (id EntityID) Valid() bool {
	return id > 0
}

// EntityType tags an entity archetype. It is only used for collision rule
// lookup and is shared by every instance of the archetype.
type EntityType uint16

// Vec3 holds x/y grid coordinates plus a z layering offset.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Properties is the behavior-specific state carried by an entity. Each
// archetype has one concrete implementation.
type Properties interface {
	Archetype() EntityType
}

// StepHook replaces default motion for an entity.
type StepHook interface {
	OnStep(e *Entity, in Input, w *World)
}

// CollideHook receives collisions the entity's type reacts to.
type CollideHook interface {
	OnCollide(e, other *Entity, w *World)
}

// DestroyHook runs once when the entity is swept, after its components
// were destroyed.
type DestroyHook interface {
	OnDestroy(e *Entity, w *World)
}

// Entity is the simulation unit stepped by a World.
type Entity struct {
	ID   EntityID
	Type EntityType

	Enabled           bool
	Solid             bool
	MarkedForDeletion bool

	Width  float64
	Height float64

	Position Vec3
	Velocity Vec3

	Props Properties

	Step    StepHook
	Collide CollideHook
	Destroy DestroyHook

	components []Component
}

// NewEntity returns an enabled, solid entity of type t.
func NewEntity(t EntityType, width, height float64) *Entity {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Entity{
		Type:    t,
		Enabled: true,
		Solid:   true,
		Width:   width,
		Height:  height,
	}
}

// SetBehavior attaches every hook b implements. Hooks b does not implement
// are left untouched.
func (e *Entity) SetBehavior(b any) {
	if s, ok := b.(StepHook); ok {
		e.Step = s
	}
	if c, ok := b.(CollideHook); ok {
		e.Collide = c
	}
	if d, ok := b.(DestroyHook); ok {
		e.Destroy = d
	}
}

// AddComponent appends c to the entity's components. Handle order follows
// insertion order.
func (e *Entity) AddComponent(c Component) {
	if c == nil {
		return
	}
	e.components = append(e.components, c)
}

// Components returns the owned components in insertion order.
func (e *Entity) Components() []Component {
	return e.components
}

// Move applies default motion.
func (e *Entity) Move() {
	e.Position = e.Position.Add(e.Velocity)
}

// StepEntity handles every component, then runs the step hook or default
// motion. Components are synced before motion.
func (e *Entity) StepEntity(in Input, w *World) {
	for _, c := range e.components {
		c.Handle()
	}
	if e.Step != nil {
		e.Step.OnStep(e, in, w)
		return
	}
	e.Move()
}

func (e *Entity) handleCategory(cat Category) {
	for _, c := range e.components {
		if c.Category() == cat {
			c.Handle()
		}
	}
}

func (e *Entity) destroy(w *World) {
	for _, c := range e.components {
		if d, ok := c.(ComponentDestroyer); ok {
			d.Destroy()
		}
	}
	if e.Destroy != nil {
		e.Destroy.OnDestroy(e, w)
	}
}
