package ecs

type stepFunc func(e *Entity, in Input, w *World)

func (f stepFunc) OnStep(e *Entity, in Input, w *World) { f(e, in, w) }

type collideFunc func(e, other *Entity, w *World)

func (f collideFunc) OnCollide(e, other *Entity, w *World) { f(e, other, w) }

type destroyFunc func(e *Entity, w *World)

func (f destroyFunc) OnDestroy(e *Entity, w *World) { f(e, w) }

// recorder appends its name to a shared log whenever it is handled or
// destroyed.
type recorder struct {
	name string
	cat  Category
	log  *[]string
}

func (r *recorder) Handle()            { *r.log = append(*r.log, r.name) }
func (r *recorder) Category() Category { return r.cat }
func (r *recorder) Destroy()           { *r.log = append(*r.log, r.name+":destroy") }

const (
	typeA EntityType = iota + 1
	typeB
	typeC
)

func box(t EntityType, x, y, w, h float64) *Entity {
	e := NewEntity(t, w, h)
	e.Position = Vec3{X: x, Y: y}
	return e
}
