package ecs

// Category decides which world phase handles a component. It is fixed when
// the component is built.
type Category uint8

const (
	// CategoryNonVisual components are handled in HandleComponents.
	CategoryNonVisual Category = iota
	// CategoryVisual components are handled in Draw.
	CategoryVisual
)

func (c Category) String() string {
	switch c {
	case CategoryVisual:
		return "visual"
	default:
		return "non-visual"
	}
}

// Component is a per-frame unit owned by exactly one entity.
type Component interface {
	Handle()
	Category() Category
}

// ComponentDestroyer is implemented by components that hold resources on an
// external surface and must release them when their entity is swept.
type ComponentDestroyer interface {
	Destroy()
}
