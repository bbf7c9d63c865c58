package render

import (
	"image/color"
	"sort"
)

// Sprite is a filled box proxy in grid units.
type Sprite struct {
	X, Y, Z float64
	W, H    float64
	Color   color.Color
	Hidden  bool

	seq uint64
}

// Label is a text proxy anchored at a grid position.
type Label struct {
	Text  string
	X, Y  float64
	Color color.Color

	seq uint64
}

// Surface is what components attach their proxies to.
type Surface interface {
	AddSprite(s *Sprite)
	RemoveSprite(s *Sprite)
	AddLabel(l *Label)
	RemoveLabel(l *Label)
	SetView(x, y float64)
}

// Scene is the in-memory Surface drawn by the ebiten and terminal backends.
type Scene struct {
	sprites map[*Sprite]struct{}
	labels  map[*Label]struct{}
	seq     uint64

	viewX, viewY float64
}

var _ Surface = (*Scene)(nil)

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{
		sprites: make(map[*Sprite]struct{}),
		labels:  make(map[*Label]struct{}),
	}
}

func (s *Scene) AddSprite(sp *Sprite) {
	if sp == nil {
		return
	}
	if _, ok := s.sprites[sp]; ok {
		return
	}
	s.seq++
	sp.seq = s.seq
	s.sprites[sp] = struct{}{}
}

func (s *Scene) RemoveSprite(sp *Sprite) {
	delete(s.sprites, sp)
}

func (s *Scene) AddLabel(l *Label) {
	if l == nil {
		return
	}
	if _, ok := s.labels[l]; ok {
		return
	}
	s.seq++
	l.seq = s.seq
	s.labels[l] = struct{}{}
}

func (s *Scene) RemoveLabel(l *Label) {
	delete(s.labels, l)
}

func (s *Scene) SetView(x, y float64) {
	s.viewX = x
	s.viewY = y
}

// View returns the grid point the view is anchored at.
func (s *Scene) View() (float64, float64) {
	return s.viewX, s.viewY
}

// Sprites returns the visible sprites ordered by Z, then by attach order.
func (s *Scene) Sprites() []*Sprite {
	out := make([]*Sprite, 0, len(s.sprites))
	for sp := range s.sprites {
		if sp.Hidden {
			continue
		}
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].seq < out[j].seq
	})
	return out
}

// Labels returns the labels in attach order.
func (s *Scene) Labels() []*Label {
	out := make([]*Label, 0, len(s.labels))
	for l := range s.labels {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Len returns the number of attached sprites, hidden ones included.
func (s *Scene) Len() int {
	return len(s.sprites)
}

// Has reports whether sp is attached.
func (s *Scene) Has(sp *Sprite) bool {
	_, ok := s.sprites[sp]
	return ok
}

// HasLabel reports whether l is attached.
func (s *Scene) HasLabel(l *Label) bool {
	_, ok := s.labels[l]
	return ok
}
