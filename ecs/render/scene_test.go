package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestSceneSpriteOrder(t *testing.T) {
	s := NewScene()
	back := &Sprite{Z: -10}
	first := &Sprite{}
	second := &Sprite{}
	front := &Sprite{Z: 5}

	s.AddSprite(front)
	s.AddSprite(first)
	s.AddSprite(back)
	s.AddSprite(second)
	s.AddSprite(first)

	assert.Equal(t, []*Sprite{back, first, second, front}, s.Sprites())
	assert.Equal(t, 4, s.Len())
}

func TestSceneHiddenSprites(t *testing.T) {
	s := NewScene()
	sp := &Sprite{Hidden: true}
	s.AddSprite(sp)

	assert.Empty(t, s.Sprites())
	assert.True(t, s.Has(sp))
	assert.Equal(t, 1, s.Len())
}

func TestSceneRemove(t *testing.T) {
	s := NewScene()
	sp := &Sprite{}
	l := &Label{Text: "hi", Color: colornames.White}
	s.AddSprite(sp)
	s.AddLabel(l)
	s.AddSprite(nil)
	s.AddLabel(nil)

	s.RemoveSprite(sp)
	s.RemoveLabel(l)
	assert.False(t, s.Has(sp))
	assert.False(t, s.HasLabel(l))
	assert.Empty(t, s.Sprites())
	assert.Empty(t, s.Labels())
}

func TestSceneLabelsInAttachOrder(t *testing.T) {
	s := NewScene()
	a, b := &Label{Text: "a"}, &Label{Text: "b"}
	s.AddLabel(b)
	s.AddLabel(a)
	assert.Equal(t, []*Label{b, a}, s.Labels())
}

func TestSceneView(t *testing.T) {
	s := NewScene()
	s.SetView(1.5, 3)
	x, y := s.View()
	assert.Equal(t, 1.5, x)
	assert.Equal(t, 3.0, y)
}
