package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hit struct {
	self, other EntityID
}

func recordHits(hits *[]hit) collideFunc {
	return func(e, other *Entity, _ *World) {
		*hits = append(*hits, hit{e.ID, other.ID})
	}
}

func TestCollisionRulesAreDirectional(t *testing.T) {
	cases := []struct {
		name  string
		rules map[EntityType][]EntityType
		want  []hit
	}{
		{"none", nil, nil},
		{"a_reacts_to_b", map[EntityType][]EntityType{typeA: {typeB}}, []hit{{1, 2}}},
		{"b_reacts_to_a", map[EntityType][]EntityType{typeB: {typeA}}, []hit{{2, 1}}},
		{"both", map[EntityType][]EntityType{typeA: {typeB}, typeB: {typeA}}, []hit{{1, 2}, {2, 1}}},
		{"unrelated", map[EntityType][]EntityType{typeA: {typeC}}, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			var hits []hit
			a := w.Add(box(typeA, 0, 0, 1, 1))
			b := w.Add(box(typeB, 0.5, 0, 1, 1))
			a.Collide = recordHits(&hits)
			b.Collide = recordHits(&hits)
			w.Collisions().Pairs(c.rules)

			w.HandleCollisions()
			assert.Equal(t, c.want, hits)
		})
	}
}

func TestCollisionSkipsNonSolid(t *testing.T) {
	w := NewWorld()
	var hits []hit
	a := w.Add(box(typeA, 0, 0, 1, 1))
	b := w.Add(box(typeB, 0, 0, 1, 1))
	a.Collide = recordHits(&hits)
	b.Solid = false
	w.Collisions().Register(typeA, typeB)

	w.HandleCollisions()
	assert.Empty(t, hits)
	assert.Zero(t, w.Collisions().Checks())
}

func TestCollisionReadsSolidityLive(t *testing.T) {
	w := NewWorld()
	var hits []hit
	a := w.Add(box(typeA, 0, 0, 1, 1))
	b := w.Add(box(typeB, 0, 0, 1, 1))
	c := w.Add(box(typeC, 0, 0, 1, 1))
	a.Collide = collideFunc(func(e, other *Entity, w *World) {
		hits = append(hits, hit{e.ID, other.ID})
		// Turning c off must stop the pairs still to come.
		c.Solid = false
	})
	b.Collide = recordHits(&hits)
	w.Collisions().Register(typeA, typeB, typeC)
	w.Collisions().Register(typeB, typeC)

	w.HandleCollisions()
	assert.Equal(t, []hit{{a.ID, b.ID}}, hits)
	assert.Equal(t, 1, w.Collisions().Checks())
}

func TestCollisionMissingHookIsAbsorbed(t *testing.T) {
	w := NewWorld()
	var hits []hit
	a := w.Add(box(typeA, 0, 0, 1, 1))
	b := w.Add(box(typeB, 0, 0, 1, 1))
	b.Collide = recordHits(&hits)
	w.Collisions().Pairs(map[EntityType][]EntityType{typeA: {typeB}, typeB: {typeA}})

	require.NotPanics(t, w.HandleCollisions)
	assert.Equal(t, []hit{{b.ID, a.ID}}, hits)
}

func TestCollisionChecksEveryPairOnce(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.Add(box(typeA, float64(i)*10, 0, 1, 1))
	}
	w.HandleCollisions()
	assert.Equal(t, 10, w.Collisions().Checks())
}

func TestReacts(t *testing.T) {
	h := NewCollisionHandler()
	h.Register(typeA, typeB)
	assert.True(t, h.Reacts(typeA, typeB))
	assert.False(t, h.Reacts(typeB, typeA))
	assert.False(t, h.Reacts(typeC, typeA))
}
