package entity

import (
	"testing"

	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadContent(t *testing.T) *prefabs.Content {
	t.Helper()
	old := prefabs.Dir
	prefabs.Dir = t.TempDir()
	t.Cleanup(func() { prefabs.Dir = old })

	c, err := prefabs.LoadContent("")
	require.NoError(t, err)
	return c
}

func TestBuildLevel(t *testing.T) {
	content := loadContent(t)
	w, scene := newTestWorld(t)
	s := NewSession(content.Level.Lives, content.Level.GoalScore, content.Level.LevelBonus)

	lvl, err := BuildLevel(w, scene, content, s, 0)
	require.NoError(t, err)
	require.NotNil(t, lvl.Frog)

	rows := content.Level.Rows
	assert.Len(t, countType(w, TypeGoal), len(content.Level.Goals))
	assert.Len(t, countType(w, TypeBuilder), len(content.Level.Lanes))
	assert.Len(t, countType(w, TypeFrog), 1)
	assert.Len(t, countType(w, TypeCamera), 1)
	assert.Len(t, countType(w, TypeHUD), 1)
	assert.Equal(t, rows, len(countType(w, TypeWater))+len(countType(w, TypeGround)))
	assert.True(t, w.Collisions().Reacts(TypeFrog, TypeCar))
	assert.False(t, w.Collisions().Reacts(TypeCar, TypeFrog))

	for _, name := range []string{ScriptKill, ScriptGameOver, ScriptLevelClear} {
		assert.True(t, w.Scripts().Has(name), name)
	}

	// Prewarmed lanes fill up on the first frame.
	w.Tick()
	assert.NotEmpty(t, countType(w, TypeCar))
	assert.NotEmpty(t, countType(w, TypeLog))
	assert.NotEmpty(t, countType(w, TypeTurtle))
}

func TestBuildLevelIdleFrogSurvives(t *testing.T) {
	content := loadContent(t)
	w, scene := newTestWorld(t)
	s := NewSession(content.Level.Lives, content.Level.GoalScore, content.Level.LevelBonus)
	_, err := BuildLevel(w, scene, content, s, 7)
	require.NoError(t, err)

	for i := 0; i < 600; i++ {
		w.Tick()
	}
	assert.Equal(t, content.Level.Lives, s.Lives)
	assert.False(t, s.Over())
}

func TestBuildLevelFrogDiesOnRoad(t *testing.T) {
	content := loadContent(t)
	w, scene := newTestWorld(t)
	s := NewSession(content.Level.Lives, content.Level.GoalScore, content.Level.LevelBonus)
	lvl, err := BuildLevel(w, scene, content, s, 0)
	require.NoError(t, err)

	// Park the frog in the middle of the first road lane until traffic hits it.
	st := lvl.Frog.Props.(*FrogState)
	for i := 0; i < 2000 && st.Deaths == 0; i++ {
		if st.Mode == FrogIdle && lvl.Frog.Position.Y < 1 {
			lvl.Frog.Position.Y += 1
		}
		w.Tick()
	}
	assert.Equal(t, 1, st.Deaths)
	assert.Equal(t, content.Level.Lives-1, s.Lives)
}

func TestBuildLevelRejectsInvalidContent(t *testing.T) {
	content := loadContent(t)
	content.Level.Lanes[0].Direction = 0
	w, scene := newTestWorld(t)
	_, err := BuildLevel(w, scene, content, NewSession(3, 0, 0), 0)
	assert.ErrorIs(t, err, prefabs.ErrInvalidSpec)

	_, err = BuildLevel(ecs.NewWorld(), scene, nil, NewSession(3, 0, 0), 0)
	assert.Error(t, err)
}
