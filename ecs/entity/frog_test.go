package entity

import (
	"testing"

	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestFrogHopsOncePerPress(t *testing.T) {
	w, scene := newTestWorld(t)
	fake := &fakeServices{}
	frog := w.Add(BuildFrog(scene, testFrogSpec(), testLevel(), fake.services()))
	st := frog.Props.(*FrogState)

	w.PressKey(ecs.KeyUp)
	w.Step()
	assert.Equal(t, FrogHopping, st.Mode)
	assert.Greater(t, frog.Position.Z, 0.0, "mid-hop arc lifts the frog")

	for i := 0; i < 3; i++ {
		w.Step()
	}
	assert.Equal(t, FrogIdle, st.Mode)
	assert.InDelta(t, 1.1, frog.Position.Y, 1e-9)
	assert.InDelta(t, 2.1, frog.Position.X, 1e-9)
	assert.Zero(t, frog.Position.Z)
	assert.Equal(t, 10, fake.score)

	// Still held: no second hop.
	for i := 0; i < 8; i++ {
		w.Step()
	}
	assert.InDelta(t, 1.1, frog.Position.Y, 1e-9)

	w.ReleaseKey(ecs.KeyUp)
	w.Step()
	w.PressKey(ecs.KeyRight)
	for i := 0; i < 4; i++ {
		w.Step()
	}
	assert.InDelta(t, 3.1, frog.Position.X, 1e-9)
	assert.Equal(t, 10, fake.score, "sideways hops do not score")
}

func TestFrogStaysOnBoard(t *testing.T) {
	w, scene := newTestWorld(t)
	fake := &fakeServices{}
	frog := w.Add(BuildFrog(scene, testFrogSpec(), testLevel(), fake.services()))

	w.PressKey(ecs.KeyDown)
	for i := 0; i < 5; i++ {
		w.Step()
	}
	assert.Equal(t, FrogIdle, frog.Props.(*FrogState).Mode)
	assert.InDelta(t, 0.1, frog.Position.Y, 1e-9)
}

func TestFrogKilledByCar(t *testing.T) {
	w, scene := newTestWorld(t)
	fake := &fakeServices{}
	frog := w.Add(BuildFrog(scene, testFrogSpec(), testLevel(), fake.services()))
	st := frog.Props.(*FrogState)
	frog.Position = ecs.Vec3{X: 1.1, Y: 1.1}
	lane := prefabs.LaneSpec{Row: 1, Speed: 0.01, Direction: 1, Color: prefabs.YAMLColor{Color: colornames.Red}}
	w.Add(BuildVehicle(scene, lane, 1, 1, 5))

	w.Tick()
	assert.True(t, st.MarkedForDeath)
	assert.Equal(t, CauseVehicle, st.Cause)
	assert.Zero(t, fake.kills)

	w.Step()
	assert.Equal(t, 1, fake.kills)
	assert.Equal(t, 1, st.Deaths)
	assert.Equal(t, ecs.Vec3{X: st.StartX, Y: st.StartY}, frog.Position)
	assert.False(t, st.MarkedForDeath)
}

func TestFrogRidesThenDrowns(t *testing.T) {
	w, scene := newTestWorld(t)
	fake := &fakeServices{}
	frog := w.Add(BuildFrog(scene, testFrogSpec(), testLevel(), fake.services()))
	frog.Position = ecs.Vec3{X: 2.1, Y: 1.1}
	w.Add(BuildWater(scene, 1, 5, colornames.Navy))
	lane := prefabs.LaneSpec{Row: 1, Speed: 0.1, Direction: 1}
	log := w.Add(BuildLog(scene, lane, 1, 3, 5))

	w.Tick()
	w.Step()
	assert.Zero(t, fake.kills)
	assert.InDelta(t, 2.2, frog.Position.X, 1e-9, "carried by the log")

	log.MarkedForDeletion = true
	w.HandleComponents()
	w.HandleCollisions()
	w.Draw()
	assert.Zero(t, fake.kills)

	w.Step()
	assert.Equal(t, 1, fake.kills)
	assert.Equal(t, CauseNone, frog.Props.(*FrogState).Cause)
}

func TestFrogSurvivesWaterMidHop(t *testing.T) {
	w, scene := newTestWorld(t)
	fake := &fakeServices{}
	frog := w.Add(BuildFrog(scene, testFrogSpec(), testLevel(), fake.services()))
	w.Add(BuildWater(scene, 1, 5, colornames.Navy))
	lane := prefabs.LaneSpec{Row: 1, Speed: 0.001, Direction: 1}
	w.Add(BuildLog(scene, lane, 0, 5, 5))

	w.PressKey(ecs.KeyUp)
	for i := 0; i < 10; i++ {
		w.Tick()
	}
	assert.Zero(t, fake.kills)
	assert.InDelta(t, 1.1, frog.Position.Y, 1e-9)
}

func TestFrogCarriedOffscreenDies(t *testing.T) {
	w, scene := newTestWorld(t)
	fake := &fakeServices{}
	frog := w.Add(BuildFrog(scene, testFrogSpec(), testLevel(), fake.services()))
	frog.Position = ecs.Vec3{X: 4.15, Y: 1.1}
	lane := prefabs.LaneSpec{Row: 1, Speed: 0.2, Direction: 1}
	w.Add(BuildLog(scene, lane, 3, 3, 10))

	w.Tick()
	w.Tick()
	assert.Zero(t, fake.kills)
	w.Step()
	assert.Equal(t, 1, fake.kills)
}

func TestFrogReachesGoal(t *testing.T) {
	w, scene := newTestWorld(t)
	fake := &fakeServices{}
	frog := w.Add(BuildFrog(scene, testFrogSpec(), testLevel(), fake.services()))
	frog.Position = ecs.Vec3{X: 2.1, Y: 4.1}
	w.Add(BuildWater(scene, 4, 5, colornames.Navy))
	goal := w.Add(BuildGoal(scene, 2, 4, colornames.Green, colornames.Gold))

	w.Tick()
	w.Step()
	require.Len(t, fake.reached, 1)
	assert.Same(t, goal, fake.reached[0])
	assert.Zero(t, fake.kills, "reaching a goal beats drowning")
	st := frog.Props.(*FrogState)
	assert.Equal(t, ecs.Vec3{X: st.StartX, Y: st.StartY}, frog.Position)
}

func TestFrogFilledGoalKills(t *testing.T) {
	w, scene := newTestWorld(t)
	fake := &fakeServices{}
	frog := w.Add(BuildFrog(scene, testFrogSpec(), testLevel(), fake.services()))
	frog.Position = ecs.Vec3{X: 2.1, Y: 4.1}
	goal := w.Add(BuildGoal(scene, 2, 4, colornames.Green, colornames.Gold))
	goal.Props.(*GoalState).Filled = true

	w.Tick()
	assert.Equal(t, CauseGoalTaken, frog.Props.(*FrogState).Cause)
	w.Step()
	assert.Equal(t, 1, fake.kills)
	assert.Empty(t, fake.reached)
}

func TestMarkDeathKeepsStrongerCause(t *testing.T) {
	st := &FrogState{}
	st.markDeath(CauseWater)
	st.markDeath(CauseVehicle)
	assert.Equal(t, CauseVehicle, st.Cause)
	st.markDeath(CauseWater)
	assert.Equal(t, CauseVehicle, st.Cause)
}
