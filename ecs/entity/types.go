package entity

import (
	"github.com/milk9111/frogger/ecs"
	"github.com/tanema/gween"
)

const (
	TypeFrog ecs.EntityType = iota + 1
	TypeCar
	TypeLog
	TypeTurtle
	TypeWater
	TypeGoal
	TypeBuilder
	TypeCamera
	TypeHUD
	TypeGround
)

var typeNames = map[ecs.EntityType]string{
	TypeFrog:    "frog",
	TypeCar:     "car",
	TypeLog:     "log",
	TypeTurtle:  "turtle",
	TypeWater:   "water",
	TypeGoal:    "goal",
	TypeBuilder: "builder",
	TypeCamera:  "camera",
	TypeHUD:     "hud",
	TypeGround:  "ground",
}

// TypeName returns the readable name of t.
func TypeName(t ecs.EntityType) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Layers order sprites back to front.
const (
	LayerGround = -10
	LayerGoal   = -5
	LayerMover  = 0
	LayerFrog   = 10
)

type FrogMode uint8

const (
	FrogIdle FrogMode = iota
	FrogHopping
)

type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseVehicle
	CauseWater
	CauseOffscreen
	CauseGoalTaken
)

func (c DeathCause) String() string {
	switch c {
	case CauseVehicle:
		return "vehicle"
	case CauseWater:
		return "water"
	case CauseOffscreen:
		return "offscreen"
	case CauseGoalTaken:
		return "goal taken"
	default:
		return "none"
	}
}

type FrogState struct {
	Mode     FrogMode
	HopFrame int
	HopDir   ecs.Vec3
	hopArc   [2]*gween.Tween

	// Latched is set while a direction key stays held after a hop started.
	Latched bool

	// Collision results, consumed by the next step.
	Riding         bool
	Ride           ecs.Vec3
	MarkedForDeath bool
	Cause          DeathCause
	Reached        *ecs.Entity

	StartX, StartY float64
	BestRow        int
	Deaths         int
}

func (*FrogState) Archetype() ecs.EntityType { return TypeFrog }

type VehicleState struct {
	Lane int
}

func (*VehicleState) Archetype() ecs.EntityType { return TypeCar }

type LogState struct {
	Lane int
}

func (*LogState) Archetype() ecs.EntityType { return TypeLog }

// TurtlePhase is derived from the dive clock.
type TurtlePhase uint8

const (
	TurtleSurfaced TurtlePhase = iota
	TurtleSinking
	TurtleSubmerged
	TurtleRising
)

type TurtleState struct {
	Lane int
	// Clock is the single dive driver: it selects the phase, and the phase
	// sets both the vertical velocity and whether the turtle can be stood on.
	Clock int
	Diver bool
}

func (*TurtleState) Archetype() ecs.EntityType { return TypeTurtle }

type BuilderState struct {
	Lane    int
	Frame   int
	Spawned int
	Warmed  bool
}

func (*BuilderState) Archetype() ecs.EntityType { return TypeBuilder }

type CameraState struct {
	Target     ecs.EntityID
	Smoothness float64
	LeadRows   float64
	MinY, MaxY float64
}

func (*CameraState) Archetype() ecs.EntityType { return TypeCamera }

type GoalState struct {
	Filled bool
}

func (*GoalState) Archetype() ecs.EntityType { return TypeGoal }

type HUDState struct{}

func (*HUDState) Archetype() ecs.EntityType { return TypeHUD }

type GroundState struct{}

func (*GroundState) Archetype() ecs.EntityType { return TypeGround }

type WaterState struct{}

func (*WaterState) Archetype() ecs.EntityType { return TypeWater }
