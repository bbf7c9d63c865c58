package entity

import (
	"fmt"

	"github.com/milk9111/frogger/ecs"
	"github.com/milk9111/frogger/ecs/render"
	"github.com/milk9111/frogger/prefabs"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

// collisionRules lists, per reacting type, the types it reacts to. Only the
// frog reacts; everything else is moved or filled by the frog's hooks.
var collisionRules = map[ecs.EntityType][]ecs.EntityType{
	TypeFrog: {TypeCar, TypeLog, TypeTurtle, TypeWater, TypeGoal},
}

// Level holds the handles a host needs after BuildLevel.
type Level struct {
	Frog     *ecs.Entity
	Camera   *ecs.Entity
	HUD      *ecs.Entity
	Services *Services
}

// BuildLevel registers the session scripts and collision rules on w and adds
// the board, lane builders, frog, camera and HUD, in that order.
func BuildLevel(w *ecs.World, surface render.Surface, content *prefabs.Content, session *Session, seed int) (*Level, error) {
	if content == nil {
		return nil, fmt.Errorf("entity: build level: nil content")
	}
	lvl := content.Level
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("entity: build level: %w", err)
	}

	session.Register(w)
	svc, err := BindServices(w, session)
	if err != nil {
		return nil, err
	}

	w.Collisions().Pairs(collisionRules)

	columns := float64(lvl.Columns)
	lanes := make(map[int]prefabs.LaneSpec, len(lvl.Lanes))
	for _, lane := range lvl.Lanes {
		lanes[lane.Row] = lane
	}

	grass := lvl.Grass.Or(colornames.Darkgreen)
	road := lvl.Road.Or(colornames.Dimgray)
	water := lvl.Water.Or(colornames.Navy)
	goalRow := lvl.Rows - 1
	for row := 0; row < lvl.Rows; row++ {
		lane, ok := lanes[row]
		switch {
		case row == goalRow:
			w.Add(BuildWater(surface, row, columns, water))
		case ok && lane.Kind == prefabs.LaneRiver:
			w.Add(BuildWater(surface, row, columns, water))
		case ok && lane.Kind == prefabs.LaneRoad:
			w.Add(BuildGround(surface, row, columns, road))
		default:
			w.Add(BuildGround(surface, row, columns, grass))
		}
	}

	open := lvl.Goal.Or(colornames.Seagreen)
	filled := lvl.GoalFilled.Or(colornames.Gold)
	goals := make([]ecs.EntityID, 0, len(lvl.Goals))
	for _, col := range lvl.Goals {
		g := w.Add(BuildGoal(surface, col, goalRow, open, filled))
		goals = append(goals, g.ID)
	}

	for _, lane := range lvl.Lanes {
		b, err := BuildBuilder(surface, lane, lvl, content.Turtle, seed)
		if err != nil {
			return nil, err
		}
		w.Add(b)
	}

	frog := w.Add(BuildFrog(surface, content.Frog, lvl, svc))
	camera := w.Add(BuildCamera(surface, content.Camera, lvl, frog.ID))

	visible := lvl.Visible
	if visible <= 0 || visible > lvl.Rows {
		visible = lvl.Rows
	}
	hud := w.Add(BuildHUD(surface, session, visible-1))

	// The session only learns about this board once nothing else can fail.
	session.goals = goals

	counts := make(map[string]int)
	for _, e := range w.Entities() {
		counts[TypeName(e.Type)]++
	}
	w.Logger().Debug("level assembled", zap.String("level", lvl.Name), zap.Any("entities", counts))

	return &Level{Frog: frog, Camera: camera, HUD: hud, Services: svc}, nil
}
