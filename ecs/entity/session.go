package entity

import (
	"fmt"

	"github.com/milk9111/frogger/ecs"
	"go.uber.org/zap"
)

// Script names registered by a Session.
const (
	ScriptKill       = "kill"
	ScriptGameOver   = "gameover"
	ScriptLevelClear = "levelclear"
)

// Services is the typed set of shared routines behaviors call. It is bound
// once per level so a missing script fails the build, not a frame.
type Services struct {
	KillFrog  ecs.ScriptFunc
	ReachGoal func(w *ecs.World, goal *ecs.Entity)
	AddScore  func(points int)
}

// BindServices resolves the session scripts from the world registry.
func BindServices(w *ecs.World, s *Session) (*Services, error) {
	kill, err := w.Scripts().Lookup(ScriptKill)
	if err != nil {
		return nil, fmt.Errorf("entity: bind services: %w", err)
	}
	// Reached through w.Call from the session itself.
	for _, name := range []string{ScriptGameOver, ScriptLevelClear} {
		if !w.Scripts().Has(name) {
			return nil, fmt.Errorf("entity: bind services: %q: %w", name, ecs.ErrScriptNotFound)
		}
	}
	return &Services{
		KillFrog:  kill,
		ReachGoal: s.reachGoal,
		AddScore:  s.AddScore,
	}, nil
}

// Session keeps score, lives and goal progress for one run.
type Session struct {
	Score int
	Lives int
	Level int

	goalScore  int
	levelBonus int
	goals      []ecs.EntityID
	over       bool

	// OnGameOver runs once when the last life is lost.
	OnGameOver func()
}

func NewSession(lives, goalScore, levelBonus int) *Session {
	return &Session{
		Lives:      lives,
		Level:      1,
		goalScore:  goalScore,
		levelBonus: levelBonus,
	}
}

// Over reports whether the run has ended.
func (s *Session) Over() bool {
	return s.over
}

// AddScore adds points to the score.
func (s *Session) AddScore(points int) {
	s.Score += points
}

// TrackGoal adds a goal entity to the set that clears the level.
func (s *Session) TrackGoal(id ecs.EntityID) {
	s.goals = append(s.goals, id)
}

// Register installs the kill, game over and level clear scripts on w.
func (s *Session) Register(w *ecs.World) {
	w.Scripts().Register(ScriptKill, s.kill)
	w.Scripts().Register(ScriptGameOver, s.gameOver)
	w.Scripts().Register(ScriptLevelClear, s.levelClear)
}

func (s *Session) kill(w *ecs.World) {
	if s.over {
		return
	}
	s.Lives--
	w.Logger().Info("frog died", zap.Int("lives", s.Lives), zap.Int("score", s.Score))
	if s.Lives <= 0 {
		w.Call(ScriptGameOver)
	}
}

func (s *Session) gameOver(w *ecs.World) {
	if s.over {
		return
	}
	s.over = true
	w.Logger().Info("game over", zap.Int("score", s.Score), zap.Int("level", s.Level))
	if s.OnGameOver != nil {
		s.OnGameOver()
	}
}

func (s *Session) reachGoal(w *ecs.World, goal *ecs.Entity) {
	st, ok := goal.Props.(*GoalState)
	if !ok || st.Filled {
		return
	}
	st.Filled = true
	s.AddScore(s.goalScore)
	for _, id := range s.goals {
		g, ok := w.Lookup(id)
		if !ok {
			continue
		}
		if gs, ok := g.Props.(*GoalState); ok && !gs.Filled {
			return
		}
	}
	w.Call(ScriptLevelClear)
}

func (s *Session) levelClear(w *ecs.World) {
	s.AddScore(s.levelBonus)
	s.Level++
	for _, id := range s.goals {
		if g, ok := w.Lookup(id); ok {
			if gs, ok := g.Props.(*GoalState); ok {
				gs.Filled = false
			}
		}
	}
	w.Logger().Info("level cleared", zap.Int("level", s.Level), zap.Int("score", s.Score))
}
