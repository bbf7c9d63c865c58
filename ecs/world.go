package ecs

import (
	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// Presenter submits a synced frame to a display. It is called at the end of
// Draw.
type Presenter interface {
	Present()
}

// PresenterFunc adapts a func to Presenter.
type PresenterFunc func()

func (f PresenterFunc) Present() { f() }

// Option configures a World.
type Option func(*World)

// WithLogger sets the world logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithPresenter sets the presenter called at the end of Draw.
func WithPresenter(p Presenter) Option {
	return func(w *World) {
		w.presenter = p
	}
}

// WithScripts replaces the script registry.
func WithScripts(s *Scripts) Option {
	return func(w *World) {
		if s != nil {
			w.scripts = s
		}
	}
}

// World owns the entities, the input snapshot, the collision rules and the
// script registry, and runs the frame pipeline.
type World struct {
	entities []*Entity
	index    *intmap.Map[EntityID, *Entity]
	nextID   EntityID

	input      Input
	collisions *CollisionHandler
	scripts    *Scripts

	presenter Presenter
	log       *zap.Logger

	frame uint64
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	w := &World{
		index:      intmap.New[EntityID, *Entity](256),
		collisions: NewCollisionHandler(),
		scripts:    NewScripts(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Add assigns e an id and appends it to the simulation order.
func (w *World) Add(e *Entity) *Entity {
	if e == nil {
		panic("ecs: add nil entity")
	}
	if e.ID.Valid() {
		if existing, ok := w.index.Get(e.ID); ok && existing == e {
			return e
		}
	}
	w.nextID++
	e.ID = w.nextID
	w.entities = append(w.entities, e)
	w.index.Put(e.ID, e)
	return e
}

// Entities returns the live entity slice in simulation order. It is only
// valid until the next sweep.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Len returns the number of entities currently held, including ones marked
// but not yet swept.
func (w *World) Len() int {
	return len(w.entities)
}

// Lookup finds an entity by id. Swept entities are not found.
func (w *World) Lookup(id EntityID) (*Entity, bool) {
	return w.index.Get(id)
}

// Collisions returns the collision handler.
func (w *World) Collisions() *CollisionHandler {
	return w.collisions
}

// Scripts returns the named script registry.
func (w *World) Scripts() *Scripts {
	return w.scripts
}

// Call runs the script registered as name. A missing name panics.
func (w *World) Call(name string) {
	fn, err := w.scripts.Lookup(name)
	if err != nil {
		w.log.Error("script lookup failed", zap.String("script", name), zap.Error(err))
		panic(err)
	}
	fn(w)
}

// Logger returns the world logger.
func (w *World) Logger() *zap.Logger {
	return w.log
}

// Frame returns the number of completed Step phases.
func (w *World) Frame() uint64 {
	return w.frame
}

// PressKey records k as held.
func (w *World) PressKey(k Key) {
	w.input.set(k, true)
}

// ReleaseKey records k as released.
func (w *World) ReleaseKey(k Key) {
	w.input.set(k, false)
}

// Input returns the current keyboard snapshot.
func (w *World) Input() Input {
	return w.input.clone()
}

// Step sweeps, then steps every enabled entity. Entities added while
// stepping are first stepped next frame.
func (w *World) Step() {
	w.sweep()
	in := w.input.clone()
	n := len(w.entities)
	for i := 0; i < n && i < len(w.entities); i++ {
		e := w.entities[i]
		if !e.Enabled {
			continue
		}
		e.StepEntity(in, w)
	}
	w.frame++
}

// HandleComponents sweeps, then handles every non-visual component.
func (w *World) HandleComponents() {
	w.sweep()
	for _, e := range w.entities {
		e.handleCategory(CategoryNonVisual)
	}
}

// HandleCollisions sweeps, then runs detection and dispatch. Entities marked
// here stay in the world until the sweep that opens the next Step, so they
// are drawn one more time.
func (w *World) HandleCollisions() {
	w.sweep()
	w.collisions.Detect(w.entities, w)
}

// Draw handles every visual component and presents. It never sweeps.
func (w *World) Draw() {
	for _, e := range w.entities {
		e.handleCategory(CategoryVisual)
	}
	if w.presenter != nil {
		w.presenter.Present()
	}
}

// Tick runs one full frame: Step, HandleComponents, HandleCollisions, Draw.
func (w *World) Tick() {
	w.Step()
	w.HandleComponents()
	w.HandleCollisions()
	w.Draw()
}

// Clear destroys every entity regardless of marks.
func (w *World) Clear() {
	for _, e := range w.entities {
		e.MarkedForDeletion = true
	}
	w.sweep()
}

func (w *World) sweep() {
	marked := 0
	for _, e := range w.entities {
		if e.MarkedForDeletion {
			marked++
		}
	}
	if marked == 0 {
		return
	}

	doomed := make([]*Entity, 0, marked)
	kept := make([]*Entity, 0, len(w.entities)-marked)
	for _, e := range w.entities {
		if e.MarkedForDeletion {
			doomed = append(doomed, e)
			continue
		}
		kept = append(kept, e)
	}
	w.entities = kept

	// Destroy hooks run after the slice is replaced so anything they add is kept.
	for _, e := range doomed {
		w.index.Del(e.ID)
		e.destroy(w)
	}
	w.log.Debug("swept entities",
		zap.Int("removed", len(doomed)),
		zap.Int("remaining", len(w.entities)),
		zap.Uint64("frame", w.frame),
	)
}
