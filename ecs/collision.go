package ecs

// CollisionHandler holds directional type-pair rules and dispatches overlaps.
// A reacting to B says nothing about B reacting to A.
type CollisionHandler struct {
	pairs  map[EntityType]map[EntityType]struct{}
	checks int
}

// NewCollisionHandler returns a handler with no rules.
func NewCollisionHandler() *CollisionHandler {
	return &CollisionHandler{pairs: make(map[EntityType]map[EntityType]struct{})}
}

// Register makes reacting react to each of targets.
func (h *CollisionHandler) Register(reacting EntityType, targets ...EntityType) {
	set, ok := h.pairs[reacting]
	if !ok {
		set = make(map[EntityType]struct{}, len(targets))
		h.pairs[reacting] = set
	}
	for _, t := range targets {
		set[t] = struct{}{}
	}
}

// Pairs registers a whole rule table at once.
func (h *CollisionHandler) Pairs(table map[EntityType][]EntityType) {
	for reacting, targets := range table {
		h.Register(reacting, targets...)
	}
}

// Reacts reports whether type a has a rule for type b.
func (h *CollisionHandler) Reacts(a, b EntityType) bool {
	set, ok := h.pairs[a]
	if !ok {
		return false
	}
	_, ok = set[b]
	return ok
}

// Checks returns how many overlap tests the last Detect performed.
func (h *CollisionHandler) Checks() int {
	return h.checks
}

// Detect tests every unordered pair of solid entities and dispatches both
// directions independently. Solidity and position are read live, so a hook
// that moves or disables an entity affects the rest of the scan.
//
// The scan is O(n^2) over the entity slice. That is fine for a lane-based
// scene of a few hundred entities; anything larger needs a broad phase that
// keeps this dispatch order.
func (h *CollisionHandler) Detect(entities []*Entity, w *World) {
	h.checks = 0
	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			a, b := entities[i], entities[j]
			if !a.Solid || !b.Solid {
				continue
			}
			h.checks++
			if !CollidesWith(a, b) {
				continue
			}
			if h.Reacts(a.Type, b.Type) && a.Collide != nil {
				a.Collide.OnCollide(a, b, w)
			}
			if h.Reacts(b.Type, a.Type) && b.Collide != nil {
				b.Collide.OnCollide(b, a, w)
			}
		}
	}
}
