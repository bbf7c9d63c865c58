package ecs

import (
	"errors"
	"fmt"
	"sort"
)

var ErrScriptNotFound = errors.New("ecs: script not registered")

// ScriptFunc is a shared routine reachable by name from any behavior.
type ScriptFunc func(w *World)

// Scripts maps names to shared routines. Looking up a name that was never
// registered is a wiring bug and panics.
type Scripts struct {
	funcs map[string]ScriptFunc
}

// NewScripts returns an empty registry.
func NewScripts() *Scripts {
	return &Scripts{funcs: make(map[string]ScriptFunc)}
}

// Register binds fn to name, replacing any previous binding.
func (s *Scripts) Register(name string, fn ScriptFunc) {
	if fn == nil {
		panic(fmt.Sprintf("ecs: register script %q: nil func", name))
	}
	s.funcs[name] = fn
}

// Has reports whether name is registered.
func (s *Scripts) Has(name string) bool {
	_, ok := s.funcs[name]
	return ok
}

// Lookup returns the routine bound to name.
func (s *Scripts) Lookup(name string) (ScriptFunc, error) {
	fn, ok := s.funcs[name]
	if !ok {
		return nil, fmt.Errorf("ecs: script %q: %w", name, ErrScriptNotFound)
	}
	return fn, nil
}

// MustGet is Lookup that panics on a missing name.
func (s *Scripts) MustGet(name string) ScriptFunc {
	fn, err := s.Lookup(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// Names returns the registered names, sorted.
func (s *Scripts) Names() []string {
	names := make([]string, 0, len(s.funcs))
	for name := range s.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
