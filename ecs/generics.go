package ecs

import (
	"fmt"

	"github.com/milk9111/cakechase/ecs/component"
)

// Add attaches or replaces a component value. Errors wrap the component
// sentinels and name the kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if w == nil || !w.IsAlive(e) {
		return fmt.Errorf("%w: add %s to %v", component.ErrEntityNotAlive, kind, e)
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind)
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

// Remove detaches a component. It reports whether one was present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.store(kind.ID(), false).Remove(e)
}

// Has reports whether e carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.store(kind.ID(), false).Has(e)
}

// Get returns the stored component pointer. Stale or dead handles yield
// ok=false, which callers treat as "nothing to update".
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e).(*T)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// First returns any entity carrying the component. Used for singletons.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := w.store(kind.ID(), false)
	if s == nil || s.Len() == 0 {
		return 0, false
	}
	for _, e := range s.denseEntities {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Single returns the component value of the first entity carrying it.
func Single[T any](w *World, kind component.ComponentKind[T]) (*T, bool) {
	e, ok := First(w, kind)
	if !ok {
		return nil, false
	}
	return Get(w, e, kind)
}

// ForEach visits every live entity carrying the component.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	for _, e := range s.Entities() {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	if sb.Len() < sa.Len() {
		for _, e := range sb.Entities() {
			visit2(w, e, ka, kb, fn)
		}
		return
	}
	for _, e := range sa.Entities() {
		visit2(w, e, ka, kb, fn)
	}
}

func visit2[A, B any](w *World, e Entity, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	a, ok := Get(w, e, ka)
	if !ok {
		return
	}
	b, ok := Get(w, e, kb)
	if !ok {
		return
	}
	fn(e, a, b)
}
