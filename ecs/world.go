package ecs

import "github.com/milk9111/cakechase/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, their component stores and the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: map[component.ComponentID]*SparseSet{}}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = map[component.ComponentID]*SparseSet{}
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// IsAlive reports whether an entity handle still resolves.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires the handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle still resolves.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities lists all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}
