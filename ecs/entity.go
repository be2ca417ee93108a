package ecs

import "strconv"

// Entity is a generational handle: the low 32 bits index the arena slot,
// the high 32 bits hold the slot generation. The zero Entity is never alive.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether the handle was ever issued. It says nothing about
// liveness; use IsAlive for that.
func (e Entity) Valid() bool {
	return e.id() > 0
}

// Ref converts a handle stored in a component (uint64) back to an Entity.
func Ref(v uint64) Entity {
	return Entity(v)
}

// entityStore hands out ids and bumps generations on destroy so that
// stale handles stop resolving.
type entityStore struct {
	gens  []generation
	alive []bool
	free  []entityID
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.alive[id-1] = true
		return makeEntity(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	s.alive = append(s.alive, true)
	id := entityID(len(s.gens))
	return makeEntity(id, 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gens[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.alive[id-1] && s.gens[id-1] == e.generation()
}

func (s *entityStore) list() []Entity {
	out := make([]Entity, 0, len(s.gens)-len(s.free))
	for i, ok := range s.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), s.gens[i]))
		}
	}
	return out
}
