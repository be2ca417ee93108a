package component

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store inside the world.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind is the typed key for one component store. The zero value
// is invalid.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	var zero T
	name := fmt.Sprintf("%T", zero)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return ComponentKind[T]{id: ComponentID(lastComponentID.Add(1)), name: name}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// String returns the short Go type name, e.g. "Player".
func (k ComponentKind[T]) String() string {
	if k.name == "" {
		return "invalid"
	}
	return k.name
}

// ComponentHandle is what the component files export, one per type:
//
//	var PlayerComponent = NewComponent[Player]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
