package ecs

import "strconv"

// EntityID identifies an entity within one World.
type EntityID uint64

// NilEntity is never handed out by CreateEntity.
const NilEntity EntityID = 0

func (id EntityID) String() string { return "#" + strconv.FormatUint(uint64(id), 10) }

// ComponentType keys a component store. Every component type returns a
// distinct constant from Type.
type ComponentType uint8

// Component is any value stored on an entity.
type Component interface {
	Type() ComponentType
}
