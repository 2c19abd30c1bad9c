package ecs

import "slices"

// store holds every component of one type, keyed by owner.
type store map[EntityID]Component

// World is the entity registry for one sector. Entities are never reused:
// IDs only grow, so ascending ID order is creation order.
type World struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	stores map[ComponentType]store
}

// NewWorld creates an empty World. The first entity gets ID 1.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		stores: make(map[ComponentType]store),
	}
}

// CreateEntity allocates a live entity with no components.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity despawns id together with its components. Destroying a
// dead entity does nothing.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Alive(id) {
		return
	}
	delete(w.alive, id)
	for _, s := range w.stores {
		delete(s, id)
	}
}

func (w *World) Alive(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Len is the number of live entities.
func (w *World) Len() int { return len(w.alive) }

// Add sets c on id, replacing a component of the same type. Adding to a
// dead entity is ignored.
func (w *World) Add(id EntityID, c Component) {
	if !w.Alive(id) {
		return
	}
	s, ok := w.stores[c.Type()]
	if !ok {
		s = make(store)
		w.stores[c.Type()] = s
	}
	s[id] = c
}

// Get returns id's component of type t, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.stores[t][id]
}

// Remove drops id's component of type t if present.
func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.stores[t], id)
}

func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.stores[t][id]
	return ok
}

// Lookup returns id's component of type t as a T. ok is false when the
// component is missing or holds a different Go type.
func Lookup[T Component](w *World, id EntityID, t ComponentType) (c T, ok bool) {
	c, ok = w.Get(id, t).(T)
	return c, ok
}

// Query lists the live entities carrying every type in types, ascending by
// ID. Systems rely on that order for deterministic results. The slice is
// freshly allocated, so despawning while iterating it is safe as long as
// callers re-check Alive.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Scan the smallest store and probe the others.
	scan := types[0]
	for _, t := range types[1:] {
		if len(w.stores[t]) < len(w.stores[scan]) {
			scan = t
		}
	}

	var ids []EntityID
candidates:
	for id := range w.stores[scan] {
		if !w.Alive(id) {
			continue
		}
		for _, t := range types {
			if t != scan && !w.Has(id, t) {
				continue candidates
			}
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
