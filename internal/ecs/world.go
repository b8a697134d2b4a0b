package ecs

// slot is one row of the entity table.
type slot struct {
	gen   uint32
	alive bool
}

// store is a sparse set holding every component of one type.
// dense and data are parallel arrays; sparse maps a slot index to its
// position in dense, or -1.
type store struct {
	sparse []int32
	dense  []EntityID
	data   []Component
}

func newStore() *store { return &store{} }

func (s *store) pos(id EntityID) int {
	i := int(id.Index())
	if i >= len(s.sparse) {
		return -1
	}
	p := int(s.sparse[i])
	if p < 0 || s.dense[p] != id {
		return -1
	}
	return p
}

func (s *store) set(id EntityID, c Component) {
	if p := s.pos(id); p >= 0 {
		s.data[p] = c
		return
	}
	i := int(id.Index())
	for len(s.sparse) <= i {
		s.sparse = append(s.sparse, -1)
	}
	s.sparse[i] = int32(len(s.dense))
	s.dense = append(s.dense, id)
	s.data = append(s.data, c)
}

// remove swaps the last element into the hole.
func (s *store) remove(id EntityID) {
	p := s.pos(id)
	if p < 0 {
		return
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[p] = moved
	s.data[p] = s.data[last]
	s.sparse[moved.Index()] = int32(p)
	s.sparse[id.Index()] = -1
	s.dense = s.dense[:last]
	s.data[last] = nil
	s.data = s.data[:last]
}

// World is the central entity registry and component store.
type World struct {
	slots      []slot
	free       []uint32
	live       int
	components map[ComponentType]*store
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		components: make(map[ComponentType]*store),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
// Slots freed by DestroyEntity are reused before the table grows.
func (w *World) CreateEntity() EntityID {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		// Generation starts at 1 so that slot 0 never produces NilEntity.
		w.slots = append(w.slots, slot{gen: 1})
	}
	w.slots[idx].alive = true
	w.live++
	return makeID(idx, w.slots[idx].gen)
}

// DestroyEntity marks the entity dead and removes all its components.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Alive(id) {
		return
	}
	for _, s := range w.components {
		s.remove(id)
	}
	sl := &w.slots[id.Index()]
	sl.alive = false
	sl.gen++
	if sl.gen == 0 {
		sl.gen = 1
	}
	w.free = append(w.free, id.Index())
	w.live--
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	i := int(id.Index())
	if id == NilEntity || i >= len(w.slots) {
		return false
	}
	sl := w.slots[i]
	return sl.alive && sl.gen == id.Generation()
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.live }

// Add attaches a component to an entity, replacing any existing component
// of the same type. Adding to a dead entity is a no-op.
func (w *World) Add(id EntityID, c Component) {
	if !w.Alive(id) {
		return
	}
	t := c.Type()
	s := w.components[t]
	if s == nil {
		s = newStore()
		w.components[t] = s
	}
	s.set(id, c)
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	s := w.components[t]
	if s == nil {
		return nil
	}
	p := s.pos(id)
	if p < 0 {
		return nil
	}
	return s.data[p]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if s := w.components[t]; s != nil {
		s.remove(id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	s := w.components[t]
	return s != nil && s.pos(id) >= 0
}

// Count returns how many entities hold a component of type t.
func (w *World) Count(t ComponentType) int {
	if s := w.components[t]; s != nil {
		return len(s.dense)
	}
	return 0
}

// Query returns all alive entities that have every listed component type.
// The result is a fresh slice, so callers may create or destroy entities
// while ranging over it.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if w.Count(t) < w.Count(smallest) {
			smallest = t
		}
	}
	s := w.components[smallest]
	if s == nil {
		return nil
	}
	var result []EntityID
	for _, id := range s.dense {
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}
