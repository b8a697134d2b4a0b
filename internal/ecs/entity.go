package ecs

// EntityID uniquely identifies an entity in the world.
// The low 32 bits are the slot index, the high 32 bits the slot generation,
// so an ID held past DestroyEntity never aliases the slot's next occupant.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

func makeID(index, gen uint32) EntityID {
	return EntityID(uint64(gen)<<32 | uint64(index))
}

// Index returns the slot index encoded in the ID.
func (id EntityID) Index() uint32 { return uint32(id) }

// Generation returns the slot generation encoded in the ID.
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
