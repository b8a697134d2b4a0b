package component

import "penguin-patrol/internal/ecs"

const CLifetime ecs.ComponentType = 8

// Lifetime destroys its entity once Remaining reaches zero.
type Lifetime struct {
	Remaining float64
}

func (Lifetime) Type() ecs.ComponentType { return CLifetime }
