package component

import "penguin-patrol/internal/ecs"

const CProjectile ecs.ComponentType = 5

// Projectile marks a bubble fired by an enemy.
type Projectile struct {
	Owner ecs.EntityID
}

func (Projectile) Type() ecs.ComponentType { return CProjectile }
