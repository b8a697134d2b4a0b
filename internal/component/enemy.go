package component

import "penguin-patrol/internal/ecs"

const CEnemy ecs.ComponentType = 3

// DefaultEnemyHP is the starting health of a freshly spawned enemy.
const DefaultEnemyHP = 120

// Enemy marks a hostile entity.
type Enemy struct {
	HP       uint32
	Tracking bool    // player is inside the detection circle this tick
	Cooldown float64 // seconds until this enemy may fire again
}

// NewEnemy returns an Enemy with default health, not tracking, ready to fire.
func NewEnemy() Enemy {
	return Enemy{HP: DefaultEnemyHP}
}

func (Enemy) Type() ecs.ComponentType { return CEnemy }
