package component

import "penguin-patrol/internal/ecs"

const CPatrol ecs.ComponentType = 4

// PatrolState is the steering state of an enemy.
type PatrolState uint8

const (
	PatrolIdle      PatrolState = iota // standing still, IdleTimer counting down
	PatrolWandering                    // drifting in a random direction, WanderTimer counting down
	PatrolTracking                     // chasing the player
)

func (s PatrolState) String() string {
	switch s {
	case PatrolIdle:
		return "idle"
	case PatrolWandering:
		return "wandering"
	case PatrolTracking:
		return "tracking"
	}
	return "unknown"
}

// Patrol holds one enemy's idle/wander countdowns.
// The zero value is an idle enemy whose idle time has already run out.
type Patrol struct {
	State       PatrolState
	WanderTimer float64
	IdleTimer   float64
}

func (Patrol) Type() ecs.ComponentType { return CPatrol }
