package component

import "penguin-patrol/internal/ecs"

const CTagPlayer ecs.ComponentType = 9

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
