package component

import (
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/geom"
)

const CTransform ecs.ComponentType = 1

// Transform is an entity's position in world pixels.
type Transform struct {
	Pos geom.Vec2
}

func (Transform) Type() ecs.ComponentType { return CTransform }
