package component

import (
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/geom"
)

const CMotion ecs.ComponentType = 2

// Motion holds velocity and acceleration in pixels per second (per second).
// MinSpeed and MaxSpeed bound the speed during integration; zero means the
// bound is not set.
type Motion struct {
	Velocity     geom.Vec2
	Acceleration geom.Vec2
	MinSpeed     float64
	MaxSpeed     float64
}

func (Motion) Type() ecs.ComponentType { return CMotion }
