// Package system holds the per-tick logic that runs over the ECS world.
// Every function here is called from one goroutine; randomness is always
// passed in.
package system

import (
	"math/rand"

	"penguin-patrol/internal/component"
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/geom"
)

// Detect reports whether player lies within radius of enemy.
// The comparison is on squared lengths; a player exactly on the circle is seen.
func Detect(player, enemy geom.Vec2, radius float64) bool {
	return player.Sub(enemy).Len2() <= radius*radius
}

// PlayerPosition returns the position of the first player entity.
func PlayerPosition(w *ecs.World) (geom.Vec2, bool) {
	ids := w.Query(component.CTagPlayer, component.CTransform)
	if len(ids) == 0 {
		return geom.Zero, false
	}
	return w.Get(ids[0], component.CTransform).(component.Transform).Pos, true
}

// uniform draws from [lo, hi].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
