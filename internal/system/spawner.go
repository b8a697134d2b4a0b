package system

import (
	"math/rand"

	"penguin-patrol/internal/component"
	"penguin-patrol/internal/config"
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/factory"
	"penguin-patrol/internal/geom"
	"penguin-patrol/internal/tilemap"
)

// ProcessSpawner tops the penguin population up towards cfg.PopulationCap.
// Each player gets one candidate per tick, sampled in a square of half-width
// SpawnRadius around them; a candidate on an impassable or missing tile is
// dropped, not retried. Requests never exceed the remaining headroom.
func ProcessSpawner(w *ecs.World, grid *tilemap.PassableTiles, cfg *config.Tunables, rng *rand.Rand) []factory.SpawnRequest {
	if grid == nil {
		return nil
	}
	headroom := cfg.PopulationCap - w.Count(component.CEnemy)
	if headroom <= 0 {
		return nil
	}

	var reqs []factory.SpawnRequest
	r := cfg.SpawnRadius
	for _, id := range w.Query(component.CTagPlayer, component.CTransform) {
		if len(reqs) >= headroom {
			break
		}
		pos := w.Get(id, component.CTransform).(component.Transform).Pos
		candidate := pos.Add(geom.Vec2{X: uniform(rng, -r, r), Y: uniform(rng, -r, r)})
		if !grid.PassableAt(candidate) {
			continue
		}
		reqs = append(reqs, factory.EnemyRequest(candidate, cfg))
	}
	return reqs
}
