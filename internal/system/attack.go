package system

import (
	"math/rand"

	"penguin-patrol/internal/component"
	"penguin-patrol/internal/config"
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/factory"
	"penguin-patrol/internal/geom"
)

// LaunchVelocity aims a bubble along heading at speed, pushed sideways by a
// random amount in [-spread, spread]. A zero heading yields a zero velocity.
func LaunchVelocity(heading geom.Vec2, speed, spread float64, rng *rand.Rand) geom.Vec2 {
	dir := heading.Normalize()
	if dir.IsZero() {
		return geom.Zero
	}
	side := uniform(rng, -spread, spread)
	return dir.Scale(speed).Add(dir.Perp().Scale(side))
}

// ProcessAttack runs after ProcessMovement. Every tracking enemy that is off
// cooldown and has a heading fires one bubble from where it stands.
func ProcessAttack(w *ecs.World, cfg *config.Tunables, dt float64, rng *rand.Rand) []factory.SpawnRequest {
	var reqs []factory.SpawnRequest
	for _, id := range w.Query(component.CEnemy, component.CTransform, component.CMotion) {
		enemy := w.Get(id, component.CEnemy).(component.Enemy)
		cooling := enemy.Cooldown > 0
		if cooling {
			enemy.Cooldown, _ = countdown(enemy.Cooldown, dt)
		}

		heading := w.Get(id, component.CMotion).(component.Motion).Velocity
		if enemy.Tracking && enemy.Cooldown == 0 && !heading.IsZero() {
			pos := w.Get(id, component.CTransform).(component.Transform).Pos
			vel := LaunchVelocity(heading, cfg.ProjectileSpeed, cfg.ProjectileSpread, rng)
			reqs = append(reqs, factory.ProjectileRequest(pos, vel, id, cfg))
			enemy.Cooldown = cfg.AttackCooldown
		} else if !cooling {
			continue
		}
		w.Add(id, enemy)
	}
	return reqs
}
