package system

import (
	"math"
	"math/rand"

	"penguin-patrol/internal/component"
	"penguin-patrol/internal/config"
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/geom"
	"penguin-patrol/internal/tilemap"
)

// countdown subtracts dt from timer. When dt is more than what is left the
// timer has expired this tick and reads zero; it never carries a debt.
func countdown(timer, dt float64) (float64, bool) {
	if dt > timer {
		return 0, true
	}
	return timer - dt, false
}

// Steer runs one tick of the patrol state machine for a single enemy.
// toPlayer is the vector from the enemy to the player and is only read
// when detected is true. It returns the new velocity and patrol state.
func Steer(cfg *config.Tunables, detected bool, toPlayer, vel geom.Vec2, p component.Patrol, dt float64, rng *rand.Rand) (geom.Vec2, component.Patrol) {
	if !vel.IsFinite() {
		vel = geom.Zero
	}
	if detected {
		// Zero when standing on the player.
		p.State = component.PatrolTracking
		return toPlayer.WithLen(cfg.TrackingSpeed), p
	}

	if !vel.IsZero() {
		var expired bool
		p.WanderTimer, expired = countdown(p.WanderTimer, dt)
		if !expired {
			p.State = component.PatrolWandering
			return vel, p
		}
		p.State = component.PatrolIdle
		p.IdleTimer = cfg.IdleDuration
		return geom.Zero, p
	}

	var expired bool
	p.IdleTimer, expired = countdown(p.IdleTimer, dt)
	if !expired {
		p.State = component.PatrolIdle
		return geom.Zero, p
	}
	theta := rng.Float64() * 2 * math.Pi
	p.State = component.PatrolWandering
	p.WanderTimer = cfg.WanderDuration
	return geom.FromAngle(theta).Scale(cfg.IdleSpeed), p
}

// ProcessMovement updates every enemy's tracking flag and velocity.
// Nothing moves until a level grid is loaded.
func ProcessMovement(w *ecs.World, grid *tilemap.PassableTiles, cfg *config.Tunables, dt float64, rng *rand.Rand) {
	if grid == nil {
		return
	}
	player, havePlayer := PlayerPosition(w)

	for _, id := range w.Query(component.CEnemy, component.CTransform, component.CMotion) {
		enemy := w.Get(id, component.CEnemy).(component.Enemy)
		pos := w.Get(id, component.CTransform).(component.Transform).Pos
		mot := w.Get(id, component.CMotion).(component.Motion)
		var patrol component.Patrol
		if c := w.Get(id, component.CPatrol); c != nil {
			patrol = c.(component.Patrol)
		}

		detected := havePlayer && Detect(player, pos, cfg.DetectionRadius)
		mot.Velocity, patrol = Steer(cfg, detected, player.Sub(pos), mot.Velocity, patrol, dt, rng)
		enemy.Tracking = detected

		w.Add(id, enemy)
		w.Add(id, mot)
		w.Add(id, patrol)
	}
}

// SetHeading points entity id in direction dir at the given speed.
// A zero dir stops it.
func SetHeading(w *ecs.World, id ecs.EntityID, dir geom.Vec2, speed float64) {
	c := w.Get(id, component.CMotion)
	if c == nil {
		return
	}
	mot := c.(component.Motion)
	mot.Velocity = dir.WithLen(speed)
	w.Add(id, mot)
}
