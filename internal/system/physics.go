package system

import (
	"penguin-patrol/internal/component"
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/geom"
	"penguin-patrol/internal/tilemap"
)

// integrateVelocity applies acceleration for dt and enforces the speed bounds.
// Dropping under MinSpeed, or being pushed backwards, holds the previous
// direction at MinSpeed.
func integrateVelocity(m component.Motion, dt float64) geom.Vec2 {
	prev := m.Velocity.Normalize()
	v := m.Velocity.Add(m.Acceleration.Scale(dt))
	if m.MinSpeed > 0 && !prev.IsZero() {
		if v.Dot(prev) <= 0 || v.Len2() < m.MinSpeed*m.MinSpeed {
			v = prev.Scale(m.MinSpeed)
		}
	}
	if m.MaxSpeed > 0 && v.Len2() > m.MaxSpeed*m.MaxSpeed {
		v = v.WithLen(m.MaxSpeed)
	}
	if !v.IsFinite() {
		return geom.Zero
	}
	return v
}

// Integrate moves every entity with Transform and Motion by its velocity.
// Bubbles that would enter an impassable tile pop and are destroyed; other
// entities slide along the wall on whichever axis is free, or stay put.
// Without a grid nothing is blocked. It returns the number of popped bubbles.
func Integrate(w *ecs.World, grid *tilemap.PassableTiles, dt float64) int {
	popped := 0
	for _, id := range w.Query(component.CTransform, component.CMotion) {
		tr := w.Get(id, component.CTransform).(component.Transform)
		mot := w.Get(id, component.CMotion).(component.Motion)

		mot.Velocity = integrateVelocity(mot, dt)
		w.Add(id, mot)

		step := mot.Velocity.Scale(dt)
		if step.IsZero() {
			continue
		}
		next := tr.Pos.Add(step)
		if grid != nil && !grid.PassableAt(next) {
			if w.Has(id, component.CProjectile) {
				w.DestroyEntity(id)
				popped++
				continue
			}
			next = slide(grid, tr.Pos, step)
		}
		if next != tr.Pos {
			w.Add(id, component.Transform{Pos: next})
		}
	}
	return popped
}

func slide(grid *tilemap.PassableTiles, from, step geom.Vec2) geom.Vec2 {
	if p := from.Add(geom.Vec2{X: step.X}); step.X != 0 && grid.PassableAt(p) {
		return p
	}
	if p := from.Add(geom.Vec2{Y: step.Y}); step.Y != 0 && grid.PassableAt(p) {
		return p
	}
	return from
}

// ExpireLifetimes counts down every Lifetime and destroys the entities whose
// time ran out. It returns how many were destroyed.
func ExpireLifetimes(w *ecs.World, dt float64) int {
	expiredN := 0
	for _, id := range w.Query(component.CLifetime) {
		lt := w.Get(id, component.CLifetime).(component.Lifetime)
		var expired bool
		lt.Remaining, expired = countdown(lt.Remaining, dt)
		if expired || lt.Remaining == 0 {
			w.DestroyEntity(id)
			expiredN++
			continue
		}
		w.Add(id, lt)
	}
	return expiredN
}

// AdvanceAnimations steps every animation by dt and copies the current frame
// onto the entity's Sprite.
func AdvanceAnimations(w *ecs.World, dt float64) {
	for _, id := range w.Query(component.CAnimation) {
		a := w.Get(id, component.CAnimation).(component.Animation)
		if a.TotalFrames <= 1 || a.FrameTime <= 0 {
			continue
		}
		a.Countdown -= dt
		if a.Countdown <= 0 {
			steps := int(-a.Countdown/a.FrameTime) + 1
			a.Current = (a.Current + steps) % a.TotalFrames
			a.Countdown += float64(steps) * a.FrameTime
		}
		w.Add(id, a)

		if c := w.Get(id, component.CSprite); c != nil {
			s := c.(component.Sprite)
			if s.Frame != a.Current {
				s.Frame = a.Current
				w.Add(id, s)
			}
		}
	}
}
