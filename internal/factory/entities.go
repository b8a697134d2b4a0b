package factory

import (
	"penguin-patrol/internal/component"
	"penguin-patrol/internal/config"
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/geom"
)

// Kind says what a SpawnRequest will become.
type Kind uint8

const (
	KindEnemy Kind = iota
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// SpawnRequest describes the initial components of an entity that a system
// wants created. Systems emit requests; Materialize turns them into entities
// between ticks so a query is never invalidated mid-iteration.
type SpawnRequest struct {
	Kind      Kind
	Position  geom.Vec2
	Motion    component.Motion
	Enemy     component.Enemy      // KindEnemy only
	Owner     ecs.EntityID         // KindProjectile only
	Sprite    component.Sprite
	Animation *component.Animation // nil: not animated
	Lifetime  float64              // 0: lives until popped
}

// Bundle returns the components the request expands to.
func (r SpawnRequest) Bundle() []ecs.Component {
	cs := []ecs.Component{
		component.Transform{Pos: r.Position},
		r.Motion,
		r.Sprite,
	}
	switch r.Kind {
	case KindEnemy:
		cs = append(cs, r.Enemy, component.Patrol{})
	case KindProjectile:
		cs = append(cs, component.Projectile{Owner: r.Owner})
	}
	if r.Animation != nil {
		cs = append(cs, *r.Animation)
	}
	if r.Lifetime > 0 {
		cs = append(cs, component.Lifetime{Remaining: r.Lifetime})
	}
	return cs
}

// EnemyRequest builds a default penguin at pos: full health, not tracking,
// standing still, on the first frame of its walk cycle.
func EnemyRequest(pos geom.Vec2, cfg *config.Tunables) SpawnRequest {
	enemy := component.NewEnemy()
	enemy.HP = cfg.EnemyHP
	anim := component.NewAnimation(cfg.EnemyFrames, cfg.EnemyFrameTime)
	return SpawnRequest{
		Kind:      KindEnemy,
		Position:  pos,
		Enemy:     enemy,
		Sprite:    component.Sprite{Key: cfg.EnemyTexture},
		Animation: &anim,
	}
}

// ProjectileRequest builds a bubble launched from pos at vel. It slows down
// against its own launch velocity until it reaches the minimum speed.
func ProjectileRequest(pos, vel geom.Vec2, owner ecs.EntityID, cfg *config.Tunables) SpawnRequest {
	return SpawnRequest{
		Kind:     KindProjectile,
		Position: pos,
		Motion: component.Motion{
			Velocity:     vel,
			Acceleration: vel.Scale(-cfg.ProjectileDrag),
			MinSpeed:     cfg.ProjectileMinSpeed,
		},
		Owner:    owner,
		Sprite:   component.Sprite{Key: cfg.ProjectileTexture},
		Lifetime: cfg.ProjectileLifetime,
	}
}

// Materialize creates one entity per request, in order, and returns their IDs.
func Materialize(w *ecs.World, reqs []SpawnRequest) []ecs.EntityID {
	if len(reqs) == 0 {
		return nil
	}
	ids := make([]ecs.EntityID, 0, len(reqs))
	for _, r := range reqs {
		id := w.CreateEntity()
		for _, c := range r.Bundle() {
			w.Add(id, c)
		}
		ids = append(ids, id)
	}
	return ids
}

// NewPlayer creates the player entity at pos.
func NewPlayer(w *ecs.World, pos geom.Vec2, cfg *config.Tunables) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{Pos: pos})
	w.Add(id, component.Motion{MaxSpeed: cfg.PlayerSpeed})
	w.Add(id, component.Sprite{Key: cfg.PlayerTexture})
	w.Add(id, component.TagPlayer{})
	return id
}
