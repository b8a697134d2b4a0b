// Package sim owns one arena: the ECS world, its level grid and the fixed
// order in which systems run each tick. A Simulation is not safe for
// concurrent use; every host drives its own from a single goroutine.
package sim

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"penguin-patrol/internal/component"
	"penguin-patrol/internal/config"
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/factory"
	"penguin-patrol/internal/geom"
	"penguin-patrol/internal/system"
	"penguin-patrol/internal/tilemap"
)

// Stats counts what happened since the level was loaded.
type Stats struct {
	Ticks          int     `json:"ticks"`
	Elapsed        float64 `json:"elapsed_seconds"`
	EnemiesSpawned int     `json:"enemies_spawned"`
	BubblesFired   int     `json:"bubbles_fired"`
	BubblesPopped  int     `json:"bubbles_popped"`
	BubblesExpired int     `json:"bubbles_expired"`
	PeakTracking   int     `json:"peak_tracking"`
}

func (s Stats) String() string {
	return fmt.Sprintf("%.1fs  ticks %d  penguins %d  bubbles %d (popped %d, faded %d)  peak chase %d",
		s.Elapsed, s.Ticks, s.EnemiesSpawned, s.BubblesFired, s.BubblesPopped, s.BubblesExpired, s.PeakTracking)
}

// Simulation is one running arena.
type Simulation struct {
	World  *ecs.World
	Grid   *tilemap.PassableTiles // nil until LoadLevel
	Player ecs.EntityID

	cfg    *config.Tunables
	rng    *rand.Rand
	logger *slog.Logger
	stats  Stats
}

// New creates an empty simulation. Until LoadLevel is called there is no
// grid, so enemies neither move nor spawn.
func New(cfg *config.Tunables, rng *rand.Rand, logger *slog.Logger) *Simulation {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Simulation{
		World:  ecs.NewWorld(),
		Player: ecs.NilEntity,
		cfg:    cfg,
		rng:    rng,
		logger: logger,
	}
}

// LoadLevel replaces the world with a fresh one on grid and places the
// player at grid.Start. Call it between ticks.
func (s *Simulation) LoadLevel(grid *tilemap.PassableTiles) {
	s.World = ecs.NewWorld()
	s.Grid = grid
	s.stats = Stats{}
	start := geom.Zero
	if grid != nil {
		start = grid.Start
	}
	s.Player = factory.NewPlayer(s.World, start, s.cfg)
	if grid != nil {
		s.logger.Info("level loaded",
			"width", grid.Width, "height", grid.Height,
			"floor", grid.PassableCount(), "start", start)
	}
}

// Tick advances the arena by dt seconds. dt is clamped to
// [0, MaxFrameDelta] so a stalled frame cannot tunnel entities through walls.
//
// Order: movement (with detection), attack, spawner, materialize,
// integrate, lifetimes, animations.
func (s *Simulation) Tick(dt float64) {
	dt = s.clampDelta(dt)

	system.ProcessMovement(s.World, s.Grid, s.cfg, dt, s.rng)
	reqs := system.ProcessAttack(s.World, s.cfg, dt, s.rng)
	fired := len(reqs)
	spawns := system.ProcessSpawner(s.World, s.Grid, s.cfg, s.rng)
	reqs = append(reqs, spawns...)

	ids := factory.Materialize(s.World, reqs)
	for i, r := range reqs {
		if r.Kind == factory.KindEnemy {
			s.logger.Debug("penguin spawned", "id", ids[i], "pos", r.Position)
		}
	}

	s.stats.BubblesPopped += system.Integrate(s.World, s.Grid, dt)
	s.stats.BubblesExpired += system.ExpireLifetimes(s.World, dt)
	system.AdvanceAnimations(s.World, dt)

	s.stats.Ticks++
	s.stats.Elapsed += dt
	s.stats.BubblesFired += fired
	s.stats.EnemiesSpawned += len(spawns)
	if n := s.Tracking(); n > s.stats.PeakTracking {
		s.stats.PeakTracking = n
	}
}

func (s *Simulation) clampDelta(dt float64) float64 {
	switch {
	case math.IsNaN(dt) || dt < 0:
		return 0
	case dt > s.cfg.MaxFrameDelta:
		return s.cfg.MaxFrameDelta
	}
	return dt
}

// SetPlayerHeading steers the player; a zero dir stops them.
func (s *Simulation) SetPlayerHeading(dir geom.Vec2) {
	system.SetHeading(s.World, s.Player, dir, s.cfg.PlayerSpeed)
}

// PlayerPos returns the player's position.
func (s *Simulation) PlayerPos() geom.Vec2 {
	if c := s.World.Get(s.Player, component.CTransform); c != nil {
		return c.(component.Transform).Pos
	}
	return geom.Zero
}

// Enemies returns the number of live penguins.
func (s *Simulation) Enemies() int { return s.World.Count(component.CEnemy) }

// Bubbles returns the number of bubbles in flight.
func (s *Simulation) Bubbles() int { return s.World.Count(component.CProjectile) }

// Tracking returns how many penguins are chasing the player right now.
func (s *Simulation) Tracking() int {
	n := 0
	for _, id := range s.World.Query(component.CEnemy) {
		if s.World.Get(id, component.CEnemy).(component.Enemy).Tracking {
			n++
		}
	}
	return n
}

func (s *Simulation) Stats() Stats { return s.stats }

func (s *Simulation) Config() *config.Tunables { return s.cfg }
