package system

import (
	"math/rand"
	"testing"

	"penguin-patrol/internal/component"
	"penguin-patrol/internal/config"
	"penguin-patrol/internal/factory"
	"penguin-patrol/internal/geom"
	"penguin-patrol/internal/tilemap"
)

func TestSpawnerAtCapIsNoop(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(geom.Vec2{X: 320, Y: 320})
	for i := range 5 {
		addEnemy(w, geom.Vec2{X: float64(i) * 10})
	}
	grid := openGrid(20, 20)
	rng := rand.New(rand.NewSource(1))
	for range 100 {
		if reqs := ProcessSpawner(w, grid, cfg, rng); len(reqs) != 0 {
			t.Fatalf("spawner emitted %d requests at the cap", len(reqs))
		}
	}
}

func TestSpawnerWithoutGridIsNoop(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(geom.Vec2{X: 320, Y: 320})
	if reqs := ProcessSpawner(w, nil, cfg, rand.New(rand.NewSource(1))); reqs != nil {
		t.Errorf("got %v; want nil", reqs)
	}
}

func TestSpawnerWithoutPlayerIsNoop(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(geom.Vec2{})
	w.Remove(w.Query(component.CTagPlayer)[0], component.CTagPlayer)
	if reqs := ProcessSpawner(w, openGrid(4, 4), cfg, rand.New(rand.NewSource(1))); len(reqs) != 0 {
		t.Errorf("got %d requests with no player", len(reqs))
	}
}

func TestSpawnerEmitsDefaultPenguins(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(geom.Vec2{X: 320, Y: 320})
	grid := openGrid(20, 20)
	rng := rand.New(rand.NewSource(6))

	reqs := ProcessSpawner(w, grid, cfg, rng)
	if len(reqs) != 1 {
		t.Fatalf("got %d requests; want 1 on an open grid", len(reqs))
	}
	r := reqs[0]
	if r.Kind != factory.KindEnemy || r.Enemy.HP != 120 || r.Enemy.Tracking {
		t.Errorf("request = %+v", r)
	}
	if r.Sprite.Key != "penguinFront.png" || r.Animation == nil || r.Animation.TotalFrames != 2 {
		t.Errorf("sprite = %+v anim = %+v", r.Sprite, r.Animation)
	}
	d := r.Position.Sub(geom.Vec2{X: 320, Y: 320})
	if d.X < -160 || d.X > 160 || d.Y < -160 || d.Y > 160 {
		t.Errorf("candidate %v outside the sampling square", r.Position)
	}
}

func TestSpawnerNeverPlacesOnBlockedTiles(t *testing.T) {
	cfg := config.Default()
	grid := tilemap.New(20, 20, 32)
	// Checkerboard of floor and wall.
	for y := range 20 {
		for x := range 20 {
			grid.Set(x, y, (x+y)%2 == 0)
		}
	}
	rng := rand.New(rand.NewSource(12))
	accepted := 0
	for range 2000 {
		w, _ := newWorld(geom.Vec2{X: 320, Y: 320})
		for _, r := range ProcessSpawner(w, grid, cfg, rng) {
			accepted++
			if !grid.PassableAt(r.Position) {
				t.Fatalf("spawned on blocked tile at %v", r.Position)
			}
		}
	}
	if accepted == 0 {
		t.Error("expected some candidates to land on floor")
	}
}

func TestSpawnerSingleCellGrid(t *testing.T) {
	// One passable tile at (0,0): world (0,0)-(32,32). With the player at the
	// origin roughly half the candidates are negative and must be rejected
	// rather than truncated onto tile 0.
	cfg := config.Default()
	grid := &tilemap.PassableTiles{Width: 1, Height: 1, TileSize: 32, Tiles: [][]bool{{true}}}
	rng := rand.New(rand.NewSource(21))
	for range 5000 {
		w, _ := newWorld(geom.Vec2{})
		for _, r := range ProcessSpawner(w, grid, cfg, rng) {
			p := r.Position
			if p.X < 0 || p.Y < 0 || p.X >= 32 || p.Y >= 32 {
				t.Fatalf("accepted candidate %v outside the single cell", p)
			}
		}
	}
}

func TestSpawnerHeadroomBoundsManyPlayers(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(geom.Vec2{X: 320, Y: 320})
	for range 9 {
		extra := w.CreateEntity()
		w.Add(extra, component.Transform{Pos: geom.Vec2{X: 320, Y: 320}})
		w.Add(extra, component.TagPlayer{})
	}
	for i := range 3 {
		addEnemy(w, geom.Vec2{X: float64(i)})
	}
	reqs := ProcessSpawner(w, openGrid(20, 20), cfg, rand.New(rand.NewSource(1)))
	if len(reqs) != 2 {
		t.Errorf("got %d requests; want headroom of 2", len(reqs))
	}
}

func TestSpawnerReachesCapOverTicks(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(geom.Vec2{X: 320, Y: 320})
	grid := openGrid(20, 20)
	rng := rand.New(rand.NewSource(2))
	for range 50 {
		factory.Materialize(w, ProcessSpawner(w, grid, cfg, rng))
		if n := w.Count(component.CEnemy); n > cfg.PopulationCap {
			t.Fatalf("population %d exceeds cap", n)
		}
	}
	if n := w.Count(component.CEnemy); n != cfg.PopulationCap {
		t.Errorf("population = %d; want %d", n, cfg.PopulationCap)
	}
}
