package render

import (
	"testing"

	"penguin-patrol/assets"
	"penguin-patrol/internal/config"
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/factory"
	"penguin-patrol/internal/geom"
	"penguin-patrol/internal/sim"
	"penguin-patrol/internal/tilemap"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	ss.SetSize(w, h)
	return ss
}

func TestCameraWorldToScreen(t *testing.T) {
	c := NewCamera(10, 5, 40, 10)
	sx, sy, ok := c.WorldToScreen(10, 5)
	if !ok || sx != 20 || sy != 5 {
		t.Errorf("center maps to (%d,%d,%v); want (20,5,true)", sx, sy, ok)
	}
	if _, _, ok := c.WorldToScreen(30, 0); ok {
		t.Error("far tile should be off screen")
	}
	if x, y := c.ScreenToWorld(sx, sy); x != 10 || y != 5 {
		t.Errorf("ScreenToWorld = (%d,%d)", x, y)
	}
}

func TestCameraFollowClampsToMap(t *testing.T) {
	c := NewCamera(0, 0, 20, 6) // 10 tiles by 6 rows
	c.Follow(0, 0, 30, 30)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Errorf("top-left follow offset = (%d,%d); want (0,0)", c.OffsetX, c.OffsetY)
	}
	c.Follow(29, 29, 30, 30)
	if c.OffsetX != 20 || c.OffsetY != 24 {
		t.Errorf("bottom-right follow offset = (%d,%d); want (20,24)", c.OffsetX, c.OffsetY)
	}
	c.Follow(2, 2, 4, 2)
	if c.OffsetX != -3 || c.OffsetY != -2 {
		t.Errorf("small map offset = (%d,%d); want centered (-3,-2)", c.OffsetX, c.OffsetY)
	}
}

func TestDrawFrameShowsPlayerAndPenguin(t *testing.T) {
	ss := newTestScreen(t, 40, 12)
	cfg := config.Default()
	grid, err := tilemap.ParseString("######\n#P...#\n#....#\n######", 32)
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	player := factory.NewPlayer(w, grid.Start, cfg)
	factory.Materialize(w, []factory.SpawnRequest{factory.EnemyRequest(grid.CenterOf(3, 2), cfg)})

	r := NewRenderer(ss, assets.Theme(0))
	r.DrawFrame(w, grid, player)
	r.DrawHUD(HUD{Level: "test", Enemies: 1, Cap: 5})

	find := func(glyph string) bool {
		want := []rune(glyph)[0]
		cols, rows := ss.Size()
		for y := range rows {
			for x := range cols {
				if mainc, _, _, _ := ss.GetContent(x, y); mainc == want {
					return true
				}
			}
		}
		return false
	}
	if !find(assets.Glyph(config.PlayerTexture, 0)) {
		t.Error("player glyph not drawn")
	}
	if !find(assets.Glyph(config.EnemyTexture, 0)) {
		t.Error("penguin glyph not drawn")
	}
	if !find(assets.Theme(0).Wall) {
		t.Error("walls not drawn")
	}
}

func TestDrawEntitiesPlayerOnTop(t *testing.T) {
	ss := newTestScreen(t, 20, 8)
	cfg := config.Default()
	grid, _ := tilemap.ParseString("...\n.P.\n...", 32)
	w := ecs.NewWorld()
	player := factory.NewPlayer(w, grid.Start, cfg)
	factory.Materialize(w, []factory.SpawnRequest{
		factory.ProjectileRequest(grid.Start, geom.Vec2{X: 1}, ecs.NilEntity, cfg),
	})

	r := NewRenderer(ss, assets.Theme(0))
	r.DrawFrame(w, grid, player)

	tx, ty := tileOf(grid, grid.Start)
	sx, sy, ok := r.Camera().WorldToScreen(tx, ty)
	if !ok {
		t.Fatal("player tile off screen")
	}
	mainc, _, _, _ := ss.GetContent(sx, sy)
	if want := []rune(assets.Glyph(config.PlayerTexture, 0))[0]; mainc != want {
		t.Errorf("cell shows %q; want the player on top", mainc)
	}
}

func TestTileOfFloorsNegative(t *testing.T) {
	grid := tilemap.New(2, 2, 32)
	if x, y := tileOf(grid, geom.Vec2{X: -1, Y: 33}); x != -1 || y != 1 {
		t.Errorf("tileOf = (%d,%d); want (-1,1)", x, y)
	}
}

func TestDrawHUDShowsChase(t *testing.T) {
	ss := newTestScreen(t, 60, 6)
	r := NewRenderer(ss, assets.Theme(0))
	r.DrawHUD(HUD{Level: "glacier", Enemies: 3, Cap: 5, Tracking: 2, Stats: sim.Stats{Elapsed: 12}, Message: "hello"})

	row := func(y int) string {
		var out []rune
		for x := range 60 {
			mainc, _, _, _ := ss.GetContent(x, y)
			out = append(out, mainc)
		}
		return string(out)
	}
	if got := row(6 - HUDRows + 2); got[:5] != "hello" {
		t.Errorf("message row = %q", got)
	}
}
