// Package window hosts the arena in a desktop window with ebiten. It draws
// the same simulation the terminal host runs, with shapes in place of emoji.
package window

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"penguin-patrol/assets"
	"penguin-patrol/internal/component"
	"penguin-patrol/internal/config"
	"penguin-patrol/internal/game"
	"penguin-patrol/internal/geom"
	"penguin-patrol/internal/sim"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	Width     = 960
	Height    = 640
	hudHeight = 40
)

var (
	colorBackground = color.RGBA{R: 12, G: 18, B: 28, A: 255}
	colorHUD        = color.RGBA{R: 20, G: 28, B: 40, A: 230}
	colorHUDText    = color.RGBA{R: 220, G: 230, B: 240, A: 255}
	colorAlert      = color.RGBA{R: 255, G: 90, B: 70, A: 255}
	colorSight      = color.RGBA{R: 255, G: 90, B: 70, A: 90}
)

// Options configures a Window.
type Options struct {
	Config *config.Tunables
	Level  string
	Seed   int64
	Logger *slog.Logger
}

// Window implements ebiten.Game.
type Window struct {
	sim    *sim.Simulation
	cfg    *config.Tunables
	rng    *rand.Rand
	logger *slog.Logger
	seed   int64
	face   text.Face

	levels   []string
	levelIdx int
	help     bool
	message  string
	heading  geom.Vec2

	copyText func(string) error
}

// New loads the first level and returns a window ready for ebiten.RunGame.
func New(opts Options) (*Window, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Level == "" {
		opts.Level = game.RandomLevel
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	w := &Window{
		cfg:      opts.Config,
		rng:      rng,
		logger:   opts.Logger,
		seed:     opts.Seed,
		face:     text.NewGoXFace(basicfont.Face7x13),
		levels:   game.LevelRotation(opts.Level),
		sim:      sim.New(opts.Config, rand.New(rand.NewSource(rng.Int63())), opts.Logger),
		copyText: clipboard.WriteAll,
	}
	if err := w.loadLevel(0); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Window) loadLevel(idx int) error {
	grid, err := game.BuildLevel(w.levels[idx], w.cfg.TileSize, w.rng)
	if err != nil {
		return err
	}
	if w.sim.Grid != nil {
		w.SaveRun()
	}
	w.levelIdx = idx
	w.heading = geom.Zero
	w.sim.LoadLevel(grid)
	w.message = assets.Theme(idx).Name
	return nil
}

// SaveRun appends the current level's stats to the run log.
func (w *Window) SaveRun() {
	sim.SaveRunLog(sim.RunLog{
		Timestamp: time.Now(),
		Host:      "window",
		Seed:      w.seed,
		Level:     w.levels[w.levelIdx],
		Stats:     w.sim.Stats(),
	}, w.logger)
}

// headingFromKeys turns the held direction keys into a heading.
// Opposite keys cancel out.
func headingFromKeys(up, down, left, right bool) geom.Vec2 {
	var h geom.Vec2
	if up {
		h.Y--
	}
	if down {
		h.Y++
	}
	if left {
		h.X--
	}
	if right {
		h.X++
	}
	return h
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Update advances the simulation by one ebiten tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.SaveRun()
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1), inpututil.IsKeyJustPressed(ebiten.KeySlash):
		w.help = !w.help
	case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyPeriod):
		w.changeLevel((w.levelIdx + 1) % len(w.levels))
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		w.changeLevel(w.levelIdx)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		w.copyStats()
	}
	if w.help {
		return nil
	}

	h := headingFromKeys(
		anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
	)
	if h != w.heading {
		w.heading = h
		w.sim.SetPlayerHeading(h)
	}
	w.sim.Tick(1 / float64(ebiten.TPS()))
	return nil
}

func (w *Window) changeLevel(idx int) {
	if err := w.loadLevel(idx); err != nil {
		w.logger.Warn("change level", "error", err)
		w.message = "That level would not load."
	}
}

func (w *Window) copyStats() {
	line := w.levels[w.levelIdx] + "  " + w.sim.Stats().String()
	if err := w.copyText(line); err != nil {
		w.logger.Warn("copy stats", "error", err)
		w.message = "Copy failed."
		return
	}
	w.message = "Stats copied."
}

// viewOrigin is the world point drawn at the top-left corner: the player is
// kept centred, clamped so the map fills the view where it is big enough.
func viewOrigin(player geom.Vec2, mapW, mapH, viewW, viewH float64) geom.Vec2 {
	axis := func(p, size, view float64) float64 {
		if size <= view {
			return -(view - size) / 2
		}
		return max(0, min(p-view/2, size-view))
	}
	return geom.Vec2{X: axis(player.X, mapW, viewW), Y: axis(player.Y, mapH, viewH)}
}

// Draw renders the arena and HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	grid := w.sim.Grid
	if grid == nil {
		return
	}
	theme := assets.Theme(w.levelIdx)
	ts := grid.TileSize
	viewH := float64(Height - hudHeight)
	o := viewOrigin(w.sim.PlayerPos(), float64(grid.Width)*ts, float64(grid.Height)*ts, Width, viewH)

	for y := range grid.Height {
		for x := range grid.Width {
			sx, sy := float64(x)*ts-o.X, float64(y)*ts-o.Y
			if sx+ts < 0 || sy+ts < 0 || sx > Width || sy > viewH {
				continue
			}
			c := theme.WallColor
			if grid.IsPassable(x, y) {
				c = theme.FloorColor
			}
			vector.FillRect(screen, float32(sx), float32(sy), float32(ts)-1, float32(ts)-1, c, false)
		}
	}

	type shape struct {
		pos      geom.Vec2
		def      assets.SpriteDef
		tracking bool
	}
	var shapes []shape
	for _, id := range w.sim.World.Query(component.CTransform, component.CSprite) {
		spr := w.sim.World.Get(id, component.CSprite).(component.Sprite)
		def, ok := assets.Lookup(spr.Key)
		if !ok {
			def = assets.SpriteDef{Color: color.RGBA{R: 255, A: 255}, Radius: 6}
		}
		s := shape{pos: w.sim.World.Get(id, component.CTransform).(component.Transform).Pos.Sub(o), def: def}
		if c := w.sim.World.Get(id, component.CEnemy); c != nil {
			s.tracking = c.(component.Enemy).Tracking
		}
		shapes = append(shapes, s)
	}
	slices.SortStableFunc(shapes, func(a, b shape) int { return a.def.RenderOrder - b.def.RenderOrder })
	for _, s := range shapes {
		x, y := float32(s.pos.X), float32(s.pos.Y)
		if s.tracking {
			vector.StrokeCircle(screen, x, y, float32(w.cfg.DetectionRadius), 1, colorSight, true)
		}
		vector.FillCircle(screen, x, y, float32(s.def.Radius), s.def.Color, true)
	}

	w.drawHUD(screen)
	if w.help {
		ebitenutil.DebugPrintAt(screen, helpText, 16, 16)
	}
}

const helpText = `Arrows / WASD  walk
N or .         next level
R              restart level
C              copy stats
F1 or /        toggle help
Q / Esc        quit`

func (w *Window) drawHUD(screen *ebiten.Image) {
	vector.FillRect(screen, 0, Height-hudHeight, Width, hudHeight, colorHUD, false)
	status := fmt.Sprintf("%s   penguins %d/%d   bubbles %d   %.0fs",
		w.levels[w.levelIdx], w.sim.Enemies(), w.cfg.PopulationCap, w.sim.Bubbles(), w.sim.Stats().Elapsed)
	w.drawText(screen, status, 10, Height-hudHeight+6, colorHUDText)
	if n := w.sim.Tracking(); n > 0 {
		w.drawText(screen, fmt.Sprintf("%d chasing", n), Width-110, Height-hudHeight+6, colorAlert)
	}
	if w.message != "" {
		w.drawText(screen, w.message, 10, Height-hudHeight+22, colorHUDText)
	}
}

func (w *Window) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, w.face, op)
}

// Layout fixes the logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	return Width, Height
}
