// Package game runs one player's arena on a tcell screen in real time.
// A ticker advances the simulation; a second goroutine feeds key events
// into the same select loop, so the simulation is only touched from Run.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"penguin-patrol/assets"
	"penguin-patrol/internal/config"
	"penguin-patrol/internal/render"
	"penguin-patrol/internal/sim"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
)

// FrameInterval is the wall-clock period between simulation ticks.
const FrameInterval = time.Second / 30

// Options configures a Game.
type Options struct {
	Config    *config.Tunables // nil: config.Default()
	Level     string           // built-in name, level file or RandomLevel; "" picks the first built-in
	Seed      int64
	Logger    *slog.Logger
	Host      string // recorded in the run log
	Clipboard bool   // 'c' copies the stats line to the local clipboard
}

// Game is the top-level orchestrator of one terminal session.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sim      *sim.Simulation
	opts     Options
	rng      *rand.Rand
	logger   *slog.Logger

	levels   []string
	levelIdx int
	help     bool
	message  string

	copyText func(string) error
}

// New creates a Game on the process terminal.
func New(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a Game on an already initialised screen and loads
// the first level. The SSH host passes a session screen here.
func NewWithScreen(screen tcell.Screen, opts Options) (*Game, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Level == "" {
		if names := assets.LevelNames(); len(names) > 0 {
			opts.Level = names[0]
		} else {
			opts.Level = RandomLevel
		}
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	g := &Game{
		screen:   screen,
		opts:     opts,
		rng:      rng,
		logger:   opts.Logger,
		levels:   LevelRotation(opts.Level),
		renderer: render.NewRenderer(screen, assets.Theme(0)),
		sim:      sim.New(opts.Config, rand.New(rand.NewSource(rng.Int63())), opts.Logger),
		copyText: clipboard.WriteAll,
	}
	if err := g.loadLevel(0); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) levelName() string { return g.levels[g.levelIdx] }

// loadLevel switches to levels[idx], recording the run on the old one.
func (g *Game) loadLevel(idx int) error {
	grid, err := BuildLevel(g.levels[idx], g.opts.Config.TileSize, g.rng)
	if err != nil {
		return err
	}
	if g.sim.Grid != nil {
		g.saveRun()
	}
	g.levelIdx = idx
	g.sim.LoadLevel(grid)
	g.renderer.SetTheme(assets.Theme(idx))
	g.message = fmt.Sprintf("You step onto %s.", assets.Theme(idx).Name)
	return nil
}

func (g *Game) saveRun() {
	sim.SaveRunLog(sim.RunLog{
		Timestamp: time.Now(),
		Host:      g.opts.Host,
		Seed:      g.opts.Seed,
		Level:     g.levelName(),
		Stats:     g.sim.Stats(),
	}, g.logger)
}

// pollEvents forwards screen events on a channel that is closed when the
// screen is finalised or the session disconnects.
func pollEvents(screen tcell.Screen) <-chan tcell.Event {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()
	return eventCh
}

// Run shows the intro and then plays until the player quits or the screen
// goes away. It finalises the screen before returning.
func (g *Game) Run() {
	defer g.screen.Fini()
	eventCh := pollEvents(g.screen)

	if !g.showIntro(eventCh) {
		return
	}

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				g.saveRun()
				return // screen closed / disconnected
			}
			if !g.handleEvent(ev) {
				g.saveRun()
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if !g.help {
				g.sim.Tick(dt)
			}
			g.draw()
		}
	}
}

// showIntro waits for any key. It returns false when the player quits.
func (g *Game) showIntro(eventCh <-chan tcell.Event) bool {
	g.screen.Clear()
	g.renderer.DrawText(1, strings.Split(assets.Intro, "\n"))
	for ev := range eventCh {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.DrawText(1, strings.Split(assets.Intro, "\n"))
		case *tcell.EventKey:
			return keyToAction(ev) != ActionQuit
		}
	}
	return false
}

// handleEvent applies one input event. It returns false to quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		return g.apply(keyToAction(ev))
	}
	return true
}

func (g *Game) apply(a Action) bool {
	if dir, ok := actionToHeading(a); ok {
		g.sim.SetPlayerHeading(dir)
		return true
	}
	switch a {
	case ActionQuit:
		return false
	case ActionHelp:
		g.help = !g.help
	case ActionNextLevel:
		if err := g.loadLevel((g.levelIdx + 1) % len(g.levels)); err != nil {
			g.logger.Warn("next level", "error", err)
			g.message = "That level would not load."
		}
	case ActionRestart:
		if err := g.loadLevel(g.levelIdx); err != nil {
			g.logger.Warn("restart level", "error", err)
		}
	case ActionCopyStats:
		g.copyStats()
	}
	return true
}

func (g *Game) copyStats() {
	if !g.opts.Clipboard {
		g.message = "No clipboard on this connection."
		return
	}
	line := g.levelName() + "  " + g.sim.Stats().String()
	if err := g.copyText(line); err != nil {
		g.logger.Warn("copy stats", "error", err)
		g.message = "Copy failed."
		return
	}
	g.message = "Stats copied."
}

var helpLines = []string{
	"── Controls ─────────────────────────",
	"  Arrows / WASD / hjkl   Walk",
	"  y u b n                Walk diagonally",
	"  Space or .             Stop",
	"  >                      Next level",
	"  r                      Restart level",
	"  c                      Copy stats",
	"  ?                      Toggle this help",
	"  q / Esc                Quit",
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.sim.World, g.sim.Grid, g.sim.Player)
	if g.help {
		g.renderer.DrawText(1, helpLines)
	}
	g.renderer.DrawHUD(render.HUD{
		Level:    g.levelName(),
		Enemies:  g.sim.Enemies(),
		Cap:      g.opts.Config.PopulationCap,
		Tracking: g.sim.Tracking(),
		Bubbles:  g.sim.Bubbles(),
		Stats:    g.sim.Stats(),
		Message:  g.message,
	})
}
