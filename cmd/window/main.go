// penguin-patrol-window runs the arena in a desktop window.
package main

import (
	"flag"
	"log"
	"time"

	"penguin-patrol/internal/config"
	"penguin-patrol/internal/window"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfgPath := flag.String("config", "", "JSON tuning file")
	level := flag.String("level", "", "first level: built-in name, level file or \"random\"")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	w, err := window.New(window.Options{Config: cfg, Level: *level, Seed: *seed})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Penguin Patrol")
	ebiten.SetWindowSize(window.Width, window.Height)
	if err := ebiten.RunGame(w); err != nil {
		log.Fatal(err)
	}
}
