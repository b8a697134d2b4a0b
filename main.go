package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"penguin-patrol/internal/config"
	"penguin-patrol/internal/game"
)

func main() {
	cfgPath := flag.String("config", "", "JSON tuning file")
	level := flag.String("level", "", "first level: built-in name, level file or \"random\"")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// The screen owns stdout and stderr while the game runs.
	logger := slog.New(slog.DiscardHandler)

	g, err := game.New(game.Options{
		Config:    cfg,
		Level:     *level,
		Seed:      *seed,
		Logger:    logger,
		Host:      "terminal",
		Clipboard: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
