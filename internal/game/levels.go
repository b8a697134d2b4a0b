package game

import (
	"fmt"
	"math/rand"
	"slices"

	"penguin-patrol/assets"
	"penguin-patrol/internal/generate"
	"penguin-patrol/internal/tilemap"
)

// RandomLevel names the procedurally generated arena.
const RandomLevel = "random"

// LevelRotation is the order '>' cycles through, starting from first.
func LevelRotation(first string) []string {
	names := append(assets.LevelNames(), RandomLevel)
	for i, n := range names {
		if n == first {
			return slices.Concat(names[i:], names[:i])
		}
	}
	// A level file from disk goes first, then the built-ins.
	return slices.Concat([]string{first}, names)
}

// BuildLevel loads name, generating a fresh arena for RandomLevel.
func BuildLevel(name string, tileSize float64, rng *rand.Rand) (*tilemap.PassableTiles, error) {
	if name == RandomLevel {
		cfg := generate.DefaultConfig(tileSize, rand.New(rand.NewSource(rng.Int63())))
		return generate.Arena(cfg), nil
	}
	grid, err := assets.LoadLevel(name, tileSize)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	return grid, nil
}
