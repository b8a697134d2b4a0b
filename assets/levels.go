package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"penguin-patrol/internal/tilemap"
)

//go:embed levels/*.txt
var levelFS embed.FS

// LevelNames lists the built-in levels in a stable order.
func LevelNames() []string {
	entries, err := fs.ReadDir(levelFS, "levels")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// LoadLevel parses a built-in level by name, or a level file when name
// contains a path separator or ends in .txt.
func LoadLevel(name string, tileSize float64) (*tilemap.PassableTiles, error) {
	if strings.ContainsRune(name, os.PathSeparator) || strings.HasSuffix(name, ".txt") {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open level: %w", err)
		}
		defer f.Close()
		grid, err := tilemap.Parse(f, tileSize)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", name, err)
		}
		return grid, nil
	}

	f, err := levelFS.Open(path.Join("levels", name+".txt"))
	if err != nil {
		return nil, fmt.Errorf("unknown level %q (have %s): %w", name, strings.Join(LevelNames(), ", "), err)
	}
	defer f.Close()
	grid, err := tilemap.Parse(f, tileSize)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return grid, nil
}
