package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"penguin-patrol/internal/config"
	"penguin-patrol/internal/tilemap"
)

func TestEveryConfiguredTextureIsRegistered(t *testing.T) {
	cfg := config.Default()
	for _, key := range []string{cfg.EnemyTexture, cfg.ProjectileTexture, cfg.PlayerTexture} {
		d, ok := Lookup(key)
		if !ok {
			t.Errorf("texture %q not registered", key)
			continue
		}
		if len(d.Frames) == 0 || d.Radius <= 0 {
			t.Errorf("texture %q: %+v", key, d)
		}
	}
	if d, _ := Lookup(cfg.EnemyTexture); len(d.Frames) != cfg.EnemyFrames {
		t.Errorf("penguin has %d frames; animation expects %d", len(d.Frames), cfg.EnemyFrames)
	}
}

func TestGlyph(t *testing.T) {
	if g := Glyph(config.EnemyTexture, 0); g != "🐧" {
		t.Errorf("penguin glyph = %q", g)
	}
	if g := Glyph(config.ProjectileTexture, 7); g != "🫧" {
		t.Errorf("bubble frame wraps; got %q", g)
	}
	if g := Glyph("missing.png", 0); g != GlyphMissing {
		t.Errorf("unknown key = %q; want placeholder", g)
	}
	if g := Glyph(config.PlayerTexture, -1); g != "🧑" {
		t.Errorf("negative frame = %q", g)
	}
}

func TestThemeWraps(t *testing.T) {
	if Theme(0).Name != Theme(len(Themes)).Name {
		t.Error("theme index should wrap")
	}
	if Theme(-1).Name == "" {
		t.Error("negative index must still pick a theme")
	}
}

func TestBuiltInLevelsParse(t *testing.T) {
	names := LevelNames()
	if len(names) < 3 {
		t.Fatalf("LevelNames = %v", names)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			grid, err := LoadLevel(name, 32)
			if err != nil {
				t.Fatalf("LoadLevel: %v", err)
			}
			if !grid.PassableAt(grid.Start) {
				t.Errorf("start %v is not walkable", grid.Start)
			}
		})
	}
}

func TestLoadLevelUnknown(t *testing.T) {
	_, err := LoadLevel("nowhere", 32)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v; want not-exist", err)
	}
}

func TestLoadLevelFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tiny.txt")
	if err := os.WriteFile(p, []byte("###\n#P#\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	grid, err := LoadLevel(p, 16)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if grid.PassableCount() != 1 || grid.TileSize != 16 {
		t.Errorf("grid = %dx%d floor %d", grid.Width, grid.Height, grid.PassableCount())
	}

	bad := filepath.Join(t.TempDir(), "walls.txt")
	if err := os.WriteFile(bad, []byte("###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLevel(bad, 16); !errors.Is(err, tilemap.ErrNoFloor) {
		t.Errorf("err = %v; want ErrNoFloor", err)
	}
}
