package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrEmptyLevel is returned when a level has no rows.
	ErrEmptyLevel = errors.New("level has no rows")
	// ErrNoFloor is returned when a level has no walkable tile at all.
	ErrNoFloor = errors.New("level has no walkable tiles")
)

// Level glyphs. Anything else is impassable.
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
	GlyphStart = 'P'
)

// Parse reads an ASCII level: '#' wall, '.' floor, 'P' floor with the
// player start. Short rows are kept short; the missing cells are walls.
// Without a 'P' the player starts on the first floor tile in reading order.
func Parse(r io.Reader, tileSize float64) (*PassableTiles, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, ";") {
			continue // comment
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	// Trailing blank lines are not rows.
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}

	m := &PassableTiles{Height: len(rows), TileSize: tileSize, Tiles: make([][]bool, len(rows))}
	startX, startY, haveStart := 0, 0, false
	firstX, firstY, haveFloor := 0, 0, false
	for y, line := range rows {
		runes := []rune(line)
		m.Tiles[y] = make([]bool, len(runes))
		if len(runes) > m.Width {
			m.Width = len(runes)
		}
		for x, ch := range runes {
			switch ch {
			case GlyphFloor:
				m.Tiles[y][x] = true
			case GlyphStart:
				m.Tiles[y][x] = true
				if !haveStart {
					startX, startY, haveStart = x, y, true
				}
			default:
				continue
			}
			if !haveFloor {
				firstX, firstY, haveFloor = x, y, true
			}
		}
	}
	if !haveFloor {
		return nil, ErrNoFloor
	}
	if !haveStart {
		startX, startY = firstX, firstY
	}
	m.Start = m.CenterOf(startX, startY)
	return m, nil
}

// ParseString is Parse over a string literal.
func ParseString(level string, tileSize float64) (*PassableTiles, error) {
	return Parse(strings.NewReader(level), tileSize)
}

// String renders the grid back to ASCII (without the start marker).
func (m *PassableTiles) String() string {
	var b strings.Builder
	for _, row := range m.Tiles {
		for _, ok := range row {
			if ok {
				b.WriteRune(GlyphFloor)
			} else {
				b.WriteRune(GlyphWall)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
