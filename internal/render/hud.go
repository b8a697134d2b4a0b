package render

import (
	"fmt"

	"penguin-patrol/internal/sim"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUD is what the status bar shows about the arena right now.
type HUD struct {
	Level    string
	Enemies  int
	Cap      int
	Tracking int
	Bubbles  int
	Stats    sim.Stats
	Message  string
}

// DrawHUD renders the status bar below the map and shows the frame.
func (r *Renderer) DrawHUD(h HUD) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows
	if hudY < 0 {
		r.screen.Show()
		return
	}

	r.drawHLine(hudY, colorSeparator)

	status := fmt.Sprintf("%s  🐧 %d/%d  🫧 %d  %.0fs", h.Level, h.Enemies, h.Cap, h.Bubbles, h.Stats.Elapsed)
	col := r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(colorStatus))
	if h.Tracking > 0 {
		alert := fmt.Sprintf("  ⚠ %d chasing", h.Tracking)
		r.drawText(col, hudY+1, alert, tcell.StyleDefault.Foreground(colorAlert).Bold(true))
	}

	if h.Message != "" {
		r.drawText(0, hudY+2, h.Message, tcell.StyleDefault.Foreground(colorMessage))
	}

	r.screen.Show()
}

// DrawText writes plain text lines starting at row y, for intro and help screens.
func (r *Renderer) DrawText(y int, lines []string) {
	for i, line := range lines {
		r.drawText(1, y+i, line, tcell.StyleDefault.Foreground(colorStatus))
	}
	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}
