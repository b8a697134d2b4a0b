package game

import (
	"penguin-patrol/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionStop
	ActionNextLevel
	ActionRestart
	ActionCopyStats
	ActionHelp
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		return ActionMoveN
	case 's', 'S', 'j', 'J':
		return ActionMoveS
	case 'd', 'D', 'l', 'L':
		return ActionMoveE
	case 'a', 'A', 'h', 'H':
		return ActionMoveW
	case 'y', 'Y':
		return ActionMoveNW
	case 'u', 'U':
		return ActionMoveNE
	case 'b', 'B':
		return ActionMoveSW
	case 'n', 'N':
		return ActionMoveSE
	case ' ', '.':
		return ActionStop
	case '>':
		return ActionNextLevel
	case 'r', 'R':
		return ActionRestart
	case 'c', 'C':
		return ActionCopyStats
	case '?':
		return ActionHelp
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToHeading converts a movement action to a direction.
// ok is false for actions that do not steer.
func actionToHeading(a Action) (dir geom.Vec2, ok bool) {
	switch a {
	case ActionMoveN:
		return geom.Vec2{Y: -1}, true
	case ActionMoveS:
		return geom.Vec2{Y: 1}, true
	case ActionMoveE:
		return geom.Vec2{X: 1}, true
	case ActionMoveW:
		return geom.Vec2{X: -1}, true
	case ActionMoveNE:
		return geom.Vec2{X: 1, Y: -1}, true
	case ActionMoveNW:
		return geom.Vec2{X: -1, Y: -1}, true
	case ActionMoveSE:
		return geom.Vec2{X: 1, Y: 1}, true
	case ActionMoveSW:
		return geom.Vec2{X: -1, Y: 1}, true
	case ActionStop:
		return geom.Zero, true
	}
	return geom.Zero, false
}
