// Package control maps player input onto game operations. Both the raylib
// front end and the headless terminal loop go through it.
package control

import (
	"strings"

	"snake-classic/game"
	"snake-classic/game/types"
)

// Command is one player action.
type Command int

const (
	None Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	TogglePause
	Reset
	Quit
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case TogglePause:
		return "pause"
	case Reset:
		return "reset"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Direction returns the heading of a move command.
func (c Command) Direction() (types.Direction, bool) {
	switch c {
	case MoveUp:
		return types.Up, true
	case MoveDown:
		return types.Down, true
	case MoveLeft:
		return types.Left, true
	case MoveRight:
		return types.Right, true
	}
	return 0, false
}

var words = map[string]Command{
	"w": MoveUp, "up": MoveUp, "k": MoveUp,
	"s": MoveDown, "down": MoveDown, "j": MoveDown,
	"a": MoveLeft, "left": MoveLeft, "h": MoveLeft,
	"d": MoveRight, "right": MoveRight, "l": MoveRight,
	"p": TogglePause, "pause": TogglePause, "esc": TogglePause,
	"r": Reset, "reset": Reset, "space": Reset,
	"q": Quit, "quit": Quit, "exit": Quit,
}

// ParseLine reads one line of headless input. Unknown words yield None.
func ParseLine(line string) Command {
	return words[strings.ToLower(strings.TrimSpace(line))]
}

// Apply runs c against g. It reports whether the loop should stop.
func Apply(g *game.Game, c Command) bool {
	if d, ok := c.Direction(); ok {
		g.SetDirection(d)
		return false
	}
	switch c {
	case TogglePause:
		g.TogglePause()
	case Reset:
		g.Reset()
	case Quit:
		return true
	}
	return false
}
