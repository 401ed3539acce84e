package render

import (
	"fmt"
	"io"
	"strings"

	"snake-classic/game"
	"snake-classic/game/types"
)

// Characters used for each kind of cell.
const (
	emptyChar     = '.'
	borderChar    = '#'
	headChar      = 'O'
	bodyChar      = 'o'
	foodChar      = '*'
	foodUnderChar = '@' // food covered by the body
)

// ANSI: cursor home, clear screen.
const clearSequence = "\033[H\033[2J"

// ASCII draws snapshots as text frames, one per Draw call.
type ASCII struct {
	out   io.Writer
	clear bool
}

// NewASCII returns a renderer writing to out. With clear set, every frame is
// preceded by an escape sequence that wipes the terminal.
func NewASCII(out io.Writer, clear bool) *ASCII {
	return &ASCII{out: out, clear: clear}
}

func (r *ASCII) Draw(s game.Snapshot) error {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearSequence)
	}
	b.WriteString(Frame(s))
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Frame renders the grid with a border followed by a status line.
func Frame(s game.Snapshot) string {
	w, h := s.Grid.Width, s.Grid.Height

	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(string(emptyChar), w))
	}
	set := func(x, y int, c byte) {
		if x >= 0 && x < w && y >= 0 && y < h {
			rows[y][x] = c
		}
	}

	set(s.Food.X, s.Food.Y, foodChar)
	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		c := byte(bodyChar)
		if i == 0 {
			c = headChar
		}
		if p == s.Food {
			c = foodUnderChar
		}
		set(p.X, p.Y, c)
	}

	var b strings.Builder
	edge := strings.Repeat(string(borderChar), w+2)
	b.WriteString(edge)
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteByte(borderChar)
		b.Write(row)
		b.WriteByte(borderChar)
		b.WriteByte('\n')
	}
	b.WriteString(edge)
	b.WriteByte('\n')
	b.WriteString(Status(s))
	b.WriteByte('\n')
	return b.String()
}

// Status is the one-line summary shown under the board.
func Status(s game.Snapshot) string {
	line := fmt.Sprintf("%s | tick %d | length %d | heading %s", s.Phase, s.Tick, len(s.Body), s.Direction)
	switch s.Phase {
	case types.Paused:
		line += " | p to play"
	case types.GameOver:
		line += fmt.Sprintf(" | hit %s, r to restart", s.Collision)
	}
	return line
}
