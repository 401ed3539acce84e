package game

import "snake-classic/game/types"

// Defaults of the classic board.
const (
	DefaultGridWidth  = 30
	DefaultGridHeight = 30
)

// DefaultOptions returns the classic starting layout: a three segment snake
// in the top left heading right, food two rows below its head.
func DefaultOptions() Options {
	return Options{
		Grid:             types.Grid{Width: DefaultGridWidth, Height: DefaultGridHeight},
		InitialBody:      []types.Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}},
		InitialDirection: types.Right,
		InitialFood:      types.Point{X: 3, Y: 3},
	}
}
