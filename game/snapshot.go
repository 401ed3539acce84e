package game

import "snake-classic/game/types"

// Snapshot is a read-only copy of the state a renderer needs.
type Snapshot struct {
	Session   string
	Tick      int
	Grid      types.Grid
	Body      []types.Point
	Direction types.Direction
	Food      types.Point
	Phase     types.Phase
	Collision types.CollisionType
}

// Snapshot captures the current state. The returned value shares nothing
// with the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Session:   g.sessionID,
		Tick:      g.ticks,
		Grid:      g.grid,
		Body:      g.Body(),
		Direction: g.snake.Direction,
		Food:      g.food,
		Phase:     g.phases.Phase(),
		Collision: g.lastCollision,
	}
}

// Head returns the first body segment.
func (s Snapshot) Head() types.Point {
	return s.Body[0]
}

// FoodUnderSnake reports whether the food cell is covered by the body.
func (s Snapshot) FoodUnderSnake() bool {
	for _, p := range s.Body {
		if p == s.Food {
			return true
		}
	}
	return false
}
