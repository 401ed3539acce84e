package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies a move of the snake's head into pos. grow is
// true when the snake eats this tick, in which case the tail stays put and
// counts as an obstacle.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, grow bool) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isSelfCollision(pos, snake, grow) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision skips the head, and the tail too unless the snake grows:
// a tail that is popped this tick leaves its cell free for the head.
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake, grow bool) bool {
	end := len(snake.Body)
	if !grow {
		end--
	}
	for i := 1; i < end; i++ {
		if pos == snake.Body[i] {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is inside the grid and off the snake
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
