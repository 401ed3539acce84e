package manager

import (
	"fmt"
	"strings"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// RandSource yields uniformly distributed integers in [0, n).
type RandSource interface {
	Intn(n int) int
}

// NewRand returns a seeded RandSource.
func NewRand(seed uint64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// FoodPolicy decides which cells are eligible for a respawn.
type FoodPolicy string

const (
	// FoodAnywhere draws from the whole grid; food may land under the snake.
	FoodAnywhere FoodPolicy = "anywhere"
	// FoodFree draws only from cells the snake does not occupy.
	FoodFree FoodPolicy = "free"
)

func ParseFoodPolicy(s string) (FoodPolicy, error) {
	switch p := FoodPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case FoodAnywhere, FoodFree:
		return p, nil
	case "":
		return FoodAnywhere, nil
	}
	return "", fmt.Errorf("unknown food policy %q", s)
}

// Rejection sampling gives up after this many draws per grid cell and picks
// from the enumerated free cells instead.
const maxDrawsPerCell = 4

type FoodManager struct {
	grid         types.Grid
	rng          RandSource
	policy       FoodPolicy
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng RandSource, policy FoodPolicy) *FoodManager {
	if policy == "" {
		policy = FoodAnywhere
	}
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		policy:       policy,
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) Policy() FoodPolicy {
	return fm.policy
}

// GenerateFood picks the next food cell. x is drawn before y.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	food := fm.randomCell()
	if fm.policy != FoodFree || fm.collisionMgr.ValidateSpawnPosition(food, snake) {
		return food
	}

	// A snake filling the grid leaves nowhere to go; keep the drawn cell.
	if snake.Len() >= fm.grid.Cells() {
		return food
	}

	for i := 1; i < maxDrawsPerCell*fm.grid.Cells(); i++ {
		food = fm.randomCell()
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return food
	}
	return free[fm.rng.Intn(len(free))]
}

func (fm *FoodManager) randomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body {
		occupied[p] = struct{}{}
	}

	free := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
