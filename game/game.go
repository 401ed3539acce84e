package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
)

// ErrInvalidConfig is returned by the constructors for parameters no game can
// start from. Callers are expected to treat it as fatal.
var ErrInvalidConfig = errors.New("invalid game configuration")

// Options holds everything needed to build a Game.
type Options struct {
	Grid             types.Grid
	InitialBody      []types.Point
	InitialDirection types.Direction
	InitialFood      types.Point

	// FoodPolicy defaults to manager.FoodAnywhere.
	FoodPolicy manager.FoodPolicy
	// Rand defaults to a source seeded from the clock.
	Rand manager.RandSource
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Game is the single authoritative snake, food and phase state. It is not
// safe for concurrent use; one loop owns it.
type Game struct {
	grid types.Grid

	initialBody      []types.Point
	initialDirection types.Direction
	initialFood      types.Point

	snake         *entity.Snake
	food          types.Point
	phases        *manager.PhaseManager
	collisionMgr  *manager.CollisionManager
	foodMgr       *manager.FoodManager
	lastCollision types.CollisionType
	ticks         int

	sessionID  string
	baseLogger *slog.Logger
	logger     *slog.Logger
}

// NewGame builds a paused game on a width x height grid.
func NewGame(width, height int, body []types.Point, dir types.Direction, food types.Point) (*Game, error) {
	return NewGameWithOptions(Options{
		Grid:             types.Grid{Width: width, Height: height},
		InitialBody:      body,
		InitialDirection: dir,
		InitialFood:      food,
	})
}

// NewGameWithOptions builds a paused game from opts.
func NewGameWithOptions(opts Options) (*Game, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = manager.NewRand(uint64(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	initialBody := make([]types.Point, len(opts.InitialBody))
	copy(initialBody, opts.InitialBody)

	collisionMgr := manager.NewCollisionManager(opts.Grid)
	g := &Game{
		grid:             opts.Grid,
		initialBody:      initialBody,
		initialDirection: opts.InitialDirection,
		initialFood:      opts.InitialFood,
		phases:           manager.NewPhaseManager(),
		collisionMgr:     collisionMgr,
		foodMgr:          manager.NewFoodManager(opts.Grid, collisionMgr, rng, opts.FoodPolicy),
		baseLogger:       logger,
	}
	g.restart()

	g.logger.Info("game created",
		"grid", fmt.Sprintf("%dx%d", g.grid.Width, g.grid.Height),
		"length", g.snake.Len(),
		"direction", g.snake.Direction.String(),
		"food", g.food.String(),
		"food_policy", string(g.foodMgr.Policy()),
	)
	return g, nil
}

func validate(opts Options) error {
	if err := opts.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(opts.InitialBody) == 0 {
		return fmt.Errorf("%w: initial body is empty", ErrInvalidConfig)
	}
	if !opts.InitialDirection.Valid() {
		return fmt.Errorf("%w: invalid initial direction %v", ErrInvalidConfig, opts.InitialDirection)
	}
	seen := make(map[types.Point]struct{}, len(opts.InitialBody))
	for i, p := range opts.InitialBody {
		if !opts.Grid.Contains(p) {
			return fmt.Errorf("%w: body segment %d at %v is outside the grid", ErrInvalidConfig, i, p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: body segment %d at %v overlaps another segment", ErrInvalidConfig, i, p)
		}
		seen[p] = struct{}{}
	}
	if !opts.Grid.Contains(opts.InitialFood) {
		return fmt.Errorf("%w: food at %v is outside the grid", ErrInvalidConfig, opts.InitialFood)
	}
	switch opts.FoodPolicy {
	case "", manager.FoodAnywhere, manager.FoodFree:
	default:
		return fmt.Errorf("%w: unknown food policy %q", ErrInvalidConfig, opts.FoodPolicy)
	}
	return nil
}

// restart puts the game back to its initial configuration under a new session.
func (g *Game) restart() {
	g.snake = entity.NewSnake(g.initialBody, g.initialDirection)
	g.food = g.initialFood
	g.phases.Reset()
	g.lastCollision = types.NoCollision
	g.ticks = 0
	g.sessionID = uuid.New().String()
	g.logger = g.baseLogger.With("session", g.sessionID)
}

// Tick advances the snake by one cell. It does nothing unless the game is
// playing. A move into a wall or into the body ends the game and leaves the
// body where it was.
func (g *Game) Tick() {
	if !g.phases.IsPlaying() {
		return
	}

	next := g.snake.NextHead()
	grow := g.collisionMgr.IsFoodCollision(next, g.food)

	if collision := g.collisionMgr.CheckCollision(next, g.snake, grow); collision != types.NoCollision {
		g.lastCollision = collision
		g.phases.End()
		g.logger.Info("game over",
			"cause", collision.String(),
			"head", g.snake.GetHead().String(),
			"next", next.String(),
			"length", g.snake.Len(),
			"ticks", g.ticks,
		)
		return
	}

	g.snake.Advance(next, grow)
	g.ticks++

	if grow {
		g.food = g.foodMgr.GenerateFood(g.snake)
		g.logger.Debug("food eaten",
			"at", next.String(),
			"length", g.snake.Len(),
			"food", g.food.String(),
			"under_snake", g.snake.Contains(g.food),
		)
	}
}

// SetDirection sets the heading used by the next tick. Reversals are ignored
// while the snake is longer than one segment. It reports whether d was taken.
func (g *Game) SetDirection(d types.Direction) bool {
	return g.snake.SetDirection(d)
}

// TogglePause switches between playing and paused. Game over is unaffected.
func (g *Game) TogglePause() {
	if g.phases.TogglePause() {
		g.logger.Info("phase changed", "phase", g.phases.Phase().String())
	}
}

// Reset discards the current session and starts over from the initial
// configuration, paused.
func (g *Game) Reset() {
	previous := g.sessionID
	g.restart()
	g.logger.Info("game reset", "previous_session", previous)
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []types.Point {
	body := make([]types.Point, g.snake.Len())
	copy(body, g.snake.Body)
	return body
}

func (g *Game) Head() types.Point {
	return g.snake.GetHead()
}

func (g *Game) Food() types.Point {
	return g.food
}

func (g *Game) Phase() types.Phase {
	return g.phases.Phase()
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

// LastCollision is the cause of the current game over, or NoCollision.
func (g *Game) LastCollision() types.CollisionType {
	return g.lastCollision
}

// Ticks counts the moves made since the last reset.
func (g *Game) Ticks() int {
	return g.ticks
}

func (g *Game) SessionID() string {
	return g.sessionID
}
