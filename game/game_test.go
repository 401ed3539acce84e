package game

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of values, each taken modulo n.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pts(p ...types.Point) []types.Point { return p }

// newTestGame builds a 10x10 game that is already playing.
func newTestGame(t *testing.T, body []types.Point, dir types.Direction, food types.Point, rng manager.RandSource) *Game {
	t.Helper()
	if rng == nil {
		rng = &scriptedRand{values: []int{0}}
	}
	g, err := NewGameWithOptions(Options{
		Grid:             types.Grid{Width: 10, Height: 10},
		InitialBody:      body,
		InitialDirection: dir,
		InitialFood:      food,
		Rand:             rng,
		Logger:           quietLogger(),
	})
	require.NoError(t, err)
	g.TogglePause()
	require.Equal(t, types.Playing, g.Phase())
	return g
}

func straightSnake() []types.Point {
	return pts(types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 3, Y: 5})
}

func TestNewGameStartsPaused(t *testing.T) {
	opts := DefaultOptions()
	opts.Logger = quietLogger()
	g, err := NewGameWithOptions(opts)
	require.NoError(t, err)

	assert.Equal(t, types.Paused, g.Phase())
	assert.Equal(t, types.Right, g.Direction())
	assert.Equal(t, pts(types.Point{X: 3, Y: 1}, types.Point{X: 2, Y: 1}, types.Point{X: 1, Y: 1}), g.Body())
	assert.Equal(t, types.Point{X: 3, Y: 3}, g.Food())
	assert.Equal(t, types.Grid{Width: 30, Height: 30}, g.Grid())
	assert.Equal(t, types.NoCollision, g.LastCollision())
	assert.NotEmpty(t, g.SessionID())
}

func TestNewGamePositional(t *testing.T) {
	g, err := NewGame(12, 8, straightSnake(), types.Right, types.Point{X: 0, Y: 0})
	require.NoError(t, err)

	assert.Equal(t, types.Grid{Width: 12, Height: 8}, g.Grid())
	assert.Equal(t, types.Point{X: 5, Y: 5}, g.Head())
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero width", func(o *Options) { o.Grid.Width = 0 }},
		{"negative height", func(o *Options) { o.Grid.Height = -3 }},
		{"empty body", func(o *Options) { o.InitialBody = nil }},
		{"body outside grid", func(o *Options) { o.InitialBody = pts(types.Point{X: 30, Y: 1}) }},
		{"duplicate segments", func(o *Options) {
			o.InitialBody = pts(types.Point{X: 5, Y: 5}, types.Point{X: 5, Y: 4}, types.Point{X: 5, Y: 5})
		}},
		{"food outside grid", func(o *Options) { o.InitialFood = types.Point{X: -1, Y: 0} }},
		{"bad direction", func(o *Options) { o.InitialDirection = types.Direction(9) }},
		{"bad food policy", func(o *Options) { o.FoodPolicy = "sometimes" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Logger = quietLogger()
			tt.mutate(&opts)

			g, err := NewGameWithOptions(opts)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestTickMovesHeadByDelta(t *testing.T) {
	for _, d := range []types.Direction{types.Up, types.Down, types.Right} {
		t.Run(d.String(), func(t *testing.T) {
			g := newTestGame(t, straightSnake(), types.Right, types.Point{X: 0, Y: 0}, nil)

			require.True(t, g.SetDirection(d))
			g.Tick()

			assert.Equal(t, types.Point{X: 5, Y: 5}.Add(d.Delta()), g.Head())
			assert.Equal(t, types.Playing, g.Phase())
			assert.Equal(t, 3, len(g.Body()))
			assert.Equal(t, 1, g.Ticks())
		})
	}
}

func TestSetDirectionIgnoresReversal(t *testing.T) {
	g := newTestGame(t, straightSnake(), types.Right, types.Point{X: 0, Y: 0}, nil)

	assert.False(t, g.SetDirection(types.Left))
	assert.Equal(t, types.Right, g.Direction())

	g.Tick()
	assert.Equal(t, types.Point{X: 6, Y: 5}, g.Head(), "reversal must not take effect")
	assert.Equal(t, types.Playing, g.Phase())
}

func TestSetDirectionReversalAllowedForSingleSegment(t *testing.T) {
	g := newTestGame(t, pts(types.Point{X: 5, Y: 5}), types.Right, types.Point{X: 0, Y: 0}, nil)

	assert.True(t, g.SetDirection(types.Left))
	g.Tick()
	assert.Equal(t, types.Point{X: 4, Y: 5}, g.Head())
}

func TestSetDirectionWhilePaused(t *testing.T) {
	opts := DefaultOptions()
	opts.Logger = quietLogger()
	g, err := NewGameWithOptions(opts)
	require.NoError(t, err)

	assert.True(t, g.SetDirection(types.Down))
	g.TogglePause()
	g.Tick()
	assert.Equal(t, types.Point{X: 3, Y: 2}, g.Head())
}

func TestTickStraightRun(t *testing.T) {
	g := newTestGame(t, straightSnake(), types.Right, types.Point{X: 0, Y: 0}, nil)

	g.Tick()

	assert.Equal(t, pts(types.Point{X: 6, Y: 5}, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}), g.Body())
	assert.Equal(t, types.Playing, g.Phase())
}

func TestTickFollowsTail(t *testing.T) {
	// 2x2 loop: moving down puts the head on the current tail.
	body := pts(types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 4, Y: 6}, types.Point{X: 5, Y: 6})
	g := newTestGame(t, body, types.Right, types.Point{X: 0, Y: 0}, nil)
	require.True(t, g.SetDirection(types.Down))

	g.Tick()

	assert.Equal(t, types.Playing, g.Phase(), "moving onto the vacating tail is legal")
	assert.Equal(t, pts(types.Point{X: 5, Y: 6}, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 4, Y: 6}), g.Body())

	// The loop can keep circling.
	require.True(t, g.SetDirection(types.Left))
	g.Tick()
	assert.Equal(t, types.Playing, g.Phase())
	assert.Equal(t, types.Point{X: 4, Y: 6}, g.Head())
}

func TestTickTailIsSolidWhenEating(t *testing.T) {
	body := pts(types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 4, Y: 6}, types.Point{X: 5, Y: 6})
	g := newTestGame(t, body, types.Right, types.Point{X: 5, Y: 6}, nil)
	require.True(t, g.SetDirection(types.Down))

	g.Tick()

	assert.Equal(t, types.GameOver, g.Phase())
	assert.Equal(t, types.SelfCollision, g.LastCollision())
	assert.Equal(t, body, g.Body())
}

func TestTickSelfCollision(t *testing.T) {
	body := pts(
		types.Point{X: 5, Y: 5},
		types.Point{X: 5, Y: 4},
		types.Point{X: 6, Y: 4},
		types.Point{X: 6, Y: 5},
		types.Point{X: 6, Y: 6},
	)
	g := newTestGame(t, body, types.Down, types.Point{X: 0, Y: 0}, nil)
	require.True(t, g.SetDirection(types.Right))

	g.Tick()

	assert.Equal(t, types.GameOver, g.Phase())
	assert.Equal(t, types.SelfCollision, g.LastCollision())
	assert.Equal(t, body, g.Body(), "body is unchanged on collision")
	assert.Equal(t, 0, g.Ticks())
}

func TestTickWallCollision(t *testing.T) {
	tests := []struct {
		name string
		body []types.Point
		dir  types.Direction
	}{
		{"right wall", pts(types.Point{X: 9, Y: 5}, types.Point{X: 8, Y: 5}), types.Right},
		{"left wall", pts(types.Point{X: 0, Y: 5}, types.Point{X: 1, Y: 5}), types.Left},
		{"top wall", pts(types.Point{X: 3, Y: 0}, types.Point{X: 3, Y: 1}), types.Up},
		{"bottom wall", pts(types.Point{X: 3, Y: 9}, types.Point{X: 3, Y: 8}), types.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.body, tt.dir, types.Point{X: 5, Y: 5}, nil)

			g.Tick()

			assert.Equal(t, types.GameOver, g.Phase())
			assert.Equal(t, types.WallCollision, g.LastCollision())
			assert.Equal(t, tt.body, g.Body())
		})
	}
}

func TestTickEatsFoodAndGrows(t *testing.T) {
	rng := &scriptedRand{values: []int{1, 2}}
	g := newTestGame(t, straightSnake(), types.Right, types.Point{X: 6, Y: 5}, rng)

	g.Tick()

	assert.Equal(t, pts(types.Point{X: 6, Y: 5}, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 3, Y: 5}), g.Body())
	assert.Equal(t, types.Point{X: 1, Y: 2}, g.Food())
	assert.True(t, g.Grid().Contains(g.Food()))
	assert.Equal(t, 2, rng.calls)
}

func TestTickFoodMaySpawnUnderSnake(t *testing.T) {
	// The respawn draws (5,5), which the body covers after the move.
	g := newTestGame(t, straightSnake(), types.Right, types.Point{X: 6, Y: 5}, &scriptedRand{values: []int{5, 5}})

	g.Tick()

	assert.Equal(t, types.Point{X: 5, Y: 5}, g.Food())
	assert.True(t, g.Snapshot().FoodUnderSnake())
}

func TestTickFreeFoodPolicyAvoidsSnake(t *testing.T) {
	g, err := NewGameWithOptions(Options{
		Grid:             types.Grid{Width: 10, Height: 10},
		InitialBody:      straightSnake(),
		InitialDirection: types.Right,
		InitialFood:      types.Point{X: 6, Y: 5},
		FoodPolicy:       manager.FoodFree,
		Rand:             &scriptedRand{values: []int{6, 5, 0, 0}},
		Logger:           quietLogger(),
	})
	require.NoError(t, err)
	g.TogglePause()

	g.Tick()

	assert.Equal(t, types.Point{X: 0, Y: 0}, g.Food(), "the new head cell (6,5) is rejected")
	assert.False(t, g.Snapshot().FoodUnderSnake())
}

func TestBodyLengthNeverShrinks(t *testing.T) {
	g, err := NewGameWithOptions(Options{
		Grid:             types.Grid{Width: 8, Height: 8},
		InitialBody:      pts(types.Point{X: 3, Y: 1}, types.Point{X: 2, Y: 1}, types.Point{X: 1, Y: 1}),
		InitialDirection: types.Right,
		InitialFood:      types.Point{X: 3, Y: 3},
		Rand:             manager.NewRand(99),
		Logger:           quietLogger(),
	})
	require.NoError(t, err)
	g.TogglePause()

	turns := manager.NewRand(1)
	prev := len(g.Body())
	for i := 0; i < 2000; i++ {
		if g.Phase() == types.GameOver {
			g.Reset()
			g.TogglePause()
			prev = len(g.Body())
		}
		g.SetDirection(types.Direction(turns.Intn(4)))
		g.Tick()

		n := len(g.Body())
		require.GreaterOrEqual(t, n, prev, "length shrank at step %d", i)
		require.LessOrEqual(t, n-prev, 1)
		prev = n
		for _, p := range g.Body() {
			require.True(t, g.Grid().Contains(p))
		}
	}
}

func TestTickIsNoOpUnlessPlaying(t *testing.T) {
	opts := DefaultOptions()
	opts.Logger = quietLogger()
	g, err := NewGameWithOptions(opts)
	require.NoError(t, err)

	before := g.Snapshot()
	g.Tick()
	assert.Equal(t, before, g.Snapshot(), "paused tick must not change state")

	g.TogglePause()
	for g.Phase() == types.Playing {
		g.Tick()
	}
	require.Equal(t, types.GameOver, g.Phase())

	over := g.Snapshot()
	g.Tick()
	g.Tick()
	assert.Equal(t, over, g.Snapshot(), "game over tick must not change state")
}

func TestTogglePauseIgnoredAfterGameOver(t *testing.T) {
	g := newTestGame(t, pts(types.Point{X: 9, Y: 9}, types.Point{X: 8, Y: 9}), types.Right, types.Point{X: 0, Y: 0}, nil)
	g.Tick()
	require.Equal(t, types.GameOver, g.Phase())

	g.TogglePause()
	assert.Equal(t, types.GameOver, g.Phase())

	g.TogglePause()
	assert.Equal(t, types.GameOver, g.Phase())
}

func TestTogglePause(t *testing.T) {
	g := newTestGame(t, straightSnake(), types.Right, types.Point{X: 0, Y: 0}, nil)

	g.TogglePause()
	assert.Equal(t, types.Paused, g.Phase())
	g.Tick()
	assert.Equal(t, types.Point{X: 5, Y: 5}, g.Head())

	g.TogglePause()
	assert.Equal(t, types.Playing, g.Phase())
}

func TestResetRestoresInitialState(t *testing.T) {
	opts := DefaultOptions()
	opts.Logger = quietLogger()
	opts.Rand = &scriptedRand{values: []int{7, 7}}
	g, err := NewGameWithOptions(opts)
	require.NoError(t, err)
	initial := g.Snapshot()

	g.TogglePause()
	g.SetDirection(types.Down)
	g.Tick()
	g.Tick() // eats (3,3)
	require.Equal(t, 4, len(g.Body()))
	for g.Phase() == types.Playing {
		g.Tick()
	}

	g.Reset()

	assert.Equal(t, pts(types.Point{X: 3, Y: 1}, types.Point{X: 2, Y: 1}, types.Point{X: 1, Y: 1}), g.Body())
	assert.Equal(t, types.Right, g.Direction())
	assert.Equal(t, types.Paused, g.Phase())
	assert.Equal(t, types.Point{X: 3, Y: 3}, g.Food())
	assert.Equal(t, types.NoCollision, g.LastCollision())
	assert.Equal(t, 0, g.Ticks())
	assert.NotEqual(t, initial.Session, g.SessionID(), "reset starts a new session")
}

func TestResetDoesNotShareCallerBody(t *testing.T) {
	body := straightSnake()
	g := newTestGame(t, body, types.Right, types.Point{X: 6, Y: 5}, nil)
	body[0] = types.Point{X: 0, Y: 0}

	g.Tick()
	g.Reset()

	assert.Equal(t, straightSnake(), g.Body())
}

func TestBodyReturnsCopy(t *testing.T) {
	g := newTestGame(t, straightSnake(), types.Right, types.Point{X: 0, Y: 0}, nil)

	b := g.Body()
	b[0] = types.Point{X: 9, Y: 9}
	snap := g.Snapshot()
	snap.Body[1] = types.Point{X: 9, Y: 9}

	assert.Equal(t, straightSnake(), g.Body())
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, straightSnake(), types.Right, types.Point{X: 2, Y: 2}, nil)
	g.Tick()

	snap := g.Snapshot()

	assert.Equal(t, g.SessionID(), snap.Session)
	assert.Equal(t, 1, snap.Tick)
	assert.Equal(t, types.Point{X: 6, Y: 5}, snap.Head())
	assert.Equal(t, types.Right, snap.Direction)
	assert.Equal(t, types.Point{X: 2, Y: 2}, snap.Food)
	assert.Equal(t, types.Playing, snap.Phase)
	assert.False(t, snap.FoodUnderSnake())
}
