// Package config provides configuration loading for the game and its front ends.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Seed   int64        `yaml:"seed"`
	Grid   GridConfig   `yaml:"grid"`
	Screen ScreenConfig `yaml:"screen"`
	Game   GameConfig   `yaml:"game"`
}

// GridConfig holds the board dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScreenConfig holds display settings for the graphical front end.
type ScreenConfig struct {
	CellSize  int    `yaml:"cell_size"` // Pixels per grid cell
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// GameConfig holds the starting layout and simulation cadence.
type GameConfig struct {
	TickInterval     time.Duration `yaml:"tick_interval"`
	InitialBody      []Cell        `yaml:"initial_body"` // Head first
	InitialDirection string        `yaml:"initial_direction"`
	InitialFood      Cell          `yaml:"initial_food"`
	FoodPolicy       string        `yaml:"food_policy"`
}

// Cell is a grid coordinate written as [x, y].
type Cell [2]int

func (c Cell) Point() types.Point {
	return types.Point{X: c[0], Y: c[1]}
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := parse(defaultsYAML, &Config{})
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	// Unmarshal into same struct - only overwrites fields present in file
	if _, err := parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte, cfg *Config) (*Config, error) {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that the game constructor does not.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid: width and height must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Screen.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("screen.cell_size must be positive, got %d", c.Screen.CellSize))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	if c.Game.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("game.tick_interval must be positive, got %s", c.Game.TickInterval))
	}
	if len(c.Game.InitialBody) == 0 {
		errs = append(errs, errors.New("game.initial_body must have at least one cell"))
	}
	if _, err := types.ParseDirection(c.Game.InitialDirection); err != nil {
		errs = append(errs, fmt.Errorf("game.initial_direction: %w", err))
	}
	if _, err := manager.ParseFoodPolicy(c.Game.FoodPolicy); err != nil {
		errs = append(errs, fmt.Errorf("game.food_policy: %w", err))
	}
	return errors.Join(errs...)
}

// GameOptions converts the game section into constructor options. Rand and
// Logger are left for the caller.
func (c *Config) GameOptions() (game.Options, error) {
	dir, err := types.ParseDirection(c.Game.InitialDirection)
	if err != nil {
		return game.Options{}, fmt.Errorf("game.initial_direction: %w", err)
	}
	policy, err := manager.ParseFoodPolicy(c.Game.FoodPolicy)
	if err != nil {
		return game.Options{}, fmt.Errorf("game.food_policy: %w", err)
	}

	body := make([]types.Point, len(c.Game.InitialBody))
	for i, cell := range c.Game.InitialBody {
		body[i] = cell.Point()
	}

	return game.Options{
		Grid:             types.Grid{Width: c.Grid.Width, Height: c.Grid.Height},
		InitialBody:      body,
		InitialDirection: dir,
		InitialFood:      c.Game.InitialFood.Point(),
		FoodPolicy:       policy,
	}, nil
}

// TickEvery returns how many frames pass between simulation steps at the
// target frame rate, never less than one.
func (c *Config) TickEvery() int {
	frame := time.Second / time.Duration(c.Screen.TargetFPS)
	n := int(c.Game.TickInterval / frame)
	if n < 1 {
		n = 1
	}
	return n
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
