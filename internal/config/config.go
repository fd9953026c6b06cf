// Package config provides YAML-based configuration loading for snaketerm.
package config

import (
	"time"

	"github.com/dkaryakin/snaketerm/internal/snake"
)

// Config contains all tunable game parameters.
type Config struct {
	Grid           GridConfig  `yaml:"grid"`
	TickIntervalMS int         `yaml:"tick_interval_ms"`
	Reward         int         `yaml:"reward"`
	Spawn          SpawnConfig `yaml:"spawn"`
}

// GridConfig defines board dimensions.
type GridConfig struct {
	Size int `yaml:"size"`
}

// SpawnConfig defines the snake's starting cell and heading.
type SpawnConfig struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Heading string `yaml:"heading"`
}

// TickInterval returns the simulation clock interval.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// EngineConfig converts the file representation into engine parameters.
// Invalid values have already been normalized away by Load.
func (c Config) EngineConfig(seed int64) snake.Config {
	heading, err := snake.ParseHeading(c.Spawn.Heading)
	if err != nil {
		heading = snake.HeadingRight
	}

	return snake.Config{
		GridSize:     c.Grid.Size,
		Reward:       c.Reward,
		Spawn:        snake.Cell{X: c.Spawn.X, Y: c.Spawn.Y},
		SpawnHeading: heading,
		Seed:         seed,
	}
}

// Normalize clamps out-of-range values back to defaults so a sloppy
// config file cannot produce an unplayable game.
func (c *Config) Normalize() {
	def := Default()

	if c.Grid.Size < 4 || c.Grid.Size > 100 {
		c.Grid.Size = def.Grid.Size
	}
	if c.TickIntervalMS < 20 || c.TickIntervalMS > 2000 {
		c.TickIntervalMS = def.TickIntervalMS
	}
	if c.Reward <= 0 {
		c.Reward = def.Reward
	}
	if c.Spawn.X < 0 || c.Spawn.X >= c.Grid.Size {
		c.Spawn.X = c.Grid.Size / 2
	}
	if c.Spawn.Y < 0 || c.Spawn.Y >= c.Grid.Size {
		c.Spawn.Y = c.Grid.Size / 2
	}
	if _, err := snake.ParseHeading(c.Spawn.Heading); err != nil {
		c.Spawn.Heading = def.Spawn.Heading
	}
}
