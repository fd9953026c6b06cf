package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the reference configuration: a 20x20 grid, one tick
// every 150 ms, 10 points per food, spawn at the board center heading
// right.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size: 20,
		},
		TickIntervalMS: 150,
		Reward:         10,
		Spawn: SpawnConfig{
			X:       10,
			Y:       10,
			Heading: "right",
		},
	}
}
