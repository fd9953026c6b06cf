package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkaryakin/snaketerm/internal/config"
	"github.com/dkaryakin/snaketerm/internal/core"
	"github.com/dkaryakin/snaketerm/internal/snake"
	"github.com/dkaryakin/snaketerm/internal/storage"
	"github.com/dkaryakin/snaketerm/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  snaketerm play
  snaketerm play --tick 100
  snaketerm play --config ./my-snake.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickInterval := gameCfg.TickInterval()
	if flagTickMS > 0 {
		tickInterval = time.Duration(flagTickMS) * time.Millisecond
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: tickInterval,
		Seed:         seed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var keeper snake.ScoreKeeper
	if store != nil {
		keeper = store
	}
	engine := snake.New(gameCfg.EngineConfig(seed), keeper)

	runErr := tui.Run(engine, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
