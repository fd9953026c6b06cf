// snaketerm is a terminal snake game with persisted high scores.
//
// Usage:
//
//	snaketerm                - Play in the current terminal
//	snaketerm play           - Same as above
//	snaketerm scores         - Show recorded high scores
//	snaketerm serve          - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Scores database path (default: ~/.snaketerm/scores.db)
//	--config <path>  - Custom game config YAML
//	--tick <ms>      - Tick interval override in milliseconds
//	--seed <value>   - RNG seed for reproducible games (0 = random)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
	flagTickMS int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketerm",
	Short: "Snake in your terminal",
	Long: `snaketerm is a terminal snake game: steer the snake with the arrow
keys or WASD, eat food, avoid the walls and your own tail. The best
score is persisted across sessions.

Examples:
  snaketerm
  snaketerm play --tick 100
  snaketerm scores
  snaketerm scores --interactive
  snaketerm serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snaketerm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", 0, "Tick interval in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
