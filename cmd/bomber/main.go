// bomber is a terminal Bomberman: clear maps of enemies alone or fight a
// duel on one keyboard.
//
// Usage:
//
//	bomber                   - Start the interactive menu
//	bomber play              - Start a game directly
//	bomber list              - List game modes
//	bomber scores            - Show high scores and duel results
//	bomber map generate      - Write a random map to a save slot
//	bomber map check <file>  - Validate a save slot
//	bomber serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate of the terminal loop (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bomber/scores.db)
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game modes
	_ "github.com/vovakirdan/tui-bomber/internal/games/bomber"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber",
	Short: "Bomber - blow up walls and enemies in your terminal",
	Long: `Bomber is a terminal take on the classic bomb-laying maze game.

Clear every enemy on a map to open the door, walk through it and a new
map is generated. Two players can fight a duel on one keyboard.

Available commands:
  play     - Start a game directly
  menu     - Interactive menu (default)
  list     - Show game modes
  scores   - View high scores and duels
  map      - Generate or check save slots
  serve    - Start SSH server for remote play

Examples:
  bomber
  bomber play --duel
  bomber play --load
  bomber scores
  bomber serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bomber/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write debug logs to this file")
	rootCmd.PersistentPreRunE = setupLogging

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapCmd)
}
