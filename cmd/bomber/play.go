package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDuel       bool
	flagLoad       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a single-player game, a duel or the game in the save slot.

Controls:
  W/A/S/D      - Move player 1
  Space        - Player 1 bomb
  Arrows       - Move player 2 (duel)
  Enter        - Player 2 bomb (duel)
  P            - Pause
  F5           - Save (single player)
  R            - Restart (after game over)
  Esc          - Back
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, more bonuses
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, fewer bonuses
  fixed  - No progression, map counts stay at the config values

Examples:
  bomber play
  bomber play --duel
  bomber play --load
  bomber play --difficulty hard
  bomber play --config ./my-bomber.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, rootCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML, or legacy .txt)")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
	playCmd.Flags().BoolVar(&flagDuel, "duel", false, "Two players on one keyboard")
	playCmd.Flags().BoolVar(&flagLoad, "load", false, "Continue the game in the save slot")
	playCmd.MarkFlagsMutuallyExclusive("duel", "load")
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame hands the command line settings to the game package.
func configureGame(store *storage.Store) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	bomber.SetConfigPath(flagConfig)
	bomber.SetDifficultyPreset(flagDifficulty)
	if store != nil {
		bomber.SetHighScoreStore(store)
	}
	return nil
}

// openStore opens the scores database. The game runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	store := openStore()

	if err := configureGame(store); err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var game registry.Game
	switch {
	case flagLoad:
		game = bomber.NewFromSave()
	case flagDuel:
		game = bomber.NewDuel()
	default:
		game = bomber.New()
	}

	outcome, runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if outcome.Message != "" {
		fmt.Fprintln(os.Stderr, outcome.Message)
	}
}
