package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
)

// setupLogging points the game logger at --log. Without it only warnings
// reach stderr.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLog == "" {
		log.SetLevel(log.WarnLevel)
		return nil
	}

	//#nosec G304 -- path comes from the command line
	f, err := os.OpenFile(config.ExpandPath(flagLog), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	log.SetDefault(logger)
	bomber.SetLogger(logger)
	return nil
}
