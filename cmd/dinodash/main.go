// dinodash is an endless runner for the terminal.
//
// Usage:
//
//	dinodash play            - Play a run locally
//	dinodash serve           - Start SSH server for remote play
//	dinodash scores          - Print the run history
//	dinodash board           - Browse the run history interactively
//	dinodash config          - Print the default runner config
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.dinodash/scores.db)
//	--store <kind>   - Best score backend: sqlite, gdata or memory
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagStore   string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinodash",
	Short: "Dino Dash - jump the rocks, duck the dragons",
	Long: `Dino Dash is an endless runner for the terminal. Hazards scroll in
from the right and speed up as your score climbs.

Available commands:
  play     - Play a run locally
  serve    - Start SSH server for remote play
  scores   - Print the run history
  board    - Browse the run history interactively
  config   - Print the default runner config

Examples:
  dinodash play
  dinodash play --difficulty hard
  dinodash serve --addr :2222
  dinodash scores --recent`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinodash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "sqlite", "Best score backend: sqlite, gdata, memory")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dinodash",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens ~/.dinodash/dinodash.log for appending.
// The terminal belongs to the game while playing, so logs go to a file.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".dinodash")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "dinodash.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
