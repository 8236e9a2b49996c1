// rogue is a tile-based roguelike played in the terminal.
//
// Usage:
//
//	rogue play             - Play locally
//	rogue serve            - Start SSH server for remote play
//	rogue history          - Browse finished runs
//	rogue log <run>        - Print the message log of a run
//	rogue forget <run>     - Delete a run from the journal
//	rogue actors           - List spawnable actor types
//	rogue config           - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - World seed (default: time based)
//	--db <path>         - Run journal (default: ~/.rogue/runs.db)
//	--config <path>     - Config file (default: search ~/.rogue/configs, ./configs)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import actors to register them
	_ "github.com/vovakirdan/tui-rogue/internal/actor/soldier"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rogue",
	Short: "Rogue - explore an endless generated world in your terminal",
	Long: `Rogue is a tile-based roguelike. Walk an endless noise-generated
world, spawn soldiers that hunt you down, and keep a journal of every run.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  history  - Browse finished runs
  log      - Print the message log of a run
  forget   - Delete a run
  actors   - List spawnable actor types
  config   - Print the effective configuration

Examples:
  rogue play
  rogue play --seed 42
  rogue serve --ssh :2222
  rogue log 3f2a`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rogue/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(forgetCmd)
	rootCmd.AddCommand(actorsCmd)
	rootCmd.AddCommand(configCmd)
}
