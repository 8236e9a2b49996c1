package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// logLevel parses the --log-level flag.
func logLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return lvl, nil
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	lvl, err := logLevel()
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// openLogFile opens ~/.rogue/rogue.log for appending. The alternate
// screen owns the terminal while a game runs.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".rogue")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "rogue.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
