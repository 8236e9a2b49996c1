// Package tui hosts the game in a terminal, locally or over SSH via Wish,
// and browses the run journal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rogue/internal/config"
	"github.com/vovakirdan/tui-rogue/internal/game"
	"github.com/vovakirdan/tui-rogue/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.rogue/host_key.
	HostKeyPath string

	// DBPath is the path to the run journal.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game holds the settings every session plays with.
	Game config.Config

	// Seed fixes the world seed for all sessions. Zero gives each session
	// its own time-based seed.
	Seed int64

	// LogLevel is the server log level.
	LogLevel log.Level
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.rogue/runs.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.Default(),
		LogLevel:    log.InfoLevel,
	}
}

// SSHServer wraps a Wish SSH server. Every session gets its own game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	atlas  *Atlas
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rogue-ssh",
		Level:           cfg.LogLevel,
	})

	hostKeyPath, err := ensureHostKeyDir(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	// A missing journal is not fatal.
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("run journal unavailable", "path", cfg.DBPath, "err", err)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		atlas:  DefaultAtlas(),
		logger: logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// ensureHostKeyDir resolves the host key path, defaulting to
// ~/.rogue/host_key, and creates its directory. Wish generates the key on
// first start.
func ensureHostKeyDir(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".rogue", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates a game and its Bubble Tea model for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	logger := s.logger.With("session", uuid.New(), "user", sess.User())

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctrl, err := game.FromConfig(s.config.Game, seed, logger)
	if err != nil {
		logger.Error("cannot start game", "err", err)
		return nil, nil
	}

	model := NewModel(ctrl, Options{
		Atlas:  s.atlas,
		Shown:  s.config.Game.Messages.Shown,
		Store:  s.store,
		Player: sess.User(),
		Logger: logger,
		Width:  pty.Window.Width,
		Height: pty.Window.Height,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs connects and disconnects with session length.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("player connected", "user", sess.User(), "remote", remote)
		next(sess)
		s.logger.Info("player disconnected", "user", sess.User(), "remote", remote,
			"elapsed", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("listening", "address", s.config.Address, "journal", s.store != nil)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	failed := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case <-stop:
		s.logger.Info("shutting down")
		return s.Shutdown()
	case err := <-failed:
		s.logger.Error("server stopped", "err", err)
		s.Shutdown()
		return fmt.Errorf("ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
