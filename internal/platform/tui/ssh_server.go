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

	"github.com/pointvale/stagehand/internal/audio"
	"github.com/pointvale/stagehand/internal/runtime"
	"github.com/pointvale/stagehand/internal/scene"
	"github.com/pointvale/stagehand/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.stagehand/host_key.
	HostKeyPath string

	// ProjectPath is the project file served to every session.
	ProjectPath string

	// TracesPath is the path to the playtest traces database.
	// Empty disables trace recording.
	TracesPath string

	// TickInterval is the simulation tick interval for each session.
	TickInterval time.Duration

	// Tuning is the runtime tuning applied to each session.
	Tuning runtime.Tuning

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:      ":23234",
		TickInterval: 50 * time.Millisecond,
		Tuning:       runtime.DefaultTuning(),
		IdleTimeout:  30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server playing one project. Sessions mutate
// puzzle and cutscene flags on their scene data, so every connection loads
// its own copy of the project.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "stagehand-ssh",
	})

	// Parse once up front so a broken project fails at startup, not per
	// connection.
	if _, err := scene.Load(cfg.ProjectPath); err != nil {
		return nil, fmt.Errorf("cannot load project: %w", err)
	}

	var store *storage.Store
	if cfg.TracesPath != "" {
		var err error
		store, err = storage.Open(cfg.TracesPath)
		if err != nil {
			logger.Warn("could not open traces database", "error", err)
			// Continue without storage
		}
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".stagehand", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
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

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	_, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	project, err := scene.Load(s.config.ProjectPath)
	if err != nil {
		s.logger.Error("cannot load project for session", "error", err)
		return nil, nil
	}

	var sink runtime.EventSink
	if s.store != nil {
		rec, recErr := s.store.BeginSession(project.Name, project.StartScene)
		if recErr != nil {
			s.logger.Warn("cannot begin trace session", "error", recErr)
		} else {
			sink = rec
		}
	}

	rt, err := runtime.New(project, runtime.Options{
		Logger: s.logger.With("user", sshSession.User()),
		Audio:  audio.Nop{},
		Sink:   sink,
		Tuning: s.config.Tuning,
	})
	if err != nil {
		s.logger.Error("cannot start runtime", "error", err)
		return nil, nil
	}

	return NewModel(project, rt, s.config.TickInterval), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
