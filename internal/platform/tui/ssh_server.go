package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
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

	"github.com/vovakirdan/tui-battlebots/internal/audio"
	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/config"
	"github.com/vovakirdan/tui-battlebots/internal/core"
	"github.com/vovakirdan/tui-battlebots/internal/registry"
	"github.com/vovakirdan/tui-battlebots/internal/storage"
)

// SpectatorSeries tags results of matches run for SSH spectators.
const SpectatorSeries = "ssh"

// SSHServerConfig holds configuration for the spectator server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.battlebots/host_key.
	HostKeyPath string

	// DBPath is the path to the results database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Battle configures every match the server runs.
	Battle config.BattleConfig

	// Logger receives session and match logs. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.battlebots/results.db",
		IdleTimeout: 30 * time.Minute,
		Battle:      config.DefaultBattleConfig(),
	}
}

// SSHServer lets anyone with an SSH client watch bot matches. Each session
// gets its own matches, so sessions never share simulation state.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if err := cfg.Battle.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "battlebots-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".battlebots", "host_key")
	}

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

// teaHandler creates a viewer for each SSH session. The session command
// may name two bot IDs ("ssh host -t hunter sitter"); otherwise bots are
// drawn at random for every match.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height
	cfg.Seed = time.Now().UnixNano()

	picker, err := newPicker(sshSession.Command(), cfg.Seed)
	if err != nil {
		wish.Fatalln(sshSession, err)
		return nil, nil
	}

	next := func() (*battle.Match, Pairing, error) {
		p := picker.next()
		m, err := s.newMatch(p, sshSession.User())
		return m, p, err
	}

	first, pairing, err := next()
	if err != nil {
		wish.Fatalln(sshSession, err)
		return nil, nil
	}

	model := NewModel(first, pairing, s.store, cfg).
		WithNext(next).
		WithSeries(SpectatorSeries).
		WithPalette(NewPalette(bubbletea.MakeRenderer(sshSession)))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

func (s *SSHServer) newMatch(p Pairing, user string) (*battle.Match, error) {
	b1, err := registry.Create(p.Bot1)
	if err != nil {
		return nil, err
	}
	b2, err := registry.Create(p.Bot2)
	if err != nil {
		return nil, err
	}

	matchLog := s.logger.With("user", user, "player1", p.Bot1, "player2", p.Bot2)
	matchLog.Info("match starting")
	return battle.NewMatch(s.config.Battle, b1, b2,
		battle.WithLogger(matchLog),
		battle.WithCueSink(audio.LogSink{Logger: matchLog}),
	)
}

// picker chooses the bots for each spectator match.
type picker struct {
	fixed *Pairing
	ids   []string
	rng   *rand.Rand
}

func newPicker(args []string, seed int64) (*picker, error) {
	p := &picker{
		ids: registry.IDs(),
		rng: rand.New(rand.NewPCG(uint64(seed), 0)),
	}

	switch len(args) {
	case 0:
		if len(p.ids) == 0 {
			return nil, errors.New("no bots registered")
		}
		return p, nil
	case 2:
		for _, id := range args {
			if !registry.Exists(id) {
				return nil, fmt.Errorf("%w %q", registry.ErrUnknownBot, id)
			}
		}
		p.fixed = &Pairing{Bot1: args[0], Bot2: args[1]}
		return p, nil
	default:
		return nil, errors.New("usage: ssh <host> [<bot1> <bot2>]")
	}
}

func (p *picker) next() Pairing {
	if p.fixed != nil {
		return *p.fixed
	}
	return Pairing{
		Bot1: p.ids[p.rng.IntN(len(p.ids))],
		Bot2: p.ids[p.rng.IntN(len(p.ids))],
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
