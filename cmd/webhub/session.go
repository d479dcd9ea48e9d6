package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vidyasagar/webhub/internal/browser"
	"github.com/vidyasagar/webhub/internal/logging"
	"github.com/vidyasagar/webhub/internal/shell"
	"github.com/vidyasagar/webhub/internal/storage"
	"github.com/vidyasagar/webhub/internal/theme"
	"go.uber.org/zap"
)

// options holds the command-line flags. Empty values fall back to the
// config file.
type options struct {
	theme   string
	backend string
	dataDir string
	scope   string
	verbose bool
}

// session is everything one invocation needs, opened from config and flags.
type session struct {
	config *storage.Config
	kv     storage.KV
	logger *zap.Logger
	shell  *shell.Shell
}

func openSession(cmd *cobra.Command, opts options) (*session, error) {
	cfg, err := storage.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	themeName := pick(opts.theme, cfg.Theme)
	if !theme.Set(themeName) {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", themeName, strings.Join(theme.List(), ", "))
	}

	dataDir := opts.dataDir
	if dataDir == "" {
		if dataDir, err = storage.DataDir(); err != nil {
			return nil, fmt.Errorf("finding data dir: %w", err)
		}
	}

	logger, err := logging.New(dataDir, opts.verbose)
	if err != nil {
		return nil, err
	}
	logger = logger.With(
		zap.String("session", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)

	backend := pick(opts.backend, cfg.Backend)
	kv, err := storage.OpenKV(backend, dataDir)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("opening %s store: %w", backend, err)
	}
	logger.Info("session started",
		zap.String("backend", backend),
		zap.String("data_dir", dataDir),
		zap.String("version", version),
	)

	sh := shell.New(shell.Params{
		Scope:     pick(opts.scope, cfg.Scope),
		Links:     storage.LoadLinkStore(kv, logger),
		Profile:   storage.LoadProfile(kv, logger),
		Navigator: browser.NewOpener(logger),
		Logger:    logger,
	})

	return &session{
		config: cfg,
		kv:     kv,
		logger: logger,
		shell:  sh,
	}, nil
}

func (s *session) close() {
	if err := s.kv.Close(); err != nil {
		s.logger.Warn("closing store", zap.Error(err))
	}
	s.logger.Info("session ended")
	_ = s.logger.Sync()
}

// pick returns flag unless it is empty.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

// joinArgs rebuilds the shell line from command-line arguments.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
