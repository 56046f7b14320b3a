package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/zerah-labs/zerah/internal/config"
	"github.com/zerah-labs/zerah/internal/ident"
	"github.com/zerah-labs/zerah/internal/rates"
	"github.com/zerah-labs/zerah/internal/service"
	"github.com/zerah-labs/zerah/internal/store"
)

type App struct {
	Cfg     *config.Config
	Service *service.Service
	Store   store.Repository
	Rates   rates.Client
	Log     zerolog.Logger
}

// NewApp wires the session: seeded in-memory store, core services, the
// live-rate client and a file logger. State lives for the process only.
func NewApp(cfg *config.Config) (*App, func(), error) {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	repo := store.NewMemoryStore(cfg.Profile.Name)
	svc := service.NewService(repo, cfg, ident.NewRandomGenerator())

	client := rates.NewLiveClient(cfg.Rates.Endpoint, cfg.Rates.Model, cfg.Rates.APIKey)

	logger.Info().
		Str("holder", cfg.Profile.Name).
		Str("default_currency", cfg.Defaults.Currency).
		Msg("session started")

	return &App{
		Cfg:     cfg,
		Service: svc,
		Store:   repo,
		Rates:   client,
		Log:     logger,
	}, closeLog, nil
}

// newLogger writes to the configured log file. The terminal belongs to
// the TUI, so nothing is ever logged to stdout.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	path := cfg.Log.File
	if path == "" {
		appDir, err := getAppDataDir()
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		if err := os.MkdirAll(appDir, 0755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		path = filepath.Join(appDir, "zerah.log")
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	cleanup := func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".zerah"), nil
	}

	return filepath.Join(configDir, "zerah"), nil
}
