package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/zaryabali001/roommate/internal/config"
	"github.com/zaryabali001/roommate/internal/models"
	"github.com/zaryabali001/roommate/internal/seed"
	"github.com/zaryabali001/roommate/internal/storage"
	"github.com/zaryabali001/roommate/internal/storage/sqlite"
	"github.com/zaryabali001/roommate/pkg/logging"
)

// loadConfig resolves the layered config and sets up logging from it.
func loadConfig(flags *globalFlags) (*config.Config, *slog.Logger, error) {
	// Config loading logs through a provisional logger until the level is known.
	bootstrap := logging.Setup()

	cfg, err := config.NewLoader(bootstrap).Load(flags.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.SetupWithLevel(level), nil
}

// openSource returns the seed source cfg selects.
func openSource(cfg config.SeedConfig) (storage.SeedSource, error) {
	switch cfg.Source {
	case config.SourceDemo:
		return storage.StaticSource{Seed: seed.Demo()}, nil
	case config.SourceYAML:
		return seed.NewYAMLSource(cfg.Path), nil
	case config.SourceSQLite:
		if _, err := os.Stat(cfg.Path); err != nil {
			return nil, fmt.Errorf("failed to open seed database: %w", err)
		}
		store, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown seed source %q", cfg.Source)
	}
}

// loadSeed reads and validates the seed cfg selects.
func loadSeed(ctx context.Context, cfg config.SeedConfig) (*models.Seed, error) {
	source, err := openSource(cfg)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	s, err := source.LoadSeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}
	if err := seed.Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}
