package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zaryabali001/roommate/internal/auth"
	"github.com/zaryabali001/roommate/internal/config"
	"github.com/zaryabali001/roommate/internal/metrics"
	"github.com/zaryabali001/roommate/internal/notify"
	"github.com/zaryabali001/roommate/internal/seed"
	"github.com/zaryabali001/roommate/internal/server"
	"github.com/zaryabali001/roommate/internal/service"
	"github.com/zaryabali001/roommate/internal/store"
	"github.com/zaryabali001/roommate/internal/views"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

// openNotifier connects to NATS when a URL is configured.
func openNotifier(cfg config.NATSConfig, logger *slog.Logger) (notify.Notifier, error) {
	if cfg.URL == "" {
		return notify.NoopNotifier{}, nil
	}
	n, err := notify.Connect(cfg.URL, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Publishing store events to NATS", "url", cfg.URL, "subject", notify.SubjectPrefix+"*")
	return n, nil
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	initial, err := loadSeed(ctx, cfg.Seed)
	if err != nil {
		return err
	}
	logger.Info("Seed loaded", "source", cfg.Seed.Source, "path", cfg.Seed.Path, "users", len(initial.Users))

	notifier, err := openNotifier(cfg.NATS, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			logger.Warn("Failed to close notifier", "error", err)
		}
	}()

	recorder := metrics.New()
	st := store.New(initial,
		store.WithLogger(logger),
		store.WithObserver(recorder),
		store.WithObserver(notifier),
	)

	if cfg.Seed.Watch {
		watcher, err := seed.NewWatcher(seed.WatcherConfig{Path: cfg.Seed.Path, Logger: logger}, st)
		if err != nil {
			return err
		}
		defer watcher.Stop()
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("failed to watch seed: %w", err)
		}
		logger.Info("Watching seed file", "path", cfg.Seed.Path)
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	router := views.NewRouter(views.Options{InviteBaseURL: cfg.Views.InviteBaseURL})
	svcs := service.NewServices(st, tokens, router, notifier, logger)

	srv := server.New(server.Config{
		Addr:            cfg.Server.Addr,
		CORSOrigins:     cfg.Server.CORSOrigins,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, st, svcs, tokens, recorder, logger)

	return srv.Run(ctx)
}
