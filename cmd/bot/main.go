package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kapu/namevibes-bot/internal/app"
	"github.com/kapu/namevibes-bot/internal/config"
	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("NameVibes bot starting...",
		zap.String("log_level", cfg.Logging.Level),
		zap.String("http_addr", cfg.HTTP.Addr),
		zap.Bool("bot_enabled", cfg.Bot.Enabled),
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("Fatal error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Info("Shutdown complete")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		return fmt.Errorf("assemble application services: %w", err)
	}
	defer container.Close()

	// Cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return container.NewWebServer().Serve(egctx)
	})

	if cfg.Bot.Enabled {
		kakaoBot, err := container.NewBot()
		if err != nil {
			return fmt.Errorf("initialize bot: %w", err)
		}

		eg.Go(func() error {
			return kakaoBot.Start(egctx)
		})
		eg.Go(func() error {
			<-egctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.HTTPConfig.ShutdownTimeout)
			defer cancel()
			return kakaoBot.Shutdown(shutdownCtx)
		})
	}

	logger.Info("Services started, waiting for signals...")
	return eg.Wait()
}
