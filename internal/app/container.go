package app

import (
	"context"
	"fmt"

	"github.com/kapu/namevibes-bot/internal/adapter"
	"github.com/kapu/namevibes-bot/internal/bot"
	"github.com/kapu/namevibes-bot/internal/config"
	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/iris"
	"github.com/kapu/namevibes-bot/internal/metrics"
	"github.com/kapu/namevibes-bot/internal/service/ai"
	"github.com/kapu/namevibes-bot/internal/service/cache"
	"github.com/kapu/namevibes-bot/internal/service/database"
	"github.com/kapu/namevibes-bot/internal/service/reading"
	"github.com/kapu/namevibes-bot/internal/web"
	"go.uber.org/zap"
)

// Container bundles assembled services for constructing runtime components
// like the bot and the web server.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Readings *reading.Service

	botDeps *bot.Dependencies
	checks  map[string]web.CheckFunc
	closers []func()
}

// NewBot instantiates a bot using the pre-built dependency graph.
func (c *Container) NewBot() (*bot.Bot, error) {
	if c == nil || c.botDeps == nil {
		return nil, fmt.Errorf("bot dependencies not initialized")
	}
	return bot.NewBot(c.botDeps)
}

// NewWebServer returns the HTTP server sharing the container's services.
func (c *Container) NewWebServer() *web.Server {
	return web.NewServer(web.Config{
		Addr:     c.Config.HTTP.Addr,
		Readings: c.Readings,
		Metrics:  c.Metrics,
		Logger:   c.Logger,
		Checks:   c.checks,
	})
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Build assembles all infrastructure services. PostgreSQL is required; Redis
// and the AI providers are optional and only degrade features when missing.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		checks:  make(map[string]web.CheckFunc),
	}
	defer func() {
		if err != nil {
			c.Close()
		}
	}()

	// Database
	postgresSvc, err := database.NewPostgresService(ctx, cfg.Postgres, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	c.closers = append(c.closers, func() {
		_ = postgresSvc.Close()
	})
	c.checks["postgres"] = postgresSvc.Check

	if err := database.Migrate(postgresSvc.GetDB()); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	repo := reading.NewPostgresRepository(postgresSvc.GetDB(), logger)

	// Cache is optional; a nil interface keeps the service on its compute path.
	var readingCache reading.Cache
	cacheSvc, cacheErr := cache.NewCacheService(ctx, cfg.Redis, logger)
	if cacheErr != nil {
		logger.Warn("Redis unavailable, continuing without cache", zap.Error(cacheErr))
	} else {
		readingCache = cacheSvc
		c.checks["redis"] = cacheSvc.Check
		c.closers = append(c.closers, func() {
			_ = cacheSvc.Close()
		})
	}

	// AI stack
	var generator ai.Generator
	if cfg.Gemini.APIKey != "" {
		modelManager, err := ai.NewModelManager(ctx, ai.ModelManagerConfig{
			GeminiAPIKey:   cfg.Gemini.APIKey,
			GeminiModel:    cfg.Gemini.Model,
			OpenAIAPIKey:   cfg.OpenAI.APIKey,
			OpenAIModel:    cfg.OpenAI.Model,
			EnableFallback: cfg.OpenAI.EnableFallback,
		}, c.Metrics, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create model manager: %w", err)
		}
		generator = modelManager
	} else {
		logger.Info("GEMINI_API_KEY not set, narratives disabled")
	}

	narrator, err := ai.NewNarrator(generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create narrator: %w", err)
	}

	c.Readings = reading.NewService(repo, readingCache, narrator, c.Metrics, logger)

	// Messaging
	if cfg.Bot.Enabled {
		irisClient := iris.NewClient(cfg.Iris.BaseURL, logger)
		c.checks["iris"] = irisClient.Check
		c.botDeps = &bot.Dependencies{
			Config: cfg,
			Logger: logger,
			Sender: irisClient,
			Source: iris.NewListener(cfg.Iris.WSURL,
				constants.WebSocketConfig.MaxReconnectAttempts,
				constants.WebSocketConfig.ReconnectDelay,
				logger),
			MessageAdapter: adapter.NewMessageAdapter(cfg.Bot.Prefix),
			Formatter:      adapter.NewResponseFormatter(cfg.Bot.Prefix),
			Readings:       c.Readings,
			Metrics:        c.Metrics,
		}
	}

	logger.Info("Application services assembled",
		zap.Bool("cache", readingCache != nil),
		zap.Bool("narrative", narrator.Enabled()),
		zap.Bool("bot", cfg.Bot.Enabled),
	)
	return c, nil
}
