package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kapu/namevibes-bot/internal/config"
	"github.com/kapu/namevibes-bot/internal/util"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const connectTimeout = 5 * time.Second

// PostgresService owns the connection pool behind the reading repository.
type PostgresService struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresService(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*PostgresService, error) {
	logger = util.OrNop(logger)

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(max(1, maxConns/2))
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.Database, err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("max_conns", maxConns),
	)

	return &PostgresService{
		db:     db,
		logger: logger,
	}, nil
}

func (ps *PostgresService) GetDB() *sql.DB {
	return ps.db
}

// Check pings the database; it backs the /healthz probe.
func (ps *PostgresService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return ps.db.PingContext(ctx)
}

// Close logs the final pool statistics and closes the pool.
func (ps *PostgresService) Close() error {
	if ps.db == nil {
		return nil
	}
	stats := ps.db.Stats()
	ps.logger.Info("PostgreSQL disconnected",
		zap.Int("open", stats.OpenConnections),
		zap.Int64("wait_count", stats.WaitCount),
		zap.Duration("wait_duration", stats.WaitDuration),
	)
	return ps.db.Close()
}
