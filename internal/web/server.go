// Package web serves the JSON API behind the name-entry form and the HTML
// share cards.
package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/metrics"
	"github.com/kapu/namevibes-bot/internal/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ReadingService is what the HTTP handlers need from the reading service.
type ReadingService interface {
	Get(ctx context.Context, name string) (*domain.Reading, error)
	Record(ctx context.Context, name, source string) (*domain.Reading, error)
	GetMany(ctx context.Context, names []string) ([]*domain.Reading, error)
	Top(ctx context.Context, limit int) ([]domain.RankEntry, error)
	Recent(ctx context.Context, limit int) ([]domain.ReadingSummary, error)
}

// CheckFunc probes one backing service for /healthz.
type CheckFunc func(ctx context.Context) error

type Config struct {
	Addr     string
	Readings ReadingService
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
	Checks   map[string]CheckFunc
}

type Server struct {
	addr     string
	readings ReadingService
	metrics  *metrics.Metrics
	logger   *zap.Logger
	checks   map[string]CheckFunc
}

func NewServer(cfg Config) *Server {
	return &Server{
		addr:     cfg.Addr,
		readings: cfg.Readings,
		metrics:  cfg.Metrics,
		logger:   util.OrNop(cfg.Logger),
		checks:   cfg.Checks,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		s.requestLogger,
		middleware.Recoverer,
		middleware.Timeout(constants.HTTPConfig.RequestTimeout),
	)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/elements", s.handleElements)
		r.Get("/elements/{symbol}", s.handleElement)
		r.Get("/parse", s.handleParse)
		r.Get("/numerology", s.handleNumerology)
		r.Get("/zodiac", s.handleZodiac)

		r.Post("/readings", s.handleCreateReading)
		r.Post("/readings/batch", s.handleBatchReadings)
		r.Get("/readings/top", s.handleTopReadings)
		r.Get("/readings/recent", s.handleRecentReadings)
	})

	r.Get("/card/{name}", s.handleCard)
	return r
}

// Serve starts the HTTP server and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: constants.HTTPConfig.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		s.logger.Info("HTTP server listening", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.HTTPConfig.ShutdownTimeout)
		defer cancel()

		s.logger.Info("HTTP server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// requestLogger logs each request and records its latency under the matched
// route pattern.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)

		s.metrics.ObserveHTTP(r.Method, route, status, elapsed)
		s.logger.Debug("HTTP request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
