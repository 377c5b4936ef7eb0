package reading

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/metrics"
	"github.com/kapu/namevibes-bot/internal/util"
	"github.com/kapu/namevibes-bot/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Cache is the subset of the Redis cache the service relies on.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Narrator writes the optional narrative paragraph for a reading.
type Narrator interface {
	Narrate(ctx context.Context, r *domain.Reading) (string, error)
}

// Service computes readings and coordinates cache, persistence and narrative.
// Cache, repository and narrator are all optional.
type Service struct {
	repo     Repository
	cache    Cache
	narrator Narrator
	metrics  *metrics.Metrics
	logger   *zap.Logger

	concurrency int
	now         func() time.Time
	newID       func() uuid.UUID
}

func NewService(repo Repository, cache Cache, narrator Narrator, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		repo:        repo,
		cache:       cache,
		narrator:    narrator,
		metrics:     m,
		logger:      util.OrNop(logger),
		concurrency: constants.Concurrency.Batch,
		now:         time.Now,
		newID:       uuid.New,
	}
}

// Get returns the reading for name, served from cache when possible.
func (s *Service) Get(ctx context.Context, name string) (*domain.Reading, error) {
	r, err := s.get(ctx, name)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveReading("lookup", r.ElementCount())
	return r, nil
}

func (s *Service) get(ctx context.Context, name string) (*domain.Reading, error) {
	computed, err := Compute(name)
	if err != nil {
		return nil, err
	}
	if s.cache == nil || computed.Normalized == "" {
		return computed, nil
	}

	key := cacheKey(constants.CacheKeys.ReadingPrefix, computed.Normalized)

	var cached domain.Reading
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("Reading cache lookup failed", zap.String("key", key), zap.Error(err))
	}
	if found {
		cached.Name = computed.Name
		return &cached, nil
	}

	if err := s.cache.Set(ctx, key, computed, constants.CacheTTL.Reading); err != nil {
		s.logger.Warn("Reading cache store failed", zap.String("key", key), zap.Error(err))
	}
	return computed, nil
}

// Record computes the reading for name and persists its summary.
func (s *Service) Record(ctx context.Context, name, source string) (*domain.Reading, error) {
	if s.repo == nil {
		return nil, errors.NewServiceError("reading storage is not configured", "reading", "record", nil)
	}

	r, err := s.get(ctx, name)
	if err != nil {
		return nil, err
	}

	r.ID = s.newID()
	r.Source = source
	r.CreatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, r.Summary()); err != nil {
		return nil, fmt.Errorf("record reading: %w", err)
	}

	s.metrics.ObserveReading(source, r.ElementCount())
	s.logger.Info("Reading recorded",
		zap.String("id", r.ID.String()),
		zap.String("normalized", r.Normalized),
		zap.String("source", source),
		zap.Int("elements", r.ElementCount()),
	)
	return r, nil
}

// GetMany resolves names concurrently and returns readings in input order.
// The first failing name, in input order, aborts the batch.
func (s *Service) GetMany(ctx context.Context, names []string) ([]*domain.Reading, error) {
	if len(names) > constants.Limits.MaxBatchNames {
		return nil, errors.NewValidationError(
			fmt.Sprintf("at most %d names per batch", constants.Limits.MaxBatchNames),
			"names", len(names))
	}

	results := make([]*domain.Reading, len(names))
	errs := make([]error, len(names))
	mu := sync.Mutex{}

	p := pool.New().WithMaxGoroutines(s.concurrency)
	for idx, name := range names {
		p.Go(func() {
			r, err := s.get(ctx, name)
			mu.Lock()
			results[idx], errs[idx] = r, err
			mu.Unlock()
		})
	}
	p.Wait()

	for idx, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("name #%d: %w", idx+1, err)
		}
	}

	for _, r := range results {
		s.metrics.ObserveReading("batch", r.ElementCount())
	}
	return results, nil
}

// Narrate fills r.Narrative, reusing a cached paragraph for the same normalized name.
func (s *Service) Narrate(ctx context.Context, r *domain.Reading) error {
	if s.narrator == nil {
		return errors.NewServiceError("narrative is not configured", "narrative", "narrate", nil)
	}

	key := cacheKey(constants.CacheKeys.NarrativePrefix, r.Normalized)
	if s.cache != nil && r.Normalized != "" {
		var text string
		if found, err := s.cache.Get(ctx, key, &text); err == nil && found {
			r.Narrative = text
			return nil
		}
	}

	text, err := s.narrator.Narrate(ctx, r)
	if err != nil {
		return err
	}
	r.Narrative = text

	if s.cache != nil && r.Normalized != "" {
		if err := s.cache.Set(ctx, key, text, constants.CacheTTL.Narrative); err != nil {
			s.logger.Warn("Narrative cache store failed", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

// Top returns the most recorded normalized names. limit is clamped to the
// configured ranking bounds.
func (s *Service) Top(ctx context.Context, limit int) ([]domain.RankEntry, error) {
	if s.repo == nil {
		return nil, errors.NewServiceError("reading storage is not configured", "reading", "top", nil)
	}
	limit = clampLimit(limit)

	key := constants.CacheKeys.Ranking + ":" + strconv.Itoa(limit)
	if s.cache != nil {
		var cached []domain.RankEntry
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	entries, err := s.repo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load ranking: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, entries, constants.CacheTTL.Ranking); err != nil {
			s.logger.Warn("Ranking cache store failed", zap.Error(err))
		}
	}
	return entries, nil
}

// Recent returns the latest recorded readings, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.ReadingSummary, error) {
	if s.repo == nil {
		return nil, errors.NewServiceError("reading storage is not configured", "reading", "recent", nil)
	}
	summaries, err := s.repo.Recent(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("load recent readings: %w", err)
	}
	return summaries, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return constants.Limits.DefaultRanking
	}
	if limit > constants.Limits.MaxRankingSize {
		return constants.Limits.MaxRankingSize
	}
	return limit
}
