package reading

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/domain"
	apperrors "github.com/kapu/namevibes-bot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet {
		return false, stderrors.New("redis down")
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

type fakeRepository struct {
	mu      sync.Mutex
	saved   []domain.ReadingSummary
	top     []domain.RankEntry
	topHits int
	saveErr error
}

func (r *fakeRepository) Save(_ context.Context, s domain.ReadingSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, s)
	return nil
}

func (r *fakeRepository) Top(_ context.Context, limit int) ([]domain.RankEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topHits++
	if limit < len(r.top) {
		return r.top[:limit], nil
	}
	return r.top, nil
}

func (r *fakeRepository) Recent(_ context.Context, limit int) ([]domain.ReadingSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit < len(r.saved) {
		return r.saved[:limit], nil
	}
	return r.saved, nil
}

type fakeNarrator struct {
	calls int
	err   error
}

func (n *fakeNarrator) Narrate(_ context.Context, r *domain.Reading) (string, error) {
	n.calls++
	if n.err != nil {
		return "", n.err
	}
	return "vibes for " + r.Normalized, nil
}

func TestComputeNameVibes(t *testing.T) {
	r, err := Compute("  NameVibes ")
	require.NoError(t, err)

	assert.Equal(t, "NameVibes", r.Name)
	assert.Equal(t, "NAMEVIBES", r.Normalized)
	assert.Equal(t, []string{"Na", "V", "I", "Be", "S"}, r.Symbols())
	assert.Equal(t, 5, r.ElementCount())
	assert.Equal(t, []string{"M", "E"}, r.Skipped)
	assert.Equal(t, "Sodium", r.Elements[0].Name)
	assert.Equal(t, 11, r.Elements[0].AtomicNumber)
	require.NotNil(t, r.Nakshatra)
	assert.Equal(t, "Hasta", r.Nakshatra.Name)
	assert.Equal(t, "Virgo", r.Nakshatra.Sign)
}

func TestComputeJohn(t *testing.T) {
	r, err := Compute("John")
	require.NoError(t, err)

	assert.Equal(t, []string{"O", "H", "N"}, r.Symbols())
	assert.Equal(t, []string{"J"}, r.Skipped)
	assert.Equal(t, 20, r.Pythagorean.Compound)
	assert.Equal(t, 2, r.Pythagorean.Reduced)
	assert.False(t, r.Pythagorean.Master)
	assert.Equal(t, 9, r.Chaldean.Reduced)
	assert.NotEmpty(t, r.Pythagorean.Meaning)
}

func TestComputeValidatesName(t *testing.T) {
	_, err := Compute("   ")
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = Compute(strings.Repeat("가", constants.Limits.MaxNameLength+1))
	require.ErrorAs(t, err, &validation)

	r, err := Compute("김민수")
	require.NoError(t, err, "non-Latin names are valid, they just match nothing")
	assert.Empty(t, r.Elements)
	assert.Nil(t, r.Nakshatra)
}

func TestGetUsesCache(t *testing.T) {
	cache := newMemoryCache()
	svc := NewService(nil, cache, nil, nil, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Get(ctx, "john")
	require.NoError(t, err)
	require.Len(t, cache.data, 1)

	second, err := svc.Get(ctx, "JOHN")
	require.NoError(t, err)
	assert.Equal(t, "JOHN", second.Name, "cached readings keep the requested spelling")
	assert.Equal(t, first.Symbols(), second.Symbols())
	assert.Len(t, cache.data, 1)
}

func TestCachedReadingMatchesComputed(t *testing.T) {
	cache := newMemoryCache()
	svc := NewService(nil, cache, nil, nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Get(ctx, "Lker")
	require.NoError(t, err)

	cached, err := svc.Get(ctx, "İlker")
	require.NoError(t, err)
	fresh, err := Compute("İlker")
	require.NoError(t, err)

	assert.Equal(t, fresh.Normalized, cached.Normalized)
	assert.Equal(t, fresh.Nakshatra, cached.Nakshatra)
	assert.Len(t, cache.data, 1)
}

func TestGetSurvivesCacheFailure(t *testing.T) {
	cache := newMemoryCache()
	cache.failGet = true
	svc := NewService(nil, cache, nil, nil, zap.NewNop())

	r, err := svc.Get(context.Background(), "Coco")
	require.NoError(t, err)
	assert.Equal(t, []string{"Co", "Co"}, r.Symbols())
}

func TestRecordPersistsSummary(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo, nil, nil, nil, zap.NewNop())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.MustParse("7b0e7a4c-93e4-4f0e-b1a4-2f3d9c6e1a11")
	svc.now = func() time.Time { return fixed }
	svc.newID = func() uuid.UUID { return id }

	r, err := svc.Record(context.Background(), "NameVibes", "web")
	require.NoError(t, err)

	assert.Equal(t, id, r.ID)
	assert.Equal(t, "web", r.Source)
	require.Len(t, repo.saved, 1)

	saved := repo.saved[0]
	assert.Equal(t, id, saved.ID)
	assert.Equal(t, "NAMEVIBES", saved.Normalized)
	assert.Equal(t, 5, saved.ElementCount)
	assert.Equal(t, []string{"Na", "V", "I", "Be", "S"}, saved.Symbols)
	assert.Equal(t, fixed, saved.CreatedAt)
}

func TestRecordWithoutRepository(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, zap.NewNop())
	_, err := svc.Record(context.Background(), "John", "bot")

	status, code := apperrors.StatusOf(err)
	assert.Equal(t, 503, status)
	assert.Equal(t, apperrors.CodeService, code)
}

func TestRecordPropagatesDatabaseError(t *testing.T) {
	repo := &fakeRepository{saveErr: apperrors.NewDatabaseError("insert reading", stderrors.New("boom"))}
	svc := NewService(repo, nil, nil, nil, zap.NewNop())

	_, err := svc.Record(context.Background(), "John", "bot")
	var dbErr *apperrors.DatabaseError
	require.ErrorAs(t, err, &dbErr)
}

func TestGetManyPreservesOrder(t *testing.T) {
	svc := NewService(nil, newMemoryCache(), nil, nil, zap.NewNop())
	svc.concurrency = 3
	names := []string{"H", "Fe", "coco", "NameVibes", "John", "CB"}

	readings, err := svc.GetMany(context.Background(), names)
	require.NoError(t, err)
	require.Len(t, readings, len(names))

	for i, name := range names {
		assert.Equal(t, name, readings[i].Name)
	}
	assert.Equal(t, []string{"C", "B"}, readings[5].Symbols())
}

func TestGetManyRejectsOversizedBatch(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, zap.NewNop())
	names := make([]string, constants.Limits.MaxBatchNames+1)
	for i := range names {
		names[i] = "H"
	}

	_, err := svc.GetMany(context.Background(), names)
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestGetManyReportsFirstInvalidName(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, zap.NewNop())

	_, err := svc.GetMany(context.Background(), []string{"H", " ", "Fe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name #2")
}

func TestGetManyEmpty(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, zap.NewNop())

	readings, err := svc.GetMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, readings)
}

func TestNarrateCachesText(t *testing.T) {
	narrator := &fakeNarrator{}
	svc := NewService(nil, newMemoryCache(), narrator, nil, zap.NewNop())
	ctx := context.Background()

	first, err := Compute("Coco")
	require.NoError(t, err)
	require.NoError(t, svc.Narrate(ctx, first))
	assert.Equal(t, "vibes for COCO", first.Narrative)

	second, err := Compute("coco")
	require.NoError(t, err)
	require.NoError(t, svc.Narrate(ctx, second))
	assert.Equal(t, first.Narrative, second.Narrative)
	assert.Equal(t, 1, narrator.calls)
}

func TestNarratePropagatesNarratorError(t *testing.T) {
	sentinel := stderrors.New("disabled")
	svc := NewService(nil, nil, &fakeNarrator{err: sentinel}, nil, zap.NewNop())

	r, err := Compute("Coco")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Narrate(context.Background(), r), sentinel)
	assert.Empty(t, r.Narrative)
}

func TestTopClampsAndCaches(t *testing.T) {
	repo := &fakeRepository{top: []domain.RankEntry{{Normalized: "JOHN", Count: 3}, {Normalized: "COCO", Count: 1}}}
	svc := NewService(repo, newMemoryCache(), nil, nil, zap.NewNop())
	ctx := context.Background()

	entries, err := svc.Top(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, repo.top, entries)

	_, err = svc.Top(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.topHits, "second call should be served from cache")

	assert.Equal(t, constants.Limits.DefaultRanking, clampLimit(-1))
	assert.Equal(t, constants.Limits.MaxRankingSize, clampLimit(1000))
	assert.Equal(t, 7, clampLimit(7))
}

func TestRecent(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo, nil, nil, nil, zap.NewNop())
	ctx := context.Background()

	for _, name := range []string{"H", "Fe", "John"} {
		_, err := svc.Record(ctx, name, "cli")
		require.NoError(t, err)
	}

	summaries, err := svc.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
}
