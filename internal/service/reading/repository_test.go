package reading

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/kapu/namevibes-bot/internal/domain"
	apperrors "github.com/kapu/namevibes-bot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db, zap.NewNop()), mock
}

func TestRepositorySave(t *testing.T) {
	repo, mock := newMockRepository(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.MustParse("7b0e7a4c-93e4-4f0e-b1a4-2f3d9c6e1a11")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO readings")).
		WithArgs(id.String(), "John", "JOHN", 3, "O H N", 2, 9, nil, "bot", created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), domain.ReadingSummary{
		ID:           id,
		Name:         "John",
		Normalized:   "JOHN",
		ElementCount: 3,
		Symbols:      []string{"O", "H", "N"},
		Pythagorean:  2,
		Chaldean:     9,
		Source:       "bot",
		CreatedAt:    created,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositorySaveWrapsDriverError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO readings")).
		WillReturnError(assert.AnError)

	err := repo.Save(context.Background(), domain.ReadingSummary{ID: uuid.New()})
	var dbErr *apperrors.DatabaseError
	require.ErrorAs(t, err, &dbErr)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRepositoryTop(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"normalized", "cnt"}).
		AddRow("JOHN", 4).
		AddRow("COCO", 2)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT normalized, COUNT(*) AS cnt")).
		WithArgs(5).
		WillReturnRows(rows)

	entries, err := repo.Top(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.RankEntry{{Normalized: "JOHN", Count: 4}, {Normalized: "COCO", Count: 2}}, entries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryRecent(t *testing.T) {
	repo, mock := newMockRepository(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.MustParse("7b0e7a4c-93e4-4f0e-b1a4-2f3d9c6e1a11")

	rows := sqlmock.NewRows([]string{"id", "name", "normalized", "element_count", "symbols",
		"pythagorean", "chaldean", "nakshatra", "source", "created_at"}).
		AddRow(id.String(), "John", "JOHN", 3, "O H N", 2, 9, nil, "bot", created).
		AddRow(id.String(), "김민수", "", 0, "", 0, 0, "Ashwini", "web", created)
	mock.ExpectQuery(regexp.QuoteMeta("FROM readings")).
		WithArgs(10).
		WillReturnRows(rows)

	summaries, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, id, summaries[0].ID)
	assert.Equal(t, []string{"O", "H", "N"}, summaries[0].Symbols)
	assert.Empty(t, summaries[0].Nakshatra)
	assert.Equal(t, []string{}, summaries[1].Symbols)
	assert.Equal(t, "Ashwini", summaries[1].Nakshatra)
	require.NoError(t, mock.ExpectationsWereMet())
}
