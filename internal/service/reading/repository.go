package reading

import (
	"context"
	"database/sql"
	"strings"

	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/pkg/errors"
	"go.uber.org/zap"
)

// Repository persists reading summaries.
type Repository interface {
	Save(ctx context.Context, summary domain.ReadingSummary) error
	Top(ctx context.Context, limit int) ([]domain.RankEntry, error)
	Recent(ctx context.Context, limit int) ([]domain.ReadingSummary, error)
}

type PostgresRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresRepository(db *sql.DB, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{db: db, logger: logger}
}

const insertReadingQuery = `
	INSERT INTO readings (id, name, normalized, element_count, symbols, pythagorean, chaldean, nakshatra, source, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (r *PostgresRepository) Save(ctx context.Context, s domain.ReadingSummary) error {
	nakshatra := sql.NullString{String: s.Nakshatra, Valid: s.Nakshatra != ""}

	_, err := r.db.ExecContext(ctx, insertReadingQuery,
		s.ID.String(),
		s.Name,
		s.Normalized,
		s.ElementCount,
		strings.Join(s.Symbols, " "),
		s.Pythagorean,
		s.Chaldean,
		nakshatra,
		s.Source,
		s.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save reading", zap.String("normalized", s.Normalized), zap.Error(err))
		return errors.NewDatabaseError("insert reading", err)
	}
	return nil
}

const topReadingsQuery = `
	SELECT normalized, COUNT(*) AS cnt
	FROM readings
	WHERE normalized <> ''
	GROUP BY normalized
	ORDER BY cnt DESC, normalized ASC
	LIMIT $1
`

func (r *PostgresRepository) Top(ctx context.Context, limit int) ([]domain.RankEntry, error) {
	rows, err := r.db.QueryContext(ctx, topReadingsQuery, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("query top readings", err)
	}
	defer rows.Close()

	entries := make([]domain.RankEntry, 0, limit)
	for rows.Next() {
		var e domain.RankEntry
		if err := rows.Scan(&e.Normalized, &e.Count); err != nil {
			return nil, errors.NewDatabaseError("scan top readings", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError("iterate top readings", err)
	}
	return entries, nil
}

const recentReadingsQuery = `
	SELECT id, name, normalized, element_count, symbols, pythagorean, chaldean, nakshatra, source, created_at
	FROM readings
	ORDER BY created_at DESC
	LIMIT $1
`

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]domain.ReadingSummary, error) {
	rows, err := r.db.QueryContext(ctx, recentReadingsQuery, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("query recent readings", err)
	}
	defer rows.Close()

	summaries := make([]domain.ReadingSummary, 0, limit)
	for rows.Next() {
		var (
			s         domain.ReadingSummary
			symbols   string
			nakshatra sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Normalized, &s.ElementCount, &symbols,
			&s.Pythagorean, &s.Chaldean, &nakshatra, &s.Source, &s.CreatedAt); err != nil {
			return nil, errors.NewDatabaseError("scan recent readings", err)
		}
		s.Symbols = strings.Fields(symbols)
		if s.Symbols == nil {
			s.Symbols = []string{}
		}
		s.Nakshatra = nakshatra.String
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError("iterate recent readings", err)
	}
	return summaries, nil
}
