package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sentimeter/internal/client/models"
	"github.com/dmitrijs2005/sentimeter/internal/dbx"
	"github.com/google/uuid"
)

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, a models.Analysis) error {
	var pos, neu, neg sql.NullFloat64
	if a.Report != nil {
		pos = sql.NullFloat64{Float64: a.Report.Positive, Valid: true}
		neu = sql.NullFloat64{Float64: a.Report.Neutral, Valid: true}
		neg = sql.NullFloat64{Float64: a.Report.Negative, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO analyses (id, text, payload, positive, neutral, negative, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.ID.String(), a.Text, []byte(a.Payload), pos, neu, neg, a.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to add analysis %s: %w", a.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]models.Analysis, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, text, payload, positive, neutral, negative, created_at
		FROM analyses
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	result := make([]models.Analysis, 0, limit)
	for rows.Next() {
		var (
			id, text, created string
			payload           []byte
			pos, neu, neg     sql.NullFloat64
		)
		if err := rows.Scan(&id, &text, &payload, &pos, &neu, &neg, &created); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}

		a := models.Analysis{Text: text, Payload: models.RawPayload(payload)}
		if a.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("bad analysis id %q: %w", id, err)
		}
		if a.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("bad analysis timestamp %q: %w", created, err)
		}
		if pos.Valid || neu.Valid || neg.Valid {
			a.Report = &models.SentimentReport{Positive: pos.Float64, Neutral: neu.Float64, Negative: neg.Float64}
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analysis rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM analyses
		WHERE id NOT IN (
			SELECT id FROM analyses ORDER BY created_at DESC, rowid DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune analyses: %w", err)
	}
	return res.RowsAffected()
}
