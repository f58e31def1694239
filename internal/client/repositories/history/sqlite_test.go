package history

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/sentimeter/internal/client/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), db
}

func analysisAt(text string, at time.Time, report *models.SentimentReport) models.Analysis {
	return models.Analysis{
		ID:        uuid.New(),
		Text:      text,
		Payload:   models.RawPayload(`[[{"label":"positive","score":1}]]`),
		Report:    report,
		CreatedAt: at,
	}
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	_, db := setupRepo(t)

	for _, table := range []string{"goose_db_version", "analyses"} {
		var n int
		err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "table %s", table)
	}
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	_, db := setupRepo(t)
	require.NoError(t, RunMigrations(context.Background(), db))
}

func TestSQLiteRepository_AddAndList(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	first := analysisAt("first", base, &models.SentimentReport{Positive: 0.7, Neutral: 0.2, Negative: 0.1})
	second := analysisAt("second", base.Add(time.Minute), nil)
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	got, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, second.ID, got[0].ID, "newest first")
	assert.Nil(t, got[0].Report)
	assert.Equal(t, first.ID, got[1].ID)
	require.NotNil(t, got[1].Report)
	assert.InDelta(t, 0.7, got[1].Report.Positive, 1e-9)
	assert.Equal(t, first.Payload, got[1].Payload)
	assert.True(t, base.Equal(got[1].CreatedAt))

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "second", limited[0].Text)
}

func TestSQLiteRepository_AddDuplicateIDFails(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	a := analysisAt("dup", time.Now(), nil)
	require.NoError(t, repo.Add(ctx, a))
	require.Error(t, repo.Add(ctx, a))
}

func TestSQLiteRepository_CountAndPrune(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Add(ctx, analysisAt("t", base.Add(time.Duration(i)*time.Second), nil)))
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	removed, err := repo.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	left, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.True(t, base.Add(4*time.Second).Equal(left[0].CreatedAt))
	assert.True(t, base.Add(3*time.Second).Equal(left[1].CreatedAt))
}
