// Package history keeps successful analyses in a local SQLite database.
package history

import (
	"context"

	"github.com/dmitrijs2005/sentimeter/internal/client/models"
)

type Repository interface {
	Add(ctx context.Context, a models.Analysis) error
	// List returns up to limit analyses, newest first.
	List(ctx context.Context, limit int) ([]models.Analysis, error)
	Count(ctx context.Context) (int, error)
	// Prune deletes everything but the newest keep analyses.
	Prune(ctx context.Context, keep int) (int64, error)
}
