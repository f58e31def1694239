// Package services contains application services for the sentimeter client.
// This file defines the sentiment service: credential probing, analysis of
// operator text and bookkeeping of the local analysis history.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/sentimeter/internal/client/client"
	"github.com/dmitrijs2005/sentimeter/internal/client/models"
	"github.com/dmitrijs2005/sentimeter/internal/client/repositories/history"
	"github.com/dmitrijs2005/sentimeter/internal/common"
	"github.com/dmitrijs2005/sentimeter/internal/dbx"
	"github.com/dmitrijs2005/sentimeter/internal/logging"
)

// ProbeText is classified to check that a candidate credential is accepted.
const ProbeText = "Hello, I will make money, retire my parents, and escape from the rat race. Then I'll learn mandarin."

// ErrHistoryDisabled is returned by Recent when no history database is configured.
var ErrHistoryDisabled = errors.New("analysis history is disabled")

// SentimentService defines the operations the CLI performs against the
// classifier.
//
// Contract:
//   - Probe: one harmless classification; nil means the credential works.
//   - Analyze: one classification of operator text; on success the analysis
//     is recorded in the history when one is configured. A recording failure
//     is logged and does not fail the analysis.
//   - Recent: newest analyses from the history.
//   - Close: release the history database.
type SentimentService interface {
	Probe(ctx context.Context, cred models.Credential) error
	Analyze(ctx context.Context, req models.ClassificationRequest) (models.Analysis, error)
	Recent(ctx context.Context, limit int) ([]models.Analysis, error)
	Close() error
}

type sentimentService struct {
	client       client.Client
	db           *sql.DB
	historyLimit int
	log          logging.Logger
}

// NewSentimentService wires the classifier client with an optional history
// database (db may be nil). historyLimit > 0 bounds the number of kept analyses.
func NewSentimentService(c client.Client, db *sql.DB, historyLimit int, log logging.Logger) SentimentService {
	return &sentimentService{client: c, db: db, historyLimit: historyLimit, log: log}
}

func (s *sentimentService) Probe(ctx context.Context, cred models.Credential) error {
	if cred.IsBlank() {
		return common.ErrEmptyCredential
	}
	_, err := s.client.Classify(ctx, ProbeText, cred)
	if err != nil {
		s.log.Info(ctx, "credential probe failed", "credential", cred.Redacted(), "error", err)
		return err
	}
	return nil
}

func (s *sentimentService) Analyze(ctx context.Context, req models.ClassificationRequest) (models.Analysis, error) {
	payload, err := s.client.Classify(ctx, req.Text, req.Credential)
	if err != nil {
		return models.Analysis{}, err
	}

	a := models.NewAnalysis(req.Text, payload)
	if err := s.record(ctx, a); err != nil {
		s.log.Warn(ctx, "failed to record analysis", "id", a.ID, "error", err)
	}
	return a, nil
}

func (s *sentimentService) record(ctx context.Context, a models.Analysis) error {
	if s.db == nil {
		return nil
	}
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := history.NewSQLiteRepository(tx)
		if err := repo.Add(ctx, a); err != nil {
			return err
		}
		if s.historyLimit <= 0 {
			return nil
		}
		removed, err := repo.Prune(ctx, s.historyLimit)
		if err != nil {
			return err
		}
		if removed > 0 {
			s.log.Debug(ctx, "pruned analysis history", "removed", removed)
		}
		return nil
	})
}

func (s *sentimentService) Recent(ctx context.Context, limit int) ([]models.Analysis, error) {
	if s.db == nil {
		return nil, ErrHistoryDisabled
	}
	return history.NewSQLiteRepository(s.db).List(ctx, limit)
}

func (s *sentimentService) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
