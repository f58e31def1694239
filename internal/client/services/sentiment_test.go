package services

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/sentimeter/internal/client/client"
	"github.com/dmitrijs2005/sentimeter/internal/client/models"
	"github.com/dmitrijs2005/sentimeter/internal/client/repositories/history"
	"github.com/dmitrijs2005/sentimeter/internal/common"
	"github.com/dmitrijs2005/sentimeter/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake client ----

type fakeClient struct {
	calls   int
	texts   []string
	creds   []models.Credential
	payload models.RawPayload
	err     error
}

func (f *fakeClient) Classify(_ context.Context, text string, cred models.Credential) (models.RawPayload, error) {
	f.calls++
	f.texts = append(f.texts, text)
	f.creds = append(f.creds, cred)
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := history.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

const positive = `[[{"label":"positive","score":0.9},{"label":"neutral","score":0.08},{"label":"negative","score":0.02}]]`

// ---- tests ----

func TestProbe_UsesCannedTextAndCredential(t *testing.T) {
	fc := &fakeClient{payload: models.RawPayload(positive)}
	s := NewSentimentService(fc, nil, 0, logging.Discard())

	require.NoError(t, s.Probe(context.Background(), "hf_good"))
	require.Equal(t, 1, fc.calls)
	assert.Equal(t, ProbeText, fc.texts[0])
	assert.NotEmpty(t, fc.texts[0])
	assert.Equal(t, models.Credential("hf_good"), fc.creds[0])
}

func TestProbe_PropagatesFailure(t *testing.T) {
	fc := &fakeClient{err: &client.RejectedError{Status: 401}}
	s := NewSentimentService(fc, nil, 0, logging.Discard())

	err := s.Probe(context.Background(), "hf_bad")
	require.ErrorIs(t, err, client.ErrRejected)
}

func TestProbe_BlankCredentialSkipsNetwork(t *testing.T) {
	fc := &fakeClient{}
	s := NewSentimentService(fc, nil, 0, logging.Discard())

	err := s.Probe(context.Background(), "   ")
	require.ErrorIs(t, err, common.ErrEmptyCredential)
	assert.Zero(t, fc.calls)
}

func TestAnalyze_SuccessWithoutHistory(t *testing.T) {
	fc := &fakeClient{payload: models.RawPayload(positive)}
	s := NewSentimentService(fc, nil, 0, logging.Discard())

	a, err := s.Analyze(context.Background(), models.ClassificationRequest{Text: "I love this", Credential: "hf"})
	require.NoError(t, err)
	assert.Equal(t, "I love this", a.Text)
	assert.Equal(t, models.RawPayload(positive), a.Payload)
	require.NotNil(t, a.Report)
	assert.Equal(t, "positive", a.Report.Dominant())

	_, err = s.Recent(context.Background(), 5)
	require.ErrorIs(t, err, ErrHistoryDisabled)
	require.NoError(t, s.Close())
}

func TestAnalyze_FailureIsReturnedAndNotRecorded(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{err: &client.TransportError{Err: errors.New("dial")}}
	s := NewSentimentService(fc, db, 0, logging.Discard())

	_, err := s.Analyze(context.Background(), models.ClassificationRequest{Text: "x", Credential: "hf"})
	require.ErrorIs(t, err, client.ErrTransport)

	n, err := history.NewSQLiteRepository(db).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAnalyze_RecordsAndPrunesHistory(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{payload: models.RawPayload(positive)}
	s := NewSentimentService(fc, db, 2, logging.Discard())
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		_, err := s.Analyze(ctx, models.ClassificationRequest{Text: text, Credential: "hf"})
		require.NoError(t, err)
	}

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "three", recent[0].Text)
	assert.Equal(t, "two", recent[1].Text)
}

func TestAnalyze_HistoryFailureDoesNotFailAnalysis(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	fc := &fakeClient{payload: models.RawPayload(positive)}
	s := NewSentimentService(fc, db, 0, logging.Discard())

	a, err := s.Analyze(context.Background(), models.ClassificationRequest{Text: "still fine", Credential: "hf"})
	require.NoError(t, err)
	assert.Equal(t, "still fine", a.Text)
}
