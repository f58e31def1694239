package client

import (
	"context"

	"github.com/dmitrijs2005/sentimeter/internal/client/models"
)

// DefaultEndpoint is the hosted model used when none is configured.
const DefaultEndpoint = "https://api-inference.huggingface.co/models/cardiffnlp/twitter-roberta-base-sentiment-latest"

type Client interface {
	Classify(ctx context.Context, text string, cred models.Credential) (models.RawPayload, error)
}
