package client

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sentimeter/internal/client/models"
	"github.com/dmitrijs2005/sentimeter/internal/logging"
	"github.com/dmitrijs2005/sentimeter/internal/netx"
)

// HTTPClient implements Client over a shared *http.Client.
type HTTPClient struct {
	http     *http.Client
	endpoint string
	log      logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient binds an already configured *http.Client to endpoint.
// The http.Client is only read, so one instance can serve the whole run.
func NewHTTPClient(httpClient *http.Client, endpoint string, log logging.Logger) *HTTPClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &HTTPClient{http: httpClient, endpoint: endpoint, log: log}
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// Classify sends text for classification. On a 2xx status the body is
// returned verbatim.
func (c *HTTPClient) Classify(ctx context.Context, text string, cred models.Credential) (models.RawPayload, error) {
	started := time.Now()

	resp, err := netx.PostJSON(ctx, c.http, c.endpoint, string(cred), classifyRequest{Inputs: text})
	if err != nil {
		c.log.Debug(ctx, "classification transport failure", "error", err, "elapsed", time.Since(started))
		return nil, &TransportError{Err: err}
	}

	c.log.Debug(ctx, "classification response",
		"status", resp.StatusCode,
		"bytes", len(resp.Body),
		"elapsed", time.Since(started),
		"credential", cred.Redacted(),
	)

	if !resp.OK() {
		return nil, &RejectedError{Status: resp.StatusCode}
	}

	return models.RawPayload(resp.Body), nil
}
