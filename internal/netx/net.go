// Package netx wraps the plain net/http plumbing used by outbound clients.
package netx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/sentimeter/internal/buildinfo"
	"github.com/dmitrijs2005/sentimeter/internal/common"
)

// Response is the part of an HTTP response callers care about.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// PostJSON marshals payload, sends it to url with a bearer token and returns
// the fully read response. A non-2xx status is not an error here; only a
// failure to build, send or read the request is.
func PostJSON(ctx context.Context, client *http.Client, url, token string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", common.ContentTypeJSON)
	req.Header.Set("Accept", common.ContentTypeJSON)
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Status: resp.Status, Body: b}, nil
}
