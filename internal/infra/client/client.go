// Package client holds the HTTP clients for the external collaborators the
// orchestrator talks to: the group and user services and the two
// notification sinks. All calls are bearer-token authenticated and bounded
// by the configured request timeout.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"gift-occasions/internal/pkg/config"
	"gift-occasions/internal/pkg/errs"
)

// ErrUpstream marks any unreachable upstream or non-2xx upstream status.
var ErrUpstream = errs.New("upstream service error")

func newHTTPClient(cfg config.UpstreamConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.RequestTimeout,
	}
}

func doRequest(ctx context.Context, httpClient *http.Client, method, url, token string, payload []byte) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstream)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstream)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstream)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.Mark(
			fmt.Errorf("%s %s returned status %d", method, url, resp.StatusCode),
			ErrUpstream,
		)
	}
	return respBody, nil
}
