package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"factcheck/internal/claim"
)

// VerifyPath is the endpoint a remote backend serves the contract on.
const VerifyPath = "/v1/verify"

// Remote verifies claims against an HTTP backend speaking the provider
// contract as JSON.
type Remote struct {
	baseURL      string
	httpClient   *http.Client
	attempts     int
	initialDelay time.Duration
}

// NewRemote creates a remote adapter. retries is the number of extra
// attempts on 429/5xx and transport errors.
func NewRemote(baseURL string, timeout time.Duration, retries int) *Remote {
	if retries < 0 {
		retries = 0
	}
	return &Remote{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		attempts:     retries + 1,
		initialDelay: 500 * time.Millisecond,
	}
}

type remoteRequest struct {
	Claim string `json:"claim"`
}

// Verify posts the claim and decodes the result.
func (r *Remote) Verify(ctx context.Context, text string) (claim.Result, error) {
	body, err := json.Marshal(remoteRequest{Claim: text})
	if err != nil {
		return claim.Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	status, respBody, err := doWithRetry(ctx, r.attempts, r.initialDelay, func() (int, []byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+VerifyPath, bytes.NewReader(body))
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := r.httpClient.Do(req)
		if err != nil {
			return 0, nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return resp.StatusCode, data, err
	})
	if err != nil {
		return claim.Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status != http.StatusOK {
		return claim.Result{}, fmt.Errorf("%w: backend returned %d", ErrUnavailable, status)
	}
	return decodeResult(respBody)
}

type attemptFunc func() (status int, body []byte, err error)

// doWithRetry retries fn on transport errors, 429 and 5xx, doubling the
// delay between attempts.
func doWithRetry(ctx context.Context, attempts int, initialDelay time.Duration, fn attemptFunc) (int, []byte, error) {
	if attempts <= 0 {
		attempts = 1
	}
	delay := initialDelay
	for i := 0; ; i++ {
		status, body, err := fn()
		if err == nil && status != http.StatusTooManyRequests && status < 500 {
			return status, body, nil
		}
		if i == attempts-1 {
			if err == nil {
				return status, body, nil
			}
			return status, body, err
		}
		if err := sleep(ctx, delay); err != nil {
			return status, body, err
		}
		if delay < 10*time.Second {
			delay *= 2
		}
	}
}
