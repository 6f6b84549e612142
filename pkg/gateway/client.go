// Package gateway is the single choke-point for calls to the remote
// booking API. Every call runs a connectivity pre-check, attaches auth
// headers and returns one normalized result shape; transport and HTTP
// failures never escape as raw errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
)

type Client struct {
	baseURL string
	http    *http.Client
	probe   *Probe
	log     *logger.Logger
}

type Options struct {
	BaseURL  string
	Timeout  time.Duration
	ProbeTTL time.Duration
	Log      *logger.Logger
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}

	httpClient := &http.Client{Timeout: opts.Timeout}

	return &Client{
		baseURL: opts.BaseURL,
		http:    httpClient,
		probe:   NewProbe(opts.BaseURL+"/health", opts.ProbeTTL),
		log:     opts.Log,
	}
}

func (c *Client) Get(ctx context.Context, path, token string) (*Result, error) {
	return c.do(ctx, http.MethodGet, path, nil, token)
}

func (c *Client) Post(ctx context.Context, path string, body any, token string) (*Result, error) {
	return c.do(ctx, http.MethodPost, path, body, token)
}

func (c *Client) Put(ctx context.Context, path string, body any, token string) (*Result, error) {
	return c.do(ctx, http.MethodPut, path, body, token)
}

func (c *Client) Delete(ctx context.Context, path, token string) (*Result, error) {
	return c.do(ctx, http.MethodDelete, path, nil, token)
}

// do issues one request. The only error it can return is the offline
// short-circuit; every other outcome, including transport failure, comes
// back as a normalized Result.
func (c *Client) do(ctx context.Context, method, path string, body any, token string) (*Result, error) {
	if !c.probe.Online(ctx) {
		c.log.Warn("Upstream unreachable, request skipped",
			"method", method,
			"path", path,
		)
		return nil, apperrors.Offline()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			c.log.Error("Failed to marshal request body", "path", path, "error", err)
			return unexpectedResult(), nil
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		c.log.Error("Failed to build request", "path", path, "error", err)
		return unexpectedResult(), nil
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Upstream request failed",
			"method", method,
			"path", path,
			"error", err,
		)
		c.probe.MarkOffline()
		return serverErrorResult(), nil
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("Failed to read upstream response", "path", path, "error", err)
		return serverErrorResult(), nil
	}

	result := Normalize(resp.StatusCode, respBody)
	if result.Err {
		c.log.Warn("Upstream returned an error",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"message", result.Message,
		)
	}
	return result, nil
}

// Online reports the cached connectivity verdict, probing only when the
// cached answer has expired.
func (c *Client) Online(ctx context.Context) bool {
	return c.probe.Online(ctx)
}

// WaitForHealthy blocks until the upstream reports healthy or maxWait
// elapses. Used at startup in environments that want a hard dependency.
func (c *Client) WaitForHealthy(ctx context.Context, maxWait time.Duration) error {
	deadline := time.Now().Add(maxWait)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		if c.probe.Check(ctx) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return fmt.Errorf("booking API did not become healthy within %v", maxWait)
}
