// Package api is the only place that talks HTTP to the remote inventory
// service. Responses are parsed into domain types at this boundary; callers
// never see raw JSON. Failures come back as one of three kinds: RemoteError
// (the server said no), TransportError (we never reached it) or
// MalformedResponseError (it answered garbage).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	httpc   *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	logger  *zap.Logger

	mu    sync.RWMutex
	token string
}

type ClientOption func(*Client)

func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) { c.httpc = httpc }
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithToken pre-loads a bearer token, e.g. one restored from a saved
// session file.
func WithToken(token string) ClientOption {
	return func(c *Client) { c.token = token }
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	// Only transport failures feed the breaker; a 4xx answer is a healthy
	// connection carrying bad news.
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "genex-api",
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return c
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken forgets the session, the client-side half of logout.
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type errorResponse struct {
	Error string `json:"error"`
}

// do runs one request/response cycle. A non-nil body is sent as JSON, a
// non-nil out receives the decoded 2xx payload.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.httpc.Do(req)
	})
	if err != nil {
		c.logger.Warn("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &MalformedResponseError{Err: err}
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	remote := &RemoteError{StatusCode: resp.StatusCode}

	var payload errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		remote.Message = payload.Error
	} else {
		remote.Message = resp.Status
	}
	return remote
}
