package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/logging"
)

// HTTPClient talks to the InstaGuard backend over JSON/HTTP.
//
// It is safe for concurrent use: the online watcher pings from its own
// goroutine while the REPL issues requests.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	logger  logging.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPClient validates baseURL and returns a client with no token.
// A zero timeout leaves requests bounded only by the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse server url: unsupported scheme %q", u.Scheme)
	}
	if logger == nil {
		logger = logging.Nop()
	}

	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody covers both error shapes the backend uses.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do sends one request. When auth is true the bearer token is required and
// attached. A nil in sends no body; a nil out discards the response body.
func (c *HTTPClient) do(ctx context.Context, method, path string, auth bool, in, out any) error {
	token := c.Token()
	if auth && token == "" {
		return ErrNoToken
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request served",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var eb errorBody
	if json.Unmarshal(b, &eb) == nil {
		apiErr.Message = eb.Message
		if apiErr.Message == "" {
			apiErr.Message = eb.Error
		}
	}
	return apiErr
}

// messageCall is the common shape of endpoints answering {message}.
func (c *HTTPClient) messageCall(ctx context.Context, method, path string, auth bool, in any) (string, error) {
	var out models.MessageResponse
	if err := c.do(ctx, method, path, auth, in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

type pingResponse struct {
	Status string `json:"status"`
}

// Ping checks that the backend answers its health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var out pingResponse
	if err := c.do(ctx, http.MethodGet, "/healthz", false, nil, &out); err != nil {
		return err
	}
	if out.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}
