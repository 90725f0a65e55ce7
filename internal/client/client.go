package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/metodo21/app-client/internal/config"
	"github.com/metodo21/app-client/internal/logging"
	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/utils"
	"github.com/metodo21/app-client/internal/utils/httpclient"
	"go.uber.org/zap"
)

// TokenSource supplies the active session token for outgoing requests.
// The token is owned by the auth controller; the client only reads it.
type TokenSource interface {
	Token() string
}

// Client handles communication with the wellness API
type Client struct {
	baseURL     string
	tokens      TokenSource
	client      *http.Client
	logger      *logging.SafeLogger
	retryConfig RetryConfig
}

// RetryConfig defines retry behavior for read requests
type RetryConfig struct {
	MaxRetries    int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns sensible defaults for API retries
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		BaseDelay:     500 * time.Millisecond,
		MaxDelay:      10 * time.Second,
		BackoffFactor: 2.0,
	}
}

// New creates a new API client instance
func New(cfg *config.Config, tokens TokenSource, logger *logging.SafeLogger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		tokens:      tokens,
		client:      httpclient.NewClient(cfg.HTTPTimeout),
		logger:      logger,
		retryConfig: DefaultRetryConfig(),
	}
}

// NewWithHTTPClient creates a client with an explicit http.Client, used by
// tests to point at an httptest server.
func NewWithHTTPClient(baseURL string, tokens TokenSource, logger *logging.SafeLogger, httpClient *http.Client) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		tokens:      tokens,
		client:      httpClient,
		logger:      logger,
		retryConfig: RetryConfig{MaxRetries: 0, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1},
	}
}

// withRetry executes a function with exponential backoff retry logic
func (c *Client) withRetry(ctx context.Context, operation string, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(float64(c.retryConfig.BaseDelay) * math.Pow(c.retryConfig.BackoffFactor, float64(attempt-1)))
			if delay > c.retryConfig.MaxDelay {
				delay = c.retryConfig.MaxDelay
			}

			c.logger.Debug("retrying API operation",
				zap.String("operation", operation),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = fn()
		if lastErr == nil {
			if attempt > 0 {
				c.logger.Info("API operation succeeded after retry",
					zap.String("operation", operation),
					zap.Int("attempts", attempt+1))
			}
			return nil
		}

		if !isRetryableError(lastErr) {
			return lastErr
		}

		c.logger.Warn("API operation failed, will retry",
			zap.String("operation", operation),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", c.retryConfig.MaxRetries),
			zap.Error(lastErr))
	}

	return fmt.Errorf("operation %s failed after %d attempts: %w", operation, c.retryConfig.MaxRetries+1, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}

	// Network errors are generally retryable
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection") ||
		strings.Contains(msg, "network") ||
		strings.Contains(msg, "dial")
}

// request performs a single HTTP exchange and decodes the JSON response
// into out (which may be nil). Authenticated calls carry the bearer token.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, out interface{}, authenticated bool) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", utils.GenerateUUID())

	if authenticated {
		token := c.tokens.Token()
		if token == "" {
			return models.ErrNoActiveSession
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("sending API request",
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// get performs an authenticated GET with retry.
func (c *Client) get(ctx context.Context, operation, path string, query url.Values, out interface{}) error {
	return c.withRetry(ctx, operation, func() error {
		return c.request(ctx, http.MethodGet, path, query, nil, out, true)
	})
}

// statusError maps a non-2xx response onto the error taxonomy.
func (c *Client) statusError(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return models.ErrNotAuthenticated
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusConflict:
		return models.ErrCodeAlreadyUsed
	}

	// FastAPI-style error bodies carry a "detail" field
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Detail
		if message == "" {
			message = payload.Message
		}
	}

	return &models.APIError{StatusCode: status, Message: message}
}
