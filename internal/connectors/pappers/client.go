package pappers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// maxErrorBody caps how much of an error response is kept as its message.
const maxErrorBody = 512

// Client sends authenticated GET requests to the registries.
type Client struct {
	http          *http.Client
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
	config        Config
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client. Its timeout is kept as is.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithRateLimiter replaces the rate limiter.
func WithRateLimiter(rl *RateLimiter) ClientOption {
	return func(c *Client) {
		c.rateLimiter = rl
	}
}

// NewClient creates a registry client. The token is fetched from
// tokenProvider for every request.
func NewClient(tokenProvider driven.TokenProvider, cfg Config, opts ...ClientOption) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		http:          &http.Client{Timeout: cfg.Timeout},
		tokenProvider: tokenProvider,
		config:        cfg,
	}
	if cfg.RequestsPerSecond > 0 {
		c.rateLimiter = NewRateLimiter(cfg.RequestsPerSecond)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rateLimiter == nil {
		c.rateLimiter = defaultRateLimiter()
	}
	return c
}

// get fetches base+path with params and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, base, path string, params url.Values, out any) error {
	if c.tokenProvider == nil {
		return domain.ErrAuthRequired
	}
	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}

	u, err := url.Parse(base + path)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set(paramToken, token)
	u.RawQuery = q.Encode()

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("GET %s", redact(u))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, scrub(err, token))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
			URL:        redact(u),
		}
		logAPIError(apiErr)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// errorMessage extracts the message of an error body. The registries
// answer {"error": "...", "statusCode": N}; anything else is kept raw.
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}

// scrubbedError hides the token in the message of a wrapped error.
type scrubbedError struct {
	msg string
	err error
}

func (e *scrubbedError) Error() string { return e.msg }
func (e *scrubbedError) Unwrap() error { return e.err }

// scrub removes the token from transport errors, which quote the URL.
func scrub(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return &scrubbedError{msg: strings.ReplaceAll(err.Error(), token, "REDACTED"), err: err}
}
