package pappers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// APIError represents a non-200 registry response.
type APIError struct {
	StatusCode int
	Message    string

	// URL is the request URL with the API token redacted.
	URL string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("pappers: API error %d (URL: %s)", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("pappers: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap returns the domain error for the status class.
func (e *APIError) Unwrap() error {
	return statusError(e.StatusCode)
}

// statusError maps a non-200 status onto its domain error.
func statusError(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrAuthInvalid
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusServiceUnavailable:
		return domain.ErrServiceUnavailable
	default:
		return domain.ErrUnknownStatus
	}
}

// IsUnauthorized checks if the error indicates a rejected API token.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrAuthInvalid)
}

// IsNotFound checks if the error indicates the registry had no results.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// IsUnavailable checks if the error indicates the registry is down.
func IsUnavailable(err error) bool {
	return errors.Is(err, domain.ErrServiceUnavailable)
}

// IsUnknownStatus checks if the error indicates an unexpected status.
func IsUnknownStatus(err error) bool {
	return errors.Is(err, domain.ErrUnknownStatus)
}

// logAPIError logs a failed request at the level its class deserves.
// An empty search is routine; a rejected token or a down registry is not.
func logAPIError(err *APIError) {
	switch {
	case IsNotFound(err):
		logger.Debug("no results: %s", err.URL)
	case IsUnauthorized(err):
		logger.Warn("API token rejected (status %d)", err.StatusCode)
	case IsUnavailable(err):
		logger.Warn("registry unavailable: %s", err.URL)
	case IsUnknownStatus(err):
		logger.Error("unexpected status %d: %s", err.StatusCode, err.Message)
	}
}

// redact returns u as a string with the API token hidden.
func redact(u *url.URL) string {
	c := *u
	q := c.Query()
	if q.Has(paramToken) {
		q.Set(paramToken, "REDACTED")
		c.RawQuery = q.Encode()
	}
	return c.String()
}
