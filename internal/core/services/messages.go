package services

import (
	"errors"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// UserMessage renders a run-aborting error as the one message shown to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		return "Error: no API key configured, run 'reflets config set-key'"
	case errors.Is(err, domain.ErrAuthInvalid):
		return "Error: Bad API key"
	case errors.Is(err, domain.ErrNotFound):
		return "Error: No results !"
	case errors.Is(err, domain.ErrServiceUnavailable):
		return "Error: Service unavailable : try again later"
	case errors.Is(err, domain.ErrUnknownStatus):
		return "Error: Unknown error code !"
	default:
		return "Error: " + err.Error()
	}
}
