package driven

import "context"

// TokenProvider provides the registry API token.
// Implementations read the token from its source on every call so that
// a rotated token is picked up by the next request.
type TokenProvider interface {
	// GetToken returns the API token, or domain.ErrAuthRequired if none is configured.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if a token is currently configured.
	IsAuthenticated() bool
}
