package domain

import "time"

// Default settings values.
const (
	DefaultFRBaseURL          = "https://api.pappers.fr/v2"
	DefaultINBaseURL          = "https://api.pappers.in/v1"
	DefaultPageSize           = 20
	DefaultPageLimit          = 5
	DefaultRequestsPerSecond  = 2.0
	DefaultTimeout            = 30 * time.Second
	DefaultLocationCountry    = "FR"
	DefaultBackfillBirthDates = true
)

// Settings is the resolved configuration of one enrichment run.
// It is loaded fresh for every run and never cached.
type Settings struct {
	// APIToken authenticates every registry request.
	APIToken string

	// FRBaseURL is the French registry API root.
	FRBaseURL string

	// INBaseURL is the international registry API root.
	INBaseURL string

	// PageSize is the number of results requested per page.
	PageSize int

	// PageLimit caps the number of pages fetched. Zero or less means
	// unlimited: follow the upstream-reported total.
	PageLimit int

	// RequestsPerSecond throttles registry requests.
	RequestsPerSecond float64

	// Timeout bounds each registry request.
	Timeout time.Duration

	// Backfill enables copying the searched birth date onto records
	// that only match on birth month.
	Backfill bool

	// DefaultCountryCode is used for locations without a resolvable country.
	DefaultCountryCode string
}

// DefaultSettings returns settings with every default applied and no token.
func DefaultSettings() Settings {
	return Settings{
		FRBaseURL:          DefaultFRBaseURL,
		INBaseURL:          DefaultINBaseURL,
		PageSize:           DefaultPageSize,
		PageLimit:          DefaultPageLimit,
		RequestsPerSecond:  DefaultRequestsPerSecond,
		Timeout:            DefaultTimeout,
		Backfill:           DefaultBackfillBirthDates,
		DefaultCountryCode: DefaultLocationCountry,
	}
}

// Unlimited returns true if pagination follows the upstream total.
func (s Settings) Unlimited() bool {
	return s.PageLimit <= 0
}

// MaskedToken returns the API token with all but its last four characters hidden.
func (s Settings) MaskedToken() string {
	if s.APIToken == "" {
		return ""
	}
	if len(s.APIToken) <= 4 {
		return "****"
	}
	return "****" + s.APIToken[len(s.APIToken)-4:]
}
