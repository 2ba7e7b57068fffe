package pappers

import (
	"strings"
	"time"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// Registry endpoints, relative to the API roots.
const (
	pathOfficers      = "/recherche-dirigeants"
	pathBeneficiaries = "/recherche-beneficiaires"
	pathCompany       = "/entreprise"
	pathSearch        = "/recherche"

	pathINOfficers = "/search-officers"
	pathINSearch   = "/search"
	pathINCompany  = "/company"
)

// Config holds the connection settings of a Client.
type Config struct {
	// FRBaseURL is the French registry API root.
	FRBaseURL string

	// INBaseURL is the international registry API root.
	INBaseURL string

	// Timeout bounds each request.
	Timeout time.Duration

	// RequestsPerSecond throttles requests. Zero or less disables throttling.
	RequestsPerSecond float64
}

// ConfigFromSettings extracts the connection settings.
func ConfigFromSettings(s domain.Settings) Config {
	return Config{
		FRBaseURL:         s.FRBaseURL,
		INBaseURL:         s.INBaseURL,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
	}
}

// withDefaults fills unset fields with the registry defaults.
func (c Config) withDefaults() Config {
	if c.FRBaseURL == "" {
		c.FRBaseURL = domain.DefaultFRBaseURL
	}
	if c.INBaseURL == "" {
		c.INBaseURL = domain.DefaultINBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = domain.DefaultTimeout
	}
	c.FRBaseURL = strings.TrimRight(c.FRBaseURL, "/")
	c.INBaseURL = strings.TrimRight(c.INBaseURL, "/")
	return c
}
