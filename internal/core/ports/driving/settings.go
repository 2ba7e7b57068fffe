package driving

import "github.com/custodia-labs/reflets-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Load resolves the current settings from configuration.
	// Every call reads the configuration source again.
	Load() (domain.Settings, error)

	// SetAPIToken stores the registry API token.
	SetAPIToken(token string) error

	// Set stores a single configuration value by key.
	Set(key, value string) error

	// Keys lists the configuration keys understood by Set.
	Keys() []string
}
