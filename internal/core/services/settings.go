package services

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAPIToken           = "pappers.api_key"
	KeyFRBaseURL          = "pappers.fr_base_url"
	KeyINBaseURL          = "pappers.in_base_url"
	KeyPageSize           = "pappers.page_size"
	KeyPageLimit          = "pappers.page_limit"
	KeyRequestsPerSecond  = "pappers.requests_per_second"
	KeyTimeoutSeconds     = "pappers.timeout_seconds"
	KeyBackfill           = "resolution.backfill"
	KeyDefaultCountryCode = "output.default_country_code"

	// EnvAPIToken overrides the configured API token.
	EnvAPIToken = "REFLETS_PAPPERS_API_KEY"
)

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindFloat
	kindBool
)

var settingKeys = map[string]keyKind{
	KeyAPIToken:           kindString,
	KeyFRBaseURL:          kindString,
	KeyINBaseURL:          kindString,
	KeyPageSize:           kindInt,
	KeyPageLimit:          kindInt,
	KeyRequestsPerSecond:  kindFloat,
	KeyTimeoutSeconds:     kindInt,
	KeyBackfill:           kindBool,
	KeyDefaultCountryCode: kindString,
}

// SettingsService resolves settings from the config store and the environment.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// Load re-reads the config store and resolves the current settings.
// An unset API token is not an error here; operations that need one
// fail with domain.ErrAuthRequired.
func (s *SettingsService) Load() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings, fmt.Errorf("load settings: %w", domain.ErrConfigMissing)
	}
	if err := s.configStore.Load(); err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}

	settings.APIToken = s.configStore.GetString(KeyAPIToken)
	if token, ok := s.lookupEnv(EnvAPIToken); ok && strings.TrimSpace(token) != "" {
		settings.APIToken = strings.TrimSpace(token)
	}

	if v := s.configStore.GetString(KeyFRBaseURL); v != "" {
		settings.FRBaseURL = strings.TrimRight(v, "/")
	}
	if v := s.configStore.GetString(KeyINBaseURL); v != "" {
		settings.INBaseURL = strings.TrimRight(v, "/")
	}
	if v := s.configStore.GetInt(KeyPageSize); v > 0 {
		settings.PageSize = v
	}
	if _, ok := s.configStore.Get(KeyPageLimit); ok {
		settings.PageLimit = s.configStore.GetInt(KeyPageLimit)
	}
	if v := s.configStore.GetFloat(KeyRequestsPerSecond); v > 0 {
		settings.RequestsPerSecond = v
	}
	if v := s.configStore.GetInt(KeyTimeoutSeconds); v > 0 {
		settings.Timeout = time.Duration(v) * time.Second
	}
	if _, ok := s.configStore.Get(KeyBackfill); ok {
		settings.Backfill = s.configStore.GetBool(KeyBackfill)
	}
	if v := s.configStore.GetString(KeyDefaultCountryCode); v != "" {
		settings.DefaultCountryCode = strings.ToUpper(v)
	}

	return settings, nil
}

// SetAPIToken stores the registry API token.
func (s *SettingsService) SetAPIToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: empty API token", domain.ErrInvalidInput)
	}
	return s.Set(KeyAPIToken, token)
}

// Set stores a single configuration value, converted to the key's type.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var typed any
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects an integer", domain.ErrInvalidInput, key)
		}
		typed = n
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s expects a number", domain.ErrInvalidInput, key)
		}
		typed = f
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		typed = b
	default:
		typed = value
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the configuration keys understood by Set.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
