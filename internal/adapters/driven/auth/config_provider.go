package auth

import (
	"context"
	"strings"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
)

// Ensure ConfigTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*ConfigTokenProvider)(nil)

// SettingsLoader resolves the current settings.
type SettingsLoader interface {
	Load() (domain.Settings, error)
}

// ConfigTokenProvider provides the registry API token from settings.
// Settings are re-read on every call, so a token set while the process
// is running is used by the next request.
type ConfigTokenProvider struct {
	settings SettingsLoader
}

// NewConfigTokenProvider creates a token provider backed by settings.
func NewConfigTokenProvider(settings SettingsLoader) *ConfigTokenProvider {
	return &ConfigTokenProvider{settings: settings}
}

// GetToken returns the configured token, or domain.ErrAuthRequired.
func (p *ConfigTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.settings == nil {
		return "", domain.ErrAuthRequired
	}
	s, err := p.settings.Load()
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(s.APIToken)
	if token == "" {
		return "", domain.ErrAuthRequired
	}
	return token, nil
}

// IsAuthenticated returns true if a token is configured.
func (p *ConfigTokenProvider) IsAuthenticated() bool {
	token, err := p.GetToken(context.Background())
	return err == nil && token != ""
}

// StaticTokenProvider always returns the same token.
// Used for one-off runs where the token is passed explicitly.
type StaticTokenProvider struct {
	token string
}

// Ensure StaticTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// NewStaticTokenProvider creates a token provider for a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: strings.TrimSpace(token)}
}

// GetToken returns the token, or domain.ErrAuthRequired if it is empty.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrAuthRequired
	}
	return p.token, nil
}

// IsAuthenticated returns true if the token is not empty.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}
