package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Reflets resources.
	uriScheme = "reflets://"

	settingsURI = uriScheme + "settings"
)

// settingsInfo is the settings resource. The API key is masked.
type settingsInfo struct {
	APIKey             string  `json:"api_key"`
	FRBaseURL          string  `json:"fr_base_url"`
	INBaseURL          string  `json:"in_base_url"`
	PageSize           int     `json:"page_size"`
	PageLimit          int     `json:"page_limit"`
	RequestsPerSecond  float64 `json:"requests_per_second"`
	TimeoutSeconds     int     `json:"timeout_seconds"`
	Backfill           bool    `json:"backfill"`
	DefaultCountryCode string  `json:"default_country_code"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Settings == nil {
		return
	}
	s.addResource(&mcp.Resource{
		URI:         settingsURI,
		Name:        "settings",
		Description: "Current enrichment settings, API key masked",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings, err := s.ports.Settings.Load()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	info := settingsInfo{
		APIKey:             settings.MaskedToken(),
		FRBaseURL:          settings.FRBaseURL,
		INBaseURL:          settings.INBaseURL,
		PageSize:           settings.PageSize,
		PageLimit:          settings.PageLimit,
		RequestsPerSecond:  settings.RequestsPerSecond,
		TimeoutSeconds:     int(settings.Timeout.Seconds()),
		Backfill:           settings.Backfill,
		DefaultCountryCode: settings.DefaultCountryCode,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
