package mcp

import (
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Enrichment runs the registry enrichments.
	Enrichment driving.EnrichmentService

	// Settings exposes the current configuration; optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Enrichment == nil {
		return ErrMissingEnrichmentService
	}
	return nil
}
