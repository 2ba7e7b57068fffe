// Package mcp provides an MCP (Model Context Protocol) server adapter for Reflets.
// It lets AI assistants run registry enrichments and read the graph entities they produce.
package mcp

import "errors"

// ErrMissingEnrichmentService is returned when the enrichment service is not provided.
var ErrMissingEnrichmentService = errors.New("mcp: enrichment service is required")
