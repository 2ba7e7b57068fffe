// Package connectors holds the clients for the external registries that
// enrichment runs query. Each connector implements driven.Registry for one
// provider and owns its wire format, authentication and throttling.
package connectors
