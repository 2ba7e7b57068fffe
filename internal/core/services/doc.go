// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The enrichment operations share one shape: fetch registry pages through
// the Pipeline, normalise each record, admit people through the MatchFilter,
// and emit graph entities with their links to the GraphSink.
package services
