// Package domain defines the core business entities for reflets.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRecord: An untyped JSON object returned by the registry API
//   - Identity: A normalised natural person with its merge key
//   - Location: A normalised postal address with a resolved country code
//   - Company: A normalised company record
//   - Entity: A graph entity handed to the graph sink
//   - RunReport: The outcome of one enrichment pipeline run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
