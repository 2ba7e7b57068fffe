// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Registry: Queries the company registry API and maps status codes to errors
//   - SchemaNormaliser: Turns registry records into domain values
//   - GraphSink: Receives emitted entities and user-visible messages
//   - ConfigStore: Application configuration
//   - TokenProvider: Supplies the registry API token
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
