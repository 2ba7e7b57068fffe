package pappers

import "github.com/custodia-labs/reflets-cli/internal/core/ports/driven"

// Ensure Normaliser implements the interface.
var _ driven.SchemaNormaliser = (*Normaliser)(nil)

// Normaliser reads both registry schemas.
type Normaliser struct{}

// New creates a new registry record normaliser.
func New() *Normaliser {
	return &Normaliser{}
}
