package driven

import "github.com/custodia-labs/reflets-cli/internal/core/domain"

// SchemaNormaliser turns registry records from either schema into domain values.
// Missing optional fields never fail; fields of an unexpected shape fail the
// record with a *domain.RecordError.
type SchemaNormaliser interface {
	// Identity normalises a person record. The merge key is left empty.
	Identity(rec domain.RawRecord) (domain.Identity, error)

	// Location normalises an address record and resolves its country code.
	Location(rec domain.RawRecord) (domain.Location, error)

	// Company normalises a company record. countryCode is used when the
	// record does not carry one of its own.
	Company(rec domain.RawRecord, countryCode string) (domain.Company, error)
}
