package driven

import (
	"context"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// Registry is the company registry API as seen by the core.
// Implementations build the query payloads, add the API token and decode
// the responses.
//
// A non-200 response is mapped onto exactly one of domain.ErrAuthInvalid (401),
// domain.ErrNotFound (404), domain.ErrServiceUnavailable (503) or
// domain.ErrUnknownStatus (anything else). These failures are terminal for
// the run that hit them.
type Registry interface {
	// SearchOfficers searches French company officers. page is 1-based.
	SearchOfficers(ctx context.Context, q domain.MatchConstraints, page, perPage int) (domain.RawPage, error)

	// SearchBeneficiaries searches French beneficial owners. page is 1-based.
	SearchBeneficiaries(ctx context.Context, q domain.MatchConstraints, page, perPage int) (domain.RawPage, error)

	// SearchOfficersInternational searches officers in a non-French registry.
	SearchOfficersInternational(ctx context.Context, q domain.MatchConstraints, countryCode string, page, perPage int) (domain.RawPage, error)

	// Company fetches the full French company record for a SIREN.
	Company(ctx context.Context, id string) (domain.RawRecord, error)

	// CompanyInternational fetches a company record from a non-French registry.
	CompanyInternational(ctx context.Context, countryCode, id string) (domain.RawRecord, error)

	// SearchHeadquarters searches French companies registered at an address.
	SearchHeadquarters(ctx context.Context, q domain.LocationQuery, page, perPage int) (domain.RawPage, error)

	// SearchHeadquartersInternational searches non-French companies registered at an address.
	SearchHeadquartersInternational(ctx context.Context, q domain.LocationQuery, page, perPage int) (domain.RawPage, error)

	// SearchCompanies searches companies by name in the international registry.
	SearchCompanies(ctx context.Context, q domain.CompanyQuery, page, perPage int) (domain.RawPage, error)
}
