package driving

import (
	"context"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
)

// EnrichmentService runs the registry enrichment operations.
//
// Every operation writes its entities and user-visible messages to sink and
// returns a report of the run. A terminal registry failure aborts the run:
// one error message is written to sink and the error is returned. Failures
// of individual records are recorded in the report and never abort a run.
type EnrichmentService interface {
	// SearchOfficers finds the companies a person manages in the French registry.
	SearchOfficers(ctx context.Context, q domain.MatchConstraints, sink driven.GraphSink) (*domain.RunReport, error)

	// SearchBeneficiaries finds the companies a person beneficially owns in the French registry.
	SearchBeneficiaries(ctx context.Context, q domain.MatchConstraints, sink driven.GraphSink) (*domain.RunReport, error)

	// SearchOfficersInternational finds the UK companies a person is an officer of.
	SearchOfficersInternational(ctx context.Context, q domain.MatchConstraints, sink driven.GraphSink) (*domain.RunReport, error)

	// CompanyDetails expands a company into its people, offices and documents.
	CompanyDetails(ctx context.Context, q domain.CompanyQuery, sink driven.GraphSink) (*domain.RunReport, error)

	// SearchHeadquarters finds the companies registered at an address.
	SearchHeadquarters(ctx context.Context, q domain.LocationQuery, sink driven.GraphSink) (*domain.RunReport, error)

	// SearchCompanies finds companies by name in the international registry.
	SearchCompanies(ctx context.Context, q domain.CompanyQuery, sink driven.GraphSink) (*domain.RunReport, error)
}
