package mcp

import (
	"context"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
)

// mockEnrichmentService is a mock implementation of driving.EnrichmentService.
// Every operation emits the configured entities, then fails with err if set.
type mockEnrichmentService struct {
	entities []domain.Entity
	err      error

	calls    []string
	person   domain.MatchConstraints
	company  domain.CompanyQuery
	location domain.LocationQuery
}

func (m *mockEnrichmentService) emit(ctx context.Context, op string, sink driven.GraphSink) (*domain.RunReport, error) {
	m.calls = append(m.calls, op)
	for _, e := range m.entities {
		if err := sink.AddEntity(ctx, e); err != nil {
			return nil, err
		}
	}
	report := &domain.RunReport{Operation: op, Pages: 1, Emitted: len(m.entities), Stop: domain.StopExhausted}
	if m.err != nil {
		sink.AddMessage(ctx, driven.SeverityError, "Error: "+m.err.Error())
		report.Stop = domain.StopFailed
		return report, m.err
	}
	return report, nil
}

func (m *mockEnrichmentService) SearchOfficers(ctx context.Context, q domain.MatchConstraints, sink driven.GraphSink) (*domain.RunReport, error) {
	m.person = q
	return m.emit(ctx, "search_officers", sink)
}

func (m *mockEnrichmentService) SearchBeneficiaries(ctx context.Context, q domain.MatchConstraints, sink driven.GraphSink) (*domain.RunReport, error) {
	m.person = q
	return m.emit(ctx, "search_beneficiaries", sink)
}

func (m *mockEnrichmentService) SearchOfficersInternational(ctx context.Context, q domain.MatchConstraints, sink driven.GraphSink) (*domain.RunReport, error) {
	m.person = q
	return m.emit(ctx, "search_officers_international", sink)
}

func (m *mockEnrichmentService) CompanyDetails(ctx context.Context, q domain.CompanyQuery, sink driven.GraphSink) (*domain.RunReport, error) {
	m.company = q
	return m.emit(ctx, "company_details", sink)
}

func (m *mockEnrichmentService) SearchHeadquarters(ctx context.Context, q domain.LocationQuery, sink driven.GraphSink) (*domain.RunReport, error) {
	m.location = q
	return m.emit(ctx, "search_headquarters", sink)
}

func (m *mockEnrichmentService) SearchCompanies(ctx context.Context, q domain.CompanyQuery, sink driven.GraphSink) (*domain.RunReport, error) {
	m.company = q
	return m.emit(ctx, "search_companies", sink)
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.Settings
	err      error
}

func (m *mockSettingsService) Load() (domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) SetAPIToken(string) error { return m.err }

func (m *mockSettingsService) Set(string, string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }
