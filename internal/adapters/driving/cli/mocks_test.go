package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
)

// mockEnrichmentService records the operation called and emits fixed output.
type mockEnrichmentService struct {
	entities []domain.Entity
	err      error

	op       string
	person   domain.MatchConstraints
	company  domain.CompanyQuery
	location domain.LocationQuery
}

func (m *mockEnrichmentService) emit(ctx context.Context, op string, sink driven.GraphSink) (*domain.RunReport, error) {
	m.op = op
	for _, e := range m.entities {
		if err := sink.AddEntity(ctx, e); err != nil {
			return nil, err
		}
	}
	report := &domain.RunReport{Operation: op, Pages: 1, Seen: len(m.entities), Accepted: len(m.entities), Emitted: len(m.entities), Stop: domain.StopExhausted}
	if m.err != nil {
		sink.AddMessage(ctx, driven.SeverityError, "Error: Bad API key")
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

// mockSettingsService keeps settings in memory.
type mockSettingsService struct {
	settings domain.Settings
	set      map[string]string
	err      error
}

func (m *mockSettingsService) Load() (domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) SetAPIToken(token string) error {
	return m.Set("pappers.api_key", token)
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.err != nil {
		return m.err
	}
	if m.set == nil {
		m.set = map[string]string{}
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"pappers.api_key", "pappers.page_size"}
}

func acmeEntity() domain.Entity {
	e := domain.NewEntity(domain.EntityCompany, "552100554")
	e.Set("id_tax_number", "siren_vat", domain.MatchStrict, "552100554")
	e.Set("nom_usuel", "Nom", domain.MatchLoose, "ACME")
	e.Note = "<b>Documents</b>"
	e.Link = domain.Link{Label: "Gérant actuel depuis 2001-01-01", Color: "#657a8b", Thickness: 2, Style: domain.LinkDashed, Reversed: true}
	return e
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous services and every flag default.
func setupTestServices() (*mockEnrichmentService, *mockSettingsService, func()) {
	oldEnrichment, oldSettings, oldFactory, oldDialer := enrichmentService, settingsService, serviceFactory, graphDialer

	enrichment := &mockEnrichmentService{entities: []domain.Entity{acmeEntity()}}
	settings := &mockSettingsService{settings: domain.DefaultSettings()}
	enrichmentService = enrichment
	settingsService = settings
	serviceFactory = nil

	return enrichment, settings, func() {
		enrichmentService, settingsService, serviceFactory, graphDialer = oldEnrichment, oldSettings, oldFactory, oldDialer
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag of cmd and its subcommands to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
