package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/reflets-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/reflets-cli/internal/core/services"
)

// PersonInput is the input schema for the person search tools.
type PersonInput struct {
	FirstName       string `json:"first_name" jsonschema:"usual first name of the person"`
	LastName        string `json:"last_name" jsonschema:"last name of the person"`
	OtherFirstNames string `json:"other_first_names,omitempty" jsonschema:"all first names, searched instead of first_name"`
	BirthMonth      string `json:"birth_month,omitempty" jsonschema:"birth month as YYYY-MM"`
	BirthDate       string `json:"birth_date,omitempty" jsonschema:"birth date as YYYY-MM-DD"`
	Age             *int   `json:"age,omitempty" jsonschema:"age of the person"`
}

func (in PersonInput) constraints() domain.MatchConstraints {
	return domain.MatchConstraints{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		OtherFirstNames: in.OtherFirstNames,
		BirthMonth:      in.BirthMonth,
		BirthDate:       in.BirthDate,
		Age:             in.Age,
	}
}

// CompanyInput is the input schema for the company details tool.
type CompanyInput struct {
	Number      string `json:"number" jsonschema:"registration number: SIREN for France, company number elsewhere"`
	CountryCode string `json:"country_code,omitempty" jsonschema:"registry country code (default FR)"`
}

// CompanyNameInput is the input schema for the company name search tool.
type CompanyNameInput struct {
	Name        string `json:"name" jsonschema:"company name to search for"`
	CountryCode string `json:"country_code,omitempty" jsonschema:"one of CH, UK, GB, BE or FR (default FR)"`
}

// AddressInput is the input schema for the headquarters search tool.
type AddressInput struct {
	StreetAddress string `json:"street_address" jsonschema:"street address, for example 10 rue de Rivoli"`
	PostalCode    string `json:"postal_code,omitempty" jsonschema:"postal code"`
	City          string `json:"city" jsonschema:"city"`
	CountryCode   string `json:"country_code,omitempty" jsonschema:"country code (default FR)"`
}

// EnrichmentOutput is the output schema shared by every enrichment tool.
type EnrichmentOutput struct {
	Entities []domain.Entity   `json:"entities"`
	Messages []memory.Message  `json:"messages"`
	Report   *domain.RunReport `json:"report,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	addTool(s, &mcp.Tool{
		Name:        "search_officers",
		Description: "Find the French companies a person manages",
	}, s.handleSearchOfficers)

	addTool(s, &mcp.Tool{
		Name:        "search_beneficiaries",
		Description: "Find the French companies a person beneficially owns",
	}, s.handleSearchBeneficiaries)

	addTool(s, &mcp.Tool{
		Name:        "search_officers_international",
		Description: "Find the UK companies a person is an officer of",
	}, s.handleSearchOfficersInternational)

	addTool(s, &mcp.Tool{
		Name:        "company_details",
		Description: "Expand a company into its officers, owners, offices and documents",
	}, s.handleCompanyDetails)

	addTool(s, &mcp.Tool{
		Name:        "search_headquarters",
		Description: "Find the companies whose registered office is at an address",
	}, s.handleSearchHeadquarters)

	addTool(s, &mcp.Tool{
		Name:        "search_companies",
		Description: "Search companies by name in the international registry",
	}, s.handleSearchCompanies)
}

func (s *Server) handleSearchOfficers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PersonInput,
) (*mcp.CallToolResult, EnrichmentOutput, error) {
	return run(ctx, func(sink driven.GraphSink) (*domain.RunReport, error) {
		return s.ports.Enrichment.SearchOfficers(ctx, input.constraints(), sink)
	})
}

func (s *Server) handleSearchBeneficiaries(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PersonInput,
) (*mcp.CallToolResult, EnrichmentOutput, error) {
	return run(ctx, func(sink driven.GraphSink) (*domain.RunReport, error) {
		return s.ports.Enrichment.SearchBeneficiaries(ctx, input.constraints(), sink)
	})
}

func (s *Server) handleSearchOfficersInternational(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PersonInput,
) (*mcp.CallToolResult, EnrichmentOutput, error) {
	return run(ctx, func(sink driven.GraphSink) (*domain.RunReport, error) {
		return s.ports.Enrichment.SearchOfficersInternational(ctx, input.constraints(), sink)
	})
}

func (s *Server) handleCompanyDetails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompanyInput,
) (*mcp.CallToolResult, EnrichmentOutput, error) {
	q := domain.CompanyQuery{ID: input.Number, CountryCode: input.CountryCode}
	return run(ctx, func(sink driven.GraphSink) (*domain.RunReport, error) {
		return s.ports.Enrichment.CompanyDetails(ctx, q, sink)
	})
}

func (s *Server) handleSearchHeadquarters(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddressInput,
) (*mcp.CallToolResult, EnrichmentOutput, error) {
	q := domain.LocationQuery{
		StreetAddress: input.StreetAddress,
		PostalCode:    input.PostalCode,
		City:          input.City,
		CountryCode:   input.CountryCode,
	}
	return run(ctx, func(sink driven.GraphSink) (*domain.RunReport, error) {
		return s.ports.Enrichment.SearchHeadquarters(ctx, q, sink)
	})
}

func (s *Server) handleSearchCompanies(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompanyNameInput,
) (*mcp.CallToolResult, EnrichmentOutput, error) {
	q := domain.CompanyQuery{Name: input.Name, CountryCode: input.CountryCode}
	return run(ctx, func(sink driven.GraphSink) (*domain.RunReport, error) {
		return s.ports.Enrichment.SearchCompanies(ctx, q, sink)
	})
}

// run collects one enrichment into an output. A failed run is reported as
// a tool error carrying the user message, alongside whatever was emitted
// before the failure.
func run(
	ctx context.Context,
	op func(sink driven.GraphSink) (*domain.RunReport, error),
) (*mcp.CallToolResult, EnrichmentOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, EnrichmentOutput{}, err
	}

	sink := memory.NewGraphSink()
	report, err := op(sink)

	output := EnrichmentOutput{
		Entities: sink.Unique(),
		Messages: sink.Messages(),
		Report:   report,
	}
	if output.Entities == nil {
		output.Entities = []domain.Entity{}
	}
	if output.Messages == nil {
		output.Messages = []memory.Message{}
	}

	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: services.UserMessage(err)}},
		}, output, nil
	}
	return nil, output, nil
}
