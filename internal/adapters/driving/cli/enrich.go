package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reflets-cli/internal/adapters/driven/graph"
	"github.com/custodia-labs/reflets-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/reflets-cli/internal/core/services"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// personFlags holds the person search flags shared by officers and beneficiaries.
type personFlags struct {
	firstName       string
	lastName        string
	otherFirstNames string
	birthMonth      string
	birthDate       string
	age             int
}

func (p *personFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&p.firstName, "first-name", "", "usual first name")
	f.StringVar(&p.lastName, "last-name", "", "last name")
	f.StringVar(&p.otherFirstNames, "other-first-names", "", "all first names, used instead of --first-name in the query")
	f.StringVar(&p.birthMonth, "birth-month", "", "birth month (YYYY-MM)")
	f.StringVar(&p.birthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	f.IntVar(&p.age, "age", 0, "age")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
}

func (p *personFlags) constraints(cmd *cobra.Command) domain.MatchConstraints {
	q := domain.MatchConstraints{
		FirstName:       p.firstName,
		LastName:        p.lastName,
		OtherFirstNames: p.otherFirstNames,
		BirthMonth:      p.birthMonth,
		BirthDate:       p.birthDate,
	}
	if cmd.Flags().Changed("age") {
		age := p.age
		q.Age = &age
	}
	return q
}

var (
	officerFlags      personFlags
	officersIntl      bool
	beneficiaryFlags  personFlags
	companyCountry    string
	companiesCountry  string
	headquartersQuery domain.LocationQuery
)

var officersCmd = &cobra.Command{
	Use:   "officers",
	Short: "Find the companies a person manages",
	Long: `Searches the French registry for officers matching the person and emits
each company they manage, linked to the person.

With --international the UK registry is searched instead.`,
	Args: cobra.NoArgs,
	RunE: runOfficers,
}

var beneficiariesCmd = &cobra.Command{
	Use:   "beneficiaries",
	Short: "Find the companies a person beneficially owns",
	Long: `Searches the French registry for beneficial owners matching the person and
emits each company they own, linked to the person with their share.`,
	Args: cobra.NoArgs,
	RunE: runBeneficiaries,
}

var companyCmd = &cobra.Command{
	Use:   "company [number]",
	Short: "Expand a company into its people, offices and documents",
	Long: `Fetches a company by registration number and emits its officers, beneficial
owners, representatives and offices, then the company itself with a note
listing its documents.

French companies are looked up by SIREN. Use --country for other registries.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompany,
}

var headquartersCmd = &cobra.Command{
	Use:   "headquarters",
	Short: "Find the companies registered at an address",
	Long: `Searches for companies whose registered office is at the address and emits
each one with the documents mentioning the address.

Addresses in CH, UK, GB and BE use the international registry.`,
	Args: cobra.NoArgs,
	RunE: runHeadquarters,
}

var companiesCmd = &cobra.Command{
	Use:   "companies [name]",
	Short: "Search companies by name",
	Long: `Searches the international registry for companies by name.
Supported countries: CH, UK, GB, BE and FR.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompanies,
}

func init() {
	officerFlags.bind(officersCmd)
	officersCmd.Flags().BoolVar(&officersIntl, "international", false, "search the UK registry")
	beneficiaryFlags.bind(beneficiariesCmd)

	companyCmd.Flags().StringVarP(&companyCountry, "country", "c", "", "registry country code (default FR)")
	companiesCmd.Flags().StringVarP(&companiesCountry, "country", "c", "FR", "registry country code")

	hq := headquartersCmd.Flags()
	hq.StringVar(&headquartersQuery.StreetAddress, "street", "", "street address")
	hq.StringVar(&headquartersQuery.PostalCode, "postal-code", "", "postal code")
	hq.StringVar(&headquartersQuery.City, "city", "", "city")
	hq.StringVarP(&headquartersQuery.CountryCode, "country", "c", "", "country code (default FR)")
	_ = headquartersCmd.MarkFlagRequired("street")
	_ = headquartersCmd.MarkFlagRequired("city")

	rootCmd.AddCommand(officersCmd, beneficiariesCmd, companyCmd, headquartersCmd, companiesCmd)
}

// operation runs one enrichment against a sink.
type operation func(ctx context.Context, sink driven.GraphSink) (*domain.RunReport, error)

func runOfficers(cmd *cobra.Command, _ []string) error {
	q := officerFlags.constraints(cmd)
	return runEnrichment(cmd, services.PersonQueryEntity(q), func(ctx context.Context, sink driven.GraphSink) (*domain.RunReport, error) {
		if officersIntl {
			return enrichmentService.SearchOfficersInternational(ctx, q, sink)
		}
		return enrichmentService.SearchOfficers(ctx, q, sink)
	})
}

func runBeneficiaries(cmd *cobra.Command, _ []string) error {
	q := beneficiaryFlags.constraints(cmd)
	return runEnrichment(cmd, services.PersonQueryEntity(q), func(ctx context.Context, sink driven.GraphSink) (*domain.RunReport, error) {
		return enrichmentService.SearchBeneficiaries(ctx, q, sink)
	})
}

func runCompany(cmd *cobra.Command, args []string) error {
	q := domain.CompanyQuery{ID: args[0], CountryCode: companyCountry}
	return runEnrichment(cmd, services.CompanyQueryEntity(q), func(ctx context.Context, sink driven.GraphSink) (*domain.RunReport, error) {
		return enrichmentService.CompanyDetails(ctx, q, sink)
	})
}

func runHeadquarters(cmd *cobra.Command, _ []string) error {
	q := headquartersQuery
	return runEnrichment(cmd, services.LocationQueryEntity(q), func(ctx context.Context, sink driven.GraphSink) (*domain.RunReport, error) {
		return enrichmentService.SearchHeadquarters(ctx, q, sink)
	})
}

func runCompanies(cmd *cobra.Command, args []string) error {
	q := domain.CompanyQuery{Name: args[0], CountryCode: companiesCountry}
	return runEnrichment(cmd, services.CompanyQueryEntity(q), func(ctx context.Context, sink driven.GraphSink) (*domain.RunReport, error) {
		return enrichmentService.SearchCompanies(ctx, q, sink)
	})
}

// runEnrichment runs op into an in-memory sink, also merging into Neo4j
// when a Bolt URI is configured, and renders the result. The run's error
// is returned after rendering so the messages it produced are shown.
func runEnrichment(cmd *cobra.Command, origin domain.Entity, op operation) error {
	if enrichmentService == nil {
		return errors.New("enrichment service not configured")
	}
	ctx := cmd.Context()

	results := memory.NewGraphSink()
	var (
		sink   driven.GraphSink = results
		stored *graph.Sink
	)
	if graphOptions.Enabled() {
		client, err := graphDialer(ctx, graphOptions)
		if err != nil {
			return fmt.Errorf("open graph database: %w", err)
		}
		defer func() {
			if err := client.Close(ctx); err != nil {
				logger.Warn("close graph database: %v", err)
			}
		}()
		stored = graph.NewSink(client, &origin)
		sink = graph.NewTee(results, stored)
	}

	report, runErr := op(ctx, sink)
	if err := render(cmd.OutOrStdout(), outputFormat, results, report); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	if stored != nil {
		linked, err := stored.Linked(ctx)
		if err != nil {
			return err
		}
		logger.Info("%d node(s) linked to %s in %s", linked, origin.Value, graphOptions.URI)
	}
	return nil
}
