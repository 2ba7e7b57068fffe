// Package cli implements the reflets command line.
//
// Commands reach the core through driving ports held in package variables.
// main sets them through SetServiceFactory before calling Execute; tests
// assign them directly.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reflets-cli/internal/adapters/driven/graph"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driving"
	"github.com/custodia-labs/reflets-cli/internal/logger"
)

var version = "dev"

// Services are the driving ports the commands use.
type Services struct {
	Enrichment driving.EnrichmentService
	Settings   driving.SettingsService
}

// ServiceFactory builds the services for a configuration directory.
// An empty directory selects the default one.
type ServiceFactory func(configDir string) (*Services, error)

// GraphDialer opens a graph database client.
type GraphDialer func(ctx context.Context, opts graph.Options) (graph.Client, error)

var (
	enrichmentService driving.EnrichmentService
	settingsService   driving.SettingsService
	serviceFactory    ServiceFactory

	graphDialer GraphDialer = func(ctx context.Context, opts graph.Options) (graph.Client, error) {
		client, err := graph.NewNeo4jClient(ctx, opts)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
)

// Global flags.
var (
	verbose      bool
	configDir    string
	outputFormat string
	graphOptions graph.Options
)

var rootCmd = &cobra.Command{
	Use:   "reflets",
	Short: "Enrich investigation graphs from company registries",
	Long: `Reflets queries the Pappers company registries (France and international)
and turns officers, beneficial owners, companies and registered offices
into graph entities linked to the person, company or address you start from.

Results are printed as a table, JSON or a Maltego transform response, and
can be merged into a Neo4j database with --neo4j-uri.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.reflets)")
	flags.StringVarP(&outputFormat, "format", "f", formatTable, "output format: table, json or maltego")
	flags.StringVar(&graphOptions.URI, "neo4j-uri", "", "merge results into the Neo4j database at this Bolt URI")
	flags.StringVar(&graphOptions.Username, "neo4j-user", "", "Neo4j user name")
	flags.StringVar(&graphOptions.Password, "neo4j-password", "", "Neo4j password")
	flags.StringVar(&graphOptions.Database, "neo4j-database", "", "Neo4j database (default: server default)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers the factory run once flags are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetGraphDialer replaces the function that opens graph clients.
func SetGraphDialer(d GraphDialer) {
	graphDialer = d
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if !validFormat(outputFormat) {
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	if serviceFactory == nil {
		return nil
	}
	services, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialise services: %w", err)
	}
	if services == nil {
		return errors.New("service factory returned no services")
	}
	enrichmentService = services.Enrichment
	settingsService = services.Settings
	return nil
}
