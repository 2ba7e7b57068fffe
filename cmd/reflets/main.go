// Command reflets enriches investigation graphs from the Pappers registries.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/reflets-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/reflets-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/reflets-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/reflets-cli/internal/connectors/pappers"
	"github.com/custodia-labs/reflets-cli/internal/core/services"
	"github.com/custodia-labs/reflets-cli/internal/logger"
	normaliser "github.com/custodia-labs/reflets-cli/internal/normalisers/pappers"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// buildServices wires the adapters for a configuration directory.
func buildServices(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config in %s: %w", configDir, err)
	}
	settings := services.NewSettingsService(store)

	// Endpoints, timeout and throttle are fixed for the process; the token
	// and pipeline settings are read again on every run.
	current, err := settings.Load()
	if err != nil {
		return nil, err
	}
	client := pappers.NewClient(auth.NewConfigTokenProvider(settings), pappers.ConfigFromSettings(current))

	return &cli.Services{
		Enrichment: services.NewEnrichmentService(client, normaliser.New(), settings),
		Settings:   settings,
	}, nil
}
