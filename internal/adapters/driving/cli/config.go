package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the registry API key and enrichment settings.

Settings are stored in config.toml in the configuration directory.
The REFLETS_PAPPERS_API_KEY environment variable overrides the stored key.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the registry API key",
	Long:  `Prompts for the Pappers API key without echoing it and stores it.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigSetKey,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long:  `Sets one configuration value. Run 'reflets config keys' for the known keys.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

// readSecret reads the API key; replaced in tests.
var readSecret = readPassword

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Pappers]")
	if settings.APIToken != "" {
		cmd.Printf("  API Key: %s\n", settings.MaskedToken())
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  France API: %s\n", settings.FRBaseURL)
	cmd.Printf("  International API: %s\n", settings.INBaseURL)
	cmd.Printf("  Page size: %d\n", settings.PageSize)
	if settings.Unlimited() {
		cmd.Printf("  Page limit: unlimited\n")
	} else {
		cmd.Printf("  Page limit: %d\n", settings.PageLimit)
	}
	cmd.Printf("  Requests per second: %g\n", settings.RequestsPerSecond)
	cmd.Printf("  Timeout: %s\n", settings.Timeout)
	cmd.Println()

	cmd.Println("[Resolution]")
	cmd.Printf("  Birth date back-fill: %t\n", settings.Backfill)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Default country code: %s\n", settings.DefaultCountryCode)
	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Pappers API key: ")
	key := strings.TrimSpace(readSecret(cmd.InOrStdin()))
	cmd.Println()
	if key == "" {
		return errors.New("no API key entered")
	}

	if err := settingsService.SetAPIToken(key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	cmd.Println("API key saved.")
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s updated.\n", args[0])
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	for _, k := range settingsService.Keys() {
		cmd.Println(k)
	}
	return nil
}

// readPassword reads a line from in without echo when in is a terminal.
func readPassword(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
