package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage tool configuration",
	Long: `View and configure the backend address, authentication mode, and import
history recording.

Use subcommands to print the effective configuration or run the
interactive setup.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactive configuration setup",
	Long:  `Prompts for each setting step by step and writes the configuration file.`,
	RunE:  runSettingsInit,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Current(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Service]")
	cmd.Printf("  URI: %s\n", settings.ServiceURI)
	cmd.Println()

	cmd.Println("[Authentication]")
	cmd.Printf("  Mode: %s\n", settings.Auth.Mode.Description())
	if settings.Auth.Mode.RequiresLogin() {
		cmd.Printf("  Client ID: %s\n", settings.Auth.ClientID)
		cmd.Printf("  Instance: %s\n", settings.Auth.Instance)
		cmd.Printf("  Tenant ID: %s\n", settings.Auth.TenantID)
		if settings.Auth.RedirectURI != "" {
			cmd.Printf("  Redirect URI: %s\n", settings.Auth.RedirectURI)
		}
		cmd.Printf("  Scope: %s\n", settings.Auth.ResourceScope())
	}
	cmd.Println()

	cmd.Println("[History]")
	if settings.History.Enabled {
		cmd.Printf("  Enabled: yes\n")
		if settings.History.Path != "" {
			cmd.Printf("  Path: %s\n", settings.History.Path)
		}
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())

	if err := settings.Validate(); err != nil {
		cmd.Printf("\nWarning: %v\n", err)
		cmd.Println("Run 'ccimport settings init' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

//nolint:gocognit // CLI interactive flow
func runSettingsInit(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("settings init requires an interactive terminal")
	}

	cmd.Println("ccimport Setup")
	cmd.Println("==============")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	// Start from the current configuration so re-running the setup only
	// changes what the operator types over.
	settings, err := settingsService.Current(context.Background())
	if err != nil {
		settings = domain.DefaultSettings()
	}

	// Step 1: backend address.
	cmd.Println("Step 1: Backend")
	cmd.Println("---------------")
	cmd.Printf("Service URI [%s]: ", settings.ServiceURI)
	if input := readLine(reader); input != "" {
		settings.ServiceURI = input
	}
	cmd.Println()

	// Step 2: authentication.
	cmd.Println("Step 2: Authentication")
	cmd.Println("----------------------")
	modes := []domain.AuthMode{domain.AuthModeNone, domain.AuthModeInteractive}
	defaultChoice := 1
	for i, mode := range modes {
		if mode == settings.Auth.Mode {
			defaultChoice = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, mode.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultChoice)
	idx := parseChoice(readLine(reader), len(modes), defaultChoice)
	settings.Auth.Mode = modes[idx-1]

	if settings.Auth.Mode.RequiresLogin() {
		cmd.Println()
		promptAuthSettings(cmd, reader, &settings.Auth)
	}
	cmd.Println()

	// Step 3: import history.
	cmd.Println("Step 3: Import History")
	cmd.Println("----------------------")
	cmd.Print("Record import runs? [Y/n]: ")
	settings.History.Enabled = readYesNo(reader, settings.History.Enabled)
	cmd.Println()

	if err := settingsService.Save(context.Background(), settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Configuration written to %s\n", settingsService.ConfigPath())
	return nil
}

// promptAuthSettings collects the identity provider fields needed by
// interactive login. Existing values become defaults.
func promptAuthSettings(cmd *cobra.Command, reader *bufio.Reader, auth *domain.AuthSettings) {
	prompts := []struct {
		label string
		value *string
	}{
		{"Client ID", &auth.ClientID},
		{"Identity instance URL", &auth.Instance},
		{"Tenant ID", &auth.TenantID},
		{"Backend client ID", &auth.BackendClientID},
		{"Scope", &auth.Scope},
		{"Redirect URI (blank picks a free port)", &auth.RedirectURI},
	}
	for _, p := range prompts {
		if *p.value != "" {
			cmd.Printf("%s [%s]: ", p.label, *p.value)
		} else {
			cmd.Printf("%s: ", p.label)
		}
		if input := readLine(reader); input != "" {
			*p.value = input
		}
	}
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func readYesNo(reader *bufio.Reader, defaultVal bool) bool {
	switch strings.ToLower(readLine(reader)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultVal
	}
}
