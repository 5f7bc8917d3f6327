// ccimport uploads local documents into a Career Copilot backend.
//
// This package only wires driven adapters into the core services and hands
// them to the CLI; all behaviour lives in internal packages.
package main

import (
	"fmt"
	"os"

	"github.com/careercopilot/ccimport/internal/adapters/driven/auth"
	"github.com/careercopilot/ccimport/internal/adapters/driven/backend"
	"github.com/careercopilot/ccimport/internal/adapters/driven/config/file"
	ledger "github.com/careercopilot/ccimport/internal/adapters/driven/ledger/sqlite"
	"github.com/careercopilot/ccimport/internal/adapters/driven/report"
	"github.com/careercopilot/ccimport/internal/adapters/driven/watch"
	"github.com/careercopilot/ccimport/internal/adapters/driving/cli"
	"github.com/careercopilot/ccimport/internal/core/ports/driven"
	"github.com/careercopilot/ccimport/internal/core/services"
)

// version is overridden at release time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	settingsStore, err := file.NewSettingsStore("")
	if err != nil {
		return err
	}

	// The settings commands are wired unconditionally so a broken
	// configuration can always be inspected and repaired.
	deps := cli.Dependencies{Settings: services.NewSettingsService(settingsStore)}

	settings, err := settingsStore.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cli.SetDependencies(deps)
		return cli.Execute()
	}

	// History recording is best-effort: a ledger that cannot be opened
	// costs the history features, never the imports.
	var importLedger driven.ImportLedger
	if settings.History.Enabled {
		ledgerStore, err := ledger.NewStore(settings.History.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: import history unavailable: %v\n", err)
		} else {
			defer ledgerStore.Close()
			importLedger = ledgerStore
			deps.History = services.NewHistoryService(importLedger)
		}
	}

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cli.SetDependencies(deps)
		return cli.Execute()
	}

	tokens, err := auth.NewTokenProvider(settings.Auth)
	if err != nil {
		return err
	}

	importer := services.NewImportService(
		backend.NewClient(settings.ServiceURI),
		tokens,
		importLedger,
		report.NewConsole(os.Stdout),
	)
	deps.Importer = importer
	deps.Watcher = services.NewWatchService(watch.NewWatcher(), importer)

	cli.SetDependencies(deps)
	return cli.Execute()
}
