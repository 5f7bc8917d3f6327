// Package cli implements the ccimport command line interface. Commands
// print through cobra's output streams and reach the core exclusively
// through driving ports injected with SetDependencies.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/careercopilot/ccimport/internal/core/ports/driving"
	"github.com/careercopilot/ccimport/internal/logger"
)

// version is the build version printed by the version command.
// Overridden at release time via SetVersion.
var version = "dev"

// Services backing the commands. They are wired once at startup; a command
// whose service is missing fails with a "not configured" error instead of
// panicking.
var (
	importService   driving.ImportService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	watchService    driving.WatchService
)

// verboseFlag is bound to the persistent --verbose flag.
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "ccimport",
	Short: "Import documents into Career Copilot",
	Long: `ccimport uploads local documents into a Career Copilot backend.

File arguments may be literal paths or wildcard patterns. Resolved files
are uploaded one at a time, in order, to the global document collection or
to a single chat session's collection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

// Dependencies carries the driving services the commands run against.
type Dependencies struct {
	Importer driving.ImportService
	History  driving.HistoryService
	Settings driving.SettingsService
	Watcher  driving.WatchService
}

// SetDependencies wires services into the command tree. Nil entries leave
// the matching commands unconfigured.
func SetDependencies(deps Dependencies) {
	importService = deps.Importer
	historyService = deps.History
	settingsService = deps.Settings
	watchService = deps.Watcher
}

// SetVersion records the build version, normally injected via ldflags.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and returns the first command error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "print diagnostic output to stderr")
}
