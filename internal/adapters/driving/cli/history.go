package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/careercopilot/ccimport/internal/adapters/driving/tui"
	"github.com/careercopilot/ccimport/internal/core/domain"
)

// Flags for the history command.
var (
	historyLimit       int
	historyRunID       string
	historyInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded import runs",
	Long: `Lists recent import runs recorded in the local history ledger.

Use --run to list one run's per-file outcomes, or --interactive to browse
runs in a terminal UI. History is a record only: it never affects imports,
and re-importing a file always uploads it again.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyRunID, "run", "", "show per-file outcomes for one run ID")
	historyCmd.Flags().BoolVarP(&historyInteractive, "interactive", "i", false, "browse history in a terminal UI")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if historyInteractive {
		return runHistoryBrowser(cmd)
	}
	if historyRunID != "" {
		return printRunFiles(cmd, historyRunID)
	}
	return printRuns(cmd)
}

func printRuns(cmd *cobra.Command) error {
	ctx := context.Background()

	runs, err := historyService.Runs(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No recorded import runs.")
		return nil
	}

	cmd.Println("Recent import runs:")
	cmd.Println()
	for i := range runs {
		run := &runs[i]
		cmd.Printf("  %s\n", run.ID)
		cmd.Printf("    Started: %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
		cmd.Printf("    Target:  %s\n", run.Target())
		cmd.Printf("    Files:   %d resolved, %d uploaded, %d rejected, %d failed\n",
			run.Resolved, run.Uploaded, run.Rejected, run.Failed)
		if run.Aborted {
			cmd.Printf("    Aborted: yes\n")
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d runs\n", len(runs))
	return nil
}

func printRunFiles(cmd *cobra.Command, runID string) error {
	ctx := context.Background()

	files, err := historyService.RunFiles(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to list run files: %w", err)
	}

	if len(files) == 0 {
		cmd.Printf("No recorded uploads for run %s.\n", runID)
		return nil
	}

	cmd.Printf("Files for run %s:\n\n", runID)
	for i := range files {
		f := &files[i]
		cmd.Printf("  %s\n", f.Path)
		if f.Outcome == domain.OutcomeRejected && f.StatusCode != 0 {
			cmd.Printf("    Outcome: %s (%d)\n", f.Outcome.Description(), f.StatusCode)
		} else {
			cmd.Printf("    Outcome: %s\n", f.Outcome.Description())
		}
		if f.Detail != "" {
			cmd.Printf("    Detail:  %s\n", f.Detail)
		}
	}

	return nil
}

func runHistoryBrowser(cmd *cobra.Command) error {
	// Panic recovery keeps a TUI crash diagnosable.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in history browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	browser, err := tui.NewBrowser(&tui.Ports{History: historyService})
	if err != nil {
		return fmt.Errorf("failed to create history browser: %w", err)
	}
	browser.WithContext(cmd.Context())

	p := tea.NewProgram(browser, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("history browser error: %w", err)
	}

	return nil
}
