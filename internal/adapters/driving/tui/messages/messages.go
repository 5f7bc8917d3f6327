// Package messages defines Bubbletea message types for the history browser.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/careercopilot/ccimport/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewRuns lists recorded import runs.
	ViewRuns ViewType = iota
	// ViewRunFiles shows one run's per-file outcomes.
	ViewRunFiles
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewRuns:
		return "runs"
	case ViewRunFiles:
		return "run_files"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// RunsLoaded carries the list of recorded runs from the ledger.
type RunsLoaded struct {
	Runs []domain.ImportRun
	Err  error
}

// RunSelected signals a run was selected for the file outcomes view.
type RunSelected struct {
	Run domain.ImportRun
}

// RunFilesLoaded carries one run's per-file outcomes.
type RunFilesLoaded struct {
	RunID string
	Files []domain.FileResult
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
