package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/keymap"
	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/messages"
	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/styles"
	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/views/runfiles"
	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/views/runs"
	"github.com/careercopilot/ccimport/internal/core/domain"
)

// Browser is the import history browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type Browser struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the browser styles.
	styles *styles.Styles

	// keymap holds the browser keybindings.
	keymap *keymap.KeyMap

	// runsView lists recorded runs.
	runsView *runs.View

	// runFilesView shows one run's per-file outcomes.
	runFilesView *runfiles.View

	// selectedRun tracks the run opened in the files view.
	selectedRun *domain.ImportRun

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the browser has initialised.
	ready bool
}

// Ensure Browser implements tea.Model.
var _ tea.Model = (*Browser)(nil)

// NewBrowser creates a new history browser with the given ports.
func NewBrowser(ports *Ports) (*Browser, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating browser: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &Browser{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		runsView:     runs.NewView(s, km, ports.History),
		runFilesView: runfiles.NewView(s, ports.History),
		currentView:  messages.ViewRuns,
	}, nil
}

// WithContext sets the context for the browser.
func (b *Browser) WithContext(ctx context.Context) *Browser {
	b.ctx = ctx
	return b
}

// Init implements tea.Model.
// It starts loading runs when the program starts.
func (b *Browser) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("ccimport - Import History"),
		b.runsView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.ready = true
		b.runsView.SetDimensions(msg.Width, msg.Height)
		b.runFilesView.SetDimensions(msg.Width, msg.Height)
		return b, nil

	case tea.KeyMsg:
		return b.handleKeyMsg(msg)

	case messages.RunsLoaded:
		b.runsView, cmd = b.runsView.Update(msg)
		return b, cmd

	case messages.RunSelected:
		b.selectedRun = &msg.Run
		b.currentView = messages.ViewRunFiles
		return b, b.runFilesView.SetRun(msg.Run)

	case messages.RunFilesLoaded:
		b.runFilesView, cmd = b.runFilesView.Update(msg)
		return b, cmd

	case messages.ViewChanged:
		b.currentView = msg.View
		return b, nil

	case messages.ErrorOccurred:
		b.err = msg.Err
		switch b.currentView {
		case messages.ViewRuns:
			b.runsView, cmd = b.runsView.Update(msg)
		case messages.ViewRunFiles:
			b.runFilesView, cmd = b.runFilesView.Update(msg)
		case messages.ViewHelp:
			// Help view doesn't handle error messages
		}
		return b, cmd
	}

	// Forward other messages to the active view
	switch b.currentView {
	case messages.ViewRuns:
		b.runsView, cmd = b.runsView.Update(msg)
	case messages.ViewRunFiles:
		b.runFilesView, cmd = b.runFilesView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return b, cmd
}

// handleKeyMsg routes keyboard input to the active view.
func (b *Browser) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	keyStr := msg.String()

	// Global quit
	if keymap.Matches(keyStr, b.keymap.Quit) {
		return b, tea.Quit
	}

	switch b.currentView {
	case messages.ViewRuns:
		if keymap.Matches(keyStr, b.keymap.Help) {
			b.currentView = messages.ViewHelp
			return b, nil
		}
		// Esc from the run list exits the browser
		if msg.Type == tea.KeyEsc {
			return b, tea.Quit
		}
		b.runsView, cmd = b.runsView.Update(msg)
		return b, cmd

	case messages.ViewRunFiles:
		if keymap.Matches(keyStr, b.keymap.Help) {
			b.currentView = messages.ViewHelp
			return b, nil
		}
		b.runFilesView, cmd = b.runFilesView.Update(msg)
		return b, cmd

	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			b.currentView = messages.ViewRuns
			return b, nil
		}
		return b, nil
	}

	return b, nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (b *Browser) View() string {
	if !b.ready {
		return "Initialising..."
	}

	switch b.currentView {
	case messages.ViewRuns:
		return b.runsView.View()
	case messages.ViewRunFiles:
		return b.runFilesView.View()
	case messages.ViewHelp:
		return b.viewHelp()
	default:
		return b.runsView.View()
	}
}

// viewHelp renders the help view.
func (b *Browser) viewHelp() string {
	return `Help

Runs:
  j/k, ↑/↓    Navigate runs
  enter       Show per-file outcomes
  r           Reload from ledger
  esc, q      Quit

Files:
  j/k, ↑/↓    Navigate files
  r           Reload
  esc         Back to runs

[esc] back to runs`
}

// Run starts the history browser.
func (b *Browser) Run() error {
	p := tea.NewProgram(b, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (b *Browser) CurrentView() messages.ViewType {
	return b.currentView
}

// SelectedRun returns the run opened in the files view.
func (b *Browser) SelectedRun() *domain.ImportRun {
	return b.selectedRun
}

// Err returns the last error that occurred.
func (b *Browser) Err() error {
	return b.err
}

// Ready returns whether the browser has been initialised.
func (b *Browser) Ready() bool {
	return b.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (b *Browser) SetDimensions(width, height int) {
	b.width = width
	b.height = height
	b.ready = true
	b.runsView.SetDimensions(width, height)
	b.runFilesView.SetDimensions(width, height)
}
