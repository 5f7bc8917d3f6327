// Package runs provides the run list view for the history browser.
package runs

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/components/status"
	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/keymap"
	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/messages"
	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/styles"
	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driving"
)

// browseRunLimit caps how many runs the browser loads from the ledger.
const browseRunLimit = 50

// View is the run list view.
type View struct {
	styles         *styles.Styles
	keymap         *keymap.KeyMap
	statusbar      *status.Bar
	historyService driving.HistoryService

	runs         []domain.ImportRun
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
}

// NewView creates a new run list view.
func NewView(s *styles.Styles, km *keymap.KeyMap, historyService driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		statusbar:      status.NewBar(s, km),
		historyService: historyService,
		runs:           []domain.ImportRun{},
	}
}

// Init initialises the view and starts loading runs.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.statusbar.SetState(status.StateLoading)
	return v.loadRuns()
}

// loadRuns returns a command that loads recent runs from the ledger.
func (v *View) loadRuns() tea.Cmd {
	return func() tea.Msg {
		if v.historyService == nil {
			return messages.RunsLoaded{Err: fmt.Errorf("history service not available")}
		}

		runs, err := v.historyService.Runs(context.Background(), browseRunLimit)
		return messages.RunsLoaded{Runs: runs, Err: err}
	}
}

// Update handles messages for the run list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RunsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.runs = msg.Runs
			v.err = nil
			if v.selected >= len(v.runs) {
				v.selected = 0
				v.scrollOffset = 0
			}
			v.statusbar.SetState(status.StateReady)
			v.statusbar.SetRunCount(len(v.runs))
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in the run list.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.runs)-1 {
			v.selected++
			v.adjustScroll()
		}

	case keymap.Matches(keyStr, v.keymap.Select):
		if len(v.runs) > 0 {
			run := v.runs[v.selected]
			return v, func() tea.Msg {
				return messages.RunSelected{Run: run}
			}
		}

	case keymap.Matches(keyStr, v.keymap.Refresh):
		v.loading = true
		v.statusbar.SetState(status.StateLoading)
		return v, v.loadRuns()
	}

	return v, nil
}

// adjustScroll keeps the selected run visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of runs that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, scroll indicator, and status bar
	reserved := 6
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the run list.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Import History (%d runs)", len(v.runs))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading runs..."))
		b.WriteString("\n")

	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")

	case len(v.runs) == 0:
		b.WriteString(v.styles.Muted.Render("No recorded import runs."))
		b.WriteString("\n")

	default:
		visibleItems := v.visibleItemCount()
		for i := v.scrollOffset; i < len(v.runs) && i < v.scrollOffset+visibleItems; i++ {
			b.WriteString(v.renderRun(i, &v.runs[i]))
			b.WriteString("\n")
		}

		if len(v.runs) > visibleItems {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
				v.scrollOffset+1,
				min(v.scrollOffset+visibleItems, len(v.runs)),
				len(v.runs))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

// renderRun renders a single run line.
func (v *View) renderRun(index int, run *domain.ImportRun) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	started := run.StartedAt.Format("2006-01-02 15:04")

	target := run.Target().String()
	maxTargetLen := v.width / 3
	if maxTargetLen < 16 {
		maxTargetLen = 16
	}
	if len(target) > maxTargetLen {
		target = target[:maxTargetLen-3] + "..."
	}

	summary := runSummary(run)

	if index == v.selected {
		return v.styles.Selected.Render(
			fmt.Sprintf("%s%s  %-*s  %s", indicator, started, maxTargetLen, target, summary),
		)
	}

	return v.styles.Normal.Render(fmt.Sprintf("%s%s  ", indicator, started)) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxTargetLen, target)) +
		v.styles.Muted.Render(summary)
}

// runSummary describes a run's outcomes in one line.
func runSummary(run *domain.ImportRun) string {
	summary := fmt.Sprintf("%d uploaded", run.Uploaded)
	if run.Rejected > 0 {
		summary += fmt.Sprintf(", %d rejected", run.Rejected)
	}
	if run.Failed > 0 {
		summary += fmt.Sprintf(", %d failed", run.Failed)
	}
	if run.Aborted {
		summary += " (aborted)"
	}
	return summary
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Runs returns the current list of runs.
func (v *View) Runs() []domain.ImportRun {
	return v.runs
}

// SelectedIndex returns the currently selected run index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedRun returns the currently selected run.
func (v *View) SelectedRun() *domain.ImportRun {
	if v.selected < len(v.runs) {
		return &v.runs[v.selected]
	}
	return nil
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
