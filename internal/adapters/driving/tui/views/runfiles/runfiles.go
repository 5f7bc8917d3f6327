// Package runfiles provides the per-file outcome view for the history browser.
package runfiles

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/messages"
	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/styles"
	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driving"
)

// View shows one run's per-file upload outcomes.
type View struct {
	styles         *styles.Styles
	historyService driving.HistoryService

	run          *domain.ImportRun
	files        []domain.FileResult
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
}

// NewView creates a new run files view.
func NewView(s *styles.Styles, historyService driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:         s,
		historyService: historyService,
		files:          []domain.FileResult{},
	}
}

// SetRun sets the run and loads its file outcomes.
func (v *View) SetRun(run domain.ImportRun) tea.Cmd {
	v.run = &run
	v.files = []domain.FileResult{}
	v.selected = 0
	v.scrollOffset = 0
	v.err = nil
	v.loading = true
	return v.loadFiles()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// loadFiles returns a command that loads the run's file outcomes.
func (v *View) loadFiles() tea.Cmd {
	return func() tea.Msg {
		if v.run == nil || v.historyService == nil {
			return messages.RunFilesLoaded{Err: fmt.Errorf("history service not available")}
		}

		files, err := v.historyService.RunFiles(context.Background(), v.run.ID)
		return messages.RunFilesLoaded{
			RunID: v.run.ID,
			Files: files,
			Err:   err,
		}
	}
}

// Update handles messages for the run files view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RunFilesLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.files = msg.Files
			v.err = nil
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.files)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "r":
		v.loading = true
		return v, v.loadFiles()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewRuns}
		}
	}

	return v, nil
}

// adjustScroll keeps the selected file visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of files that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, run summary, detail, and help
	reserved := 9
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the run files view.
func (v *View) View() string {
	var b strings.Builder

	runID := "unknown"
	if v.run != nil {
		runID = v.run.ID
	}
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Run %s", runID)))
	b.WriteString("\n")

	if v.run != nil {
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf(
			"%s, started %s, %d files resolved",
			v.run.Target(),
			v.run.StartedAt.Format("2006-01-02 15:04:05"),
			v.run.Resolved,
		)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading file outcomes..."))
		b.WriteString("\n")

	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")

	case len(v.files) == 0:
		b.WriteString(v.styles.Muted.Render("No uploads were attempted in this run."))
		b.WriteString("\n")

	default:
		visibleItems := v.visibleItemCount()
		for i := v.scrollOffset; i < len(v.files) && i < v.scrollOffset+visibleItems; i++ {
			b.WriteString(v.renderFile(i, &v.files[i]))
			b.WriteString("\n")
		}

		if len(v.files) > visibleItems {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
				v.scrollOffset+1,
				min(v.scrollOffset+visibleItems, len(v.files)),
				len(v.files))))
			b.WriteString("\n")
		}

		if detail := v.selectedDetail(); detail != "" {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(detail))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [r] reload  [esc] back  [q] quit"))

	return b.String()
}

// renderFile renders a single file outcome line.
func (v *View) renderFile(index int, f *domain.FileResult) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	path := f.Path
	maxPathLen := v.width - 30
	if maxPathLen < 20 {
		maxPathLen = 20
	}
	if len(path) > maxPathLen {
		path = "..." + path[len(path)-maxPathLen+3:]
	}

	outcome := f.Outcome.Description()
	if f.Outcome == domain.OutcomeRejected && f.StatusCode != 0 {
		outcome = fmt.Sprintf("%s (%d)", outcome, f.StatusCode)
	}

	if index == v.selected {
		return v.styles.Selected.Render(
			fmt.Sprintf("%s%-*s  %s", indicator, maxPathLen, path, outcome),
		)
	}

	return v.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxPathLen, path)) +
		v.outcomeStyle(f.Outcome).Render(outcome)
}

// outcomeStyle maps an upload outcome to its display colour.
func (v *View) outcomeStyle(outcome domain.UploadOutcome) lipgloss.Style {
	switch outcome {
	case domain.OutcomeUploaded:
		return v.styles.Success
	case domain.OutcomeRejected:
		return v.styles.Error
	default:
		return v.styles.Warning
	}
}

// selectedDetail returns the detail text of the selected file, if any.
func (v *View) selectedDetail() string {
	if v.selected >= len(v.files) {
		return ""
	}
	detail := v.files[v.selected].Detail
	if detail == "" {
		return ""
	}
	if v.width > 4 && len(detail) > v.width-4 {
		detail = detail[:v.width-7] + "..."
	}
	return "Detail: " + detail
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Files returns the current file outcomes.
func (v *View) Files() []domain.FileResult {
	return v.files
}

// SelectedIndex returns the currently selected file index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedFile returns the currently selected file outcome.
func (v *View) SelectedFile() *domain.FileResult {
	if v.selected < len(v.files) {
		return &v.files[v.selected]
	}
	return nil
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
