// Package tui provides an interactive terminal browser for import history.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/careercopilot/ccimport/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the browser.
type Ports struct {
	// History reads recorded import runs and their per-file outcomes.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.History == nil {
		return ErrMissingHistoryService
	}
	return nil
}
