package mcp

import (
	"github.com/careercopilot/ccimport/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server exposes as tools.
type Ports struct {
	// Importer resolves patterns and uploads documents.
	Importer driving.ImportService

	// History reads recorded import runs. Optional; when nil the
	// history tool and run resources report history as disabled.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Importer == nil {
		return ErrMissingImportService
	}
	return nil
}
