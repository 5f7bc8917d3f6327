package driving

import (
	"context"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// HistoryService exposes recorded import runs.
type HistoryService interface {
	// Runs returns the most recent runs, newest first. A non-positive
	// limit applies the default.
	Runs(ctx context.Context, limit int) ([]domain.ImportRun, error)

	// RunFiles returns one run's per-file outcomes in upload order.
	RunFiles(ctx context.Context, runID string) ([]domain.FileResult, error)
}
