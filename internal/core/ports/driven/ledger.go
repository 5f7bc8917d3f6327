package driven

import (
	"context"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// ImportLedger records import runs for later inspection. It is strictly
// an operator convenience: the importer tolerates every ledger failure,
// and nothing in the ledger feeds back into upload decisions (re-running
// an identical request re-uploads every file).
type ImportLedger interface {
	// BeginRun persists a new run row and assigns run.ID.
	BeginRun(ctx context.Context, run *domain.ImportRun) error

	// RecordFile appends one upload outcome to a run.
	RecordFile(ctx context.Context, runID string, result domain.FileResult) error

	// FinishRun stores the run's final counters and timestamps.
	FinishRun(ctx context.Context, run *domain.ImportRun) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.ImportRun, error)

	// ListFiles returns a run's per-file outcomes in upload order.
	// Returns domain.ErrNotFound for an unknown run.
	ListFiles(ctx context.Context, runID string) ([]domain.FileResult, error)

	// Close releases the underlying store.
	Close() error
}
