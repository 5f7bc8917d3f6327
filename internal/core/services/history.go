package services

import (
	"context"
	"fmt"

	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driven"
	"github.com/careercopilot/ccimport/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// defaultRunLimit caps how many runs a listing returns when the caller
// does not say.
const defaultRunLimit = 20

// HistoryService exposes recorded import runs.
type HistoryService struct {
	ledger driven.ImportLedger
}

// NewHistoryService creates a new history service. ledger may be nil when
// history is disabled; queries then fail with domain.ErrHistoryDisabled.
func NewHistoryService(ledger driven.ImportLedger) *HistoryService {
	return &HistoryService{ledger: ledger}
}

// Runs returns the most recent runs, newest first.
func (s *HistoryService) Runs(ctx context.Context, limit int) ([]domain.ImportRun, error) {
	if s.ledger == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = defaultRunLimit
	}
	runs, err := s.ledger.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// RunFiles returns one run's per-file outcomes in upload order.
func (s *HistoryService) RunFiles(ctx context.Context, runID string) ([]domain.FileResult, error) {
	if s.ledger == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if runID == "" {
		return nil, fmt.Errorf("%w: run id required", domain.ErrInvalidInput)
	}
	files, err := s.ledger.ListFiles(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("list run files: %w", err)
	}
	return files, nil
}
