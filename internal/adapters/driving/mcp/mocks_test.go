package mcp

import (
	"context"
	"time"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// mockImportService is a mock implementation of driving.ImportService.
type mockImportService struct {
	report  *domain.ImportReport
	runErr  error
	latency time.Duration
	pingErr error

	runCalls    int
	lastRequest domain.ImportRequest
}

func (m *mockImportService) Run(
	_ context.Context,
	req domain.ImportRequest,
) (*domain.ImportReport, error) {
	m.runCalls++
	m.lastRequest = req
	return m.report, m.runErr
}

func (m *mockImportService) Ping(_ context.Context) (time.Duration, error) {
	return m.latency, m.pingErr
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs  []domain.ImportRun
	files []domain.FileResult
	err   error

	lastLimit int
	lastRunID string
}

func (m *mockHistoryService) Runs(_ context.Context, limit int) ([]domain.ImportRun, error) {
	m.lastLimit = limit
	return m.runs, m.err
}

func (m *mockHistoryService) RunFiles(_ context.Context, runID string) ([]domain.FileResult, error) {
	m.lastRunID = runID
	return m.files, m.err
}
