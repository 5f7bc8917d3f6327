package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// MockHistoryService implements driving.HistoryService for testing.
type MockHistoryService struct {
	RunsFunc     func(ctx context.Context, limit int) ([]domain.ImportRun, error)
	RunFilesFunc func(ctx context.Context, runID string) ([]domain.FileResult, error)
}

func (m *MockHistoryService) Runs(ctx context.Context, limit int) ([]domain.ImportRun, error) {
	if m.RunsFunc != nil {
		return m.RunsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockHistoryService) RunFiles(ctx context.Context, runID string) ([]domain.FileResult, error) {
	if m.RunFilesFunc != nil {
		return m.RunFilesFunc(ctx, runID)
	}
	return nil, nil
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		History: &MockHistoryService{},
	}

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_MissingHistory(t *testing.T) {
	ports := &Ports{}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingHistoryService)
}
