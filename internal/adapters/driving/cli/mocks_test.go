package cli

import (
	"context"
	"time"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// mockImportService implements driving.ImportService for testing.
type mockImportService struct {
	report  *domain.ImportReport
	runErr  error
	latency time.Duration
	pingErr error

	runCalls    int
	lastRequest domain.ImportRequest
}

func (m *mockImportService) Run(_ context.Context, req domain.ImportRequest) (*domain.ImportReport, error) {
	m.runCalls++
	m.lastRequest = req
	if m.report == nil {
		return &domain.ImportReport{}, m.runErr
	}
	return m.report, m.runErr
}

func (m *mockImportService) Ping(_ context.Context) (time.Duration, error) {
	return m.latency, m.pingErr
}

// mockHistoryService implements driving.HistoryService for testing.
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

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.Settings
	err      error
	saveErr  error
	path     string

	saved *domain.Settings
}

func (m *mockSettingsService) Current(_ context.Context) (domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ context.Context, settings domain.Settings) error {
	m.saved = &settings
	return m.saveErr
}

func (m *mockSettingsService) ConfigPath() string {
	return m.path
}

// mockWatchService implements driving.WatchService for testing.
type mockWatchService struct {
	err error

	watchCalls  int
	lastRequest domain.WatchRequest
}

func (m *mockWatchService) Watch(_ context.Context, req domain.WatchRequest) error {
	m.watchCalls++
	m.lastRequest = req
	return m.err
}

// setupTestServices swaps every command service for a default mock and
// returns a cleanup that restores the originals.
func setupTestServices() func() {
	oldImport := importService
	oldHistory := historyService
	oldSettings := settingsService
	oldWatch := watchService

	importService = &mockImportService{
		report: &domain.ImportReport{
			Results:  []domain.FileResult{{Path: "a.txt", Outcome: domain.OutcomeUploaded}},
			Resolved: 1,
			Uploaded: 1,
		},
	}
	historyService = &mockHistoryService{}
	settingsService = &mockSettingsService{
		settings: domain.DefaultSettings(),
		path:     "/home/user/.ccimport/config.toml",
	}
	watchService = &mockWatchService{}

	return func() {
		importService = oldImport
		historyService = oldHistory
		settingsService = oldSettings
		watchService = oldWatch
	}
}
