package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// mockWatcher implements driven.ChangeWatcher with a scripted path feed.
type mockWatcher struct {
	paths    chan string
	errs     chan error
	startErr error
}

func newMockWatcher() *mockWatcher {
	return &mockWatcher{
		paths: make(chan string, 8),
		errs:  make(chan error, 8),
	}
}

func (m *mockWatcher) Watch(_ context.Context, _ string) (<-chan string, <-chan error, error) {
	if m.startErr != nil {
		return nil, nil, m.startErr
	}
	return m.paths, m.errs, nil
}

// mockImporter implements driving.ImportService, recording run requests.
type mockImporter struct {
	requests []domain.ImportRequest
	runErr   error
}

func (m *mockImporter) Run(_ context.Context, req domain.ImportRequest) (*domain.ImportReport, error) {
	m.requests = append(m.requests, req)
	if m.runErr != nil {
		return nil, m.runErr
	}
	return &domain.ImportReport{Resolved: 1, Uploaded: 1}, nil
}

func (m *mockImporter) Ping(_ context.Context) (time.Duration, error) {
	return 0, nil
}

func TestWatchService_Watch(t *testing.T) {
	t.Run("imports changed files until cancelled", func(t *testing.T) {
		watcher := newMockWatcher()
		importer := &mockImporter{}
		svc := NewWatchService(watcher, importer)

		watcher.paths <- "/data/a.txt"
		watcher.paths <- "/data/b.txt"
		close(watcher.paths)

		err := svc.Watch(context.Background(), domain.WatchRequest{
			Dir:    "/data",
			ChatID: "11111111-1111-1111-1111-111111111111",
		})

		require.NoError(t, err)
		require.Len(t, importer.requests, 2)
		assert.Equal(t, []string{"/data/a.txt"}, importer.requests[0].Patterns)
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", importer.requests[0].ChatID)
	})

	t.Run("glob filters by base name", func(t *testing.T) {
		watcher := newMockWatcher()
		importer := &mockImporter{}
		svc := NewWatchService(watcher, importer)

		watcher.paths <- "/data/report.pdf"
		watcher.paths <- "/data/scratch.tmp"
		close(watcher.paths)

		err := svc.Watch(context.Background(), domain.WatchRequest{Dir: "/data", Glob: "*.pdf"})

		require.NoError(t, err)
		require.Len(t, importer.requests, 1)
		assert.Equal(t, []string{"/data/report.pdf"}, importer.requests[0].Patterns)
	})

	t.Run("import failures do not stop watching", func(t *testing.T) {
		watcher := newMockWatcher()
		importer := &mockImporter{runErr: errors.New("server rejected upload: 400 Bad Request")}
		svc := NewWatchService(watcher, importer)

		watcher.paths <- "/data/a.txt"
		watcher.paths <- "/data/b.txt"
		close(watcher.paths)

		err := svc.Watch(context.Background(), domain.WatchRequest{Dir: "/data"})

		require.NoError(t, err)
		assert.Len(t, importer.requests, 2)
	})

	t.Run("cancelled context stops cleanly", func(t *testing.T) {
		watcher := newMockWatcher()
		svc := NewWatchService(watcher, &mockImporter{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := svc.Watch(ctx, domain.WatchRequest{Dir: "/data"})

		assert.NoError(t, err)
	})

	t.Run("watcher errors are tolerated", func(t *testing.T) {
		watcher := newMockWatcher()
		importer := &mockImporter{}
		svc := NewWatchService(watcher, importer)

		watcher.errs <- errors.New("inotify overflow")
		watcher.paths <- "/data/a.txt"
		close(watcher.paths)
		close(watcher.errs)

		err := svc.Watch(context.Background(), domain.WatchRequest{Dir: "/data"})

		require.NoError(t, err)
		assert.Len(t, importer.requests, 1)
	})

	t.Run("missing directory is invalid input", func(t *testing.T) {
		svc := NewWatchService(newMockWatcher(), &mockImporter{})

		err := svc.Watch(context.Background(), domain.WatchRequest{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("malformed glob is rejected up front", func(t *testing.T) {
		svc := NewWatchService(newMockWatcher(), &mockImporter{})

		err := svc.Watch(context.Background(), domain.WatchRequest{Dir: "/data", Glob: "["})

		assert.ErrorIs(t, err, domain.ErrBadPattern)
	})

	t.Run("watcher start failure is propagated", func(t *testing.T) {
		watcher := newMockWatcher()
		watcher.startErr = errors.New("no such directory")
		svc := NewWatchService(watcher, &mockImporter{})

		err := svc.Watch(context.Background(), domain.WatchRequest{Dir: "/data"})

		assert.Error(t, err)
	})
}
