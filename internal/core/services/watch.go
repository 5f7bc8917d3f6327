package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driven"
	"github.com/careercopilot/ccimport/internal/core/ports/driving"
	"github.com/careercopilot/ccimport/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService imports files as they change on disk. Each change triggers
// an ordinary single-file import run. Runs are issued one at a time from
// the event loop, so watch mode never uploads concurrently.
type WatchService struct {
	watcher  driven.ChangeWatcher
	importer driving.ImportService
}

// NewWatchService creates a new watch service.
func NewWatchService(watcher driven.ChangeWatcher, importer driving.ImportService) *WatchService {
	return &WatchService{
		watcher:  watcher,
		importer: importer,
	}
}

// Watch blocks until ctx is cancelled, importing files as they are
// created or modified under req.Dir. A cancelled context is a normal
// stop, not an error.
func (s *WatchService) Watch(ctx context.Context, req domain.WatchRequest) error {
	if req.Dir == "" {
		return fmt.Errorf("%w: watch directory required", domain.ErrInvalidInput)
	}
	if req.Glob != "" {
		if _, err := filepath.Match(req.Glob, "probe"); err != nil {
			return fmt.Errorf("%w: %s", domain.ErrBadPattern, req.Glob)
		}
	}

	paths, errs, err := s.watcher.Watch(ctx, req.Dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", req.Dir, err)
	}

	logger.Info("Watching %s for new and changed files", req.Dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("Watcher error: %v", err)

		case path, ok := <-paths:
			if !ok {
				return nil
			}
			if req.Glob != "" {
				if match, _ := filepath.Match(req.Glob, filepath.Base(path)); !match {
					logger.Debug("Skipping %s: does not match %s", path, req.Glob)
					continue
				}
			}
			s.importOne(ctx, path, req.ChatID)
		}
	}
}

// importOne triggers a single-file run. The run narrates its own outcome;
// failures (including server rejections) stop only that run, never the
// watch loop.
func (s *WatchService) importOne(ctx context.Context, path, chatID string) {
	logger.Debug("Change detected: %s", path)
	if _, err := s.importer.Run(ctx, domain.ImportRequest{
		Patterns: []string{path},
		ChatID:   chatID,
	}); err != nil {
		logger.Warn("Import of %s did not complete: %v", path, err)
	}
}
