package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/careercopilot/ccimport/internal/core/ports/driven"
	"github.com/careercopilot/ccimport/internal/logger"
)

// coalesceInterval is the minimum gap between emissions for the same
// path. Editors produce bursts of events for a single save; only the
// first event in a burst triggers an import.
const coalesceInterval = 2 * time.Second

// Watcher implements ChangeWatcher on fsnotify.
type Watcher struct{}

// Ensure Watcher implements the ChangeWatcher interface.
var _ driven.ChangeWatcher = (*Watcher)(nil)

// NewWatcher creates a filesystem change watcher.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Watch emits the paths of created or modified regular files directly
// under dir until ctx is cancelled. Both returned channels close when
// watching stops.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan string, <-chan error, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	paths := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(paths)
		defer close(errs)
		defer fw.Close()

		// One limiter per path coalesces event bursts.
		limiters := make(map[string]*rate.Limiter)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				path, accept := handleEvent(event)
				if !accept {
					continue
				}

				limiter, exists := limiters[path]
				if !exists {
					limiter = rate.NewLimiter(rate.Every(coalesceInterval), 1)
					limiters[path] = limiter
				}
				if !limiter.Allow() {
					logger.Debug("coalesced event for %s", path)
					continue
				}

				select {
				case paths <- path:
				case <-ctx.Done():
					return
				}

			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				default:
				}
			}
		}
	}()

	return paths, errs, nil
}

// handleEvent decides whether an fsnotify event should trigger an
// import. Only Create and Write on visible regular files qualify:
// removals and renames leave nothing to upload, and Chmod carries no
// content change.
func handleEvent(event fsnotify.Event) (string, bool) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return "", false
	}
	if isHidden(event.Name) {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}

	return event.Name, true
}

// isHidden reports whether any path element starts with a dot.
// The relative elements "." and ".." do not count.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}
