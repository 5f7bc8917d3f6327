package driven

import "context"

// ChangeWatcher emits paths of files created or modified under a watched
// directory. Implementations filter out directories, hidden files and
// event bursts; consumers decide what to do with each path.
type ChangeWatcher interface {
	// Watch starts watching dir until ctx is cancelled. The first channel
	// carries changed file paths, the second watcher-level errors. Both
	// close when the watcher stops.
	Watch(ctx context.Context, dir string) (<-chan string, <-chan error, error)
}
