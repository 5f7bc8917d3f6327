package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// receivePath waits for one path emission or fails the test.
func receivePath(t *testing.T, paths <-chan string) string {
	t.Helper()

	select {
	case path, ok := <-paths:
		require.True(t, ok, "paths channel closed unexpectedly")
		return path
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for a watch event")
		return ""
	}
}

// TestWatcherEmitsNewFiles verifies that creating a file in the watched
// directory emits its path.
func TestWatcherEmitsNewFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := NewWatcher().Watch(ctx, dir)
	require.NoError(t, err)

	target := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(target, []byte("content"), 0o644))

	assert.Equal(t, target, receivePath(t, paths))
}

// TestWatcherSkipsHiddenFiles verifies dotfiles never emit.
func TestWatcherSkipsHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := NewWatcher().Watch(ctx, dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".swap.txt"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	visible := filepath.Join(dir, "visible.txt")
	require.NoError(t, os.WriteFile(visible, []byte("x"), 0o644))

	// The first emission must be the visible file, not the dotfile.
	assert.Equal(t, visible, receivePath(t, paths))
}

// TestWatcherSkipsDirectories verifies directory creation never emits.
func TestWatcherSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := NewWatcher().Watch(ctx, dir)
	require.NoError(t, err)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
	time.Sleep(200 * time.Millisecond)
	file := filepath.Join(dir, "after.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.Equal(t, file, receivePath(t, paths))
}

// TestWatcherCoalescesBursts verifies rapid writes to one path emit
// only once.
func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := NewWatcher().Watch(ctx, dir)
	require.NoError(t, err)

	target := filepath.Join(dir, "notes.txt")
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte("draft"), 0o644))
		time.Sleep(50 * time.Millisecond)
	}

	assert.Equal(t, target, receivePath(t, paths))

	// The burst follow-ups fall inside the coalescing window.
	select {
	case path := <-paths:
		t.Fatalf("expected the burst to coalesce, got a second emission for %s", path)
	case <-time.After(500 * time.Millisecond):
	}
}

// TestWatcherStopsOnCancel verifies cancellation closes the channels.
func TestWatcherStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	paths, _, err := NewWatcher().Watch(ctx, t.TempDir())
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-paths:
		assert.False(t, ok, "paths channel should close on cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for the watcher to stop")
	}
}

// TestWatcherMissingDirectory verifies watching a nonexistent directory
// fails up front.
func TestWatcherMissingDirectory(t *testing.T) {
	_, _, err := NewWatcher().Watch(context.Background(), filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
}

// TestHandleEvent tests event classification across operations and
// file kinds.
func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name      string
		setupFile bool
		setupDir  bool
		hidden    bool
		op        fsnotify.Op
		accept    bool
	}{
		{name: "create file", setupFile: true, op: fsnotify.Create, accept: true},
		{name: "write file", setupFile: true, op: fsnotify.Write, accept: true},
		{name: "combined write and chmod", setupFile: true, op: fsnotify.Write | fsnotify.Chmod, accept: true},
		{name: "remove leaves nothing to upload", op: fsnotify.Remove, accept: false},
		{name: "rename leaves nothing to upload", op: fsnotify.Rename, accept: false},
		{name: "chmod carries no content", setupFile: true, op: fsnotify.Chmod, accept: false},
		{name: "directory create", setupDir: true, op: fsnotify.Create, accept: false},
		{name: "hidden file create", setupFile: true, hidden: true, op: fsnotify.Create, accept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()

			name := "test.txt"
			if tt.hidden {
				name = ".test.txt"
			}
			eventPath := filepath.Join(dir, name)

			switch {
			case tt.setupDir:
				eventPath = filepath.Join(dir, "testdir")
				require.NoError(t, os.Mkdir(eventPath, 0o755))
			case tt.setupFile:
				require.NoError(t, os.WriteFile(eventPath, []byte("content"), 0o644))
			}

			path, accept := handleEvent(fsnotify.Event{Name: eventPath, Op: tt.op})

			assert.Equal(t, tt.accept, accept)
			if tt.accept {
				assert.Equal(t, eventPath, path)
			}
		})
	}
}

// TestIsHidden tests dot-prefix detection across path shapes.
func TestIsHidden(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{".hidden", true},
		{"path/to/.hidden", true},
		{"/path/.hidden/file.txt", true},
		{"dir/.git/config", true},
		{"file.txt", false},
		{"path/to/file.txt", false},
		{"file.hidden", false},
		{".", false},
		{"..", false},
		{"path/./file", false},
		{"path/../file", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, isHidden(tt.path))
		})
	}
}
