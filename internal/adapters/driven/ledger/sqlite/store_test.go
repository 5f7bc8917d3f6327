package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// setupTestStore creates a temporary ledger for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

// beginTestRun starts a run with the given chat target and file count.
func beginTestRun(t *testing.T, store *Store, chatID string, resolved int) *domain.ImportRun {
	t.Helper()

	run := &domain.ImportRun{ChatID: chatID, Resolved: resolved}
	require.NoError(t, store.BeginRun(context.Background(), run))
	return run
}

// TestNewStore verifies database creation, including parent directories.
func TestNewStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

	store, err := NewStore(path)

	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, path, store.Path())
}

// TestNewStoreReopen verifies migrations are idempotent across opens.
func TestNewStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	beginTestRun(t, store, "", 1)
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

// TestBeginRun verifies ID assignment and the initial row.
func TestBeginRun(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	run := &domain.ImportRun{ChatID: "7f1d8cbd-330e-4a1a-9c0b-9a4d3f6e2b11", Resolved: 3}
	require.NoError(t, store.BeginRun(ctx, run))

	// The ledger assigns a UUID and a start time.
	_, err := uuid.Parse(run.ID)
	assert.NoError(t, err)
	assert.False(t, run.StartedAt.IsZero())

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, run.ChatID, runs[0].ChatID)
	assert.Equal(t, 3, runs[0].Resolved)
	assert.True(t, runs[0].FinishedAt.IsZero(), "unfinished run has no finish time")
}

// TestFinishRun verifies counters and finish time are persisted, and
// that finishing an unknown run fails with ErrNotFound.
func TestFinishRun(t *testing.T) {
	t.Run("persists final counters", func(t *testing.T) {
		store := setupTestStore(t)
		ctx := context.Background()

		run := beginTestRun(t, store, "", 3)
		run.Uploaded = 1
		run.Rejected = 1
		run.Aborted = true
		require.NoError(t, store.FinishRun(ctx, run))

		runs, err := store.ListRuns(ctx, 10)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, 1, runs[0].Uploaded)
		assert.Equal(t, 1, runs[0].Rejected)
		assert.Equal(t, 0, runs[0].Failed)
		assert.True(t, runs[0].Aborted)
		assert.False(t, runs[0].FinishedAt.IsZero())
		assert.Equal(t, 2, runs[0].Attempted())
	})

	t.Run("unknown run", func(t *testing.T) {
		store := setupTestStore(t)

		err := store.FinishRun(context.Background(), &domain.ImportRun{ID: uuid.New().String()})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// TestListRuns verifies ordering and the limit.
func TestListRuns(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	var ids []string
	for i := 0; i < 3; i++ {
		run := &domain.ImportRun{StartedAt: base.Add(time.Duration(i) * time.Minute), Resolved: 1}
		require.NoError(t, store.BeginRun(ctx, run))
		ids = append(ids, run.ID)
	}

	t.Run("newest first", func(t *testing.T) {
		runs, err := store.ListRuns(ctx, 10)

		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, ids[2], runs[0].ID)
		assert.Equal(t, ids[1], runs[1].ID)
		assert.Equal(t, ids[0], runs[2].ID)
		assert.WithinDuration(t, base.Add(2*time.Minute), runs[0].StartedAt, time.Second)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		runs, err := store.ListRuns(ctx, 2)

		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, ids[2], runs[0].ID)
	})

	t.Run("empty ledger", func(t *testing.T) {
		empty := setupTestStore(t)

		runs, err := empty.ListRuns(ctx, 10)

		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}

// TestRecordAndListFiles verifies per-file outcomes round-trip in
// upload order.
func TestRecordAndListFiles(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	run := beginTestRun(t, store, "", 3)

	results := []domain.FileResult{
		{Path: "/docs/a.pdf", Outcome: domain.OutcomeUploaded},
		{Path: "/docs/b.pdf", Outcome: domain.OutcomeFailed, Detail: "connection refused"},
		{Path: "/docs/c.pdf", Outcome: domain.OutcomeRejected, StatusCode: 413, Detail: "Request Entity Too Large"},
	}
	for _, res := range results {
		require.NoError(t, store.RecordFile(ctx, run.ID, res))
	}

	listed, err := store.ListFiles(ctx, run.ID)

	require.NoError(t, err)
	assert.Equal(t, results, listed)
}

// TestListFilesUnknownRun verifies the unknown-run and empty-run cases
// are distinguished.
func TestListFilesUnknownRun(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("unknown run", func(t *testing.T) {
		_, err := store.ListFiles(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("run with no attempts", func(t *testing.T) {
		run := beginTestRun(t, store, "", 0)

		listed, err := store.ListFiles(ctx, run.ID)

		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}

// TestFilesBelongToTheirRun verifies results do not leak across runs.
func TestFilesBelongToTheirRun(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first := beginTestRun(t, store, "", 1)
	second := beginTestRun(t, store, "", 1)
	require.NoError(t, store.RecordFile(ctx, first.ID, domain.FileResult{Path: "/a.txt", Outcome: domain.OutcomeUploaded}))
	require.NoError(t, store.RecordFile(ctx, second.ID, domain.FileResult{Path: "/b.txt", Outcome: domain.OutcomeUploaded}))

	listed, err := store.ListFiles(ctx, second.ID)

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "/b.txt", listed[0].Path)
}
