package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/careercopilot/ccimport/internal/adapters/driven/ledger/sqlite/migrations"
	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driven"
)

// Ensure Store implements the ImportLedger interface.
var _ driven.ImportLedger = (*Store)(nil)

// Store is the SQLite-backed import ledger.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the ledger database at dbPath.
// If dbPath is empty, defaults to ~/.ccimport/history.db.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ccimport", "history.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Runs ====================

// BeginRun persists a new run row and assigns its ID.
func (s *Store) BeginRun(ctx context.Context, run *domain.ImportRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO import_runs (id, chat_id, started_at, resolved)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.ChatID, run.StartedAt, run.Resolved)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// FinishRun stores the run's final counters and finish time.
func (s *Store) FinishRun(ctx context.Context, run *domain.ImportRun) error {
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE import_runs
		SET finished_at = ?, uploaded = ?, rejected = ?, failed = ?, aborted = ?
		WHERE id = ?
	`, run.FinishedAt, run.Uploaded, run.Rejected, run.Failed, run.Aborted, run.ID)
	if err != nil {
		return fmt.Errorf("updating run: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.ImportRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, chat_id, started_at, finished_at, resolved, uploaded, rejected, failed, aborted
		FROM import_runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ImportRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// scanRun reads one import_runs row.
func scanRun(rows *sql.Rows) (domain.ImportRun, error) {
	var (
		run      domain.ImportRun
		finished sql.NullTime
	)
	err := rows.Scan(
		&run.ID, &run.ChatID, &run.StartedAt, &finished,
		&run.Resolved, &run.Uploaded, &run.Rejected, &run.Failed, &run.Aborted,
	)
	if err != nil {
		return domain.ImportRun{}, fmt.Errorf("scanning run: %w", err)
	}
	if finished.Valid {
		run.FinishedAt = finished.Time
	}
	return run, nil
}

// ==================== Files ====================

// RecordFile appends one upload outcome to a run.
func (s *Store) RecordFile(ctx context.Context, runID string, result domain.FileResult) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO import_files (run_id, path, outcome, status_code, detail)
		VALUES (?, ?, ?, ?, ?)
	`, runID, result.Path, result.Outcome.String(), result.StatusCode, result.Detail)
	if err != nil {
		return fmt.Errorf("inserting file result: %w", err)
	}
	return nil
}

// ListFiles returns a run's per-file outcomes in upload order.
func (s *Store) ListFiles(ctx context.Context, runID string) ([]domain.FileResult, error) {
	// Distinguish an unknown run from a run with no attempts.
	var exists int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM import_runs WHERE id = ?", runID)
	if err := row.Scan(&exists); err != nil {
		return nil, fmt.Errorf("checking run: %w", err)
	}
	if exists == 0 {
		return nil, domain.ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, outcome, status_code, detail
		FROM import_files
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying file results: %w", err)
	}
	defer rows.Close()

	var results []domain.FileResult
	for rows.Next() {
		var (
			res     domain.FileResult
			outcome string
		)
		if err := rows.Scan(&res.Path, &outcome, &res.StatusCode, &res.Detail); err != nil {
			return nil, fmt.Errorf("scanning file result: %w", err)
		}
		res.Outcome = domain.UploadOutcome(outcome)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating file results: %w", err)
	}

	return results, nil
}
