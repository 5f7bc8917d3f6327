// Package sqlite implements the ImportLedger port on a local SQLite
// database. The ledger records runs and per-file outcomes for the
// history command; it never feeds back into upload decisions, and the
// importer tolerates every ledger failure.
package sqlite
