// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentIngestor: Uploads files to the backend ingestion endpoint
//   - ImportReporter: Narrates the run to the operator
//   - SettingsStore: Configuration persistence
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TokenProvider: Bearer token acquisition. Nil when the configured
//     authentication mode is None; no identity provider is contacted and
//     no Authorization header is sent.
//   - ImportLedger: Run history recording. Nil when history is disabled;
//     ledger failures never affect upload behaviour either way.
//   - ChangeWatcher: Filesystem change feed for watch mode.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
