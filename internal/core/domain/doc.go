// Package domain defines the core business entities for ccimport.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ImportFile: A concrete file resolved from a path or glob argument
//   - ImportTarget: The destination document collection for a run
//   - FileResult: The tri-state outcome of a single upload
//   - ImportReport: The ordered per-file outcomes of one import run
//   - Settings: The immutable tool configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
