// Package mcp provides a Model Context Protocol server adapter for ccimport.
// It lets AI assistants trigger document imports and browse recorded runs
// over stdio or streamable HTTP transports.
package mcp

import "errors"

// ErrMissingImportService is returned when the import service is not provided.
var ErrMissingImportService = errors.New("mcp: import service is required")
