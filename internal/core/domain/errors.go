package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFileNotFound indicates a literal (non-wildcard) file argument
	// does not exist on disk. Resolution fails fast on it: the run
	// aborts before any upload is attempted.
	ErrFileNotFound = errors.New("file does not exist")

	// ErrBadPattern indicates a wildcard argument is not a valid glob.
	ErrBadPattern = errors.New("malformed wildcard pattern")

	// ErrAuthFailed indicates interactive credential acquisition failed.
	// The run aborts before any upload is attempted.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNoTerminal indicates an interactive flow was requested without
	// a terminal attached to stdin.
	ErrNoTerminal = errors.New("interactive login requires a terminal")

	// ErrHistoryDisabled indicates the import history ledger is turned
	// off in configuration.
	ErrHistoryDisabled = errors.New("import history is disabled")
)

// UploadRejectedError reports a non-2xx response from the ingestion
// endpoint. A rejection aborts the remainder of the run: files already
// uploaded stay uploaded, files after the rejected one are never attempted.
// This is deliberately different from a transport failure, which is
// recoverable at file granularity.
type UploadRejectedError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Reason is the status reason phrase.
	Reason string

	// Body is the verbatim response body.
	Body string
}

// Error implements the error interface.
func (e *UploadRejectedError) Error() string {
	return fmt.Sprintf("server rejected upload: %d %s", e.StatusCode, e.Reason)
}

// AsRejection unwraps err into an UploadRejectedError, if it is one.
func AsRejection(err error) (*UploadRejectedError, bool) {
	var rej *UploadRejectedError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
