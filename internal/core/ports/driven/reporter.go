package driven

import "github.com/careercopilot/ccimport/internal/core/domain"

// ImportReporter narrates an import run to the operator. It is a port so
// entrypoints choose the medium (console lines, MCP tool output, a test
// recorder) without the orchestrator knowing the difference.
//
// Calls arrive strictly in run order: RunStarted once after resolution,
// then exactly one File* call per attempted upload.
type ImportReporter interface {
	// RunStarted reports the resolved file count before any upload.
	RunStarted(files []domain.ImportFile)

	// FileUploaded reports a per-file success confirmation.
	FileUploaded(file domain.ImportFile)

	// FileRejected reports a non-2xx response: status code, reason
	// phrase and response body. The run stops after this call.
	FileRejected(file domain.ImportFile, rej *domain.UploadRejectedError)

	// FileFailed reports a transport-level failure. The run continues
	// with the next file after this call.
	FileFailed(file domain.ImportFile, err error)
}
