package domain

// UploadOutcome classifies what happened to a single file's upload.
type UploadOutcome string

// Per-file outcomes. They are independent: one file's failure never rolls
// back another file's success.
const (
	// OutcomeUploaded means the endpoint accepted the file (2xx).
	OutcomeUploaded UploadOutcome = "uploaded"

	// OutcomeRejected means the endpoint answered with a non-2xx status.
	// A rejection aborts the remainder of the run.
	OutcomeRejected UploadOutcome = "rejected"

	// OutcomeFailed means the request never produced a response
	// (connection refused, DNS failure, unreadable file). The run
	// continues with the next file.
	OutcomeFailed UploadOutcome = "failed"
)

// IsValid returns true if the outcome is recognised.
func (o UploadOutcome) IsValid() bool {
	switch o {
	case OutcomeUploaded, OutcomeRejected, OutcomeFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o UploadOutcome) String() string {
	return string(o)
}

// Description returns a human-readable description of the outcome.
func (o UploadOutcome) Description() string {
	switch o {
	case OutcomeUploaded:
		return "Uploaded"
	case OutcomeRejected:
		return "Rejected by server"
	case OutcomeFailed:
		return "Transport failure"
	default:
		return unknownDescription
	}
}

// FileResult is the outcome of one attempted upload.
type FileResult struct {
	// Path is the resolved file path.
	Path string

	// Outcome classifies the attempt.
	Outcome UploadOutcome

	// StatusCode is the HTTP status for rejections, zero otherwise.
	StatusCode int

	// Detail carries the rejection reason and body, or the transport
	// error text. Empty on success.
	Detail string
}

// ImportReport collects the per-file outcomes of one run, in upload order.
type ImportReport struct {
	// Results holds one entry per attempted upload.
	Results []FileResult

	// Resolved is how many files resolution produced.
	Resolved int

	// Uploaded, Rejected and Failed count outcomes among Results.
	Uploaded int
	Rejected int
	Failed   int

	// Aborted is true when a rejection stopped the run before every
	// resolved file was attempted.
	Aborted bool
}

// Attempted returns how many uploads were actually issued.
func (r *ImportReport) Attempted() int {
	return len(r.Results)
}

// Record appends a result and updates the counters.
func (r *ImportReport) Record(res FileResult) {
	r.Results = append(r.Results, res)
	switch res.Outcome {
	case OutcomeUploaded:
		r.Uploaded++
	case OutcomeRejected:
		r.Rejected++
	case OutcomeFailed:
		r.Failed++
	}
}
