package domain

import "time"

// ImportRun is one recorded invocation of the importer. The ledger is an
// operator convenience: it never influences upload behaviour, and in
// particular performs no deduplication against prior runs.
type ImportRun struct {
	// ID is the run's UUID, assigned by the ledger when the run begins.
	ID string

	// ChatID is the target session, empty for the global collection.
	ChatID string

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time

	// Resolved is how many files resolution produced.
	Resolved int

	// Uploaded, Rejected and Failed count per-file outcomes.
	Uploaded int
	Rejected int
	Failed   int

	// Aborted is true when a server rejection cut the run short.
	Aborted bool
}

// Target returns the run's destination collection.
func (r ImportRun) Target() ImportTarget {
	return ChatTarget(r.ChatID)
}

// Attempted returns how many uploads the run issued.
func (r ImportRun) Attempted() int {
	return r.Uploaded + r.Rejected + r.Failed
}
