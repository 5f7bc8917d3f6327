package driven

import (
	"context"
	"time"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// DocumentIngestor sends files to the backend's document ingestion
// endpoint.
type DocumentIngestor interface {
	// Upload posts one file to the target collection as multipart form
	// data, attaching token as a bearer credential when it is non-empty.
	//
	// A non-2xx response returns *domain.UploadRejectedError carrying the
	// status, reason and verbatim body. Any failure before a status line
	// was received (dial, DNS, unreadable file) returns an ordinary
	// wrapped error; callers treat those as per-file transport failures.
	//
	// Uploads have no upper bound on duration. Large documents may take
	// arbitrarily long to transfer and be parsed server-side, so the
	// request deliberately carries no timeout; cancellation is the
	// context's business.
	Upload(ctx context.Context, target domain.ImportTarget, file domain.ImportFile, token string) error

	// Ping checks the backend is reachable and returns the round trip
	// latency. Unlike Upload it uses a short bounded timeout.
	Ping(ctx context.Context) (time.Duration, error)
}
