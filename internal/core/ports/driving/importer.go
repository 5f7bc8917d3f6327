package driving

import (
	"context"
	"time"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// ImportService runs document imports against the backend.
type ImportService interface {
	// Run resolves the request's patterns and uploads each resolved file
	// to the request's target, strictly in order, one at a time.
	//
	// The returned report always describes what actually happened, even
	// alongside a non-nil error. Run returns an error when the run could
	// not complete: resolution failure, credential failure, or a server
	// rejection. Transport failures alone do not make the run an error.
	Run(ctx context.Context, req domain.ImportRequest) (*domain.ImportReport, error)

	// Ping checks the backend is reachable and returns the round trip
	// latency.
	Ping(ctx context.Context) (time.Duration, error)
}
