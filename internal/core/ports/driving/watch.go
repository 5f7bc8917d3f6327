package driving

import (
	"context"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// WatchService imports files as they change on disk.
type WatchService interface {
	// Watch blocks, importing each created or modified file under the
	// request's directory through the standard sequential run pipeline,
	// until ctx is cancelled. Individual import failures (including
	// server rejections) are reported and watching continues.
	Watch(ctx context.Context, req domain.WatchRequest) error
}
