package services

import (
	"context"
	"fmt"
	"time"

	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driven"
	"github.com/careercopilot/ccimport/internal/core/ports/driving"
	"github.com/careercopilot/ccimport/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// ImportService coordinates one import run: resolve the file arguments,
// acquire a credential at most once, then upload each file in order.
// Execution is strictly sequential; nothing here parallelises, batches or
// reorders uploads.
type ImportService struct {
	ingestor driven.DocumentIngestor
	tokens   driven.TokenProvider
	ledger   driven.ImportLedger
	reporter driven.ImportReporter
}

// NewImportService creates the import orchestrator.
// tokens is nil when the authentication mode is None - no identity call
// is ever made and no Authorization header is sent. ledger is nil when
// history recording is disabled.
func NewImportService(
	ingestor driven.DocumentIngestor,
	tokens driven.TokenProvider,
	ledger driven.ImportLedger,
	reporter driven.ImportReporter,
) *ImportService {
	return &ImportService{
		ingestor: ingestor,
		tokens:   tokens,
		ledger:   ledger,
		reporter: reporter,
	}
}

// Run executes one import. The returned report describes what actually
// happened even when the error is non-nil.
//
// Failure semantics, preserved from the tool this client talks to:
// resolution and credential failures abort before any upload; a server
// rejection (non-2xx) aborts the remainder of the run; a transport
// failure skips only its own file.
func (s *ImportService) Run(ctx context.Context, req domain.ImportRequest) (*domain.ImportReport, error) {
	if len(req.Patterns) == 0 {
		return nil, fmt.Errorf("%w: no files specified", domain.ErrInvalidInput)
	}

	// 1. Resolve arguments to concrete files. A missing literal path
	// stops the run here, before any identity call or upload.
	files, err := ResolveFiles(req.Patterns)
	if err != nil {
		return nil, fmt.Errorf("resolve files: %w", err)
	}

	report := &domain.ImportReport{Resolved: len(files)}

	// 2. Announce the resolved count before the first upload.
	s.reporter.RunStarted(files)
	if len(files) == 0 {
		return report, nil
	}

	// 3. Acquire the bearer token, once for the whole run, only when a
	// provider is configured.
	var token string
	if s.tokens != nil {
		token, err = s.tokens.GetToken(ctx)
		if err != nil {
			return report, fmt.Errorf("acquire token: %w", err)
		}
		logger.Debug("Acquired bearer token via %s login", s.tokens.AuthMethod())
	}

	// 4. Compute the destination once; every file in the run shares it.
	target := req.Target()
	logger.Info("Uploading %d file(s) to %s", len(files), target)

	// 5. Open the ledger run. Recording is best effort and never
	// influences upload behaviour.
	run := s.beginRun(ctx, req.ChatID, len(files))

	// 6. Upload sequentially, in resolution order.
	for _, file := range files {
		if ctx.Err() != nil {
			s.finishRun(ctx, run, report)
			return report, ctx.Err()
		}

		err := s.ingestor.Upload(ctx, target, file, token)
		switch rej, rejected := domain.AsRejection(err); {
		case err == nil:
			s.reporter.FileUploaded(file)
			s.record(ctx, run, report, domain.FileResult{
				Path:    file.Path,
				Outcome: domain.OutcomeUploaded,
			})

		case rejected:
			// The server answered and said no. Stop the run: files
			// already uploaded stay uploaded, the rest are never
			// attempted.
			s.reporter.FileRejected(file, rej)
			s.record(ctx, run, report, domain.FileResult{
				Path:       file.Path,
				Outcome:    domain.OutcomeRejected,
				StatusCode: rej.StatusCode,
				Detail:     rej.Reason,
			})
			report.Aborted = true
			s.finishRun(ctx, run, report)
			return report, fmt.Errorf("upload %s: %w", file.Name, rej)

		default:
			// The request never got an answer. Only this file is lost;
			// the run moves on.
			s.reporter.FileFailed(file, err)
			s.record(ctx, run, report, domain.FileResult{
				Path:    file.Path,
				Outcome: domain.OutcomeFailed,
				Detail:  err.Error(),
			})
		}
	}

	// 7. Close out the ledger run.
	s.finishRun(ctx, run, report)
	return report, nil
}

// Ping checks the backend ingestion endpoint is reachable.
func (s *ImportService) Ping(ctx context.Context) (time.Duration, error) {
	return s.ingestor.Ping(ctx)
}

// beginRun opens a ledger row for the run. With no ledger configured, or
// a ledger that fails, the run proceeds unrecorded.
func (s *ImportService) beginRun(ctx context.Context, chatID string, resolved int) *domain.ImportRun {
	run := &domain.ImportRun{
		ChatID:    chatID,
		StartedAt: time.Now().UTC(),
		Resolved:  resolved,
	}
	if s.ledger == nil {
		return run
	}
	if err := s.ledger.BeginRun(ctx, run); err != nil {
		logger.Warn("Could not record import run: %v", err)
		run.ID = ""
	}
	return run
}

// record appends the result to the in-memory report and, when a ledger
// row exists, to the ledger.
func (s *ImportService) record(ctx context.Context, run *domain.ImportRun, report *domain.ImportReport, res domain.FileResult) {
	report.Record(res)
	if s.ledger == nil || run.ID == "" {
		return
	}
	if err := s.ledger.RecordFile(ctx, run.ID, res); err != nil {
		logger.Warn("Could not record outcome for %s: %v", res.Path, err)
	}
}

// finishRun stores the run's final counters.
func (s *ImportService) finishRun(ctx context.Context, run *domain.ImportRun, report *domain.ImportReport) {
	if s.ledger == nil || run.ID == "" {
		return
	}
	run.FinishedAt = time.Now().UTC()
	run.Uploaded = report.Uploaded
	run.Rejected = report.Rejected
	run.Failed = report.Failed
	run.Aborted = report.Aborted
	if err := s.ledger.FinishRun(ctx, run); err != nil {
		logger.Warn("Could not finalise import run: %v", err)
	}
}
