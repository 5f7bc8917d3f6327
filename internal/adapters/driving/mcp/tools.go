package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

const defaultHistoryLimit = 10

// ImportInput is the input schema for the import_documents tool.
type ImportInput struct {
	Files  []string `json:"files" jsonschema:"file paths or wildcard patterns to upload"`
	ChatID string   `json:"chat_id,omitempty" jsonschema:"chat session UUID; empty targets the global collection"`
}

// ImportOutput is the output schema for the import_documents tool.
type ImportOutput struct {
	Results  []FileResultOutput `json:"results"`
	Resolved int                `json:"resolved"`
	Uploaded int                `json:"uploaded"`
	Rejected int                `json:"rejected"`
	Failed   int                `json:"failed"`
	Aborted  bool               `json:"aborted"`
}

// FileResultOutput is one attempted upload in an import result.
type FileResultOutput struct {
	Path       string `json:"path"`
	Outcome    string `json:"outcome"`
	StatusCode int    `json:"status_code,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

// HistoryInput is the input schema for the import_history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of runs to return (default 10)"`
}

// HistoryOutput is the output schema for the import_history tool.
type HistoryOutput struct {
	Runs  []RunOutput `json:"runs"`
	Count int         `json:"count"`
}

// RunOutput is one recorded import run.
type RunOutput struct {
	ID        string `json:"id"`
	ChatID    string `json:"chat_id,omitempty"`
	StartedAt string `json:"started_at"`
	Resolved  int    `json:"resolved"`
	Uploaded  int    `json:"uploaded"`
	Rejected  int    `json:"rejected"`
	Failed    int    `json:"failed"`
	Aborted   bool   `json:"aborted"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "import_documents",
		Description: "Upload local files into the Career Copilot document collection, optionally scoped to a chat session",
	}, s.handleImportDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "import_history",
		Description: "List recent import runs with their per-file outcome counts",
	}, s.handleImportHistory)
}

// handleImportDocuments handles the import_documents tool invocation. A
// server rejection is an outcome of the run, so it surfaces in the result;
// only failures that prevented the run from starting become tool errors.
func (s *Server) handleImportDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ImportInput,
) (*mcp.CallToolResult, ImportOutput, error) {
	chatID, err := parseChatID(input.ChatID)
	if err != nil {
		return nil, ImportOutput{}, err
	}

	report, err := s.ports.Importer.Run(ctx, domain.ImportRequest{
		Patterns: input.Files,
		ChatID:   chatID,
	})
	if err != nil {
		if _, rejected := domain.AsRejection(err); !rejected {
			return nil, ImportOutput{}, err
		}
	}

	output := ImportOutput{
		Results:  make([]FileResultOutput, len(report.Results)),
		Resolved: report.Resolved,
		Uploaded: report.Uploaded,
		Rejected: report.Rejected,
		Failed:   report.Failed,
		Aborted:  report.Aborted,
	}
	for i, res := range report.Results {
		output.Results[i] = FileResultOutput{
			Path:       res.Path,
			Outcome:    res.Outcome.String(),
			StatusCode: res.StatusCode,
			Detail:     res.Detail,
		}
	}

	return nil, output, nil
}

// handleImportHistory handles the import_history tool invocation.
func (s *Server) handleImportHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	if s.ports.History == nil {
		return nil, HistoryOutput{}, domain.ErrHistoryDisabled
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	runs, err := s.ports.History.Runs(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Runs:  make([]RunOutput, len(runs)),
		Count: len(runs),
	}
	for i, run := range runs {
		output.Runs[i] = RunOutput{
			ID:        run.ID,
			ChatID:    run.ChatID,
			StartedAt: run.StartedAt.Format(time.RFC3339),
			Resolved:  run.Resolved,
			Uploaded:  run.Uploaded,
			Rejected:  run.Rejected,
			Failed:    run.Failed,
			Aborted:   run.Aborted,
		}
	}

	return nil, output, nil
}

// parseChatID validates the chat_id argument. The empty string and the
// nil UUID both select the global collection.
func parseChatID(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid chat_id %q: %w", raw, err)
	}
	if id == uuid.Nil {
		return "", nil
	}
	return id.String(), nil
}
