package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for ccimport resources.
	uriScheme = "ccimport://"

	// resourceRunLimit caps how many runs the runs resource returns.
	resourceRunLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing recorded runs.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recent import runs recorded in the history ledger",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	// Template for one run's per-file outcomes.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}/files",
		Name:        "run-files",
		Description: "Per-file upload outcomes of a recorded import run",
		MIMEType:    "application/json",
	}, s.handleRunFilesResource)
}

// handleRunsResource returns the most recent recorded import runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	runs, err := s.ports.History.Runs(ctx, resourceRunLimit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	// Build simplified run list.
	type runInfo struct {
		ID        string `json:"id"`
		Target    string `json:"target"`
		StartedAt string `json:"started_at"`
		Resolved  int    `json:"resolved"`
		Uploaded  int    `json:"uploaded"`
		Rejected  int    `json:"rejected"`
		Failed    int    `json:"failed"`
		Aborted   bool   `json:"aborted"`
	}

	infos := make([]runInfo, len(runs))
	for i, run := range runs {
		infos[i] = runInfo{
			ID:        run.ID,
			Target:    run.Target().String(),
			StartedAt: run.StartedAt.Format(time.RFC3339),
			Resolved:  run.Resolved,
			Uploaded:  run.Uploaded,
			Rejected:  run.Rejected,
			Failed:    run.Failed,
			Aborted:   run.Aborted,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling runs: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRunFilesResource returns the per-file outcomes of one run.
func (s *Server) handleRunFilesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract runId from URI: ccimport://runs/{runId}/files
	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	files, err := s.ports.History.RunFiles(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("listing run files: %w", err)
	}

	// Build simplified outcome list.
	type fileInfo struct {
		Path       string `json:"path"`
		Outcome    string `json:"outcome"`
		StatusCode int    `json:"status_code,omitempty"`
		Detail     string `json:"detail,omitempty"`
	}

	infos := make([]fileInfo, len(files))
	for i := range files {
		infos[i] = fileInfo{
			Path:       files[i].Path,
			Outcome:    files[i].Outcome.String(),
			StatusCode: files[i].StatusCode,
			Detail:     files[i].Detail,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling run files: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like ccimport://runs/{runId}/files.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"
	const suffix = "/files"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	id := strings.TrimSuffix(uri, suffix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
