package backend

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driven"
	"github.com/careercopilot/ccimport/internal/logger"
)

// formFieldName is the multipart field the ingestion endpoint reads
// the upload from. It is a wire contract shared with the backend, not
// a configuration value.
const formFieldName = "formFile"

// pingTimeout bounds the health probe. Uploads are deliberately
// unbounded; the probe is not.
const pingTimeout = 10 * time.Second

// Client uploads documents to the Career Copilot backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// Ensure Client implements the DocumentIngestor interface.
var _ driven.DocumentIngestor = (*Client)(nil)

// NewClient creates an ingestion client for the backend at serviceURI.
// The underlying HTTP client carries no timeout: a single upload may
// take arbitrarily long to transfer and be parsed server side, and the
// run waits for each file before starting the next.
func NewClient(serviceURI string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serviceURI, "/"),
		client:  &http.Client{Timeout: 0},
	}
}

// Upload posts one file to the target collection as multipart/form-data.
// A response outside the 2xx range is returned as a
// *domain.UploadRejectedError carrying the status and the verbatim
// response body; any failure before a status line arrives is returned
// as a plain error.
func (c *Client) Upload(ctx context.Context, target domain.ImportTarget, file domain.ImportFile, token string) error {
	f, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", file.Path, err)
	}
	defer f.Close()

	// Stream the multipart body through a pipe instead of buffering it:
	// document files can be large.
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		part, err := form.CreateFormFile(formFieldName, file.Name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	url := c.baseURL + target.DocumentsPath()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug("POST %s (%s, %d bytes)", url, file.Name, file.Size)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.UploadRejectedError{
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
			Body:       string(body),
		}
	}

	return nil
}

// Ping checks the backend health endpoint and reports the round-trip
// latency.
func (c *Client) Ping(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("backend unhealthy: %s", resp.Status)
	}

	return time.Since(start), nil
}

// reasonPhrase extracts the textual part of the HTTP status line, e.g.
// "Payload Too Large" out of "413 Payload Too Large".
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	return strings.TrimSpace(reason)
}
