// Package backend implements the document ingestion client for the
// Career Copilot web API. It is the driven adapter behind the
// DocumentIngestor port: multipart uploads to the documents endpoints
// and a health probe.
package backend
