package domain

// WatchRequest describes a watch-mode session: import files as they are
// created or modified under Dir.
type WatchRequest struct {
	// Dir is the directory to watch.
	Dir string

	// Glob optionally filters changed files by base name
	// (filepath.Match syntax). Empty matches everything.
	Glob string

	// ChatID routes triggered imports, with the same semantics as
	// ImportRequest.ChatID.
	ChatID string
}

// Target returns the destination collection for triggered imports.
func (r WatchRequest) Target() ImportTarget {
	return ChatTarget(r.ChatID)
}
