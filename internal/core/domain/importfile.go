package domain

// ImportFile is a concrete file produced by resolving a path or wildcard
// argument. Resolution guarantees the path named an existing regular file
// at resolution time.
type ImportFile struct {
	// Path is the file as given (literal) or as expanded (wildcard).
	Path string

	// Name is the base name, used in user-facing output and the form part.
	Name string

	// Size is the file size in bytes at resolution time.
	Size int64
}

// ImportRequest describes one import run: the pattern list exactly as
// supplied by the operator, and the destination session.
type ImportRequest struct {
	// Patterns are literal paths or wildcard patterns, in argument order.
	Patterns []string

	// ChatID routes uploads to a chat session's collection. It is either
	// empty (global collection) or a canonical UUID string; driving
	// adapters validate and normalise it before building the request.
	ChatID string
}

// Target returns the destination collection for the request.
func (r ImportRequest) Target() ImportTarget {
	return ChatTarget(r.ChatID)
}
