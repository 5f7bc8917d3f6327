package domain

// NilChatID is the canonical nil UUID. A --chat-id equal to it is the
// same as not supplying one: the run targets the global collection.
const NilChatID = "00000000-0000-0000-0000-000000000000"

// ImportTarget is the destination document collection for a run: either
// the global collection or a single chat session's isolated collection.
// A run has exactly one target for all of its files.
type ImportTarget struct {
	chatID string
}

// GlobalTarget returns the global document collection target.
func GlobalTarget() ImportTarget {
	return ImportTarget{}
}

// ChatTarget returns the target for a chat session's collection. The id
// must already be a canonical UUID string; the nil UUID and the empty
// string both mean the global collection.
func ChatTarget(chatID string) ImportTarget {
	if chatID == NilChatID {
		return ImportTarget{}
	}
	return ImportTarget{chatID: chatID}
}

// IsGlobal returns true when the target is the global collection.
func (t ImportTarget) IsGlobal() bool {
	return t.chatID == ""
}

// ChatID returns the session id, or the empty string for the global
// collection.
func (t ImportTarget) ChatID() string {
	return t.chatID
}

// DocumentsPath returns the ingestion endpoint path for this target.
func (t ImportTarget) DocumentsPath() string {
	if t.IsGlobal() {
		return "/documents"
	}
	return "/chats/" + t.chatID + "/documents"
}

// String returns a human-readable destination description.
func (t ImportTarget) String() string {
	if t.IsGlobal() {
		return "global collection"
	}
	return "chat " + t.chatID
}
