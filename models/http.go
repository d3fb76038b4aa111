package models

// SetDocumentRequest is the body of a point write. When Merge is true the
// server overlays the body's top-level fields onto the existing document
// instead of replacing it wholesale.
type SetDocumentRequest struct {
	Document Document `json:"document"`
	Merge    bool     `json:"merge,omitempty"`
}

// BatchWriteEntry addresses one document inside a batched multi-collection
// write.
type BatchWriteEntry struct {
	Collection string   `json:"collection"`
	Document   Document `json:"document"`
}

// BatchWriteRequest is an atomic multi-document write. Either every entry is
// applied or none is.
type BatchWriteRequest struct {
	Entries []BatchWriteEntry `json:"entries"`
	Length  int               `json:"length"`
}

// ListDocumentsResponse is the full listing of one collection.
type ListDocumentsResponse struct {
	Documents []Document `json:"documents"`
	Length    int        `json:"length"`
}

// SnapshotEvent is one message of the live-subscription stream: the full
// state of a collection after a server-side mutation.
type SnapshotEvent struct {
	Collection string     `json:"collection"`
	Documents  []Document `json:"documents"`
}
