package models

import (
	"encoding/json"
	"time"
)

// Document is the wire envelope for one record of a remote collection. The
// body is the record's JSON form; UpdatedAt is server-maintained volatile
// metadata and is excluded from change-detection fingerprints.
type Document struct {
	ID        string          `json:"id"`
	Body      json.RawMessage `json:"body"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UserMeta is the per-user metadata marker document. Its mere existence
// distinguishes a returning user from a new one; LastSync is advanced by
// every bulk sync action.
type UserMeta struct {
	CreatedAt time.Time `json:"created_at"`
	LastSync  time.Time `json:"last_sync"`
}

// SyncAction is one of the four bulk reconciliation actions a user may choose
// at sign-in.
type SyncAction string

const (
	SyncActionUpload   SyncAction = "upload"
	SyncActionDownload SyncAction = "download"
	SyncActionMerge    SyncAction = "merge"
	SyncActionCancel   SyncAction = "cancel"
)
