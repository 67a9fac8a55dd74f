package logs

import (
	"time"
)

// ID tipe untuk LogFile
type LogID string

// Kind enum, dari ekstensi file yang diupload
type Kind string

const (
	KindText Kind = "txt"
	KindLog  Kind = "log"
	KindPcap Kind = "pcap"
)

// Status enum
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusAnalyzed   Status = "analyzed"
	StatusFailed     Status = "failed"
)

// Aggregate Root: LogFile
type LogFile struct {
	ID         LogID     `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	Kind       Kind      `json:"type"`
	Status     Status    `json:"status"`
	StorageURL string    `json:"storage_url,omitempty"`
	Snippet    string    `json:"content,omitempty"` // truncated content for listing/search
	UploadedAt time.Time `json:"uploadDate"`
}

// SnippetLimit caps how much raw content is kept on the entity; full
// content lives in object storage.
const SnippetLimit = 1000

// Truncate returns s cut to SnippetLimit with an ellipsis marker.
func Truncate(s string) string {
	if len(s) <= SnippetLimit {
		return s
	}
	return s[:SnippetLimit] + "..."
}
