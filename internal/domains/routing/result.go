package routing

import "github.com/google/uuid"

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// entryPreviewLen caps the text echoed back in ProcessedEntry for audit logs.
const entryPreviewLen = 50

// ProcessedEntry records the outcome of dispatching one entry. Slice order
// equals parse/dispatch order.
type ProcessedEntry struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	Text    string     `json:"text"`
	Tag     string     `json:"tag"`
	Success bool       `json:"success"`
}

// Result aggregates one routing invocation. Status is "success" as soon as
// at least one entry was handled; partial failure across a batch does not
// fail the whole invocation.
type Result struct {
	Status               string           `json:"status"`
	DBID                 *uuid.UUID       `json:"db_id,omitempty"`
	Tag                  string           `json:"tag"`
	AdditionalProcessing bool             `json:"additional_processing"`
	EntriesProcessed     int              `json:"entries_processed"`
	SuccessCount         int              `json:"success_count"`
	ProcessedEntries     []ProcessedEntry `json:"processed_entries"`
	Message              string           `json:"message,omitempty"`
}

func truncateText(s string) string {
	if len(s) > entryPreviewLen {
		return s[:entryPreviewLen] + "..."
	}
	return s
}
