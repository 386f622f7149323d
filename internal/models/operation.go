package models

// OperationType identifies one kind of queued local mutation.
type OperationType string

const (
	OpBookUpdate          OperationType = "BOOK_UPDATE"
	OpSetBookContributors OperationType = "SET_BOOK_CONTRIBUTORS"
	OpSetBookSeries       OperationType = "SET_BOOK_SERIES"
	OpMergeContributor    OperationType = "MERGE_CONTRIBUTOR"
	OpListeningEvent      OperationType = "LISTENING_EVENT"
	OpPlaybackPosition    OperationType = "PLAYBACK_POSITION"
	OpUserPreferences     OperationType = "USER_PREFERENCES"
)

// OperationStatus is the queue lifecycle state of a pending operation.
// Successful operations are removed from the queue rather than kept in a
// terminal state.
type OperationStatus string

const (
	StatusPending    OperationStatus = "PENDING"
	StatusInProgress OperationStatus = "IN_PROGRESS"
	StatusFailed     OperationStatus = "FAILED"
)

// PendingOperation is one queued local mutation not yet confirmed by the
// server. Payload is the handler-serialized JSON for the operation type.
// EntityID is empty for operations not scoped to a single entity.
type PendingOperation struct {
	ID         string          `json:"id"`
	Type       OperationType   `json:"type"`
	EntityType EntityType      `json:"entity_type"`
	EntityID   string          `json:"entity_id,omitempty"`
	BatchKey   string          `json:"batch_key,omitempty"`
	Payload    []byte          `json:"payload"`
	Status     OperationStatus `json:"status"`
	LastError  string          `json:"last_error,omitempty"`
	Attempts   int             `json:"attempts"`
	CreatedAt  int64           `json:"created_at"` // unix millis
	UpdatedAt  int64           `json:"updated_at"`
}
