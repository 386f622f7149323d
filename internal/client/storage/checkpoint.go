package storage

import "context"

// Sync checkpoint domains. One checkpoint per delta-sync domain.
const (
	CheckpointBooks        = "books"
	CheckpointContributors = "contributors"
	CheckpointSeries       = "series"
	CheckpointProgress     = "progress"
)

// CheckpointStorage persists last-sync timestamps per sync domain.
// Written only by the pull orchestrator after a delta is fully applied.
type CheckpointStorage interface {
	// SaveCheckpoint records the server timestamp of the last applied delta
	SaveCheckpoint(ctx context.Context, domain string, timestamp int64) error

	// GetCheckpoint retrieves the last checkpoint for a domain.
	// Returns 0 if no sync has been performed yet.
	GetCheckpoint(ctx context.Context, domain string) (int64, error)

	// ClearCheckpoint removes a checkpoint to force a full resync
	ClearCheckpoint(ctx context.Context, domain string) error
}
