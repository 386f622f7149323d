package storage

import (
	"context"

	"github.com/listenupapp/listenup-client/internal/models"
)

// OperationStorage persists the pending-operation queue. These methods
// are raw row operations; lifecycle rules (coalescing, status
// transitions) live in the sync queue, which is the only caller.
type OperationStorage interface {
	// InsertOperation stores a new operation
	InsertOperation(ctx context.Context, op *models.PendingOperation) error

	// UpdateOperation replaces an existing operation
	// Returns ErrOperationNotFound if the operation does not exist
	UpdateOperation(ctx context.Context, op *models.PendingOperation) error

	// DeleteOperation removes an operation
	// Returns nil if the operation does not exist (idempotent)
	DeleteOperation(ctx context.Context, id string) error

	// GetOperation retrieves an operation by ID
	// Returns ErrOperationNotFound if it does not exist
	GetOperation(ctx context.Context, id string) (*models.PendingOperation, error)

	// ListOperations returns every queued operation, oldest first
	ListOperations(ctx context.Context) ([]*models.PendingOperation, error)

	// FindPending returns the PENDING operation for (type, entityID),
	// or ErrOperationNotFound. Used for coalescing lookups and for the
	// pull guard rule.
	FindPending(ctx context.Context, opType models.OperationType, entityID string) (*models.PendingOperation, error)
}
