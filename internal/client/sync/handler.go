package sync

import (
	"context"
	"fmt"

	"github.com/listenupapp/listenup-client/internal/models"
)

// Handler executes one operation type against the server. The queue
// dispatches by operation type through a registry, so adding a new
// mutation type means adding a handler, not touching queue logic.
type Handler interface {
	// Type is the operation type this handler serves
	Type() models.OperationType

	// TryCoalesce merges an incoming payload into an existing PENDING
	// payload for the same (type, entityID). ok=false means the two
	// cannot be merged and the caller queues a separate operation.
	// "Not coalescable" is a designed outcome, not an error.
	TryCoalesce(existing, incoming []byte) (merged []byte, ok bool, err error)

	// Execute performs the server round-trip for one operation. On
	// success the server owns the payload; local entity state is
	// updated by the handler before returning.
	Execute(ctx context.Context, op *models.PendingOperation) error

	// ExecuteBatch submits a group of operations sharing a batch key.
	// The result maps operation ID to its outcome. Handlers without a
	// batch endpoint fan out to Execute.
	ExecuteBatch(ctx context.Context, ops []*models.PendingOperation) map[string]error

	// BatchKey groups operations for ExecuteBatch; empty means the
	// operation is executed on its own.
	BatchKey(op *models.PendingOperation) string

	// Visible reports whether operations of this type count toward the
	// user-facing pending badge. Background types (listening events,
	// positions, preferences) are silent.
	Visible() bool

	// Describe renders a short human-readable label for the operation,
	// shown by the sync indicator while it is in flight.
	Describe(op *models.PendingOperation) string
}

// Registry is the operationType -> Handler lookup the queue consults.
type Registry struct {
	handlers map[models.OperationType]Handler
}

// NewRegistry builds a registry from the given handlers.
func NewRegistry(handlers ...Handler) *Registry {
	r := &Registry{handlers: make(map[models.OperationType]Handler, len(handlers))}
	for _, h := range handlers {
		r.handlers[h.Type()] = h
	}
	return r
}

// Get returns the handler for an operation type.
func (r *Registry) Get(opType models.OperationType) (Handler, error) {
	h, ok := r.handlers[opType]
	if !ok {
		return nil, fmt.Errorf("no handler registered for operation type %s", opType)
	}
	return h, nil
}

// executeSequential is the ExecuteBatch fallback for handlers without a
// batch endpoint.
func executeSequential(ctx context.Context, h Handler, ops []*models.PendingOperation) map[string]error {
	results := make(map[string]error, len(ops))
	for _, op := range ops {
		if ctx.Err() != nil {
			results[op.ID] = ctx.Err()
			continue
		}
		results[op.ID] = h.Execute(ctx, op)
	}
	return results
}
