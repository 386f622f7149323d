package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

// Queue is the pending-operation queue. Every local mutation is written
// to local storage first and enqueued here; the queue owns the
// operation lifecycle (coalescing on enqueue, PENDING -> IN_PROGRESS ->
// removed-or-FAILED on drain) and broadcasts every change so the sync
// indicator stays current.
type Queue struct {
	ops      storage.OperationStorage
	registry *Registry
	resyncer Resyncer
	retry    RetryConfig
	logger   *slog.Logger
	now      func() time.Time

	// mu serializes enqueue so two concurrent edits of the same entity
	// cannot both miss the coalesce lookup and insert duplicates.
	mu sync.Mutex

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int

	// current is the operation being pushed right now, for the
	// indicator. Guarded by curMu.
	curMu   sync.Mutex
	current *models.PendingOperation
}

func NewQueue(
	ops storage.OperationStorage,
	registry *Registry,
	resyncer Resyncer,
	retry RetryConfig,
	logger *slog.Logger,
) *Queue {
	return &Queue{
		ops:      ops,
		registry: registry,
		resyncer: resyncer,
		retry:    retry,
		logger:   logger,
		now:      time.Now,
		subs:     make(map[int]chan struct{}),
	}
}

// Subscribe returns a channel that receives a tick whenever the queue
// changes. The returned func unsubscribes.
func (q *Queue) Subscribe() (<-chan struct{}, func()) {
	q.subMu.Lock()
	defer q.subMu.Unlock()

	id := q.nextSub
	q.nextSub++
	ch := make(chan struct{}, 1)
	q.subs[id] = ch

	return ch, func() {
		q.subMu.Lock()
		defer q.subMu.Unlock()
		delete(q.subs, id)
	}
}

func (q *Queue) notify() {
	q.subMu.Lock()
	defer q.subMu.Unlock()
	for _, ch := range q.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Enqueue records a local mutation for later push. If a PENDING
// operation of the same type already targets the entity and the
// handler can merge the two intents, the existing operation is updated
// in place instead of inserting a second row.
func (q *Queue) Enqueue(ctx context.Context, opType models.OperationType, entityType models.EntityType, entityID string, payload []byte) (*models.PendingOperation, error) {
	handler, err := q.registry.Get(opType)
	if err != nil {
		return nil, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if entityID != "" {
		existing, err := q.ops.FindPending(ctx, opType, entityID)
		switch {
		case err == nil:
			merged, ok, mergeErr := handler.TryCoalesce(existing.Payload, payload)
			if mergeErr != nil {
				return nil, fmt.Errorf("failed to coalesce operation: %w", mergeErr)
			}
			if ok {
				existing.Payload = merged
				existing.UpdatedAt = q.now().UnixMilli()
				if err := q.ops.UpdateOperation(ctx, existing); err != nil {
					return nil, err
				}
				q.logger.Debug("coalesced operation",
					"type", opType, "entity_id", entityID, "op_id", existing.ID)
				q.notify()
				return existing, nil
			}
		case !errors.Is(err, storage.ErrOperationNotFound):
			return nil, err
		}
	}

	nowMillis := q.now().UnixMilli()
	op := &models.PendingOperation{
		ID:         uuid.NewString(),
		Type:       opType,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    payload,
		Status:     models.StatusPending,
		CreatedAt:  nowMillis,
		UpdatedAt:  nowMillis,
	}
	op.BatchKey = handler.BatchKey(op)

	if err := q.ops.InsertOperation(ctx, op); err != nil {
		return nil, err
	}
	q.logger.Debug("enqueued operation", "type", opType, "entity_id", entityID, "op_id", op.ID)
	q.notify()
	return op, nil
}

// Drain pushes every PENDING operation to the server, oldest first.
// Operations sharing a batch key are submitted together. A failure
// that survives the retry loop marks the operation FAILED and draining
// continues, except that an unreachable server stops the drain so the
// untouched operations keep their PENDING status for the next round.
// Returns the number of operations confirmed by the server.
func (q *Queue) Drain(ctx context.Context) (int, error) {
	all, err := q.ops.ListOperations(ctx)
	if err != nil {
		return 0, err
	}

	pushed := 0
	done := make(map[string]bool)
	for _, op := range all {
		if op.Status != models.StatusPending || done[op.ID] {
			continue
		}
		handler, err := q.registry.Get(op.Type)
		if err != nil {
			// An unknown type cannot make progress; surface it
			q.markFailed(ctx, op, err)
			continue
		}

		group := []*models.PendingOperation{op}
		if key := handler.BatchKey(op); key != "" {
			group = group[:0]
			for _, other := range all {
				if other.Status == models.StatusPending && !done[other.ID] &&
					other.Type == op.Type && handler.BatchKey(other) == key {
					group = append(group, other)
				}
			}
		}
		for _, member := range group {
			done[member.ID] = true
		}

		n, err := q.push(ctx, handler, group)
		pushed += n
		if err != nil {
			return pushed, err
		}
	}
	return pushed, nil
}

// push submits one operation or one batch group, retrying transient
// failures. A returned error means the drain should stop.
func (q *Queue) push(ctx context.Context, handler Handler, stale []*models.PendingOperation) (int, error) {
	// Re-read each row under the enqueue lock before claiming it. The
	// drain snapshot may predate a coalesce, and pushing the stale
	// payload would drop the merged edit.
	q.mu.Lock()
	group := make([]*models.PendingOperation, 0, len(stale))
	for _, snap := range stale {
		op, err := q.ops.GetOperation(ctx, snap.ID)
		if err != nil {
			if errors.Is(err, storage.ErrOperationNotFound) {
				continue
			}
			q.mu.Unlock()
			return 0, err
		}
		if op.Status != models.StatusPending {
			continue
		}
		op.Status = models.StatusInProgress
		op.Attempts++
		op.UpdatedAt = q.now().UnixMilli()
		if err := q.ops.UpdateOperation(ctx, op); err != nil {
			q.mu.Unlock()
			return 0, err
		}
		group = append(group, op)
	}
	q.mu.Unlock()
	if len(group) == 0 {
		return 0, nil
	}

	q.setCurrent(group[0])
	q.notify()
	defer func() {
		q.setCurrent(nil)
		q.notify()
	}()

	remaining := group
	pushed := 0
	onRetry := func(attempt, maxAttempts int) {
		q.logger.Info("retrying push",
			"type", group[0].Type, "attempt", attempt, "max_attempts", maxAttempts)
	}

	_, err := WithRetry(ctx, q.retry, onRetry, func(ctx context.Context) (struct{}, error) {
		results := handler.ExecuteBatch(ctx, remaining)

		var next []*models.PendingOperation
		var transient error
		for _, op := range remaining {
			opErr := results[op.ID]
			switch {
			case opErr == nil:
				if err := q.ops.DeleteOperation(ctx, op.ID); err != nil {
					return struct{}{}, err
				}
				pushed++
			case errors.Is(opErr, context.Canceled) || ctx.Err() != nil:
				// Not the operation's fault; the retry loop rethrows
				// and the tail below restores it to PENDING
				next = append(next, op)
				transient = opErr
			case !IsRetryable(opErr):
				q.markFailed(ctx, op, opErr)
			default:
				next = append(next, op)
				transient = opErr
			}
		}
		remaining = next
		if transient != nil {
			return struct{}{}, transient
		}
		return struct{}{}, nil
	})

	if err == nil {
		return pushed, nil
	}

	// A cancelled drain never charges the operations; they return to
	// PENDING for the next round. Everything else, unreachable server
	// included, exhausted its retries and is FAILED with the cause
	// recorded for the failed-operations list.
	cancelled := errors.Is(err, context.Canceled) || ctx.Err() != nil
	for _, op := range remaining {
		if cancelled {
			op.Status = models.StatusPending
			op.UpdatedAt = q.now().UnixMilli()
			if uerr := q.ops.UpdateOperation(ctx, op); uerr != nil {
				q.logger.Error("failed to restore operation to pending", "op_id", op.ID, "error", uerr)
			}
		} else {
			q.markFailed(ctx, op, err)
		}
	}
	// Stop the drain when the server is down so the later operations
	// do not each burn a full retry loop against it.
	if cancelled || IsServerUnreachable(err) {
		return pushed, err
	}
	return pushed, nil
}

func (q *Queue) markFailed(ctx context.Context, op *models.PendingOperation, cause error) {
	op.Status = models.StatusFailed
	op.LastError = cause.Error()
	op.UpdatedAt = q.now().UnixMilli()
	if err := q.ops.UpdateOperation(ctx, op); err != nil {
		q.logger.Error("failed to mark operation failed", "op_id", op.ID, "error", err)
	}
	q.logger.Warn("operation failed",
		"type", op.Type, "entity_id", op.EntityID, "op_id", op.ID, "error", cause)
	q.notify()
}

// Retry returns a FAILED operation to PENDING so the next drain
// attempts it again.
func (q *Queue) Retry(ctx context.Context, opID string) error {
	op, err := q.ops.GetOperation(ctx, opID)
	if err != nil {
		return err
	}
	if op.Status != models.StatusFailed {
		return fmt.Errorf("operation %s is not failed", opID)
	}
	op.Status = models.StatusPending
	op.LastError = ""
	op.UpdatedAt = q.now().UnixMilli()
	if err := q.ops.UpdateOperation(ctx, op); err != nil {
		return err
	}
	q.notify()
	return nil
}

// RetryAll returns every FAILED operation to PENDING.
func (q *Queue) RetryAll(ctx context.Context) error {
	all, err := q.ops.ListOperations(ctx)
	if err != nil {
		return err
	}
	for _, op := range all {
		if op.Status != models.StatusFailed {
			continue
		}
		op.Status = models.StatusPending
		op.LastError = ""
		op.UpdatedAt = q.now().UnixMilli()
		if err := q.ops.UpdateOperation(ctx, op); err != nil {
			return err
		}
	}
	q.notify()
	return nil
}

// Dismiss discards an operation and flags its entity for resync, so
// the abandoned local edit is replaced by server truth on the next
// pull. Any status can be dismissed; the user is giving up the intent
// either way.
func (q *Queue) Dismiss(ctx context.Context, opID string) error {
	op, err := q.ops.GetOperation(ctx, opID)
	if err != nil {
		return err
	}
	if err := q.ops.DeleteOperation(ctx, opID); err != nil {
		return err
	}
	if err := q.resyncer.MarkForResync(ctx, op); err != nil {
		return err
	}
	q.notify()
	return nil
}

// DismissAll discards every FAILED operation.
func (q *Queue) DismissAll(ctx context.Context) error {
	all, err := q.ops.ListOperations(ctx)
	if err != nil {
		return err
	}
	for _, op := range all {
		if op.Status != models.StatusFailed {
			continue
		}
		if err := q.ops.DeleteOperation(ctx, op.ID); err != nil {
			return err
		}
		if err := q.resyncer.MarkForResync(ctx, op); err != nil {
			return err
		}
	}
	q.notify()
	return nil
}

// HasPendingFor reports whether any queued operation of the given type
// still targets the entity. Pull mergers consult this to keep an
// unconfirmed local intent from being overwritten by server state.
func (q *Queue) HasPendingFor(ctx context.Context, opType models.OperationType, entityID string) (bool, error) {
	_, err := q.ops.FindPending(ctx, opType, entityID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, storage.ErrOperationNotFound) {
		return false, nil
	}
	return false, err
}

// VisibleOperations returns the queued operations that count toward the
// user-facing badge, oldest first.
func (q *Queue) VisibleOperations(ctx context.Context) ([]*models.PendingOperation, error) {
	all, err := q.ops.ListOperations(ctx)
	if err != nil {
		return nil, err
	}
	var visible []*models.PendingOperation
	for _, op := range all {
		handler, err := q.registry.Get(op.Type)
		if err != nil || !handler.Visible() {
			continue
		}
		visible = append(visible, op)
	}
	return visible, nil
}

// FailedOperations returns every FAILED operation, oldest first.
func (q *Queue) FailedOperations(ctx context.Context) ([]*models.PendingOperation, error) {
	all, err := q.ops.ListOperations(ctx)
	if err != nil {
		return nil, err
	}
	var failed []*models.PendingOperation
	for _, op := range all {
		if op.Status == models.StatusFailed {
			failed = append(failed, op)
		}
	}
	return failed, nil
}

// PendingCount is the number of visible operations awaiting push.
func (q *Queue) PendingCount(ctx context.Context) (int, error) {
	visible, err := q.VisibleOperations(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, op := range visible {
		if op.Status != models.StatusFailed {
			n++
		}
	}
	return n, nil
}

// Describe renders the indicator label for an operation.
func (q *Queue) Describe(op *models.PendingOperation) string {
	handler, err := q.registry.Get(op.Type)
	if err != nil {
		return string(op.Type)
	}
	return handler.Describe(op)
}

func (q *Queue) setCurrent(op *models.PendingOperation) {
	q.curMu.Lock()
	q.current = op
	q.curMu.Unlock()
}

// Current returns the operation being pushed right now, or nil.
func (q *Queue) Current() *models.PendingOperation {
	q.curMu.Lock()
	defer q.curMu.Unlock()
	return q.current
}
