package sync

import (
	"context"
)

// FailedOperationInfo is one FAILED operation as shown in the error
// detail view, with the intents available on it.
type FailedOperationInfo struct {
	ID          string
	Description string
	Error       string
	Attempts    int
}

// IndicatorState is the full sync indicator snapshot: spinner, pending
// badge and error badge in one struct, so the UI renders from a single
// consistent read.
type IndicatorState struct {
	IsSyncing        bool
	CurrentOperation string
	PendingCount     int
	Failed           []FailedOperationInfo
	HasErrors        bool
}

// StatusObserver derives indicator snapshots from the queue and the
// service, and relays change notifications to the UI layer.
type StatusObserver struct {
	service *Service
}

func NewStatusObserver(service *Service) *StatusObserver {
	return &StatusObserver{service: service}
}

// Subscribe returns a channel that ticks whenever the indicator may
// have changed. Re-read State after each tick. The returned func
// unsubscribes.
func (o *StatusObserver) Subscribe() (<-chan struct{}, func()) {
	return o.service.queue.Subscribe()
}

// State reads one consistent indicator snapshot.
func (o *StatusObserver) State(ctx context.Context) (*IndicatorState, error) {
	q := o.service.queue

	state := &IndicatorState{
		IsSyncing: o.service.Syncing(),
	}
	if cur := q.Current(); cur != nil {
		state.CurrentOperation = q.Describe(cur)
	}

	pending, err := q.PendingCount(ctx)
	if err != nil {
		return nil, err
	}
	state.PendingCount = pending

	failed, err := q.FailedOperations(ctx)
	if err != nil {
		return nil, err
	}
	for _, op := range failed {
		state.Failed = append(state.Failed, FailedOperationInfo{
			ID:          op.ID,
			Description: q.Describe(op),
			Error:       op.LastError,
			Attempts:    op.Attempts,
		})
	}
	state.HasErrors = len(state.Failed) > 0
	return state, nil
}

// Retry requeues one failed operation.
func (o *StatusObserver) Retry(ctx context.Context, opID string) error {
	return o.service.queue.Retry(ctx, opID)
}

// RetryAll requeues every failed operation.
func (o *StatusObserver) RetryAll(ctx context.Context) error {
	return o.service.queue.RetryAll(ctx)
}

// Dismiss discards one failed operation and flags its entity for
// resync.
func (o *StatusObserver) Dismiss(ctx context.Context, opID string) error {
	return o.service.queue.Dismiss(ctx, opID)
}

// DismissAll discards every failed operation.
func (o *StatusObserver) DismissAll(ctx context.Context) error {
	return o.service.queue.DismissAll(ctx)
}
