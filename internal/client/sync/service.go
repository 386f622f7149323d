package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
)

// ErrSyncInProgress is returned when a sync round is requested while
// another one is still running.
var ErrSyncInProgress = errors.New("sync already in progress")

// SyncResult summarizes one full sync round.
type SyncResult struct {
	// Pushed is the number of queued operations confirmed by the server
	Pushed int
	// PullIssues holds non-critical pull failures; the round still
	// counts as successful when only these occurred
	PullIssues error
}

// Service runs full sync rounds: drain the pending-operation queue
// first so local intent reaches the server, then pull server deltas
// down. At most one round runs at a time.
type Service struct {
	queue   *Queue
	pullers []Puller
	token   TokenSource
	logger  *slog.Logger

	syncing atomic.Bool
}

func NewService(queue *Queue, pullers []Puller, token TokenSource, logger *slog.Logger) *Service {
	return &Service{
		queue:   queue,
		pullers: pullers,
		token:   token,
		logger:  logger,
	}
}

// Syncing reports whether a sync round is currently running.
func (s *Service) Syncing() bool {
	return s.syncing.Load()
}

// Queue exposes the pending-operation queue for enqueue and for the
// retry/dismiss intents.
func (s *Service) Queue() *Queue {
	return s.queue
}

// Sync runs one push-then-pull round. Individual push failures do not
// abort the round (those operations are FAILED and kept for retry or
// dismiss); an unreachable server does, since pulling would fail the
// same way. A critical pull failure fails the round; non-critical pull
// failures land in SyncResult.PullIssues.
func (s *Service) Sync(ctx context.Context, onProgress ProgressFunc) (*SyncResult, error) {
	if !s.syncing.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer func() {
		s.syncing.Store(false)
		s.queue.notify()
	}()
	s.queue.notify()

	result := &SyncResult{}

	onProgress.report(Progress{Phase: "push", Total: -1, Message: "Uploading local changes"})
	pushed, err := s.queue.Drain(ctx)
	result.Pushed = pushed
	if err != nil {
		return result, err
	}

	token, err := s.token(ctx)
	if err != nil {
		return result, err
	}

	if err := PullAll(ctx, s.pullers, token, onProgress, s.logger); err != nil {
		if isCriticalPullFailure(err) {
			return result, err
		}
		result.PullIssues = err
	}

	s.logger.Info("sync round complete", "pushed", result.Pushed)
	return result, nil
}

// Pull runs the pull half only. Used for the initial full sync after
// login, before any local edits exist.
func (s *Service) Pull(ctx context.Context, onProgress ProgressFunc) error {
	if !s.syncing.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer func() {
		s.syncing.Store(false)
		s.queue.notify()
	}()
	s.queue.notify()

	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	err = PullAll(ctx, s.pullers, token, onProgress, s.logger)
	if err != nil && isCriticalPullFailure(err) {
		return err
	}
	return nil
}

// isCriticalPullFailure distinguishes an aborted pull (a critical
// domain failed, returned alone) from the joined soft errors PullAll
// returns for non-critical domains.
func isCriticalPullFailure(err error) bool {
	if err == nil {
		return false
	}
	var j interface{ Unwrap() []error }
	return !errors.As(err, &j)
}
