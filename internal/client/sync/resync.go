package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

// Resyncer restores server truth for an entity after its queued local
// edit was discarded.
type Resyncer interface {
	MarkForResync(ctx context.Context, op *models.PendingOperation) error
}

// EntityResyncer flags a dismissed operation's entity NOT_SYNCED and
// clears the domain checkpoint so the next pull refetches the full
// domain and overwrites the abandoned local edit.
type EntityResyncer struct {
	books        storage.BookStorage
	contributors storage.ContributorStorage
	series       storage.SeriesStorage
	checkpoints  storage.CheckpointStorage
}

func NewEntityResyncer(
	books storage.BookStorage,
	contributors storage.ContributorStorage,
	series storage.SeriesStorage,
	checkpoints storage.CheckpointStorage,
) *EntityResyncer {
	return &EntityResyncer{
		books:        books,
		contributors: contributors,
		series:       series,
		checkpoints:  checkpoints,
	}
}

func (r *EntityResyncer) MarkForResync(ctx context.Context, op *models.PendingOperation) error {
	// Listening events carry no entity state to restore; dropping the
	// operation loses only the event itself.
	if op.Type == models.OpListeningEvent {
		return nil
	}

	switch op.EntityType {
	case models.EntityBook:
		if err := r.books.SetBookSyncState(ctx, op.EntityID, models.SyncStateNotSynced); err != nil {
			if !errors.Is(err, storage.ErrBookNotFound) {
				return fmt.Errorf("failed to flag book for resync: %w", err)
			}
		}
		return r.checkpoints.ClearCheckpoint(ctx, storage.CheckpointBooks)
	case models.EntityContributor:
		if err := r.contributors.SetContributorSyncState(ctx, op.EntityID, models.SyncStateNotSynced); err != nil {
			if !errors.Is(err, storage.ErrContributorNotFound) {
				return fmt.Errorf("failed to flag contributor for resync: %w", err)
			}
		}
		return r.checkpoints.ClearCheckpoint(ctx, storage.CheckpointContributors)
	case models.EntitySeries:
		if err := r.series.SetSeriesSyncState(ctx, op.EntityID, models.SyncStateNotSynced); err != nil {
			if !errors.Is(err, storage.ErrSeriesNotFound) {
				return fmt.Errorf("failed to flag series for resync: %w", err)
			}
		}
		return r.checkpoints.ClearCheckpoint(ctx, storage.CheckpointSeries)
	case models.EntityPlaybackState, models.EntityPreferences:
		return r.checkpoints.ClearCheckpoint(ctx, storage.CheckpointProgress)
	default:
		return fmt.Errorf("no resync rule for entity type %s", op.EntityType)
	}
}
