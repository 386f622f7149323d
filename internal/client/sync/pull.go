package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpclient "github.com/listenupapp/listenup-client/internal/client/api"
	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

// Progress reports pull advancement to the UI. Total is -1 when the
// total is not known up front.
type Progress struct {
	Phase   string
	Synced  int
	Total   int
	Message string
}

// ProgressFunc receives Progress callbacks during a pull. May be nil.
type ProgressFunc func(Progress)

func (f ProgressFunc) report(p Progress) {
	if f != nil {
		f(p)
	}
}

// PendingChecker answers whether a queued local mutation still targets
// an entity. Pull mergers consult it to enforce the guard rule: an
// unconfirmed local intent is never overwritten by pulled server state.
type PendingChecker interface {
	HasPendingFor(ctx context.Context, opType models.OperationType, entityID string) (bool, error)
}

// SearchIndexer keeps the offline search index in step with the local
// entity cache.
type SearchIndexer interface {
	IndexBook(ctx context.Context, book *models.Book) error
	IndexContributor(ctx context.Context, c *models.Contributor) error
	IndexSeries(ctx context.Context, s *models.Series) error
	Remove(ctx context.Context, entityID string) error
}

// Puller pulls one server domain down into local storage. Critical
// pullers abort the whole pull on failure; non-critical pullers log and
// let the rest proceed.
type Puller interface {
	Domain() string
	Critical() bool
	Pull(ctx context.Context, token string, onProgress ProgressFunc) error
}

// PullAll runs every puller in order. The first critical failure aborts
// and is returned; non-critical failures are logged and collected.
func PullAll(ctx context.Context, pullers []Puller, token string, onProgress ProgressFunc, logger *slog.Logger) error {
	var soft []error
	for _, p := range pullers {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := p.Pull(ctx, token, onProgress)
		if err == nil {
			continue
		}
		if p.Critical() {
			return fmt.Errorf("failed to pull %s: %w", p.Domain(), err)
		}
		logger.Warn("non-critical pull failed", "domain", p.Domain(), "error", err)
		soft = append(soft, fmt.Errorf("%s: %w", p.Domain(), err))
	}
	return errors.Join(soft...)
}

// bookMutations are the queued operation types that carry local book
// intent. Any of them pending for a book blocks the pull merge for it.
var bookMutations = []models.OperationType{
	models.OpBookUpdate,
	models.OpSetBookContributors,
	models.OpSetBookSeries,
}

func anyPending(ctx context.Context, pending PendingChecker, types []models.OperationType, entityID string) (bool, error) {
	for _, t := range types {
		ok, err := pending.HasPendingFor(ctx, t, entityID)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// BookPuller delta-syncs the book catalog.
type BookPuller struct {
	client      httpclient.ClientAPI
	books       storage.BookStorage
	checkpoints storage.CheckpointStorage
	pending     PendingChecker
	indexer     SearchIndexer
	logger      *slog.Logger
	now         func() time.Time
}

func NewBookPuller(
	client httpclient.ClientAPI,
	books storage.BookStorage,
	checkpoints storage.CheckpointStorage,
	pending PendingChecker,
	indexer SearchIndexer,
	logger *slog.Logger,
) *BookPuller {
	return &BookPuller{
		client:      client,
		books:       books,
		checkpoints: checkpoints,
		pending:     pending,
		indexer:     indexer,
		logger:      logger,
		now:         time.Now,
	}
}

func (p *BookPuller) Domain() string { return storage.CheckpointBooks }
func (p *BookPuller) Critical() bool { return true }

func (p *BookPuller) Pull(ctx context.Context, token string, onProgress ProgressFunc) error {
	since, err := p.checkpoints.GetCheckpoint(ctx, storage.CheckpointBooks)
	if err != nil {
		return err
	}
	onProgress.report(Progress{Phase: "books", Total: -1, Message: "Fetching book changes"})

	delta, err := p.client.GetBooksUpdatedAfter(ctx, token, since)
	if err != nil {
		return err
	}

	total := len(delta.Books) + len(delta.Deleted)
	synced := 0
	nowMillis := p.now().UnixMilli()

	for i := range delta.Books {
		wire := &delta.Books[i]
		guarded, err := anyPending(ctx, p.pending, bookMutations, wire.ID)
		if err != nil {
			return err
		}
		if guarded {
			// A queued local edit owns this book until it is pushed
			// or dismissed
			p.logger.Debug("skipping pulled book, local edit pending", "book_id", wire.ID)
			synced++
			onProgress.report(Progress{Phase: "books", Synced: synced, Total: total})
			continue
		}

		book := bookFromWire(wire, nowMillis)
		if err := p.books.SaveBook(ctx, book); err != nil {
			return err
		}
		if err := p.indexer.IndexBook(ctx, book); err != nil {
			return err
		}
		synced++
		onProgress.report(Progress{Phase: "books", Synced: synced, Total: total})
	}

	for _, id := range delta.Deleted {
		if err := p.books.DeleteBook(ctx, id); err != nil && !errors.Is(err, storage.ErrBookNotFound) {
			return err
		}
		if err := p.indexer.Remove(ctx, id); err != nil {
			return err
		}
		synced++
		onProgress.report(Progress{Phase: "books", Synced: synced, Total: total})
	}

	return p.checkpoints.SaveCheckpoint(ctx, storage.CheckpointBooks, delta.Timestamp)
}

// ContributorPuller delta-syncs contributors.
type ContributorPuller struct {
	client       httpclient.ClientAPI
	contributors storage.ContributorStorage
	checkpoints  storage.CheckpointStorage
	pending      PendingChecker
	indexer      SearchIndexer
	logger       *slog.Logger
	now          func() time.Time
}

func NewContributorPuller(
	client httpclient.ClientAPI,
	contributors storage.ContributorStorage,
	checkpoints storage.CheckpointStorage,
	pending PendingChecker,
	indexer SearchIndexer,
	logger *slog.Logger,
) *ContributorPuller {
	return &ContributorPuller{
		client:       client,
		contributors: contributors,
		checkpoints:  checkpoints,
		pending:      pending,
		indexer:      indexer,
		logger:       logger,
		now:          time.Now,
	}
}

func (p *ContributorPuller) Domain() string { return storage.CheckpointContributors }
func (p *ContributorPuller) Critical() bool { return true }

func (p *ContributorPuller) Pull(ctx context.Context, token string, onProgress ProgressFunc) error {
	since, err := p.checkpoints.GetCheckpoint(ctx, storage.CheckpointContributors)
	if err != nil {
		return err
	}
	onProgress.report(Progress{Phase: "contributors", Total: -1, Message: "Fetching contributor changes"})

	delta, err := p.client.GetContributorsUpdatedAfter(ctx, token, since)
	if err != nil {
		return err
	}

	total := len(delta.Contributors) + len(delta.Deleted)
	synced := 0
	nowMillis := p.now().UnixMilli()

	for i := range delta.Contributors {
		wire := &delta.Contributors[i]
		guarded, err := p.pending.HasPendingFor(ctx, models.OpMergeContributor, wire.ID)
		if err != nil {
			return err
		}
		if guarded {
			p.logger.Debug("skipping pulled contributor, local merge pending", "contributor_id", wire.ID)
			synced++
			onProgress.report(Progress{Phase: "contributors", Synced: synced, Total: total})
			continue
		}

		c := contributorFromWire(wire, nowMillis)
		if err := p.contributors.SaveContributor(ctx, c); err != nil {
			return err
		}
		if err := p.indexer.IndexContributor(ctx, c); err != nil {
			return err
		}
		synced++
		onProgress.report(Progress{Phase: "contributors", Synced: synced, Total: total})
	}

	for _, id := range delta.Deleted {
		if err := p.contributors.DeleteContributor(ctx, id); err != nil && !errors.Is(err, storage.ErrContributorNotFound) {
			return err
		}
		if err := p.indexer.Remove(ctx, id); err != nil {
			return err
		}
		synced++
		onProgress.report(Progress{Phase: "contributors", Synced: synced, Total: total})
	}

	return p.checkpoints.SaveCheckpoint(ctx, storage.CheckpointContributors, delta.Timestamp)
}

// SeriesPuller delta-syncs series. Series have no queued local
// mutations of their own (series membership is edited through the
// book), so there is no guard.
type SeriesPuller struct {
	client      httpclient.ClientAPI
	series      storage.SeriesStorage
	checkpoints storage.CheckpointStorage
	indexer     SearchIndexer
	logger      *slog.Logger
	now         func() time.Time
}

func NewSeriesPuller(
	client httpclient.ClientAPI,
	series storage.SeriesStorage,
	checkpoints storage.CheckpointStorage,
	indexer SearchIndexer,
	logger *slog.Logger,
) *SeriesPuller {
	return &SeriesPuller{
		client:      client,
		series:      series,
		checkpoints: checkpoints,
		indexer:     indexer,
		logger:      logger,
		now:         time.Now,
	}
}

func (p *SeriesPuller) Domain() string { return storage.CheckpointSeries }
func (p *SeriesPuller) Critical() bool { return true }

func (p *SeriesPuller) Pull(ctx context.Context, token string, onProgress ProgressFunc) error {
	since, err := p.checkpoints.GetCheckpoint(ctx, storage.CheckpointSeries)
	if err != nil {
		return err
	}
	onProgress.report(Progress{Phase: "series", Total: -1, Message: "Fetching series changes"})

	delta, err := p.client.GetSeriesUpdatedAfter(ctx, token, since)
	if err != nil {
		return err
	}

	total := len(delta.Series) + len(delta.Deleted)
	synced := 0
	nowMillis := p.now().UnixMilli()

	for i := range delta.Series {
		s := seriesFromWire(&delta.Series[i], nowMillis)
		if err := p.series.SaveSeries(ctx, s); err != nil {
			return err
		}
		if err := p.indexer.IndexSeries(ctx, s); err != nil {
			return err
		}
		synced++
		onProgress.report(Progress{Phase: "series", Synced: synced, Total: total})
	}

	for _, id := range delta.Deleted {
		if err := p.series.DeleteSeries(ctx, id); err != nil && !errors.Is(err, storage.ErrSeriesNotFound) {
			return err
		}
		if err := p.indexer.Remove(ctx, id); err != nil {
			return err
		}
		synced++
		onProgress.report(Progress{Phase: "series", Synced: synced, Total: total})
	}

	return p.checkpoints.SaveCheckpoint(ctx, storage.CheckpointSeries, delta.Timestamp)
}

// ProgressPuller syncs playback state. Non-critical: a book list
// without fresh positions is stale, a missing book catalog is broken.
// The merge preserves locally owned fields (PlaybackSpeed) and skips
// books with an unconfirmed local position update.
type ProgressPuller struct {
	client      httpclient.ClientAPI
	progress    storage.ProgressStorage
	checkpoints storage.CheckpointStorage
	pending     PendingChecker
	logger      *slog.Logger
	now         func() time.Time
}

func NewProgressPuller(
	client httpclient.ClientAPI,
	progress storage.ProgressStorage,
	checkpoints storage.CheckpointStorage,
	pending PendingChecker,
	logger *slog.Logger,
) *ProgressPuller {
	return &ProgressPuller{
		client:      client,
		progress:    progress,
		checkpoints: checkpoints,
		pending:     pending,
		logger:      logger,
		now:         time.Now,
	}
}

func (p *ProgressPuller) Domain() string { return storage.CheckpointProgress }
func (p *ProgressPuller) Critical() bool { return false }

func (p *ProgressPuller) Pull(ctx context.Context, token string, onProgress ProgressFunc) error {
	since, err := p.checkpoints.GetCheckpoint(ctx, storage.CheckpointProgress)
	if err != nil {
		return err
	}
	onProgress.report(Progress{Phase: "progress", Total: -1, Message: "Fetching playback progress"})

	delta, err := p.client.GetAllProgress(ctx, token, since)
	if err != nil {
		return err
	}

	nowMillis := p.now().UnixMilli()
	for i := range delta.States {
		wire := &delta.States[i]
		guarded, err := p.pending.HasPendingFor(ctx, models.OpPlaybackPosition, wire.BookID)
		if err != nil {
			return err
		}
		if guarded {
			p.logger.Debug("skipping pulled progress, local position pending", "book_id", wire.BookID)
			continue
		}

		state := &models.PlaybackState{
			Syncable: models.Syncable{
				ID:            wire.BookID,
				SyncState:     models.SyncStateSynced,
				LastModified:  nowMillis,
				ServerVersion: wire.UpdatedAt,
			},
			BookID:         wire.BookID,
			Position:       wire.Position,
			Duration:       wire.Duration,
			IsFinished:     wire.IsFinished,
			FinishedAt:     wire.FinishedAt,
			LastPlayedAt:   wire.LastPlayedAt,
			CurrentFileIdx: wire.CurrentFileIdx,
		}

		existing, err := p.progress.GetState(ctx, wire.BookID)
		switch {
		case err == nil:
			state.PlaybackSpeed = existing.PlaybackSpeed
		case !errors.Is(err, storage.ErrStateNotFound):
			return err
		}

		if err := p.progress.SaveState(ctx, state); err != nil {
			return err
		}
		onProgress.report(Progress{Phase: "progress", Synced: i + 1, Total: len(delta.States)})
	}

	return p.checkpoints.SaveCheckpoint(ctx, storage.CheckpointProgress, delta.Timestamp)
}
