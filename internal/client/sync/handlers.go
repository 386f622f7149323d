package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpclient "github.com/listenupapp/listenup-client/internal/client/api"
	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
	"github.com/listenupapp/listenup-client/pkg/api"
)

// TokenSource supplies the current access token for server calls.
type TokenSource func(ctx context.Context) (string, error)

// handlerDeps is the shared dependency set for all operation handlers.
type handlerDeps struct {
	client       httpclient.ClientAPI
	books        storage.BookStorage
	contributors storage.ContributorStorage
	series       storage.SeriesStorage
	progress     storage.ProgressStorage
	ops          storage.OperationStorage
	token        TokenSource
	logger       *slog.Logger
	now          func() time.Time
}

// NewHandlers builds one handler per operation type over the shared
// dependencies. The result feeds NewRegistry.
func NewHandlers(
	client httpclient.ClientAPI,
	books storage.BookStorage,
	contributors storage.ContributorStorage,
	series storage.SeriesStorage,
	progress storage.ProgressStorage,
	ops storage.OperationStorage,
	token TokenSource,
	logger *slog.Logger,
) []Handler {
	deps := &handlerDeps{
		client:       client,
		books:        books,
		contributors: contributors,
		series:       series,
		progress:     progress,
		ops:          ops,
		token:        token,
		logger:       logger,
		now:          time.Now,
	}
	return []Handler{
		&bookUpdateHandler{deps},
		&setContributorsHandler{deps},
		&setSeriesHandler{deps},
		&mergeContributorHandler{deps},
		&listeningEventHandler{deps},
		&playbackPositionHandler{deps},
		&preferencesHandler{deps},
	}
}

// nowMillis is the shared local clock for entity bookkeeping.
func (d *handlerDeps) nowMillis() int64 {
	return d.now().UnixMilli()
}

// entityHasOtherPending reports whether any queued operation other than
// excludeID still targets the entity. Used to decide whether a
// successful push returns the entity to SYNCED.
func (d *handlerDeps) entityHasOtherPending(ctx context.Context, excludeID, entityID string) (bool, error) {
	if entityID == "" {
		return false, nil
	}
	all, err := d.ops.ListOperations(ctx)
	if err != nil {
		return false, err
	}
	for _, op := range all {
		if op.ID != excludeID && op.EntityID == entityID {
			return true, nil
		}
	}
	return false, nil
}

// saveBookResult stores the server's post-mutation book and settles the
// sync state.
func (d *handlerDeps) saveBookResult(ctx context.Context, opID string, wire *api.Book) error {
	book := bookFromWire(wire, d.nowMillis())
	busy, err := d.entityHasOtherPending(ctx, opID, book.ID)
	if err != nil {
		return err
	}
	if busy {
		book.SyncState = models.SyncStateNotSynced
	}
	return d.books.SaveBook(ctx, book)
}

// --- BOOK_UPDATE ---

type bookUpdateHandler struct {
	deps *handlerDeps
}

func (h *bookUpdateHandler) Type() models.OperationType { return models.OpBookUpdate }
func (h *bookUpdateHandler) Visible() bool              { return true }
func (h *bookUpdateHandler) BatchKey(op *models.PendingOperation) string {
	return ""
}

func (h *bookUpdateHandler) Describe(op *models.PendingOperation) string {
	return fmt.Sprintf("Updating book %s", op.EntityID)
}

// TryCoalesce overlays the newer edit's touched fields onto the older
// payload: later field values win, untouched fields survive.
func (h *bookUpdateHandler) TryCoalesce(existing, incoming []byte) ([]byte, bool, error) {
	var older, newer BookUpdatePayload
	if err := json.Unmarshal(existing, &older); err != nil {
		return nil, false, fmt.Errorf("failed to parse existing payload: %w", err)
	}
	if err := json.Unmarshal(incoming, &newer); err != nil {
		return nil, false, fmt.Errorf("failed to parse incoming payload: %w", err)
	}
	older.overlay(&newer)
	merged, err := json.Marshal(&older)
	if err != nil {
		return nil, false, fmt.Errorf("failed to serialize merged payload: %w", err)
	}
	return merged, true, nil
}

func (h *bookUpdateHandler) Execute(ctx context.Context, op *models.PendingOperation) error {
	var payload BookUpdatePayload
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("failed to parse book update payload: %w", err)
	}

	token, err := h.deps.token(ctx)
	if err != nil {
		return err
	}
	updated, err := h.deps.client.UpdateBook(ctx, token, op.EntityID, payload.toRequest())
	if err != nil {
		return err
	}
	return h.deps.saveBookResult(ctx, op.ID, updated)
}

func (h *bookUpdateHandler) ExecuteBatch(ctx context.Context, ops []*models.PendingOperation) map[string]error {
	return executeSequential(ctx, h, ops)
}

// --- SET_BOOK_CONTRIBUTORS ---

type setContributorsHandler struct {
	deps *handlerDeps
}

func (h *setContributorsHandler) Type() models.OperationType { return models.OpSetBookContributors }
func (h *setContributorsHandler) Visible() bool              { return true }
func (h *setContributorsHandler) BatchKey(op *models.PendingOperation) string {
	return ""
}

func (h *setContributorsHandler) Describe(op *models.PendingOperation) string {
	return fmt.Sprintf("Updating contributors for book %s", op.EntityID)
}

// TryCoalesce keeps the newer list: the payload is a full replacement,
// so the last edit is the whole intent.
func (h *setContributorsHandler) TryCoalesce(existing, incoming []byte) ([]byte, bool, error) {
	var newer SetContributorsPayload
	if err := json.Unmarshal(incoming, &newer); err != nil {
		return nil, false, fmt.Errorf("failed to parse incoming payload: %w", err)
	}
	return incoming, true, nil
}

func (h *setContributorsHandler) Execute(ctx context.Context, op *models.PendingOperation) error {
	var payload SetContributorsPayload
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("failed to parse set-contributors payload: %w", err)
	}

	token, err := h.deps.token(ctx)
	if err != nil {
		return err
	}
	updated, err := h.deps.client.SetBookContributors(ctx, token, op.EntityID, api.SetContributorsRequest{
		Contributors: payload.Contributors,
	})
	if err != nil {
		return err
	}
	return h.deps.saveBookResult(ctx, op.ID, updated)
}

func (h *setContributorsHandler) ExecuteBatch(ctx context.Context, ops []*models.PendingOperation) map[string]error {
	return executeSequential(ctx, h, ops)
}

// --- SET_BOOK_SERIES ---

type setSeriesHandler struct {
	deps *handlerDeps
}

func (h *setSeriesHandler) Type() models.OperationType { return models.OpSetBookSeries }
func (h *setSeriesHandler) Visible() bool              { return true }
func (h *setSeriesHandler) BatchKey(op *models.PendingOperation) string {
	return ""
}

func (h *setSeriesHandler) Describe(op *models.PendingOperation) string {
	return fmt.Sprintf("Updating series for book %s", op.EntityID)
}

func (h *setSeriesHandler) TryCoalesce(existing, incoming []byte) ([]byte, bool, error) {
	var newer SetSeriesPayload
	if err := json.Unmarshal(incoming, &newer); err != nil {
		return nil, false, fmt.Errorf("failed to parse incoming payload: %w", err)
	}
	return incoming, true, nil
}

func (h *setSeriesHandler) Execute(ctx context.Context, op *models.PendingOperation) error {
	var payload SetSeriesPayload
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("failed to parse set-series payload: %w", err)
	}

	token, err := h.deps.token(ctx)
	if err != nil {
		return err
	}
	updated, err := h.deps.client.SetBookSeries(ctx, token, op.EntityID, api.SetSeriesRequest{
		Series: payload.Series,
	})
	if err != nil {
		return err
	}
	return h.deps.saveBookResult(ctx, op.ID, updated)
}

func (h *setSeriesHandler) ExecuteBatch(ctx context.Context, ops []*models.PendingOperation) map[string]error {
	return executeSequential(ctx, h, ops)
}

// --- MERGE_CONTRIBUTOR ---

type mergeContributorHandler struct {
	deps *handlerDeps
}

func (h *mergeContributorHandler) Type() models.OperationType { return models.OpMergeContributor }
func (h *mergeContributorHandler) Visible() bool              { return true }
func (h *mergeContributorHandler) BatchKey(op *models.PendingOperation) string {
	return ""
}

func (h *mergeContributorHandler) Describe(op *models.PendingOperation) string {
	return fmt.Sprintf("Merging contributor %s", op.EntityID)
}

// TryCoalesce declines: two merges are distinct intents even for the
// same source, and replaying a chain of merges out of order is unsafe.
func (h *mergeContributorHandler) TryCoalesce(existing, incoming []byte) ([]byte, bool, error) {
	return nil, false, nil
}

func (h *mergeContributorHandler) Execute(ctx context.Context, op *models.PendingOperation) error {
	var payload MergeContributorPayload
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("failed to parse merge payload: %w", err)
	}

	token, err := h.deps.token(ctx)
	if err != nil {
		return err
	}
	target, err := h.deps.client.MergeContributors(ctx, token, api.MergeContributorsRequest{
		SourceID: payload.SourceID,
		TargetID: payload.TargetID,
	})
	if err != nil {
		return err
	}

	// The source is absorbed into the target
	if err := h.deps.contributors.DeleteContributor(ctx, payload.SourceID); err != nil {
		return err
	}
	return h.deps.contributors.SaveContributor(ctx, contributorFromWire(target, h.deps.nowMillis()))
}

func (h *mergeContributorHandler) ExecuteBatch(ctx context.Context, ops []*models.PendingOperation) map[string]error {
	return executeSequential(ctx, h, ops)
}

// --- LISTENING_EVENT ---

type listeningEventHandler struct {
	deps *handlerDeps
}

func (h *listeningEventHandler) Type() models.OperationType { return models.OpListeningEvent }
func (h *listeningEventHandler) Visible() bool              { return false }

// BatchKey groups events by the UTC day they started so a day's
// listening uploads as one request.
func (h *listeningEventHandler) BatchKey(op *models.PendingOperation) string {
	if op.BatchKey != "" {
		return op.BatchKey
	}
	var payload ListeningEventPayload
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return ""
	}
	return DayBatchKey(payload.StartedAt)
}

// DayBatchKey renders a unix-millis timestamp as a UTC day key.
func DayBatchKey(millis int64) string {
	return time.UnixMilli(millis).UTC().Format("2006-01-02")
}

func (h *listeningEventHandler) Describe(op *models.PendingOperation) string {
	return "Uploading listening activity"
}

// TryCoalesce declines: every listening span is a distinct event.
func (h *listeningEventHandler) TryCoalesce(existing, incoming []byte) ([]byte, bool, error) {
	return nil, false, nil
}

func (h *listeningEventHandler) Execute(ctx context.Context, op *models.PendingOperation) error {
	results := h.ExecuteBatch(ctx, []*models.PendingOperation{op})
	return results[op.ID]
}

// ExecuteBatch submits all events in one request. Rejected events get a
// non-retryable error so the queue marks them FAILED instead of
// re-submitting malformed data.
func (h *listeningEventHandler) ExecuteBatch(ctx context.Context, ops []*models.PendingOperation) map[string]error {
	results := make(map[string]error, len(ops))

	events := make([]api.ListeningEvent, 0, len(ops))
	byEventID := make(map[string]string, len(ops)) // event ID -> op ID
	for _, op := range ops {
		var payload ListeningEventPayload
		if err := json.Unmarshal(op.Payload, &payload); err != nil {
			results[op.ID] = fmt.Errorf("failed to parse listening event payload: %w", err)
			continue
		}
		events = append(events, api.ListeningEvent{
			ID:        payload.EventID,
			BookID:    payload.BookID,
			StartedAt: payload.StartedAt,
			Duration:  payload.Duration,
			Speed:     payload.Speed,
		})
		byEventID[payload.EventID] = op.ID
	}
	if len(events) == 0 {
		return results
	}

	token, err := h.deps.token(ctx)
	if err != nil {
		for _, opID := range byEventID {
			results[opID] = err
		}
		return results
	}

	resp, err := h.deps.client.PushListeningEvents(ctx, token, api.BatchEventsRequest{Events: events})
	if err != nil {
		for _, opID := range byEventID {
			results[opID] = err
		}
		return results
	}

	for eventID, opID := range byEventID {
		if reason, rejected := resp.Rejected[eventID]; rejected {
			results[opID] = &httpclient.Error{Status: 422, Message: reason}
		} else {
			results[opID] = nil
		}
	}
	return results
}

// --- PLAYBACK_POSITION ---

type playbackPositionHandler struct {
	deps *handlerDeps
}

func (h *playbackPositionHandler) Type() models.OperationType { return models.OpPlaybackPosition }
func (h *playbackPositionHandler) Visible() bool              { return false }
func (h *playbackPositionHandler) BatchKey(op *models.PendingOperation) string {
	return ""
}

func (h *playbackPositionHandler) Describe(op *models.PendingOperation) string {
	return fmt.Sprintf("Saving playback position for book %s", op.EntityID)
}

// TryCoalesce keeps the position played most recently. A finished flag
// is sticky: once a queued edit marks the book finished, an older
// in-flight position report cannot unmark it.
func (h *playbackPositionHandler) TryCoalesce(existing, incoming []byte) ([]byte, bool, error) {
	var older, newer PlaybackPositionPayload
	if err := json.Unmarshal(existing, &older); err != nil {
		return nil, false, fmt.Errorf("failed to parse existing payload: %w", err)
	}
	if err := json.Unmarshal(incoming, &newer); err != nil {
		return nil, false, fmt.Errorf("failed to parse incoming payload: %w", err)
	}

	merged := newer
	if older.LastPlayedAt > newer.LastPlayedAt {
		merged = older
	}
	merged.IsFinished = older.IsFinished || newer.IsFinished
	out, err := json.Marshal(&merged)
	if err != nil {
		return nil, false, fmt.Errorf("failed to serialize merged payload: %w", err)
	}
	return out, true, nil
}

func (h *playbackPositionHandler) Execute(ctx context.Context, op *models.PendingOperation) error {
	var payload PlaybackPositionPayload
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("failed to parse position payload: %w", err)
	}

	token, err := h.deps.token(ctx)
	if err != nil {
		return err
	}
	err = h.deps.client.UpdateProgress(ctx, token, api.UpdateProgressRequest{
		BookID:       payload.BookID,
		Position:     payload.Position,
		IsFinished:   payload.IsFinished,
		LastPlayedAt: payload.LastPlayedAt,
	})
	if err != nil {
		return err
	}

	// Settle local state now that the server confirmed it
	state, err := h.deps.progress.GetState(ctx, payload.BookID)
	if err != nil {
		if errors.Is(err, storage.ErrStateNotFound) {
			return nil
		}
		return err
	}
	state.SyncState = models.SyncStateSynced
	return h.deps.progress.SaveState(ctx, state)
}

func (h *playbackPositionHandler) ExecuteBatch(ctx context.Context, ops []*models.PendingOperation) map[string]error {
	return executeSequential(ctx, h, ops)
}

// --- USER_PREFERENCES ---

type preferencesHandler struct {
	deps *handlerDeps
}

func (h *preferencesHandler) Type() models.OperationType { return models.OpUserPreferences }
func (h *preferencesHandler) Visible() bool              { return false }
func (h *preferencesHandler) BatchKey(op *models.PendingOperation) string {
	return ""
}

func (h *preferencesHandler) Describe(op *models.PendingOperation) string {
	return fmt.Sprintf("Saving preferences for book %s", op.EntityID)
}

func (h *preferencesHandler) TryCoalesce(existing, incoming []byte) ([]byte, bool, error) {
	var older, newer PreferencesPayload
	if err := json.Unmarshal(existing, &older); err != nil {
		return nil, false, fmt.Errorf("failed to parse existing payload: %w", err)
	}
	if err := json.Unmarshal(incoming, &newer); err != nil {
		return nil, false, fmt.Errorf("failed to parse incoming payload: %w", err)
	}

	if newer.PlaybackSpeed != nil {
		older.PlaybackSpeed = newer.PlaybackSpeed
	}
	if newer.SkipIntro != nil {
		older.SkipIntro = newer.SkipIntro
	}
	merged, err := json.Marshal(&older)
	if err != nil {
		return nil, false, fmt.Errorf("failed to serialize merged payload: %w", err)
	}
	return merged, true, nil
}

func (h *preferencesHandler) Execute(ctx context.Context, op *models.PendingOperation) error {
	var payload PreferencesPayload
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("failed to parse preferences payload: %w", err)
	}

	token, err := h.deps.token(ctx)
	if err != nil {
		return err
	}

	prefs := api.BookPreferences{BookID: payload.BookID}
	if payload.PlaybackSpeed != nil {
		prefs.PlaybackSpeed = *payload.PlaybackSpeed
	}
	if payload.SkipIntro != nil {
		prefs.SkipIntro = *payload.SkipIntro
	}
	return h.deps.client.UpdateBookPreferences(ctx, token, prefs)
}

func (h *preferencesHandler) ExecuteBatch(ctx context.Context, ops []*models.PendingOperation) map[string]error {
	return executeSequential(ctx, h, ops)
}
