package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/listenupapp/listenup-client/internal/client/api"
	"github.com/listenupapp/listenup-client/internal/models"
	"github.com/listenupapp/listenup-client/pkg/api"
)

func newTestService(t *testing.T, env *testEnv, pullers ...Puller) *Service {
	t.Helper()
	return NewService(env.queue, pullers, testToken, testLogger())
}

func TestSync_PushesBeforePulling(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var order []string
	env.api.UpdateBookFunc = func(ctx context.Context, token, bookID string, req api.BookUpdateRequest) (*api.Book, error) {
		order = append(order, "push")
		return wireBook(bookID, *req.Title), nil
	}
	env.api.GetBooksUpdatedAfterFunc = func(ctx context.Context, token string, since int64) (*api.BooksDelta, error) {
		order = append(order, "pull")
		return &api.BooksDelta{Timestamp: 10}, nil
	}

	_, err := env.queue.Enqueue(ctx, models.OpBookUpdate, models.EntityBook, "book-1",
		mustJSON(t, BookUpdatePayload{Title: strPtr("Dune")}))
	require.NoError(t, err)

	svc := newTestService(t, env,
		NewBookPuller(env.api, env.store, env.store, env.queue, newFakeIndexer(), testLogger()))

	result, err := svc.Sync(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pushed)
	assert.Equal(t, []string{"push", "pull"}, order)
}

func TestSync_FailedPushDoesNotBlockPull(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.api.UpdateBookFunc = func(ctx context.Context, token, bookID string, req api.BookUpdateRequest) (*api.Book, error) {
		return nil, &httpclient.Error{Status: 422, Message: "rejected"}
	}
	pullCalled := false
	env.api.GetBooksUpdatedAfterFunc = func(ctx context.Context, token string, since int64) (*api.BooksDelta, error) {
		pullCalled = true
		return &api.BooksDelta{Timestamp: 10}, nil
	}

	_, err := env.queue.Enqueue(ctx, models.OpBookUpdate, models.EntityBook, "book-1",
		mustJSON(t, BookUpdatePayload{Title: strPtr("X")}))
	require.NoError(t, err)

	svc := newTestService(t, env,
		NewBookPuller(env.api, env.store, env.store, env.queue, newFakeIndexer(), testLogger()))

	result, err := svc.Sync(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, result.Pushed)
	assert.True(t, pullCalled)

	failed, err := env.queue.FailedOperations(ctx)
	require.NoError(t, err)
	assert.Len(t, failed, 1)
}

func TestSync_NonCriticalPullFailureStillSucceeds(t *testing.T) {
	env := newTestEnv(t)

	svc := newTestService(t, env,
		&stubPuller{domain: "progress", critical: false, err: assert.AnError})

	result, err := svc.Sync(context.Background(), nil)
	require.NoError(t, err)
	assert.Error(t, result.PullIssues)
}

func TestSync_CriticalPullFailureFails(t *testing.T) {
	env := newTestEnv(t)

	svc := newTestService(t, env,
		&stubPuller{domain: "books", critical: true, err: &httpclient.Error{Status: 500}})

	_, err := svc.Sync(context.Background(), nil)
	require.Error(t, err)
}

func TestSync_OnlyOneRoundAtATime(t *testing.T) {
	env := newTestEnv(t)

	release := make(chan struct{})
	started := make(chan struct{})
	blocking := &blockingPuller{started: started, release: release}

	svc := newTestService(t, env, blocking)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Sync(context.Background(), nil)
		done <- err
	}()

	<-started
	assert.True(t, svc.Syncing())

	_, err := svc.Sync(context.Background(), nil)
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, svc.Syncing())
}

type blockingPuller struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingPuller) Domain() string { return "blocking" }
func (b *blockingPuller) Critical() bool { return true }
func (b *blockingPuller) Pull(ctx context.Context, token string, onProgress ProgressFunc) error {
	close(b.started)
	<-b.release
	return nil
}

func TestStatusObserver_State(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.api.UpdateBookFunc = func(ctx context.Context, token, bookID string, req api.BookUpdateRequest) (*api.Book, error) {
		return nil, &httpclient.Error{Status: 422, Message: "rejected"}
	}
	_, err := env.queue.Enqueue(ctx, models.OpBookUpdate, models.EntityBook, "book-bad",
		mustJSON(t, BookUpdatePayload{Title: strPtr("X")}))
	require.NoError(t, err)
	_, err = env.queue.Enqueue(ctx, models.OpSetBookContributors, models.EntityBook, "book-ok",
		mustJSON(t, SetContributorsPayload{Contributors: []api.ContributorInput{{Name: "A", Role: "author"}}}))
	require.NoError(t, err)

	svc := newTestService(t, env)
	obs := NewStatusObserver(svc)

	state, err := obs.State(ctx)
	require.NoError(t, err)
	assert.False(t, state.IsSyncing)
	assert.Equal(t, 2, state.PendingCount)
	assert.False(t, state.HasErrors)

	env.api.SetBookContributorsFunc = func(ctx context.Context, token, bookID string, req api.SetContributorsRequest) (*api.Book, error) {
		return wireBook(bookID, "Kept"), nil
	}
	_, err = env.queue.Drain(ctx)
	require.NoError(t, err)

	state, err = obs.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.HasErrors)
	require.Len(t, state.Failed, 1)
	assert.Contains(t, state.Failed[0].Description, "book-bad")
	assert.Contains(t, state.Failed[0].Error, "rejected")
	assert.Equal(t, 1, state.Failed[0].Attempts)
	assert.Zero(t, state.PendingCount)
}

func TestStatusObserver_RetryAndDismissIntents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.api.UpdateBookFunc = func(ctx context.Context, token, bookID string, req api.BookUpdateRequest) (*api.Book, error) {
		return nil, &httpclient.Error{Status: 422, Message: "rejected"}
	}
	op, err := env.queue.Enqueue(ctx, models.OpBookUpdate, models.EntityBook, "book-1",
		mustJSON(t, BookUpdatePayload{Title: strPtr("X")}))
	require.NoError(t, err)
	_, err = env.queue.Drain(ctx)
	require.NoError(t, err)

	svc := newTestService(t, env)
	obs := NewStatusObserver(svc)

	require.NoError(t, obs.Retry(ctx, op.ID))
	got, err := env.store.GetOperation(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)

	// Fail it again, then dismiss
	_, err = env.queue.Drain(ctx)
	require.NoError(t, err)
	require.NoError(t, obs.Dismiss(ctx, op.ID))

	state, err := obs.State(ctx)
	require.NoError(t, err)
	assert.False(t, state.HasErrors)
}

func TestStatusObserver_SubscribeSeesSyncTransitions(t *testing.T) {
	env := newTestEnv(t)

	svc := newTestService(t, env)
	obs := NewStatusObserver(svc)

	ch, cancel := obs.Subscribe()
	defer cancel()

	_, err := svc.Sync(context.Background(), nil)
	require.NoError(t, err)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a status notification from the sync round")
	}
}
