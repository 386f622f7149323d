package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

func TestOperations_InsertGetDelete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	op := &models.PendingOperation{
		ID:         "op-1",
		Type:       models.OpBookUpdate,
		EntityType: models.EntityBook,
		EntityID:   "book-1",
		Payload:    []byte(`{"title":"x"}`),
		Status:     models.StatusPending,
		CreatedAt:  10,
		UpdatedAt:  10,
	}

	require.NoError(t, store.InsertOperation(ctx, op))

	got, err := store.GetOperation(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, models.OpBookUpdate, got.Type)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.JSONEq(t, `{"title":"x"}`, string(got.Payload))

	require.NoError(t, store.DeleteOperation(ctx, "op-1"))
	_, err = store.GetOperation(ctx, "op-1")
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)

	// Deleting a missing operation is idempotent
	assert.NoError(t, store.DeleteOperation(ctx, "op-1"))
}

func TestOperations_UpdateMissing(t *testing.T) {
	store := newTestStorage(t)

	err := store.UpdateOperation(context.Background(), &models.PendingOperation{ID: "ghost"})
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)
}

func TestOperations_ListOrdersByCreation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// Insert out of creation order; IDs deliberately reverse-sorted
	for _, op := range []*models.PendingOperation{
		{ID: "z-first", Type: models.OpBookUpdate, Status: models.StatusPending, CreatedAt: 1},
		{ID: "a-last", Type: models.OpBookUpdate, Status: models.StatusPending, CreatedAt: 3},
		{ID: "m-mid", Type: models.OpBookUpdate, Status: models.StatusPending, CreatedAt: 2},
	} {
		require.NoError(t, store.InsertOperation(ctx, op))
	}

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, "z-first", ops[0].ID)
	assert.Equal(t, "m-mid", ops[1].ID)
	assert.Equal(t, "a-last", ops[2].ID)
}

func TestOperations_FindPending(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.InsertOperation(ctx, &models.PendingOperation{
		ID:       "op-pending",
		Type:     models.OpBookUpdate,
		EntityID: "book-1",
		Status:   models.StatusPending,
	}))
	require.NoError(t, store.InsertOperation(ctx, &models.PendingOperation{
		ID:       "op-failed",
		Type:     models.OpBookUpdate,
		EntityID: "book-2",
		Status:   models.StatusFailed,
	}))

	got, err := store.FindPending(ctx, models.OpBookUpdate, "book-1")
	require.NoError(t, err)
	assert.Equal(t, "op-pending", got.ID)

	// FAILED operations are not coalescing candidates
	_, err = store.FindPending(ctx, models.OpBookUpdate, "book-2")
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)

	// Type mismatch
	_, err = store.FindPending(ctx, models.OpSetBookSeries, "book-1")
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)
}
