package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/listenup-client/internal/client/storage"
)

func TestCheckpoint_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// Unset checkpoint reads as 0
	ts, err := store.GetCheckpoint(ctx, storage.CheckpointBooks)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)

	require.NoError(t, store.SaveCheckpoint(ctx, storage.CheckpointBooks, 1234567890))

	ts, err = store.GetCheckpoint(ctx, storage.CheckpointBooks)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), ts)

	// Domains are independent
	ts, err = store.GetCheckpoint(ctx, storage.CheckpointProgress)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)
}

func TestCheckpoint_Clear(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCheckpoint(ctx, storage.CheckpointSeries, 55))
	require.NoError(t, store.ClearCheckpoint(ctx, storage.CheckpointSeries))

	ts, err := store.GetCheckpoint(ctx, storage.CheckpointSeries)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)
}
