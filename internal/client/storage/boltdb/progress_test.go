package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

func TestProgress_SaveGet(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.GetState(ctx, "book-1")
	assert.ErrorIs(t, err, storage.ErrStateNotFound)

	state := &models.PlaybackState{
		Syncable:      models.Syncable{ID: "book-1", SyncState: models.SyncStateSynced},
		BookID:        "book-1",
		Position:      1830.5,
		IsFinished:    false,
		PlaybackSpeed: 1.25,
	}
	require.NoError(t, store.SaveState(ctx, state))

	got, err := store.GetState(ctx, "book-1")
	require.NoError(t, err)
	assert.Equal(t, 1830.5, got.Position)
	assert.Equal(t, 1.25, got.PlaybackSpeed)

	states, err := store.ListStates(ctx)
	require.NoError(t, err)
	assert.Len(t, states, 1)
}

func TestPreferences_SaveGet(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.GetPreferences(ctx, "book-1")
	assert.ErrorIs(t, err, storage.ErrPreferencesNotFound)

	prefs := &models.BookPreferences{
		Syncable:      models.Syncable{ID: "book-1"},
		BookID:        "book-1",
		PlaybackSpeed: 1.5,
		SkipIntro:     true,
	}
	require.NoError(t, store.SavePreferences(ctx, prefs))

	got, err := store.GetPreferences(ctx, "book-1")
	require.NoError(t, err)
	assert.Equal(t, 1.5, got.PlaybackSpeed)
	assert.True(t, got.SkipIntro)
}

func TestSession_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	require.NoError(t, store.SaveSession(ctx, &storage.SessionData{
		UserID:      "u-1",
		DeviceID:    "d-1",
		ServerURL:   "http://localhost:8080",
		AccessToken: "tok",
		ExpiresAt:   9999999999,
	}))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "d-1", got.DeviceID)

	require.NoError(t, store.DeleteSession(ctx))
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}
