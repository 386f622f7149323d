package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

func TestBooks_SaveGetDelete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	book := &models.Book{
		Syncable: models.Syncable{
			ID:            "book-1",
			SyncState:     models.SyncStateSynced,
			ServerVersion: 100,
		},
		Title: "The Long Way",
		Contributors: []models.BookContributor{
			{ContributorID: "c-1", Name: "Becky Chambers", Role: "author"},
		},
	}

	require.NoError(t, store.SaveBook(ctx, book))

	got, err := store.GetBook(ctx, "book-1")
	require.NoError(t, err)
	assert.Equal(t, "The Long Way", got.Title)
	assert.Equal(t, models.SyncStateSynced, got.SyncState)
	require.Len(t, got.Contributors, 1)
	assert.Equal(t, "author", got.Contributors[0].Role)

	require.NoError(t, store.DeleteBook(ctx, "book-1"))
	_, err = store.GetBook(ctx, "book-1")
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
}

func TestBooks_GetMissing(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetBook(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
}

func TestBooks_List(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	books, err := store.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.SaveBook(ctx, &models.Book{
			Syncable: models.Syncable{ID: id},
			Title:    "Book " + id,
		}))
	}

	books, err = store.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestBooks_SetSyncState(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveBook(ctx, &models.Book{
		Syncable: models.Syncable{ID: "book-1", SyncState: models.SyncStateSynced},
		Title:    "Title",
	}))

	require.NoError(t, store.SetBookSyncState(ctx, "book-1", models.SyncStateNotSynced))

	got, err := store.GetBook(ctx, "book-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateNotSynced, got.SyncState)
	// Other fields untouched
	assert.Equal(t, "Title", got.Title)

	err = store.SetBookSyncState(ctx, "missing", models.SyncStateSynced)
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
}

func TestBooks_ClosedStorage(t *testing.T) {
	store := newTestStorage(t)
	require.NoError(t, store.Close())

	err := store.SaveBook(context.Background(), &models.Book{Syncable: models.Syncable{ID: "x"}})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
