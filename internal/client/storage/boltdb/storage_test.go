package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "listenup-test.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{
			bucketBooks, bucketContributors, bucketSeries,
			bucketProgress, bucketPreferences,
			bucketOperations, bucketCheckpoints, bucketSession,
		} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	invalidPath := string([]byte{0})
	store, err := New(context.Background(), invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose_Twice(t *testing.T) {
	store := newTestStorage(t)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)
	assert.NoError(t, store.Close())
}
