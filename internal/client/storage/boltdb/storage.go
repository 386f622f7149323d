package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketBooks        = []byte("books")
	bucketContributors = []byte("contributors")
	bucketSeries       = []byte("series")
	bucketProgress     = []byte("progress")
	bucketPreferences  = []byte("preferences")
	bucketOperations   = []byte("operations")
	bucketCheckpoints  = []byte("checkpoints")
	bucketSession      = []byte("session")
)

// Storage is the BoltDB-backed local store for the client. It implements
// every interface in the storage package; one file per entity family.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection. Safe to call twice.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Storage) initBuckets() error {
	buckets := [][]byte{
		bucketBooks,
		bucketContributors,
		bucketSeries,
		bucketProgress,
		bucketPreferences,
		bucketOperations,
		bucketCheckpoints,
		bucketSession,
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}
