package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/listenupapp/listenup-client/internal/client/storage"
)

// SaveCheckpoint records the server timestamp of the last applied delta
// for a sync domain.
func (s *Storage) SaveCheckpoint(ctx context.Context, domain string, timestamp int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(timestamp))

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCheckpoints).Put([]byte(domain), buf)
	})
	if err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

// GetCheckpoint retrieves the last checkpoint for a domain, 0 if unset.
func (s *Storage) GetCheckpoint(ctx context.Context, domain string) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var ts int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketCheckpoints).Get([]byte(domain))
		if len(data) == 8 {
			ts = int64(binary.BigEndian.Uint64(data))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	return ts, nil
}

// ClearCheckpoint removes a checkpoint to force a full resync
func (s *Storage) ClearCheckpoint(ctx context.Context, domain string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCheckpoints).Delete([]byte(domain))
	})
	if err != nil {
		return fmt.Errorf("failed to clear checkpoint: %w", err)
	}
	return nil
}
