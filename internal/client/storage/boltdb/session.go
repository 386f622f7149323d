package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/listenupapp/listenup-client/internal/client/storage"
)

var sessionKey = []byte("current")

// SaveSession stores the login session, replacing any previous one
func (s *Storage) SaveSession(ctx context.Context, data *storage.SessionData) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Put(sessionKey, raw)
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves the stored login session
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var data *storage.SessionData
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketSession).Get(sessionKey)
		if raw == nil {
			return storage.ErrSessionNotFound
		}
		data = &storage.SessionData{}
		if err := json.Unmarshal(raw, data); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// DeleteSession removes the stored session (logout)
func (s *Storage) DeleteSession(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(sessionKey)
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
