package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

// SaveState stores or replaces the playback state for a book.
// States are keyed by book ID.
func (s *Storage) SaveState(ctx context.Context, state *models.PlaybackState) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal playback state: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketProgress).Put([]byte(state.BookID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save playback state: %w", err)
	}
	return nil
}

// GetState retrieves playback state for a book
func (s *Storage) GetState(ctx context.Context, bookID string) (*models.PlaybackState, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var state *models.PlaybackState
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketProgress).Get([]byte(bookID))
		if data == nil {
			return storage.ErrStateNotFound
		}
		state = &models.PlaybackState{}
		if err := json.Unmarshal(data, state); err != nil {
			return fmt.Errorf("failed to unmarshal playback state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// ListStates returns playback state for every book that has one
func (s *Storage) ListStates(ctx context.Context) ([]*models.PlaybackState, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var states []*models.PlaybackState
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketProgress).ForEach(func(k, v []byte) error {
			var state models.PlaybackState
			if err := json.Unmarshal(v, &state); err != nil {
				return fmt.Errorf("failed to unmarshal playback state: %w", err)
			}
			states = append(states, &state)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list playback states: %w", err)
	}
	return states, nil
}

// SavePreferences stores or replaces per-book preferences
func (s *Storage) SavePreferences(ctx context.Context, prefs *models.BookPreferences) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPreferences).Put([]byte(prefs.BookID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// GetPreferences retrieves per-book preferences
func (s *Storage) GetPreferences(ctx context.Context, bookID string) (*models.BookPreferences, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var prefs *models.BookPreferences
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketPreferences).Get([]byte(bookID))
		if data == nil {
			return storage.ErrPreferencesNotFound
		}
		prefs = &models.BookPreferences{}
		if err := json.Unmarshal(data, prefs); err != nil {
			return fmt.Errorf("failed to unmarshal preferences: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prefs, nil
}
