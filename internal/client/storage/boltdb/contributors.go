package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

// SaveContributor stores or replaces a contributor in the local cache
func (s *Storage) SaveContributor(ctx context.Context, c *models.Contributor) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal contributor: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketContributors).Put([]byte(c.ID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save contributor: %w", err)
	}
	return nil
}

// GetContributor retrieves a contributor by ID
func (s *Storage) GetContributor(ctx context.Context, id string) (*models.Contributor, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var c *models.Contributor
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketContributors).Get([]byte(id))
		if data == nil {
			return storage.ErrContributorNotFound
		}
		c = &models.Contributor{}
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to unmarshal contributor: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListContributors returns all cached contributors
func (s *Storage) ListContributors(ctx context.Context) ([]*models.Contributor, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var contributors []*models.Contributor
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketContributors).ForEach(func(k, v []byte) error {
			var c models.Contributor
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("failed to unmarshal contributor: %w", err)
			}
			contributors = append(contributors, &c)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contributors: %w", err)
	}
	return contributors, nil
}

// DeleteContributor removes a contributor from the cache
func (s *Storage) DeleteContributor(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketContributors).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete contributor: %w", err)
	}
	return nil
}

// SetContributorSyncState updates only the sync state of a contributor
func (s *Storage) SetContributorSyncState(ctx context.Context, id string, state models.SyncState) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketContributors)
		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrContributorNotFound
		}

		var c models.Contributor
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("failed to unmarshal contributor: %w", err)
		}
		c.SyncState = state

		updated, err := json.Marshal(&c)
		if err != nil {
			return fmt.Errorf("failed to marshal contributor: %w", err)
		}
		return bucket.Put([]byte(id), updated)
	})
}
