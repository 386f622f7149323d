package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

// SaveSeries stores or replaces a series in the local cache
func (s *Storage) SaveSeries(ctx context.Context, series *models.Series) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("failed to marshal series: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSeries).Put([]byte(series.ID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save series: %w", err)
	}
	return nil
}

// GetSeries retrieves a series by ID
func (s *Storage) GetSeries(ctx context.Context, id string) (*models.Series, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var series *models.Series
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSeries).Get([]byte(id))
		if data == nil {
			return storage.ErrSeriesNotFound
		}
		series = &models.Series{}
		if err := json.Unmarshal(data, series); err != nil {
			return fmt.Errorf("failed to unmarshal series: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}

// ListSeries returns all cached series
func (s *Storage) ListSeries(ctx context.Context) ([]*models.Series, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var all []*models.Series
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSeries).ForEach(func(k, v []byte) error {
			var series models.Series
			if err := json.Unmarshal(v, &series); err != nil {
				return fmt.Errorf("failed to unmarshal series: %w", err)
			}
			all = append(all, &series)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}
	return all, nil
}

// DeleteSeries removes a series from the cache
func (s *Storage) DeleteSeries(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSeries).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete series: %w", err)
	}
	return nil
}

// SetSeriesSyncState updates only the sync state of a series
func (s *Storage) SetSeriesSyncState(ctx context.Context, id string, state models.SyncState) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSeries)
		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrSeriesNotFound
		}

		var series models.Series
		if err := json.Unmarshal(data, &series); err != nil {
			return fmt.Errorf("failed to unmarshal series: %w", err)
		}
		series.SyncState = state

		updated, err := json.Marshal(&series)
		if err != nil {
			return fmt.Errorf("failed to marshal series: %w", err)
		}
		return bucket.Put([]byte(id), updated)
	})
}
