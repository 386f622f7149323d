package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

// InsertOperation stores a new pending operation
func (s *Storage) InsertOperation(ctx context.Context, op *models.PendingOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOperations).Put([]byte(op.ID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to insert operation: %w", err)
	}
	return nil
}

// UpdateOperation replaces an existing pending operation
func (s *Storage) UpdateOperation(ctx context.Context, op *models.PendingOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOperations)
		if bucket.Get([]byte(op.ID)) == nil {
			return storage.ErrOperationNotFound
		}
		return bucket.Put([]byte(op.ID), data)
	})
	if err != nil {
		return err
	}
	return nil
}

// DeleteOperation removes an operation. Idempotent.
func (s *Storage) DeleteOperation(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOperations).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}
	return nil
}

// GetOperation retrieves an operation by ID
func (s *Storage) GetOperation(ctx context.Context, id string) (*models.PendingOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var op *models.PendingOperation
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketOperations).Get([]byte(id))
		if data == nil {
			return storage.ErrOperationNotFound
		}
		op = &models.PendingOperation{}
		if err := json.Unmarshal(data, op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return op, nil
}

// ListOperations returns every queued operation, oldest first
func (s *Storage) ListOperations(ctx context.Context) ([]*models.PendingOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.PendingOperation
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOperations).ForEach(func(k, v []byte) error {
			var op models.PendingOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	// Bucket iteration is keyed by ID; queue consumers expect FIFO
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].CreatedAt != ops[j].CreatedAt {
			return ops[i].CreatedAt < ops[j].CreatedAt
		}
		return ops[i].ID < ops[j].ID
	})
	return ops, nil
}

// FindPending returns the PENDING operation for (type, entityID)
func (s *Storage) FindPending(ctx context.Context, opType models.OperationType, entityID string) (*models.PendingOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var found *models.PendingOperation
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOperations).ForEach(func(k, v []byte) error {
			if found != nil {
				return nil
			}
			var op models.PendingOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			if op.Type == opType && op.EntityID == entityID && op.Status == models.StatusPending {
				found = &op
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan operations: %w", err)
	}
	if found == nil {
		return nil, storage.ErrOperationNotFound
	}
	return found, nil
}
