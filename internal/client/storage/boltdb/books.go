package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/listenupapp/listenup-client/internal/client/storage"
	"github.com/listenupapp/listenup-client/internal/models"
)

// SaveBook stores or replaces a book in the local cache
func (s *Storage) SaveBook(ctx context.Context, book *models.Book) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(book)
	if err != nil {
		return fmt.Errorf("failed to marshal book: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBooks).Put([]byte(book.ID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}
	return nil
}

// GetBook retrieves a book by ID
func (s *Storage) GetBook(ctx context.Context, id string) (*models.Book, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var book *models.Book
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketBooks).Get([]byte(id))
		if data == nil {
			return storage.ErrBookNotFound
		}
		book = &models.Book{}
		if err := json.Unmarshal(data, book); err != nil {
			return fmt.Errorf("failed to unmarshal book: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// ListBooks returns all cached books
func (s *Storage) ListBooks(ctx context.Context) ([]*models.Book, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var books []*models.Book
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBooks).ForEach(func(k, v []byte) error {
			var book models.Book
			if err := json.Unmarshal(v, &book); err != nil {
				return fmt.Errorf("failed to unmarshal book: %w", err)
			}
			books = append(books, &book)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// DeleteBook removes a book from the cache
func (s *Storage) DeleteBook(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBooks).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

// SetBookSyncState updates only the sync state of a book
func (s *Storage) SetBookSyncState(ctx context.Context, id string, state models.SyncState) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBooks)
		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrBookNotFound
		}

		var book models.Book
		if err := json.Unmarshal(data, &book); err != nil {
			return fmt.Errorf("failed to unmarshal book: %w", err)
		}
		book.SyncState = state

		updated, err := json.Marshal(&book)
		if err != nil {
			return fmt.Errorf("failed to marshal book: %w", err)
		}
		return bucket.Put([]byte(id), updated)
	})
	if err != nil {
		return err
	}
	return nil
}
