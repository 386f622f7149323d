package storage

import (
	"context"

	"github.com/listenupapp/listenup-client/internal/models"
)

//go:generate moq -out entities_mock.go . BookStorage ContributorStorage SeriesStorage

// BookStorage defines the local book cache.
type BookStorage interface {
	// SaveBook stores or replaces a book
	SaveBook(ctx context.Context, book *models.Book) error

	// GetBook retrieves a book by ID
	// Returns ErrBookNotFound if the book is not cached
	GetBook(ctx context.Context, id string) (*models.Book, error)

	// ListBooks returns all cached books
	ListBooks(ctx context.Context) ([]*models.Book, error)

	// DeleteBook removes a book from the cache (server tombstone)
	DeleteBook(ctx context.Context, id string) error

	// SetBookSyncState updates only the sync state of a book.
	// Used to flag an entity for resync after a dismissed operation.
	SetBookSyncState(ctx context.Context, id string, state models.SyncState) error
}

// ContributorStorage defines the local contributor cache.
type ContributorStorage interface {
	SaveContributor(ctx context.Context, c *models.Contributor) error
	GetContributor(ctx context.Context, id string) (*models.Contributor, error)
	ListContributors(ctx context.Context) ([]*models.Contributor, error)
	DeleteContributor(ctx context.Context, id string) error
	SetContributorSyncState(ctx context.Context, id string, state models.SyncState) error
}

// SeriesStorage defines the local series cache.
type SeriesStorage interface {
	SaveSeries(ctx context.Context, s *models.Series) error
	GetSeries(ctx context.Context, id string) (*models.Series, error)
	ListSeries(ctx context.Context) ([]*models.Series, error)
	DeleteSeries(ctx context.Context, id string) error
	SetSeriesSyncState(ctx context.Context, id string, state models.SyncState) error
}
