package storage

import (
	"context"

	"github.com/listenupapp/listenup-client/internal/models"
)

// ProgressStorage defines local playback state and per-book preferences.
// Both are keyed by book ID (one record per book for the signed-in user).
type ProgressStorage interface {
	// SaveState stores or replaces the playback state for a book
	SaveState(ctx context.Context, state *models.PlaybackState) error

	// GetState retrieves playback state for a book
	// Returns ErrStateNotFound if no state exists
	GetState(ctx context.Context, bookID string) (*models.PlaybackState, error)

	// ListStates returns playback state for every book that has one
	ListStates(ctx context.Context) ([]*models.PlaybackState, error)

	// SavePreferences stores or replaces per-book preferences
	SavePreferences(ctx context.Context, prefs *models.BookPreferences) error

	// GetPreferences retrieves per-book preferences
	// Returns ErrPreferencesNotFound if none exist
	GetPreferences(ctx context.Context, bookID string) (*models.BookPreferences, error)
}
