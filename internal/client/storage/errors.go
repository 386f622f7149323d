package storage

import "errors"

// Common client storage errors
var (
	// ErrBookNotFound indicates that the book is not cached locally
	ErrBookNotFound = errors.New("book not found")

	// ErrContributorNotFound indicates that the contributor is not cached locally
	ErrContributorNotFound = errors.New("contributor not found")

	// ErrSeriesNotFound indicates that the series is not cached locally
	ErrSeriesNotFound = errors.New("series not found")

	// ErrStateNotFound indicates that no playback state exists for the book
	ErrStateNotFound = errors.New("playback state not found")

	// ErrPreferencesNotFound indicates that no preferences exist for the book
	ErrPreferencesNotFound = errors.New("book preferences not found")

	// ErrOperationNotFound indicates that the pending operation does not exist
	ErrOperationNotFound = errors.New("pending operation not found")

	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
