package api

import (
	"context"

	"github.com/listenupapp/listenup-client/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI is the typed contract the sync engine consumes. One method
// per server resource; every method returns either a decoded payload or
// an error (*Error for HTTP failures, transport errors otherwise).
type ClientAPI interface {
	// Auth
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Mutations
	UpdateBook(ctx context.Context, token, bookID string, req api.BookUpdateRequest) (*api.Book, error)
	SetBookContributors(ctx context.Context, token, bookID string, req api.SetContributorsRequest) (*api.Book, error)
	SetBookSeries(ctx context.Context, token, bookID string, req api.SetSeriesRequest) (*api.Book, error)
	MergeContributors(ctx context.Context, token string, req api.MergeContributorsRequest) (*api.Contributor, error)
	PushListeningEvents(ctx context.Context, token string, req api.BatchEventsRequest) (*api.BatchEventsResponse, error)
	UpdateProgress(ctx context.Context, token string, req api.UpdateProgressRequest) error
	UpdateBookPreferences(ctx context.Context, token string, prefs api.BookPreferences) error

	// Delta pulls
	GetBooksUpdatedAfter(ctx context.Context, token string, since int64) (*api.BooksDelta, error)
	GetContributorsUpdatedAfter(ctx context.Context, token string, since int64) (*api.ContributorsDelta, error)
	GetSeriesUpdatedAfter(ctx context.Context, token string, since int64) (*api.SeriesDelta, error)
	GetAllProgress(ctx context.Context, token string, since int64) (*api.ProgressDelta, error)

	// Search
	Search(ctx context.Context, token, query string, limit int) (*api.SearchResponse, error)

	// Ping hits the health endpoint with a short timeout. Used by the
	// network monitor to decide online/offline.
	Ping(ctx context.Context) error
}
