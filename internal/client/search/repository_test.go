package search

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/listenupapp/listenup-client/internal/client/api"
	"github.com/listenupapp/listenup-client/internal/client/netmon"
	"github.com/listenupapp/listenup-client/internal/client/search/sqlite"
	"github.com/listenupapp/listenup-client/internal/models"
	"github.com/listenupapp/listenup-client/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func onlineMonitor(online bool) *netmon.MonitorMock {
	return &netmon.MonitorMock{
		IsOnlineFunc: func() bool { return online },
	}
}

func newSeededIndex(t *testing.T) *sqlite.Index {
	t.Helper()
	idx, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	ctx := context.Background()
	require.NoError(t, idx.IndexBook(ctx, &models.Book{
		Syncable: models.Syncable{ID: "b1"}, Title: "Dune",
	}))
	require.NoError(t, idx.IndexContributor(ctx, &models.Contributor{
		Syncable: models.Syncable{ID: "c1"}, Name: "Dan Simmons",
	}))
	return idx
}

func TestSearch_OnlineUsesServer(t *testing.T) {
	client := &httpclient.ClientAPIMock{
		SearchFunc: func(ctx context.Context, token, query string, limit int) (*api.SearchResponse, error) {
			assert.Equal(t, "dune", query)
			return &api.SearchResponse{
				Results: []api.SearchResult{{ID: "b1", Type: "book", Name: "Dune", Score: 9.5}},
				Total:   1,
			}, nil
		},
	}

	repo := NewRepository(client, onlineMonitor(true), newSeededIndex(t), testLogger())

	results, err := repo.Search(context.Background(), "tok", "dune", 10)
	require.NoError(t, err)
	assert.False(t, results.IsOfflineResult)
	require.Len(t, results.Items, 1)
	assert.Equal(t, 9.5, results.Items[0].Score)
}

func TestSearch_OfflineUsesLocalIndex(t *testing.T) {
	client := &httpclient.ClientAPIMock{}

	repo := NewRepository(client, onlineMonitor(false), newSeededIndex(t), testLogger())

	results, err := repo.Search(context.Background(), "tok", "dune", 10)
	require.NoError(t, err)
	assert.True(t, results.IsOfflineResult)
	require.Len(t, results.Items, 1)
	assert.Equal(t, "b1", results.Items[0].ID)

	// The server is never consulted while offline
	assert.Empty(t, client.SearchCalls())
}

func TestSearch_ServerFailureFallsBackToIndex(t *testing.T) {
	client := &httpclient.ClientAPIMock{
		SearchFunc: func(ctx context.Context, token, query string, limit int) (*api.SearchResponse, error) {
			return nil, &httpclient.Error{Status: 500, Message: "search backend down"}
		},
	}

	repo := NewRepository(client, onlineMonitor(true), newSeededIndex(t), testLogger())

	results, err := repo.Search(context.Background(), "tok", "dune", 10)
	require.NoError(t, err)
	assert.True(t, results.IsOfflineResult)
	require.Len(t, results.Items, 1)
}

func TestSearch_BrokenIndexStillReturnsEmpty(t *testing.T) {
	client := &httpclient.ClientAPIMock{}

	repo := NewRepository(client, onlineMonitor(false), &failingIndex{}, testLogger())

	results, err := repo.Search(context.Background(), "tok", "dune", 10)
	require.NoError(t, err)
	assert.True(t, results.IsOfflineResult)
	assert.Empty(t, results.Items)
	assert.Zero(t, results.Total)
}

type failingIndex struct{}

func (f *failingIndex) Search(ctx context.Context, query, entityType string, limit int) ([]api.SearchResult, error) {
	return nil, errors.New("index corrupted")
}

func TestSearch_QuerySanitizedBeforeServer(t *testing.T) {
	var got string
	client := &httpclient.ClientAPIMock{
		SearchFunc: func(ctx context.Context, token, query string, limit int) (*api.SearchResponse, error) {
			got = query
			return &api.SearchResponse{}, nil
		},
	}

	repo := NewRepository(client, onlineMonitor(true), newSeededIndex(t), testLogger())

	_, err := repo.Search(context.Background(), "tok", `dune* "messiah"`, 10)
	require.NoError(t, err)
	assert.Equal(t, "dune messiah", got)
}

func TestSearch_ShortQueryReturnsEmptyWithoutLookup(t *testing.T) {
	// No SearchFunc and an index that errors if touched: a below-minimum
	// query must answer empty without calling either.
	client := &httpclient.ClientAPIMock{}
	repo := NewRepository(client, onlineMonitor(true), &failingIndex{}, testLogger())

	results, err := repo.Search(context.Background(), "tok", "d", 10)
	require.NoError(t, err)
	assert.Empty(t, results.Items)
	assert.Zero(t, results.Total)
	assert.Empty(t, client.SearchCalls())

	// Metacharacter-only input sanitizes to empty and short-circuits too
	results, err = repo.Search(context.Background(), "tok", `*"`, 10)
	require.NoError(t, err)
	assert.Empty(t, results.Items)
	assert.Empty(t, client.SearchCalls())
}

func TestSearchContributors_FiltersType(t *testing.T) {
	repo := NewRepository(&httpclient.ClientAPIMock{}, onlineMonitor(false), newSeededIndex(t), testLogger())

	results, err := repo.SearchContributors(context.Background(), "tok", "dan simmons", 10)
	require.NoError(t, err)
	require.Len(t, results.Items, 1)
	assert.Equal(t, "contributor", results.Items[0].Type)
}
