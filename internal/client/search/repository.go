package search

import (
	"context"
	"log/slog"
	"time"

	httpclient "github.com/listenupapp/listenup-client/internal/client/api"
	"github.com/listenupapp/listenup-client/internal/client/netmon"
	"github.com/listenupapp/listenup-client/internal/validation"
	"github.com/listenupapp/listenup-client/pkg/api"
)

// OfflineIndex is the on-device index queried when the server cannot
// serve the search. entityType narrows to one type when non-empty.
type OfflineIndex interface {
	Search(ctx context.Context, query, entityType string, limit int) ([]api.SearchResult, error)
}

// Results is one search outcome. IsOfflineResult tells the UI to show
// the degraded-results hint.
type Results struct {
	Items           []api.SearchResult
	Total           int
	IsOfflineResult bool
	Elapsed         time.Duration
}

// Repository serves search with a never-stranded fallback chain:
// server search while online, the on-device index when not, an empty
// result as the last resort. A search never surfaces a transport error
// to the caller.
type Repository struct {
	client  httpclient.ClientAPI
	monitor netmon.Monitor
	index   OfflineIndex
	logger  *slog.Logger
}

func NewRepository(client httpclient.ClientAPI, monitor netmon.Monitor, index OfflineIndex, logger *slog.Logger) *Repository {
	return &Repository{
		client:  client,
		monitor: monitor,
		index:   index,
		logger:  logger,
	}
}

// Search runs the fallback chain for a mixed-type query.
func (r *Repository) Search(ctx context.Context, token, rawQuery string, limit int) (*Results, error) {
	return r.search(ctx, token, rawQuery, "", limit)
}

// SearchBooks narrows the search to books.
func (r *Repository) SearchBooks(ctx context.Context, token, rawQuery string, limit int) (*Results, error) {
	return r.search(ctx, token, rawQuery, "book", limit)
}

// SearchContributors narrows the search to contributors.
func (r *Repository) SearchContributors(ctx context.Context, token, rawQuery string, limit int) (*Results, error) {
	return r.search(ctx, token, rawQuery, "contributor", limit)
}

// SearchSeries narrows the search to series.
func (r *Repository) SearchSeries(ctx context.Context, token, rawQuery string, limit int) (*Results, error) {
	return r.search(ctx, token, rawQuery, "series", limit)
}

func (r *Repository) search(ctx context.Context, token, rawQuery, entityType string, limit int) (*Results, error) {
	query, ok := validation.NormalizeQuery(rawQuery)
	if !ok {
		// Too short to mean anything; answer empty without touching
		// the network or the index
		return &Results{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	start := time.Now()

	if r.monitor.IsOnline() {
		resp, err := r.client.Search(ctx, token, query, limit)
		if err == nil {
			items := resp.Results
			if entityType != "" {
				items = filterType(items, entityType)
			}
			return &Results{
				Items:   items,
				Total:   len(items),
				Elapsed: time.Since(start),
			}, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Warn("server search failed, falling back to offline index",
			"query", query, "error", err)
	}

	items, err := r.index.Search(ctx, query, entityType, limit)
	if err != nil {
		// The empty result is the last rung of the fallback chain
		r.logger.Error("offline search failed", "query", query, "error", err)
		items = nil
	}
	return &Results{
		Items:           items,
		Total:           len(items),
		IsOfflineResult: true,
		Elapsed:         time.Since(start),
	}, nil
}

func filterType(items []api.SearchResult, entityType string) []api.SearchResult {
	var out []api.SearchResult
	for _, item := range items {
		if item.Type == entityType {
			out = append(out, item)
		}
	}
	return out
}
