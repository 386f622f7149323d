package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/listenup-client/pkg/api"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.Equal(t, 5*time.Second, client.pingClient.Timeout)
}

func envelopeJSON(t *testing.T, data any) []byte {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"success": true,
		"data":    json.RawMessage(raw),
	})
	require.NoError(t, err)
	return body
}

func TestClient_UpdateBook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/books/book-1", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var req api.BookUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Title)
		assert.Equal(t, "New Title", *req.Title)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(envelopeJSON(t, api.Book{ID: "book-1", Title: "New Title", UpdatedAt: 42}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	title := "New Title"

	book, err := client.UpdateBook(context.Background(), "token-abc", "book-1", api.BookUpdateRequest{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "book-1", book.ID)
	assert.Equal(t, "New Title", book.Title)
	assert.Equal(t, int64(42), book.UpdatedAt)
}

func TestClient_UpdateBook_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "book not found",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	title := "x"

	_, err := client.UpdateBook(context.Background(), "t", "missing", api.BookUpdateRequest{Title: &title})

	require.Error(t, err)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "book not found", apiErr.Message)
	assert.True(t, IsClientError(err))
	assert.False(t, IsServerError(err))
}

func TestClient_EnvelopeFailure(t *testing.T) {
	// 200 with success=false still surfaces as an error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "validation failed",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetBooksUpdatedAfter(context.Background(), "t", 0)

	require.Error(t, err)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "validation failed", apiErr.Message)
}

func TestClient_GetBooksUpdatedAfter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sync/books", r.URL.Path)
		assert.Equal(t, "1500", r.URL.Query().Get("updated_after"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(envelopeJSON(t, api.BooksDelta{
			Books:     []api.Book{{ID: "b1", Title: "One"}, {ID: "b2", Title: "Two"}},
			Deleted:   []string{"b9"},
			Timestamp: 2000,
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	delta, err := client.GetBooksUpdatedAfter(context.Background(), "t", 1500)

	require.NoError(t, err)
	assert.Len(t, delta.Books, 2)
	assert.Equal(t, []string{"b9"}, delta.Deleted)
	assert.Equal(t, int64(2000), delta.Timestamp)
}

func TestClient_PushListeningEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/listening/events", r.URL.Path)

		var req api.BatchEventsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Events, 2)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(envelopeJSON(t, api.BatchEventsResponse{Accepted: 2}))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.PushListeningEvents(context.Background(), "t", api.BatchEventsRequest{
		Events: []api.ListeningEvent{
			{ID: "e1", BookID: "b1", Duration: 60},
			{ID: "e2", BookID: "b1", Duration: 120},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Accepted)
	assert.Empty(t, resp.Rejected)
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/search", r.URL.Path)
		assert.Equal(t, "project hail", r.URL.Query().Get("q"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(envelopeJSON(t, api.SearchResponse{
			Results: []api.SearchResult{{ID: "b1", Type: "book", Name: "Project Hail Mary", Score: 9.5}},
			Total:   1,
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Search(context.Background(), "t", "project hail", 20)

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Project Hail Mary", resp.Results[0].Name)
}

func TestClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.Ping(context.Background()))

	server.Close()
	assert.Error(t, client.Ping(context.Background()))
}
