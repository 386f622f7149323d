package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/listenupapp/listenup-client/pkg/api"
)

const (
	defaultTimeout = 30 * time.Second
	pingTimeout    = 5 * time.Second
)

// Client is the HTTP implementation of ClientAPI against a ListenUp
// server.
type Client struct {
	httpClient *http.Client
	pingClient *http.Client
	baseURL    string
}

// NewClient creates an API client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
		// Health checks use a much shorter timeout so offline detection
		// stays responsive.
		pingClient: &http.Client{Timeout: pingTimeout},
	}
}

// SetBaseURL repoints the client at a different server. Used when a
// login overrides the configured server URL.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) UpdateBook(ctx context.Context, token, bookID string, req api.BookUpdateRequest) (*api.Book, error) {
	var resp api.Book
	path := fmt.Sprintf("/api/v1/books/%s", url.PathEscape(bookID))
	if err := c.doRequest(ctx, http.MethodPatch, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("update book request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) SetBookContributors(ctx context.Context, token, bookID string, req api.SetContributorsRequest) (*api.Book, error) {
	var resp api.Book
	path := fmt.Sprintf("/api/v1/books/%s/contributors", url.PathEscape(bookID))
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("set book contributors request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) SetBookSeries(ctx context.Context, token, bookID string, req api.SetSeriesRequest) (*api.Book, error) {
	var resp api.Book
	path := fmt.Sprintf("/api/v1/books/%s/series", url.PathEscape(bookID))
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("set book series request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) MergeContributors(ctx context.Context, token string, req api.MergeContributorsRequest) (*api.Contributor, error) {
	var resp api.Contributor
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/contributors/merge", token, req, &resp); err != nil {
		return nil, fmt.Errorf("merge contributors request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) PushListeningEvents(ctx context.Context, token string, req api.BatchEventsRequest) (*api.BatchEventsResponse, error) {
	var resp api.BatchEventsResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/listening/events", token, req, &resp); err != nil {
		return nil, fmt.Errorf("push listening events request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) UpdateProgress(ctx context.Context, token string, req api.UpdateProgressRequest) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/listening/progress", token, req, nil); err != nil {
		return fmt.Errorf("update progress request failed: %w", err)
	}
	return nil
}

func (c *Client) UpdateBookPreferences(ctx context.Context, token string, prefs api.BookPreferences) error {
	path := fmt.Sprintf("/api/v1/books/%s/preferences", url.PathEscape(prefs.BookID))
	if err := c.doRequest(ctx, http.MethodPut, path, token, prefs, nil); err != nil {
		return fmt.Errorf("update book preferences request failed: %w", err)
	}
	return nil
}

func (c *Client) GetBooksUpdatedAfter(ctx context.Context, token string, since int64) (*api.BooksDelta, error) {
	var resp api.BooksDelta
	path := fmt.Sprintf("/api/v1/sync/books?updated_after=%d", since)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get books delta request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) GetContributorsUpdatedAfter(ctx context.Context, token string, since int64) (*api.ContributorsDelta, error) {
	var resp api.ContributorsDelta
	path := fmt.Sprintf("/api/v1/sync/contributors?updated_after=%d", since)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get contributors delta request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) GetSeriesUpdatedAfter(ctx context.Context, token string, since int64) (*api.SeriesDelta, error) {
	var resp api.SeriesDelta
	path := fmt.Sprintf("/api/v1/sync/series?updated_after=%d", since)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get series delta request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) GetAllProgress(ctx context.Context, token string, since int64) (*api.ProgressDelta, error) {
	var resp api.ProgressDelta
	path := fmt.Sprintf("/api/v1/sync/progress?updated_after=%d", since)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get progress delta request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) Search(ctx context.Context, token, query string, limit int) (*api.SearchResponse, error) {
	var resp api.SearchResponse
	path := fmt.Sprintf("/api/v1/search?q=%s&limit=%d", url.QueryEscape(query), limit)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.pingClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &Error{Status: resp.StatusCode, Message: "health check failed"}
	}
	return nil
}

// envelope instantiates the shared wire envelope with the payload kept
// raw until the caller's result type is known.
type envelope = api.Envelope[json.RawMessage]

// doRequest performs one HTTP round-trip and decodes the response
// envelope into result. Non-2xx responses and success=false envelopes
// become *Error.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		if err := json.Unmarshal(respBody, &env); err == nil && env.Error != "" {
			return &Error{Status: resp.StatusCode, Message: env.Error}
		}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &Error{Status: resp.StatusCode, Message: errResp.Error}
		}
		return &Error{Status: resp.StatusCode, Message: string(respBody)}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if !env.Success {
		return &Error{Status: resp.StatusCode, Message: env.Error}
	}

	if result != nil && env.Data != nil && len(*env.Data) > 0 {
		if err := json.Unmarshal(*env.Data, result); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
