package client

// http_client.go = talks to the BookWorm HTTP API on behalf of the CLI commands.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"
)

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is returned for any non-2xx answer. Message comes from the {message} body when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// constructor for HTTP client
func NewHTTPClient(apiURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// AddToLibrary shelves a book, or re-shelves it when the user already has it.
func (c *HTTPClient) AddToLibrary(ctx context.Context, request dto.AddToLibraryRequest) (*dto.UpdateResult, error) {
	var result dto.UpdateResult
	if err := c.do(ctx, http.MethodPost, "/my-library", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetLibrary(ctx context.Context, email string) ([]models.LibraryEntry, error) {
	var entries []models.LibraryEntry
	if err := c.do(ctx, http.MethodGet, "/my-library/"+url.PathEscape(email), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) RemoveFromLibrary(ctx context.Context, id string) (*dto.DeleteResult, error) {
	var result dto.DeleteResult
	if err := c.do(ctx, http.MethodDelete, "/my-library/remove/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ReaderStats(ctx context.Context, email string) (*dto.ReaderStats, error) {
	var stats dto.ReaderStats
	if err := c.do(ctx, http.MethodGet, "/user/stats/"+url.PathEscape(email), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) AdminStats(ctx context.Context, email string) (*dto.AdminStats, error) {
	var stats dto.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats/"+url.PathEscape(email), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// do sends body as JSON (when non-nil) and decodes a 2xx answer into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // Ensure the response body is closed

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg dto.MessageResponse
		if json.NewDecoder(resp.Body).Decode(&msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
