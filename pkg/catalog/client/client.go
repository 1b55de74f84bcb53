// Package client is a typed HTTP client for the catalog service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tendant/simple-catalog/pkg/catalog"
)

// ErrNotFound is returned when the server answers 404.
var ErrNotFound = errors.New("content not found")

// APIError is returned for non-2xx responses other than 404.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog api returned %d: %s", e.StatusCode, e.Detail)
}

// Client talks to a catalog server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DraftRequest is the wire form of a create or update body.
type DraftRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	AuthorID  string   `json:"author_id"`
	CreatedAt string   `json:"created_at"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Status    string   `json:"status,omitempty"`
	Featured  bool     `json:"featured"`
}

// FromDraft converts a catalog.Draft to its wire form.
func FromDraft(d catalog.Draft) DraftRequest {
	return DraftRequest{
		Title:     d.Title,
		Body:      d.Body,
		AuthorID:  d.AuthorID,
		CreatedAt: d.CreatedAt,
		Category:  d.Category,
		Tags:      d.Tags,
		Status:    d.Status,
		Featured:  d.Featured,
	}
}

// List returns the items matching q.
func (c *Client) List(ctx context.Context, q catalog.Query) ([]catalog.ContentItem, error) {
	params := url.Values{}
	setIf(params, "search", q.Search)
	setIf(params, "category", q.Category)
	setIf(params, "tag", q.Tag)
	setIf(params, "status", q.Status)
	setIf(params, "sort_by", q.SortBy)
	if q.Featured != nil {
		params.Set("featured", strconv.FormatBool(*q.Featured))
	}

	path := "/content"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var items []catalog.ContentItem
	err := c.do(ctx, http.MethodGet, path, nil, &items)
	return items, err
}

// Get fetches one item. The server records a view for every call.
func (c *Client) Get(ctx context.Context, id string) (*catalog.ContentItem, error) {
	var item catalog.ContentItem
	if err := c.do(ctx, http.MethodGet, "/content/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByAuthor returns every item written by authorID.
func (c *Client) ListByAuthor(ctx context.Context, authorID string) ([]catalog.ContentItem, error) {
	var items []catalog.ContentItem
	err := c.do(ctx, http.MethodGet, "/content/author/"+url.PathEscape(authorID), nil, &items)
	return items, err
}

// Create stores a new item and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, d DraftRequest) (*catalog.ContentItem, error) {
	var item catalog.ContentItem
	if err := c.do(ctx, http.MethodPost, "/content", d, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces every client-owned field of an item.
func (c *Client) Update(ctx context.Context, id string, d DraftRequest) (*catalog.ContentItem, error) {
	var item catalog.ContentItem
	if err := c.do(ctx, http.MethodPut, "/content/"+url.PathEscape(id), d, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an item.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/content/"+url.PathEscape(id), nil, nil)
}

// Like records a like and returns the new like count.
func (c *Client) Like(ctx context.Context, id string) (int64, error) {
	var resp struct {
		Likes int64 `json:"likes"`
	}
	if err := c.do(ctx, http.MethodPost, "/content/"+url.PathEscape(id)+"/like", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Likes, nil
}

// Categories returns the distinct categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, "/content/categories", nil, &out)
	return out, err
}

// Tags returns the distinct tags.
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, "/content/tags", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{StatusCode: resp.StatusCode, Detail: e.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
