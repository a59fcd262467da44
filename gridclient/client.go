// Package gridclient is a typed client for the transaction dashboard API.
// It pairs a plain HTTP client with a Grid pager that owns page and sort
// state the way a dashboard table does.
package gridclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Category mirrors the API's category model.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tag mirrors the API's tag model.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Transaction mirrors the API's transaction model. Amount stays a decimal
// string; parse it with a decimal library if arithmetic is needed.
type Transaction struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      string   `json:"amount"`
	Type        string   `json:"type"`
	Category    Category `json:"category"`
	UserID      string   `json:"userID"`
	Date        string   `json:"date"`
	CreatedAt   string   `json:"createdAt"`
	Tags        []Tag    `json:"tags"`
}

// GridPage is one page of the transaction grid.
type GridPage struct {
	Items []Transaction `json:"items"`
	Total int64         `json:"total"`
}

// GridQuery selects one page of the grid. Zero values are omitted so the
// server's defaults apply.
type GridQuery struct {
	Page      int
	Size      int
	SortBy    string
	SortOrder string
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: HTTP %d: %s", e.StatusCode, e.Message)
}

// Client calls the transaction dashboard API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Transactions returns the most recent transactions. limit <= 0 uses the
// server default.
func (c *Client) Transactions(ctx context.Context, limit int) ([]Transaction, error) {
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	var transactions []Transaction
	if err := c.get(ctx, "/api/v1/transactions", values, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// GridPage returns one page of the transaction grid.
func (c *Client) GridPage(ctx context.Context, query GridQuery) (*GridPage, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Size > 0 {
		values.Set("size", strconv.Itoa(query.Size))
	}
	if query.SortBy != "" {
		values.Set("sort_by", query.SortBy)
	}
	if query.SortOrder != "" {
		values.Set("sort_order", query.SortOrder)
	}

	var page GridPage
	if err := c.get(ctx, "/api/v1/transactions/grid", values, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) get(ctx context.Context, path string, values url.Values, out interface{}) error {
	requestURL := c.baseURL + path
	if len(values) > 0 {
		requestURL += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiErrorFromResponse(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// apiErrorFromResponse extracts the problem detail when the server sent one.
func apiErrorFromResponse(resp *http.Response) error {
	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	message := http.StatusText(resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&problem); err == nil {
		if problem.Detail != "" {
			message = problem.Detail
		} else if problem.Title != "" {
			message = problem.Title
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
