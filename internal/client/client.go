// Package client is a typed HTTP client for the document management server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dms/internal/domain"
	"dms/internal/domain/models"
)

const (
	// DefaultTimeout is the default HTTP timeout for server requests
	DefaultTimeout = 30 * time.Second

	// CacheBusterParam is appended to every request with the current time
	// so intermediate caches never answer with a stale list
	CacheBusterParam = "_t"
)

// Source selects which server routes back the type and design lists
type Source string

const (
	SourceProxy Source = "proxy" // /api/form-design/... (external API)
	SourceMock  Source = "mock"  // /api/document-types, /api/document-designs/...
)

// APIError is a non-2xx answer from the server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded with %d", e.Status)
	}
	return fmt.Sprintf("server responded with %d: %s", e.Status, e.Message)
}

// Client talks to the server's JSON API
type Client struct {
	baseURL    *url.URL
	source     Source
	httpClient *http.Client
	now        func() time.Time
}

// Option configures a Client
type Option func(*Client)

// WithSource selects proxy or mock routes for types and designs
func WithSource(source Source) Option {
	return func(c *Client) { c.source = source }
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithClock replaces the time source of the cache-busting parameter
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a client for the server at baseURL (e.g. http://localhost:8080)
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL:    base,
		source:     SourceProxy,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Source returns the configured route family
func (c *Client) Source() Source {
	return c.source
}

// Ping calls /api/ping
func (c *Client) Ping(ctx context.Context) (string, error) {
	var resp models.MessageResponse
	if err := c.get(ctx, "/api/ping", &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// DocumentTypes fetches the type list. A proxy fallback answer is not an
// error: the returned response carries the fallback list and Error.
func (c *Client) DocumentTypes(ctx context.Context) (*models.DocumentTypesResponse, error) {
	path := "/api/form-design/document-types"
	if c.source == SourceMock {
		path = "/api/document-types"
	}

	var resp models.DocumentTypesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Designs fetches the design list of a type. The unselected type answers
// an empty list without a request.
func (c *Client) Designs(ctx context.Context, docType string) (*models.DesignListResponse, error) {
	if models.IsUnselectedType(docType) {
		return &models.DesignListResponse{Data: []models.DocumentDesignData{}}, nil
	}

	if c.source == SourceMock {
		var resp models.DocumentDesignResponse
		if err := c.get(ctx, "/api/document-designs/"+url.PathEscape(docType), &resp); err != nil {
			return nil, err
		}
		return &models.DesignListResponse{Data: resp.Data}, nil
	}

	var resp models.DesignListResponse
	if err := c.get(ctx, "/api/form-design/designs-by-type/"+url.PathEscape(docType), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Versions fetches the version list of a design. It fails with
// domain.ErrMissingDesignID, without a request, when the design carries no
// id-like field.
func (c *Client) Versions(ctx context.Context, design models.DocumentDesignData) ([]models.DocumentDesignVersion, error) {
	id, ok := design.ResolveID()
	if !ok {
		return nil, domain.ErrMissingDesignID
	}

	var resp struct {
		Data []models.DocumentDesignVersion `json:"data"`
	}
	if err := c.get(ctx, "/api/form-design/design-versions/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) get(ctx context.Context, path string, dest interface{}) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	q := u.Query()
	q.Set(CacheBusterParam, strconv.FormatInt(c.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // Error ignored: response consumed

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var problem struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(body, &problem)
		msg := problem.Error
		if msg == "" {
			msg = problem.Detail
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
