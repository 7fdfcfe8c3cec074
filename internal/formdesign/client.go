package formdesign

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dms/internal/config"
	"dms/internal/domain"
	"dms/internal/metrics"
)

// Endpoint labels used in logs and metrics
const (
	EndpointDocumentTypes  = "document_types"
	EndpointDesignsByType  = "designs_by_type"
	EndpointDesignVersions = "design_versions"
)

// Client fetches raw payloads from the external FormDesign API.
// Bodies are returned unparsed; shape handling is up to the caller.
type Client interface {
	DocumentTypes(ctx context.Context) ([]byte, error)
	DesignsByType(ctx context.Context, docTypeID string) ([]byte, error)
	DesignVersions(ctx context.Context, formDesignID string) ([]byte, error)
}

// HTTPClient implements Client over HTTPS
type HTTPClient struct {
	baseURL    *url.URL
	endpoints  Endpoints
	httpClient *http.Client
}

// NewHTTPClient creates a client for the API rooted at baseURL.
// With verifyTLS false, certificate validation is disabled; only use that
// against a local development API.
func NewHTTPClient(baseURL string, endpoints Endpoints, timeout time.Duration, verifyTLS bool) (*HTTPClient, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !verifyTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // local dev API with self-signed cert
	}

	return &HTTPClient{
		baseURL:   base,
		endpoints: endpoints,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

// BaseURL returns the API root the client talks to
func (c *HTTPClient) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// DocumentTypes implements Client
func (c *HTTPClient) DocumentTypes(ctx context.Context) ([]byte, error) {
	return c.get(ctx, EndpointDocumentTypes, c.endpoints.DocumentTypes)
}

// DesignsByType implements Client
func (c *HTTPClient) DesignsByType(ctx context.Context, docTypeID string) ([]byte, error) {
	p := strings.ReplaceAll(c.endpoints.DesignsByType, "{docTypeId}", url.PathEscape(docTypeID))
	return c.get(ctx, EndpointDesignsByType, p)
}

// DesignVersions implements Client
func (c *HTTPClient) DesignVersions(ctx context.Context, formDesignID string) ([]byte, error) {
	p := strings.ReplaceAll(c.endpoints.DesignVersions, "{formDesignId}", url.PathEscape(formDesignID))
	return c.get(ctx, EndpointDesignVersions, p)
}

func (c *HTTPClient) get(ctx context.Context, endpoint, relPath string) ([]byte, error) {
	start := time.Now()

	ref, err := url.Parse(relPath)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint path %q: %w", relPath, err)
	}
	target := c.baseURL.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(endpoint, metrics.ResultTransport, time.Since(start))
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }() // Error ignored: response consumed

	body, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxUpstreamBodyBytes))
	if err != nil {
		metrics.ObserveUpstream(endpoint, metrics.ResultTransport, time.Since(start))
		return nil, fmt.Errorf("%w: failed to read response: %w", domain.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(endpoint, metrics.ResultHTTPError, time.Since(start))
		preview := string(body)
		if len(preview) > config.UpstreamErrorPreview {
			preview = preview[:config.UpstreamErrorPreview]
		}
		return nil, &domain.UpstreamError{
			Endpoint:   relPath,
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
			Body:       preview,
		}
	}

	metrics.ObserveUpstream(endpoint, metrics.ResultOK, time.Since(start))
	return body, nil
}

// statusText returns the reason phrase of a response ("Not Found")
func statusText(resp *http.Response) string {
	code := fmt.Sprintf("%d ", resp.StatusCode)
	if text, ok := strings.CutPrefix(resp.Status, code); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

// IsTransportError reports whether err is a failure to reach the API at all
// (as opposed to a non-2xx answer)
func IsTransportError(err error) bool {
	var upstreamErr *domain.UpstreamError
	return errors.Is(err, domain.ErrUpstream) && !errors.As(err, &upstreamErr)
}
