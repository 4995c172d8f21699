package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// BaseURL is the Moltbook API base URL.
	BaseURL = "https://www.moltbook.com/api/v1"

	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 30 * time.Second

	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-Id"

	// DefaultUserAgent is sent unless WithUserAgent overrides it.
	DefaultUserAgent = "moltbook-cli/dev"
)

// Client is a Moltbook API client.
//
// The API key is fixed at construction and reused unchanged for every call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithAPIKey sets the bearer credential. An empty key sends no Authorization header.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithUserAgent sets the User-Agent header. Empty keeps the default.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a new Moltbook API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    BaseURL,
		userAgent:  DefaultUserAgent,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// HasAPIKey returns true if a credential is set.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request represents an API request.
type Request struct {
	Method string
	Path   string
	Query  Params
	Body   any
}

// Do executes an API request and decodes the response.
//
// Only transport and decoding failures are returned as errors; any HTTP
// status, including 4xx/5xx, yields a Result.
func (c *Client) Do(ctx context.Context, req *Request) (*Result, error) {
	requestID := uuid.NewString()

	httpReq, err := c.buildRequest(ctx, req, requestID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug("request failed",
			"method", req.Method, "path", req.Path, "request_id", requestID, "error", err)
		return nil, &Error{
			Code:    ErrCodeNetworkError,
			Message: fmt.Sprintf("network error: %v", err),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	result, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}
	result.RequestID = requestID

	c.logger.Debug("request completed",
		"method", req.Method,
		"path", req.Path,
		"status", result.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID)
	if !result.OK() {
		c.logger.Warn("remote error", "method", req.Method, "path", req.Path, "status", result.StatusCode)
	}

	return result, nil
}

// buildRequest creates an HTTP request with proper headers.
func (c *Client) buildRequest(ctx context.Context, req *Request, requestID string) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		jsonBody, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return httpReq, nil
}

// handleResponse reads and decodes the HTTP response.
func (c *Client) handleResponse(resp *http.Response) (*Result, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Code:    ErrCodeNetworkError,
			Message: fmt.Sprintf("failed to read response: %v", err),
			Err:     err,
		}
	}

	result := &Result{StatusCode: resp.StatusCode, Raw: raw}

	if len(bytes.TrimSpace(raw)) == 0 {
		result.Body = Object{}
		return result, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&result.Body); err != nil {
		return nil, &Error{
			Code:    ErrCodeDecodeError,
			Message: fmt.Sprintf("status %d: response is not JSON: %s", resp.StatusCode, snippet(raw)),
			Err:     err,
		}
	}

	return result, nil
}

// snippet shortens a body for error messages.
func snippet(b []byte) string {
	const limit = 120
	s := string(bytes.TrimSpace(b))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query Params) (*Result, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request. A nil body sends no payload.
func (c *Client) Post(ctx context.Context, path string, body any) (*Result, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Result, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Result, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}
