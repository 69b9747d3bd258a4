package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// LeadsPath is the lead collection endpoint relative to the API base URL.
const LeadsPath = "/api/v1/leads"

// DefaultBaseURL is used when no API base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// HTTPStatusError reports a non-2xx response. The body is not parsed.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("lead API returned status %d", e.StatusCode)
}

// Unwrap lets errors.Is match ErrLeadRejected.
func (e *HTTPStatusError) Unwrap() error {
	return ErrLeadRejected
}

// Creator creates leads. *Client implements it.
type Creator interface {
	CreateLead(ctx context.Context, req CreateLeadRequest) (*Lead, error)
}

// Client talks to the lead API. It makes a single attempt per call.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the request timeout. A client passed with WithHTTPClient
// is copied rather than modified.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient returns a client for the API at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  slog.Default().With("component", "leads.client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateLead posts req to the lead endpoint and decodes the created lead.
func (c *Client) CreateLead(ctx context.Context, req CreateLeadRequest) (*Lead, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lead request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LeadsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create lead request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send lead request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	var lead Lead
	if err := json.NewDecoder(resp.Body).Decode(&lead); err != nil {
		return nil, fmt.Errorf("failed to decode lead response: %w", err)
	}

	c.logger.InfoContext(ctx, "Lead created", "lead_id", lead.ID)
	return &lead, nil
}

// ListLeads fetches every lead known to the backend.
func (c *Client) ListLeads(ctx context.Context) ([]Lead, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+LeadsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create list request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send list request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	var out []Lead
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode lead list: %w", err)
	}
	return out, nil
}
