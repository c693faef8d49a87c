package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"qkart/internal/domain"
)

const (
	// DefaultTimeout bounds every request unless overridden
	DefaultTimeout = 10 * time.Second

	// RequestIDHeader carries the per-request id to the backend
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 4 << 20
)

// Client talks to the storefront REST API
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout. The http.Client is copied so a
// shared client passed to WithHTTPClient keeps its own timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithLogger sets the logger used for request outcomes
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client for the API rooted at baseURL, e.g. http://host:8082/api/v1
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "api")
	return c, nil
}

// BaseURL returns the API root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListProducts fetches the full catalog
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &products); err != nil {
		return nil, err
	}
	return nonNil(products), nil
}

// SearchProducts fetches the products matching query. The empty query is sent as-is.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	params := url.Values{"value": []string{query}}
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/search", params, nil, &products); err != nil {
		return nil, err
	}
	return nonNil(products), nil
}

// Credentials is the body of the auth endpoints
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Balance  int    `json:"balance"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, username, password string) error {
	var resp statusResponse
	return c.do(ctx, http.MethodPost, "/auth/register", nil, Credentials{Username: username, Password: password}, &resp)
}

// Login exchanges credentials for a session
func (c *Client) Login(ctx context.Context, username, password string) (domain.Session, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, Credentials{Username: username, Password: password}, &resp); err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Username: resp.Username,
		Token:    resp.Token,
		Balance:  resp.Balance,
	}, nil
}

// do performs one request. Any 2xx answer counts as success; out may be nil.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	op := method + " " + path
	endpoint := c.baseURL + path
	if params != nil {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := c.logger.With("op", op, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("request failed", "error", err, "elapsed", time.Since(start))
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		logger.Warn("reading response failed", "error", err, "status", resp.StatusCode)
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure statusResponse
		_ = json.Unmarshal(data, &failure)
		logger.Warn("backend returned failure", "status", resp.StatusCode, "message", failure.Message, "elapsed", time.Since(start))
		return &BackendError{Op: op, StatusCode: resp.StatusCode, Message: failure.Message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			logger.Warn("malformed response", "error", err, "status", resp.StatusCode)
			return &BackendError{Op: op, StatusCode: resp.StatusCode, Message: "malformed response", Err: err}
		}
	}

	logger.Debug("request completed", "status", resp.StatusCode, "elapsed", time.Since(start))
	return nil
}

func nonNil(products []domain.Product) []domain.Product {
	if products == nil {
		return []domain.Product{}
	}
	return products
}
