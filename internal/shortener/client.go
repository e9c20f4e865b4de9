package shortener

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Shortener submits long URLs to the shortening backend.
// This interface is implemented by *Client and can be used for testing.
type Shortener interface {
	Shorten(ctx context.Context, rawURL string) (string, error)
}

// Ensure Client implements Shortener at compile time.
var _ Shortener = (*Client)(nil)

// Client talks to the shortening backend over HTTP.
type Client struct {
	endpoint string
	http     *resty.Client
}

const defaultUserAgent = "snip/0.1"

// Option customizes a Client.
type Option func(*Client)

// WithTimeout bounds each request. Clients have no timeout by default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithLogger sends resty's internal warnings to logger. The default logger
// discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.http.SetLogger(logger.Sugar())
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.http.SetHeader("User-Agent", ua)
	}
}

// NewClient builds a Client that posts to endpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint: u.String(),
		http: resty.New().
			SetLogger(zap.NewNop().Sugar()).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", defaultUserAgent),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type longURL struct {
	URL string `json:"url"`
}

type tokenResponse struct {
	Value string `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Shorten posts rawURL and returns the backend token. Failures are either
// *APIError, when the backend explained itself, or *TransportError.
func (c *Client) Shorten(ctx context.Context, rawURL string) (string, error) {
	if c == nil {
		return "", &TransportError{Err: ErrNoClient}
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(longURL{URL: rawURL}).
		SetResult(&tokenResponse{}).
		SetError(&errorResponse{}).
		ForceContentType("application/json").
		Post(c.endpoint)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("execute request: %w", err)}
	}

	if resp.IsSuccess() {
		payload, ok := resp.Result().(*tokenResponse)
		if !ok || payload.Value == "" {
			return "", &TransportError{Err: errors.New("response carried no token")}
		}
		return payload.Value, nil
	}

	// Plain-text error bodies leave the error payload empty.
	payload, ok := resp.Error().(*errorResponse)
	if !ok || payload.Error == "" {
		return "", &TransportError{Err: fmt.Errorf("api returned status %d", resp.StatusCode())}
	}
	return "", &APIError{Status: resp.StatusCode(), Message: payload.Error}
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("endpoint is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("endpoint %q must be an absolute http(s) URL", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
