package shortener

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewClient_RejectsBadEndpoints(t *testing.T) {
	for _, endpoint := range []string{"", "   ", "example.com", "ftp://example.com", "http://"} {
		_, err := NewClient(endpoint)
		assert.Error(t, err, "endpoint %q", endpoint)
	}

	c, err := NewClient("  https://api.example.com/shorten#frag  ")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/shorten", c.Endpoint())
}

func TestShorten_PostsJSONAndReturnsToken(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var gotBody map[string]string
	var gotMethod, gotContentType, gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"value": "abc123"})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	token, err := c.Shorten(ctx, "https://example.com/a?b=c")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Contains(t, gotContentType, "application/json")
	assert.Equal(t, defaultUserAgent, gotUserAgent)
	assert.Equal(t, map[string]string{"url": "https://example.com/a?b=c"}, gotBody)
}

func TestShorten_ErrorResponses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantAPI     string
	}{
		{"structured error", http.StatusBadRequest, "application/json", `{"error":"Custom message"}`, "Custom message"},
		{"structured server error", http.StatusInternalServerError, "application/json", `{"error":"Failed shortening url"}`, "Failed shortening url"},
		{"plain text error", http.StatusNotFound, "text/plain", "Short URL not found\n", ""},
		{"empty error field", http.StatusBadRequest, "application/json", `{"error":""}`, ""},
		{"success without token", http.StatusOK, "application/json", `{"value":""}`, ""},
		{"success with garbage", http.StatusOK, "application/json", `{"value":`, ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			t.Cleanup(server.Close)

			c, err := NewClient(server.URL)
			require.NoError(t, err)

			_, err = c.Shorten(context.Background(), "https://example.com")
			require.Error(t, err)

			if tc.wantAPI != "" {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr), "want *APIError, got %T", err)
				assert.Equal(t, tc.wantAPI, apiErr.Message)
				assert.Equal(t, tc.status, apiErr.Status)
				return
			}
			var transportErr *TransportError
			assert.True(t, errors.As(err, &transportErr), "want *TransportError, got %T", err)
		})
	}
}

func TestShorten_NoResponseIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := server.URL
	server.Close()

	c, err := NewClient(endpoint)
	require.NoError(t, err)

	_, err = c.Shorten(context.Background(), "https://example.com")
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr), "want *TransportError, got %T", err)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestShorten_NilClient(t *testing.T) {
	var c *Client
	_, err := c.Shorten(context.Background(), "https://example.com")
	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
	assert.ErrorIs(t, err, ErrNoClient)
}

func TestShorten_TimeoutIsTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	_, err = c.Shorten(context.Background(), "https://example.com")
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr), "want *TransportError, got %T", err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestShorten_CustomUserAgent(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"value":"abc"}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithUserAgent("snip/1.2.3"), WithLogger(zap.NewNop()))
	require.NoError(t, err)

	_, err = c.Shorten(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "snip/1.2.3", gotUserAgent)
}
