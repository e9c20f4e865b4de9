package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/five82/snip/internal/config"
	"github.com/five82/snip/internal/shortener"
	"github.com/five82/snip/internal/submission"
)

type fakeShortener struct {
	token string
	err   error
	calls int
}

func (f *fakeShortener) Shorten(context.Context, string) (string, error) {
	f.calls++
	return f.token, f.err
}

func testOptions(t *testing.T, o config.Overrides) Options {
	t.Helper()
	return Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Overrides:  o,
	}
}

func TestShortenOnce(t *testing.T) {
	cases := map[string]struct {
		input    string
		fake     *fakeShortener
		want     string
		wantErr  string
		wantCall int
	}{
		"success": {
			input:    "https://example.com",
			fake:     &fakeShortener{token: "xyz"},
			want:     "https://sni.p/xyz",
			wantCall: 1,
		},
		"invalid input": {
			input:   "example.com",
			fake:    &fakeShortener{token: "xyz"},
			wantErr: submission.InvalidURLMessage,
		},
		"backend message": {
			input:    "https://example.com",
			fake:     &fakeShortener{err: &shortener.APIError{Status: 422, Message: "URL is too long"}},
			wantErr:  "URL is too long",
			wantCall: 1,
		},
		"transport": {
			input:    "https://example.com",
			fake:     &fakeShortener{err: &shortener.TransportError{Err: errors.New("dial tcp: refused")}},
			wantErr:  submission.MessageUnexpected,
			wantCall: 1,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := shortenOnce(context.Background(), tc.fake, "https://sni.p/", tc.input, zap.NewNop())

			assert.Equal(t, tc.wantCall, tc.fake.calls)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestShortenOnce_KeepsCause(t *testing.T) {
	cause := &shortener.TransportError{Err: errors.New("eof")}

	_, err := shortenOnce(context.Background(), &fakeShortener{err: cause}, "https://sni.p/", "https://example.com", zap.NewNop())

	var failure *FailureError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, submission.KindTransport, failure.Failure.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestShorten_AgainstBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":"abc123"}`))
	}))
	t.Cleanup(backend.Close)

	var out bytes.Buffer
	opts := testOptions(t, config.Overrides{
		Endpoint:    backend.URL,
		ShortDomain: "https://sni.p",
		LogLevel:    "error",
	})

	require.NoError(t, Shorten(context.Background(), opts, "https://example.com/long", &out))
	assert.Equal(t, "https://sni.p/abc123\n", out.String())
}

func TestShorten_SendsVersionedUserAgent(t *testing.T) {
	var gotUserAgent string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":"abc"}`))
	}))
	t.Cleanup(backend.Close)

	opts := testOptions(t, config.Overrides{Endpoint: backend.URL, LogLevel: "error"})
	opts.Version = "1.2.3"

	require.NoError(t, Shorten(context.Background(), opts, "https://example.com", &bytes.Buffer{}))
	assert.Equal(t, UserAgent("1.2.3"), gotUserAgent)
}

func TestShorten_HungBackendTimesOut(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(backend.Close)

	opts := testOptions(t, config.Overrides{
		Endpoint:       backend.URL,
		LogLevel:       "error",
		TimeoutSeconds: 1,
	})

	start := time.Now()
	err := Shorten(context.Background(), opts, "https://example.com", &bytes.Buffer{})

	require.Error(t, err)
	assert.Equal(t, submission.MessageUnexpected, err.Error())
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestShorten_BadEndpointFailsAtStartup(t *testing.T) {
	opts := testOptions(t, config.Overrides{Endpoint: "ftp://nope"})

	err := Shorten(context.Background(), opts, "https://example.com", &bytes.Buffer{})

	assert.ErrorContains(t, err, "endpoint")
}

func TestResolve_PrintOnly(t *testing.T) {
	var out bytes.Buffer
	opts := testOptions(t, config.Overrides{ResolveBase: "https://api.example.com/"})
	opts.PrintOnly = true

	require.NoError(t, Resolve(opts, "xyz", &out))
	assert.Equal(t, "https://api.example.com/xyz\n", out.String())
}
