// Package backendtest is the conformance suite every Backend implementation
// must pass. Running the same suite against both backends is what enforces
// the parity contract: identical classification for identical transport
// outcomes.
package backendtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TTRSQ/hlcw/hlerr"
	"github.com/TTRSQ/hlcw/interface/backend"
)

// Factory builds the backend under test from a config.
type Factory func(cfg backend.Config) (backend.Backend, error)

// Run exercises every observable behavior of the Backend contract.
func Run(t *testing.T, newBackend Factory) {
	t.Run("rejects invalid base url", func(t *testing.T) {
		_, err := newBackend(backend.Config{BaseURL: "not a url"})
		require.Error(t, err)
		assert.Equal(t, hlerr.KindValidation, hlerr.KindOf(err))
	})

	t.Run("posts json and returns body", func(t *testing.T) {
		var gotPath, gotMethod, gotContentType string
		var gotBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"universe":[]}`))
		}))
		defer srv.Close()

		b := mustBackend(t, newBackend, srv.URL)
		body, err := b.Post(backend.EndpointInfo, map[string]string{"type": "meta"})
		require.NoError(t, err)
		assert.Equal(t, `{"universe":[]}`, string(body))
		assert.Equal(t, "/info", gotPath)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotContentType)
		assert.JSONEq(t, `{"type":"meta"}`, string(gotBody))
	})

	t.Run("exchange endpoint path", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		b := mustBackend(t, newBackend, srv.URL)
		_, err := b.Post(backend.EndpointExchange, map[string]string{"coin": "BTC", "type": "cancelAll"})
		require.NoError(t, err)
		assert.Equal(t, "/exchange", gotPath)
	})

	t.Run("classifies statuses", func(t *testing.T) {
		tests := []struct {
			name   string
			status int
			want   hlerr.Kind
		}{
			{"rate limited", 429, hlerr.KindRateLimited},
			{"unauthorized", 401, hlerr.KindAuthentication},
			{"forbidden", 403, hlerr.KindAuthentication},
			{"internal error", 500, hlerr.KindServer},
			{"unavailable", 503, hlerr.KindServer},
			{"bad request", 400, hlerr.KindClient},
			{"not found", 404, hlerr.KindClient},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
				}))
				defer srv.Close()

				b := mustBackend(t, newBackend, srv.URL)
				_, err := b.Post(backend.EndpointInfo, map[string]string{"type": "meta"})
				require.Error(t, err)
				assert.Equal(t, tt.want, hlerr.KindOf(err))

				var e *hlerr.Error
				require.ErrorAs(t, err, &e)
				assert.Equal(t, tt.status, e.Status)
				assert.Equal(t, http.StatusText(tt.status), e.Reason)
			})
		}
	})

	t.Run("redirect is not followed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/info" {
				http.Redirect(w, r, "/moved", http.StatusFound)
				return
			}
			w.Write([]byte(`{"followed":"redirect"}`))
		}))
		defer srv.Close()

		b := mustBackend(t, newBackend, srv.URL)
		_, err := b.Post(backend.EndpointInfo, map[string]string{"type": "meta"})
		require.Error(t, err)
		assert.Equal(t, hlerr.KindClient, hlerr.KindOf(err))

		var e *hlerr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusFound, e.Status)
	})

	t.Run("carries retry-after hint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "5")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		b := mustBackend(t, newBackend, srv.URL)
		_, err := b.Post(backend.EndpointInfo, map[string]string{"type": "meta"})
		var e *hlerr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, hlerr.KindRateLimited, e.Kind)
		assert.Equal(t, "5", e.RetryAfter)
	})

	t.Run("rate limit without hint uses sentinel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		b := mustBackend(t, newBackend, srv.URL)
		_, err := b.Post(backend.EndpointInfo, map[string]string{"type": "meta"})
		var e *hlerr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, hlerr.RetryAfterUnknown, e.RetryAfter)
	})

	t.Run("connection refused is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		b := mustBackend(t, newBackend, url)
		_, err := b.Post(backend.EndpointInfo, map[string]string{"type": "meta"})
		require.Error(t, err)
		assert.Equal(t, hlerr.KindNetwork, hlerr.KindOf(err))
		assert.True(t, hlerr.Retryable(err))
	})

	t.Run("slow server is a timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		b, err := newBackend(backend.Config{
			BaseURL:        srv.URL,
			ConnectTimeout: 50 * time.Millisecond,
		})
		require.NoError(t, err)
		_, err = b.Post(backend.EndpointInfo, map[string]string{"type": "meta"})
		require.Error(t, err)
		assert.Equal(t, hlerr.KindTimeout, hlerr.KindOf(err))
		assert.True(t, hlerr.Retryable(err))
	})

	t.Run("config is applied", func(t *testing.T) {
		b := mustBackend(t, newBackend, "http://localhost:1")
		cfg := b.Config()
		assert.Equal(t, backend.DefaultMaxConnsPerHost, cfg.MaxConnsPerHost)
		assert.Equal(t, backend.DefaultConnectTimeout, cfg.ConnectTimeout)
	})
}

func mustBackend(t *testing.T, newBackend Factory, baseURL string) backend.Backend {
	t.Helper()
	b, err := newBackend(backend.Config{BaseURL: baseURL})
	require.NoError(t, err)
	return b
}
