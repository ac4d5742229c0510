package hlcw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TTRSQ/hlcw/hlerr"
	"github.com/TTRSQ/hlcw/interface/backend"
	"github.com/TTRSQ/hlcw/src/fallback"
	"github.com/TTRSQ/hlcw/src/native"
)

// Both backends, given identical transport outcomes, must be observably
// equivalent: same body on success, same error kind on failure. The shared
// conformance suite checks each in isolation; this test compares them
// pairwise.
func TestBackendParity(t *testing.T) {
	scenarios := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"success", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"universe":[{"name":"BTC","onlyIsolated":false,"szDecimals":5,"maxLeverage":50}]}`))
		}},
		{"rate limited", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
		}},
		{"unauthorized", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"client error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"redirect", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/info" {
				http.Redirect(w, r, "/moved", http.StatusFound)
				return
			}
			w.Write([]byte(`{"followed":"redirect"}`))
		}},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			run := func(newBackend func(backend.Config) (backend.Backend, error)) ([]byte, error) {
				srv := httptest.NewServer(sc.handler)
				defer srv.Close()
				b, err := newBackend(backend.Config{BaseURL: srv.URL})
				require.NoError(t, err)
				return b.Post(backend.EndpointInfo, map[string]string{"type": "meta"})
			}

			nBody, nErr := run(native.New)
			fBody, fErr := run(fallback.New)

			assert.Equal(t, string(nBody), string(fBody))
			if nErr == nil {
				assert.NoError(t, fErr)
				return
			}
			require.Error(t, fErr)
			assert.Equal(t, hlerr.KindOf(nErr), hlerr.KindOf(fErr))

			var ne, fe *hlerr.Error
			require.ErrorAs(t, nErr, &ne)
			require.ErrorAs(t, fErr, &fe)
			assert.Equal(t, ne.Status, fe.Status)
			assert.Equal(t, ne.RetryAfter, fe.RetryAfter)
		})
	}
}

func TestBackendParityConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	cfg := backend.Config{BaseURL: url, ConnectTimeout: time.Second}
	for _, build := range []func(backend.Config) (backend.Backend, error){native.New, fallback.New} {
		b, err := build(cfg)
		require.NoError(t, err)
		_, err = b.Post(backend.EndpointInfo, map[string]string{"type": "meta"})
		require.Error(t, err)
		assert.Equal(t, hlerr.KindNetwork, hlerr.KindOf(err), "backend %s", b.Name())
	}
}

// The same client call must behave identically whichever backend the
// factory picked.
func TestClientParity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"universe":[{"name":"BTC","onlyIsolated":false,"szDecimals":5,"maxLeverage":50}]}`))
	}))
	defer srv.Close()

	cfg := backend.Config{BaseURL: srv.URL}
	nb, err := native.New(cfg)
	require.NoError(t, err)
	fb, err := fallback.New(cfg)
	require.NoError(t, err)

	nMeta, err := NewWithBackend(nb).Meta()
	require.NoError(t, err)
	fMeta, err := NewWithBackend(fb).Meta()
	require.NoError(t, err)
	assert.Equal(t, nMeta, fMeta)
}
