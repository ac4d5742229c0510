// Package fallback is the portable backend, built on net/http with a
// transport tuned to the same connection budget as the native one.
package fallback

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/TTRSQ/hlcw/hlerr"
	"github.com/TTRSQ/hlcw/interface/backend"
)

type fallback struct {
	cfg    backend.Config
	client *http.Client
	log    *zap.Logger
}

// New returns the portable backend.
func New(cfg backend.Config) (backend.Backend, error) {
	cfg = cfg.WithDefaults()
	if err := checkBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	transport := &http.Transport{
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		MaxIdleConnsPerHost: cfg.MaxConnsPerHost,
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
	}
	return &fallback{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.ConnectTimeout,
			// A 3xx is classified like any other non-2xx status, never
			// followed; the native backend behaves the same way.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: cfg.Log(),
	}, nil
}

func checkBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return hlerr.Validationf("invalid base url %q", raw)
	}
	return nil
}

func (f *fallback) Name() string { return "fallback" }

func (f *fallback) Config() backend.Config { return f.cfg }

func (f *fallback) Post(endpoint string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, hlerr.Validationf("cannot marshal %s payload: %v", endpoint, err)
	}

	resp, err := f.client.Post(f.cfg.BaseURL+"/"+endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		f.log.Debug("request failed",
			zap.String("backend", "fallback"),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, hlerr.FromTransport(err)
	}
	defer resp.Body.Close()

	f.log.Debug("request done",
		zap.String("backend", "fallback"),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode))

	retryAfter := resp.Header.Get("Retry-After")
	if err := hlerr.FromStatus(resp.StatusCode, http.StatusText(resp.StatusCode), retryAfter); err != nil {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil, err
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, hlerr.FromTransport(err)
	}
	return out, nil
}
